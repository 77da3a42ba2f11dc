package excel

import (
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/nurpe/hr-contracts/internal/model"
)

const summarySheet = "Summary"

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) Generate(report model.ContractReport) ([]byte, error) {
	file := excelize.NewFile()
	defer file.Close()

	if err := file.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, err
	}
	if err := g.writeSummary(file, summarySheet, report); err != nil {
		return nil, err
	}

	usedNames := map[string]struct{}{summarySheet: {}}
	for _, group := range report.Groups {
		sheetName := buildSheetName(string(group.State), usedNames)
		usedNames[sheetName] = struct{}{}

		if _, err := file.NewSheet(sheetName); err != nil {
			return nil, err
		}
		if err := g.writeDetail(file, sheetName, group); err != nil {
			return nil, err
		}
	}

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) writeSummary(file *excelize.File, sheet string, report model.ContractReport) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", "Generated at")
	set("B1", formatDateTime(report.GeneratedAt))
	set("A2", "State filter")
	set("B2", stateLabel(report.Filter.State))
	set("A3", "Start from")
	set("B3", formatDate(report.Filter.StartFrom))
	set("A4", "Start to")
	set("B4", formatDate(report.Filter.StartTo))
	set("A5", "Contracts")
	set("B5", report.Total)

	tableRow := 7
	set(fmt.Sprintf("A%d", tableRow), "State")
	set(fmt.Sprintf("B%d", tableRow), "Contracts")
	for i, group := range report.Groups {
		row := tableRow + 1 + i
		set(fmt.Sprintf("A%d", row), string(group.State))
		set(fmt.Sprintf("B%d", row), group.Count)
	}

	if err := boldRow(file, sheet, tableRow, 2); err != nil {
		return err
	}
	_ = file.SetColWidth(sheet, "A", "A", 24)
	_ = file.SetColWidth(sheet, "B", "B", 22)
	return nil
}

var detailHeaders = []string{
	"Contract ID",
	"Candidate",
	"Reviewer",
	"Start date",
	"End date",
	"Days",
	"Hours/week",
	"Vacation days",
	"Scale",
	"Step",
	"Position",
	"Pension scheme",
	"Benefits",
	"Updated at",
}

func (g *Generator) writeDetail(file *excelize.File, sheet string, group model.StateGroup) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", "State")
	set("B1", string(group.State))
	set("A2", "Contracts")
	set("B2", group.Count)

	tableRow := 4
	for i, header := range detailHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, tableRow)
		set(cell, header)
	}
	if err := boldRow(file, sheet, tableRow, len(detailHeaders)); err != nil {
		return err
	}

	for i, c := range group.Contracts {
		row := tableRow + 1 + i
		values := []interface{}{
			c.ID.String(),
			c.CandidateNetID,
			string(c.Reviewer),
			formatDate(c.StartDate),
			formatEndDate(c.EndDate),
			formatDuration(c),
			c.Salary.HoursPerWeek,
			c.Salary.VacationDays,
			c.Salary.SalaryScale,
			c.Salary.SalaryStep,
			c.Additions.Position,
			c.Additions.PensionScheme,
			c.Additions.AdditionalBenefits,
			formatDateTime(c.UpdatedAt),
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			set(cell, value)
		}
	}

	_ = file.SetColWidth(sheet, "A", "A", 38)
	_ = file.SetColWidth(sheet, "B", "C", 16)
	_ = file.SetColWidth(sheet, "D", "E", 12)
	_ = file.SetColWidth(sheet, "F", "J", 10)
	_ = file.SetColWidth(sheet, "K", "M", 28)
	_ = file.SetColWidth(sheet, "N", "N", 20)
	return nil
}

func boldRow(file *excelize.File, sheet string, row, columns int) error {
	style, err := file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	first, _ := excelize.CoordinatesToCellName(1, row)
	last, _ := excelize.CoordinatesToCellName(columns, row)
	return file.SetCellStyle(sheet, first, last, style)
}

func buildSheetName(name string, used map[string]struct{}) string {
	base := sanitizeSheetName(name)
	if len(base) > 31 {
		base = base[:31]
	}

	candidate := base
	counter := 2
	for {
		if _, exists := used[candidate]; !exists {
			return candidate
		}
		suffix := fmt.Sprintf("-%d", counter)
		trimmed := base
		if len(trimmed)+len(suffix) > 31 {
			trimmed = trimmed[:31-len(suffix)]
		}
		candidate = trimmed + suffix
		counter++
	}
}

func sanitizeSheetName(value string) string {
	replacer := strings.NewReplacer(
		"[", "-",
		"]", "-",
		":", "-",
		"*", "-",
		"?", "-",
		"/", "-",
		"\\", "-",
	)
	value = strings.TrimSpace(replacer.Replace(strings.TrimSpace(value)))
	if value == "" {
		return "Sheet"
	}
	return value
}

func stateLabel(state model.ContractState) string {
	if state == "" {
		return "all"
	}
	return string(state)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

func formatEndDate(t *time.Time) string {
	if t == nil {
		return "open-ended"
	}
	return formatDate(*t)
}

func formatDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02 15:04:05")
}

func formatDuration(c model.Contract) string {
	days, ok := c.Duration()
	if !ok {
		return ""
	}
	return fmt.Sprintf("%d", days)
}
