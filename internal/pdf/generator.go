package pdf

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/nurpe/hr-contracts/internal/model"
)

type Generator struct {
	fontName string
}

// NewGenerator uses the built-in Helvetica font; text outside cp1252 is
// translated on the way in.
func NewGenerator() (*Generator, error) {
	return &Generator{fontName: "Helvetica"}, nil
}

func (g *Generator) Generate(doc model.ContractDocument) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.SetTitle("Employment contract", true)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	c := doc.Contract

	pdf.SetFont(g.fontName, "B", 16)
	pdf.CellFormat(0, 10, "Employment contract", "", 1, "C", false, 0, "")
	pdf.SetFont(g.fontName, "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Contract %s", c.ID.String()), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("State: %s", stateText(c.State)), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	section(pdf, g.fontName, "Parties")
	row(pdf, g.fontName, "Employer", "HR department")
	row(pdf, g.fontName, "Employee", tr(safeValue(c.CandidateNetID)))
	if c.IsDraft() {
		row(pdf, g.fontName, "Awaiting", reviewerText(c.Reviewer))
	}
	pdf.Ln(4)

	section(pdf, g.fontName, "Term")
	row(pdf, g.fontName, "Start date", formatDate(c.StartDate))
	if doc.OpenEnded {
		row(pdf, g.fontName, "End date", "open-ended")
	} else {
		row(pdf, g.fontName, "End date", formatDate(*c.EndDate))
		row(pdf, g.fontName, "Duration", fmt.Sprintf("%d days", doc.DurationDays))
	}
	pdf.Ln(4)

	section(pdf, g.fontName, "Salary and leave")
	row(pdf, g.fontName, "Hours per week", fmt.Sprintf("%d", c.Salary.HoursPerWeek))
	row(pdf, g.fontName, "Vacation days", fmt.Sprintf("%d", c.Salary.VacationDays))
	row(pdf, g.fontName, "Salary scale", fmt.Sprintf("%d", c.Salary.SalaryScale))
	row(pdf, g.fontName, "Salary step", fmt.Sprintf("%d", c.Salary.SalaryStep))
	pdf.Ln(4)

	section(pdf, g.fontName, "Additional terms")
	row(pdf, g.fontName, "Position", tr(safeValue(c.Additions.Position)))
	row(pdf, g.fontName, "Pension scheme", tr(safeValue(c.Additions.PensionScheme)))
	pdf.SetFont(g.fontName, "B", 10)
	pdf.CellFormat(50, 6, "Benefits", "", 1, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 10)
	pdf.MultiCell(0, 5, tr(safeValue(c.Additions.AdditionalBenefits)), "", "L", false)
	pdf.Ln(8)

	section(pdf, g.fontName, "Signatures")
	signatureBlock(pdf, g.fontName, "Employer", "HR")
	signatureBlock(pdf, g.fontName, "Employee", tr(c.CandidateNetID))

	pdf.SetY(-25)
	pdf.SetFont(g.fontName, "I", 8)
	pdf.CellFormat(0, 5, fmt.Sprintf("Generated %s", doc.GeneratedAt.Format("2006-01-02 15:04 MST")), "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func section(pdf *gofpdf.Fpdf, fontName, title string) {
	pdf.SetFont(fontName, "B", 12)
	pdf.CellFormat(0, 8, title, "B", 1, "L", false, 0, "")
	pdf.Ln(1)
}

func row(pdf *gofpdf.Fpdf, fontName, label, value string) {
	pdf.SetFont(fontName, "B", 10)
	pdf.CellFormat(50, 6, label, "", 0, "L", false, 0, "")
	pdf.SetFont(fontName, "", 10)
	pdf.CellFormat(0, 6, value, "", 1, "L", false, 0, "")
}

func signatureBlock(pdf *gofpdf.Fpdf, fontName, label, name string) {
	pdf.SetFont(fontName, "", 11)
	pdf.CellFormat(0, 10, fmt.Sprintf("%s: ______________________ /%s/", label, safeValue(name)), "", 1, "L", false, 0, "")
}

func stateText(state model.ContractState) string {
	switch state {
	case model.ContractStateDraft:
		return "draft, under negotiation"
	case model.ContractStateAccepted:
		return "accepted"
	case model.ContractStateTerminated:
		return "terminated"
	}
	return string(state)
}

func reviewerText(r model.Reviewer) string {
	if r == model.ReviewerEmployer {
		return "employer review"
	}
	return "candidate review"
}

func safeValue(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return value
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("02.01.2006")
}
