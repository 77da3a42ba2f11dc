package excel

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/nurpe/hr-contracts/internal/model"
)

func TestGenerator_Generate(t *testing.T) {
	end := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	accepted := model.Contract{
		ID:             uuid.New(),
		CandidateNetID: "alice",
		State:          model.ContractStateAccepted,
		Reviewer:       model.ReviewerCandidate,
		StartDate:      time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC),
		EndDate:        &end,
		Salary:         model.SalaryInfo{HoursPerWeek: 40, VacationDays: 25, SalaryScale: 7, SalaryStep: 2},
		Additions:      model.ContractAdditions{Position: "developer"},
	}
	report := model.ContractReport{
		GeneratedAt: time.Date(2025, time.August, 20, 10, 0, 0, 0, time.UTC),
		Total:       1,
		Groups: []model.StateGroup{
			{State: model.ContractStateDraft},
			{State: model.ContractStateAccepted, Count: 1, Contracts: []model.Contract{accepted}},
		},
	}

	content, err := NewGenerator().Generate(report)
	require.NoError(t, err)

	file, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer file.Close()

	assert.Equal(t, []string{"Summary", "DRAFT", "ACCEPTED"}, file.GetSheetList())

	total, err := file.GetCellValue("Summary", "B5")
	require.NoError(t, err)
	assert.Equal(t, "1", total)

	filter, err := file.GetCellValue("Summary", "B2")
	require.NoError(t, err)
	assert.Equal(t, "all", filter)

	rows, err := file.GetRows("ACCEPTED")
	require.NoError(t, err)
	require.Len(t, rows, 5)
	assert.Equal(t, detailHeaders[0], rows[3][0])
	assert.Equal(t, accepted.ID.String(), rows[4][0])
	assert.Equal(t, "alice", rows[4][1])
	assert.Equal(t, "2026-09-01", rows[4][4])
	assert.Equal(t, "365", rows[4][5])
}

func TestBuildSheetName(t *testing.T) {
	used := map[string]struct{}{"DRAFT": {}}
	assert.Equal(t, "DRAFT-2", buildSheetName("DRAFT", used))
	assert.Equal(t, "a-b", buildSheetName("a/b", used))
	assert.Equal(t, "Sheet", buildSheetName("  ", used))
}
