package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nurpe/hr-contracts/internal/model"
)

type ContractRepository struct {
	db *gorm.DB
}

func NewContractRepository(db *gorm.DB) *ContractRepository {
	return &ContractRepository{db: db}
}

type contractRow struct {
	ID                 uuid.UUID
	CandidateNetID     string
	State              string
	Reviewer           string
	StartDate          time.Time
	EndDate            *time.Time
	HoursPerWeek       int
	VacationDays       int
	SalaryScale        int
	SalaryStep         int
	AdditionalBenefits string
	PensionScheme      string
	Position           string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

const contractColumns = `
	c.id,
	c.candidate_net_id,
	c.state,
	c.reviewer,
	c.start_date,
	c.end_date,
	c.hours_per_week,
	c.vacation_days,
	c.salary_scale,
	c.salary_step,
	c.additional_benefits,
	c.pension_scheme,
	c.position,
	c.created_at,
	c.updated_at`

func (r *ContractRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Contract, error) {
	var row contractRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+contractColumns+`
		FROM contracts c
		WHERE c.id = ?
	`, id).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == uuid.Nil {
		return nil, model.ErrNotFound
	}
	return row.toModel(), nil
}

// Save inserts unsaved drafts and updates everything else. The returned
// contract carries the identifier and timestamps assigned by the database.
func (r *ContractRepository) Save(ctx context.Context, contract *model.Contract) (*model.Contract, error) {
	if contract == nil {
		return nil, fmt.Errorf("%w: nil contract", model.ErrInvalidInput)
	}
	if contract.IsNew() {
		return r.insert(ctx, contract)
	}
	return r.update(ctx, contract)
}

func (r *ContractRepository) insert(ctx context.Context, c *model.Contract) (*model.Contract, error) {
	var row contractRow
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO contracts AS c (
			candidate_net_id, state, reviewer, start_date, end_date,
			hours_per_week, vacation_days, salary_scale, salary_step,
			additional_benefits, pension_scheme, position
		) VALUES (?, ?::contract_state, ?::contract_reviewer, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING `+contractColumns,
		c.CandidateNetID, string(c.State), string(c.Reviewer), c.StartDate, c.EndDate,
		c.Salary.HoursPerWeek, c.Salary.VacationDays, c.Salary.SalaryScale, c.Salary.SalaryStep,
		c.Additions.AdditionalBenefits, c.Additions.PensionScheme, c.Additions.Position,
	).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	return row.toModel(), nil
}

func (r *ContractRepository) update(ctx context.Context, c *model.Contract) (*model.Contract, error) {
	var row contractRow
	err := r.db.WithContext(ctx).Raw(`
		UPDATE contracts c SET
			candidate_net_id = ?,
			state = ?::contract_state,
			reviewer = ?::contract_reviewer,
			start_date = ?,
			end_date = ?,
			hours_per_week = ?,
			vacation_days = ?,
			salary_scale = ?,
			salary_step = ?,
			additional_benefits = ?,
			pension_scheme = ?,
			position = ?,
			updated_at = NOW()
		WHERE c.id = ?
		RETURNING `+contractColumns,
		c.CandidateNetID, string(c.State), string(c.Reviewer), c.StartDate, c.EndDate,
		c.Salary.HoursPerWeek, c.Salary.VacationDays, c.Salary.SalaryScale, c.Salary.SalaryStep,
		c.Additions.AdditionalBenefits, c.Additions.PensionScheme, c.Additions.Position,
		c.ID,
	).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == uuid.Nil {
		return nil, model.ErrNotFound
	}
	return row.toModel(), nil
}

func (r *ContractRepository) List(ctx context.Context, filter model.ContractFilter) ([]model.Contract, error) {
	where, args := filterClause(filter)
	query := `SELECT ` + contractColumns + ` FROM contracts c` + where + ` ORDER BY c.start_date ASC, c.created_at ASC`

	var rows []contractRow
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	contracts := make([]model.Contract, 0, len(rows))
	for i := range rows {
		contracts = append(contracts, *rows[i].toModel())
	}
	return contracts, nil
}

func (r *ContractRepository) CountByState(ctx context.Context, filter model.ContractFilter) (map[model.ContractState]int64, error) {
	where, args := filterClause(filter)
	query := `SELECT c.state, COUNT(*) AS total FROM contracts c` + where + ` GROUP BY c.state`

	var rows []struct {
		State string
		Total int64
	}
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	counts := make(map[model.ContractState]int64, len(rows))
	for _, row := range rows {
		counts[model.ContractState(row.State)] = row.Total
	}
	return counts, nil
}

func filterClause(filter model.ContractFilter) (string, []interface{}) {
	var (
		filters []string
		args    []interface{}
	)
	if filter.State != "" {
		filters = append(filters, "c.state = ?::contract_state")
		args = append(args, string(filter.State))
	}
	if filter.CandidateNetID != "" {
		filters = append(filters, "c.candidate_net_id = ?")
		args = append(args, filter.CandidateNetID)
	}
	if !filter.StartFrom.IsZero() {
		filters = append(filters, "c.start_date >= ?")
		args = append(args, model.DateOnly(filter.StartFrom))
	}
	if !filter.StartTo.IsZero() {
		filters = append(filters, "c.start_date <= ?")
		args = append(args, model.DateOnly(filter.StartTo))
	}
	if len(filters) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(filters, " AND "), args
}

func (row contractRow) toModel() *model.Contract {
	c := &model.Contract{
		ID:             row.ID,
		CandidateNetID: row.CandidateNetID,
		State:          model.ContractState(row.State),
		Reviewer:       model.Reviewer(row.Reviewer),
		StartDate:      model.DateOnly(row.StartDate),
		Salary: model.SalaryInfo{
			HoursPerWeek: row.HoursPerWeek,
			VacationDays: row.VacationDays,
			SalaryScale:  row.SalaryScale,
			SalaryStep:   row.SalaryStep,
		},
		Additions: model.ContractAdditions{
			AdditionalBenefits: row.AdditionalBenefits,
			PensionScheme:      row.PensionScheme,
			Position:           row.Position,
		},
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
	if row.EndDate != nil {
		end := model.DateOnly(*row.EndDate)
		c.EndDate = &end
	}
	return c
}
