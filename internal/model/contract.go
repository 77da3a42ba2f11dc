package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type ContractState string

const (
	ContractStateDraft      ContractState = "DRAFT"
	ContractStateAccepted   ContractState = "ACCEPTED"
	ContractStateTerminated ContractState = "TERMINATED"
)

func (s ContractState) Valid() bool {
	switch s {
	case ContractStateDraft, ContractStateAccepted, ContractStateTerminated:
		return true
	}
	return false
}

type Reviewer string

const (
	ReviewerEmployer  Reviewer = "EMPLOYER"
	ReviewerCandidate Reviewer = "CANDIDATE"
)

// Opposite returns the party that reviews after r has acted.
func (r Reviewer) Opposite() Reviewer {
	if r == ReviewerEmployer {
		return ReviewerCandidate
	}
	return ReviewerEmployer
}

const (
	// MaxContractDurationDays is five average years (365.25 * 5).
	MaxContractDurationDays = 1826
	day                     = 24 * time.Hour
)

var allowedStartDays = map[int]struct{}{1: {}, 15: {}}

type SalaryInfo struct {
	HoursPerWeek int `json:"hours_per_week"`
	VacationDays int `json:"vacation_days"`
	SalaryScale  int `json:"salary_scale"`
	SalaryStep   int `json:"salary_step"`
}

func (s *SalaryInfo) SetHoursPerWeek(v int) error {
	if v <= 0 {
		return fmt.Errorf("%w: hours per week can't be <= 0", ErrInvalidInput)
	}
	s.HoursPerWeek = v
	return nil
}

func (s *SalaryInfo) SetVacationDays(v int) error {
	if v <= 0 {
		return fmt.Errorf("%w: vacation days can't be <= 0", ErrInvalidInput)
	}
	s.VacationDays = v
	return nil
}

func (s *SalaryInfo) SetSalaryScale(v int) error {
	if v < 0 {
		return fmt.Errorf("%w: salary scale can't be negative", ErrInvalidInput)
	}
	s.SalaryScale = v
	return nil
}

func (s *SalaryInfo) SetSalaryStep(v int) error {
	if v < 0 {
		return fmt.Errorf("%w: salary step can't be negative", ErrInvalidInput)
	}
	s.SalaryStep = v
	return nil
}

type ContractAdditions struct {
	AdditionalBenefits string `json:"additional_benefits"`
	PensionScheme      string `json:"pension_scheme"`
	Position           string `json:"position"`
}

type Contract struct {
	ID             uuid.UUID // uuid.Nil until the draft is saved
	CandidateNetID string
	State          ContractState
	Reviewer       Reviewer
	StartDate      time.Time
	EndDate        *time.Time // nil for open-ended contracts
	Salary         SalaryInfo
	Additions      ContractAdditions
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewContract builds a contract whose dates and salary terms already hold
// the payroll invariants.
func NewContract(
	state ContractState,
	candidateNetID string,
	startDate time.Time,
	endDate *time.Time,
	salary SalaryInfo,
	additions ContractAdditions,
) (*Contract, error) {
	c := &Contract{
		State:          state,
		CandidateNetID: candidateNetID,
		Additions:      additions,
	}
	if err := c.SetStartDate(startDate); err != nil {
		return nil, err
	}
	if err := c.SetEndDate(endDate); err != nil {
		return nil, err
	}
	if err := c.SetSalary(salary); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Contract) IsNew() bool {
	return c.ID == uuid.Nil
}

func (c *Contract) IsDraft() bool {
	return c.State == ContractStateDraft
}

// Equal reports identity equality; unsaved drafts are never equal to anything.
func (c *Contract) Equal(other *Contract) bool {
	if c == nil || other == nil {
		return false
	}
	if c.ID == uuid.Nil || other.ID == uuid.Nil {
		return false
	}
	return c.ID == other.ID
}

func (c *Contract) SetStartDate(startDate time.Time) error {
	startDate = DateOnly(startDate)
	if !IsValidStartDate(startDate) {
		return fmt.Errorf("%w: invalid start date", ErrInvalidInput)
	}
	if c.EndDate != nil {
		days, err := ElapsedDays(startDate, *c.EndDate)
		if err != nil || !IsValidDuration(days) {
			return fmt.Errorf("%w: start date does not fit the current end date", ErrInvalidInput)
		}
	}
	c.StartDate = startDate
	return nil
}

// SetEndDate validates endDate against the current start date. A nil end
// date makes the contract open-ended.
func (c *Contract) SetEndDate(endDate *time.Time) error {
	if endDate == nil {
		c.EndDate = nil
		return nil
	}
	end := DateOnly(*endDate)
	days, err := ElapsedDays(c.StartDate, end)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if !IsValidDuration(days) {
		return fmt.Errorf("%w: invalid end date: temporary contracts can last a maximum of 5 years", ErrInvalidInput)
	}
	c.EndDate = &end
	return nil
}

// SetSalary applies every salary field through its own setter; on error the
// current terms stay as they were.
func (c *Contract) SetSalary(salary SalaryInfo) error {
	next := c.Salary
	if err := next.SetHoursPerWeek(salary.HoursPerWeek); err != nil {
		return err
	}
	if err := next.SetVacationDays(salary.VacationDays); err != nil {
		return err
	}
	if err := next.SetSalaryScale(salary.SalaryScale); err != nil {
		return err
	}
	if err := next.SetSalaryStep(salary.SalaryStep); err != nil {
		return err
	}
	c.Salary = next
	return nil
}

// ApplyProposal copies the negotiable terms of proposal onto c.
func (c *Contract) ApplyProposal(proposal *Contract) error {
	// Clear the end date first so a later start date is not checked against the old end.
	c.EndDate = nil
	if err := c.SetStartDate(proposal.StartDate); err != nil {
		return err
	}
	if err := c.SetEndDate(proposal.EndDate); err != nil {
		return err
	}
	if err := c.SetSalary(proposal.Salary); err != nil {
		return err
	}
	c.Additions = proposal.Additions
	return nil
}

// Duration returns the contract length in days, or false when open-ended.
func (c *Contract) Duration() (int, bool) {
	if c.EndDate == nil {
		return 0, false
	}
	days, err := ElapsedDays(c.StartDate, *c.EndDate)
	if err != nil {
		return 0, false
	}
	return days, true
}

// IsReviewedBy reports whether p is the party whose turn it is.
func (c *Contract) IsReviewedBy(p Principal) bool {
	switch c.Reviewer {
	case ReviewerEmployer:
		return p.IsHR()
	case ReviewerCandidate:
		return p.NetID != "" && p.NetID == c.CandidateNetID
	}
	return false
}

func IsValidStartDate(date time.Time) bool {
	if date.IsZero() {
		return false
	}
	_, ok := allowedStartDays[date.Day()]
	return ok
}

func ElapsedDays(start, end time.Time) (int, error) {
	start, end = DateOnly(start), DateOnly(end)
	if end.Before(start) {
		return 0, ErrInvalidRange
	}
	return int(end.Sub(start) / day), nil
}

func IsValidDuration(days int) bool {
	return days > 0 && days <= MaxContractDurationDays
}

func IsValidContract(c *Contract) bool {
	if c == nil || !IsValidStartDate(c.StartDate) {
		return false
	}
	if c.EndDate == nil {
		return true
	}
	days, err := ElapsedDays(c.StartDate, *c.EndDate)
	if err != nil {
		return false
	}
	return IsValidDuration(days)
}

func DateOnly(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
