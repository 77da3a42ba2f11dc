//go:build integration

package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/nurpe/hr-contracts/internal/model"
	"github.com/nurpe/hr-contracts/internal/repository"
	"github.com/nurpe/hr-contracts/internal/testutil/containers"
)

type ContractRepositorySuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	repo     *repository.ContractRepository
}

func TestContractRepositorySuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(ContractRepositorySuite))
}

func (s *ContractRepositorySuite) SetupSuite() {
	s.postgres = containers.NewPostgresContainer(s.T())
	s.repo = repository.NewContractRepository(s.postgres.DB)
}

func (s *ContractRepositorySuite) SetupTest() {
	s.Require().NoError(s.postgres.TruncateTables(context.Background(), "contracts"))
}

func newDraft(candidate string, start time.Time) *model.Contract {
	return &model.Contract{
		CandidateNetID: candidate,
		State:          model.ContractStateDraft,
		Reviewer:       model.ReviewerCandidate,
		StartDate:      start,
		Salary:         model.SalaryInfo{HoursPerWeek: 40, VacationDays: 25, SalaryScale: 4, SalaryStep: 1},
		Additions:      model.ContractAdditions{Position: "engineer", PensionScheme: "ABP"},
	}
}

func (s *ContractRepositorySuite) TestSaveInsertsAndFinds() {
	ctx := context.Background()
	end := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	draft := newDraft("alice", time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC))
	draft.EndDate = &end

	saved, err := s.repo.Save(ctx, draft)
	s.Require().NoError(err)
	s.NotEqual(uuid.Nil, saved.ID)
	s.False(saved.CreatedAt.IsZero())

	found, err := s.repo.FindByID(ctx, saved.ID)
	s.Require().NoError(err)
	s.Equal("alice", found.CandidateNetID)
	s.Equal(model.ContractStateDraft, found.State)
	s.Equal(model.ReviewerCandidate, found.Reviewer)
	s.Equal(draft.StartDate, found.StartDate)
	s.Require().NotNil(found.EndDate)
	s.Equal(end, *found.EndDate)
	s.Equal(draft.Salary, found.Salary)
	s.Equal(draft.Additions, found.Additions)
}

func (s *ContractRepositorySuite) TestSaveUpdatesExisting() {
	ctx := context.Background()
	saved, err := s.repo.Save(ctx, newDraft("alice", time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)))
	s.Require().NoError(err)

	saved.State = model.ContractStateAccepted
	saved.Reviewer = model.ReviewerEmployer
	saved.Salary.HoursPerWeek = 32
	updated, err := s.repo.Save(ctx, saved)
	s.Require().NoError(err)
	s.Equal(saved.ID, updated.ID)
	s.Equal(model.ContractStateAccepted, updated.State)
	s.Equal(32, updated.Salary.HoursPerWeek)
	s.False(updated.UpdatedAt.Before(saved.UpdatedAt))
}

func (s *ContractRepositorySuite) TestMissingContract() {
	ctx := context.Background()
	_, err := s.repo.FindByID(ctx, uuid.New())
	s.ErrorIs(err, model.ErrNotFound)

	ghost := newDraft("alice", time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC))
	ghost.ID = uuid.New()
	_, err = s.repo.Save(ctx, ghost)
	s.ErrorIs(err, model.ErrNotFound)
}

func (s *ContractRepositorySuite) TestListAndCount() {
	ctx := context.Background()
	sept := time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)
	oct := time.Date(2025, time.October, 15, 0, 0, 0, 0, time.UTC)

	_, err := s.repo.Save(ctx, newDraft("alice", sept))
	s.Require().NoError(err)
	accepted := newDraft("carol", oct)
	accepted.State = model.ContractStateAccepted
	_, err = s.repo.Save(ctx, accepted)
	s.Require().NoError(err)

	all, err := s.repo.List(ctx, model.ContractFilter{})
	s.Require().NoError(err)
	s.Len(all, 2)
	s.Equal("alice", all[0].CandidateNetID)

	drafts, err := s.repo.List(ctx, model.ContractFilter{State: model.ContractStateDraft})
	s.Require().NoError(err)
	s.Len(drafts, 1)

	window, err := s.repo.List(ctx, model.ContractFilter{StartFrom: oct})
	s.Require().NoError(err)
	s.Len(window, 1)
	s.Equal("carol", window[0].CandidateNetID)

	counts, err := s.repo.CountByState(ctx, model.ContractFilter{})
	s.Require().NoError(err)
	s.Equal(int64(1), counts[model.ContractStateDraft])
	s.Equal(int64(1), counts[model.ContractStateAccepted])
}
