package service_test

import (
	"context"
	"errors"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/nurpe/hr-contracts/internal/chain"
	"github.com/nurpe/hr-contracts/internal/model"
	"github.com/nurpe/hr-contracts/internal/service"
)

func (s *ContractServiceSuite) candidateRequest(p model.Principal, netID string) chain.OnboardingRequest {
	return chain.OnboardingRequest{
		Session:        s.session(p),
		CandidateNetID: netID,
		Password:       "s3cret",
		Contract: &model.Contract{
			StartDate: day(2025, time.November, 1),
			Salary:    terms(38),
		},
	}
}

func (s *ContractServiceSuite) TestCreateCandidate_DuplicateIdentity() {
	ctx := context.Background()
	s.identity.EXPECT().IsNetIDUnique(ctx, gomock.Any(), "alice").Return(false, nil)

	_, err := s.onboarding.CreateCandidate(ctx, s.candidateRequest(hr, "alice"))
	s.ErrorIs(err, service.ErrDuplicateIdentity)
	s.Zero(s.store.len())
}

func (s *ContractServiceSuite) TestCreateCandidate_AccountCreationFails() {
	ctx := context.Background()
	s.identity.EXPECT().IsNetIDUnique(ctx, gomock.Any(), "alice").Return(true, nil)
	s.identity.EXPECT().CreateAccount(ctx, gomock.Any(), "alice", "s3cret", model.RoleCandidate).
		Return(errors.New("identity service returned 500"))

	_, err := s.onboarding.CreateCandidate(ctx, s.candidateRequest(hr, "alice"))
	s.ErrorIs(err, service.ErrAccountCreationFailed)
	s.ErrorIs(err, service.ErrDependencyFailed)
	s.Zero(s.store.len())
}

func (s *ContractServiceSuite) TestCreateCandidate_Rejections() {
	ctx := context.Background()

	_, err := s.onboarding.CreateCandidate(ctx, s.candidateRequest(alice, "dave"))
	s.ErrorIs(err, service.ErrNotAuthorized)

	_, err = s.onboarding.CreateCandidate(ctx, s.candidateRequest(hr, "hrdave"))
	s.ErrorIs(err, service.ErrInvalidInput)

	_, err = s.onboarding.CreateCandidate(ctx, s.candidateRequest(hr, "ab"))
	s.ErrorIs(err, service.ErrInvalidInput)

	missing := s.candidateRequest(hr, "dave")
	missing.Contract = nil
	_, err = s.onboarding.CreateCandidate(ctx, missing)
	s.ErrorIs(err, service.ErrInvalidContract)

	badStart := s.candidateRequest(hr, "dave")
	badStart.Contract.StartDate = day(2025, time.November, 3)
	_, err = s.onboarding.CreateCandidate(ctx, badStart)
	s.ErrorIs(err, service.ErrInvalidContract)

	s.Zero(s.store.len())
}

func (s *ContractServiceSuite) TestCreateCandidate_InvalidSalaryNeverCreatesAccount() {
	ctx := context.Background()
	s.identity.EXPECT().IsNetIDUnique(ctx, gomock.Any(), "dave").Return(true, nil)

	req := s.candidateRequest(hr, "dave")
	req.Contract.Salary = terms(-4)
	_, err := s.onboarding.CreateCandidate(ctx, req)
	s.ErrorIs(err, service.ErrInvalidInput)
	s.Zero(s.store.len())
}

func (s *ContractServiceSuite) TestCreateCandidate_IgnoresClientSuppliedState() {
	ctx := context.Background()
	s.identity.EXPECT().IsNetIDUnique(ctx, gomock.Any(), "dave").Return(true, nil)
	s.identity.EXPECT().CreateAccount(ctx, gomock.Any(), "dave", "s3cret", model.RoleCandidate).Return(nil)

	req := s.candidateRequest(hr, "dave")
	req.Contract.State = model.ContractStateAccepted
	req.Contract.Reviewer = model.ReviewerEmployer
	req.Contract.CandidateNetID = "someone-else"

	created, err := s.onboarding.CreateCandidate(ctx, req)
	s.Require().NoError(err)
	s.Equal(model.ContractStateDraft, created.State)
	s.Equal(model.ReviewerCandidate, created.Reviewer)
	s.Equal("dave", created.CandidateNetID)
	s.Equal(model.ContractStateAccepted, req.Contract.State, "caller's contract is not modified")
}
