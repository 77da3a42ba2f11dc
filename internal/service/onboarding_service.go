package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nurpe/hr-contracts/internal/chain"
	"github.com/nurpe/hr-contracts/internal/metrics"
	"github.com/nurpe/hr-contracts/internal/model"
)

const opCreateCandidate = "create_candidate"

// OnboardingService registers a new candidate account together with the
// first draft of their contract.
type OnboardingService struct {
	contracts ContractStore
	identity  IdentityClient
	log       zerolog.Logger
	metrics   *metrics.Metrics
	chain     *chain.Chain[chain.OnboardingRequest]
}

func NewOnboardingService(
	contracts ContractStore,
	identity IdentityClient,
	verifier chain.TokenVerifier,
	log zerolog.Logger,
	m *metrics.Metrics,
) *OnboardingService {
	return &OnboardingService{
		contracts: contracts,
		identity:  identity,
		log:       log,
		metrics:   m,
		chain: chain.New(
			chain.Authenticated[chain.OnboardingRequest](verifier),
			chain.HR[chain.OnboardingRequest](),
			chain.CandidateDetails[chain.OnboardingRequest](),
			chain.ContractShape[chain.OnboardingRequest](contracts),
			chain.IdentityUnique[chain.OnboardingRequest](identity),
		),
	}
}

// CreateCandidate stores the draft only after the identity service has
// created the account, so a failed registration leaves nothing behind.
func (s *OnboardingService) CreateCandidate(ctx context.Context, req chain.OnboardingRequest) (c *model.Contract, err error) {
	defer func() { s.metrics.ObserveOperation(opCreateCandidate, err) }()

	if req.Contract != nil {
		draft := *req.Contract
		draft.ID = uuid.Nil
		draft.State = model.ContractStateDraft
		draft.Reviewer = model.ReviewerCandidate
		draft.CandidateNetID = req.CandidateNetID
		req.Contract = &draft
	}

	if err := s.chain.Handle(ctx, req); err != nil {
		s.metrics.ObserveRejection(opCreateCandidate, err)
		return nil, err
	}

	p := req.Contract
	draft, err := model.NewContract(model.ContractStateDraft, req.CandidateNetID, p.StartDate, p.EndDate, p.Salary, p.Additions)
	if err != nil {
		return nil, err
	}
	draft.Reviewer = model.ReviewerCandidate

	if err := s.identity.CreateAccount(ctx, req.Token, req.CandidateNetID, req.Password, model.RoleCandidate); err != nil {
		s.log.Warn().Err(err).Str("candidate", req.CandidateNetID).Msg("candidate account creation failed")
		return nil, fmt.Errorf("%w: %v", ErrAccountCreationFailed, err)
	}

	saved, err := s.contracts.Save(ctx, draft)
	if err != nil {
		return nil, fmt.Errorf("save candidate contract: %w", err)
	}
	s.metrics.IncContractsCreated()
	s.log.Info().Str("contract_id", saved.ID.String()).Str("candidate", saved.CandidateNetID).Msg("candidate onboarded")
	return saved, nil
}
