package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nurpe/hr-contracts/internal/chain"
	"github.com/nurpe/hr-contracts/internal/config"
	"github.com/nurpe/hr-contracts/internal/metrics"
	"github.com/nurpe/hr-contracts/internal/model"
)

const (
	opPropose   = "propose"
	opAccept    = "accept"
	opTerminate = "terminate"
	opGet       = "get"
)

// ContractService drives a contract through its negotiation: proposals go
// back and forth between HR and the candidate until one side accepts or HR
// terminates.
type ContractService struct {
	contracts ContractStore
	notifier  Notifier
	log       zerolog.Logger
	metrics   *metrics.Metrics
	hrTarget  string

	proposeChain   *chain.Chain[chain.ProposalRequest]
	acceptChain    *chain.Chain[chain.DecisionRequest]
	terminateChain *chain.Chain[chain.DecisionRequest]
	readChain      *chain.Chain[chain.DecisionRequest]
}

// WorkflowResult is the stored contract after an operation together with the
// id of the message that announced it.
type WorkflowResult struct {
	Contract  *model.Contract
	MessageID string
}

func NewContractService(
	contracts ContractStore,
	notifier Notifier,
	verifier chain.TokenVerifier,
	cfg *config.Config,
	log zerolog.Logger,
	m *metrics.Metrics,
) *ContractService {
	hrTarget := model.HRTarget
	if cfg != nil && cfg.Contracts.HRTarget != "" {
		hrTarget = cfg.Contracts.HRTarget
	}
	return &ContractService{
		contracts: contracts,
		notifier:  notifier,
		log:       log,
		metrics:   m,
		hrTarget:  hrTarget,
		proposeChain: chain.New(
			chain.Authenticated[chain.ProposalRequest](verifier),
			chain.ReviewingParty[chain.ProposalRequest](contracts),
			chain.ContractShape[chain.ProposalRequest](contracts),
		),
		acceptChain: chain.New(
			chain.Authenticated[chain.DecisionRequest](verifier),
		),
		terminateChain: chain.New(
			chain.Authenticated[chain.DecisionRequest](verifier),
			chain.HR[chain.DecisionRequest](),
		),
		readChain: chain.New(
			chain.Authenticated[chain.DecisionRequest](verifier),
		),
	}
}

// Propose amends an existing draft and hands it to the other party. Without
// an id HR opens a new draft for the candidate named in the proposal.
func (s *ContractService) Propose(ctx context.Context, req chain.ProposalRequest) (res *WorkflowResult, err error) {
	defer func() { s.metrics.ObserveOperation(opPropose, err) }()

	if err := s.proposeChain.Handle(ctx, req); err != nil {
		s.metrics.ObserveRejection(opPropose, err)
		return nil, err
	}

	proposal := req.Contract
	if proposal.IsNew() {
		return s.originate(ctx, req)
	}

	existing, err := s.load(ctx, proposal.ID)
	if err != nil {
		return nil, err
	}
	if !existing.IsDraft() {
		return nil, model.Fail(ErrNotDraft, "contract must be of type DRAFT to propose")
	}

	working := *existing
	if err := working.ApplyProposal(proposal); err != nil {
		return nil, err
	}
	working.Reviewer = existing.Reviewer.Opposite()

	saved, err := s.contracts.Save(ctx, &working)
	if err != nil {
		return nil, fmt.Errorf("save proposal: %w", err)
	}
	msg, err := s.proposalMessage(saved)
	if err != nil {
		return nil, err
	}
	return s.notify(ctx, req.Token, saved, msg)
}

func (s *ContractService) originate(ctx context.Context, req chain.ProposalRequest) (*WorkflowResult, error) {
	p := req.Contract
	draft, err := model.NewContract(model.ContractStateDraft, p.CandidateNetID, p.StartDate, p.EndDate, p.Salary, p.Additions)
	if err != nil {
		return nil, err
	}
	draft.Reviewer = model.ReviewerCandidate

	saved, err := s.contracts.Save(ctx, draft)
	if err != nil {
		return nil, fmt.Errorf("save proposal: %w", err)
	}
	s.metrics.IncContractsCreated()

	msg, err := s.proposalMessage(saved)
	if err != nil {
		return nil, err
	}
	return s.notify(ctx, req.Token, saved, msg)
}

// Accept closes the negotiation on behalf of the current reviewer.
func (s *ContractService) Accept(ctx context.Context, req chain.DecisionRequest) (res *WorkflowResult, err error) {
	defer func() { s.metrics.ObserveOperation(opAccept, err) }()

	if err := s.acceptChain.Handle(ctx, req); err != nil {
		s.metrics.ObserveRejection(opAccept, err)
		return nil, err
	}

	before, saved, err := s.updateStatus(ctx, req.ContractID, model.ContractStateAccepted, req.Principal)
	if err != nil {
		return nil, err
	}

	to := before.CandidateNetID
	if before.Reviewer == model.ReviewerCandidate {
		to = s.hrTarget
	}
	msg, err := s.contractMessage(saved, to, model.MessageContractApprove, "Contract proposal has been approved", req.Principal.IsHR())
	if err != nil {
		return nil, err
	}
	return s.notify(ctx, req.Token, saved, msg)
}

// Terminate ends a draft negotiation. Only HR can do this.
func (s *ContractService) Terminate(ctx context.Context, req chain.DecisionRequest) (res *WorkflowResult, err error) {
	defer func() { s.metrics.ObserveOperation(opTerminate, err) }()

	if err := s.terminateChain.Handle(ctx, req); err != nil {
		s.metrics.ObserveRejection(opTerminate, err)
		return nil, err
	}

	_, saved, err := s.updateStatus(ctx, req.ContractID, model.ContractStateTerminated, req.Principal)
	if err != nil {
		return nil, err
	}

	msg, err := s.contractMessage(saved, saved.CandidateNetID, model.MessageContractTerminate, "Contract proposal has been terminated", true)
	if err != nil {
		return nil, err
	}
	return s.notify(ctx, req.Token, saved, msg)
}

// updateStatus moves a draft into state. Accepting is reserved for the
// current reviewer. It returns the contract as loaded and as saved.
func (s *ContractService) updateStatus(
	ctx context.Context,
	id uuid.UUID,
	state model.ContractState,
	actor model.Principal,
) (*model.Contract, *model.Contract, error) {
	existing, err := s.load(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if !existing.IsDraft() {
		return nil, nil, model.Fail(ErrNotDraft, "contract is not in DRAFT state")
	}
	if state == model.ContractStateAccepted && !existing.IsReviewedBy(actor) {
		return nil, nil, model.Fail(ErrNotAuthorized, "you are not the reviewing party of this contract")
	}

	updated := *existing
	updated.State = state
	saved, err := s.contracts.Save(ctx, &updated)
	if err != nil {
		return nil, nil, fmt.Errorf("save contract state: %w", err)
	}
	return existing, saved, nil
}

// Get returns a contract to HR or to the candidate it was written for.
func (s *ContractService) Get(ctx context.Context, req chain.DecisionRequest) (c *model.Contract, err error) {
	defer func() { s.metrics.ObserveOperation(opGet, err) }()

	if err := s.readChain.Handle(ctx, req); err != nil {
		s.metrics.ObserveRejection(opGet, err)
		return nil, err
	}
	contract, err := s.load(ctx, req.ContractID)
	if err != nil {
		return nil, err
	}
	if !canRead(req.Principal, contract) {
		return nil, model.Fail(ErrNotAuthorized, "you are not allowed to view this contract")
	}
	return contract, nil
}

func (s *ContractService) Reviewer(ctx context.Context, req chain.DecisionRequest) (model.Reviewer, error) {
	if err := s.readChain.Handle(ctx, req); err != nil {
		return "", err
	}
	contract, err := s.load(ctx, req.ContractID)
	if err != nil {
		return "", err
	}
	return contract.Reviewer, nil
}

func (s *ContractService) load(ctx context.Context, id uuid.UUID) (*model.Contract, error) {
	contract, err := s.contracts.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, model.Fail(ErrNotFound, "contract does not exist")
		}
		return nil, fmt.Errorf("load contract: %w", err)
	}
	return contract, nil
}

func (s *ContractService) proposalMessage(c *model.Contract) (model.Message, error) {
	toCandidate := c.Reviewer == model.ReviewerCandidate
	to := s.hrTarget
	if toCandidate {
		to = c.CandidateNetID
	}
	return s.contractMessage(c, to, model.MessageContractPropose, "A new contract proposal has been sent", toCandidate)
}

func (s *ContractService) contractMessage(c *model.Contract, to string, kind model.MessageType, contents string, fromHR bool) (model.Message, error) {
	payload, err := model.NewMessagePayload(model.PayloadTypeContract, c.ID)
	if err != nil {
		return model.Message{}, err
	}
	return model.Message{
		To:       to,
		Type:     kind,
		Contents: contents,
		Payload:  []model.MessagePayload{payload},
		FromHR:   fromHR,
	}, nil
}

// notify reports delivery failures to the caller; the contract change is
// already stored by then and stays in place.
func (s *ContractService) notify(ctx context.Context, token string, c *model.Contract, msg model.Message) (*WorkflowResult, error) {
	res := &WorkflowResult{Contract: c}
	id, err := s.notifier.Send(ctx, token, msg)
	if err != nil {
		s.metrics.ObserveNotificationFailure(msg.Type)
		s.log.Warn().
			Err(err).
			Str("contract_id", c.ID.String()).
			Str("message_type", string(msg.Type)).
			Str("to", msg.To).
			Msg("contract saved but notification failed")
		return res, fmt.Errorf("%w: %v", ErrNotificationFailed, err)
	}
	res.MessageID = id
	return res, nil
}

func isNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func canRead(p model.Principal, c *model.Contract) bool {
	return p.IsHR() || (p.NetID != "" && p.NetID == c.CandidateNetID)
}
