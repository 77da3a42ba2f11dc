package chain

import (
	"github.com/google/uuid"

	"github.com/nurpe/hr-contracts/internal/model"
)

// Session is the authenticated caller together with the raw bearer token
// that is forwarded to downstream services.
type Session struct {
	Principal model.Principal
	Token     string
}

func (s Session) Caller() Session { return s }

type CallerRequest interface {
	Caller() Session
}

type ContractRequest interface {
	CallerRequest
	Proposal() *model.Contract
}

type CandidateRequest interface {
	CallerRequest
	Candidate() (netID, password string)
}

type OnboardingRequest struct {
	Session
	CandidateNetID string
	Password       string
	Contract       *model.Contract
}

func (r OnboardingRequest) Proposal() *model.Contract { return r.Contract }

func (r OnboardingRequest) Candidate() (string, string) {
	return r.CandidateNetID, r.Password
}

type ProposalRequest struct {
	Session
	Contract *model.Contract
}

func (r ProposalRequest) Proposal() *model.Contract { return r.Contract }

type DecisionRequest struct {
	Session
	ContractID uuid.UUID
}

// ExportRequest asks for a listing of contracts matching Filter.
type ExportRequest struct {
	Session
	Filter model.ContractFilter
}
