package chain

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/nurpe/hr-contracts/internal/model"
)

//go:generate mockgen -source=checks.go -destination=mocks/mocks.go -package=mocks TokenVerifier,ContractFinder,IdentityChecker

type TokenVerifier interface {
	Verify(token string) (model.Principal, error)
}

type ContractFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.Contract, error)
}

type IdentityChecker interface {
	IsNetIDUnique(ctx context.Context, token, netID string) (bool, error)
}

const (
	minCredentialLength = 3
	maxCredentialLength = 50
)

// Authenticated re-verifies the bearer token and makes sure it still belongs
// to the principal the request was built for.
func Authenticated[R CallerRequest](verifier TokenVerifier) Check[R] {
	return Func("authenticated", func(_ context.Context, req R) error {
		session := req.Caller()
		if session.Token == "" || session.Principal.NetID == "" {
			return model.Fail(model.ErrNotAuthenticated, "JWT token invalid")
		}
		principal, err := verifier.Verify(session.Token)
		if err != nil {
			return model.Fail(model.ErrNotAuthenticated, "JWT token invalid")
		}
		if principal.NetID != session.Principal.NetID {
			return model.Fail(model.ErrNotAuthenticated, "JWT token does not belong to caller")
		}
		return nil
	})
}

func HR[R CallerRequest]() Check[R] {
	return Func("hr", func(_ context.Context, req R) error {
		if !req.Caller().Principal.IsHR() {
			return model.Fail(model.ErrNotAuthorized, "user is not HR")
		}
		return nil
	})
}

// ReviewingParty only lets the party whose turn it is touch an existing
// contract. New proposals can only come from HR.
func ReviewingParty[R ContractRequest](contracts ContractFinder) Check[R] {
	return Func("reviewing-party", func(ctx context.Context, req R) error {
		proposal := req.Proposal()
		principal := req.Caller().Principal
		if proposal == nil || proposal.IsNew() {
			if principal.IsHR() {
				return nil
			}
			return model.Fail(model.ErrNotAuthorized, "You are not allowed to create an initial proposal")
		}

		existing, err := findContract(ctx, contracts, proposal.ID)
		if err != nil {
			return err
		}
		if !existing.IsReviewedBy(principal) {
			return model.Fail(model.ErrNotAuthorized, "you are not the reviewing party of this contract")
		}
		return nil
	})
}

func ContractShape[R ContractRequest](contracts ContractFinder) Check[R] {
	return Func("contract-shape", func(ctx context.Context, req R) error {
		proposal := req.Proposal()
		if proposal == nil {
			return model.Fail(model.ErrInvalidContract, "contract is missing in request body")
		}
		if proposal.IsNew() {
			if strings.TrimSpace(proposal.CandidateNetID) == "" {
				return model.Fail(model.ErrMissingCandidateID, "no candidate ID")
			}
		} else {
			existing, err := findContract(ctx, contracts, proposal.ID)
			if err != nil {
				return err
			}
			if !existing.IsDraft() {
				return model.Fail(model.ErrNotDraft, "contract must be of type DRAFT to propose")
			}
		}
		if !model.IsValidContract(proposal) {
			return model.Fail(model.ErrInvalidContract, "this contract is not valid")
		}
		return nil
	})
}

func CandidateDetails[R CandidateRequest]() Check[R] {
	return Func("candidate-details", func(_ context.Context, req R) error {
		netID, password := req.Candidate()
		if netID == "" || password == "" {
			return model.Fail(model.ErrInvalidInput, "NetId or password is null")
		}
		if !validLength(netID) || !validLength(password) {
			return model.Fail(model.ErrInvalidInput, "NetId and password must be between 3 and 50 chars long")
		}
		if strings.Contains(strings.ToLower(netID), "hr") {
			return model.Fail(model.ErrInvalidInput, "NetId cannot be HR")
		}
		return nil
	})
}

func IdentityUnique[R CandidateRequest](identity IdentityChecker) Check[R] {
	return Func("identity-unique", func(ctx context.Context, req R) error {
		netID, _ := req.Candidate()
		unique, err := identity.IsNetIDUnique(ctx, req.Caller().Token, netID)
		if err != nil {
			return &model.Failure{
				Kind:   model.ErrDependencyFailed,
				Reason: fmt.Sprintf("identity check failed: %v", err),
			}
		}
		if !unique {
			return model.Fail(model.ErrDuplicateIdentity, "NetId already in use")
		}
		return nil
	})
}

func findContract(ctx context.Context, contracts ContractFinder, id uuid.UUID) (*model.Contract, error) {
	existing, err := contracts.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.Fail(model.ErrNotFound, "contract does not exist")
		}
		return nil, err
	}
	return existing, nil
}

func validLength(s string) bool {
	n := utf8.RuneCountInString(s)
	return n >= minCredentialLength && n <= maxCredentialLength
}
