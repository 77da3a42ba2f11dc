package model

import (
	"errors"
	"fmt"
)

var (
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrNotAuthorized      = errors.New("not authorized")
	ErrNotFound           = errors.New("not found")
	ErrNotDraft           = errors.New("contract is not in DRAFT state")
	ErrInvalidContract    = errors.New("invalid contract")
	ErrMissingCandidateID = errors.New("missing candidate id")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidRange       = errors.New("end date can't happen before start date")
	ErrDuplicateIdentity  = errors.New("identity already in use")
	ErrDependencyFailed   = errors.New("dependency failed")

	ErrNotificationFailed    = fmt.Errorf("%w: notification failed", ErrDependencyFailed)
	ErrAccountCreationFailed = fmt.Errorf("%w: account creation failed", ErrDependencyFailed)
)

// Failure is a rejected request: Kind is one of the sentinels above and
// Reason is the message returned to the caller as is.
type Failure struct {
	Kind   error
	Reason string
}

func Fail(kind error, reason string) *Failure {
	return &Failure{Kind: kind, Reason: reason}
}

func (f *Failure) Error() string {
	if f.Reason == "" {
		return f.Kind.Error()
	}
	return f.Reason
}

func (f *Failure) Unwrap() error {
	return f.Kind
}
