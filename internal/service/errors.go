package service

import "github.com/nurpe/hr-contracts/internal/model"

var (
	ErrNotAuthenticated      = model.ErrNotAuthenticated
	ErrNotAuthorized         = model.ErrNotAuthorized
	ErrNotFound              = model.ErrNotFound
	ErrNotDraft              = model.ErrNotDraft
	ErrInvalidContract       = model.ErrInvalidContract
	ErrMissingCandidateID    = model.ErrMissingCandidateID
	ErrInvalidInput          = model.ErrInvalidInput
	ErrDuplicateIdentity     = model.ErrDuplicateIdentity
	ErrDependencyFailed      = model.ErrDependencyFailed
	ErrNotificationFailed    = model.ErrNotificationFailed
	ErrAccountCreationFailed = model.ErrAccountCreationFailed
)
