package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/nurpe/hr-contracts/internal/model"
)

//go:generate mockgen -source=ports.go -destination=mocks/mocks.go -package=mocks ContractStore,Notifier,IdentityClient

type ContractStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.Contract, error)
	Save(ctx context.Context, contract *model.Contract) (*model.Contract, error)
	List(ctx context.Context, filter model.ContractFilter) ([]model.Contract, error)
	CountByState(ctx context.Context, filter model.ContractFilter) (map[model.ContractState]int64, error)
}

type Notifier interface {
	Send(ctx context.Context, token string, msg model.Message) (string, error)
}

type IdentityClient interface {
	CreateAccount(ctx context.Context, token, netID, password, role string) error
	IsNetIDUnique(ctx context.Context, token, netID string) (bool, error)
}
