package interfaces

import (
	"context"
	"gestao_terceiros/internal/domain/entities"
)

// IContractRepository abstracts DynamoDB persistence for materialized
// contracts.
//
// Create is a conditional put keyed on the owning request: when a
// contract already exists for that request the write is rejected by
// the storage layer and Create returns an empty entity with nil error.
// Losing that race is a benign outcome for the caller.

type IContractRepository interface {
	Create(ctx context.Context, c entities.Contract) (entities.Contract, error)
	GetByRequestID(ctx context.Context, requestID string) (entities.Contract, error)
	GetByID(ctx context.Context, id string) (entities.Contract, error)
	Save(ctx context.Context, c entities.Contract) (entities.Contract, error)
	List(ctx context.Context) ([]entities.Contract, error)
}
