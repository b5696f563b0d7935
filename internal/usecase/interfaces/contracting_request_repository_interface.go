package interfaces

import (
	"context"
	"gestao_terceiros/internal/domain/entities"
)

// IContractingRequestRepository abstracts DynamoDB persistence for
// ContractingRequest.
//
// Save performs a version-conditioned write: it only succeeds when the
// stored version still matches the version the entity was read with,
// and returns an empty entity (nil error) on conflict so callers can
// re-read and retry. This is what makes concurrent gate decisions safe.

type IContractingRequestRepository interface {
	Create(ctx context.Context, r entities.ContractingRequest) (entities.ContractingRequest, error)
	GetByID(ctx context.Context, id string) (entities.ContractingRequest, error)
	Save(ctx context.Context, r entities.ContractingRequest) (entities.ContractingRequest, error)
}
