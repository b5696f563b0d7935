package interfaces

import (
	"context"
	"gestao_terceiros/internal/domain/entities"
)

// IEventRepository abstracts DynamoDB persistence for delivery/payment
// events.

type IEventRepository interface {
	Create(ctx context.Context, e entities.Event) (entities.Event, error)
	GetByID(ctx context.Context, id string) (entities.Event, error)
	Save(ctx context.Context, e entities.Event) (entities.Event, error)
	Delete(ctx context.Context, id string) error
	ListByRequestID(ctx context.Context, requestID string) ([]entities.Event, error)
	ListByContractID(ctx context.Context, contractID string) ([]entities.Event, error)
	ListBySupplierID(ctx context.Context, supplierID string) ([]entities.Event, error)
	ListAll(ctx context.Context) ([]entities.Event, error)
	// ReparentToContract attaches every event of the request that has
	// no contract yet to the given contract. Returns how many moved.
	ReparentToContract(ctx context.Context, requestID, contractID string) (int, error)
}
