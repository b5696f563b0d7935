package interfaces

import (
	"context"
	"gestao_terceiros/internal/domain/entities"
)

// ISupplierRepository abstracts DynamoDB persistence for the supplier
// catalog.

type ISupplierRepository interface {
	Create(ctx context.Context, s entities.Supplier) (entities.Supplier, error)
	GetByID(ctx context.Context, id string) (entities.Supplier, error)
	List(ctx context.Context) ([]entities.Supplier, error)
}
