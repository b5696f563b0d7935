package interfaces

import (
	"context"
	"gestao_terceiros/internal/domain/entities"
)

// IServiceOrderRepository abstracts DynamoDB persistence for service
// order requests and materialized service orders.
//
// CreateOrder is a conditional put keyed on the owning order request,
// mirroring the contract repository's uniqueness rule.

type IServiceOrderRepository interface {
	CreateRequest(ctx context.Context, r entities.ServiceOrderRequest) (entities.ServiceOrderRequest, error)
	GetRequestByID(ctx context.Context, id string) (entities.ServiceOrderRequest, error)
	SaveRequest(ctx context.Context, r entities.ServiceOrderRequest) (entities.ServiceOrderRequest, error)
	ListRequests(ctx context.Context) ([]entities.ServiceOrderRequest, error)
	CreateOrder(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error)
	GetOrderByRequestID(ctx context.Context, orderRequestID string) (entities.ServiceOrder, error)
}
