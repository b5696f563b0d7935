package interfaces

import (
	"context"
	"gestao_terceiros/internal/domain/entities"
)

// IPaymentCalendarRepository abstracts DynamoDB persistence for the
// payment calendar cutoffs. List returns entries sorted ascending.

type IPaymentCalendarRepository interface {
	Add(ctx context.Context, entry entities.PaymentCalendarEntry) (entities.PaymentCalendarEntry, error)
	List(ctx context.Context) ([]entities.PaymentCalendarEntry, error)
}
