package interfaces

import (
	"context"
	"gestao_terceiros/internal/domain/entities"
)

// IBulletinRepository abstracts DynamoDB persistence for the
// measurement bulletin (one per request).
//
// Save is version-conditioned like the request repository: empty
// entity with nil error means the optimistic write lost and the caller
// must re-read.

type IBulletinRepository interface {
	Put(ctx context.Context, bm entities.MeasurementBulletin) (entities.MeasurementBulletin, error)
	GetByRequestID(ctx context.Context, requestID string) (entities.MeasurementBulletin, error)
	Save(ctx context.Context, bm entities.MeasurementBulletin) (entities.MeasurementBulletin, error)
}
