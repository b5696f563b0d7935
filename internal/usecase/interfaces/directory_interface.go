package interfaces

import (
	"context"
	"gestao_terceiros/internal/domain/entities"
)

// IDirectory resolves users by id, role and organizational grouping.
// It is injected into every operation that authorizes gate
// participation or computes notification recipients; there is no
// global catalog.

type IDirectory interface {
	GetUser(ctx context.Context, id string) (entities.User, error)
	UsersByRole(ctx context.Context, role entities.Role) ([]entities.User, error)
	// ManagersForCoordinator returns every manager sharing at least
	// one work center with the given coordinator.
	ManagersForCoordinator(ctx context.Context, coordinatorID string) ([]entities.User, error)
}
