package interfaces

import (
	"context"
	"gestao_terceiros/internal/domain/entities"
)

// IProposalRepository abstracts DynamoDB persistence for Proposal.
// Proposals are unique per (request, supplier); Upsert keeps that
// invariant by writing through the composite key.

type IProposalRepository interface {
	Upsert(ctx context.Context, p entities.Proposal) (entities.Proposal, error)
	GetByRequestAndSupplier(ctx context.Context, requestID, supplierID string) (entities.Proposal, error)
	ListByRequestID(ctx context.Context, requestID string) ([]entities.Proposal, error)
}
