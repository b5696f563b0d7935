package request

import (
	"strings"

	"gestao_terceiros/internal/domain/entities"
	"gestao_terceiros/internal/usecase"
)

type CandidateRequest struct {
	SupplierID   string `json:"supplier_id" binding:"required"`
	Amount       string `json:"amount"`
	PaymentTerms string `json:"payment_terms"`
	ValidUntil   string `json:"valid_until"`
	ArtifactRef  string `json:"artifact_ref"`
}

// ScreenRequest replaces the screened candidate set of a request.
type ScreenRequest struct {
	ActorID    string             `json:"actor_id" binding:"required"`
	Candidates []CandidateRequest `json:"candidates"`
}

func (r ScreenRequest) ToInputs() ([]usecase.CandidateInput, error) {
	inputs := make([]usecase.CandidateInput, 0, len(r.Candidates))
	for _, c := range r.Candidates {
		amount, err := ParseMoney(c.Amount)
		if err != nil {
			return nil, err
		}
		validUntil, err := ParseDate(c.ValidUntil)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, usecase.CandidateInput{
			SupplierID:   strings.TrimSpace(c.SupplierID),
			Amount:       amount,
			PaymentTerms: entities.PaymentTerms(c.PaymentTerms),
			ValidUntil:   validUntil,
			ArtifactRef:  c.ArtifactRef,
		})
	}
	return inputs, nil
}

// SelectSupplierRequest is the coordinator's pick from the screened
// set. Justification is mandatory.
type SelectSupplierRequest struct {
	ActorID       string `json:"actor_id" binding:"required"`
	SupplierID    string `json:"supplier_id" binding:"required"`
	Justification string `json:"justification" binding:"required"`
}

// RenegotiateValueRequest updates the winning proposal's amount.
type RenegotiateValueRequest struct {
	ActorID string `json:"actor_id" binding:"required"`
	Amount  string `json:"amount" binding:"required"`
}

func (r RenegotiateValueRequest) ResolveAmount() (float64, error) {
	return ParseMoney(r.Amount)
}
