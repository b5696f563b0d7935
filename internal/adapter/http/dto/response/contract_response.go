package response

import (
	"time"

	"gestao_terceiros/internal/domain/entities"
)

type ContractResponse struct {
	ID            string    `json:"id"`
	RequestID     string    `json:"request_id"`
	ProjectCode   string    `json:"project_code"`
	SupplierID    string    `json:"supplier_id"`
	CoordinatorID string    `json:"coordinator_id"`
	StartDate     time.Time `json:"start_date,omitempty"`
	EndDate       time.Time `json:"end_date,omitempty"`
	TotalValue    float64   `json:"total_value"`
	PaymentTerms  string    `json:"payment_terms,omitempty"`
	Object        string    `json:"object,omitempty"`
	ArtifactRef   string    `json:"artifact_ref,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

func FromContract(c entities.Contract) ContractResponse {
	return ContractResponse{
		ID:            c.ID,
		RequestID:     c.RequestID,
		ProjectCode:   c.ProjectCode,
		SupplierID:    c.SupplierID,
		CoordinatorID: c.CoordinatorID,
		StartDate:     c.StartDate,
		EndDate:       c.EndDate,
		TotalValue:    c.TotalValue,
		PaymentTerms:  string(c.PaymentTerms),
		Object:        c.Object,
		ArtifactRef:   c.ArtifactRef,
		Status:        string(c.Status),
		CreatedAt:     c.CreatedAt,
	}
}

func FromContracts(contracts []entities.Contract) []ContractResponse {
	out := make([]ContractResponse, 0, len(contracts))
	for _, c := range contracts {
		out = append(out, FromContract(c))
	}
	return out
}
