package entities

import "time"

// ContractStatus tracks a materialized third-party contract.

type ContractStatus string

const (
	ContractStatusActive    ContractStatus = "em_execucao"
	ContractStatusSuspended ContractStatus = "suspenso"
	ContractStatusClosed    ContractStatus = "encerrado"
)

// Contract is the binding record materialized exactly once per
// contracting request, copying the agreed terms from the approved
// contract draft and the winning proposal.
//
// Storage model (DynamoDB):
//   - PK: request_id. Keying the table by the owning request is what
//     enforces one-contract-per-request at the storage layer.

type Contract struct {
	RequestID     string         `json:"request_id"`
	ID            string         `json:"id"`
	ProjectCode   string         `json:"project_code"`
	SupplierID    string         `json:"supplier_id"`
	CoordinatorID string         `json:"coordinator_id"`
	StartDate     time.Time      `json:"start_date,omitempty"`
	EndDate       time.Time      `json:"end_date,omitempty"`
	TotalValue    float64        `json:"total_value"`
	PaymentTerms  PaymentTerms   `json:"payment_terms,omitempty"`
	Object        string         `json:"object"`
	ArtifactRef   string         `json:"artifact_ref,omitempty"`
	Status        ContractStatus `json:"status"`
	CreatedAt     time.Time      `json:"created_at"`
}
