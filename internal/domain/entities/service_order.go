package entities

import "time"

// ServiceOrderStatus is the sequential chain for work orders issued
// under umbrella contracts. One authorized role decides each step;
// rejection anywhere is terminal.

type ServiceOrderStatus string

const (
	ServiceOrderStatusPendingLineLead ServiceOrderStatus = "pendente_lider"
	ServiceOrderStatusPendingUpload   ServiceOrderStatus = "pendente_suprimento"
	ServiceOrderStatusPendingManager  ServiceOrderStatus = "pendente_gerente"
	ServiceOrderStatusApproved        ServiceOrderStatus = "aprovada"
	ServiceOrderStatusRejected        ServiceOrderStatus = "rejeitada"
)

func (s ServiceOrderStatus) Terminal() bool {
	return s == ServiceOrderStatusApproved || s == ServiceOrderStatusRejected
}

// ServiceOrderRequest is a requester-submitted work order awaiting the
// line-lead -> supply upload -> manager chain.
//
// Storage model (DynamoDB):
//   - PK: id

type ServiceOrderRequest struct {
	ID          string    `json:"id"`
	ContractID  string    `json:"contract_id"`
	RequesterID string    `json:"requester_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Value       float64   `json:"value"`
	Deadline    time.Time `json:"deadline"`
	DocumentRef string    `json:"document_ref,omitempty"`

	Status         ServiceOrderStatus `json:"status"`
	LineLeadReview ApprovalRecord     `json:"line_lead_review"`
	ManagerReview  ApprovalRecord     `json:"manager_review"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ServiceOrder is materialized from an approved request, copying its
// terms.
//
// Storage model (DynamoDB):
//   - PK: order_request_id (one order per approved request)

type ServiceOrder struct {
	OrderRequestID string    `json:"order_request_id"`
	ID             string    `json:"id"`
	ContractID     string    `json:"contract_id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Value          float64   `json:"value"`
	Deadline       time.Time `json:"deadline"`
	DocumentRef    string    `json:"document_ref,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}
