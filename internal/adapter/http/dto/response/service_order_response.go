package response

import (
	"time"

	"gestao_terceiros/internal/domain/entities"
)

type ServiceOrderRequestResponse struct {
	ID          string    `json:"id"`
	ContractID  string    `json:"contract_id"`
	RequesterID string    `json:"requester_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Value       float64   `json:"value"`
	Deadline    time.Time `json:"deadline,omitempty"`
	DocumentRef string    `json:"document_ref,omitempty"`

	Status         string                 `json:"status"`
	LineLeadReview ApprovalRecordResponse `json:"line_lead_review"`
	ManagerReview  ApprovalRecordResponse `json:"manager_review"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromServiceOrderRequest(r entities.ServiceOrderRequest) ServiceOrderRequestResponse {
	return ServiceOrderRequestResponse{
		ID:             r.ID,
		ContractID:     r.ContractID,
		RequesterID:    r.RequesterID,
		Title:          r.Title,
		Description:    r.Description,
		Value:          r.Value,
		Deadline:       r.Deadline,
		DocumentRef:    r.DocumentRef,
		Status:         string(r.Status),
		LineLeadReview: fromApprovalRecord(r.LineLeadReview),
		ManagerReview:  fromApprovalRecord(r.ManagerReview),
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

func FromServiceOrderRequests(requests []entities.ServiceOrderRequest) []ServiceOrderRequestResponse {
	out := make([]ServiceOrderRequestResponse, 0, len(requests))
	for _, r := range requests {
		out = append(out, FromServiceOrderRequest(r))
	}
	return out
}

type ServiceOrderResponse struct {
	ID             string    `json:"id"`
	OrderRequestID string    `json:"order_request_id"`
	ContractID     string    `json:"contract_id"`
	Title          string    `json:"title"`
	Description    string    `json:"description,omitempty"`
	Value          float64   `json:"value"`
	Deadline       time.Time `json:"deadline,omitempty"`
	DocumentRef    string    `json:"document_ref,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

func FromServiceOrder(o entities.ServiceOrder) ServiceOrderResponse {
	return ServiceOrderResponse{
		ID:             o.ID,
		OrderRequestID: o.OrderRequestID,
		ContractID:     o.ContractID,
		Title:          o.Title,
		Description:    o.Description,
		Value:          o.Value,
		Deadline:       o.Deadline,
		DocumentRef:    o.DocumentRef,
		CreatedAt:      o.CreatedAt,
	}
}
