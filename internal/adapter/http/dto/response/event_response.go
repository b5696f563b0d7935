package response

import (
	"time"

	"gestao_terceiros/internal/domain/entities"
)

type EventResponse struct {
	ID          string `json:"id"`
	SupplierID  string `json:"supplier_id,omitempty"`
	RequestID   string `json:"request_id,omitempty"`
	ContractID  string `json:"contract_id,omitempty"`
	Description string `json:"description"`

	ForecastDate        time.Time `json:"forecast_date,omitempty"`
	ForecastAmount      float64   `json:"forecast_amount"`
	ForecastPaymentDate time.Time `json:"forecast_payment_date,omitempty"`

	DeliveredDate time.Time `json:"delivered_date,omitempty"`
	PaidAmount    float64   `json:"paid_amount"`
	PaymentDate   time.Time `json:"payment_date,omitempty"`

	Delivered     bool   `json:"delivered"`
	Late          bool   `json:"late"`
	Evaluation    string `json:"evaluation,omitempty"`
	ArtifactRef   string `json:"artifact_ref,omitempty"`
	Justification string `json:"justification,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromEvent(e entities.Event) EventResponse {
	return EventResponse{
		ID:                  e.ID,
		SupplierID:          e.SupplierID,
		RequestID:           e.RequestID,
		ContractID:          e.ContractID,
		Description:         e.Description,
		ForecastDate:        e.ForecastDate,
		ForecastAmount:      e.ForecastAmount,
		ForecastPaymentDate: e.ForecastPaymentDate,
		DeliveredDate:       e.DeliveredDate,
		PaidAmount:          e.PaidAmount,
		PaymentDate:         e.PaymentDate,
		Delivered:           e.Delivered,
		Late:                e.Late,
		Evaluation:          string(e.Evaluation),
		ArtifactRef:         e.ArtifactRef,
		Justification:       e.Justification,
		CreatedAt:           e.CreatedAt,
		UpdatedAt:           e.UpdatedAt,
	}
}

func FromEvents(events []entities.Event) []EventResponse {
	out := make([]EventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, FromEvent(e))
	}
	return out
}
