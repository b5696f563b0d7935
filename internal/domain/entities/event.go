package entities

import "time"

// Event is a delivery/payment milestone. Created under a request while
// the contract does not exist yet, or directly under a contract; events
// still pointing only at the request are reparented when the contract
// materializes.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI request_id-index, GSI contract_id-index

type Event struct {
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

	Delivered     bool     `json:"delivered"`
	Late          bool     `json:"late"`
	Evaluation    Decision `json:"evaluation,omitempty"`
	ArtifactRef   string   `json:"artifact_ref,omitempty"`
	Justification string   `json:"justification,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (e Event) Orphaned() bool {
	return e.ContractID == "" && e.RequestID != ""
}

// SupplierIndicators are the quality indexes computed from a supplier's
// delivered events and evaluations.

type SupplierIndicators struct {
	SupplierID     string  `json:"supplier_id"`
	Deliveries     int     `json:"deliveries"`
	Conforming     int     `json:"conforming"`
	NonConforming  int     `json:"non_conforming"`
	OnTime         int     `json:"on_time"`
	QualityRate    float64 `json:"quality_rate"`
	PunctualsRate  float64 `json:"punctuality_rate"`
	NonConformRate float64 `json:"non_conformity_rate"`
}
