package entities

import "time"

// PaymentTerms are the payment conditions a supplier may bid under.

type PaymentTerms string

const (
	PaymentTermsOnApprovedBulletin PaymentTerms = "conforme_medicao_aprovada"
	PaymentTermsOnClientPayment    PaymentTerms = "conforme_pagamento_cliente"
	PaymentTermsToBeDefined        PaymentTerms = "a_definir"
)

// Proposal is one supplier's bid for a contracting request. Unique per
// (request, supplier) pair; created or updated during screening.
//
// Storage model (DynamoDB):
//   - PK: request_id, SK: supplier_id

type Proposal struct {
	RequestID    string       `json:"request_id"`
	SupplierID   string       `json:"supplier_id"`
	Amount       float64      `json:"amount"`
	PaymentTerms PaymentTerms `json:"payment_terms,omitempty"`
	ValidUntil   time.Time    `json:"valid_until,omitempty"`
	ArtifactRef  string       `json:"artifact_ref,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}
