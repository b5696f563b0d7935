package response

import (
	"time"

	"gestao_terceiros/internal/domain/entities"
)

type SupplierResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	TaxID       string    `json:"tax_id"`
	Sector      string    `json:"sector,omitempty"`
	Address     string    `json:"address,omitempty"`
	City        string    `json:"city,omitempty"`
	State       string    `json:"state,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Email       string    `json:"email,omitempty"`
	BankingInfo string    `json:"banking_info,omitempty"`
	Umbrella    bool      `json:"umbrella"`
	FocalPoint  string    `json:"focal_point,omitempty"`
	FocalEmail  string    `json:"focal_email,omitempty"`
	FocalPhone  string    `json:"focal_phone,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromSupplier(s entities.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:          s.ID,
		Name:        s.Name,
		TaxID:       s.TaxID,
		Sector:      s.Sector,
		Address:     s.Address,
		City:        s.City,
		State:       s.State,
		Phone:       s.Phone,
		Email:       s.Email,
		BankingInfo: s.BankingInfo,
		Umbrella:    s.Umbrella,
		FocalPoint:  s.FocalPoint,
		FocalEmail:  s.FocalEmail,
		FocalPhone:  s.FocalPhone,
		CreatedAt:   s.CreatedAt,
	}
}

func FromSuppliers(suppliers []entities.Supplier) []SupplierResponse {
	out := make([]SupplierResponse, 0, len(suppliers))
	for _, s := range suppliers {
		out = append(out, FromSupplier(s))
	}
	return out
}

type ProposalResponse struct {
	RequestID    string    `json:"request_id"`
	SupplierID   string    `json:"supplier_id"`
	Amount       float64   `json:"amount"`
	PaymentTerms string    `json:"payment_terms,omitempty"`
	ValidUntil   time.Time `json:"valid_until,omitempty"`
	ArtifactRef  string    `json:"artifact_ref,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func FromProposal(p entities.Proposal) ProposalResponse {
	return ProposalResponse{
		RequestID:    p.RequestID,
		SupplierID:   p.SupplierID,
		Amount:       p.Amount,
		PaymentTerms: string(p.PaymentTerms),
		ValidUntil:   p.ValidUntil,
		ArtifactRef:  p.ArtifactRef,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func FromProposals(proposals []entities.Proposal) []ProposalResponse {
	out := make([]ProposalResponse, 0, len(proposals))
	for _, p := range proposals {
		out = append(out, FromProposal(p))
	}
	return out
}
