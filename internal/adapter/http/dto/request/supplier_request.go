package request

import "gestao_terceiros/internal/domain/entities"

// SupplierRequest registers a third-party company in the catalog.
type SupplierRequest struct {
	ActorID     string `json:"actor_id" binding:"required"`
	Name        string `json:"name" binding:"required"`
	TaxID       string `json:"tax_id" binding:"required"`
	Sector      string `json:"sector"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	BankingInfo string `json:"banking_info"`
	Umbrella    bool   `json:"umbrella"`
	FocalPoint  string `json:"focal_point"`
	FocalEmail  string `json:"focal_email"`
	FocalPhone  string `json:"focal_phone"`
}

func (r SupplierRequest) ToEntity() entities.Supplier {
	return entities.Supplier{
		Name:        r.Name,
		TaxID:       r.TaxID,
		Sector:      r.Sector,
		Address:     r.Address,
		City:        r.City,
		State:       r.State,
		Phone:       r.Phone,
		Email:       r.Email,
		BankingInfo: r.BankingInfo,
		Umbrella:    r.Umbrella,
		FocalPoint:  r.FocalPoint,
		FocalEmail:  r.FocalEmail,
		FocalPhone:  r.FocalPhone,
	}
}

// ContractStatusRequest moves a materialized contract between
// execution states.
type ContractStatusRequest struct {
	ActorID string `json:"actor_id" binding:"required"`
	Status  string `json:"status" binding:"required"`
}
