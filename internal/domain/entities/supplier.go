package entities

import "time"

// Supplier is a third-party company in the catalog (empresa terceira).
// Umbrella suppliers hold a master contract under which service orders
// are issued through the simpler sequential chain.

type Supplier struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	TaxID       string `json:"tax_id"`
	Sector      string `json:"sector,omitempty"`
	Address     string `json:"address,omitempty"`
	City        string `json:"city,omitempty"`
	State       string `json:"state,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Email       string `json:"email,omitempty"`
	BankingInfo string `json:"banking_info,omitempty"`
	Umbrella    bool   `json:"umbrella"`

	FocalPoint string `json:"focal_point,omitempty"`
	FocalEmail string `json:"focal_email,omitempty"`
	FocalPhone string `json:"focal_phone,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
