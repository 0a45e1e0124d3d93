package models

import "strings"

// SupplierType distinguishes companies from individual tradespeople.
type SupplierType string

const (
	SupplierTypeCompany    SupplierType = "company"
	SupplierTypeIndividual SupplierType = "individual"
)

// Supplier is a company or person purchases are made from.
type Supplier struct {
	Base
	Type        SupplierType `gorm:"not null" json:"type"`
	CompanyName string       `json:"company_name,omitempty"`
	FirstName   string       `json:"first_name,omitempty"`
	LastName    string       `json:"last_name,omitempty"`
	Email       string       `json:"email,omitempty"`
	Phone       string       `json:"phone,omitempty"`
	Address     string       `json:"address,omitempty"`
	Website     string       `json:"website,omitempty"`
	VATNumber   string       `json:"vat_number,omitempty"`
	Notes       string       `json:"notes,omitempty"`
	Rating      *int         `json:"rating"`
	IsDeleted   bool         `gorm:"not null;index" json:"-"`
}

// DisplayName returns the company name or "First Last" for individuals.
func (s *Supplier) DisplayName() string {
	if s.Type == SupplierTypeCompany {
		return s.CompanyName
	}
	return strings.TrimSpace(s.FirstName + " " + s.LastName)
}
