package partner

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/textile/backend/internal/domain/partner"
)

// =============================================================================
// Vendor DTOs
// =============================================================================

// CreateVendorRequest represents a request to create a new vendor
type CreateVendorRequest struct {
	Code         string `json:"code" binding:"required,min=1,max=50"`
	Name         string `json:"name" binding:"required,min=1,max=200"`
	Type         string `json:"type" binding:"required,oneof=thread_supplier dyeing_factory other"`
	ContactName  string `json:"contact_name" binding:"max=100"`
	Phone        string `json:"phone" binding:"max=50"`
	Email        string `json:"email" binding:"omitempty,email,max=200"`
	Address      string `json:"address" binding:"max=500"`
	PaymentTerms *int   `json:"payment_terms" binding:"omitempty,min=0,max=365"`
	Notes        string `json:"notes"`
}

// UpdateVendorRequest represents a request to update a vendor
type UpdateVendorRequest struct {
	Name         *string `json:"name" binding:"omitempty,min=1,max=200"`
	Type         *string `json:"type" binding:"omitempty,oneof=thread_supplier dyeing_factory other"`
	ContactName  *string `json:"contact_name" binding:"omitempty,max=100"`
	Phone        *string `json:"phone" binding:"omitempty,max=50"`
	Email        *string `json:"email" binding:"omitempty,email,max=200"`
	Address      *string `json:"address" binding:"omitempty,max=500"`
	PaymentTerms *int    `json:"payment_terms" binding:"omitempty,min=0,max=365"`
	Notes        *string `json:"notes"`
}

// VendorResponse represents a vendor in API responses
type VendorResponse struct {
	ID           uuid.UUID       `json:"id"`
	TenantID     uuid.UUID       `json:"tenant_id"`
	Code         string          `json:"code"`
	Name         string          `json:"name"`
	Type         string          `json:"type"`
	Status       string          `json:"status"`
	ContactName  string          `json:"contact_name"`
	Phone        string          `json:"phone"`
	Email        string          `json:"email"`
	Address      string          `json:"address"`
	PaymentTerms int             `json:"payment_terms"`
	Balance      decimal.Decimal `json:"balance"`
	Notes        string          `json:"notes"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
	Version      int             `json:"version"`
}

// VendorListFilter represents filter options for vendor list
type VendorListFilter struct {
	Search   string `form:"search"`
	Status   string `form:"status" binding:"omitempty,oneof=active inactive"`
	Type     string `form:"type" binding:"omitempty,oneof=thread_supplier dyeing_factory other"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToVendorResponse converts a vendor aggregate to a response DTO
func ToVendorResponse(v *partner.Vendor) VendorResponse {
	return VendorResponse{
		ID:           v.ID,
		TenantID:     v.TenantID,
		Code:         v.Code,
		Name:         v.Name,
		Type:         string(v.Type),
		Status:       string(v.Status),
		ContactName:  v.ContactName,
		Phone:        v.Phone,
		Email:        v.Email,
		Address:      v.Address,
		PaymentTerms: v.PaymentTerms,
		Balance:      v.Balance,
		Notes:        v.Notes,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
		Version:      v.Version,
	}
}

// ToVendorResponses converts a slice of vendors to response DTOs
func ToVendorResponses(vendors []partner.Vendor) []VendorResponse {
	responses := make([]VendorResponse, len(vendors))
	for i := range vendors {
		responses[i] = ToVendorResponse(&vendors[i])
	}
	return responses
}

// =============================================================================
// Customer DTOs
// =============================================================================

// CreateCustomerRequest represents a request to create a new customer
type CreateCustomerRequest struct {
	Code        string           `json:"code" binding:"required,min=1,max=50"`
	Name        string           `json:"name" binding:"required,min=1,max=200"`
	ContactName string           `json:"contact_name" binding:"max=100"`
	Phone       string           `json:"phone" binding:"max=50"`
	Email       string           `json:"email" binding:"omitempty,email,max=200"`
	Address     string           `json:"address" binding:"max=500"`
	CreditLimit *decimal.Decimal `json:"credit_limit"`
	Notes       string           `json:"notes"`
}

// UpdateCustomerRequest represents a request to update a customer
type UpdateCustomerRequest struct {
	Name        *string          `json:"name" binding:"omitempty,min=1,max=200"`
	ContactName *string          `json:"contact_name" binding:"omitempty,max=100"`
	Phone       *string          `json:"phone" binding:"omitempty,max=50"`
	Email       *string          `json:"email" binding:"omitempty,email,max=200"`
	Address     *string          `json:"address" binding:"omitempty,max=500"`
	CreditLimit *decimal.Decimal `json:"credit_limit"`
	Notes       *string          `json:"notes"`
}

// CustomerResponse represents a customer in API responses
type CustomerResponse struct {
	ID              uuid.UUID       `json:"id"`
	TenantID        uuid.UUID       `json:"tenant_id"`
	Code            string          `json:"code"`
	Name            string          `json:"name"`
	Status          string          `json:"status"`
	ContactName     string          `json:"contact_name"`
	Phone           string          `json:"phone"`
	Email           string          `json:"email"`
	Address         string          `json:"address"`
	CreditLimit     decimal.Decimal `json:"credit_limit"`
	Balance         decimal.Decimal `json:"balance"`
	AvailableCredit decimal.Decimal `json:"available_credit"`
	Notes           string          `json:"notes"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
	Version         int             `json:"version"`
}

// CustomerListFilter represents filter options for customer list
type CustomerListFilter struct {
	Search   string `form:"search"`
	Status   string `form:"status" binding:"omitempty,oneof=active inactive"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToCustomerResponse converts a customer aggregate to a response DTO
func ToCustomerResponse(c *partner.Customer) CustomerResponse {
	return CustomerResponse{
		ID:              c.ID,
		TenantID:        c.TenantID,
		Code:            c.Code,
		Name:            c.Name,
		Status:          string(c.Status),
		ContactName:     c.ContactName,
		Phone:           c.Phone,
		Email:           c.Email,
		Address:         c.Address,
		CreditLimit:     c.CreditLimit,
		Balance:         c.Balance,
		AvailableCredit: c.AvailableCredit(),
		Notes:           c.Notes,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
		Version:         c.Version,
	}
}

// ToCustomerResponses converts a slice of customers to response DTOs
func ToCustomerResponses(customers []partner.Customer) []CustomerResponse {
	responses := make([]CustomerResponse, len(customers))
	for i := range customers {
		responses[i] = ToCustomerResponse(&customers[i])
	}
	return responses
}
