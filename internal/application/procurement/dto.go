package procurement

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/textile/backend/internal/domain/procurement"
)

// CreateThreadPurchaseRequest represents a request to order raw thread
type CreateThreadPurchaseRequest struct {
	VendorID    uuid.UUID       `json:"vendor_id" binding:"required"`
	Article     string          `json:"article" binding:"required,min=1,max=100"`
	Quantity    decimal.Decimal `json:"quantity" binding:"required,dgt=0"`
	UnitPrice   decimal.Decimal `json:"unit_price" binding:"required,dgt=0"`
	PaymentMode string          `json:"payment_mode" binding:"required,oneof=CASH CREDIT"`
	Notes       string          `json:"notes"`
}

// UpdateThreadPurchaseRequest represents a request to edit an unreceived purchase
type UpdateThreadPurchaseRequest struct {
	Article   *string          `json:"article" binding:"omitempty,min=1,max=100"`
	Quantity  *decimal.Decimal `json:"quantity" binding:"omitempty,dgt=0"`
	UnitPrice *decimal.Decimal `json:"unit_price" binding:"omitempty,dgt=0"`
	Notes     *string          `json:"notes"`
}

// ThreadPurchaseResponse represents a thread purchase in API responses
type ThreadPurchaseResponse struct {
	ID             uuid.UUID       `json:"id"`
	TenantID       uuid.UUID       `json:"tenant_id"`
	PurchaseNumber string          `json:"purchase_number"`
	VendorID       uuid.UUID       `json:"vendor_id"`
	Article        string          `json:"article"`
	Quantity       decimal.Decimal `json:"quantity"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	PaymentMode    string          `json:"payment_mode"`
	Status         string          `json:"status"`
	PurchaseDate   time.Time       `json:"purchase_date"`
	ReceivedDate   *time.Time      `json:"received_date,omitempty"`
	Notes          string          `json:"notes"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	Version        int             `json:"version"`
}

// ThreadPurchaseListFilter represents filter options for purchase list
type ThreadPurchaseListFilter struct {
	Search   string `form:"search"`
	Status   string `form:"status" binding:"omitempty,oneof=ORDERED RECEIVED CANCELLED"`
	VendorID string `form:"vendor_id" binding:"omitempty,uuid"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToThreadPurchaseResponse converts a purchase aggregate to a response DTO
func ToThreadPurchaseResponse(p *procurement.ThreadPurchase) ThreadPurchaseResponse {
	return ThreadPurchaseResponse{
		ID:             p.ID,
		TenantID:       p.TenantID,
		PurchaseNumber: p.PurchaseNumber,
		VendorID:       p.VendorID,
		Article:        p.Article,
		Quantity:       p.Quantity,
		UnitPrice:      p.UnitPrice,
		TotalAmount:    p.TotalAmount,
		PaymentMode:    string(p.PaymentMode),
		Status:         string(p.Status),
		PurchaseDate:   p.PurchaseDate,
		ReceivedDate:   p.ReceivedDate,
		Notes:          p.Notes,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
		Version:        p.Version,
	}
}

// ToThreadPurchaseResponses converts a slice of purchases to response DTOs
func ToThreadPurchaseResponses(purchases []procurement.ThreadPurchase) []ThreadPurchaseResponse {
	responses := make([]ThreadPurchaseResponse, len(purchases))
	for i := range purchases {
		responses[i] = ToThreadPurchaseResponse(&purchases[i])
	}
	return responses
}
