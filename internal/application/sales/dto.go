package sales

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/textile/backend/internal/domain/sales"
)

// SaleLineRequest represents one fabric line on a sale request
type SaleLineRequest struct {
	Article   string          `json:"article" binding:"required,min=1,max=100"`
	Color     string          `json:"color" binding:"required,min=1,max=50"`
	Quantity  decimal.Decimal `json:"quantity" binding:"required,dgt=0"`
	UnitPrice decimal.Decimal `json:"unit_price" binding:"required,dgt=0"`
}

// CreateSaleRequest represents a request to invoice fabric to a customer
type CreateSaleRequest struct {
	CustomerID  uuid.UUID         `json:"customer_id" binding:"required"`
	Lines       []SaleLineRequest `json:"lines" binding:"required,min=1,dive"`
	Discount    decimal.Decimal   `json:"discount" binding:"omitempty,dgte=0"`
	PaymentMode string            `json:"payment_mode" binding:"required,oneof=CASH CREDIT"`
	Notes       string            `json:"notes"`
}

// SaleItemResponse represents one invoice line in API responses
type SaleItemResponse struct {
	ID        uuid.UUID       `json:"id"`
	Article   string          `json:"article"`
	Color     string          `json:"color"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// SaleResponse represents a sale invoice in API responses
type SaleResponse struct {
	ID            uuid.UUID          `json:"id"`
	TenantID      uuid.UUID          `json:"tenant_id"`
	InvoiceNumber string             `json:"invoice_number"`
	CustomerID    uuid.UUID          `json:"customer_id"`
	Items         []SaleItemResponse `json:"items"`
	Subtotal      decimal.Decimal    `json:"subtotal"`
	Discount      decimal.Decimal    `json:"discount"`
	TotalAmount   decimal.Decimal    `json:"total_amount"`
	PaymentMode   string             `json:"payment_mode"`
	Status        string             `json:"status"`
	SaleDate      time.Time          `json:"sale_date"`
	DeliveredDate *time.Time         `json:"delivered_date,omitempty"`
	Notes         string             `json:"notes"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
	Version       int                `json:"version"`
}

// SaleListFilter represents filter options for the sales list
type SaleListFilter struct {
	Page       int    `form:"page"`
	PageSize   int    `form:"page_size"`
	OrderBy    string `form:"order_by"`
	OrderDir   string `form:"order_dir"`
	Search     string `form:"search"`
	CustomerID string `form:"customer_id" binding:"omitempty,uuid"`
	Status     string `form:"status" binding:"omitempty,oneof=CONFIRMED DELIVERED CANCELLED"`
	DateFrom   string `form:"date_from" binding:"omitempty,datetime=2006-01-02"`
	DateTo     string `form:"date_to" binding:"omitempty,datetime=2006-01-02"`
}

// ToSaleResponse converts a Sale aggregate to a SaleResponse DTO
func ToSaleResponse(sale *sales.Sale) SaleResponse {
	items := make([]SaleItemResponse, len(sale.Items))
	for i, item := range sale.Items {
		items[i] = SaleItemResponse{
			ID:        item.ID,
			Article:   item.Article,
			Color:     item.Color,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			LineTotal: item.LineTotal,
		}
	}

	return SaleResponse{
		ID:            sale.ID,
		TenantID:      sale.TenantID,
		InvoiceNumber: sale.InvoiceNumber,
		CustomerID:    sale.CustomerID,
		Items:         items,
		Subtotal:      sale.Subtotal,
		Discount:      sale.Discount,
		TotalAmount:   sale.TotalAmount,
		PaymentMode:   string(sale.PaymentMode),
		Status:        sale.Status.String(),
		SaleDate:      sale.SaleDate,
		DeliveredDate: sale.DeliveredDate,
		Notes:         sale.Notes,
		CreatedAt:     sale.CreatedAt,
		UpdatedAt:     sale.UpdatedAt,
		Version:       sale.Version,
	}
}

// ToSaleResponses converts a slice of sales to response DTOs
func ToSaleResponses(saleList []sales.Sale) []SaleResponse {
	responses := make([]SaleResponse, len(saleList))
	for i := range saleList {
		responses[i] = ToSaleResponse(&saleList[i])
	}
	return responses
}
