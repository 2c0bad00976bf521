package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemRequest una línea del carrito: producto y cantidad.
type SaleItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// CreateSaleRequest body para POST /api/sales.
type CreateSaleRequest struct {
	CustomerID      string            `json:"customer_id"`
	EmployeeID      string            `json:"employee_id"`
	PaymentMethodID string            `json:"payment_method_id"`
	Items           []SaleItemRequest `json:"items"`
}

// UpdateSaleRequest body para PATCH /api/sales/:id.
// Solo re-apunta cliente/empleado/método de pago. Items presente => rechazo:
// corregir líneas exigiría revertir y reaplicar movimientos de stock.
type UpdateSaleRequest struct {
	CustomerID      *string           `json:"customer_id,omitempty"`
	EmployeeID      *string           `json:"employee_id,omitempty"`
	PaymentMethodID *string           `json:"payment_method_id,omitempty"`
	Items           []SaleItemRequest `json:"items,omitempty"`
}

// SaleDetailResponse una línea de venta con sus instantáneas de precio/IVA.
type SaleDetailResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	TaxRate   decimal.Decimal `json:"tax_rate"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// SaleResponse venta completa con relaciones resueltas.
type SaleResponse struct {
	ID              string               `json:"id"`
	CustomerID      string               `json:"customer_id"`
	CustomerName    string               `json:"customer_name,omitempty"`
	EmployeeID      string               `json:"employee_id"`
	EmployeeName    string               `json:"employee_name,omitempty"`
	PaymentMethodID string               `json:"payment_method_id"`
	PaymentMethod   string               `json:"payment_method,omitempty"`
	Date            time.Time            `json:"date"`
	Total           decimal.Decimal      `json:"total"`
	Details         []SaleDetailResponse `json:"details"`
}
