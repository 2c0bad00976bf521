package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa la cabecera de una venta.
// Total = Σ cantidad × precio unitario de sus líneas; el IVA se guarda por
// línea pero no se suma al total (la factura lo presenta por separado).
type Sale struct {
	ID              string
	CustomerID      string
	EmployeeID      string
	PaymentMethodID string
	Date            time.Time
	Total           decimal.Decimal
}

// SaleDetail representa una línea de venta. UnitPrice y TaxRate son
// instantáneas del producto al momento de la venta: cambios posteriores de
// precio no las afectan.
type SaleDetail struct {
	ID        string
	SaleID    string
	ProductID string
	Quantity  int
	UnitPrice decimal.Decimal
	TaxRate   decimal.Decimal
}

// Subtotal de la línea (cantidad × precio unitario, sin IVA).
func (d *SaleDetail) Subtotal() decimal.Decimal {
	return d.UnitPrice.Mul(decimal.NewFromInt(int64(d.Quantity)))
}

// SaleInfo es el modelo de lectura para listados (nombres resueltos).
type SaleInfo struct {
	Sale
	CustomerName  string
	EmployeeName  string
	PaymentMethod string
}
