package entity

import "github.com/shopspring/decimal"

// Product representa un producto del catálogo de la ferretería.
// El stock NO vive aquí: se lleva en Inventory y solo cambia vía movimientos.
type Product struct {
	ID          string
	Code        string // código único (de barras o interno)
	Name        string
	Description string
	CategoryID  string
	MinQuantity int             // umbral de alerta de stock bajo
	Cost        decimal.Decimal // costo de compra
	Price       decimal.Decimal // precio de venta
	TaxRate     decimal.Decimal // IVA Colombia: 0, 0.05, 0.19
}
