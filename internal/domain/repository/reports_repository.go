package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// SalesPeriodRow resultado crudo del resumen de ventas agrupado por periodo.
// Lo produce la DB; el use case lo convierte en DTO.
type SalesPeriodRow struct {
	Period       string // etiqueta del periodo según la agrupación (2025-08, 2025-08-31, ...)
	Total        decimal.Decimal
	Transactions int
	UnitsSold    int
}

// TopProductRow resultado crudo del top de productos vendidos.
type TopProductRow struct {
	ProductID   string
	ProductName string
	UnitsSold   int
	Revenue     decimal.Decimal
}

// CategorySalesRow resultado crudo de ventas por categoría.
type CategorySalesRow struct {
	CategoryID   string
	CategoryName string
	Total        decimal.Decimal
}

// LowStockRow producto por debajo de su cantidad mínima.
type LowStockRow struct {
	ProductID   string
	ProductCode string
	ProductName string
	Quantity    int
	MinQuantity int
}

// StockReportRow fila del reporte de existencias (para el PDF de stock).
type StockReportRow struct {
	ProductCode string
	ProductName string
	Category    string
	Quantity    int
	MinQuantity int
	Cost        decimal.Decimal
	Valuation   decimal.Decimal // Quantity * Cost
}

// ReportsRepository define las consultas de lectura para reportes y dashboard.
// Las implementaciones son read-only.
type ReportsRepository interface {
	// SalesSummaryByPeriod agrupa ventas por día/semana/mes/año dentro del rango.
	// period: "day" | "week" | "month" | "year".
	SalesSummaryByPeriod(ctx context.Context, period string, from, to time.Time) ([]SalesPeriodRow, error)

	// SalesTotalsBetween devuelve el total vendido y número de transacciones del rango.
	SalesTotalsBetween(ctx context.Context, from, to time.Time) (total decimal.Decimal, transactions int, err error)

	// TopProductsSold devuelve los productos más vendidos por unidades.
	TopProductsSold(ctx context.Context, limit int) ([]TopProductRow, error)

	// SalesByCategory agrupa el valor vendido por categoría de producto.
	SalesByCategory(ctx context.Context) ([]CategorySalesRow, error)

	// ── Dashboard ────────────────────────────────────────────────────────────

	CountProducts(ctx context.Context) (int, error)
	// InventoryValue suma cantidad × costo de todo el inventario.
	InventoryValue(ctx context.Context) (decimal.Decimal, error)
	LowStockProducts(ctx context.Context) ([]LowStockRow, error)
	ZeroStockCount(ctx context.Context) (int, error)

	// StockReport devuelve el inventario completo valorizado (PDF de existencias).
	StockReport(ctx context.Context) ([]StockReportRow, error)
}
