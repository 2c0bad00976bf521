package dto

import "github.com/shopspring/decimal"

// ReportQuery parámetros comunes de los reportes.
type ReportQuery struct {
	Period    string `query:"period"` // day | week | month | year
	StartDate string `query:"start_date"`
	EndDate   string `query:"end_date"`
	Limit     int    `query:"limit"`
}

// SalesPeriodDTO resumen de ventas de un periodo.
type SalesPeriodDTO struct {
	Period       string          `json:"period"`
	Total        decimal.Decimal `json:"total"`
	Transactions int             `json:"transactions"`
	UnitsSold    int             `json:"units_sold"`
}

// TopProductDTO producto del top de ventas.
type TopProductDTO struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	UnitsSold   int             `json:"units_sold"`
	Revenue     decimal.Decimal `json:"revenue"`
}

// CategorySalesDTO valor vendido por categoría.
type CategorySalesDTO struct {
	CategoryID   string          `json:"category_id"`
	CategoryName string          `json:"category_name"`
	Total        decimal.Decimal `json:"total"`
}

// LowStockDTO producto por debajo de su cantidad mínima.
type LowStockDTO struct {
	ProductID   string `json:"product_id"`
	ProductCode string `json:"product_code"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	MinQuantity int    `json:"min_quantity"`
}

// DashboardResponse datos agregados para la pantalla principal.
type DashboardResponse struct {
	TotalProducts       int                `json:"total_products"`
	TotalInventoryValue decimal.Decimal    `json:"total_inventory_value"`
	SalesToday          decimal.Decimal    `json:"sales_today"`
	SalesThisWeek       decimal.Decimal    `json:"sales_this_week"`
	SalesThisMonth      decimal.Decimal    `json:"sales_this_month"`
	LowStockProducts    []LowStockDTO      `json:"low_stock_products"`
	ZeroStockCount      int                `json:"zero_stock_count"`
	RecentMovements     []MovementResponse `json:"recent_movements"`
}
