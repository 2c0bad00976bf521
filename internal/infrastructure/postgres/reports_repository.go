package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Ferreteria-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.ReportsRepository = (*ReportsRepo)(nil)

// ReportsRepo consultas de solo lectura para reportes y dashboard.
type ReportsRepo struct {
	pool *pgxpool.Pool
}

// NewReportsRepository construye el adaptador de reportes.
func NewReportsRepository(pool *pgxpool.Pool) *ReportsRepo {
	return &ReportsRepo{pool: pool}
}

// periodLabel traduce el periodo a la expresión SQL que etiqueta cada grupo.
// La semana se etiqueta como año-semana ISO (ej. 2025-W35).
func periodLabel(period string) string {
	switch period {
	case "week":
		return `to_char(date_trunc('week', s.date), 'IYYY') || '-W' || to_char(date_trunc('week', s.date), 'IW')`
	case "month":
		return `to_char(date_trunc('month', s.date), 'YYYY-MM')`
	case "year":
		return `to_char(date_trunc('year', s.date), 'YYYY')`
	default:
		return `to_char(date_trunc('day', s.date), 'YYYY-MM-DD')`
	}
}

// SalesSummaryByPeriod agrupa ventas por periodo dentro del rango.
func (r *ReportsRepo) SalesSummaryByPeriod(ctx context.Context, period string, from, to time.Time) ([]repository.SalesPeriodRow, error) {
	label := periodLabel(period)

	query := fmt.Sprintf(`
		SELECT %s AS period,
		       COALESCE(SUM(s.total), 0),
		       COUNT(DISTINCT s.id),
		       COALESCE(SUM(d.quantity), 0)
		FROM sales s
		JOIN sale_details d ON d.sale_id = s.id
		WHERE s.date BETWEEN $1 AND $2
		GROUP BY period
		ORDER BY period`, label)

	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("reports.SalesSummaryByPeriod: %w", err)
	}
	defer rows.Close()

	var results []repository.SalesPeriodRow
	for rows.Next() {
		var row repository.SalesPeriodRow
		if err := rows.Scan(&row.Period, &row.Total, &row.Transactions, &row.UnitsSold); err != nil {
			return nil, fmt.Errorf("reports.SalesSummaryByPeriod scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// SalesTotalsBetween devuelve el total vendido y número de ventas del rango.
func (r *ReportsRepo) SalesTotalsBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, int, error) {
	var total decimal.Decimal
	var transactions int
	err := r.pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(total), 0), COUNT(*)
		FROM sales WHERE date BETWEEN $1 AND $2`, from, to,
	).Scan(&total, &transactions)
	if err != nil {
		return decimal.Zero, 0, fmt.Errorf("reports.SalesTotalsBetween: %w", err)
	}
	return total, transactions, nil
}

// TopProductsSold devuelve los productos más vendidos por unidades.
func (r *ReportsRepo) TopProductsSold(ctx context.Context, limit int) ([]repository.TopProductRow, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT p.id, p.name,
		       COALESCE(SUM(d.quantity), 0),
		       COALESCE(SUM(d.quantity * d.unit_price), 0)
		FROM sale_details d
		JOIN products p ON p.id = d.product_id
		GROUP BY p.id, p.name
		ORDER BY SUM(d.quantity) DESC
		LIMIT $1`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("reports.TopProductsSold: %w", err)
	}
	defer rows.Close()

	var results []repository.TopProductRow
	for rows.Next() {
		var row repository.TopProductRow
		if err := rows.Scan(&row.ProductID, &row.ProductName, &row.UnitsSold, &row.Revenue); err != nil {
			return nil, fmt.Errorf("reports.TopProductsSold scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// SalesByCategory agrupa el valor vendido por categoría de producto.
func (r *ReportsRepo) SalesByCategory(ctx context.Context) ([]repository.CategorySalesRow, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT c.id, c.description,
		       COALESCE(SUM(d.quantity * d.unit_price), 0)
		FROM sale_details d
		JOIN products p ON p.id = d.product_id
		JOIN categories c ON c.id = p.category_id
		GROUP BY c.id, c.description
		ORDER BY SUM(d.quantity * d.unit_price) DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("reports.SalesByCategory: %w", err)
	}
	defer rows.Close()

	var results []repository.CategorySalesRow
	for rows.Next() {
		var row repository.CategorySalesRow
		if err := rows.Scan(&row.CategoryID, &row.CategoryName, &row.Total); err != nil {
			return nil, fmt.Errorf("reports.SalesByCategory scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// CountProducts cuenta los productos del catálogo.
func (r *ReportsRepo) CountProducts(ctx context.Context) (int, error) {
	var n int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&n); err != nil {
		return 0, fmt.Errorf("reports.CountProducts: %w", err)
	}
	return n, nil
}

// InventoryValue suma cantidad × costo de todo el inventario.
func (r *ReportsRepo) InventoryValue(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(i.quantity * p.cost), 0)
		FROM inventories i
		JOIN products p ON p.id = i.product_id`,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("reports.InventoryValue: %w", err)
	}
	return total, nil
}

// LowStockProducts lista los productos por debajo de su cantidad mínima.
func (r *ReportsRepo) LowStockProducts(ctx context.Context) ([]repository.LowStockRow, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT p.id, p.code, p.name, i.quantity, p.min_quantity
		FROM inventories i
		JOIN products p ON p.id = i.product_id
		WHERE i.quantity < p.min_quantity
		ORDER BY i.quantity - p.min_quantity`,
	)
	if err != nil {
		return nil, fmt.Errorf("reports.LowStockProducts: %w", err)
	}
	defer rows.Close()

	var results []repository.LowStockRow
	for rows.Next() {
		var row repository.LowStockRow
		if err := rows.Scan(&row.ProductID, &row.ProductCode, &row.ProductName, &row.Quantity, &row.MinQuantity); err != nil {
			return nil, fmt.Errorf("reports.LowStockProducts scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// ZeroStockCount cuenta los productos con existencia cero.
func (r *ReportsRepo) ZeroStockCount(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM inventories WHERE quantity = 0`,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("reports.ZeroStockCount: %w", err)
	}
	return n, nil
}

// StockReport devuelve el inventario completo valorizado.
func (r *ReportsRepo) StockReport(ctx context.Context) ([]repository.StockReportRow, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT p.code, p.name, c.description, i.quantity, p.min_quantity,
		       p.cost, i.quantity * p.cost
		FROM inventories i
		JOIN products p ON p.id = i.product_id
		JOIN categories c ON c.id = p.category_id
		ORDER BY p.name`,
	)
	if err != nil {
		return nil, fmt.Errorf("reports.StockReport: %w", err)
	}
	defer rows.Close()

	var results []repository.StockReportRow
	for rows.Next() {
		var row repository.StockReportRow
		if err := rows.Scan(
			&row.ProductCode, &row.ProductName, &row.Category,
			&row.Quantity, &row.MinQuantity, &row.Cost, &row.Valuation,
		); err != nil {
			return nil, fmt.Errorf("reports.StockReport scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
