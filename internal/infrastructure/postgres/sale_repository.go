package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Ferreteria-api/internal/domain"
	"github.com/jhoicas/Ferreteria-api/internal/domain/entity"
	"github.com/jhoicas/Ferreteria-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de persistencia para ventas. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste la cabecera de una venta.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, customer_id, employee_id, payment_method_id, date, total)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.CustomerID, sale.EmployeeID, sale.PaymentMethodID, sale.Date, sale.Total,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// CreateDetail persiste una línea de venta con sus instantáneas de precio e IVA.
func (r *SaleRepo) CreateDetail(detail *entity.SaleDetail) error {
	query := `
		INSERT INTO sale_details (id, sale_id, product_id, quantity, unit_price, tax_rate)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		detail.ID, detail.SaleID, detail.ProductID, detail.Quantity, detail.UnitPrice, detail.TaxRate,
	)
	if err != nil {
		return fmt.Errorf("insert sale detail: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera de una venta.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	query := `
		SELECT id, customer_id, employee_id, payment_method_id, date, total
		FROM sales WHERE id = $1`
	var s entity.Sale
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.CustomerID, &s.EmployeeID, &s.PaymentMethodID, &s.Date, &s.Total,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return &s, nil
}

const saleInfoQuery = `
	SELECT s.id, s.customer_id, s.employee_id, s.payment_method_id, s.date, s.total,
	       c.first_name || CASE WHEN c.last_name = '' THEN '' ELSE ' ' || c.last_name END,
	       e.first_name || CASE WHEN e.last_name = '' THEN '' ELSE ' ' || e.last_name END,
	       pm.description
	FROM sales s
	JOIN persons c ON c.id = s.customer_id
	JOIN persons e ON e.id = s.employee_id
	JOIN payment_methods pm ON pm.id = s.payment_method_id`

func scanSaleInfo(row pgx.Row) (*entity.SaleInfo, error) {
	var info entity.SaleInfo
	err := row.Scan(
		&info.ID, &info.CustomerID, &info.EmployeeID, &info.PaymentMethodID,
		&info.Date, &info.Total,
		&info.CustomerName, &info.EmployeeName, &info.PaymentMethod,
	)
	if err != nil {
		return nil, err
	}
	return &info, nil
}

// GetInfoByID obtiene la cabecera con nombres resueltos.
func (r *SaleRepo) GetInfoByID(id string) (*entity.SaleInfo, error) {
	info, err := scanSaleInfo(r.q.QueryRow(context.Background(), saleInfoQuery+` WHERE s.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale info: %w", err)
	}
	return info, nil
}

// GetDetailsBySaleID obtiene las líneas de una venta.
func (r *SaleRepo) GetDetailsBySaleID(saleID string) ([]*entity.SaleDetail, error) {
	query := `
		SELECT id, sale_id, product_id, quantity, unit_price, tax_rate
		FROM sale_details WHERE sale_id = $1
		ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, saleID)
	if err != nil {
		return nil, fmt.Errorf("list sale details: %w", err)
	}
	defer rows.Close()

	var result []*entity.SaleDetail
	for rows.Next() {
		var d entity.SaleDetail
		err := rows.Scan(&d.ID, &d.SaleID, &d.ProductID, &d.Quantity, &d.UnitPrice, &d.TaxRate)
		if err != nil {
			return nil, fmt.Errorf("scan sale detail: %w", err)
		}
		result = append(result, &d)
	}
	return result, rows.Err()
}

// List lista ventas con nombres resueltos, más recientes primero.
func (r *SaleRepo) List(limit, offset int) ([]*entity.SaleInfo, error) {
	rows, err := r.q.Query(context.Background(),
		saleInfoQuery+` ORDER BY s.date DESC LIMIT $1 OFFSET $2`, limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	var result []*entity.SaleInfo
	for rows.Next() {
		info, err := scanSaleInfo(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		result = append(result, info)
	}
	return result, rows.Err()
}

// UpdateRefs re-apunta cliente, empleado y método de pago (total y fecha intactos).
func (r *SaleRepo) UpdateRefs(sale *entity.Sale) error {
	query := `
		UPDATE sales
		SET customer_id = $2, employee_id = $3, payment_method_id = $4
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.CustomerID, sale.EmployeeID, sale.PaymentMethodID,
	)
	if err != nil {
		return fmt.Errorf("update sale: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina la venta; sale_details cae en cascada. Los movimientos quedan.
func (r *SaleRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
