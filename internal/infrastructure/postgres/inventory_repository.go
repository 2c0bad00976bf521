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

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación del puerto InventoryRepository sobre PostgreSQL
// (usable con pool o tx). La columna quantity tiene CHECK (quantity >= 0) como
// última línea de defensa; la regla se valida antes en el caso de uso.
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador de existencias. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// Create persiste el registro de existencias de un producto (único por producto).
func (r *InventoryRepo) Create(inventory *entity.Inventory) error {
	query := `
		INSERT INTO inventories (id, product_id, quantity, updated_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		inventory.ID, inventory.ProductID, inventory.Quantity, inventory.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert inventory: %w", err)
	}
	return nil
}

// GetByProductID obtiene la existencia de un producto. nil, nil si no tiene inventario.
func (r *InventoryRepo) GetByProductID(productID string) (*entity.Inventory, error) {
	query := `
		SELECT id, product_id, quantity, updated_at
		FROM inventories WHERE product_id = $1`
	var inv entity.Inventory
	err := r.q.QueryRow(context.Background(), query, productID).Scan(
		&inv.ID, &inv.ProductID, &inv.Quantity, &inv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory: %w", err)
	}
	return &inv, nil
}

// GetForUpdateByProductID obtiene la existencia y bloquea la fila (SELECT FOR UPDATE).
// Dos transacciones que compiten por el mismo producto se serializan aquí.
func (r *InventoryRepo) GetForUpdateByProductID(productID string) (*entity.Inventory, error) {
	query := `
		SELECT id, product_id, quantity, updated_at
		FROM inventories WHERE product_id = $1
		FOR UPDATE`
	var inv entity.Inventory
	err := r.q.QueryRow(context.Background(), query, productID).Scan(
		&inv.ID, &inv.ProductID, &inv.Quantity, &inv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory for update: %w", err)
	}
	return &inv, nil
}

// UpdateQuantity escribe la nueva cantidad. Se llama con la fila ya bloqueada.
func (r *InventoryRepo) UpdateQuantity(inventory *entity.Inventory) error {
	query := `
		UPDATE inventories SET quantity = $2, updated_at = $3
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		inventory.ID, inventory.Quantity, inventory.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update inventory: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista las existencias con datos del producto, ordenadas por nombre.
func (r *InventoryRepo) List(limit, offset int) ([]*entity.InventoryInfo, error) {
	query := `
		SELECT i.id, i.product_id, i.quantity, i.updated_at,
		       p.code, p.name, p.min_quantity
		FROM inventories i
		JOIN products p ON p.id = i.product_id
		ORDER BY p.name
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list inventories: %w", err)
	}
	defer rows.Close()

	var result []*entity.InventoryInfo
	for rows.Next() {
		var info entity.InventoryInfo
		err := rows.Scan(
			&info.ID, &info.ProductID, &info.Quantity, &info.UpdatedAt,
			&info.ProductCode, &info.ProductName, &info.MinQuantity,
		)
		if err != nil {
			return nil, fmt.Errorf("scan inventory: %w", err)
		}
		result = append(result, &info)
	}
	return result, rows.Err()
}

// DeleteByProductID elimina el registro de existencias de un producto.
// ErrConflict si tiene movimientos registrados.
func (r *InventoryRepo) DeleteByProductID(productID string) error {
	tag, err := r.q.Exec(context.Background(),
		`DELETE FROM inventories WHERE product_id = $1`, productID,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete inventory: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
