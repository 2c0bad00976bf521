package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Ferreteria-api/internal/domain"
	"github.com/jhoicas/Ferreteria-api/internal/domain/entity"
	"github.com/jhoicas/Ferreteria-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del puerto MovementRepository sobre PostgreSQL
// (usable con pool o tx). El libro es append-only en cantidad/actor/tipo.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador del libro de movimientos. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste una entrada del libro.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	query := `
		INSERT INTO movements (id, inventory_id, type_movement_id, user_id, quantity, description, date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.InventoryID, movement.TypeMovementID,
		movement.UserID, movement.Quantity, movement.Description, movement.Date,
	)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// GetByID obtiene una entrada por ID.
func (r *MovementRepo) GetByID(id string) (*entity.Movement, error) {
	query := `
		SELECT id, inventory_id, type_movement_id, user_id, quantity, description, date
		FROM movements WHERE id = $1`
	var m entity.Movement
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.InventoryID, &m.TypeMovementID, &m.UserID,
		&m.Quantity, &m.Description, &m.Date,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return &m, nil
}

// List lista el libro desnormalizado, más recientes primero.
func (r *MovementRepo) List(limit, offset int) ([]*entity.MovementInfo, error) {
	query := `
		SELECT m.id, m.inventory_id, m.type_movement_id, m.user_id,
		       m.quantity, m.description, m.date,
		       i.product_id, p.code, p.name,
		       tm.code, tm.description,
		       u.username
		FROM movements m
		JOIN inventories i ON i.id = m.inventory_id
		JOIN products p ON p.id = i.product_id
		JOIN type_movements tm ON tm.id = m.type_movement_id
		JOIN users u ON u.id = m.user_id
		ORDER BY m.date DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	var result []*entity.MovementInfo
	for rows.Next() {
		var info entity.MovementInfo
		err := rows.Scan(
			&info.ID, &info.InventoryID, &info.TypeMovementID, &info.UserID,
			&info.Quantity, &info.Description, &info.Date,
			&info.ProductID, &info.ProductCode, &info.ProductName,
			&info.TypeCode, &info.TypeDescription,
			&info.Username,
		)
		if err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		result = append(result, &info)
	}
	return result, rows.Err()
}

// UpdateMetadata actualiza solo descripción y/o fecha de una entrada.
func (r *MovementRepo) UpdateMetadata(id string, description *string, date *time.Time) error {
	query := `
		UPDATE movements
		SET description = COALESCE($2, description),
		    date = COALESCE($3, date)
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id, description, date)
	if err != nil {
		return fmt.Errorf("update movement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una entrada del libro (sin tocar el inventario).
func (r *MovementRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM movements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete movement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SumByInventoryID suma los deltas de un inventario.
func (r *MovementRepo) SumByInventoryID(inventoryID string) (int, error) {
	var sum int
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(quantity), 0) FROM movements WHERE inventory_id = $1`,
		inventoryID,
	).Scan(&sum)
	if err != nil {
		return 0, fmt.Errorf("sum movements: %w", err)
	}
	return sum, nil
}
