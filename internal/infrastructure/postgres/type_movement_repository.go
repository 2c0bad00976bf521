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

var _ repository.TypeMovementRepository = (*TypeMovementRepo)(nil)

// TypeMovementRepo implementación del puerto TypeMovementRepository sobre PostgreSQL.
type TypeMovementRepo struct {
	q Querier
}

func NewTypeMovementRepository(q Querier) *TypeMovementRepo {
	return &TypeMovementRepo{q: q}
}

// Create persiste un nuevo tipo de movimiento.
func (r *TypeMovementRepo) Create(tm *entity.TypeMovement) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO type_movements (id, code, description) VALUES ($1, $2, $3)`,
		tm.ID, tm.Code, tm.Description,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert type_movement: %w", err)
	}
	return nil
}

// GetByID obtiene un tipo por ID.
func (r *TypeMovementRepo) GetByID(id string) (*entity.TypeMovement, error) {
	var tm entity.TypeMovement
	err := r.q.QueryRow(context.Background(),
		`SELECT id, code, description FROM type_movements WHERE id = $1`, id,
	).Scan(&tm.ID, &tm.Code, &tm.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get type_movement: %w", err)
	}
	return &tm, nil
}

// GetByCode obtiene un tipo por su código único.
func (r *TypeMovementRepo) GetByCode(code string) (*entity.TypeMovement, error) {
	var tm entity.TypeMovement
	err := r.q.QueryRow(context.Background(),
		`SELECT id, code, description FROM type_movements WHERE code = $1`, code,
	).Scan(&tm.ID, &tm.Code, &tm.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get type_movement by code: %w", err)
	}
	return &tm, nil
}

// List lista los tipos de movimiento.
func (r *TypeMovementRepo) List() ([]*entity.TypeMovement, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, code, description FROM type_movements ORDER BY code`,
	)
	if err != nil {
		return nil, fmt.Errorf("list type_movements: %w", err)
	}
	defer rows.Close()

	var result []*entity.TypeMovement
	for rows.Next() {
		var tm entity.TypeMovement
		if err := rows.Scan(&tm.ID, &tm.Code, &tm.Description); err != nil {
			return nil, fmt.Errorf("scan type_movement: %w", err)
		}
		result = append(result, &tm)
	}
	return result, rows.Err()
}

// Update actualiza la descripción (código inmutable).
func (r *TypeMovementRepo) Update(tm *entity.TypeMovement) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE type_movements SET description = $2 WHERE id = $1`,
		tm.ID, tm.Description,
	)
	if err != nil {
		return fmt.Errorf("update type_movement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un tipo de movimiento. ErrConflict si tiene movimientos.
func (r *TypeMovementRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM type_movements WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete type_movement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
