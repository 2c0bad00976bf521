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

var _ repository.PaymentMethodRepository = (*PaymentMethodRepo)(nil)

// PaymentMethodRepo implementación del puerto PaymentMethodRepository sobre PostgreSQL.
type PaymentMethodRepo struct {
	q Querier
}

func NewPaymentMethodRepository(q Querier) *PaymentMethodRepo {
	return &PaymentMethodRepo{q: q}
}

// Create persiste un nuevo medio de pago.
func (r *PaymentMethodRepo) Create(pm *entity.PaymentMethod) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO payment_methods (id, description) VALUES ($1, $2)`,
		pm.ID, pm.Description,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert payment_method: %w", err)
	}
	return nil
}

// GetByID obtiene un medio de pago por ID.
func (r *PaymentMethodRepo) GetByID(id string) (*entity.PaymentMethod, error) {
	var pm entity.PaymentMethod
	err := r.q.QueryRow(context.Background(),
		`SELECT id, description FROM payment_methods WHERE id = $1`, id,
	).Scan(&pm.ID, &pm.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment_method: %w", err)
	}
	return &pm, nil
}

// List lista los medios de pago.
func (r *PaymentMethodRepo) List() ([]*entity.PaymentMethod, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, description FROM payment_methods ORDER BY description`,
	)
	if err != nil {
		return nil, fmt.Errorf("list payment_methods: %w", err)
	}
	defer rows.Close()

	var result []*entity.PaymentMethod
	for rows.Next() {
		var pm entity.PaymentMethod
		if err := rows.Scan(&pm.ID, &pm.Description); err != nil {
			return nil, fmt.Errorf("scan payment_method: %w", err)
		}
		result = append(result, &pm)
	}
	return result, rows.Err()
}

// Update renombra un medio de pago.
func (r *PaymentMethodRepo) Update(pm *entity.PaymentMethod) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE payment_methods SET description = $2 WHERE id = $1`,
		pm.ID, pm.Description,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update payment_method: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un medio de pago. ErrConflict si tiene ventas.
func (r *PaymentMethodRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM payment_methods WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete payment_method: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
