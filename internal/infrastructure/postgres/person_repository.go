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

var _ repository.PersonRepository = (*PersonRepo)(nil)

// PersonRepo implementación del puerto PersonRepository sobre PostgreSQL (usable con pool o tx).
type PersonRepo struct {
	q Querier
}

// NewPersonRepository construye el adaptador de persistencia para personas. Pasar pool o tx (Querier).
func NewPersonRepository(q Querier) *PersonRepo {
	return &PersonRepo{q: q}
}

const personColumns = `id, first_name, last_name, identification_type, identification_number, email, phone, kind`

func scanPerson(row pgx.Row) (*entity.Person, error) {
	var p entity.Person
	err := row.Scan(
		&p.ID, &p.FirstName, &p.LastName, &p.IdentificationType,
		&p.IdentificationNumber, &p.Email, &p.Phone, &p.Kind,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persiste una nueva persona.
func (r *PersonRepo) Create(person *entity.Person) error {
	query := `
		INSERT INTO persons (` + personColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		person.ID, person.FirstName, person.LastName, person.IdentificationType,
		person.IdentificationNumber, person.Email, person.Phone, person.Kind,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert person: %w", err)
	}
	return nil
}

// GetByID obtiene una persona por ID.
func (r *PersonRepo) GetByID(id string) (*entity.Person, error) {
	query := `SELECT ` + personColumns + ` FROM persons WHERE id = $1`
	p, err := scanPerson(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get person: %w", err)
	}
	return p, nil
}

// GetByIdentification obtiene una persona por número de identificación.
func (r *PersonRepo) GetByIdentification(number string) (*entity.Person, error) {
	query := `SELECT ` + personColumns + ` FROM persons WHERE identification_number = $1`
	p, err := scanPerson(r.q.QueryRow(context.Background(), query, number))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get person by identification: %w", err)
	}
	return p, nil
}

// List lista personas ordenadas por nombre.
func (r *PersonRepo) List(limit, offset int) ([]*entity.Person, error) {
	query := `
		SELECT ` + personColumns + ` FROM persons
		ORDER BY first_name, last_name
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list persons: %w", err)
	}
	defer rows.Close()

	var result []*entity.Person
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, fmt.Errorf("scan person: %w", err)
		}
		result = append(result, p)
	}
	return result, rows.Err()
}

// Update actualiza los datos de una persona (identificación inmutable).
func (r *PersonRepo) Update(person *entity.Person) error {
	query := `
		UPDATE persons
		SET first_name = $2, last_name = $3, email = $4, phone = $5, kind = $6
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		person.ID, person.FirstName, person.LastName, person.Email, person.Phone, person.Kind,
	)
	if err != nil {
		return fmt.Errorf("update person: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una persona. ErrConflict si tiene ventas o cuenta asociada.
func (r *PersonRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM persons WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete person: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
