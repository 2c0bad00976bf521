package repository

import "github.com/jhoicas/Ferreteria-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	// GetByPersonID resuelve la cuenta de usuario de un empleado;
	// lo usa el coordinador de ventas para registrar el actor de los movimientos.
	GetByPersonID(personID string) (*entity.User, error)
	List(limit, offset int) ([]*entity.User, error)
	Delete(id string) error
}
