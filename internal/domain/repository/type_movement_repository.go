package repository

import "github.com/jhoicas/Ferreteria-api/internal/domain/entity"

// TypeMovementRepository define el puerto para los tipos de movimiento.
type TypeMovementRepository interface {
	Create(tm *entity.TypeMovement) error
	GetByID(id string) (*entity.TypeMovement, error)
	// GetByCode resuelve tipos bien conocidos (ej: SALIDA_VENTA) sin depender de IDs.
	GetByCode(code string) (*entity.TypeMovement, error)
	List() ([]*entity.TypeMovement, error)
	Update(tm *entity.TypeMovement) error
	Delete(id string) error
}
