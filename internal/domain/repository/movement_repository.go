package repository

import (
	"time"

	"github.com/jhoicas/Ferreteria-api/internal/domain/entity"
)

// MovementRepository define el puerto para el libro de movimientos.
// Las entradas son append-only en sus campos de cantidad/actor/tipo:
// UpdateMetadata solo toca descripción y fecha.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	GetByID(id string) (*entity.Movement, error)
	List(limit, offset int) ([]*entity.MovementInfo, error)
	UpdateMetadata(id string, description *string, date *time.Time) error
	// Delete elimina la entrada sin revertir su efecto sobre el inventario
	// (corrección administrativa; ver notas de diseño).
	Delete(id string) error
	// SumByInventoryID suma los deltas de un inventario (verificación del libro).
	SumByInventoryID(inventoryID string) (int, error)
}
