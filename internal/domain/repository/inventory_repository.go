package repository

import "github.com/jhoicas/Ferreteria-api/internal/domain/entity"

// InventoryRepository define el puerto para el registro de existencias (1:1 producto).
// La cantidad solo cambia dentro de transacciones del registrador de movimientos.
type InventoryRepository interface {
	Create(inventory *entity.Inventory) error
	GetByProductID(productID string) (*entity.Inventory, error)
	// GetForUpdateByProductID bloquea la fila (SELECT FOR UPDATE) para la
	// secuencia check-then-act; retorna nil, nil si el producto no tiene inventario.
	GetForUpdateByProductID(productID string) (*entity.Inventory, error)
	UpdateQuantity(inventory *entity.Inventory) error
	List(limit, offset int) ([]*entity.InventoryInfo, error)
	DeleteByProductID(productID string) error
}
