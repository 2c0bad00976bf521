package entity

import "time"

// Inventory representa la existencia actual de un producto (1:1 con Product).
// Invariantes: Quantity nunca negativa; a lo más un registro por producto.
// La cantidad se muta únicamente a través del registrador de movimientos,
// que garantiza que la suma de los deltas del libro reconstruye este valor.
type Inventory struct {
	ID        string
	ProductID string
	Quantity  int
	UpdatedAt time.Time
}

// InventoryInfo es el modelo de lectura para listados (incluye datos del producto).
type InventoryInfo struct {
	Inventory
	ProductCode string
	ProductName string
	MinQuantity int
}
