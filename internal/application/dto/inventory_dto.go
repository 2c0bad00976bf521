package dto

import "time"

// CreateInventoryRequest aprovisiona inventario para un producto.
// Quantity es la existencia inicial (semilla); por defecto 0.
type CreateInventoryRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// InventoryResponse existencia actual de un producto.
type InventoryResponse struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"product_id"`
	ProductCode string    `json:"product_code,omitempty"`
	ProductName string    `json:"product_name,omitempty"`
	Quantity    int       `json:"quantity"`
	MinQuantity int       `json:"min_quantity,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// RegisterMovementRequest body para POST /api/movements.
// Quantity es el delta con signo: positivo entrada, negativo salida; nunca cero.
type RegisterMovementRequest struct {
	ProductID      string `json:"product_id"`
	TypeMovementID string `json:"type_movement_id"`
	Quantity       int    `json:"quantity"`
	Description    string `json:"description,omitempty"`
}

// UpdateMovementRequest body para PATCH /api/movements/:id.
// Solo descripción y fecha son editables; los demás campos se declaran aquí
// únicamente para poder rechazar explícitamente su modificación.
type UpdateMovementRequest struct {
	Description    *string    `json:"description,omitempty"`
	Date           *time.Time `json:"date,omitempty"`
	Quantity       *int       `json:"quantity,omitempty"`
	ProductID      *string    `json:"product_id,omitempty"`
	TypeMovementID *string    `json:"type_movement_id,omitempty"`
	UserID         *string    `json:"user_id,omitempty"`
}

// MovementResponse entrada del libro de movimientos, desnormalizada para listados.
type MovementResponse struct {
	ID              string    `json:"id"`
	InventoryID     string    `json:"inventory_id"`
	ProductID       string    `json:"product_id,omitempty"`
	ProductCode     string    `json:"product_code,omitempty"`
	ProductName     string    `json:"product_name,omitempty"`
	TypeMovementID  string    `json:"type_movement_id"`
	TypeCode        string    `json:"type_code,omitempty"`
	TypeDescription string    `json:"type_description,omitempty"`
	UserID          string    `json:"user_id"`
	Username        string    `json:"username,omitempty"`
	Quantity        int       `json:"quantity"`
	Description     string    `json:"description,omitempty"`
	Date            time.Time `json:"date"`
}
