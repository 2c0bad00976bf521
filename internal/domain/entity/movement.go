package entity

import "time"

// Movement es una entrada del libro de movimientos de inventario.
// Quantity es el delta con signo: positivo = entrada, negativo = salida; nunca cero.
// Después de creado solo Description y Date son editables; cambiar cantidad,
// actor, tipo o producto desincronizaría el libro del inventario.
type Movement struct {
	ID             string
	InventoryID    string
	TypeMovementID string
	UserID         string
	Quantity       int
	Description    string
	Date           time.Time
}

// MovementInfo es el modelo de lectura para listados, con los datos
// desnormalizados de producto, tipo y usuario.
type MovementInfo struct {
	Movement
	ProductID       string
	ProductCode     string
	ProductName     string
	TypeCode        string
	TypeDescription string
	Username        string
}
