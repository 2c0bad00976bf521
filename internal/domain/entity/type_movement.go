package entity

// Códigos bien conocidos de tipos de movimiento. La tabla es una enumeración
// abierta (se pueden crear más tipos), pero SALIDA_VENTA debe existir siempre:
// el coordinador de ventas lo resuelve por código y su ausencia es un error de
// configuración, no de la petición.
const (
	TypeMovementSaleOutflow   = "SALIDA_VENTA"
	TypeMovementManualInflow  = "ENTRADA_MANUAL"
	TypeMovementManualOutflow = "SALIDA_MANUAL"
	TypeMovementAdjustment    = "AJUSTE"
)

// TypeMovement clasifica por qué ocurrió un movimiento de inventario.
type TypeMovement struct {
	ID          string
	Code        string // único
	Description string
}
