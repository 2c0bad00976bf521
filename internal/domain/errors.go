package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound             = errors.New("recurso no encontrado")
	ErrUserNotFound         = errors.New("usuario no encontrado")
	ErrInvalidInput         = errors.New("entrada inválida")
	ErrDuplicate            = errors.New("recurso duplicado")
	ErrUnauthorized         = errors.New("no autorizado")
	ErrForbidden            = errors.New("acceso denegado")
	ErrConflict             = errors.New("conflicto con el estado actual")
	ErrInsufficientStock    = errors.New("stock insuficiente")
	ErrUnsupportedOperation = errors.New("operación no soportada")
	ErrConfiguracion        = errors.New("datos de referencia requeridos no configurados")
)

// InsufficientStockError lleva el stock actual y la cantidad solicitada para
// que el cliente pueda distinguir "intente con menos unidades" de un error genérico.
// Unwrap retorna ErrInsufficientStock, así errors.Is sigue funcionando en los handlers.
type InsufficientStockError struct {
	ProductName string
	Available   int
	Requested   int
}

func (e *InsufficientStockError) Error() string {
	if e.ProductName != "" {
		return fmt.Sprintf("stock insuficiente para %q: disponible %d, solicitado %d", e.ProductName, e.Available, e.Requested)
	}
	return fmt.Sprintf("stock insuficiente: disponible %d, solicitado %d", e.Available, e.Requested)
}

func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }
