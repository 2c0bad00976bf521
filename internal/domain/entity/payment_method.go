package entity

// PaymentMethod representa un medio de pago aceptado (efectivo, tarjeta, etc.).
type PaymentMethod struct {
	ID          string
	Description string // único
}
