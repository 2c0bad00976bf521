package dto

// CreateCategoryRequest body para POST /api/categories.
type CreateCategoryRequest struct {
	Description string `json:"description"`
}

// CategoryResponse representación de una categoría.
type CategoryResponse struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}

// CreatePaymentMethodRequest body para POST /api/payment-methods.
type CreatePaymentMethodRequest struct {
	Description string `json:"description"`
}

// PaymentMethodResponse representación de un medio de pago.
type PaymentMethodResponse struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}

// CreateTypeMovementRequest body para POST /api/type-movements.
type CreateTypeMovementRequest struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// TypeMovementResponse representación de un tipo de movimiento.
type TypeMovementResponse struct {
	ID          string `json:"id"`
	Code        string `json:"code"`
	Description string `json:"description"`
}
