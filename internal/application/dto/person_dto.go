package dto

// CreatePersonRequest body para POST /api/persons.
type CreatePersonRequest struct {
	FirstName            string `json:"first_name"`
	LastName             string `json:"last_name"`
	IdentificationType   string `json:"identification_type"`
	IdentificationNumber string `json:"identification_number"`
	Email                string `json:"email,omitempty"`
	Phone                string `json:"phone,omitempty"`
	Kind                 string `json:"kind,omitempty"` // cliente | empleado | proveedor
}

// UpdatePersonRequest body para PATCH /api/persons/:id (campos opcionales).
type UpdatePersonRequest struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Kind      *string `json:"kind,omitempty"`
}

// PersonResponse representación de una persona.
type PersonResponse struct {
	ID                   string `json:"id"`
	FirstName            string `json:"first_name"`
	LastName             string `json:"last_name"`
	IdentificationType   string `json:"identification_type"`
	IdentificationNumber string `json:"identification_number"`
	Email                string `json:"email,omitempty"`
	Phone                string `json:"phone,omitempty"`
	Kind                 string `json:"kind,omitempty"`
}
