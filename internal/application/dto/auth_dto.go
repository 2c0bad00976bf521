package dto

// LoginRequest credenciales para POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse token + usuario autenticado.
type LoginResponse struct {
	Token string       `json:"access_token"`
	User  UserResponse `json:"user"`
}

// RegisterUserRequest crea una cuenta para una persona existente.
type RegisterUserRequest struct {
	PersonID string `json:"person_id"`
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"` // admin | bodeguero | vendedor
}

// UserResponse usuario sin hash de contraseña.
type UserResponse struct {
	ID       string `json:"id"`
	PersonID string `json:"person_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}
