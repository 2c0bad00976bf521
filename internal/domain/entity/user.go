package entity

// Roles válidos para User.
const (
	RoleAdmin     = "admin"
	RoleBodeguero = "bodeguero"
	RoleVendedor  = "vendedor"
)

// User representa una cuenta de acceso al sistema, ligada 1:1 a una Person.
type User struct {
	ID           string
	PersonID     string
	Username     string
	PasswordHash string // bcrypt, nunca plano en dominio después de persistir
	Role         string // admin, bodeguero, vendedor
}
