package entity

// Person representa una persona (cliente o empleado de la ferretería).
// Un empleado puede tener además una cuenta User asociada 1:1.
type Person struct {
	ID                   string
	FirstName            string
	LastName             string
	IdentificationType   string // CC, CE, NIT, TI
	IdentificationNumber string // único
	Email                string
	Phone                string
	Kind                 string // cliente, empleado, proveedor
}

// FullName nombre completo para mostrar en respuestas y documentos.
func (p *Person) FullName() string {
	if p.LastName == "" {
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}
