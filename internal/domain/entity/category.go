package entity

// Category agrupa productos (tornillería, pinturas, eléctricos, etc.).
type Category struct {
	ID          string
	Description string
}
