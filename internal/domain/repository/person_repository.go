package repository

import "github.com/jhoicas/Ferreteria-api/internal/domain/entity"

// PersonRepository define el puerto de persistencia para Person (DIP).
type PersonRepository interface {
	Create(person *entity.Person) error
	GetByID(id string) (*entity.Person, error)
	GetByIdentification(number string) (*entity.Person, error)
	List(limit, offset int) ([]*entity.Person, error)
	Update(person *entity.Person) error
	Delete(id string) error
}
