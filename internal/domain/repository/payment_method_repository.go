package repository

import "github.com/jhoicas/Ferreteria-api/internal/domain/entity"

// PaymentMethodRepository define el puerto para los medios de pago.
type PaymentMethodRepository interface {
	Create(pm *entity.PaymentMethod) error
	GetByID(id string) (*entity.PaymentMethod, error)
	List() ([]*entity.PaymentMethod, error)
	Update(pm *entity.PaymentMethod) error
	Delete(id string) error
}
