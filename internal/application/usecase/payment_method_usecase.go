package usecase

import (
	"github.com/google/uuid"
	"github.com/jhoicas/Ferreteria-api/internal/application/dto"
	"github.com/jhoicas/Ferreteria-api/internal/domain"
	"github.com/jhoicas/Ferreteria-api/internal/domain/entity"
	"github.com/jhoicas/Ferreteria-api/internal/domain/repository"
)

// PaymentMethodUseCase casos de uso CRUD para medios de pago.
type PaymentMethodUseCase struct {
	repo repository.PaymentMethodRepository
}

func NewPaymentMethodUseCase(repo repository.PaymentMethodRepository) *PaymentMethodUseCase {
	return &PaymentMethodUseCase{repo: repo}
}

// Create crea un medio de pago.
func (uc *PaymentMethodUseCase) Create(in dto.CreatePaymentMethodRequest) (*dto.PaymentMethodResponse, error) {
	if in.Description == "" {
		return nil, domain.ErrInvalidInput
	}
	pm := &entity.PaymentMethod{
		ID:          uuid.New().String(),
		Description: in.Description,
	}
	if err := uc.repo.Create(pm); err != nil {
		return nil, err
	}
	return &dto.PaymentMethodResponse{ID: pm.ID, Description: pm.Description}, nil
}

// GetByID obtiene un medio de pago por ID.
func (uc *PaymentMethodUseCase) GetByID(id string) (*dto.PaymentMethodResponse, error) {
	pm, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if pm == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.PaymentMethodResponse{ID: pm.ID, Description: pm.Description}, nil
}

// Update renombra un medio de pago.
func (uc *PaymentMethodUseCase) Update(id string, in dto.CreatePaymentMethodRequest) (*dto.PaymentMethodResponse, error) {
	if in.Description == "" {
		return nil, domain.ErrInvalidInput
	}
	pm, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if pm == nil {
		return nil, domain.ErrNotFound
	}
	pm.Description = in.Description
	if err := uc.repo.Update(pm); err != nil {
		return nil, err
	}
	return &dto.PaymentMethodResponse{ID: pm.ID, Description: pm.Description}, nil
}

// List lista los medios de pago (catálogo pequeño, sin paginación).
func (uc *PaymentMethodUseCase) List() ([]dto.PaymentMethodResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.PaymentMethodResponse, 0, len(list))
	for _, pm := range list {
		out = append(out, dto.PaymentMethodResponse{ID: pm.ID, Description: pm.Description})
	}
	return out, nil
}

// Delete elimina un medio de pago. Falla con ErrConflict si tiene ventas.
func (uc *PaymentMethodUseCase) Delete(id string) error {
	pm, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if pm == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}
