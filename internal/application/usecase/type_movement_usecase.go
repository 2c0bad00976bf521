package usecase

import (
	"github.com/google/uuid"
	"github.com/jhoicas/Ferreteria-api/internal/application/dto"
	"github.com/jhoicas/Ferreteria-api/internal/domain"
	"github.com/jhoicas/Ferreteria-api/internal/domain/entity"
	"github.com/jhoicas/Ferreteria-api/internal/domain/repository"
)

// TypeMovementUseCase casos de uso CRUD para tipos de movimiento.
// La tabla es una enumeración abierta, pero los códigos bien conocidos
// (SALIDA_VENTA en particular) no deben eliminarse: el coordinador de
// ventas los resuelve por código.
type TypeMovementUseCase struct {
	repo repository.TypeMovementRepository
}

func NewTypeMovementUseCase(repo repository.TypeMovementRepository) *TypeMovementUseCase {
	return &TypeMovementUseCase{repo: repo}
}

// Create crea un tipo de movimiento. El código debe ser único.
func (uc *TypeMovementUseCase) Create(in dto.CreateTypeMovementRequest) (*dto.TypeMovementResponse, error) {
	if in.Code == "" || in.Description == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByCode(in.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	tm := &entity.TypeMovement{
		ID:          uuid.New().String(),
		Code:        in.Code,
		Description: in.Description,
	}
	if err := uc.repo.Create(tm); err != nil {
		return nil, err
	}
	return toTypeMovementResponse(tm), nil
}

// GetByID obtiene un tipo de movimiento por ID.
func (uc *TypeMovementUseCase) GetByID(id string) (*dto.TypeMovementResponse, error) {
	tm, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tm == nil {
		return nil, domain.ErrNotFound
	}
	return toTypeMovementResponse(tm), nil
}

// Update cambia la descripción. El código es inmutable: hay movimientos
// históricos y lógica que lo referencian.
func (uc *TypeMovementUseCase) Update(id string, in dto.CreateTypeMovementRequest) (*dto.TypeMovementResponse, error) {
	if in.Description == "" {
		return nil, domain.ErrInvalidInput
	}
	tm, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tm == nil {
		return nil, domain.ErrNotFound
	}
	if in.Code != "" && in.Code != tm.Code {
		return nil, domain.ErrUnsupportedOperation
	}
	tm.Description = in.Description
	if err := uc.repo.Update(tm); err != nil {
		return nil, err
	}
	return toTypeMovementResponse(tm), nil
}

// List lista los tipos de movimiento.
func (uc *TypeMovementUseCase) List() ([]dto.TypeMovementResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.TypeMovementResponse, 0, len(list))
	for _, tm := range list {
		out = append(out, *toTypeMovementResponse(tm))
	}
	return out, nil
}

// Delete elimina un tipo de movimiento. Los códigos bien conocidos se protegen:
// eliminarlos dejaría al coordinador de ventas sin tipo que resolver.
func (uc *TypeMovementUseCase) Delete(id string) error {
	tm, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if tm == nil {
		return domain.ErrNotFound
	}
	switch tm.Code {
	case entity.TypeMovementSaleOutflow, entity.TypeMovementManualInflow,
		entity.TypeMovementManualOutflow, entity.TypeMovementAdjustment:
		return domain.ErrConflict
	}
	return uc.repo.Delete(id)
}

func toTypeMovementResponse(tm *entity.TypeMovement) *dto.TypeMovementResponse {
	return &dto.TypeMovementResponse{ID: tm.ID, Code: tm.Code, Description: tm.Description}
}
