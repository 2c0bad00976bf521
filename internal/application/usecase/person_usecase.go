package usecase

import (
	"github.com/google/uuid"
	"github.com/jhoicas/Ferreteria-api/internal/application/dto"
	"github.com/jhoicas/Ferreteria-api/internal/domain"
	"github.com/jhoicas/Ferreteria-api/internal/domain/entity"
	"github.com/jhoicas/Ferreteria-api/internal/domain/repository"
)

// PersonUseCase casos de uso CRUD para personas (clientes, empleados, proveedores).
type PersonUseCase struct {
	repo repository.PersonRepository
}

// NewPersonUseCase construye el caso de uso.
func NewPersonUseCase(repo repository.PersonRepository) *PersonUseCase {
	return &PersonUseCase{repo: repo}
}

func validKind(k string) bool {
	switch k {
	case "cliente", "empleado", "proveedor":
		return true
	}
	return false
}

func validIdentificationType(t string) bool {
	switch t {
	case "CC", "CE", "NIT", "TI":
		return true
	}
	return false
}

// Create registra una persona. El número de identificación debe ser único.
func (uc *PersonUseCase) Create(in dto.CreatePersonRequest) (*dto.PersonResponse, error) {
	if in.FirstName == "" || in.IdentificationNumber == "" {
		return nil, domain.ErrInvalidInput
	}
	if !validIdentificationType(in.IdentificationType) {
		return nil, domain.ErrInvalidInput
	}
	kind := in.Kind
	if kind == "" {
		kind = "cliente"
	}
	if !validKind(kind) {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByIdentification(in.IdentificationNumber)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	person := &entity.Person{
		ID:                   uuid.New().String(),
		FirstName:            in.FirstName,
		LastName:             in.LastName,
		IdentificationType:   in.IdentificationType,
		IdentificationNumber: in.IdentificationNumber,
		Email:                in.Email,
		Phone:                in.Phone,
		Kind:                 kind,
	}
	if err := uc.repo.Create(person); err != nil {
		return nil, err
	}
	return toPersonResponse(person), nil
}

// GetByID obtiene una persona por ID.
func (uc *PersonUseCase) GetByID(id string) (*dto.PersonResponse, error) {
	person, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if person == nil {
		return nil, domain.ErrNotFound
	}
	return toPersonResponse(person), nil
}

// Update actualiza una persona. Tipo y número de identificación son inmutables.
func (uc *PersonUseCase) Update(id string, in dto.UpdatePersonRequest) (*dto.PersonResponse, error) {
	person, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if person == nil {
		return nil, domain.ErrNotFound
	}
	if in.FirstName != nil {
		if *in.FirstName == "" {
			return nil, domain.ErrInvalidInput
		}
		person.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		person.LastName = *in.LastName
	}
	if in.Email != nil {
		person.Email = *in.Email
	}
	if in.Phone != nil {
		person.Phone = *in.Phone
	}
	if in.Kind != nil {
		if !validKind(*in.Kind) {
			return nil, domain.ErrInvalidInput
		}
		person.Kind = *in.Kind
	}
	if err := uc.repo.Update(person); err != nil {
		return nil, err
	}
	return toPersonResponse(person), nil
}

// List lista personas con paginación.
func (uc *PersonUseCase) List(page dto.PageRequest) ([]dto.PersonResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PersonResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *toPersonResponse(p))
	}
	return out, nil
}

// Delete elimina una persona. Falla con ErrConflict si tiene ventas o cuenta asociada.
func (uc *PersonUseCase) Delete(id string) error {
	person, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if person == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toPersonResponse(p *entity.Person) *dto.PersonResponse {
	return &dto.PersonResponse{
		ID:                   p.ID,
		FirstName:            p.FirstName,
		LastName:             p.LastName,
		IdentificationType:   p.IdentificationType,
		IdentificationNumber: p.IdentificationNumber,
		Email:                p.Email,
		Phone:                p.Phone,
		Kind:                 p.Kind,
	}
}
