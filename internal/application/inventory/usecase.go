package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Ferreteria-api/internal/application/dto"
	"github.com/jhoicas/Ferreteria-api/internal/domain"
	"github.com/jhoicas/Ferreteria-api/internal/domain/entity"
	"github.com/jhoicas/Ferreteria-api/internal/domain/repository"
)

// UseCase gestiona el inventario y su libro de movimientos. Es la única
// puerta por la que cambia la cantidad de un producto: toda mutación pasa
// por una transacción con bloqueo de fila (SELECT FOR UPDATE) y deja una
// entrada en el libro, de modo que la suma de los deltas siempre reconstruye
// la existencia actual.
type UseCase struct {
	txRunner         TxRunner
	inventoryRepo    repository.InventoryRepository
	movementRepo     repository.MovementRepository
	productRepo      repository.ProductRepository
	userRepo         repository.UserRepository
	typeMovementRepo repository.TypeMovementRepository
}

// NewUseCase construye el caso de uso. Los repositorios recibidos van atados
// al pool (solo lectura); los de escritura se obtienen dentro del TxRunner.
func NewUseCase(
	txRunner TxRunner,
	inventoryRepo repository.InventoryRepository,
	movementRepo repository.MovementRepository,
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
	typeMovementRepo repository.TypeMovementRepository,
) *UseCase {
	return &UseCase{
		txRunner:         txRunner,
		inventoryRepo:    inventoryRepo,
		movementRepo:     movementRepo,
		productRepo:      productRepo,
		userRepo:         userRepo,
		typeMovementRepo: typeMovementRepo,
	}
}

// CreateInventory aprovisiona el registro de existencias de un producto.
// El producto debe existir y no tener ya inventario asignado (a lo más un
// registro por producto). La cantidad inicial actúa como semilla del libro.
func (uc *UseCase) CreateInventory(ctx context.Context, in dto.CreateInventoryRequest) (*dto.InventoryResponse, error) {
	if in.ProductID == "" || in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	existing, err := uc.inventoryRepo.GetByProductID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	inv := &entity.Inventory{
		ID:        uuid.New().String(),
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		UpdatedAt: time.Now(),
	}
	if err := uc.inventoryRepo.Create(inv); err != nil {
		return nil, err
	}
	return toInventoryResponse(inv, product), nil
}

// ListInventory lista las existencias con la información del producto.
func (uc *UseCase) ListInventory(ctx context.Context, page dto.PageRequest) ([]dto.InventoryResponse, error) {
	page.DefaultPage()
	list, err := uc.inventoryRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InventoryResponse, 0, len(list))
	for _, info := range list {
		out = append(out, dto.InventoryResponse{
			ID:          info.ID,
			ProductID:   info.ProductID,
			ProductCode: info.ProductCode,
			ProductName: info.ProductName,
			Quantity:    info.Quantity,
			MinQuantity: info.MinQuantity,
			UpdatedAt:   info.UpdatedAt,
		})
	}
	return out, nil
}

// GetInventoryByProduct devuelve la existencia actual de un producto.
func (uc *UseCase) GetInventoryByProduct(ctx context.Context, productID string) (*dto.InventoryResponse, error) {
	inv, err := uc.inventoryRepo.GetByProductID(productID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	return toInventoryResponse(inv, product), nil
}

// DeleteInventoryByProduct elimina el registro de existencias de un producto.
// Es independiente del borrado del producto; los movimientos históricos quedan.
func (uc *UseCase) DeleteInventoryByProduct(ctx context.Context, productID string) error {
	inv, err := uc.inventoryRepo.GetByProductID(productID)
	if err != nil {
		return err
	}
	if inv == nil {
		return domain.ErrNotFound
	}
	return uc.inventoryRepo.DeleteByProductID(productID)
}

func toInventoryResponse(inv *entity.Inventory, product *entity.Product) *dto.InventoryResponse {
	resp := &dto.InventoryResponse{
		ID:        inv.ID,
		ProductID: inv.ProductID,
		Quantity:  inv.Quantity,
		UpdatedAt: inv.UpdatedAt,
	}
	if product != nil {
		resp.ProductCode = product.Code
		resp.ProductName = product.Name
		resp.MinQuantity = product.MinQuantity
	}
	return resp
}
