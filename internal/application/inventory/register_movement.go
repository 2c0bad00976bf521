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

// RegisterMovement registra un movimiento de inventario: muta la existencia
// del producto y deja la entrada en el libro, ambas en la misma transacción.
// Quantity es el delta con signo; cero es inválido. Si el delta dejaría la
// existencia por debajo de cero, la operación completa se rechaza con
// InsufficientStockError y nada queda escrito.
func (uc *UseCase) RegisterMovement(ctx context.Context, userID string, in dto.RegisterMovementRequest) (*dto.MovementResponse, error) {
	if in.ProductID == "" || in.TypeMovementID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity == 0 {
		return nil, domain.ErrInvalidInput
	}

	// Las referencias se validan fuera de la transacción para mantener el
	// bloqueo de fila lo más corto posible.
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	tm, err := uc.typeMovementRepo.GetByID(in.TypeMovementID)
	if err != nil {
		return nil, err
	}
	if tm == nil {
		return nil, domain.ErrNotFound
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	var mov *entity.Movement
	err = uc.txRunner.Run(ctx, func(invRepo repository.InventoryRepository, movRepo repository.MovementRepository) error {
		inv, err := invRepo.GetForUpdateByProductID(in.ProductID)
		if err != nil {
			return err
		}
		if inv == nil {
			return domain.ErrNotFound
		}
		newQty := inv.Quantity + in.Quantity
		if newQty < 0 {
			return &domain.InsufficientStockError{
				ProductName: product.Name,
				Available:   inv.Quantity,
				Requested:   -in.Quantity,
			}
		}
		inv.Quantity = newQty
		inv.UpdatedAt = now
		if err := invRepo.UpdateQuantity(inv); err != nil {
			return err
		}
		mov = &entity.Movement{
			ID:             uuid.New().String(),
			InventoryID:    inv.ID,
			TypeMovementID: tm.ID,
			UserID:         user.ID,
			Quantity:       in.Quantity,
			Description:    in.Description,
			Date:           now,
		}
		return movRepo.Create(mov)
	})
	if err != nil {
		return nil, err
	}

	return &dto.MovementResponse{
		ID:              mov.ID,
		InventoryID:     mov.InventoryID,
		ProductID:       product.ID,
		ProductCode:     product.Code,
		ProductName:     product.Name,
		TypeMovementID:  tm.ID,
		TypeCode:        tm.Code,
		TypeDescription: tm.Description,
		UserID:          user.ID,
		Username:        user.Username,
		Quantity:        mov.Quantity,
		Description:     mov.Description,
		Date:            mov.Date,
	}, nil
}

// RegisterOutflowInTx descuenta stock y registra la salida usando los
// repositorios de una transacción ya abierta. Lo usa el coordinador de ventas
// para que cada línea vendida comparta transacción con la venta misma.
func (uc *UseCase) RegisterOutflowInTx(
	invRepo repository.InventoryRepository,
	movRepo repository.MovementRepository,
	product *entity.Product,
	typeMovementID, userID string,
	quantity int,
	description string,
	now time.Time,
) error {
	if quantity <= 0 {
		return domain.ErrInvalidInput
	}
	inv, err := invRepo.GetForUpdateByProductID(product.ID)
	if err != nil {
		return err
	}
	if inv == nil {
		return domain.ErrNotFound
	}
	if inv.Quantity < quantity {
		return &domain.InsufficientStockError{
			ProductName: product.Name,
			Available:   inv.Quantity,
			Requested:   quantity,
		}
	}
	inv.Quantity -= quantity
	inv.UpdatedAt = now
	if err := invRepo.UpdateQuantity(inv); err != nil {
		return err
	}
	return movRepo.Create(&entity.Movement{
		ID:             uuid.New().String(),
		InventoryID:    inv.ID,
		TypeMovementID: typeMovementID,
		UserID:         userID,
		Quantity:       -quantity,
		Description:    description,
		Date:           now,
	})
}

// GetMovement devuelve una entrada del libro por su id.
func (uc *UseCase) GetMovement(ctx context.Context, id string) (*dto.MovementResponse, error) {
	mov, err := uc.movementRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if mov == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.MovementResponse{
		ID:             mov.ID,
		InventoryID:    mov.InventoryID,
		TypeMovementID: mov.TypeMovementID,
		UserID:         mov.UserID,
		Quantity:       mov.Quantity,
		Description:    mov.Description,
		Date:           mov.Date,
	}, nil
}

// ListMovements lista el libro de movimientos, más recientes primero.
func (uc *UseCase) ListMovements(ctx context.Context, page dto.PageRequest) ([]dto.MovementResponse, error) {
	page.DefaultPage()
	list, err := uc.movementRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementResponse, 0, len(list))
	for _, info := range list {
		out = append(out, dto.MovementResponse{
			ID:              info.ID,
			InventoryID:     info.InventoryID,
			ProductID:       info.ProductID,
			ProductCode:     info.ProductCode,
			ProductName:     info.ProductName,
			TypeMovementID:  info.TypeMovementID,
			TypeCode:        info.TypeCode,
			TypeDescription: info.TypeDescription,
			UserID:          info.UserID,
			Username:        info.Username,
			Quantity:        info.Quantity,
			Description:     info.Description,
			Date:            info.Date,
		})
	}
	return out, nil
}

// UpdateMovement corrige los metadatos de una entrada del libro. Solo
// descripción y fecha son editables; cualquier intento de cambiar cantidad,
// producto, tipo o actor se rechaza, porque desincronizaría el libro de la
// existencia registrada.
func (uc *UseCase) UpdateMovement(ctx context.Context, id string, in dto.UpdateMovementRequest) (*dto.MovementResponse, error) {
	if in.Quantity != nil || in.ProductID != nil || in.TypeMovementID != nil || in.UserID != nil {
		return nil, domain.ErrUnsupportedOperation
	}
	if in.Description == nil && in.Date == nil {
		return nil, domain.ErrInvalidInput
	}
	mov, err := uc.movementRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if mov == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.movementRepo.UpdateMetadata(id, in.Description, in.Date); err != nil {
		return nil, err
	}
	if in.Description != nil {
		mov.Description = *in.Description
	}
	if in.Date != nil {
		mov.Date = *in.Date
	}
	return &dto.MovementResponse{
		ID:             mov.ID,
		InventoryID:    mov.InventoryID,
		TypeMovementID: mov.TypeMovementID,
		UserID:         mov.UserID,
		Quantity:       mov.Quantity,
		Description:    mov.Description,
		Date:           mov.Date,
	}, nil
}

// DeleteMovement elimina una entrada del libro. No revierte el efecto sobre
// el inventario: para corregir stock se registra un movimiento de ajuste.
func (uc *UseCase) DeleteMovement(ctx context.Context, id string) error {
	mov, err := uc.movementRepo.GetByID(id)
	if err != nil {
		return err
	}
	if mov == nil {
		return domain.ErrNotFound
	}
	return uc.movementRepo.Delete(id)
}
