package sales

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Ferreteria-api/internal/application/dto"
	"github.com/jhoicas/Ferreteria-api/internal/domain"
	"github.com/jhoicas/Ferreteria-api/internal/domain/entity"
	"github.com/jhoicas/Ferreteria-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// CreateSale registra una venta completa: cabecera, líneas con instantánea de
// precio e IVA, y por cada línea el descuento de stock con su movimiento
// SALIDA_VENTA, todo en una sola transacción. Si alguna línea no tiene stock
// suficiente la venta entera se rechaza y nada queda escrito.
//
// El total es la suma de cantidad × precio unitario de las líneas; el IVA se
// guarda por línea pero no se suma al total.
func (uc *UseCase) CreateSale(ctx context.Context, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if in.CustomerID == "" || in.EmployeeID == "" || in.PaymentMethodID == "" {
		return nil, domain.ErrInvalidInput
	}
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if item.ProductID == "" || item.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
	}

	// Referencias resueltas fuera de la transacción: los bloqueos de fila
	// solo deben cubrir la mutación de stock.
	customer, err := uc.personRepo.GetByID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	employee, err := uc.personRepo.GetByID(in.EmployeeID)
	if err != nil {
		return nil, err
	}
	if employee == nil || employee.Kind != "empleado" {
		return nil, domain.ErrNotFound
	}
	pm, err := uc.paymentMethodRepo.GetByID(in.PaymentMethodID)
	if err != nil {
		return nil, err
	}
	if pm == nil {
		return nil, domain.ErrNotFound
	}

	// El actor de los movimientos es la cuenta del empleado que vende.
	actor, err := uc.userRepo.GetByPersonID(employee.ID)
	if err != nil {
		return nil, err
	}
	if actor == nil {
		return nil, domain.ErrUserNotFound
	}

	// El tipo SALIDA_VENTA se resuelve por código; que falte es un problema
	// de instalación, no de la petición.
	saleType, err := uc.typeMovementRepo.GetByCode(entity.TypeMovementSaleOutflow)
	if err != nil {
		return nil, err
	}
	if saleType == nil {
		return nil, domain.ErrConfiguracion
	}

	products := make([]*entity.Product, len(in.Items))
	for i, item := range in.Items {
		product, err := uc.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
		products[i] = product
	}

	now := time.Now()
	sale := &entity.Sale{
		ID:              uuid.New().String(),
		CustomerID:      customer.ID,
		EmployeeID:      employee.ID,
		PaymentMethodID: pm.ID,
		Date:            now,
		Total:           decimal.Zero,
	}
	details := make([]*entity.SaleDetail, len(in.Items))
	for i, item := range in.Items {
		details[i] = &entity.SaleDetail{
			ID:        uuid.New().String(),
			SaleID:    sale.ID,
			ProductID: products[i].ID,
			Quantity:  item.Quantity,
			UnitPrice: products[i].Price,
			TaxRate:   products[i].TaxRate,
		}
		sale.Total = sale.Total.Add(details[i].Subtotal())
	}

	err = uc.txRunner.RunSale(ctx, func(
		invRepo repository.InventoryRepository,
		movRepo repository.MovementRepository,
		saleRepo repository.SaleRepository,
	) error {
		if err := saleRepo.Create(sale); err != nil {
			return err
		}
		for i, detail := range details {
			if err := uc.stock.RegisterOutflowInTx(
				invRepo, movRepo,
				products[i],
				saleType.ID,
				actor.ID,
				detail.Quantity,
				"Venta #"+sale.ID,
				now,
			); err != nil {
				return err
			}
			if err := saleRepo.CreateDetail(detail); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := toSaleResponse(sale, details)
	resp.CustomerName = customer.FullName()
	resp.EmployeeName = employee.FullName()
	resp.PaymentMethod = pm.Description
	return resp, nil
}
