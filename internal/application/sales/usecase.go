package sales

import (
	"context"

	"github.com/jhoicas/Ferreteria-api/internal/application/dto"
	"github.com/jhoicas/Ferreteria-api/internal/domain"
	"github.com/jhoicas/Ferreteria-api/internal/domain/entity"
	"github.com/jhoicas/Ferreteria-api/internal/domain/repository"
)

// UseCase coordina las ventas. Delega la mutación de stock en el caso de uso
// de inventario (StockRecorder) y garantiza que venta, líneas y movimientos
// se confirmen en una sola transacción.
type UseCase struct {
	txRunner          TxRunner
	stock             StockRecorder
	saleRepo          repository.SaleRepository
	personRepo        repository.PersonRepository
	userRepo          repository.UserRepository
	productRepo       repository.ProductRepository
	paymentMethodRepo repository.PaymentMethodRepository
	typeMovementRepo  repository.TypeMovementRepository
}

func NewUseCase(
	txRunner TxRunner,
	stock StockRecorder,
	saleRepo repository.SaleRepository,
	personRepo repository.PersonRepository,
	userRepo repository.UserRepository,
	productRepo repository.ProductRepository,
	paymentMethodRepo repository.PaymentMethodRepository,
	typeMovementRepo repository.TypeMovementRepository,
) *UseCase {
	return &UseCase{
		txRunner:          txRunner,
		stock:             stock,
		saleRepo:          saleRepo,
		personRepo:        personRepo,
		userRepo:          userRepo,
		productRepo:       productRepo,
		paymentMethodRepo: paymentMethodRepo,
		typeMovementRepo:  typeMovementRepo,
	}
}

// GetSale devuelve la venta con sus líneas y nombres resueltos.
func (uc *UseCase) GetSale(ctx context.Context, id string) (*dto.SaleResponse, error) {
	info, err := uc.saleRepo.GetInfoByID(id)
	if err != nil {
		return nil, err
	}
	if info == nil {
		return nil, domain.ErrNotFound
	}
	details, err := uc.saleRepo.GetDetailsBySaleID(id)
	if err != nil {
		return nil, err
	}
	resp := toSaleResponse(&info.Sale, details)
	resp.CustomerName = info.CustomerName
	resp.EmployeeName = info.EmployeeName
	resp.PaymentMethod = info.PaymentMethod
	return resp, nil
}

// ListSales lista ventas, más recientes primero, sin líneas.
func (uc *UseCase) ListSales(ctx context.Context, page dto.PageRequest) ([]dto.SaleResponse, error) {
	page.DefaultPage()
	list, err := uc.saleRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleResponse, 0, len(list))
	for _, info := range list {
		r := toSaleResponse(&info.Sale, nil)
		r.CustomerName = info.CustomerName
		r.EmployeeName = info.EmployeeName
		r.PaymentMethod = info.PaymentMethod
		out = append(out, *r)
	}
	return out, nil
}

// UpdateSale re-apunta cliente, empleado o método de pago de una venta.
// Las líneas son inmutables: corregirlas exigiría revertir y reaplicar
// movimientos de stock, así que Items presente se rechaza. Total, fecha y
// movimientos registrados no cambian.
func (uc *UseCase) UpdateSale(ctx context.Context, id string, in dto.UpdateSaleRequest) (*dto.SaleResponse, error) {
	if len(in.Items) > 0 {
		return nil, domain.ErrUnsupportedOperation
	}
	if in.CustomerID == nil && in.EmployeeID == nil && in.PaymentMethodID == nil {
		return nil, domain.ErrInvalidInput
	}
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	if in.CustomerID != nil {
		customer, err := uc.personRepo.GetByID(*in.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, domain.ErrNotFound
		}
		sale.CustomerID = customer.ID
	}
	if in.EmployeeID != nil {
		employee, err := uc.personRepo.GetByID(*in.EmployeeID)
		if err != nil {
			return nil, err
		}
		if employee == nil || employee.Kind != "empleado" {
			return nil, domain.ErrNotFound
		}
		sale.EmployeeID = employee.ID
	}
	if in.PaymentMethodID != nil {
		pm, err := uc.paymentMethodRepo.GetByID(*in.PaymentMethodID)
		if err != nil {
			return nil, err
		}
		if pm == nil {
			return nil, domain.ErrNotFound
		}
		sale.PaymentMethodID = pm.ID
	}
	if err := uc.saleRepo.UpdateRefs(sale); err != nil {
		return nil, err
	}
	return uc.GetSale(ctx, id)
}

// DeleteSale elimina la venta y sus líneas. No revierte el stock vendido ni
// borra los movimientos: el libro conserva la historia y cualquier corrección
// de existencias se hace con un movimiento de ajuste.
func (uc *UseCase) DeleteSale(ctx context.Context, id string) error {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return err
	}
	if sale == nil {
		return domain.ErrNotFound
	}
	return uc.saleRepo.Delete(id)
}

func toSaleResponse(sale *entity.Sale, details []*entity.SaleDetail) *dto.SaleResponse {
	resp := &dto.SaleResponse{
		ID:              sale.ID,
		CustomerID:      sale.CustomerID,
		EmployeeID:      sale.EmployeeID,
		PaymentMethodID: sale.PaymentMethodID,
		Date:            sale.Date,
		Total:           sale.Total,
		Details:         make([]dto.SaleDetailResponse, 0, len(details)),
	}
	for _, d := range details {
		resp.Details = append(resp.Details, dto.SaleDetailResponse{
			ID:        d.ID,
			ProductID: d.ProductID,
			Quantity:  d.Quantity,
			UnitPrice: d.UnitPrice,
			TaxRate:   d.TaxRate,
			Subtotal:  d.Subtotal(),
		})
	}
	return resp
}
