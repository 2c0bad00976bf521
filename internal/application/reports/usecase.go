package reports

import (
	"context"
	"time"

	"github.com/jhoicas/Ferreteria-api/internal/application/dto"
	"github.com/jhoicas/Ferreteria-api/internal/domain"
	"github.com/jhoicas/Ferreteria-api/internal/domain/repository"
)

// UseCase consultas de lectura para reportes y dashboard.
type UseCase struct {
	reportsRepo  repository.ReportsRepository
	movementRepo repository.MovementRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(reportsRepo repository.ReportsRepository, movementRepo repository.MovementRepository) *UseCase {
	return &UseCase{reportsRepo: reportsRepo, movementRepo: movementRepo}
}

const dateLayout = "2006-01-02"

// parseRange interpreta start_date/end_date; por defecto los últimos 30 días.
func parseRange(q dto.ReportQuery) (from, to time.Time, err error) {
	now := time.Now()
	to = now
	from = now.AddDate(0, 0, -30)
	if q.StartDate != "" {
		from, err = time.Parse(dateLayout, q.StartDate)
		if err != nil {
			return from, to, domain.ErrInvalidInput
		}
	}
	if q.EndDate != "" {
		to, err = time.Parse(dateLayout, q.EndDate)
		if err != nil {
			return from, to, domain.ErrInvalidInput
		}
		// rango inclusivo: fin del día
		to = to.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	if from.After(to) {
		return from, to, domain.ErrInvalidInput
	}
	return from, to, nil
}

// SalesSummary resume las ventas agrupadas por periodo (day/week/month/year).
func (uc *UseCase) SalesSummary(ctx context.Context, q dto.ReportQuery) ([]dto.SalesPeriodDTO, error) {
	period := q.Period
	if period == "" {
		period = "day"
	}
	switch period {
	case "day", "week", "month", "year":
	default:
		return nil, domain.ErrInvalidInput
	}
	from, to, err := parseRange(q)
	if err != nil {
		return nil, err
	}
	rows, err := uc.reportsRepo.SalesSummaryByPeriod(ctx, period, from, to)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SalesPeriodDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.SalesPeriodDTO{
			Period:       r.Period,
			Total:        r.Total,
			Transactions: r.Transactions,
			UnitsSold:    r.UnitsSold,
		})
	}
	return out, nil
}

// TopProducts devuelve los productos más vendidos por unidades.
func (uc *UseCase) TopProducts(ctx context.Context, q dto.ReportQuery) ([]dto.TopProductDTO, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = 10
	}
	rows, err := uc.reportsRepo.TopProductsSold(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TopProductDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.TopProductDTO{
			ProductID:   r.ProductID,
			ProductName: r.ProductName,
			UnitsSold:   r.UnitsSold,
			Revenue:     r.Revenue,
		})
	}
	return out, nil
}

// SalesByCategory agrupa el valor vendido por categoría.
func (uc *UseCase) SalesByCategory(ctx context.Context) ([]dto.CategorySalesDTO, error) {
	rows, err := uc.reportsRepo.SalesByCategory(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategorySalesDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.CategorySalesDTO{
			CategoryID:   r.CategoryID,
			CategoryName: r.CategoryName,
			Total:        r.Total,
		})
	}
	return out, nil
}

// LowStock lista los productos por debajo de su cantidad mínima.
func (uc *UseCase) LowStock(ctx context.Context) ([]dto.LowStockDTO, error) {
	rows, err := uc.reportsRepo.LowStockProducts(ctx)
	if err != nil {
		return nil, err
	}
	return toLowStockDTOs(rows), nil
}

// Dashboard arma los agregados de la pantalla principal en una sola respuesta.
func (uc *UseCase) Dashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	startOfWeek := startOfDay.AddDate(0, 0, -int((now.Weekday()+6)%7)) // lunes
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	totalProducts, err := uc.reportsRepo.CountProducts(ctx)
	if err != nil {
		return nil, err
	}
	inventoryValue, err := uc.reportsRepo.InventoryValue(ctx)
	if err != nil {
		return nil, err
	}
	salesToday, _, err := uc.reportsRepo.SalesTotalsBetween(ctx, startOfDay, now)
	if err != nil {
		return nil, err
	}
	salesWeek, _, err := uc.reportsRepo.SalesTotalsBetween(ctx, startOfWeek, now)
	if err != nil {
		return nil, err
	}
	salesMonth, _, err := uc.reportsRepo.SalesTotalsBetween(ctx, startOfMonth, now)
	if err != nil {
		return nil, err
	}
	lowStock, err := uc.reportsRepo.LowStockProducts(ctx)
	if err != nil {
		return nil, err
	}
	zeroStock, err := uc.reportsRepo.ZeroStockCount(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := uc.movementRepo.List(10, 0)
	if err != nil {
		return nil, err
	}

	recentDTOs := make([]dto.MovementResponse, 0, len(recent))
	for _, m := range recent {
		recentDTOs = append(recentDTOs, dto.MovementResponse{
			ID:              m.ID,
			InventoryID:     m.InventoryID,
			ProductID:       m.ProductID,
			ProductCode:     m.ProductCode,
			ProductName:     m.ProductName,
			TypeMovementID:  m.TypeMovementID,
			TypeCode:        m.TypeCode,
			TypeDescription: m.TypeDescription,
			UserID:          m.UserID,
			Username:        m.Username,
			Quantity:        m.Quantity,
			Description:     m.Description,
			Date:            m.Date,
		})
	}

	return &dto.DashboardResponse{
		TotalProducts:       totalProducts,
		TotalInventoryValue: inventoryValue,
		SalesToday:          salesToday,
		SalesThisWeek:       salesWeek,
		SalesThisMonth:      salesMonth,
		LowStockProducts:    toLowStockDTOs(lowStock),
		ZeroStockCount:      zeroStock,
		RecentMovements:     recentDTOs,
	}, nil
}

func toLowStockDTOs(rows []repository.LowStockRow) []dto.LowStockDTO {
	out := make([]dto.LowStockDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.LowStockDTO{
			ProductID:   r.ProductID,
			ProductCode: r.ProductCode,
			ProductName: r.ProductName,
			Quantity:    r.Quantity,
			MinQuantity: r.MinQuantity,
		})
	}
	return out
}
