package sales

import (
	"context"
	"time"

	"github.com/jhoicas/Ferreteria-api/internal/domain/entity"
	"github.com/jhoicas/Ferreteria-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD con los
// repositorios de venta e inventario atados a esa tx. Una venta escribe
// cabecera, detalles, movimientos y existencias en una sola transacción.
type TxRunner interface {
	RunSale(ctx context.Context, fn func(
		invRepo repository.InventoryRepository,
		movRepo repository.MovementRepository,
		saleRepo repository.SaleRepository,
	) error) error
}

// StockRecorder descuenta stock y registra la salida en el libro dentro de
// una transacción ya abierta. Lo implementa el caso de uso de inventario,
// que es el único dueño de la regla de no-negatividad.
type StockRecorder interface {
	RegisterOutflowInTx(
		invRepo repository.InventoryRepository,
		movRepo repository.MovementRepository,
		product *entity.Product,
		typeMovementID, userID string,
		quantity int,
		description string,
		now time.Time,
	) error
}
