package reports

import (
	"context"
	"time"

	"github.com/jhoicas/Ferreteria-api/internal/domain/entity"
	"github.com/jhoicas/Ferreteria-api/internal/domain/repository"
)

// ReceiptLine línea de venta enriquecida con el nombre del producto para el PDF.
type ReceiptLine struct {
	entity.SaleDetail
	ProductName string
}

// PDFGenerator genera los documentos PDF del sistema.
// La implementación vive en infrastructure/pdf (Maroto).
type PDFGenerator interface {
	// GenerateSaleReceipt genera el comprobante de venta.
	GenerateSaleReceipt(ctx context.Context, sale *entity.SaleInfo, details []ReceiptLine) ([]byte, error)
	// GenerateStockReport genera el reporte de existencias valorizado.
	GenerateStockReport(ctx context.Context, generatedAt time.Time, rows []repository.StockReportRow) ([]byte, error)
}
