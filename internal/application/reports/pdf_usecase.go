package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Ferreteria-api/internal/domain"
	"github.com/jhoicas/Ferreteria-api/internal/domain/repository"
)

// PDFUseCase genera los documentos PDF: comprobante de venta y reporte de existencias.
type PDFUseCase struct {
	saleRepo    repository.SaleRepository
	productRepo repository.ProductRepository
	reportsRepo repository.ReportsRepository
	generator   PDFGenerator
}

// NewPDFUseCase construye el caso de uso inyectando todas sus dependencias.
func NewPDFUseCase(
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	reportsRepo repository.ReportsRepository,
	generator PDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		saleRepo:    saleRepo,
		productRepo: productRepo,
		reportsRepo: reportsRepo,
		generator:   generator,
	}
}

// DownloadSaleReceipt recupera la venta con sus líneas, enriquece cada línea
// con el nombre del producto y genera el comprobante en PDF.
func (uc *PDFUseCase) DownloadSaleReceipt(ctx context.Context, saleID string) (pdfBytes []byte, filename string, err error) {
	sale, err := uc.saleRepo.GetInfoByID(saleID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener venta: %w", err)
	}
	if sale == nil {
		return nil, "", domain.ErrNotFound
	}

	rawDetails, err := uc.saleRepo.GetDetailsBySaleID(saleID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener detalles: %w", err)
	}

	enriched := make([]ReceiptLine, 0, len(rawDetails))
	for _, d := range rawDetails {
		name := "Producto " + d.ProductID // fallback
		if product, pErr := uc.productRepo.GetByID(d.ProductID); pErr == nil && product != nil {
			name = product.Name
		}
		enriched = append(enriched, ReceiptLine{
			SaleDetail:  *d,
			ProductName: name,
		})
	}

	pdfBytes, err = uc.generator.GenerateSaleReceipt(ctx, sale, enriched)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}

	filename = fmt.Sprintf("venta_%s.pdf", sale.ID)
	return pdfBytes, filename, nil
}

// DownloadStockReport genera el reporte de existencias valorizado.
func (uc *PDFUseCase) DownloadStockReport(ctx context.Context) (pdfBytes []byte, filename string, err error) {
	rows, err := uc.reportsRepo.StockReport(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: reporte de existencias: %w", err)
	}
	now := time.Now()
	pdfBytes, err = uc.generator.GenerateStockReport(ctx, now, rows)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	filename = fmt.Sprintf("existencias_%s.pdf", now.Format("20060102"))
	return pdfBytes, filename, nil
}
