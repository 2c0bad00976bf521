// Package pdf implementa la generación de los documentos PDF de la ferretería
// usando Maroto v2: el comprobante de venta y el reporte de existencias.
//
// Layout del comprobante (A4):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Ferretería  │  N° Venta + Fecha                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE / VENDEDOR / MEDIO DE PAGO                          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Producto | P.Unit | IVA | Subtotal            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL (IVA informativo por línea, no sumado)                │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	appreports "github.com/jhoicas/Ferreteria-api/internal/application/reports"
	"github.com/jhoicas/Ferreteria-api/internal/domain/entity"
	"github.com/jhoicas/Ferreteria-api/internal/domain/repository"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

const storeName = "Ferretería"

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa reports.PDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

func newDocument(title string) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		Build()
	return maroto.New(cfg)
}

// GenerateSaleReceipt genera el comprobante de venta y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateSaleReceipt(
	_ context.Context,
	sale *entity.SaleInfo,
	details []appreports.ReceiptLine,
) ([]byte, error) {
	m := newDocument("Comprobante de Venta")

	m.AddRows(receiptHeaderRow(sale))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(receiptPartiesRow(sale))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(receiptTableHeaderRow())
	for _, r := range receiptDetailRows(details) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(receiptTotalsRow(sale, details))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// GenerateStockReport genera el reporte de existencias valorizado.
func (g *MarotoPDFGenerator) GenerateStockReport(
	_ context.Context,
	generatedAt time.Time,
	rows []repository.StockReportRow,
) ([]byte, error) {
	m := newDocument("Reporte de Existencias")

	m.AddRows(row.New(14).Add(
		col.New(8).Add(
			text.New(storeName, props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1}),
			text.New("REPORTE DE EXISTENCIAS", props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("Generado: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(stockTableHeaderRow())
	total := decimal.Zero
	for _, r := range rows {
		m.AddRows(stockDetailRow(r))
		total = total.Add(r.Valuation)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(row.New(8).Add(
		col.New(8).Add(text.New("VALOR TOTAL DEL INVENTARIO:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 1, Right: 2,
		})),
		col.New(4).Add(text.New("$"+formatMoney(total.StringFixed(0)), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 1, Right: 1,
		})),
	))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones del comprobante ─────────────────────────────────────────────────

// receiptHeaderRow: nombre de la tienda (izq) y N° de venta + fecha (der).
func receiptHeaderRow(sale *entity.SaleInfo) core.Row {
	fecha := sale.Date.Format("02/01/2006 15:04")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(storeName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Comprobante de venta", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("VENTA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(sale.ID, props.Text{
				Size: 7, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// receiptPartiesRow: cliente, vendedor y medio de pago.
func receiptPartiesRow(sale *entity.SaleInfo) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("Cliente: "+nonEmpty(sale.CustomerName, "—"), props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 1,
			}),
			text.New(fmt.Sprintf("Atendido por: %s   |   Medio de pago: %s",
				nonEmpty(sale.EmployeeName, "—"),
				nonEmpty(sale.PaymentMethod, "—"),
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// receiptTableHeaderRow: cabecera de la tabla de líneas.
func receiptTableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Producto", 5, align.Left),
		h("Precio Unit.", 2, align.Right),
		h("IVA%", 1, align.Center),
		h("Subtotal", 3, align.Right),
	)
}

// receiptDetailRows: una fila por línea vendida, con su instantánea de precio.
func receiptDetailRows(details []appreports.ReceiptLine) []core.Row {
	result := make([]core.Row, 0, len(details))
	for _, d := range details {
		taxPct := d.TaxRate.Mul(decimal.NewFromInt(100))
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", d.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(5).Add(text.New(
				d.ProductName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				"$"+formatMoney(d.UnitPrice.StringFixed(0)),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(
				taxPct.StringFixed(0)+"%",
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(3).Add(text.New(
				"$"+formatMoney(d.Subtotal().StringFixed(0)),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// receiptTotalsRow: total de la venta más el IVA informativo.
func receiptTotalsRow(sale *entity.SaleInfo, details []appreports.ReceiptLine) core.Row {
	tax := decimal.Zero
	for _, d := range details {
		tax = tax.Add(d.Subtotal().Mul(d.TaxRate))
	}

	return row.New(18).Add(
		col.New(6),
		col.New(3).Add(
			text.New("IVA (informativo):", props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
			}),
			text.New("TOTAL:", props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right,
				Color: colorPrimary, Top: 7, Right: 2,
			}),
		),
		col.New(3).Add(
			text.New("$"+formatMoney(tax.StringFixed(0)), props.Text{
				Size: 9, Align: align.Right, Right: 1,
			}),
			text.New("$"+formatMoney(sale.Total.StringFixed(0)), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right,
				Color: colorPrimary, Top: 7, Right: 1,
			}),
		),
	)
}

// ── Secciones del reporte de existencias ──────────────────────────────────────

func stockTableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Código", 2, align.Left),
		h("Producto", 4, align.Left),
		h("Categoría", 2, align.Left),
		h("Exist.", 1, align.Center),
		h("Mín.", 1, align.Center),
		h("Valor", 2, align.Right),
	)
}

func stockDetailRow(r repository.StockReportRow) core.Row {
	qtyStyle := props.Text{Size: 8, Align: align.Center, Top: 1}
	if r.Quantity <= r.MinQuantity {
		qtyStyle.Style = fontstyle.Bold
	}
	return row.New(6).Add(
		col.New(2).Add(text.New(r.ProductCode, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
		col.New(4).Add(text.New(r.ProductName, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
		col.New(2).Add(text.New(r.Category, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1, Color: colorGray})),
		col.New(1).Add(text.New(fmt.Sprintf("%d", r.Quantity), qtyStyle)),
		col.New(1).Add(text.New(fmt.Sprintf("%d", r.MinQuantity), props.Text{Size: 8, Align: align.Center, Top: 1, Color: colorGray})),
		col.New(2).Add(text.New("$"+formatMoney(r.Valuation.StringFixed(0)), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func formatMoney(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
