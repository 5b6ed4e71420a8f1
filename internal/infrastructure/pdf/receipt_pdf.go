// Package pdf implementa el comprobante imprimible de recepciones y
// despachos usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + N° comprobante + Fecha                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Proveedor/Cliente + Notas                                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: SKU | Artículo | Ubicación | Cant | Precio | Total  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

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

	"github.com/jhoicas/bodega-api/internal/application/document"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoReceiptGenerator implementa document.ReceiptPDFGenerator usando Maroto v2.
type MarotoReceiptGenerator struct{}

// NewMarotoReceiptGenerator construye el generador.
func NewMarotoReceiptGenerator() *MarotoReceiptGenerator { return &MarotoReceiptGenerator{} }

// GenerateReceiptPDF genera el comprobante y devuelve sus bytes.
func (g *MarotoReceiptGenerator) GenerateReceiptPDF(
	_ context.Context,
	header document.ReceiptHeaderForPDF,
	lines []document.ReceiptLineForPDF,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(header.Title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(header))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(partnerRow(header))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	total := decimal.Zero
	for _, l := range lines {
		m.AddRows(detailRow(l))
		total = total.Add(l.Total)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(total))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar comprobante: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título (izq) y N° de comprobante + fecha (der).
func headerRow(h document.ReceiptHeaderForPDF) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(h.Title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("N° "+h.ReceiptID, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 1,
			}),
			text.New("Fecha: "+h.Date.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

// partnerRow: proveedor o cliente + notas.
func partnerRow(h document.ReceiptHeaderForPDF) core.Row {
	notes := h.Notes
	if notes == "" {
		notes = "—"
	}
	return row.New(12).Add(
		col.New(6).Add(
			text.New(h.PartnerRole+": "+h.PartnerName, props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 1,
			}),
		),
		col.New(6).Add(
			text.New("Notas: "+notes, props.Text{
				Size: 8, Top: 1, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	bold := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary}
	boldRight := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Align: align.Right}
	return row.New(7).Add(
		col.New(2).Add(text.New("SKU", bold)),
		col.New(4).Add(text.New("Artículo", bold)),
		col.New(2).Add(text.New("Ubicación", bold)),
		col.New(1).Add(text.New("Cant.", boldRight)),
		col.New(1).Add(text.New("Precio", boldRight)),
		col.New(2).Add(text.New("Total", boldRight)),
	)
}

func detailRow(l document.ReceiptLineForPDF) core.Row {
	normal := props.Text{Size: 8}
	right := props.Text{Size: 8, Align: align.Right}
	return row.New(6).Add(
		col.New(2).Add(text.New(l.ItemCode, normal)),
		col.New(4).Add(text.New(l.ItemName, normal)),
		col.New(2).Add(text.New(l.LocationCode, normal)),
		col.New(1).Add(text.New(l.Quantity.String(), right)),
		col.New(1).Add(text.New(l.UnitPrice.StringFixed(2), right)),
		col.New(2).Add(text.New(l.Total.StringFixed(2), right)),
	)
}

func totalRow(total decimal.Decimal) core.Row {
	return row.New(8).Add(
		col.New(9).Add(text.New("TOTAL", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 1,
		})),
		col.New(3).Add(text.New(total.StringFixed(2), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 1, Color: colorPrimary,
		})),
	)
}
