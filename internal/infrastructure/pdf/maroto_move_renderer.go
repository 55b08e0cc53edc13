// Package pdf implementa el render del documento imprimible de un movimiento
// de stock usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: StockMaster IMS │ RECEIPT / DELIVERY ORDER / ...   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  INFO: Reference │ Date                                     │
//	│  DETAILS: Product + SKU │ Quantity + UOM                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ROUTE: From (Vendor) / To (Warehouse) / ... según el tipo  │
//	│  STATUS                                                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: atribución + fecha de impresión                    │
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

	"github.com/stockmaster/ops-gateway/internal/domain/document"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorInk  = &props.Color{Red: 0, Green: 0, Blue: 0}
	colorGray = &props.Color{Red: 102, Green: 102, Blue: 102}
)

// ── Renderer ──────────────────────────────────────────────────────────────────

// MarotoMoveRenderer implementa moves.DocumentRenderer usando Maroto v2.
type MarotoMoveRenderer struct{}

// NewMarotoMoveRenderer construye el renderer.
func NewMarotoMoveRenderer() *MarotoMoveRenderer { return &MarotoMoveRenderer{} }

// Render genera el PDF del documento y devuelve sus bytes.
func (r *MarotoMoveRenderer) Render(_ context.Context, doc *document.MoveDocument) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle(doc.Title, true).
		WithAuthor(doc.SystemName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRows(doc)...)
	m.AddRows(line.NewRow(2, props.Line{Color: colorInk, Thickness: 1.2}))
	m.AddRows(infoRow(doc))
	m.AddRows(detailsRow(doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorInk, Thickness: 0.5}))

	for _, section := range doc.Route {
		m.AddRows(routeRows(section)...)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorInk, Thickness: 0.5}))
	m.AddRows(statusRow(doc))
	m.AddRows(line.NewRow(2, props.Line{Color: colorInk, Thickness: 1.2}))
	m.AddRows(footerRows(doc)...)

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRows: nombre del sistema + título del tipo de movimiento.
func headerRows(doc *document.MoveDocument) []core.Row {
	return []core.Row{
		row.New(12).Add(
			col.New(12).Add(
				text.New(doc.SystemName, props.Text{
					Style: fontstyle.Bold, Size: 20, Color: colorInk, Top: 1,
				}),
			),
		),
		row.New(9).Add(
			col.New(12).Add(
				text.New(doc.TypeLabel, props.Text{
					Style: fontstyle.Bold, Size: 14, Color: colorGray,
				}),
			),
		),
	}
}

// infoRow: referencia (izq) y fecha del movimiento (der).
func infoRow(doc *document.MoveDocument) core.Row {
	return row.New(14).Add(
		col.New(6).Add(
			text.New("REFERENCE", labelProps()),
			text.New(doc.Reference, valueProps()),
		),
		col.New(6).Add(
			text.New("DATE", labelProps()),
			text.New(doc.Date, valueProps()),
		),
	)
}

// detailsRow: producto + SKU (izq) y cantidad (der).
func detailsRow(doc *document.MoveDocument) core.Row {
	return row.New(18).Add(
		col.New(6).Add(
			text.New("PRODUCT", labelProps()),
			text.New(doc.Product, valueProps()),
			text.New("SKU: "+doc.SKU, props.Text{Size: 8, Top: 13, Color: colorGray}),
		),
		col.New(6).Add(
			text.New("QUANTITY", labelProps()),
			text.New(doc.Quantity, valueProps()),
		),
	)
}

// routeRows: un bloque por sección de ruta, con sus líneas de contacto.
func routeRows(section document.Section) []core.Row {
	rows := []core.Row{
		row.New(12).Add(
			col.New(12).Add(
				text.New(section.Title, labelProps()),
				text.New(section.Content, valueProps()),
			),
		),
	}
	for _, detail := range section.Details {
		rows = append(rows, row.New(5).Add(
			col.New(12).Add(
				text.New(detail, props.Text{Size: 8, Color: colorGray}),
			),
		))
	}
	return rows
}

func statusRow(doc *document.MoveDocument) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("STATUS", labelProps()),
			text.New(doc.Status, props.Text{Style: fontstyle.Bold, Size: 13, Top: 5, Color: colorInk}),
		),
	)
}

func footerRows(doc *document.MoveDocument) []core.Row {
	return []core.Row{
		row.New(7).Add(
			col.New(12).Add(
				text.New(doc.Footer, props.Text{
					Style: fontstyle.Bold, Size: 8, Align: align.Center, Color: colorInk, Top: 2,
				}),
			),
		),
		row.New(5).Add(
			col.New(12).Add(
				text.New("Print Date: "+doc.PrintedAt, props.Text{
					Size: 8, Align: align.Center, Color: colorGray,
				}),
			),
		),
	}
}

func labelProps() props.Text {
	return props.Text{Style: fontstyle.Bold, Size: 7, Color: colorGray, Top: 1}
}

func valueProps() props.Text {
	return props.Text{Style: fontstyle.Bold, Size: 12, Top: 5, Color: colorInk}
}
