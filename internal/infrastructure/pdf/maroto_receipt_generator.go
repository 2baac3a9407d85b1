// Package pdf genera el comprobante de canje de un registro del ledger.
//
// Layout de la página A5:
//
//	┌──────────────────────────────────────────────┐
//	│  HEADER: Club + N° Registro │ Fecha           │
//	│  SOCIO: Nombre + email                        │
//	│  TABLA: Cant | Producto | Créditos | Total     │
//	│  TOTAL CRÉDITOS                               │
//	│  FOOTER: Atendido por + QR del registro       │
//	└──────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
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

	"github.com/jhoicas/asoadmin-api/internal/application/ledger"
	"github.com/jhoicas/asoadmin-api/internal/domain/repository"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ ledger.ReceiptGenerator = (*MarotoReceiptGenerator)(nil)

// MarotoReceiptGenerator implementa ledger.ReceiptGenerator usando Maroto v2.
type MarotoReceiptGenerator struct {
	clubName string
}

// NewMarotoReceiptGenerator construye el generador; clubName encabeza el comprobante.
func NewMarotoReceiptGenerator(clubName string) *MarotoReceiptGenerator {
	return &MarotoReceiptGenerator{clubName: nonEmpty(clubName, "AsoAdmin")}
}

// GenerateReceipt genera el PDF y devuelve sus bytes.
func (g *MarotoReceiptGenerator) GenerateReceipt(_ context.Context, rec *repository.RecordView, issuedAt time.Time) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Comprobante de canje", true).
		WithAuthor(g.clubName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(rec, issuedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(partnerRow(rec))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(tableHeaderRow(), detailRow(rec))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(rec))
	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow(rec))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar comprobante: %w", err)
	}
	return doc.GetBytes(), nil
}

func (g *MarotoReceiptGenerator) headerRow(rec *repository.RecordView, issuedAt time.Time) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.clubName, props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1}),
			text.New("Registro: "+shortID(rec.ID), props.Text{Size: 8, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("COMPROBANTE DE CANJE", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(rec.CreatedAt.In(issuedAt.Location()).Format("02/01/2006 15:04"), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 7,
			}),
			text.New("Emitido: "+issuedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 7, Align: align.Right, Top: 13, Color: colorGray,
			}),
		),
	)
}

// partnerRow usa el nombre registrado en el momento del canje.
func partnerRow(rec *repository.RecordView) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("SOCIO", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(nonEmpty(rec.PartnerName, rec.Partner.Name), props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New("Email: "+nonEmpty(rec.Partner.Email, "-"), props.Text{Size: 8, Top: 11, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 2, align.Center),
		h("Producto", 5, align.Left),
		h("Créditos/u", 2, align.Right),
		h("Total", 3, align.Right),
	)
}

// detailRow el precio unitario se deriva del total congelado, no del producto actual.
func detailRow(rec *repository.RecordView) core.Row {
	unit := decimal.Zero
	if rec.Quantity > 0 {
		unit = rec.TotalCredits.Div(decimal.NewFromInt(int64(rec.Quantity)))
	}
	return row.New(7).Add(
		col.New(2).Add(text.New(fmt.Sprintf("%d", rec.Quantity), props.Text{Size: 8, Align: align.Center, Top: 1})),
		col.New(5).Add(text.New(nonEmpty(rec.ProductName, rec.Product.Name), props.Text{Size: 8, Top: 1, Left: 1})),
		col.New(2).Add(text.New(formatCredits(unit), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		col.New(3).Add(text.New(formatCredits(rec.TotalCredits), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
	)
}

func totalRow(rec *repository.RecordView) core.Row {
	return row.New(10).Add(
		col.New(6),
		col.New(3).Add(text.New("TOTAL CRÉDITOS:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 2, Top: 2,
		})),
		col.New(3).Add(text.New(formatCredits(rec.TotalCredits), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 1, Top: 2,
		})),
	)
}

func footerRow(rec *repository.RecordView) core.Row {
	attended := nonEmpty(rec.EmployeeName, "-")
	return row.New(36).Add(
		col.New(4).Add(code.NewQr(rec.ID, props.Rect{Percent: 95, Center: true})),
		col.New(8).Add(
			text.New("Atendido por: "+attended, props.Text{Size: 8, Top: 4, Left: 3}),
			text.New("Conserve este comprobante. El código QR identifica el registro.", props.Text{
				Size: 7, Top: 12, Left: 3, Color: colorGray,
			}),
		),
	)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func shortID(id string) string {
	if len(id) > 8 {
		return strings.ToUpper(id[:8])
	}
	return strings.ToUpper(id)
}

// formatCredits separa miles con punto y decimales con coma; omite ",00".
// Ej: 25000 → "25.000", 7.5 → "7,50"
func formatCredits(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	intPart, frac, _ := strings.Cut(s, ".")
	out := formatMoney(intPart)
	if frac != "" && frac != "00" {
		out += "," + frac
	}
	if neg {
		out = "-" + out
	}
	return out
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
