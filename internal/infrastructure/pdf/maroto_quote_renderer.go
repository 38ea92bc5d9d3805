// Package pdf gera a representação em PDF de orçamentos com Maroto v2.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nome do ateliê  │  Código ORC + Data               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nome                                               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: Qtd | Descrição | Preço Unit. | Subtotal            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL + validade + observações                              │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strings"

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

	"github.com/atelieplus/atelie-api/internal/application/orders"
	"github.com/atelieplus/atelie-api/internal/domain/entity"
)

var _ orders.QuotePDFRenderer = (*MarotoQuoteRenderer)(nil)

var (
	colorPrimary = &props.Color{Red: 122, Green: 62, Blue: 128}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoQuoteRenderer implementa orders.QuotePDFRenderer usando Maroto v2.
type MarotoQuoteRenderer struct{}

// NewMarotoQuoteRenderer constrói o renderizador.
func NewMarotoQuoteRenderer() *MarotoQuoteRenderer { return &MarotoQuoteRenderer{} }

// RenderQuote gera o PDF do orçamento e devolve seus bytes.
func (g *MarotoQuoteRenderer) RenderQuote(quote *entity.Quote, customerName, empresaName string) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Orçamento "+quote.Code, true).
		WithAuthor(empresaName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(quote, empresaName))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(customerName))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(quote.Items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(quote))
	for _, r := range footerRows(quote) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nome do ateliê (esq) e código + data (dir).
func headerRow(quote *entity.Quote, empresaName string) core.Row {
	data := quote.CreatedAt.Format("02/01/2006")
	return row.New(18).Add(
		col.New(7).Add(
			text.New(empresaName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("ORÇAMENTO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(quote.Code, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Data: "+data, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

func customerRow(customerName string) core.Row {
	if customerName == "" {
		customerName = "—"
	}
	return row.New(12).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(customerName, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Qtd.", 1, align.Center),
		h("Descrição", 6, align.Left),
		h("Preço Unit.", 2, align.Right),
		h("Subtotal", 3, align.Right),
	)
}

func tableItemRows(items []entity.QuoteItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				it.Quantity.StringFixed(0),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(6).Add(text.New(
				it.Description,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				"R$ "+formatMoney(it.UnitPrice.StringFixed(2)),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				"R$ "+formatMoney(it.Subtotal.StringFixed(2)),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

func totalRow(quote *entity.Quote) core.Row {
	return row.New(12).Add(
		col.New(6),
		col.New(3).Add(text.New("TOTAL:", props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right,
			Color: colorPrimary, Top: 2, Right: 2,
		})),
		col.New(3).Add(text.New("R$ "+formatMoney(quote.Total.StringFixed(2)), props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right,
			Color: colorPrimary, Top: 2, Right: 1,
		})),
	)
}

// footerRows: validade e observações, quando presentes.
func footerRows(quote *entity.Quote) []core.Row {
	var rows []core.Row
	if quote.ValidUntil != nil {
		rows = append(rows, row.New(6).Add(col.New(12).Add(
			text.New("Válido até "+quote.ValidUntil.Format("02/01/2006"), props.Text{
				Size: 8, Color: colorGray, Top: 2,
			}),
		)))
	}
	if notes := strings.TrimSpace(quote.Notes); notes != "" {
		rows = append(rows, row.New(10).Add(col.New(12).Add(
			text.New("Observações: "+notes, props.Text{
				Size: 8, Color: colorGray, Top: 2,
			}),
		)))
	}
	rows = append(rows, row.New(8).Add(col.New(12).Add(
		text.New("Este orçamento não vale como comprovante fiscal.", props.Text{
			Size: 6.5, Color: colorGray, Top: 3,
		}),
	)))
	return rows
}

// formatMoney converte "1234.50" para o formato brasileiro "1.234,50".
func formatMoney(s string) string {
	intPart, decPart, found := strings.Cut(s, ".")
	n := len(intPart)
	buf := make([]byte, 0, n+n/3+4)
	for i := 0; i < n; i++ {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, intPart[i])
	}
	if found {
		buf = append(buf, ',')
		buf = append(buf, decPart...)
	}
	return string(buf)
}
