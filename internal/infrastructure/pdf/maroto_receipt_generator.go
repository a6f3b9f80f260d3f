// Package pdf implementa a geração do comprovante imprimível de compra fiado.
//
// Layout da página A5:
//
//	┌───────────────────────────────────────────────┐
//	│  HEADER: Mercado + CNPJ                       │
//	│  TÍTULO: COMPROVANTE DE COMPRA FIADO          │
//	│  Data da compra | Vencimento | Cliente        │
//	│  ───────────────────────────────────────────  │
//	│  TABELA: N° | Produto | Valor                 │
//	│  ───────────────────────────────────────────  │
//	│  TOTAL | Dívida anterior | Dívida total       │
//	│  ASSINATURA: ______________________           │
//	│  LEGENDA: comprovante de dívida               │
//	└───────────────────────────────────────────────┘
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

	"github.com/MatheusFerreira-MDF/mercado-fiado-manager-main/internal/application/dto"
	"github.com/MatheusFerreira-MDF/mercado-fiado-manager-main/internal/application/fiado"
)

// ── Paleta de cores ──────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 22, Green: 101, Blue: 52}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorDanger  = &props.Color{Red: 180, Green: 30, Blue: 30}
)

// ── Generator ────────────────────────────────────────────────────────────────

var _ fiado.ReceiptPDFGenerator = (*MarotoReceiptGenerator)(nil)

// MarotoReceiptGenerator implementa fiado.ReceiptPDFGenerator usando Maroto v2.
type MarotoReceiptGenerator struct{}

// NewMarotoReceiptGenerator constrói o gerador.
func NewMarotoReceiptGenerator() *MarotoReceiptGenerator { return &MarotoReceiptGenerator{} }

// GenerateReceiptPDF gera o PDF do comprovante e devolve seus bytes.
func (g *MarotoReceiptGenerator) GenerateReceiptPDF(_ context.Context, receipt *dto.ReceiptDTO) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "courier", Size: 9}).
		WithTitle(receipt.Title, true).
		WithAuthor(receipt.MarketName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(receipt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(infoRow(receipt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))

	// Tabela de produtos
	m.AddRows(tableHeaderRow())
	for _, r := range tableLineRows(receipt.Lines) {
		m.AddRows(r)
	}

	// Totais e saldo
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(totalsRows(receipt)...)

	// Assinatura + legenda
	m.AddRows(signatureRows(receipt)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Seções ───────────────────────────────────────────────────────────────────

// headerRow: nome do mercado + CNPJ + título do comprovante.
func headerRow(receipt *dto.ReceiptDTO) core.Row {
	return row.New(22).Add(
		col.New(12).Add(
			text.New(receipt.MarketName, props.Text{
				Style: fontstyle.Bold, Size: 13, Align: align.Center,
				Color: colorPrimary, Top: 1,
			}),
			text.New("CNPJ: "+receipt.CNPJ, props.Text{
				Size: 8, Align: align.Center, Top: 8, Color: colorGray,
			}),
			text.New(receipt.Title, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Center, Top: 14,
			}),
		),
	)
}

// infoRow: data da compra, vencimento e cliente.
func infoRow(receipt *dto.ReceiptDTO) core.Row {
	return row.New(16).Add(
		col.New(12).Add(
			text.New("Data da compra: "+receipt.SaleDate, props.Text{Size: 8, Top: 1}),
			text.New("Vencimento: "+receipt.DueDate, props.Text{Size: 8, Top: 6}),
			text.New("Cliente: "+receipt.CustomerName, props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 11,
			}),
		),
	)
}

// tableHeaderRow: cabeçalho da tabela de produtos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 2,
		}))
	}
	return row.New(7).Add(
		h("N°", 1, align.Center),
		h("Produto", 8, align.Left),
		h("Valor", 3, align.Right),
	)
}

// tableLineRows: uma linha por produto, numerada.
func tableLineRows(lines []dto.ReceiptLineDTO) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		result = append(result, row.New(6).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d.", l.Number),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(8).Add(text.New(
				l.Product,
				props.Text{Size: 8, Align: align.Left, Top: 1},
			)),
			col.New(3).Add(text.New(
				l.Value,
				props.Text{Size: 8, Align: align.Right, Top: 1},
			)),
		))
	}
	return result
}

// totalsRows: total da compra, dívida anterior, dívida total e limite.
func totalsRows(receipt *dto.ReceiptDTO) []core.Row {
	pair := func(label, value string, valueColor *props.Color, bold bool) core.Row {
		style := fontstyle.Normal
		if bold {
			style = fontstyle.Bold
		}
		return row.New(6).Add(
			col.New(7).Add(text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Left, Top: 1,
			})),
			col.New(5).Add(text.New(value, props.Text{
				Style: style, Size: 9, Align: align.Right, Top: 1, Color: valueColor,
			})),
		)
	}
	return []core.Row{
		pair("TOTAL DESTA COMPRA:", receipt.Total, colorPrimary, true),
		pair("Dívida anterior:", receipt.PreviousDebt, colorGray, false),
		pair("DÍVIDA TOTAL:", receipt.TotalDebt, colorDanger, true),
		pair("Limite de crédito:", receipt.CreditLimit, colorGray, false),
	}
}

// signatureRows: linha de assinatura do cliente + legenda de dívida.
func signatureRows(receipt *dto.ReceiptDTO) []core.Row {
	signedNote := "Assinatura do cliente"
	if receipt.Signed {
		signedNote = "Assinatura do cliente (assinado)"
	}
	return []core.Row{
		row.New(14),
		row.New(1).Add(line.NewCol(12, props.Line{Color: colorGray, Thickness: 0.3})),
		row.New(10).Add(
			col.New(12).Add(
				text.New(receipt.SignatureName, props.Text{
					Size: 9, Align: align.Center, Top: 1,
				}),
				text.New(signedNote, props.Text{
					Size: 7, Align: align.Center, Top: 6, Color: colorGray,
				}),
			),
		),
		row.New(8).Add(col.New(12).Add(
			text.New(receipt.FooterLegend, props.Text{
				Size: 7, Align: align.Center, Top: 3, Color: colorGray,
			}),
		)),
	}
}
