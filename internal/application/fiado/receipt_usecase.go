package fiado

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/MatheusFerreira-MDF/mercado-fiado-manager-main/internal/application/dto"
	"github.com/MatheusFerreira-MDF/mercado-fiado-manager-main/internal/domain"
	"github.com/MatheusFerreira-MDF/mercado-fiado-manager-main/internal/domain/repository"
)

const (
	receiptTitle  = "COMPROVANTE DE COMPRA FIADO"
	receiptLegend = "Este documento é um comprovante de dívida"

	saleDateLayout = "02/01/2006 15:04"
	dueDateLayout  = "02/01/2006"
)

// MarketInfo identifica o mercado no cabeçalho do comprovante.
type MarketInfo struct {
	Name string
	CNPJ string
}

// ReceiptUseCase projeta uma venda no view-model do comprovante imprimível
// e gera o PDF correspondente. Projeção pura: nada é gravado aqui.
type ReceiptUseCase struct {
	saleRepo     repository.SaleRepository
	customerRepo repository.CustomerRepository
	generator    ReceiptPDFGenerator
	market       MarketInfo
}

// NewReceiptUseCase constrói o caso de uso.
func NewReceiptUseCase(
	saleRepo repository.SaleRepository,
	customerRepo repository.CustomerRepository,
	generator ReceiptPDFGenerator,
	market MarketInfo,
) *ReceiptUseCase {
	return &ReceiptUseCase{
		saleRepo:     saleRepo,
		customerRepo: customerRepo,
		generator:    generator,
		market:       market,
	}
}

// ptBR formata valores monetários no padrão brasileiro: "R$ 1.234,56".
var ptBR = message.NewPrinter(language.BrazilianPortuguese)

// FormatBRL formata um decimal como moeda pt-BR com duas casas.
func FormatBRL(v decimal.Decimal) string {
	f, _ := v.Round(2).Float64()
	return ptBR.Sprintf("R$ %v", number.Decimal(f,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// BuildReceipt monta o view-model do comprovante de uma venda.
// A dívida anterior é a dívida atual do cliente menos o total desta venda,
// ou seja, o saldo antes da compra.
func (uc *ReceiptUseCase) BuildReceipt(userID, saleID string) (*dto.ReceiptDTO, error) {
	sale, err := uc.saleRepo.GetByID(userID, saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	customer, err := uc.customerRepo.GetByID(userID, sale.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}

	previousDebt := customer.CurrentDebt.Sub(sale.TotalValue)

	lines := make([]dto.ReceiptLineDTO, 0, len(sale.Items))
	for i, item := range sale.Items {
		lines = append(lines, dto.ReceiptLineDTO{
			Number:  i + 1,
			Product: item.Product,
			Value:   FormatBRL(item.Value),
		})
	}

	return &dto.ReceiptDTO{
		MarketName:    uc.market.Name,
		CNPJ:          uc.market.CNPJ,
		Title:         receiptTitle,
		SaleDate:      sale.Date.Format(saleDateLayout),
		DueDate:       sale.DueDate.Format(dueDateLayout),
		CustomerName:  customer.Name,
		Lines:         lines,
		Total:         FormatBRL(sale.TotalValue),
		PreviousDebt:  FormatBRL(previousDebt),
		TotalDebt:     FormatBRL(customer.CurrentDebt),
		CreditLimit:   FormatBRL(customer.CreditLimit),
		SignatureName: customer.Name,
		FooterLegend:  receiptLegend,
		Signed:        sale.Signed,
	}, nil
}

// DownloadReceiptPDF gera o PDF do comprovante e um nome de arquivo.
func (uc *ReceiptUseCase) DownloadReceiptPDF(ctx context.Context, userID, saleID string) ([]byte, string, error) {
	receipt, err := uc.BuildReceipt(userID, saleID)
	if err != nil {
		return nil, "", err
	}
	pdfBytes, err := uc.generator.GenerateReceiptPDF(ctx, receipt)
	if err != nil {
		return nil, "", fmt.Errorf("gerar PDF do comprovante: %w", err)
	}
	return pdfBytes, fmt.Sprintf("comprovante-%s.pdf", saleID), nil
}
