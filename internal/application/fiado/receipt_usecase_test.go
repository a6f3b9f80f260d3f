package fiado_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MatheusFerreira-MDF/mercado-fiado-manager-main/internal/application/dto"
	"github.com/MatheusFerreira-MDF/mercado-fiado-manager-main/internal/application/fiado"
	"github.com/MatheusFerreira-MDF/mercado-fiado-manager-main/internal/domain"
	"github.com/MatheusFerreira-MDF/mercado-fiado-manager-main/internal/domain/entity"
)

// stubGenerator devolve bytes fixos; o conteúdo do PDF é assunto do pacote pdf.
type stubGenerator struct {
	received *dto.ReceiptDTO
}

func (s *stubGenerator) GenerateReceiptPDF(_ context.Context, receipt *dto.ReceiptDTO) ([]byte, error) {
	s.received = receipt
	return []byte("%PDF-fake"), nil
}

var testMarket = fiado.MarketInfo{Name: "MERCADO GONÇALVES", CNPJ: "00.000.000/0000-00"}

func newReceiptEnv(t *testing.T) (*fiado.ReceiptUseCase, *stubGenerator, *fakeSaleRepo, *fakeCustomerRepo) {
	t.Helper()
	customerRepo := newFakeCustomerRepo()
	saleRepo := newFakeSaleRepo()
	gen := &stubGenerator{}

	require.NoError(t, customerRepo.Create(&entity.Customer{
		ID:          "cliente-1",
		UserID:      testUserID,
		Name:        "Maria",
		CreditLimit: decimal.NewFromInt(1000),
		CurrentDebt: decimal.RequireFromString("180.50"),
	}))

	saleDate := time.Date(2025, 6, 10, 14, 30, 0, 0, time.UTC)
	sale := &entity.Sale{
		ID:         "venda-1",
		UserID:     testUserID,
		CustomerID: "cliente-1",
		TotalValue: decimal.RequireFromString("80.50"),
		Date:       saleDate,
		DueDate:    saleDate.AddDate(0, 0, 30),
	}
	require.NoError(t, saleRepo.Create(sale))
	require.NoError(t, saleRepo.CreateItem(&entity.SaleItem{
		ID: "i1", SaleID: "venda-1", Product: "Arroz 5kg", Value: decimal.RequireFromString("30.50"),
	}))
	require.NoError(t, saleRepo.CreateItem(&entity.SaleItem{
		ID: "i2", SaleID: "venda-1", Product: "Feijão 1kg", Value: decimal.NewFromInt(50),
	}))

	return fiado.NewReceiptUseCase(saleRepo, customerRepo, gen, testMarket), gen, saleRepo, customerRepo
}

func TestFormatBRL(t *testing.T) {
	assert.Equal(t, "R$ 1.234,56", fiado.FormatBRL(decimal.RequireFromString("1234.56")))
	assert.Equal(t, "R$ 0,00", fiado.FormatBRL(decimal.Zero))
	assert.Equal(t, "R$ 80,50", fiado.FormatBRL(decimal.RequireFromString("80.5")))
}

func TestBuildReceipt_CamposDoComprovante(t *testing.T) {
	uc, _, _, _ := newReceiptEnv(t)

	receipt, err := uc.BuildReceipt(testUserID, "venda-1")
	require.NoError(t, err)

	assert.Equal(t, "MERCADO GONÇALVES", receipt.MarketName)
	assert.Equal(t, "COMPROVANTE DE COMPRA FIADO", receipt.Title)
	assert.Equal(t, "10/06/2025 14:30", receipt.SaleDate)
	assert.Equal(t, "10/07/2025", receipt.DueDate)
	assert.Equal(t, "Maria", receipt.CustomerName)
	assert.Equal(t, "R$ 80,50", receipt.Total)

	require.Len(t, receipt.Lines, 2)
	assert.Equal(t, 1, receipt.Lines[0].Number)
	assert.Equal(t, "Arroz 5kg", receipt.Lines[0].Product)
	assert.Equal(t, "R$ 30,50", receipt.Lines[0].Value)
	assert.Equal(t, 2, receipt.Lines[1].Number)
}

// A dívida anterior exibida é o saldo antes desta compra: dívida atual menos o
// total da venda.
func TestBuildReceipt_DividaAnterior(t *testing.T) {
	uc, _, _, _ := newReceiptEnv(t)

	receipt, err := uc.BuildReceipt(testUserID, "venda-1")
	require.NoError(t, err)

	assert.Equal(t, "R$ 100,00", receipt.PreviousDebt, "180.50 - 80.50")
	assert.Equal(t, "R$ 180,50", receipt.TotalDebt)
	assert.Equal(t, "R$ 1.000,00", receipt.CreditLimit)
}

func TestBuildReceipt_VendaInexistente(t *testing.T) {
	uc, _, _, _ := newReceiptEnv(t)

	_, err := uc.BuildReceipt(testUserID, "nao-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDownloadReceiptPDF(t *testing.T) {
	uc, gen, _, _ := newReceiptEnv(t)

	pdfBytes, filename, err := uc.DownloadReceiptPDF(context.Background(), testUserID, "venda-1")
	require.NoError(t, err)

	assert.Equal(t, []byte("%PDF-fake"), pdfBytes)
	assert.Equal(t, "comprovante-venda-1.pdf", filename)
	require.NotNil(t, gen.received, "o gerador recebe o view-model completo")
	assert.Equal(t, "Maria", gen.received.CustomerName)
}
