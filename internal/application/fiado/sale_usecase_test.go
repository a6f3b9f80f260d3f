package fiado_test

import (
	"context"
	"errors"
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

const testUserID = "00000000-0000-0000-0000-000000000001"

type saleEnv struct {
	uc           *fiado.SaleUseCase
	customerRepo *fakeCustomerRepo
	saleRepo     *fakeSaleRepo
	paymentRepo  *fakePaymentRepo
}

func newSaleEnv(t *testing.T, limit, debt int64) *saleEnv {
	t.Helper()
	customerRepo := newFakeCustomerRepo()
	saleRepo := newFakeSaleRepo()
	paymentRepo := &fakePaymentRepo{}
	tx := &fakeTxRunner{customerRepo: customerRepo, saleRepo: saleRepo, paymentRepo: paymentRepo}

	customer := &entity.Customer{
		ID:          "cliente-1",
		UserID:      testUserID,
		Name:        "Maria",
		Phone:       "11 99999-0000",
		CreditLimit: decimal.NewFromInt(limit),
		CurrentDebt: decimal.NewFromInt(debt),
	}
	require.NoError(t, customerRepo.Create(customer))

	return &saleEnv{
		uc:           fiado.NewSaleUseCase(tx, customerRepo, saleRepo),
		customerRepo: customerRepo,
		saleRepo:     saleRepo,
		paymentRepo:  paymentRepo,
	}
}

func saleRequest(values ...int64) dto.CreateSaleRequest {
	in := dto.CreateSaleRequest{CustomerID: "cliente-1"}
	for _, v := range values {
		in.Items = append(in.Items, dto.SaleItemRequest{
			Product: "produto",
			Value:   decimal.NewFromInt(v),
		})
	}
	return in
}

// O total da venda é sempre recalculado a partir dos itens; qualquer total
// vindo do cliente é ignorado.
func TestAddSale_TotalVemDaSomaDosItens(t *testing.T) {
	env := newSaleEnv(t, 1000, 0)

	out, err := env.uc.AddSale(context.Background(), testUserID, saleRequest(30, 50))
	require.NoError(t, err)

	assert.True(t, out.Sale.TotalValue.Equal(decimal.NewFromInt(80)),
		"total deve ser 30+50")
	assert.True(t, out.Customer.CurrentDebt.Equal(decimal.NewFromInt(80)),
		"dívida do cliente sobe pelo total")
	assert.False(t, out.IsOverLimit, "80 de 1000 não estoura")
	assert.Equal(t, "regular", out.Customer.Status)
	assert.Len(t, out.Sale.Items, 2)
}

func TestAddSale_VencimentoEmTrintaDias(t *testing.T) {
	env := newSaleEnv(t, 1000, 0)

	before := time.Now()
	out, err := env.uc.AddSale(context.Background(), testUserID, saleRequest(10))
	require.NoError(t, err)

	date, err := time.Parse(time.RFC3339, out.Sale.Date)
	require.NoError(t, err)
	due, err := time.Parse(time.RFC3339, out.Sale.DueDate)
	require.NoError(t, err)

	assert.WithinDuration(t, before, date, 5*time.Second)
	assert.Equal(t, date.AddDate(0, 0, 30), due, "vencimento é a data da venda + 30 dias")
}

// Estourar o limite nunca bloqueia a venda: limite 100, dívida 90, compra de
// 50 resulta em dívida 140 e apenas o aviso is_over_limit.
func TestAddSale_EstouroDeLimiteNaoBloqueia(t *testing.T) {
	env := newSaleEnv(t, 100, 90)

	out, err := env.uc.AddSale(context.Background(), testUserID, saleRequest(50))
	require.NoError(t, err, "a venda deve ser registrada mesmo estourando o limite")

	assert.True(t, out.IsOverLimit)
	assert.True(t, out.Customer.CurrentDebt.Equal(decimal.NewFromInt(140)))
	assert.Equal(t, "over_limit", out.Customer.Status)

	stored, err := env.customerRepo.GetByID(testUserID, "cliente-1")
	require.NoError(t, err)
	assert.True(t, stored.CurrentDebt.Equal(decimal.NewFromInt(140)), "o novo saldo foi persistido")
}

// Dívida exatamente igual ao limite não dispara o aviso.
func TestAddSale_DividaIgualAoLimiteNaoAvisa(t *testing.T) {
	env := newSaleEnv(t, 100, 60)

	out, err := env.uc.AddSale(context.Background(), testUserID, saleRequest(40))
	require.NoError(t, err)
	assert.False(t, out.IsOverLimit, "dívida == limite não é estouro")
}

func TestAddSale_ValidaEntrada(t *testing.T) {
	env := newSaleEnv(t, 1000, 0)
	ctx := context.Background()

	_, err := env.uc.AddSale(ctx, testUserID, dto.CreateSaleRequest{CustomerID: "cliente-1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "venda sem itens é inválida")

	in := saleRequest(10)
	in.Items[0].Value = decimal.Zero
	_, err = env.uc.AddSale(ctx, testUserID, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "item com valor zero é inválido")

	in = saleRequest(10)
	in.Items[0].Product = ""
	_, err = env.uc.AddSale(ctx, testUserID, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "item sem produto é inválido")

	in = saleRequest(10)
	in.CustomerID = "nao-existe"
	_, err = env.uc.AddSale(ctx, testUserID, in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAddSale_ClienteDeOutroComerciante(t *testing.T) {
	env := newSaleEnv(t, 1000, 0)

	_, err := env.uc.AddSale(context.Background(), "outro-usuario", saleRequest(10))
	assert.ErrorIs(t, err, domain.ErrNotFound, "clientes são escopados por comerciante")
}

// Falha ao gravar um item aborta a operação inteira: o erro propaga e o saldo
// do cliente não é atualizado (UpdateDebt roda por último, na mesma transação).
func TestAddSale_FalhaNoItemPropagaErro(t *testing.T) {
	env := newSaleEnv(t, 1000, 0)
	env.saleRepo.createItemErr = errors.New("disco cheio")

	out, err := env.uc.AddSale(context.Background(), testUserID, saleRequest(10, 20))
	require.Error(t, err)
	assert.Nil(t, out)

	stored, err := env.customerRepo.GetByID(testUserID, "cliente-1")
	require.NoError(t, err)
	assert.True(t, stored.CurrentDebt.IsZero(), "dívida intacta quando a transação falha")
}

func TestMarkSigned_Idempotente(t *testing.T) {
	env := newSaleEnv(t, 1000, 0)

	out, err := env.uc.AddSale(context.Background(), testUserID, saleRequest(10))
	require.NoError(t, err)
	saleID := out.Sale.ID

	require.NoError(t, env.uc.MarkSigned(testUserID, saleID))
	require.NoError(t, env.uc.MarkSigned(testUserID, saleID), "assinar de novo é no-op")

	sale, err := env.saleRepo.GetByID(testUserID, saleID)
	require.NoError(t, err)
	assert.True(t, sale.Signed)
}

func TestMarkSigned_VendaInexistente(t *testing.T) {
	env := newSaleEnv(t, 1000, 0)
	err := env.uc.MarkSigned(testUserID, "nao-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestList_MaisRecentePrimeiro(t *testing.T) {
	env := newSaleEnv(t, 1000, 0)
	ctx := context.Background()

	first, err := env.uc.AddSale(ctx, testUserID, saleRequest(10))
	require.NoError(t, err)
	second, err := env.uc.AddSale(ctx, testUserID, saleRequest(20))
	require.NoError(t, err)

	list, err := env.uc.List(testUserID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.Sale.ID, list[0].ID)
	assert.Equal(t, first.Sale.ID, list[1].ID)
}

func TestListByCustomer_ClienteInexistente(t *testing.T) {
	env := newSaleEnv(t, 1000, 0)
	_, err := env.uc.ListByCustomer(testUserID, "nao-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
