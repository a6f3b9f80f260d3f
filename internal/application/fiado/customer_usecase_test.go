package fiado_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MatheusFerreira-MDF/mercado-fiado-manager-main/internal/application/dto"
	"github.com/MatheusFerreira-MDF/mercado-fiado-manager-main/internal/application/fiado"
	"github.com/MatheusFerreira-MDF/mercado-fiado-manager-main/internal/domain"
)

func newCustomerUC() (*fiado.CustomerUseCase, *fakeCustomerRepo) {
	repo := newFakeCustomerRepo()
	return fiado.NewCustomerUseCase(repo), repo
}

func createRequest(limit int64) dto.CreateCustomerRequest {
	l := decimal.NewFromInt(limit)
	return dto.CreateCustomerRequest{
		Name:        "Maria",
		Phone:       "11 99999-0000",
		CreditLimit: &l,
	}
}

func TestCreateCustomer_ComecaComDividaZero(t *testing.T) {
	uc, _ := newCustomerUC()

	out, err := uc.Create(testUserID, createRequest(500))
	require.NoError(t, err)

	assert.NotEmpty(t, out.ID)
	assert.True(t, out.CurrentDebt.IsZero(), "cliente novo não deve nada")
	assert.True(t, out.CreditLimit.Equal(decimal.NewFromInt(500)))
	assert.True(t, out.UsagePercent.IsZero())
	assert.Equal(t, "regular", out.Status)
}

func TestCreateCustomer_ValidaEntrada(t *testing.T) {
	uc, _ := newCustomerUC()

	in := createRequest(500)
	in.Name = ""
	_, err := uc.Create(testUserID, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "nome é obrigatório")

	in = createRequest(500)
	in.Phone = ""
	_, err = uc.Create(testUserID, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "telefone é obrigatório")

	in = createRequest(500)
	in.CreditLimit = nil
	_, err = uc.Create(testUserID, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "limite é obrigatório")
}

// Limite zero deixaria o percentual de uso indefinido: o cadastro rejeita.
func TestCreateCustomer_LimiteZeroOuNegativoRejeitado(t *testing.T) {
	uc, _ := newCustomerUC()

	_, err := uc.Create(testUserID, createRequest(0))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(testUserID, createRequest(-100))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateCustomer_DataDeNascimento(t *testing.T) {
	uc, _ := newCustomerUC()

	in := createRequest(500)
	in.BirthDate = "1990-06-10"
	out, err := uc.Create(testUserID, in)
	require.NoError(t, err)
	assert.Equal(t, "1990-06-10", out.BirthDate)

	in = createRequest(500)
	in.BirthDate = "10/06/1990"
	_, err = uc.Create(testUserID, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "formato esperado é AAAA-MM-DD")
}

func TestGetCustomer_NaoEncontrado(t *testing.T) {
	uc, _ := newCustomerUC()

	_, err := uc.Get(testUserID, "nao-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetCustomer_EscopadoPorComerciante(t *testing.T) {
	uc, _ := newCustomerUC()

	out, err := uc.Create(testUserID, createRequest(500))
	require.NoError(t, err)

	_, err = uc.Get("outro-usuario", out.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound, "cliente de outro comerciante é invisível")
}
