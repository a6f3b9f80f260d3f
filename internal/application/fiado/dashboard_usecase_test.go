package fiado_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MatheusFerreira-MDF/mercado-fiado-manager-main/internal/application/fiado"
	"github.com/MatheusFerreira-MDF/mercado-fiado-manager-main/internal/domain/entity"
)

func seedCustomer(t *testing.T, repo *fakeCustomerRepo, id string, limit, debt int64) {
	t.Helper()
	require.NoError(t, repo.Create(&entity.Customer{
		ID:          id,
		UserID:      testUserID,
		Name:        "Cliente " + id,
		CreditLimit: decimal.NewFromInt(limit),
		CurrentDebt: decimal.NewFromInt(debt),
	}))
}

func TestGetSummary(t *testing.T) {
	customerRepo := newFakeCustomerRepo()
	saleRepo := newFakeSaleRepo()
	uc := fiado.NewDashboardUseCase(customerRepo, saleRepo)

	seedCustomer(t, customerRepo, "a", 100, 150) // over_limit
	seedCustomer(t, customerRepo, "b", 100, 90)  // near_limit
	seedCustomer(t, customerRepo, "c", 100, 10)  // regular
	seedCustomer(t, customerRepo, "d", 100, 0)   // regular

	now := time.Now()
	require.NoError(t, saleRepo.Create(&entity.Sale{
		ID: "v1", UserID: testUserID, CustomerID: "a",
		TotalValue: decimal.NewFromInt(40), Date: now,
	}))
	require.NoError(t, saleRepo.Create(&entity.Sale{
		ID: "v2", UserID: testUserID, CustomerID: "b",
		TotalValue: decimal.NewFromInt(60), Date: now.AddDate(0, 0, -1), // ontem
	}))

	out, err := uc.GetSummary(testUserID)
	require.NoError(t, err)

	assert.Equal(t, 4, out.TotalCustomers)
	assert.Equal(t, 1, out.OverLimit)
	assert.Equal(t, 1, out.NearLimit)
	assert.Equal(t, 2, out.Regular)
	assert.True(t, out.TotalDebt.Equal(decimal.NewFromInt(250)))
	assert.Equal(t, 1, out.TodaySales, "só a venda de hoje conta")
	assert.True(t, out.TodayTotal.Equal(decimal.NewFromInt(40)))

	require.Len(t, out.TopDebtors, 3, "só clientes com dívida entram no ranking")
	assert.Equal(t, "a", out.TopDebtors[0].ID)
	assert.True(t, out.TopDebtors[0].OverLimit)
	assert.Equal(t, "b", out.TopDebtors[1].ID)
	assert.Equal(t, "c", out.TopDebtors[2].ID)
}

func TestGetAlerts(t *testing.T) {
	customerRepo := newFakeCustomerRepo()
	uc := fiado.NewDashboardUseCase(customerRepo, newFakeSaleRepo())

	seedCustomer(t, customerRepo, "over", 100, 150)
	seedCustomer(t, customerRepo, "near", 100, 85)
	seedCustomer(t, customerRepo, "ok", 100, 10)

	out, err := uc.GetAlerts(testUserID)
	require.NoError(t, err)

	require.Len(t, out.OverLimit, 1)
	assert.Equal(t, "over", out.OverLimit[0].ID)
	assert.True(t, out.OverLimit[0].UsagePercent.Equal(decimal.NewFromInt(150)))

	require.Len(t, out.NearLimit, 1)
	assert.Equal(t, "near", out.NearLimit[0].ID)
	assert.True(t, out.NearLimit[0].UsagePercent.Equal(decimal.NewFromInt(85)))
}

func TestGetBirthdays(t *testing.T) {
	customerRepo := newFakeCustomerRepo()
	uc := fiado.NewDashboardUseCase(customerRepo, newFakeSaleRepo())

	now := time.Now()
	bd := time.Date(1990, now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	other := bd.AddDate(0, 0, 1)

	seedCustomer(t, customerRepo, "hoje", 100, 0)
	customerRepo.customers["hoje"].BirthDate = &bd
	seedCustomer(t, customerRepo, "amanha", 100, 0)
	customerRepo.customers["amanha"].BirthDate = &other
	seedCustomer(t, customerRepo, "sem-data", 100, 0)

	out, err := uc.GetBirthdays(testUserID)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "hoje", out[0].ID)
	assert.Equal(t, "1990-"+bd.Format("01-02"), out[0].BirthDate)
}
