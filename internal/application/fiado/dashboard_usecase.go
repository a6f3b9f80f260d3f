package fiado

import (
	"time"

	"github.com/MatheusFerreira-MDF/mercado-fiado-manager-main/internal/application/dto"
	"github.com/MatheusFerreira-MDF/mercado-fiado-manager-main/internal/domain/entity"
	"github.com/MatheusFerreira-MDF/mercado-fiado-manager-main/internal/domain/ledger"
	"github.com/MatheusFerreira-MDF/mercado-fiado-manager-main/internal/domain/repository"
)

const dashboardTopDebtors = 5 // devedores exibidos no widget do painel

// DashboardUseCase monta o resumo do caderno para o painel: contagens por
// status, total em fiado, vendas de hoje, maiores devedores, alertas e
// aniversariantes. Só leitura; toda a derivação vem do pacote ledger.
type DashboardUseCase struct {
	customerRepo repository.CustomerRepository
	saleRepo     repository.SaleRepository
}

// NewDashboardUseCase constrói o caso de uso.
func NewDashboardUseCase(customerRepo repository.CustomerRepository, saleRepo repository.SaleRepository) *DashboardUseCase {
	return &DashboardUseCase{customerRepo: customerRepo, saleRepo: saleRepo}
}

// GetSummary monta o DashboardSummaryDTO do comerciante.
func (uc *DashboardUseCase) GetSummary(userID string) (*dto.DashboardSummaryDTO, error) {
	customers, err := uc.customerRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	sales, err := uc.saleRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	todaySales := ledger.TodaysSales(sales, now)

	topDebtors := make([]dto.TopDebtorDTO, 0, dashboardTopDebtors)
	for _, c := range ledger.TopDebtors(customers, dashboardTopDebtors) {
		topDebtors = append(topDebtors, dto.TopDebtorDTO{
			ID:          c.ID,
			Name:        c.Name,
			CurrentDebt: c.CurrentDebt,
			OverLimit:   ledger.IsOverLimit(c),
		})
	}

	return &dto.DashboardSummaryDTO{
		TotalCustomers: len(customers),
		OverLimit:      len(ledger.OverLimitCustomers(customers)),
		NearLimit:      len(ledger.NearLimitCustomers(customers)),
		Regular:        len(ledger.RegularCustomers(customers)),
		TotalDebt:      ledger.TotalDebt(customers).Round(2),
		TodaySales:     len(todaySales),
		TodayTotal:     ledger.TodaysTotal(sales, now).Round(2),
		TopDebtors:     topDebtors,
	}, nil
}

// GetAlerts monta os painéis de limite estourado e próximo do limite.
func (uc *DashboardUseCase) GetAlerts(userID string) (*dto.AlertsDTO, error) {
	customers, err := uc.customerRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	out := &dto.AlertsDTO{
		OverLimit: make([]dto.AlertDTO, 0),
		NearLimit: make([]dto.AlertDTO, 0),
	}
	for _, c := range ledger.OverLimitCustomers(customers) {
		out.OverLimit = append(out.OverLimit, toAlertDTO(c))
	}
	for _, c := range ledger.NearLimitCustomers(customers) {
		out.NearLimit = append(out.NearLimit, toAlertDTO(c))
	}
	return out, nil
}

// GetBirthdays lista os clientes que fazem aniversário hoje.
func (uc *DashboardUseCase) GetBirthdays(userID string) ([]dto.BirthdayDTO, error) {
	customers, err := uc.customerRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BirthdayDTO, 0)
	for _, c := range ledger.BirthdaysToday(customers, time.Now()) {
		out = append(out, dto.BirthdayDTO{
			ID:        c.ID,
			Name:      c.Name,
			BirthDate: c.BirthDate.Format(birthDateLayout),
		})
	}
	return out, nil
}

func toAlertDTO(c *entity.Customer) dto.AlertDTO {
	return dto.AlertDTO{
		ID:           c.ID,
		Name:         c.Name,
		CurrentDebt:  c.CurrentDebt,
		CreditLimit:  c.CreditLimit,
		UsagePercent: ledger.UsagePercent(c).Round(0),
	}
}
