package fiado

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MatheusFerreira-MDF/mercado-fiado-manager-main/internal/application/dto"
	"github.com/MatheusFerreira-MDF/mercado-fiado-manager-main/internal/domain"
	"github.com/MatheusFerreira-MDF/mercado-fiado-manager-main/internal/domain/entity"
	"github.com/MatheusFerreira-MDF/mercado-fiado-manager-main/internal/domain/ledger"
	"github.com/MatheusFerreira-MDF/mercado-fiado-manager-main/internal/domain/repository"
)

const birthDateLayout = "2006-01-02"

// CustomerUseCase casos de uso de cadastro e consulta de clientes.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase constrói o caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create cadastra um cliente com dívida zero. Nome e telefone são
// obrigatórios e o limite de crédito precisa ser positivo — limite zero
// deixaria o percentual de uso indefinido, então é rejeitado aqui.
func (uc *CustomerUseCase) Create(userID string, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Name == "" || in.Phone == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.CreditLimit == nil || !in.CreditLimit.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	var birthDate *time.Time
	if in.BirthDate != "" {
		d, err := time.Parse(birthDateLayout, in.BirthDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		birthDate = &d
	}
	now := time.Now()
	customer := &entity.Customer{
		ID:          uuid.New().String(),
		UserID:      userID,
		Name:        in.Name,
		Phone:       in.Phone,
		BirthDate:   birthDate,
		CreditLimit: *in.CreditLimit,
		CurrentDebt: decimal.Zero,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// Get retorna um cliente do comerciante.
func (uc *CustomerUseCase) Get(userID, id string) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(userID, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	return toCustomerResponse(customer), nil
}

// List retorna todos os clientes do comerciante.
func (uc *CustomerUseCase) List(userID string) ([]*dto.CustomerResponse, error) {
	list, err := uc.repo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCustomerResponse(c))
	}
	return out, nil
}

// toCustomerResponse projeta a entidade com o status de crédito derivado.
func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	birthDate := ""
	if c.BirthDate != nil {
		birthDate = c.BirthDate.Format(birthDateLayout)
	}
	return &dto.CustomerResponse{
		ID:           c.ID,
		Name:         c.Name,
		Phone:        c.Phone,
		BirthDate:    birthDate,
		CreditLimit:  c.CreditLimit,
		CurrentDebt:  c.CurrentDebt,
		UsagePercent: ledger.UsagePercent(c).Round(2),
		Status:       ledger.Status(c),
		CreatedAt:    c.CreatedAt.Format(time.RFC3339),
	}
}
