package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/MatheusFerreira-MDF/mercado-fiado-manager-main/internal/domain/entity"
)

// CustomerRepository define a porta de persistência para Customer.
// Todas as consultas são escopadas pelo userID do comerciante.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(userID, id string) (*entity.Customer, error)
	ListByUser(userID string) ([]*entity.Customer, error)
	// UpdateDebt grava o novo saldo devedor do cliente (único campo mutável).
	UpdateDebt(userID, id string, newDebt decimal.Decimal, updatedAt time.Time) error
}
