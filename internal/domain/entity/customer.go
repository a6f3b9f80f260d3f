package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer representa um cliente do mercado que compra fiado.
// CurrentDebt é o único campo mutável depois do cadastro: sobe em cada venda
// e desce em cada pagamento, nunca abaixo de zero.
type Customer struct {
	ID          string
	UserID      string // dono da conta (comerciante)
	Name        string
	Phone       string
	BirthDate   *time.Time // opcional, usado no lembrete de aniversário
	CreditLimit decimal.Decimal
	CurrentDebt decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
