package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItem é uma linha da venda (produto e valor). Objeto de valor puro,
// sem ciclo de vida próprio fora da venda.
type SaleItem struct {
	ID      string
	SaleID  string
	Product string
	Value   decimal.Decimal
}

// Sale representa uma venda fiada. Imutável depois de criada, exceto o campo
// Signed, que vira true uma única vez quando o comprovante é assinado.
// TotalValue é sempre a soma dos itens (recalculado no caso de uso, nunca
// confiado do cliente HTTP).
type Sale struct {
	ID            string
	UserID        string
	CustomerID    string
	Items         []SaleItem
	TotalValue    decimal.Decimal
	Date          time.Time
	DueDate       time.Time // Date + prazo de 30 dias corridos
	Signed        bool
	PaymentMethod string // informativo; registrado na quitação, não na venda
	CreatedAt     time.Time
}
