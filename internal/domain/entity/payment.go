package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Formas de pagamento aceitas na quitação de dívida.
const (
	PaymentDinheiro = "dinheiro"
	PaymentPix      = "pix"
	PaymentCartao   = "cartao"
	PaymentCheque   = "cheque"
)

// ValidPaymentMethod informa se o método está entre os aceitos.
func ValidPaymentMethod(method string) bool {
	switch method {
	case PaymentDinheiro, PaymentPix, PaymentCartao, PaymentCheque:
		return true
	}
	return false
}

// Payment é um abatimento na dívida agregada do cliente. Não referencia uma
// venda específica: o pagamento abate o saldo total, sem alocação FIFO/LIFO.
type Payment struct {
	ID            string
	UserID        string
	CustomerID    string
	Amount        decimal.Decimal
	PaymentMethod string
	CreatedAt     time.Time
}
