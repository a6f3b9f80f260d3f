package ledger

import "time"

// CreditTermDays é o prazo fixo do fiado: 30 dias corridos, sem ajuste por
// dia útil ou tamanho do mês.
const CreditTermDays = 30

// ComputeDueDate retorna a data de vencimento de uma venda: data da venda
// mais 30 dias de calendário.
func ComputeDueDate(saleDate time.Time) time.Time {
	return saleDate.AddDate(0, 0, CreditTermDays)
}
