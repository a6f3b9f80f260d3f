// Package ledger contém as regras puras do caderno de fiado: derivação de
// status do cliente, totais, filtros de alerta e a política de vencimento.
// Nenhuma função aqui tem efeito colateral; tudo é recalculado a partir do
// snapshot mais recente (as coleções são pequenas o bastante para isso).
package ledger

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MatheusFerreira-MDF/mercado-fiado-manager-main/internal/domain/entity"
)

// Status de crédito do cliente.
const (
	StatusOverLimit = "over_limit"  // dívida acima do limite
	StatusNearLimit = "near_limit"  // uso entre 80% e 100% do limite
	StatusRegular   = "regular"     // uso abaixo de 80%
)

// Limiar de alerta "próximo do limite": 80% de uso.
var nearLimitThreshold = decimal.NewFromInt(80)

var hundred = decimal.NewFromInt(100)

// UsagePercent retorna 100 * dívida / limite. O cadastro rejeita limite <= 0,
// mas uma linha corrompida não pode derrubar um caminho de leitura: nesse
// caso retorna zero em vez de dividir por zero.
func UsagePercent(c *entity.Customer) decimal.Decimal {
	if !c.CreditLimit.GreaterThan(decimal.Zero) {
		return decimal.Zero
	}
	return c.CurrentDebt.Mul(hundred).Div(c.CreditLimit)
}

// IsOverLimit informa se a dívida ultrapassou o limite. Dívida igual ao
// limite ainda NÃO é estouro (100% de uso é "próximo do limite").
func IsOverLimit(c *entity.Customer) bool {
	return c.CurrentDebt.GreaterThan(c.CreditLimit)
}

// Status deriva o status de crédito do cliente.
func Status(c *entity.Customer) string {
	if IsOverLimit(c) {
		return StatusOverLimit
	}
	if UsagePercent(c).GreaterThanOrEqual(nearLimitThreshold) {
		return StatusNearLimit
	}
	return StatusRegular
}

// OverLimitCustomers filtra os clientes com limite estourado.
func OverLimitCustomers(customers []*entity.Customer) []*entity.Customer {
	var out []*entity.Customer
	for _, c := range customers {
		if IsOverLimit(c) {
			out = append(out, c)
		}
	}
	return out
}

// NearLimitCustomers filtra os clientes com uso entre 80% e 100% inclusive.
func NearLimitCustomers(customers []*entity.Customer) []*entity.Customer {
	var out []*entity.Customer
	for _, c := range customers {
		if Status(c) == StatusNearLimit {
			out = append(out, c)
		}
	}
	return out
}

// RegularCustomers filtra os clientes com uso abaixo de 80%.
func RegularCustomers(customers []*entity.Customer) []*entity.Customer {
	var out []*entity.Customer
	for _, c := range customers {
		if Status(c) == StatusRegular {
			out = append(out, c)
		}
	}
	return out
}

// TotalDebt soma a dívida atual de todos os clientes.
func TotalDebt(customers []*entity.Customer) decimal.Decimal {
	total := decimal.Zero
	for _, c := range customers {
		total = total.Add(c.CurrentDebt)
	}
	return total
}

// TopDebtors retorna até n clientes com dívida > 0, ordenados da maior para
// a menor dívida. A ordenação é estável para desempatar pela ordem de entrada.
func TopDebtors(customers []*entity.Customer, n int) []*entity.Customer {
	var withDebt []*entity.Customer
	for _, c := range customers {
		if c.CurrentDebt.GreaterThan(decimal.Zero) {
			withDebt = append(withDebt, c)
		}
	}
	sort.SliceStable(withDebt, func(i, j int) bool {
		return withDebt[i].CurrentDebt.GreaterThan(withDebt[j].CurrentDebt)
	})
	if n > 0 && len(withDebt) > n {
		withDebt = withDebt[:n]
	}
	return withDebt
}

// SameCalendarDay compara dia de calendário local, não uma janela de 24h.
func SameCalendarDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// TodaysSales filtra as vendas cuja data cai no mesmo dia de calendário de now.
func TodaysSales(sales []*entity.Sale, now time.Time) []*entity.Sale {
	var out []*entity.Sale
	for _, s := range sales {
		if SameCalendarDay(s.Date, now) {
			out = append(out, s)
		}
	}
	return out
}

// TodaysTotal soma o valor das vendas de hoje.
func TodaysTotal(sales []*entity.Sale, now time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, s := range TodaysSales(sales, now) {
		total = total.Add(s.TotalValue)
	}
	return total
}

// IsOverdue informa se a venda está vencida (now depois do vencimento).
func IsOverdue(s *entity.Sale, now time.Time) bool {
	return now.After(s.DueDate)
}

// OverdueSales filtra as vendas vencidas.
func OverdueSales(sales []*entity.Sale, now time.Time) []*entity.Sale {
	var out []*entity.Sale
	for _, s := range sales {
		if IsOverdue(s, now) {
			out = append(out, s)
		}
	}
	return out
}

// BirthdaysToday filtra os clientes que fazem aniversário hoje (mês e dia,
// independente do ano). Clientes sem data de nascimento são ignorados.
func BirthdaysToday(customers []*entity.Customer, now time.Time) []*entity.Customer {
	var out []*entity.Customer
	for _, c := range customers {
		if c.BirthDate == nil {
			continue
		}
		if c.BirthDate.Month() == now.Month() && c.BirthDate.Day() == now.Day() {
			out = append(out, c)
		}
	}
	return out
}
