package dto

import "github.com/shopspring/decimal"

// CreateCustomerRequest body para POST /api/customers.
// CreditLimit é opcional: o handler aplica o padrão de 1000 quando ausente
// ou inválido, como fazia o cadastro original.
type CreateCustomerRequest struct {
	Name        string           `json:"name"`
	Phone       string           `json:"phone"`
	CreditLimit *decimal.Decimal `json:"credit_limit,omitempty"`
	BirthDate   string           `json:"birth_date,omitempty"` // AAAA-MM-DD
}

// CustomerResponse cliente em respostas, com o status de crédito derivado.
type CustomerResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Phone        string          `json:"phone"`
	BirthDate    string          `json:"birth_date,omitempty"`
	CreditLimit  decimal.Decimal `json:"credit_limit"`
	CurrentDebt  decimal.Decimal `json:"current_debt"`
	UsagePercent decimal.Decimal `json:"usage_percent"`
	Status       string          `json:"status"` // over_limit | near_limit | regular
	CreatedAt    string          `json:"created_at"`
}

// SaleItemRequest linha da venda no body.
type SaleItemRequest struct {
	Product string          `json:"product"`
	Value   decimal.Decimal `json:"value"`
}

// CreateSaleRequest body para POST /api/sales. O total informado é ignorado:
// o caso de uso recalcula a partir dos itens.
type CreateSaleRequest struct {
	CustomerID string            `json:"customer_id"`
	Items      []SaleItemRequest `json:"items"`
}

// SaleItemResponse linha da venda em respostas.
type SaleItemResponse struct {
	Product string          `json:"product"`
	Value   decimal.Decimal `json:"value"`
}

// SaleResponse venda em respostas.
type SaleResponse struct {
	ID         string             `json:"id"`
	CustomerID string             `json:"customer_id"`
	Items      []SaleItemResponse `json:"items"`
	TotalValue decimal.Decimal    `json:"total_value"`
	Date       string             `json:"date"`
	DueDate    string             `json:"due_date"`
	Signed     bool               `json:"signed"`
	Overdue    bool               `json:"overdue"`
}

// AddSaleResponse resultado de POST /api/sales: a venda criada, o snapshot
// atualizado do cliente e o aviso de limite estourado. O estouro nunca
// bloqueia a venda; a flag é só um alerta para o caixa.
type AddSaleResponse struct {
	Sale        SaleResponse     `json:"sale"`
	Customer    CustomerResponse `json:"customer"`
	IsOverLimit bool             `json:"is_over_limit"`
}

// PayDebtRequest body para POST /api/payments.
type PayDebtRequest struct {
	CustomerID    string          `json:"customer_id"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"payment_method"` // dinheiro | pix | cartao | cheque
}

// PaymentResponse pagamento em respostas (histórico do cliente).
type PaymentResponse struct {
	ID            string          `json:"id"`
	CustomerID    string          `json:"customer_id"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"payment_method"`
	CreatedAt     string          `json:"created_at"`
}

// PayDebtResponse resultado do pagamento: o cliente com o saldo abatido.
type PayDebtResponse struct {
	Customer CustomerResponse `json:"customer"`
	Paid     decimal.Decimal  `json:"paid"`
}

// DashboardSummaryDTO resumo do painel: contagens por status, totais e os
// maiores devedores.
type DashboardSummaryDTO struct {
	TotalCustomers int              `json:"total_customers"`
	OverLimit      int              `json:"over_limit"`
	NearLimit      int              `json:"near_limit"`
	Regular        int              `json:"regular"`
	TotalDebt      decimal.Decimal  `json:"total_debt"`
	TodaySales     int              `json:"today_sales"`
	TodayTotal     decimal.Decimal  `json:"today_total"`
	TopDebtors     []TopDebtorDTO   `json:"top_debtors"`
}

// TopDebtorDTO cliente no ranking de devedores.
type TopDebtorDTO struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	CurrentDebt decimal.Decimal `json:"current_debt"`
	OverLimit   bool            `json:"over_limit"`
}

// AlertDTO cliente em um painel de alerta (limite estourado ou próximo).
type AlertDTO struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	CurrentDebt  decimal.Decimal `json:"current_debt"`
	CreditLimit  decimal.Decimal `json:"credit_limit"`
	UsagePercent decimal.Decimal `json:"usage_percent"`
}

// AlertsDTO os dois painéis de alerta do dashboard.
type AlertsDTO struct {
	OverLimit []AlertDTO `json:"over_limit"`
	NearLimit []AlertDTO `json:"near_limit"`
}

// BirthdayDTO aniversariante do dia.
type BirthdayDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	BirthDate string `json:"birth_date"`
}

// ReceiptLineDTO linha de produto no comprovante, já numerada e formatada.
type ReceiptLineDTO struct {
	Number  int    `json:"number"`
	Product string `json:"product"`
	Value   string `json:"value"` // "R$ 12,50"
}

// ReceiptDTO view-model do comprovante de compra fiado, pronto para imprimir.
// Valores monetários formatados em pt-BR; datas em dd/MM/yyyy.
type ReceiptDTO struct {
	MarketName    string           `json:"market_name"`
	CNPJ          string           `json:"cnpj"`
	Title         string           `json:"title"` // "COMPROVANTE DE COMPRA FIADO"
	SaleDate      string           `json:"sale_date"` // dd/MM/yyyy HH:mm
	DueDate       string           `json:"due_date"`  // dd/MM/yyyy
	CustomerName  string           `json:"customer_name"`
	Lines         []ReceiptLineDTO `json:"lines"`
	Total         string           `json:"total"`
	PreviousDebt  string           `json:"previous_debt"` // dívida antes desta venda
	TotalDebt     string           `json:"total_debt"`
	CreditLimit   string           `json:"credit_limit"`
	SignatureName string           `json:"signature_name"`
	FooterLegend  string           `json:"footer_legend"`
	Signed        bool             `json:"signed"`
}
