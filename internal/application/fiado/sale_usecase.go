package fiado

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MatheusFerreira-MDF/mercado-fiado-manager-main/internal/application/dto"
	"github.com/MatheusFerreira-MDF/mercado-fiado-manager-main/internal/domain"
	"github.com/MatheusFerreira-MDF/mercado-fiado-manager-main/internal/domain/entity"
	"github.com/MatheusFerreira-MDF/mercado-fiado-manager-main/internal/domain/ledger"
	"github.com/MatheusFerreira-MDF/mercado-fiado-manager-main/internal/domain/repository"
)

// SaleUseCase registra vendas fiadas e marca comprovantes como assinados.
type SaleUseCase struct {
	txRunner     TxRunner
	customerRepo repository.CustomerRepository
	saleRepo     repository.SaleRepository
}

// NewSaleUseCase constrói o caso de uso.
func NewSaleUseCase(txRunner TxRunner, customerRepo repository.CustomerRepository, saleRepo repository.SaleRepository) *SaleUseCase {
	return &SaleUseCase{txRunner: txRunner, customerRepo: customerRepo, saleRepo: saleRepo}
}

// AddSale registra uma venda fiada: soma os itens (o total do body é
// ignorado), calcula o vencimento em 30 dias e aumenta a dívida do cliente.
// Cabeçalho, itens e novo saldo são gravados em uma única transação.
//
// Estourar o limite de crédito NÃO bloqueia a venda; a resposta carrega
// is_over_limit=true para o caixa avisar o cliente.
func (uc *SaleUseCase) AddSale(ctx context.Context, userID string, in dto.CreateSaleRequest) (*dto.AddSaleResponse, error) {
	if in.CustomerID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	total := decimal.Zero
	for _, item := range in.Items {
		if item.Product == "" || !item.Value.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		total = total.Add(item.Value)
	}

	// Validação fora da transação, somente leitura.
	customer, err := uc.customerRepo.GetByID(userID, in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}

	newDebt := customer.CurrentDebt.Add(total)
	isOverLimit := newDebt.GreaterThan(customer.CreditLimit)

	now := time.Now()
	sale := &entity.Sale{
		ID:         uuid.New().String(),
		UserID:     userID,
		CustomerID: customer.ID,
		TotalValue: total,
		Date:       now,
		DueDate:    ledger.ComputeDueDate(now),
		Signed:     false,
		CreatedAt:  now,
	}
	for _, item := range in.Items {
		sale.Items = append(sale.Items, entity.SaleItem{
			ID:      uuid.New().String(),
			SaleID:  sale.ID,
			Product: item.Product,
			Value:   item.Value,
		})
	}

	err = uc.txRunner.Run(ctx, func(
		customerRepo repository.CustomerRepository,
		saleRepo repository.SaleRepository,
		_ repository.PaymentRepository,
	) error {
		if err := saleRepo.Create(sale); err != nil {
			return err
		}
		for i := range sale.Items {
			if err := saleRepo.CreateItem(&sale.Items[i]); err != nil {
				return err
			}
		}
		return customerRepo.UpdateDebt(userID, customer.ID, newDebt, now)
	})
	if err != nil {
		return nil, err
	}

	customer.CurrentDebt = newDebt
	customer.UpdatedAt = now
	return &dto.AddSaleResponse{
		Sale:        *toSaleResponse(sale, now),
		Customer:    *toCustomerResponse(customer),
		IsOverLimit: isOverLimit,
	}, nil
}

// MarkSigned marca o comprovante da venda como assinado pelo cliente.
// Idempotente: assinar de novo não muda nada.
func (uc *SaleUseCase) MarkSigned(userID, saleID string) error {
	sale, err := uc.saleRepo.GetByID(userID, saleID)
	if err != nil {
		return err
	}
	if sale == nil {
		return domain.ErrNotFound
	}
	if sale.Signed {
		return nil
	}
	return uc.saleRepo.MarkSigned(userID, saleID)
}

// List retorna todas as vendas do comerciante, da mais recente para a mais
// antiga, com a flag de vencida calculada contra o relógio atual.
func (uc *SaleUseCase) List(userID string) ([]*dto.SaleResponse, error) {
	sales, err := uc.saleRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	return toSaleResponses(sales), nil
}

// ListByCustomer retorna as vendas de um cliente específico.
func (uc *SaleUseCase) ListByCustomer(userID, customerID string) ([]*dto.SaleResponse, error) {
	customer, err := uc.customerRepo.GetByID(userID, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	sales, err := uc.saleRepo.ListByCustomer(userID, customerID)
	if err != nil {
		return nil, err
	}
	return toSaleResponses(sales), nil
}

func toSaleResponses(sales []*entity.Sale) []*dto.SaleResponse {
	now := time.Now()
	out := make([]*dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, toSaleResponse(s, now))
	}
	return out
}

func toSaleResponse(s *entity.Sale, now time.Time) *dto.SaleResponse {
	items := make([]dto.SaleItemResponse, 0, len(s.Items))
	for _, item := range s.Items {
		items = append(items, dto.SaleItemResponse{Product: item.Product, Value: item.Value})
	}
	return &dto.SaleResponse{
		ID:         s.ID,
		CustomerID: s.CustomerID,
		Items:      items,
		TotalValue: s.TotalValue,
		Date:       s.Date.Format(time.RFC3339),
		DueDate:    s.DueDate.Format(time.RFC3339),
		Signed:     s.Signed,
		Overdue:    ledger.IsOverdue(s, now),
	}
}
