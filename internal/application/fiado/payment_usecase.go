package fiado

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MatheusFerreira-MDF/mercado-fiado-manager-main/internal/application/dto"
	"github.com/MatheusFerreira-MDF/mercado-fiado-manager-main/internal/domain"
	"github.com/MatheusFerreira-MDF/mercado-fiado-manager-main/internal/domain/entity"
	"github.com/MatheusFerreira-MDF/mercado-fiado-manager-main/internal/domain/repository"
)

// PaymentUseCase registra pagamentos e abate a dívida do cliente.
type PaymentUseCase struct {
	txRunner     TxRunner
	customerRepo repository.CustomerRepository
	paymentRepo  repository.PaymentRepository
}

// NewPaymentUseCase constrói o caso de uso.
func NewPaymentUseCase(txRunner TxRunner, customerRepo repository.CustomerRepository, paymentRepo repository.PaymentRepository) *PaymentUseCase {
	return &PaymentUseCase{txRunner: txRunner, customerRepo: customerRepo, paymentRepo: paymentRepo}
}

// PayDebt registra um pagamento e abate o saldo devedor, com piso em zero:
// pagar mais do que deve zera a dívida, o excedente não vira crédito.
// O pagamento abate o saldo agregado, sem alocação a vendas específicas.
// Registro e novo saldo são gravados em uma única transação.
func (uc *PaymentUseCase) PayDebt(ctx context.Context, userID string, in dto.PayDebtRequest) (*dto.PayDebtResponse, error) {
	if in.CustomerID == "" || !in.Amount.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidPaymentMethod(in.PaymentMethod) {
		return nil, domain.ErrInvalidInput
	}

	customer, err := uc.customerRepo.GetByID(userID, in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}

	newDebt := customer.CurrentDebt.Sub(in.Amount)
	if newDebt.IsNegative() {
		newDebt = decimal.Zero
	}

	now := time.Now()
	payment := &entity.Payment{
		ID:            uuid.New().String(),
		UserID:        userID,
		CustomerID:    customer.ID,
		Amount:        in.Amount,
		PaymentMethod: in.PaymentMethod,
		CreatedAt:     now,
	}

	err = uc.txRunner.Run(ctx, func(
		customerRepo repository.CustomerRepository,
		_ repository.SaleRepository,
		paymentRepo repository.PaymentRepository,
	) error {
		if err := paymentRepo.Create(payment); err != nil {
			return err
		}
		return customerRepo.UpdateDebt(userID, customer.ID, newDebt, now)
	})
	if err != nil {
		return nil, err
	}

	customer.CurrentDebt = newDebt
	customer.UpdatedAt = now
	return &dto.PayDebtResponse{
		Customer: *toCustomerResponse(customer),
		Paid:     in.Amount,
	}, nil
}

// ListByCustomer retorna o histórico de pagamentos de um cliente, do mais
// recente para o mais antigo.
func (uc *PaymentUseCase) ListByCustomer(userID, customerID string) ([]*dto.PaymentResponse, error) {
	customer, err := uc.customerRepo.GetByID(userID, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	payments, err := uc.paymentRepo.ListByCustomer(userID, customerID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, &dto.PaymentResponse{
			ID:            p.ID,
			CustomerID:    p.CustomerID,
			Amount:        p.Amount,
			PaymentMethod: p.PaymentMethod,
			CreatedAt:     p.CreatedAt.Format(time.RFC3339),
		})
	}
	return out, nil
}
