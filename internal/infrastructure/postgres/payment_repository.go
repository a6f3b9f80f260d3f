package postgres

import (
	"context"
	"fmt"

	"github.com/MatheusFerreira-MDF/mercado-fiado-manager-main/internal/domain/entity"
	"github.com/MatheusFerreira-MDF/mercado-fiado-manager-main/internal/domain/repository"
)

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

// PaymentRepo implementação de PaymentRepository (usável com pool ou tx).
type PaymentRepo struct {
	q Querier
}

// NewPaymentRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewPaymentRepository(q Querier) *PaymentRepo {
	return &PaymentRepo{q: q}
}

// Create persiste um pagamento de dívida.
func (r *PaymentRepo) Create(payment *entity.Payment) error {
	query := `
		INSERT INTO payments (id, user_id, customer_id, amount, payment_method, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		payment.ID, payment.UserID, payment.CustomerID, payment.Amount,
		payment.PaymentMethod, payment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

// ListByCustomer lista os pagamentos de um cliente, do mais recente para o
// mais antigo.
func (r *PaymentRepo) ListByCustomer(userID, customerID string) ([]*entity.Payment, error) {
	query := `
		SELECT id, user_id, customer_id, amount, payment_method, created_at
		FROM payments WHERE user_id = $1 AND customer_id = $2 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, userID, customerID)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()
	var list []*entity.Payment
	for rows.Next() {
		var p entity.Payment
		if err := rows.Scan(&p.ID, &p.UserID, &p.CustomerID, &p.Amount,
			&p.PaymentMethod, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
