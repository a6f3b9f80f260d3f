package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/MatheusFerreira-MDF/mercado-fiado-manager-main/internal/domain"
	"github.com/MatheusFerreira-MDF/mercado-fiado-manager-main/internal/domain/entity"
	"github.com/MatheusFerreira-MDF/mercado-fiado-manager-main/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementação de CustomerRepository (usável com pool ou tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persiste um novo cliente.
func (r *CustomerRepo) Create(customer *entity.Customer) error {
	query := `
		INSERT INTO customers (id, user_id, name, phone, birth_date, credit_limit, current_debt, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		customer.ID, customer.UserID, customer.Name, customer.Phone, customer.BirthDate,
		customer.CreditLimit, customer.CurrentDebt,
		customer.CreatedAt, customer.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID obtém um cliente do comerciante por ID.
func (r *CustomerRepo) GetByID(userID, id string) (*entity.Customer, error) {
	query := `
		SELECT id, user_id, name, phone, birth_date, credit_limit, current_debt, created_at, updated_at
		FROM customers WHERE user_id = $1 AND id = $2`
	var c entity.Customer
	err := r.q.QueryRow(context.Background(), query, userID, id).Scan(
		&c.ID, &c.UserID, &c.Name, &c.Phone, &c.BirthDate,
		&c.CreditLimit, &c.CurrentDebt, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}

// ListByUser lista os clientes do comerciante em ordem alfabética.
func (r *CustomerRepo) ListByUser(userID string) ([]*entity.Customer, error) {
	query := `
		SELECT id, user_id, name, phone, birth_date, credit_limit, current_debt, created_at, updated_at
		FROM customers WHERE user_id = $1 ORDER BY name`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Phone, &c.BirthDate,
			&c.CreditLimit, &c.CurrentDebt, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// UpdateDebt grava o novo saldo devedor do cliente.
func (r *CustomerRepo) UpdateDebt(userID, id string, newDebt decimal.Decimal, updatedAt time.Time) error {
	query := `
		UPDATE customers SET current_debt = $3, updated_at = $4
		WHERE user_id = $1 AND id = $2`
	tag, err := r.q.Exec(context.Background(), query, userID, id, newDebt, updatedAt)
	if err != nil {
		return fmt.Errorf("update customer debt: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
