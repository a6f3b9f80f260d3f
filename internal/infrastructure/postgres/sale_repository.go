package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/MatheusFerreira-MDF/mercado-fiado-manager-main/internal/domain"
	"github.com/MatheusFerreira-MDF/mercado-fiado-manager-main/internal/domain/entity"
	"github.com/MatheusFerreira-MDF/mercado-fiado-manager-main/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementação de SaleRepository (usável com pool ou tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste o cabeçalho da venda.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, user_id, customer_id, total_value, date, due_date, signed, payment_method, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.UserID, sale.CustomerID, sale.TotalValue,
		sale.Date, sale.DueDate, sale.Signed, nullIfEmpty(sale.PaymentMethod),
		sale.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// CreateItem persiste um item da venda.
func (r *SaleRepo) CreateItem(item *entity.SaleItem) error {
	query := `
		INSERT INTO sale_items (id, sale_id, product, value)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.SaleID, item.Product, item.Value,
	)
	if err != nil {
		return fmt.Errorf("insert sale item: %w", err)
	}
	return nil
}

// GetByID obtém uma venda do comerciante com seus itens.
func (r *SaleRepo) GetByID(userID, id string) (*entity.Sale, error) {
	query := `
		SELECT id, user_id, customer_id, total_value, date, due_date, signed, payment_method, created_at
		FROM sales WHERE user_id = $1 AND id = $2`
	var s entity.Sale
	var paymentMethod *string
	err := r.q.QueryRow(context.Background(), query, userID, id).Scan(
		&s.ID, &s.UserID, &s.CustomerID, &s.TotalValue,
		&s.Date, &s.DueDate, &s.Signed, &paymentMethod, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	if paymentMethod != nil {
		s.PaymentMethod = *paymentMethod
	}
	items, err := r.listItems(s.ID)
	if err != nil {
		return nil, err
	}
	s.Items = items
	return &s, nil
}

// ListByUser lista as vendas do comerciante com itens, da mais recente para a
// mais antiga.
func (r *SaleRepo) ListByUser(userID string) ([]*entity.Sale, error) {
	query := `
		SELECT id, user_id, customer_id, total_value, date, due_date, signed, payment_method, created_at
		FROM sales WHERE user_id = $1 ORDER BY created_at DESC`
	return r.list(query, userID)
}

// ListByCustomer lista as vendas de um cliente, da mais recente para a mais
// antiga.
func (r *SaleRepo) ListByCustomer(userID, customerID string) ([]*entity.Sale, error) {
	query := `
		SELECT id, user_id, customer_id, total_value, date, due_date, signed, payment_method, created_at
		FROM sales WHERE user_id = $1 AND customer_id = $2 ORDER BY created_at DESC`
	return r.list(query, userID, customerID)
}

func (r *SaleRepo) list(query string, args ...any) ([]*entity.Sale, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		var paymentMethod *string
		if err := rows.Scan(&s.ID, &s.UserID, &s.CustomerID, &s.TotalValue,
			&s.Date, &s.DueDate, &s.Signed, &paymentMethod, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		if paymentMethod != nil {
			s.PaymentMethod = *paymentMethod
		}
		list = append(list, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, s := range list {
		items, err := r.listItems(s.ID)
		if err != nil {
			return nil, err
		}
		s.Items = items
	}
	return list, nil
}

func (r *SaleRepo) listItems(saleID string) ([]entity.SaleItem, error) {
	query := `
		SELECT id, sale_id, product, value
		FROM sale_items WHERE sale_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, saleID)
	if err != nil {
		return nil, fmt.Errorf("list sale items: %w", err)
	}
	defer rows.Close()
	var items []entity.SaleItem
	for rows.Next() {
		var it entity.SaleItem
		if err := rows.Scan(&it.ID, &it.SaleID, &it.Product, &it.Value); err != nil {
			return nil, fmt.Errorf("scan sale item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// MarkSigned marca o comprovante como assinado. Idempotente.
func (r *SaleRepo) MarkSigned(userID, id string) error {
	query := `
		UPDATE sales SET signed = TRUE
		WHERE user_id = $1 AND id = $2`
	tag, err := r.q.Exec(context.Background(), query, userID, id)
	if err != nil {
		return fmt.Errorf("mark sale signed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// nullIfEmpty devolve nil para strings vazias (coluna NULL).
func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
