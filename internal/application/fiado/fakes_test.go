package fiado_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MatheusFerreira-MDF/mercado-fiado-manager-main/internal/domain/entity"
	"github.com/MatheusFerreira-MDF/mercado-fiado-manager-main/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória dos repositórios, com injeção de falhas para exercitar os
// caminhos de erro dos casos de uso.
// ──────────────────────────────────────────────────────────────────────────────

type fakeCustomerRepo struct {
	customers map[string]*entity.Customer
	updateErr error
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: make(map[string]*entity.Customer)}
}

func (f *fakeCustomerRepo) Create(c *entity.Customer) error {
	f.customers[c.ID] = c
	return nil
}

func (f *fakeCustomerRepo) GetByID(userID, id string) (*entity.Customer, error) {
	c, ok := f.customers[id]
	if !ok || c.UserID != userID {
		return nil, nil
	}
	clone := *c
	return &clone, nil
}

func (f *fakeCustomerRepo) ListByUser(userID string) ([]*entity.Customer, error) {
	var out []*entity.Customer
	for _, c := range f.customers {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCustomerRepo) UpdateDebt(userID, id string, newDebt decimal.Decimal, updatedAt time.Time) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	c, ok := f.customers[id]
	if !ok || c.UserID != userID {
		return nil
	}
	c.CurrentDebt = newDebt
	c.UpdatedAt = updatedAt
	return nil
}

type fakeSaleRepo struct {
	sales         map[string]*entity.Sale
	order         []string
	createItemErr error
}

func newFakeSaleRepo() *fakeSaleRepo {
	return &fakeSaleRepo{sales: make(map[string]*entity.Sale)}
}

func (f *fakeSaleRepo) Create(s *entity.Sale) error {
	clone := *s
	clone.Items = nil
	f.sales[s.ID] = &clone
	f.order = append(f.order, s.ID)
	return nil
}

func (f *fakeSaleRepo) CreateItem(item *entity.SaleItem) error {
	if f.createItemErr != nil {
		return f.createItemErr
	}
	s, ok := f.sales[item.SaleID]
	if ok {
		s.Items = append(s.Items, *item)
	}
	return nil
}

func (f *fakeSaleRepo) GetByID(userID, id string) (*entity.Sale, error) {
	s, ok := f.sales[id]
	if !ok || s.UserID != userID {
		return nil, nil
	}
	clone := *s
	return &clone, nil
}

func (f *fakeSaleRepo) ListByUser(userID string) ([]*entity.Sale, error) {
	var out []*entity.Sale
	// Mais recente primeiro: ordem de inserção invertida.
	for i := len(f.order) - 1; i >= 0; i-- {
		s := f.sales[f.order[i]]
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSaleRepo) ListByCustomer(userID, customerID string) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for i := len(f.order) - 1; i >= 0; i-- {
		s := f.sales[f.order[i]]
		if s.UserID == userID && s.CustomerID == customerID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSaleRepo) MarkSigned(userID, id string) error {
	s, ok := f.sales[id]
	if ok && s.UserID == userID {
		s.Signed = true
	}
	return nil
}

type fakePaymentRepo struct {
	payments  []*entity.Payment
	createErr error
}

func (f *fakePaymentRepo) Create(p *entity.Payment) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.payments = append(f.payments, p)
	return nil
}

func (f *fakePaymentRepo) ListByCustomer(userID, customerID string) ([]*entity.Payment, error) {
	var out []*entity.Payment
	for _, p := range f.payments {
		if p.UserID == userID && p.CustomerID == customerID {
			out = append(out, p)
		}
	}
	return out, nil
}

// fakeTxRunner executa o callback diretamente sobre os fakes; o rollback de
// verdade é papel do banco, aqui só interessa a propagação do erro.
type fakeTxRunner struct {
	customerRepo *fakeCustomerRepo
	saleRepo     *fakeSaleRepo
	paymentRepo  *fakePaymentRepo
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(
	repository.CustomerRepository,
	repository.SaleRepository,
	repository.PaymentRepository,
) error) error {
	return fn(f.customerRepo, f.saleRepo, f.paymentRepo)
}
