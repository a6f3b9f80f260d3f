package repository

import "github.com/MatheusFerreira-MDF/mercado-fiado-manager-main/internal/domain/entity"

// PaymentRepository define a porta de persistência para Payment.
type PaymentRepository interface {
	Create(payment *entity.Payment) error
	ListByCustomer(userID, customerID string) ([]*entity.Payment, error)
}
