package repository

import "github.com/MatheusFerreira-MDF/mercado-fiado-manager-main/internal/domain/entity"

// SaleRepository define a porta de persistência para Sale e seus itens.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	CreateItem(item *entity.SaleItem) error
	GetByID(userID, id string) (*entity.Sale, error)
	// ListByUser retorna as vendas do comerciante com itens, da mais recente
	// para a mais antiga.
	ListByUser(userID string) ([]*entity.Sale, error)
	ListByCustomer(userID, customerID string) ([]*entity.Sale, error)
	// MarkSigned marca o comprovante como assinado. Idempotente.
	MarkSigned(userID, id string) error
}
