package repository

import "github.com/MatheusFerreira-MDF/mercado-fiado-manager-main/internal/domain/entity"

// UserRepository define a porta de persistência para User (comerciante).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
}
