package entity

import "time"

// User representa o comerciante dono do caderno de fiado. Cada cliente,
// venda e pagamento pertence a um User; as consultas são sempre escopadas
// pelo seu ID.
type User struct {
	ID           string
	Email        string
	PasswordHash string // hash bcrypt, nunca em claro depois de persistir
	Name         string
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
