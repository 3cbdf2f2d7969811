package entity

import (
	"time"

	"github.com/tu-usuario/store-ledger/internal/domain/policy"
)

// User representa una cuenta del sistema (Supplier, Customer o Admin).
// El email se persiste en minúsculas para que la unicidad sea case-insensitive.
type User struct {
	ID           string
	Email        string // único
	Name         string
	PasswordHash string // bcrypt, nunca en claro después de persistir
	Role         policy.Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
