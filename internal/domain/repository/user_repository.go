package repository

import "github.com/tu-usuario/store-ledger/internal/domain/entity"

// UserRepository define el puerto de persistencia para cuentas (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	List(limit, offset int) ([]*entity.User, error)
}
