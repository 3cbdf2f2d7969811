package repository

import "github.com/tu-usuario/store-ledger/internal/domain/entity"

// StoreRepository define el puerto de persistencia para tiendas (DIP).
// Create devuelve ErrDuplicateName si el nombre ya existe.
type StoreRepository interface {
	Create(store *entity.Store) error
	GetByID(id string) (*entity.Store, error)
	Update(store *entity.Store) error
	List(limit, offset int) ([]*entity.Store, error) // ordenado por nombre
	Delete(id string) error
}
