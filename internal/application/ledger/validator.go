package ledger

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/store-ledger/internal/application/dto"
	"github.com/tu-usuario/store-ledger/internal/domain"
	"github.com/tu-usuario/store-ledger/internal/domain/entity"
	"github.com/tu-usuario/store-ledger/internal/domain/policy"
	"github.com/tu-usuario/store-ledger/internal/domain/repository"
	"github.com/tu-usuario/store-ledger/pkg/validator"
)

// Validator valida una transacción propuesta contra las reglas de negocio.
// Es puro: solo lee, nunca muta, y corta en la primera falla. El orden de los
// chequeos es fijo: campos presentes, tipo, magnitudes, created_by Admin,
// referencias existentes, amount == quantity * precio, y disponibilidad
// (efectivo para IN, stock para OUT).
type Validator struct {
	users    repository.UserRepository
	stores   repository.StoreRepository
	products repository.ProductRepository
	stock    repository.StockLevelRepository
}

// NewValidator construye el validador sobre los puertos de solo lectura.
func NewValidator(
	users repository.UserRepository,
	stores repository.StoreRepository,
	products repository.ProductRepository,
	stock repository.StockLevelRepository,
) *Validator {
	return &Validator{users: users, stores: stores, products: products, stock: stock}
}

// Resolved es la transacción propuesta con todas las referencias resueltas a
// registros existentes. Solo un Resolved puede entrar al motor de posting.
type Resolved struct {
	TrxType   string
	CreatedBy *entity.User
	Party     *entity.User
	Store     *entity.Store
	Product   *entity.Product
	Quantity  int64
	Amount    decimal.Decimal
}

// Validate aplica los chequeos en orden y devuelve la transacción resuelta o
// el rechazo tipado correspondiente. Sin efectos secundarios.
func (v *Validator) Validate(in dto.PostTransactionRequest) (*Resolved, error) {
	if err := checkShape(in); err != nil {
		return nil, err
	}

	createdBy, err := v.users.GetByID(*in.CreatedByID)
	if err != nil {
		return nil, err
	}
	if createdBy == nil || createdBy.Role != policy.RoleAdmin {
		return nil, domain.ErrUnauthorizedCreator
	}

	store, err := v.stores.GetByID(*in.StoreID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, &domain.NotFoundError{Entity: "store"}
	}
	party, err := v.users.GetByID(*in.PartyID)
	if err != nil {
		return nil, err
	}
	if party == nil {
		return nil, &domain.NotFoundError{Entity: "party"}
	}
	product, err := v.products.GetByID(*in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, &domain.NotFoundError{Entity: "product"}
	}

	// Igualdad decimal exacta, sin redondeo.
	expected := product.Price.Mul(decimal.NewFromInt(*in.Quantity))
	if !in.Amount.Equal(expected) {
		return nil, domain.ErrAmountMismatch
	}

	switch *in.TrxType {
	case entity.TrxTypeIN:
		// La tienda paga al proveedor desde su reserva de efectivo.
		if store.Cash.LessThan(*in.Amount) {
			return nil, domain.ErrInsufficientFunds
		}
	case entity.TrxTypeOUT:
		// Sin fila de stock para el par, no hay nada que vender.
		level, err := v.stock.Get(store.ID, product.ID)
		if err != nil {
			return nil, err
		}
		if level.Quantity < *in.Quantity {
			return nil, domain.ErrInsufficientStock
		}
	}

	return &Resolved{
		TrxType:   *in.TrxType,
		CreatedBy: createdBy,
		Party:     party,
		Store:     store,
		Product:   product,
		Quantity:  *in.Quantity,
		Amount:    *in.Amount,
	}, nil
}

// checkShape cubre los chequeos estructurales con los tags `validate` del
// request: presencia de todos los campos, trx_type dentro del enum y signo de
// las magnitudes. Las violaciones se priorizan por tipo de regla, no por el
// orden de los campos en el struct.
func checkShape(in dto.PostTransactionRequest) error {
	errs := validator.ValidateStruct(in)
	for _, e := range errs {
		if e.Tag == "required" {
			return &domain.MissingFieldError{Field: e.FailedField}
		}
	}
	for _, e := range errs {
		if e.Tag == "oneof" {
			return domain.ErrInvalidTrxType
		}
	}
	for _, e := range errs {
		if e.Tag == "gt" {
			return domain.ErrInvalidMagnitude
		}
	}
	if len(errs) > 0 {
		return domain.ErrInvalidInput
	}
	// El tag gt no aplica a decimal.Decimal; el signo del amount se chequea acá.
	if !in.Amount.IsPositive() {
		return domain.ErrInvalidMagnitude
	}
	return nil
}
