package ledger

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/store-ledger/internal/application/dto"
	"github.com/tu-usuario/store-ledger/internal/domain"
	"github.com/tu-usuario/store-ledger/internal/domain/entity"
	"github.com/tu-usuario/store-ledger/internal/domain/repository"
	"github.com/tu-usuario/store-ledger/pkg/logger"
)

// PostingEngine registra transacciones validadas de forma atómica: asiento +
// line item + upsert de StockLevel en una sola unidad de trabajo, con bloqueo
// de fila (SELECT FOR UPDATE) sobre las existencias del par tienda+producto.
//
// El efectivo de la tienda se valida pero no se muta: el flujo observado solo
// ajusta existencias, nunca acredita ni debita Cash.
type PostingEngine struct {
	txRunner  TxRunner
	validator *Validator
	log       *logger.Logger
}

// NewPostingEngine construye el motor de posting.
func NewPostingEngine(txRunner TxRunner, validator *Validator, log *logger.Logger) *PostingEngine {
	return &PostingEngine{txRunner: txRunner, validator: validator, log: log}
}

// Post valida la solicitud y, si pasa, ejecuta la unidad atómica de trabajo.
// Devuelve el asiento registrado o un rechazo tipado. En éxito los efectos son
// exactamente: una Transaction nueva, un TransactionLineItem nuevo y una fila
// de StockLevel creada o actualizada; en cualquier rechazo o falla, cero filas.
func (e *PostingEngine) Post(ctx context.Context, in dto.PostTransactionRequest) (*entity.Transaction, error) {
	res, err := e.validator.Validate(in)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	trx := &entity.Transaction{
		ID:          uuid.New().String(),
		CreatedByID: res.CreatedBy.ID,
		PartyID:     res.Party.ID,
		StoreID:     res.Store.ID,
		TrxType:     res.TrxType,
		Amount:      res.Amount,
		CreatedAt:   now,
	}

	err = e.txRunner.Run(ctx, func(
		trxRepo repository.TransactionRepository,
		stockRepo repository.StockLevelRepository,
	) error {
		if err := trxRepo.Create(trx); err != nil {
			return err
		}
		item := &entity.TransactionLineItem{
			ID:            uuid.New().String(),
			TransactionID: trx.ID,
			ProductID:     res.Product.ID,
			Quantity:      res.Quantity,
		}
		if err := trxRepo.CreateLineItem(item); err != nil {
			return err
		}

		// Bloquea la fila de existencias para serializar postings concurrentes
		// sobre el mismo par tienda+producto.
		level, err := stockRepo.GetForUpdate(res.Store.ID, res.Product.ID)
		if err != nil {
			return err
		}
		switch res.TrxType {
		case entity.TrxTypeIN:
			level.Quantity += res.Quantity
		case entity.TrxTypeOUT:
			// Re-chequeo contra la cantidad persistida, no contra el snapshot
			// de la validación: cierra la ventana de carrera entre validar y
			// commitear. Este camino jamás crea una fila negativa.
			if level.Quantity < res.Quantity {
				return domain.ErrInsufficientStock
			}
			level.Quantity -= res.Quantity
		}
		level.UpdatedAt = now
		return stockRepo.Upsert(level)
	})
	if err != nil {
		if isRejection(err) {
			return nil, err
		}
		// Conflicto de integridad u otra falla de la BD. El rollback ya está
		// garantizado por el runner; se registra la causa y el caller recibe
		// un fallo genérico reintentable.
		e.log.Error().Err(err).
			Str("store_id", res.Store.ID).
			Str("product_id", res.Product.ID).
			Str("trx_type", res.TrxType).
			Msg("posting abortado")
		return nil, domain.ErrPostingFailed
	}
	return trx, nil
}

// isRejection distingue los rechazos de negocio (que se devuelven tal cual)
// de las fallas de infraestructura (que se colapsan en ErrPostingFailed).
func isRejection(err error) bool {
	return errors.Is(err, domain.ErrInsufficientStock)
}
