package ledger_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/store-ledger/internal/application/dto"
	"github.com/tu-usuario/store-ledger/internal/application/ledger"
	"github.com/tu-usuario/store-ledger/internal/domain"
	"github.com/tu-usuario/store-ledger/internal/domain/entity"
	"github.com/tu-usuario/store-ledger/pkg/logger"
)

// newEngine arma el motor sobre el mundo base, compartiendo el estado del
// libro mayor entre el validador y el runner transaccional.
func newEngine(w *world) (*ledger.PostingEngine, *fakeTxRunner) {
	runner := &fakeTxRunner{state: w.state}
	return ledger.NewPostingEngine(runner, w.v, logger.Nop()), runner
}

func post(t *testing.T, e *ledger.PostingEngine, in dto.PostTransactionRequest) *entity.Transaction {
	t.Helper()
	trx, err := e.Post(context.Background(), in)
	require.NoError(t, err)
	require.NotNil(t, trx)
	return trx
}

// ──────────────────────────────────────────────────────────────────────────────
// Efectos del posting exitoso
// ──────────────────────────────────────────────────────────────────────────────

func TestPost_IN_CreaAsientoItemYStock(t *testing.T) {
	w := newWorld(t)
	e, _ := newEngine(w)

	trx := post(t, e, validIN())

	assert.Equal(t, entity.TrxTypeIN, trx.TrxType)
	assert.Equal(t, adminID, trx.CreatedByID)
	assert.Equal(t, supplierID, trx.PartyID)
	assert.True(t, trx.Amount.Equal(decimal.NewFromInt(5000)))

	// Exactamente un asiento, un line item y una fila de stock.
	require.Len(t, w.state.transactions, 1)
	require.Len(t, w.state.lineItems[trx.ID], 1)
	item := w.state.lineItems[trx.ID][0]
	assert.Equal(t, productID, item.ProductID)
	assert.Equal(t, int64(5), item.Quantity)
	assert.Equal(t, int64(5), w.state.stockQuantity(storeID, productID))
}

// Dos entradas sucesivas acumulan existencias sobre la misma fila.
func TestPost_DosIN_AcumulanSobreLaMismaFila(t *testing.T) {
	w := newWorld(t)
	e, _ := newEngine(w)

	trx1 := post(t, e, validIN())

	in2 := validIN()
	in2.Quantity = intPtr(3)
	in2.Amount = decPtr(decimal.NewFromInt(3000))
	trx2 := post(t, e, in2)

	assert.NotEqual(t, trx1.ID, trx2.ID)
	assert.Len(t, w.state.transactions, 2)
	assert.Len(t, w.state.lineItems[trx1.ID], 1)
	assert.Len(t, w.state.lineItems[trx2.ID], 1)
	assert.Len(t, w.state.stock, 1, "mismo par tienda+producto: una sola fila de stock")
	assert.Equal(t, int64(8), w.state.stockQuantity(storeID, productID))
}

func TestPost_INLuegoOUT_DescuentaStock(t *testing.T) {
	w := newWorld(t)
	e, _ := newEngine(w)

	post(t, e, validIN()) // stock 5

	out := validIN()
	out.TrxType = strPtr(entity.TrxTypeOUT)
	out.PartyID = strPtr(customerID)
	out.Quantity = intPtr(2)
	out.Amount = decPtr(decimal.NewFromInt(2000))
	post(t, e, out)

	assert.Equal(t, int64(3), w.state.stockQuantity(storeID, productID))
	assert.Len(t, w.state.transactions, 2)
}

// El efectivo de la tienda se exige como cobertura del IN pero no se debita.
func TestPost_IN_NoMutaElEfectivo(t *testing.T) {
	w := newWorld(t)
	e, _ := newEngine(w)

	post(t, e, validIN())

	store, err := w.stores.GetByID(storeID)
	require.NoError(t, err)
	assert.True(t, store.Cash.Equal(decimal.NewFromInt(10000)),
		"el posting no acredita ni debita Cash")
}

// ──────────────────────────────────────────────────────────────────────────────
// Rechazos: cero filas persistidas
// ──────────────────────────────────────────────────────────────────────────────

func TestPost_OUTMayorQueStock_RechazaSinEfectos(t *testing.T) {
	w := newWorld(t)
	e, _ := newEngine(w)

	post(t, e, validIN()) // stock 5

	out := validIN()
	out.TrxType = strPtr(entity.TrxTypeOUT)
	out.PartyID = strPtr(customerID)
	out.Quantity = intPtr(7)
	out.Amount = decPtr(decimal.NewFromInt(7000))

	_, err := e.Post(context.Background(), out)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// Solo quedó el IN: el rechazo no dejó asiento, item ni ajuste.
	assert.Len(t, w.state.transactions, 1)
	assert.Equal(t, int64(5), w.state.stockQuantity(storeID, productID))
}

func TestPost_OUTSinStockPrevio_Rechaza(t *testing.T) {
	w := newWorld(t)
	e, _ := newEngine(w)

	out := validIN()
	out.TrxType = strPtr(entity.TrxTypeOUT)
	out.PartyID = strPtr(customerID)
	out.Quantity = intPtr(1)
	out.Amount = decPtr(decimal.NewFromInt(1000))

	_, err := e.Post(context.Background(), out)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Empty(t, w.state.transactions)
	assert.Empty(t, w.state.stock)
}

// Rechazar es idempotente: la misma solicitud inválida, enviada dos veces,
// produce el mismo rechazo las dos veces y cero filas en ambas.
func TestPost_MismaSolicitudInvalidaDosVeces_MismoRechazo(t *testing.T) {
	w := newWorld(t)
	e, _ := newEngine(w)

	post(t, e, validIN()) // stock 5

	out := validIN()
	out.TrxType = strPtr(entity.TrxTypeOUT)
	out.PartyID = strPtr(customerID)
	out.Quantity = intPtr(7)
	out.Amount = decPtr(decimal.NewFromInt(7000))

	_, err1 := e.Post(context.Background(), out)
	assert.ErrorIs(t, err1, domain.ErrInsufficientStock)
	_, err2 := e.Post(context.Background(), out)
	assert.ErrorIs(t, err2, domain.ErrInsufficientStock)

	assert.Len(t, w.state.transactions, 1, "ningún rechazo dejó asiento")
	assert.Equal(t, int64(5), w.state.stockQuantity(storeID, productID))
}

// El stock baja entre la validación y el lock (otro posting commiteó en el
// medio): el re-chequeo dentro de la unidad de trabajo rechaza igual.
func TestPost_StockSeReduceTrasValidar_RechazaEnElCommit(t *testing.T) {
	w := newWorld(t)
	e, runner := newEngine(w)
	w.seedStock(10)

	// OUT 7 pasa la validación con 10, pero al abrir la unidad de trabajo
	// solo quedan 5.
	runner.beforeRun = func(s *ledgerState) {
		s.stock[stockKey(storeID, productID)].Quantity = 5
	}

	out := validIN()
	out.TrxType = strPtr(entity.TrxTypeOUT)
	out.PartyID = strPtr(customerID)
	out.Quantity = intPtr(7)
	out.Amount = decPtr(decimal.NewFromInt(7000))

	_, err := e.Post(context.Background(), out)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// Cero filas del posting rechazado; queda el estado que dejó el otro.
	assert.Empty(t, w.state.transactions)
	assert.Equal(t, int64(5), w.state.stockQuantity(storeID, productID))
}

// Un rechazo no consume nada: la misma solicitud corregida pasa después.
func TestPost_RechazoNoConsumeEstado(t *testing.T) {
	w := newWorld(t)
	e, _ := newEngine(w)

	in := validIN()
	in.Amount = decPtr(decimal.NewFromInt(9999))
	_, err := e.Post(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrAmountMismatch)

	post(t, e, validIN())
	assert.Equal(t, int64(5), w.state.stockQuantity(storeID, productID))
}

func TestPost_ValidacionFalla_NoEntraALaUnidadDeTrabajo(t *testing.T) {
	w := newWorld(t)
	e, runner := newEngine(w)
	// Si la validación corta antes, el runner jamás corre aunque esté roto.
	runner.createErr = errors.New("no debería llegar acá")

	in := validIN()
	in.CreatedByID = strPtr(customerID)

	_, err := e.Post(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrUnauthorizedCreator)
	assert.Empty(t, w.state.transactions)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fallas de infraestructura dentro de la unidad de trabajo
// ──────────────────────────────────────────────────────────────────────────────

func TestPost_FallaDeBD_ColapsaEnPostingFailed(t *testing.T) {
	w := newWorld(t)
	e, runner := newEngine(w)
	runner.createErr = errors.New("duplicate key value violates unique constraint")

	_, err := e.Post(context.Background(), validIN())
	assert.ErrorIs(t, err, domain.ErrPostingFailed)

	// Rollback: nada persistido.
	assert.Empty(t, w.state.transactions)
	assert.Empty(t, w.state.stock)
}

func TestPost_FallaDeBD_EsReintentable(t *testing.T) {
	w := newWorld(t)
	e, runner := newEngine(w)

	runner.createErr = errors.New("deadlock detected")
	_, err := e.Post(context.Background(), validIN())
	require.ErrorIs(t, err, domain.ErrPostingFailed)

	// El reintento de la misma solicitud, sin la falla, pasa limpio.
	runner.createErr = nil
	post(t, e, validIN())
	assert.Equal(t, int64(5), w.state.stockQuantity(storeID, productID))
}
