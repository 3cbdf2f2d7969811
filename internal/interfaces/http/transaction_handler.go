package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/store-ledger/internal/application/dto"
	"github.com/tu-usuario/store-ledger/internal/application/ledger"
	"github.com/tu-usuario/store-ledger/internal/application/usecase"
	"github.com/tu-usuario/store-ledger/internal/domain"
)

// TransactionHandler maneja el alta de asientos (vía motor de posting) y las
// lecturas del libro mayor.
type TransactionHandler struct {
	engine *ledger.PostingEngine
	uc     *usecase.TransactionUseCase
}

// NewTransactionHandler construye el handler.
func NewTransactionHandler(engine *ledger.PostingEngine, uc *usecase.TransactionUseCase) *TransactionHandler {
	return &TransactionHandler{engine: engine, uc: uc}
}

// Post godoc
// @Summary      Registrar transacción
// @Description  Valida y registra un movimiento IN/OUT de forma atómica: asiento, line item y ajuste de existencias, o nada.
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.PostTransactionRequest  true  "solicitud de posting"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/transactions [post]
func (h *TransactionHandler) Post(c *fiber.Ctx) error {
	var in dto.PostTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	trx, err := h.engine.Post(c.UserContext(), in)
	if err != nil {
		return rejectionToResponse(c, err)
	}
	out, err := h.uc.GetByID(trx.ID)
	if err != nil || out == nil {
		// El asiento quedó registrado; devolver lo mínimo en vez de fallar.
		return c.Status(fiber.StatusCreated).JSON(dto.TransactionResponse{
			ID:        trx.ID,
			TrxType:   trx.TrxType,
			StoreID:   trx.StoreID,
			CreatedBy: trx.CreatedByID,
			PartyID:   trx.PartyID,
			Amount:    trx.Amount,
			CreatedAt: trx.CreatedAt,
		})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// rejectionToResponse mapea cada rechazo tipado del motor a un estado HTTP.
func rejectionToResponse(c *fiber.Ctx, err error) error {
	var missing *domain.MissingFieldError
	if errors.As(err, &missing) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FIELD", Message: "falta el campo " + missing.Field})
	}
	var notFound *domain.NotFoundError
	if errors.As(err, &notFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: notFound.Entity + " no existe"})
	}
	switch {
	case errors.Is(err, domain.ErrInvalidTrxType):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_TRX_TYPE", Message: "trx_type debe ser IN u OUT"})
	case errors.Is(err, domain.ErrInvalidMagnitude):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_MAGNITUDE", Message: "quantity y amount deben ser mayores que cero"})
	case errors.Is(err, domain.ErrUnauthorizedCreator):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED_CREATOR", Message: "solo una cuenta Admin puede figurar como created_by"})
	case errors.Is(err, domain.ErrAmountMismatch):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "AMOUNT_MISMATCH", Message: "amount no coincide con quantity × precio del producto"})
	case errors.Is(err, domain.ErrInsufficientFunds):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_FUNDS", Message: "la tienda no tiene efectivo suficiente"})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "existencias insuficientes para la salida"})
	case errors.Is(err, domain.ErrPostingFailed):
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "POSTING_FAILED", Message: "no se pudo registrar la transacción; reintentar"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

// GetByID godoc
// @Summary      Obtener transacción
// @Tags         transactions
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID del asiento"
// @Success      200  {object}  dto.TransactionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/transactions/{id} [get]
func (h *TransactionHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "transacción no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar transacciones
// @Tags         transactions
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query  int  false  "máximo de filas (default 50)"
// @Param        offset  query  int  false  "desplazamiento (default 0)"
// @Success      200  {object}  dto.TransactionListResponse
// @Router       /api/transactions [get]
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)
	out, err := h.uc.List(limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
