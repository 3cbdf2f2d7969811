package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas). Las fallas de validación se
// devuelven siempre como alguno de estos valores tipados, nunca como errores
// opacos de infraestructura.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrDuplicateName      = errors.New("el nombre ya está en uso")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidRole        = errors.New("rol de cuenta inválido")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")

	// Rechazos del validador de transacciones, en el orden en que se chequean.
	ErrMissingField        = errors.New("campo requerido ausente")
	ErrInvalidTrxType      = errors.New("trx_type debe ser IN u OUT")
	ErrInvalidMagnitude    = errors.New("quantity y amount deben ser positivos")
	ErrUnauthorizedCreator = errors.New("created_by debe ser una cuenta Admin")
	ErrAmountMismatch      = errors.New("amount no coincide con quantity * precio")
	ErrInsufficientFunds   = errors.New("efectivo insuficiente en la tienda")
	ErrInsufficientStock   = errors.New("stock insuficiente")

	// ErrPostingFailed cubre conflictos de integridad en la unidad atómica de
	// trabajo: el rollback ya está garantizado y el caller puede reintentar
	// la misma solicitud tal cual.
	ErrPostingFailed = errors.New("no se pudo registrar la transacción")
)

// MissingFieldError indica qué campo faltó en la solicitud.
// errors.Is(err, ErrMissingField) devuelve true.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("campo requerido ausente: %s", e.Field)
}

func (e *MissingFieldError) Is(target error) bool { return target == ErrMissingField }

// NotFoundError indica qué entidad referenciada no existe.
// errors.Is(err, ErrNotFound) devuelve true.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s no encontrado", e.Entity)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }
