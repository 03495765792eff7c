package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrInvalidQuantity    = errors.New("cantidad inválida")
)

// QuantityError señala la primera línea inválida de una operación por lotes.
// Row es 1-based para que el mensaje coincida con la fila que envió el cliente.
type QuantityError struct {
	Row    int
	Reason string
	Err    error
}

func (e *QuantityError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("fila %d: %s", e.Row, e.Reason)
	}
	return e.Reason
}

func (e *QuantityError) Unwrap() error { return e.Err }

// NewQuantityError construye el error de lote con la causa de dominio subyacente.
func NewQuantityError(row int, cause error, format string, args ...any) *QuantityError {
	return &QuantityError{Row: row, Reason: fmt.Sprintf(format, args...), Err: cause}
}
