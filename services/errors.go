package services

import (
	"errors"
	"fmt"
)

// Not-found family.
var (
	ErrOrderNotFound   = errors.New("pedido no encontrado")
	ErrTableNotFound   = errors.New("mesa no encontrada")
	ErrProductNotFound = errors.New("producto no encontrado")
)

// State conflicts: the request was well formed but the current state forbids
// it. The order/table is left exactly as it was.
var (
	ErrInvalidTransition      = errors.New("transición de estado no permitida")
	ErrCancellationNotAllowed = errors.New("el pedido ya no puede cancelarse")
	ErrPreparationTooEarly    = errors.New("el período de cancelación del cliente sigue abierto")
	ErrTableUnavailable       = errors.New("la mesa no está disponible")
	ErrActiveOrderUnresolved  = errors.New("la mesa tiene un pedido sin resolver")
	ErrNotReadyToPay          = errors.New("el pedido aún no está listo ni entregado")
	ErrOrderClosed            = errors.New("el pedido ya está cerrado")
)

// Validation: rejected before touching the store.
var (
	ErrInvalidTableNumber   = errors.New("número de mesa inválido")
	ErrEmptyOrder           = errors.New("el pedido no tiene items")
	ErrInvalidPaymentMethod = errors.New("método de pago inválido")
)

// DeclineError is the simulated card terminal saying no. Retrying with the
// same or another method is always allowed.
type DeclineError struct {
	Reason string
}

func (e *DeclineError) Error() string {
	return fmt.Sprintf("pago rechazado: %s", e.Reason)
}

// IsStateConflict classifies errors for the HTTP layer: conflicts map to
// 409, everything else keeps its own mapping.
func IsStateConflict(err error) bool {
	for _, e := range []error{
		ErrInvalidTransition, ErrCancellationNotAllowed, ErrPreparationTooEarly,
		ErrTableUnavailable, ErrActiveOrderUnresolved, ErrNotReadyToPay, ErrOrderClosed,
	} {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}
