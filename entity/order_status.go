package entity

import (
	"fmt"
	"strings"
	"time"
)

// OrderStatus is the internal (display) vocabulary. The wire vocabulary is
// upper snake case (NUEVO, EN_PREPARACION, ...); see Wire / ParseOrderStatusWire.
type OrderStatus string

const (
	StatusNuevo         OrderStatus = "nuevo"
	StatusRecibido      OrderStatus = "recibido"
	StatusEnPreparacion OrderStatus = "en-preparacion"
	StatusListo         OrderStatus = "listo"
	StatusEntregado     OrderStatus = "entregado"
	StatusPagado        OrderStatus = "pagado"
	StatusRetrasado     OrderStatus = "retrasado"
	StatusCancelado     OrderStatus = "cancelado"
)

// CancelWindow is the period after creation during which the customer may
// cancel unilaterally. The kitchen cannot start preparation before it elapses.
const CancelWindow = 120 * time.Second

var orderTransitions = map[OrderStatus][]OrderStatus{
	StatusNuevo:         {StatusRecibido, StatusEnPreparacion, StatusRetrasado, StatusCancelado},
	StatusRecibido:      {StatusEnPreparacion, StatusRetrasado, StatusCancelado},
	StatusEnPreparacion: {StatusRetrasado, StatusListo},
	StatusRetrasado:     {StatusEnPreparacion, StatusListo},
	StatusListo:         {StatusEntregado, StatusPagado},
	StatusEntregado:     {StatusPagado},
	StatusPagado:        {},
	StatusCancelado:     {},
}

func (s OrderStatus) Valid() bool {
	_, ok := orderTransitions[s]
	return ok
}

// CanTransition reports whether s → to is a legal move in the lifecycle.
func (s OrderStatus) CanTransition(to OrderStatus) bool {
	for _, n := range orderTransitions[s] {
		if n == to {
			return true
		}
	}
	return false
}

// Terminal statuses release the table for cleanup/release purposes.
func (s OrderStatus) Terminal() bool {
	return s == StatusPagado || s == StatusCancelado
}

// Cancellable reports whether the status still allows customer cancellation.
// RECIBIDO counts the same as NUEVO: kitchen acknowledgement does not shorten
// the customer's window.
func (s OrderStatus) Cancellable() bool {
	return s == StatusNuevo || s == StatusRecibido
}

func (s OrderStatus) Wire() string {
	return strings.ToUpper(strings.ReplaceAll(string(s), "-", "_"))
}

func ParseOrderStatusWire(v string) (OrderStatus, error) {
	s := OrderStatus(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(v)), "_", "-"))
	if !s.Valid() {
		return "", fmt.Errorf("unknown order status: %q", v)
	}
	return s, nil
}

// CanBeCancelled is derived on every evaluation, never stored: the customer
// may cancel only while the order is still NUEVO/RECIBIDO and the window has
// not elapsed. Client countdowns are advisory; this same check runs on the
// server for every cancel and start-preparation call.
func CanBeCancelled(estado OrderStatus, fechaCreacion, now time.Time) bool {
	return estado.Cancellable() && now.Sub(fechaCreacion) < CancelWindow
}
