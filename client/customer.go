package client

import (
	"context"
	"time"

	"github.com/AugustoPaz13/RiVelez-SistemaDeGestion-sub000/entity"
	"github.com/AugustoPaz13/RiVelez-SistemaDeGestion-sub000/utils"
)

// Customer drives the table-side flow: the cancel countdown and the payment
// request. The checks here only gate the UI; every call is revalidated by
// the server against its own clock and state.
type Customer struct {
	API *API
	Now utils.Clock
}

func NewCustomer(api *API) *Customer {
	return &Customer{API: api, Now: time.Now}
}

// CanCancel reports whether the cancel button should still be offered, and
// the seconds left on the countdown.
func (c *Customer) CanCancel(o *entity.Order) (bool, int) {
	remaining := utils.RemainingCancelSeconds(o.FechaCreacion, c.Now())
	return o.Estado.Cancellable() && remaining > 0, remaining
}

// Cancel asks the server to cancel. The local countdown may disagree with
// the server's; the server's answer wins.
func (c *Customer) Cancel(ctx context.Context, o *entity.Order) error {
	return c.API.CancelOrder(ctx, o.ID)
}

// CanRequestPayment gates the payment-method dialog: only a served or
// ready-to-serve order can ask for the bill.
func (c *Customer) CanRequestPayment(o *entity.Order) bool {
	return o.Estado == entity.StatusListo || o.Estado == entity.StatusEntregado
}

// RequestPayment flags the order for the cashier with the chosen method.
// The state precondition is checked here first so an out-of-date screen
// fails fast without a round trip.
func (c *Customer) RequestPayment(ctx context.Context, o *entity.Order, metodo entity.PaymentMethod) (*entity.Order, error) {
	if !c.CanRequestPayment(o) {
		return nil, &APIError{Status: 409, Message: "el pedido aún no está listo para pagar"}
	}
	return c.API.MarkReadyToPay(ctx, o.ID, metodo)
}
