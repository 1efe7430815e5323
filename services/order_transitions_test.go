package services

import (
	"errors"
	"testing"
	"time"

	"github.com/AugustoPaz13/RiVelez-SistemaDeGestion-sub000/entity"
)

func TestUpdateStatus(t *testing.T) {
	tests := []struct {
		name    string
		from    entity.OrderStatus
		to      entity.OrderStatus
		wantErr error
	}{
		{name: "kitchen acknowledges", from: entity.StatusNuevo, to: entity.StatusRecibido},
		{name: "delay a new order", from: entity.StatusNuevo, to: entity.StatusRetrasado},
		{name: "preparation to ready", from: entity.StatusEnPreparacion, to: entity.StatusListo},
		{name: "resume from delay", from: entity.StatusRetrasado, to: entity.StatusEnPreparacion},
		{name: "delayed straight to ready", from: entity.StatusRetrasado, to: entity.StatusListo},
		{name: "serve", from: entity.StatusListo, to: entity.StatusEntregado},
		{name: "no going back", from: entity.StatusListo, to: entity.StatusRecibido, wantErr: ErrInvalidTransition},
		{name: "cancel during preparation", from: entity.StatusEnPreparacion, to: entity.StatusCancelado, wantErr: ErrCancellationNotAllowed},
		{name: "cancel when ready", from: entity.StatusListo, to: entity.StatusCancelado, wantErr: ErrCancellationNotAllowed},
		{name: "paid is immutable", from: entity.StatusPagado, to: entity.StatusCancelado, wantErr: ErrCancellationNotAllowed},
		{name: "cancelled is immutable", from: entity.StatusCancelado, to: entity.StatusEnPreparacion, wantErr: ErrInvalidTransition},
		// Payment only happens through settlement, never through a status patch.
		{name: "pagado via status patch", from: entity.StatusEntregado, to: entity.StatusPagado, wantErr: ErrInvalidTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			o := f.placeOrder(1)
			f.forceEstado(o.ID, tt.from)
			f.advance(entity.CancelWindow + time.Second)

			got, err := f.orders.UpdateStatus(o.ID, tt.to)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("UpdateStatus(%s→%s) error = %v, want %v", tt.from, tt.to, err, tt.wantErr)
				}
				if cur := f.reload(o.ID); cur.Estado != tt.from {
					t.Errorf("estado changed to %s on rejected transition", cur.Estado)
				}
				return
			}
			if err != nil {
				t.Fatalf("UpdateStatus(%s→%s): %v", tt.from, tt.to, err)
			}
			if got.Estado != tt.to {
				t.Errorf("estado = %s, want %s", got.Estado, tt.to)
			}
		})
	}
}

func TestStartPreparationRespectsWindow(t *testing.T) {
	f := newFixture(t)
	o := f.placeOrder(1)

	// The customer's 120 seconds are still running.
	if _, err := f.orders.StartPreparation(o.ID); !errors.Is(err, ErrPreparationTooEarly) {
		t.Fatalf("start at t=0: error = %v, want %v", err, ErrPreparationTooEarly)
	}

	f.advance(119 * time.Second)
	if _, err := f.orders.StartPreparation(o.ID); !errors.Is(err, ErrPreparationTooEarly) {
		t.Fatalf("start at t=119s: error = %v, want %v", err, ErrPreparationTooEarly)
	}

	f.advance(2 * time.Second)
	got, err := f.orders.StartPreparation(o.ID)
	if err != nil {
		t.Fatalf("start at t=121s: %v", err)
	}
	if got.Estado != entity.StatusEnPreparacion {
		t.Errorf("estado = %s, want en-preparacion", got.Estado)
	}
}

func TestCancelWindowTicks(t *testing.T) {
	tests := []struct {
		name    string
		elapsed time.Duration
		wantErr error
	}{
		{name: "immediately", elapsed: 0},
		{name: "one second left", elapsed: 119 * time.Second},
		{name: "exactly at the deadline", elapsed: 120 * time.Second, wantErr: ErrCancellationNotAllowed},
		{name: "after the deadline", elapsed: 121 * time.Second, wantErr: ErrCancellationNotAllowed},
		{name: "long after", elapsed: 150 * time.Second, wantErr: ErrCancellationNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			o := f.placeOrder(1)
			f.advance(tt.elapsed)

			got, err := f.orders.Cancel(o.ID)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("cancel after %s: error = %v, want %v", tt.elapsed, err, tt.wantErr)
				}
				if cur := f.reload(o.ID); cur.Estado != entity.StatusNuevo {
					t.Errorf("rejected cancel changed estado to %s", cur.Estado)
				}
				return
			}
			if err != nil {
				t.Fatalf("cancel after %s: %v", tt.elapsed, err)
			}
			if got.Estado != entity.StatusCancelado {
				t.Errorf("estado = %s, want cancelado", got.Estado)
			}
			// The table stays bound until staff releases it.
			if tbl := f.table(1); tbl.Estado != entity.TableOcupada {
				t.Errorf("table estado = %s after cancel, want ocupada", tbl.Estado)
			}
		})
	}
}

func TestCancelAfterAcknowledge(t *testing.T) {
	f := newFixture(t)
	o := f.placeOrder(1)

	// Kitchen acknowledgement does not shorten the customer's window.
	if _, err := f.orders.Acknowledge(o.ID); err != nil {
		t.Fatalf("acknowledge: %v", err)
	}
	f.advance(60 * time.Second)

	got, err := f.orders.Cancel(o.ID)
	if err != nil {
		t.Fatalf("cancel recibido at t=60s: %v", err)
	}
	if got.Estado != entity.StatusCancelado {
		t.Errorf("estado = %s, want cancelado", got.Estado)
	}
}

func TestCancelStaleClientApproval(t *testing.T) {
	f := newFixture(t)
	o := f.placeOrder(1)

	// The screen showed 0:01 remaining, but the request only lands after the
	// deadline. The server's clock decides.
	f.advance(121 * time.Second)
	if _, err := f.orders.Cancel(o.ID); !errors.Is(err, ErrCancellationNotAllowed) {
		t.Errorf("late cancel: error = %v, want %v", err, ErrCancellationNotAllowed)
	}
}

func TestDelayRoundTrip(t *testing.T) {
	f := newFixture(t)
	o := f.placeOrder(1)
	f.advance(entity.CancelWindow + time.Second)

	if _, err := f.orders.StartPreparation(o.ID); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := f.orders.MarkDelayed(o.ID); err != nil {
		t.Fatalf("delay: %v", err)
	}
	if _, err := f.orders.ResumePreparation(o.ID); err != nil {
		t.Fatalf("resume: %v", err)
	}
	// Delay is reversible any number of times.
	if _, err := f.orders.MarkDelayed(o.ID); err != nil {
		t.Fatalf("delay again: %v", err)
	}
	got, err := f.orders.MarkReady(o.ID)
	if err != nil {
		t.Fatalf("ready from retrasado: %v", err)
	}
	if got.Estado != entity.StatusListo {
		t.Errorf("estado = %s, want listo", got.Estado)
	}
}

func TestDismissIdempotent(t *testing.T) {
	f := newFixture(t)
	o := f.placeOrder(1)

	// Only cancelled orders can be dismissed.
	if err := f.orders.Dismiss(o.ID); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("dismiss active order: error = %v, want %v", err, ErrInvalidTransition)
	}

	if _, err := f.orders.Cancel(o.ID); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if err := f.orders.Dismiss(o.ID); err != nil {
		t.Fatalf("dismiss: %v", err)
	}
	// Dismissing twice is the same as dismissing once.
	if err := f.orders.Dismiss(o.ID); err != nil {
		t.Fatalf("second dismiss: %v", err)
	}
}

func TestUpdateStatusResumesFromDelay(t *testing.T) {
	f := newFixture(t)
	o := f.placeOrder(1)
	f.forceEstado(o.ID, entity.StatusRetrasado)

	// EN_PREPARACION on a delayed order is a resume, not a kitchen start, so
	// the cancellation-window check does not apply.
	got, err := f.orders.UpdateStatus(o.ID, entity.StatusEnPreparacion)
	if err != nil {
		t.Fatalf("resume via status patch: %v", err)
	}
	if got.Estado != entity.StatusEnPreparacion {
		t.Errorf("estado = %s, want en-preparacion", got.Estado)
	}
}

func TestUpdateStatusUnknownOrder(t *testing.T) {
	f := newFixture(t)
	if _, err := f.orders.UpdateStatus(9999, entity.StatusRecibido); !errors.Is(err, ErrOrderNotFound) {
		t.Errorf("error = %v, want %v", err, ErrOrderNotFound)
	}
}
