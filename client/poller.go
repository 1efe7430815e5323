package client

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/AugustoPaz13/RiVelez-SistemaDeGestion-sub000/entity"
)

const (
	// The customer view follows its own order closely; the kitchen board
	// refreshes the whole queue at a calmer pace.
	CustomerPollInterval = 2 * time.Second
	KitchenPollInterval  = 5 * time.Second
)

// Poller keeps a local snapshot of an order list in sync with the server by
// polling at a fixed interval. It diffs consecutive snapshots by order id and
// raises each alert exactly once: a new order the first time its id appears,
// a cancellation the first time an id is seen in cancelado. Ids dismissed
// locally never alert again, even before the server confirms the dismissal.
//
// A failed poll is logged and the last good snapshot is kept; the next tick
// retries. A poll that resolves after the context is done is discarded.
type Poller struct {
	fetch    func(ctx context.Context) ([]entity.Order, error)
	interval time.Duration

	// OnNewOrder and OnCancelled receive the alert payloads. Nil handlers
	// are skipped; the diff bookkeeping advances either way.
	OnNewOrder  func(entity.Order)
	OnCancelled func(entity.Order)

	mu        sync.Mutex
	seen      map[uint]bool
	cancelled map[uint]bool // cancellation already alerted
	dismissed map[uint]bool
	snapshot  []entity.Order
}

// NewKitchenPoller follows the kitchen queue: active orders plus
// cancellations not yet dismissed.
func NewKitchenPoller(api *API) *Poller {
	return &Poller{
		fetch:     api.PendingOrders,
		interval:  KitchenPollInterval,
		seen:      map[uint]bool{},
		cancelled: map[uint]bool{},
		dismissed: map[uint]bool{},
	}
}

// NewTablePoller follows the orders of one table for the customer view.
func NewTablePoller(api *API, numeroMesa int) *Poller {
	return &Poller{
		fetch: func(ctx context.Context) ([]entity.Order, error) {
			return api.OrdersByTable(ctx, numeroMesa)
		},
		interval:  CustomerPollInterval,
		seen:      map[uint]bool{},
		cancelled: map[uint]bool{},
		dismissed: map[uint]bool{},
	}
}

// NewCashierPoller follows orders flagged ready to pay.
func NewCashierPoller(api *API) *Poller {
	return &Poller{
		fetch:     api.ReadyToPayOrders,
		interval:  KitchenPollInterval,
		seen:      map[uint]bool{},
		cancelled: map[uint]bool{},
		dismissed: map[uint]bool{},
	}
}

// Run polls until ctx is done. The first poll happens immediately.
func (p *Poller) Run(ctx context.Context) {
	p.poll(ctx)

	t := time.NewTicker(p.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			p.poll(ctx)
		}
	}
}

func (p *Poller) poll(ctx context.Context) {
	orders, err := p.fetch(ctx)
	if err != nil {
		log.Printf("poll: %v (keeping previous snapshot)", err)
		return
	}
	// The fetch may have raced shutdown; a stale result must not fire alerts.
	if ctx.Err() != nil {
		return
	}
	p.apply(orders)
}

func (p *Poller) apply(orders []entity.Order) {
	var news, cancels []entity.Order

	p.mu.Lock()
	p.snapshot = orders
	for _, o := range orders {
		if p.dismissed[o.ID] {
			continue
		}
		if !p.seen[o.ID] {
			p.seen[o.ID] = true
			if o.Estado != entity.StatusCancelado {
				news = append(news, o)
			}
		}
		if o.Estado == entity.StatusCancelado && !p.cancelled[o.ID] {
			p.cancelled[o.ID] = true
			cancels = append(cancels, o)
		}
	}
	p.mu.Unlock()

	// Handlers run outside the lock so they may call back into the poller.
	for _, o := range news {
		if p.OnNewOrder != nil {
			p.OnNewOrder(o)
		}
	}
	for _, o := range cancels {
		if p.OnCancelled != nil {
			p.OnCancelled(o)
		}
	}
}

// Dismiss marks an id as handled locally. The next polls will not alert for
// it even while the server still returns it.
func (p *Poller) Dismiss(id uint) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.dismissed[id] = true
}

// Snapshot returns the last successfully fetched order list.
func (p *Poller) Snapshot() []entity.Order {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]entity.Order, len(p.snapshot))
	copy(out, p.snapshot)
	return out
}
