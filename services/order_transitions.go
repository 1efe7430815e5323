package services

import (
	"github.com/AugustoPaz13/RiVelez-SistemaDeGestion-sub000/entity"
	"gorm.io/gorm"
)

// Lifecycle transitions. Every action is a guarded UPDATE inside a
// transaction; zero rows affected means the order moved under us and the
// caller gets a state conflict, never a partial effect.

// ----- Kitchen actions -----

// Acknowledge marks a fresh order as seen by the kitchen. It does not
// shorten the customer's cancellation window.
func (s *OrderService) Acknowledge(orderID uint) (*entity.Order, error) {
	return s.guarded(orderID, func(tx *gorm.DB) (int64, error) {
		return s.Repo.UpdateStatusGuard(tx, orderID,
			[]entity.OrderStatus{entity.StatusNuevo}, entity.StatusRecibido)
	}, ErrInvalidTransition)
}

// StartPreparation begins cooking. The customer's 120-second window must
// have elapsed first; the kitchen UI blocks this early, and this guard
// enforces it regardless of what any client computed.
func (s *OrderService) StartPreparation(orderID uint) (*entity.Order, error) {
	now := s.Now()
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.StartPreparationGuard(tx, orderID, now.Add(-entity.CancelWindow))
		if err != nil {
			return err
		}
		if affected == 0 {
			o, err := s.getOrderIn(tx, orderID)
			if err != nil {
				return err
			}
			if entity.CanBeCancelled(o.Estado, o.FechaCreacion, now) {
				return ErrPreparationTooEarly
			}
			return ErrInvalidTransition
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.getOrder(orderID)
}

// MarkDelayed flags the order as running late. Reversible any number of
// times via ResumePreparation.
func (s *OrderService) MarkDelayed(orderID uint) (*entity.Order, error) {
	return s.guarded(orderID, func(tx *gorm.DB) (int64, error) {
		return s.Repo.UpdateStatusGuard(tx, orderID,
			[]entity.OrderStatus{entity.StatusNuevo, entity.StatusRecibido, entity.StatusEnPreparacion},
			entity.StatusRetrasado)
	}, ErrInvalidTransition)
}

func (s *OrderService) ResumePreparation(orderID uint) (*entity.Order, error) {
	return s.guarded(orderID, func(tx *gorm.DB) (int64, error) {
		return s.Repo.UpdateStatusGuard(tx, orderID,
			[]entity.OrderStatus{entity.StatusRetrasado}, entity.StatusEnPreparacion)
	}, ErrInvalidTransition)
}

func (s *OrderService) MarkReady(orderID uint) (*entity.Order, error) {
	return s.guarded(orderID, func(tx *gorm.DB) (int64, error) {
		return s.Repo.UpdateStatusGuard(tx, orderID,
			[]entity.OrderStatus{entity.StatusEnPreparacion, entity.StatusRetrasado},
			entity.StatusListo)
	}, ErrInvalidTransition)
}

// MarkDelivered is the optional serving confirmation.
func (s *OrderService) MarkDelivered(orderID uint) (*entity.Order, error) {
	return s.guarded(orderID, func(tx *gorm.DB) (int64, error) {
		return s.Repo.UpdateStatusGuard(tx, orderID,
			[]entity.OrderStatus{entity.StatusListo}, entity.StatusEntregado)
	}, ErrInvalidTransition)
}

// ----- Customer cancellation -----

// Cancel is the customer's unilateral exit: only while the order is still
// NUEVO/RECIBIDO and within the window. The guard re-checks both inside the
// UPDATE; whatever the client's countdown said is irrelevant here. The
// order row is kept; the table stays bound until an explicit release.
func (s *OrderService) Cancel(orderID uint) (*entity.Order, error) {
	now := s.Now()
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.CancelGuard(tx, orderID, now.Add(-entity.CancelWindow))
		if err != nil {
			return err
		}
		if affected == 0 {
			if _, err := s.getOrderIn(tx, orderID); err != nil {
				return err
			}
			return ErrCancellationNotAllowed
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.getOrder(orderID)
}

// ----- Kitchen dismissal of cancelled orders -----

// Dismiss clears a cancelled order from the kitchen board. It only flips a
// flag, so dismissing twice is the same as dismissing once.
func (s *OrderService) Dismiss(orderID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.DismissGuard(tx, orderID)
		if err != nil {
			return err
		}
		if affected == 0 {
			o, err := s.getOrderIn(tx, orderID)
			if err != nil {
				return err
			}
			if o.Estado == entity.StatusCancelado {
				// Already dismissed; same outcome.
				return nil
			}
			return ErrInvalidTransition
		}
		return nil
	})
}

// ----- Generic dispatcher for PATCH /orders/:id/status -----

// UpdateStatus routes a requested target status to the matching action.
// PAGADO is deliberately absent: payment only happens through settlement.
func (s *OrderService) UpdateStatus(orderID uint, to entity.OrderStatus) (*entity.Order, error) {
	switch to {
	case entity.StatusRecibido:
		return s.Acknowledge(orderID)
	case entity.StatusEnPreparacion:
		// Resume from retrasado first; otherwise it is a kitchen start.
		o, err := s.guarded(orderID, func(tx *gorm.DB) (int64, error) {
			return s.Repo.UpdateStatusGuard(tx, orderID,
				[]entity.OrderStatus{entity.StatusRetrasado}, entity.StatusEnPreparacion)
		}, ErrInvalidTransition)
		if err == nil {
			return o, nil
		}
		return s.StartPreparation(orderID)
	case entity.StatusRetrasado:
		return s.MarkDelayed(orderID)
	case entity.StatusListo:
		return s.MarkReady(orderID)
	case entity.StatusEntregado:
		return s.MarkDelivered(orderID)
	case entity.StatusCancelado:
		return s.Cancel(orderID)
	default:
		return nil, ErrInvalidTransition
	}
}

// guarded wraps the rows-affected pattern: run the guard in a transaction,
// translate zero rows into conflictErr, reload the order on success.
func (s *OrderService) guarded(orderID uint, guard func(tx *gorm.DB) (int64, error), conflictErr error) (*entity.Order, error) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := guard(tx)
		if err != nil {
			return err
		}
		if affected == 0 {
			if _, err := s.getOrderIn(tx, orderID); err != nil {
				return err
			}
			return conflictErr
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.getOrder(orderID)
}
