package services

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/AugustoPaz13/RiVelez-SistemaDeGestion-sub000/entity"
	"github.com/AugustoPaz13/RiVelez-SistemaDeGestion-sub000/repository"
	"gorm.io/gorm"
)

// Card terminal simulation: roughly 30% of card payments decline, with one
// of a small set of reasons. The cashier retries with another method.
const cardDeclineRate = 0.30

var declineReasons = []string{
	"Fondos insuficientes",
	"Tarjeta bloqueada",
	"Error de comunicación",
	"Límite de compra excedido",
}

type PaymentService struct {
	DB        *gorm.DB
	Repo      *repository.OrderRepository
	TableRepo *repository.TableRepository

	// Simulated terminal processing time. Zero in tests.
	Delay time.Duration

	// Handlers settle concurrently; the rng is stateful.
	mu  sync.Mutex
	rng *rand.Rand
}

func NewPaymentService(db *gorm.DB, repo *repository.OrderRepository, tableRepo *repository.TableRepository, seed int64) *PaymentService {
	return &PaymentService{
		DB:        db,
		Repo:      repo,
		TableRepo: tableRepo,
		rng:       rand.New(rand.NewSource(seed)),
	}
}

// Settle is the cashier completing collection: run the (simulated) terminal
// for card methods, then mark the order pagado and park the table as pagada
// in one transaction. A decline leaves everything untouched and the cashier
// may retry with any method.
func (s *PaymentService) Settle(orderID uint, metodo entity.PaymentMethod) (*entity.Order, error) {
	if !metodo.Valid() {
		return nil, ErrInvalidPaymentMethod
	}

	order, err := s.getOrder(orderID)
	if err != nil {
		return nil, err
	}
	if order.Estado != entity.StatusListo && order.Estado != entity.StatusEntregado {
		return nil, ErrNotReadyToPay
	}

	if metodo.Card() {
		if decline := s.authorizeCard(); decline != nil {
			return nil, decline
		}
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.MarkPaidGuard(tx, orderID, metodo)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrNotReadyToPay
		}
		// Best effort on the table: if staff already moved it by hand the
		// order row remains the source of truth.
		if _, err := s.TableRepo.MarkPagadaGuard(tx, order.NumeroMesa, order.ID); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.getOrder(orderID)
}

// authorizeCard runs the simulated terminal once. Safe for concurrent
// settlements.
func (s *PaymentService) authorizeCard() *DeclineError {
	if s.Delay > 0 {
		time.Sleep(s.Delay)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.rng.Float64() < cardDeclineRate {
		return &DeclineError{Reason: declineReasons[s.rng.Intn(len(declineReasons))]}
	}
	return nil
}

func (s *PaymentService) getOrder(orderID uint) (*entity.Order, error) {
	o, err := s.Repo.GetOrder(orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	return o, err
}
