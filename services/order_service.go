package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/AugustoPaz13/RiVelez-SistemaDeGestion-sub000/entity"
	"github.com/AugustoPaz13/RiVelez-SistemaDeGestion-sub000/repository"
	"github.com/AugustoPaz13/RiVelez-SistemaDeGestion-sub000/utils"
	"gorm.io/gorm"
)

type OrderService struct {
	DB          *gorm.DB
	Repo        *repository.OrderRepository
	TableRepo   *repository.TableRepository
	ProductRepo *repository.ProductRepository

	Now utils.Clock
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	tableRepo *repository.TableRepository,
	productRepo *repository.ProductRepository,
) *OrderService {
	return &OrderService{
		DB:          db,
		Repo:        repo,
		TableRepo:   tableRepo,
		ProductRepo: productRepo,
		Now:         time.Now,
	}
}

// ----- DTOs from the controller -----

type OrderItemIn struct {
	ProductoID    uint   `json:"productoId" binding:"required"`
	Cantidad      int    `json:"cantidad" binding:"required,min=1"`
	Observaciones string `json:"observaciones"`
}

type CreateOrderReq struct {
	NumeroMesa int           `json:"numeroMesa" binding:"required"`
	Personas   int           `json:"personas" binding:"required,min=1"`
	Items      []OrderItemIn `json:"items" binding:"required,min=1"`
}

// ----- Create -----

// Create places a new order and seats the party: the order insert and the
// table occupation happen in one transaction, so a table can never hold two
// active orders.
func (s *OrderService) Create(req *CreateOrderReq) (*entity.Order, error) {
	if len(req.Items) == 0 {
		return nil, ErrEmptyOrder
	}

	table, err := s.TableRepo.GetByNumero(req.NumeroMesa)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTableNotFound
		}
		return nil, err
	}
	if table.Estado != entity.TableDisponible {
		return nil, ErrTableUnavailable
	}

	items, err := s.buildItems(req.Items)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	numero, err := s.nextNumeroPedido(now)
	if err != nil {
		return nil, err
	}

	order := entity.Order{
		NumeroPedido:  numero,
		NumeroMesa:    req.NumeroMesa,
		Personas:      req.Personas,
		Estado:        entity.StatusNuevo,
		Items:         items,
		FechaCreacion: now,
	}
	order.RecalcularTotales()

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}
		affected, err := s.TableRepo.OccupyGuard(tx, req.NumeroMesa, req.Personas, order.ID, now)
		if err != nil {
			return err
		}
		if affected == 0 {
			// Someone took the table between our read and the guard.
			return ErrTableUnavailable
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// AddItems appends lines to an open order atomically and recomputes totals.
func (s *OrderService) AddItems(orderID uint, in []OrderItemIn) (*entity.Order, error) {
	if len(in) == 0 {
		return nil, ErrEmptyOrder
	}

	order, err := s.getOrder(orderID)
	if err != nil {
		return nil, err
	}
	if order.Estado.Terminal() {
		return nil, ErrOrderClosed
	}

	items, err := s.buildItems(in)
	if err != nil {
		return nil, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.AppendItems(tx, order.ID, items); err != nil {
			return err
		}
		order.Items = append(order.Items, items...)
		order.RecalcularTotales()
		return s.Repo.UpdateTotals(tx, order)
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// ----- Payment negotiation (customer side) -----

// MarkReadyToPay records that the table wants the bill and by which method.
// It never changes the estado; the cashier's board polls for the flag.
// Re-requests overwrite the previous method (last write wins).
func (s *OrderService) MarkReadyToPay(orderID uint, metodo entity.PaymentMethod) (*entity.Order, error) {
	if !metodo.Valid() {
		return nil, ErrInvalidPaymentMethod
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.SetReadyToPayGuard(tx, orderID, metodo)
		if err != nil {
			return err
		}
		if affected == 0 {
			if _, err := s.getOrderIn(tx, orderID); err != nil {
				return err
			}
			return ErrNotReadyToPay
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.getOrder(orderID)
}

// ----- Listings -----

func (s *OrderService) Get(orderID uint) (*entity.Order, error) {
	return s.getOrder(orderID)
}

func (s *OrderService) GetByNumero(numeroPedido string) (*entity.Order, error) {
	o, err := s.Repo.GetOrderByNumero(numeroPedido)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	return o, err
}

func (s *OrderService) ListAll() ([]entity.Order, error)        { return s.Repo.ListAll() }
func (s *OrderService) ListActive() ([]entity.Order, error)     { return s.Repo.ListActive() }
func (s *OrderService) ListPending() ([]entity.Order, error)    { return s.Repo.ListPending() }
func (s *OrderService) ListReadyToPay() ([]entity.Order, error) { return s.Repo.ListReadyToPay() }

func (s *OrderService) ListByTable(numeroMesa int) ([]entity.Order, error) {
	return s.Repo.ListByTable(numeroMesa)
}

func (s *OrderService) ListByStatus(estado entity.OrderStatus) ([]entity.Order, error) {
	return s.Repo.ListByStatus(estado)
}

// ----- Helpers -----

func (s *OrderService) getOrder(orderID uint) (*entity.Order, error) {
	o, err := s.Repo.GetOrder(orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	return o, err
}

// getOrderIn is the in-transaction variant for classifying zero-row guards.
func (s *OrderService) getOrderIn(tx *gorm.DB, orderID uint) (*entity.Order, error) {
	o, err := s.Repo.GetOrderIn(tx, orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	return o, err
}

// buildItems snapshots product name, category and price into order lines.
func (s *OrderService) buildItems(in []OrderItemIn) ([]entity.OrderItem, error) {
	items := make([]entity.OrderItem, 0, len(in))
	for _, it := range in {
		if it.Cantidad < 1 {
			return nil, ErrEmptyOrder
		}
		p, err := s.ProductRepo.Get(it.ProductoID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrProductNotFound
			}
			return nil, err
		}
		if !p.Disponible {
			return nil, ErrProductNotFound
		}
		items = append(items, entity.OrderItem{
			ProductoID:        p.ID,
			NombreProducto:    p.Nombre,
			CategoriaProducto: p.Categoria,
			ImagenProducto:    p.Imagen,
			Cantidad:          it.Cantidad,
			PrecioUnitario:    p.Precio,
			Subtotal:          p.Precio * int64(it.Cantidad),
			Observaciones:     it.Observaciones,
		})
	}
	return items, nil
}

// nextNumeroPedido generates PED-YYYYMMDD-NNNN with a daily sequence.
func (s *OrderService) nextNumeroPedido(now time.Time) (string, error) {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	count, err := s.Repo.CountCreatedSince(midnight)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("PED-%s-%04d", now.Format("20060102"), count+1), nil
}
