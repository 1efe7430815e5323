package repository

import (
	"time"

	"github.com/AugustoPaz13/RiVelez-SistemaDeGestion-sub000/entity"
	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

// POST /orders → items are created with the order in one insert
func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	return r.GetOrderIn(r.DB, orderID)
}

// GetOrderIn reads through the given handle. Callers classifying a zero-row
// guard must pass their open tx: a fresh connection would block on the
// write lock the tx itself holds.
func (r *OrderRepository) GetOrderIn(db *gorm.DB, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := db.Preload("Items").First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderByNumero(numeroPedido string) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("Items").Where("numero_pedido = ?", numeroPedido).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// GET /orders
func (r *OrderRepository) ListAll() ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.Preload("Items").Order("id DESC").Find(&out).Error
	return out, err
}

// GET /orders/active → everything not yet settled or cancelled
func (r *OrderRepository) ListActive() ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.Preload("Items").
		Where("estado NOT IN ?", []entity.OrderStatus{entity.StatusPagado, entity.StatusCancelado}).
		Order("id").Find(&out).Error
	return out, err
}

// GET /orders/pending → the kitchen board. Cancelled orders stay on it until
// the kitchen dismisses them; delivered and paid orders are not its problem.
func (r *OrderRepository) ListPending() ([]entity.Order, error) {
	kitchen := []entity.OrderStatus{
		entity.StatusNuevo, entity.StatusRecibido, entity.StatusEnPreparacion,
		entity.StatusRetrasado, entity.StatusListo,
	}
	var out []entity.Order
	err := r.DB.Preload("Items").
		Where("estado IN ?", kitchen).
		Or("estado = ? AND descartado = ?", entity.StatusCancelado, false).
		Order("fecha_creacion").Find(&out).Error
	return out, err
}

// GET /orders/table/:numero
func (r *OrderRepository) ListByTable(numeroMesa int) ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.Preload("Items").Where("numero_mesa = ?", numeroMesa).
		Order("id DESC").Find(&out).Error
	return out, err
}

// GET /orders/status/:estado
func (r *OrderRepository) ListByStatus(estado entity.OrderStatus) ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.Preload("Items").Where("estado = ?", estado).
		Order("id DESC").Find(&out).Error
	return out, err
}

// GET /orders/ready-to-pay → cashier board: tables that asked for the bill
func (r *OrderRepository) ListReadyToPay() ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.Preload("Items").
		Where("listo_para_pagar = ? AND estado IN ?", true,
			[]entity.OrderStatus{entity.StatusListo, entity.StatusEntregado}).
		Order("fecha_actualizacion").Find(&out).Error
	return out, err
}

// ---------------- Guarded updates ----------------
//
// Every transition is a conditional UPDATE; zero rows affected means the
// order moved underneath us and the caller reports a state conflict.

func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, from []entity.OrderStatus, to entity.OrderStatus) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND estado IN ?", orderID, from).
		Update("estado", to)
	return res.RowsAffected, res.Error
}

// CancelGuard additionally re-checks the window inside the UPDATE: the
// client countdown is advisory, this predicate is the authority.
func (r *OrderRepository) CancelGuard(tx *gorm.DB, orderID uint, earliestCreation time.Time) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND estado IN ? AND fecha_creacion > ?",
			orderID, []entity.OrderStatus{entity.StatusNuevo, entity.StatusRecibido}, earliestCreation).
		Update("estado", entity.StatusCancelado)
	return res.RowsAffected, res.Error
}

// StartPreparationGuard is the mirror image: preparation may begin only
// once the customer's window has elapsed.
func (r *OrderRepository) StartPreparationGuard(tx *gorm.DB, orderID uint, latestCreation time.Time) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND estado IN ? AND fecha_creacion <= ?",
			orderID, []entity.OrderStatus{entity.StatusNuevo, entity.StatusRecibido}, latestCreation).
		Update("estado", entity.StatusEnPreparacion)
	return res.RowsAffected, res.Error
}

// SetReadyToPayGuard sets the flag + requested method; last write wins.
func (r *OrderRepository) SetReadyToPayGuard(tx *gorm.DB, orderID uint, metodo entity.PaymentMethod) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND estado IN ?", orderID,
			[]entity.OrderStatus{entity.StatusListo, entity.StatusEntregado}).
		Updates(map[string]any{
			"listo_para_pagar":       true,
			"metodo_pago_solicitado": metodo,
		})
	return res.RowsAffected, res.Error
}

func (r *OrderRepository) MarkPaidGuard(tx *gorm.DB, orderID uint, metodo entity.PaymentMethod) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND estado IN ?", orderID,
			[]entity.OrderStatus{entity.StatusListo, entity.StatusEntregado}).
		Updates(map[string]any{
			"estado":      entity.StatusPagado,
			"metodo_pago": metodo,
		})
	return res.RowsAffected, res.Error
}

// DismissGuard only ever flips the flag on a cancelled order, so repeating
// it is harmless.
func (r *OrderRepository) DismissGuard(tx *gorm.DB, orderID uint) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND estado = ?", orderID, entity.StatusCancelado).
		Update("descartado", true)
	return res.RowsAffected, res.Error
}

// ---------------- Order items ----------------

func (r *OrderRepository) AppendItems(tx *gorm.DB, orderID uint, items []entity.OrderItem) error {
	for i := range items {
		items[i].OrderID = orderID
		if err := tx.Create(&items[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *OrderRepository) UpdateTotals(tx *gorm.DB, o *entity.Order) error {
	return tx.Model(&entity.Order{}).Where("id = ?", o.ID).
		Updates(map[string]any{
			"subtotal": o.Subtotal,
			"propina":  o.Propina,
			"total":    o.Total,
		}).Error
}

// ---------------- Helpers ----------------

// CountCreatedSince feeds the daily sequence in the numeroPedido.
func (r *OrderRepository) CountCreatedSince(since time.Time) (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.Order{}).Where("fecha_creacion >= ?", since).Count(&cnt).Error
	return cnt, err
}
