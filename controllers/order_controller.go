package controllers

import (
	"strconv"

	"github.com/AugustoPaz13/RiVelez-SistemaDeGestion-sub000/entity"
	"github.com/AugustoPaz13/RiVelez-SistemaDeGestion-sub000/pkg/resp"
	"github.com/AugustoPaz13/RiVelez-SistemaDeGestion-sub000/services"
	"github.com/gin-gonic/gin"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController { return &OrderController{Svc: s} }

// POST /orders
func (oc *OrderController) Create(c *gin.Context) {
	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	order, err := oc.Svc.Create(&req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, order)
}

// GET /orders/:id
func (oc *OrderController) Detail(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	order, err := oc.Svc.Get(id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, order)
}

// GET /orders/numero/:numero
func (oc *OrderController) DetailByNumero(c *gin.Context) {
	order, err := oc.Svc.GetByNumero(c.Param("numero"))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, order)
}

// GET /orders
func (oc *OrderController) List(c *gin.Context) {
	oc.list(c, oc.Svc.ListAll)
}

// GET /orders/active
func (oc *OrderController) ListActive(c *gin.Context) {
	oc.list(c, oc.Svc.ListActive)
}

// GET /orders/pending → kitchen board
func (oc *OrderController) ListPending(c *gin.Context) {
	oc.list(c, oc.Svc.ListPending)
}

// GET /orders/ready-to-pay → cashier board
func (oc *OrderController) ListReadyToPay(c *gin.Context) {
	oc.list(c, oc.Svc.ListReadyToPay)
}

// GET /orders/table/:numero
func (oc *OrderController) ListByTable(c *gin.Context) {
	numero, err := strconv.Atoi(c.Param("numero"))
	if err != nil {
		resp.BadRequest(c, "número de mesa inválido")
		return
	}
	items, err := oc.Svc.ListByTable(numero)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /orders/status/:estado → estado arrives in wire form (EN_PREPARACION)
func (oc *OrderController) ListByStatus(c *gin.Context) {
	estado, err := entity.ParseOrderStatusWire(c.Param("estado"))
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	items, err := oc.Svc.ListByStatus(estado)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// POST /orders/:id/items
func (oc *OrderController) AddItems(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var items []services.OrderItemIn
	if err := c.ShouldBindJSON(&items); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	order, err := oc.Svc.AddItems(id, items)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, order)
}

// PATCH /orders/:id/status {estado: WIRE}
func (oc *OrderController) UpdateStatus(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var body struct {
		Estado string `json:"estado" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	estado, err := entity.ParseOrderStatusWire(body.Estado)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	order, err := oc.Svc.UpdateStatus(id, estado)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, order)
}

// POST /orders/:id/ready-to-pay {metodoPago: WIRE}
func (oc *OrderController) ReadyToPay(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var body struct {
		MetodoPago string `json:"metodoPago" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	metodo, err := entity.ParsePaymentMethodWire(body.MetodoPago)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	order, err := oc.Svc.MarkReadyToPay(id, metodo)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, order)
}

// DELETE /orders/:id → customer cancellation (window enforced server-side)
func (oc *OrderController) Cancel(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	order, err := oc.Svc.Cancel(id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, order)
}

// DELETE /orders/:id/dismiss → kitchen clears a cancelled order
func (oc *OrderController) Dismiss(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := oc.Svc.Dismiss(id); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"dismissed": true})
}

func (oc *OrderController) list(c *gin.Context, fn func() ([]entity.Order, error)) {
	items, err := fn()
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		resp.BadRequest(c, "id inválido")
		return 0, false
	}
	return uint(id), true
}
