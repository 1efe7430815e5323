package controllers

import (
	"github.com/AugustoPaz13/RiVelez-SistemaDeGestion-sub000/entity"
	"github.com/AugustoPaz13/RiVelez-SistemaDeGestion-sub000/pkg/resp"
	"github.com/AugustoPaz13/RiVelez-SistemaDeGestion-sub000/services"
	"github.com/gin-gonic/gin"
)

type PaymentController struct{ Svc *services.PaymentService }

func NewPaymentController(s *services.PaymentService) *PaymentController {
	return &PaymentController{Svc: s}
}

// POST /orders/:id/pay {metodoPago: WIRE}, cashier settlement. A decline
// answers 402 with the reason; the cashier retries with another method.
func (pc *PaymentController) Pay(c *gin.Context) {
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
	order, err := pc.Svc.Settle(id, metodo)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, order)
}
