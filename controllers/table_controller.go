package controllers

import (
	"github.com/AugustoPaz13/RiVelez-SistemaDeGestion-sub000/entity"
	"github.com/AugustoPaz13/RiVelez-SistemaDeGestion-sub000/pkg/resp"
	"github.com/AugustoPaz13/RiVelez-SistemaDeGestion-sub000/services"
	"github.com/gin-gonic/gin"
)

type TableController struct{ Svc *services.TableService }

func NewTableController(s *services.TableService) *TableController { return &TableController{Svc: s} }

// GET /tables
func (tc *TableController) List(c *gin.Context) {
	items, err := tc.Svc.ListAll()
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /tables/numero/:numero is also the QR deep-link entry: the raw URL
// parameter goes through full validation, a bad number gets an error and
// the client falls back to manual selection.
func (tc *TableController) GetByNumero(c *gin.Context) {
	t, err := tc.Svc.ValidateNumero(c.Param("numero"))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, t)
}

// GET /tables/estado/:estado
func (tc *TableController) ListByStatus(c *gin.Context) {
	estado, err := entity.ParseTableStatusWire(c.Param("estado"))
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	items, err := tc.Svc.ListByStatus(estado)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// POST /tables/:id/release: the party leaves; gated on the order being
// pagado or cancelado. :id is the database id, as on every /tables/:id route.
func (tc *TableController) Release(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	t, err := tc.Svc.ReleaseByID(id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, t)
}

// PATCH /tables/:id/estado {estado: WIRE, ocupantes}
func (tc *TableController) UpdateStatus(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var body struct {
		Estado    string `json:"estado" binding:"required"`
		Ocupantes int    `json:"ocupantes"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	estado, err := entity.ParseTableStatusWire(body.Estado)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	t, err := tc.Svc.UpdateStatus(id, estado, body.Ocupantes)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, t)
}

// ----- Manager CRUD -----

// POST /tables
func (tc *TableController) Create(c *gin.Context) {
	var req services.TableReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	t, err := tc.Svc.Create(&req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, t)
}

// PATCH /tables/:id
func (tc *TableController) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var body struct {
		Capacidad int `json:"capacidad" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	t, err := tc.Svc.UpdateCapacity(id, body.Capacidad)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, t)
}

// DELETE /tables/:id
func (tc *TableController) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := tc.Svc.Delete(id); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
