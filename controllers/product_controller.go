package controllers

import (
	"github.com/AugustoPaz13/RiVelez-SistemaDeGestion-sub000/pkg/resp"
	"github.com/AugustoPaz13/RiVelez-SistemaDeGestion-sub000/repository"
	"github.com/gin-gonic/gin"
)

type ProductController struct{ Repo *repository.ProductRepository }

func NewProductController(r *repository.ProductRepository) *ProductController {
	return &ProductController{Repo: r}
}

// GET /products?categoria= → the digital menu
func (pc *ProductController) List(c *gin.Context) {
	categoria := c.Query("categoria")

	var err error
	var items any
	if categoria != "" {
		items, err = pc.Repo.ListByCategoria(categoria)
	} else {
		items, err = pc.Repo.ListAvailable()
	}
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}
