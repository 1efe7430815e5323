package controllers

import (
	"github.com/AugustoPaz13/RiVelez-SistemaDeGestion-sub000/pkg/resp"
	"github.com/AugustoPaz13/RiVelez-SistemaDeGestion-sub000/services"
	"github.com/AugustoPaz13/RiVelez-SistemaDeGestion-sub000/utils"
	"github.com/gin-gonic/gin"
)

type AuthController struct{ Svc *services.AuthService }

func NewAuthController(s *services.AuthService) *AuthController { return &AuthController{Svc: s} }

// POST /auth/login
func (ac *AuthController) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	token, user, err := ac.Svc.Login(req.Email, req.Password)
	if err != nil {
		resp.Unauthorized(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"token": token, "user": user})
}

// GET /auth/me
func (ac *AuthController) Me(c *gin.Context) {
	resp.OK(c, gin.H{"userId": utils.CurrentUserID(c), "role": utils.CurrentRole(c)})
}
