package controllers

import (
	"errors"
	"net/http"

	"github.com/AugustoPaz13/RiVelez-SistemaDeGestion-sub000/pkg/resp"
	"github.com/AugustoPaz13/RiVelez-SistemaDeGestion-sub000/services"
	"github.com/gin-gonic/gin"
)

// fail translates service errors into the response envelope. State
// conflicts are 409 (the request was fine, the lifecycle said no), declines
// carry their reason for the retry dialog.
func fail(c *gin.Context, err error) {
	var decline *services.DeclineError
	switch {
	case errors.Is(err, services.ErrOrderNotFound),
		errors.Is(err, services.ErrTableNotFound),
		errors.Is(err, services.ErrProductNotFound):
		resp.NotFound(c, err.Error())
	case services.IsStateConflict(err):
		resp.Conflict(c, err.Error())
	case errors.Is(err, services.ErrInvalidTableNumber),
		errors.Is(err, services.ErrEmptyOrder),
		errors.Is(err, services.ErrInvalidPaymentMethod):
		resp.BadRequest(c, err.Error())
	case errors.As(err, &decline):
		c.JSON(http.StatusPaymentRequired, gin.H{"ok": false, "error": decline.Error(), "reason": decline.Reason, "retryable": true})
	default:
		resp.ServerError(c, err)
	}
}
