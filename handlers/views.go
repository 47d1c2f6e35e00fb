package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotelbook/middleware"
	"hotelbook/models"
	"hotelbook/services/guard"
)

type viewPayload struct {
	View         string             `json:"view"`
	RequiredRole string             `json:"requiredRole,omitempty"`
	Session      models.SessionView `json:"session"`
}

// ViewHandler renders a view descriptor once ViewGuard has admitted the navigation.
func ViewHandler(c *gin.Context) {
	view := c.Param("view")
	payload := viewPayload{
		View:    view,
		Session: middleware.CurrentSession(c).View(middleware.Scope(c)),
	}
	if role, ok := guard.RequiredRole(view); ok {
		payload.RequiredRole = role.String()
	}
	c.JSON(http.StatusOK, payload)
}
