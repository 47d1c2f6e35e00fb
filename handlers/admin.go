package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotelbook/backend"
)

type AdminHandler struct {
	Auth backend.AuthAPI
}

func NewAdminHandler(auth backend.AuthAPI) *AdminHandler {
	return &AdminHandler{Auth: auth}
}

// GetAllUsersHandler lists every account for user management.
func (h *AdminHandler) GetAllUsersHandler(c *gin.Context) {
	users, err := h.Auth.GetUsers(c.Request.Context(), token(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}
