package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"hotelbook/middleware"
	"hotelbook/services/session"
)

type SessionHandler struct {
	Sessions session.SessionService
}

func NewSessionHandler(sessions session.SessionService) *SessionHandler {
	return &SessionHandler{Sessions: sessions}
}

// GetSessionHandler reports who is logged in for the caller's scope.
func (h *SessionHandler) GetSessionHandler(c *gin.Context) {
	scope := middleware.Scope(c)
	sess, err := h.Sessions.Current(c.Request.Context(), scope)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess.View(scope))
}

// SessionEventsHandler streams session changes as server-sent events until
// the client goes away or the scope logs out.
func (h *SessionHandler) SessionEventsHandler(c *gin.Context) {
	updates, cancel := h.Sessions.Subscribe(c.Request.Context(), middleware.Scope(c))
	defer cancel()

	c.Stream(func(w io.Writer) bool {
		select {
		case <-c.Request.Context().Done():
			return false
		case view, ok := <-updates:
			if !ok {
				return false
			}
			c.SSEvent("session", view)
			return true
		}
	})
}
