package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"hotelbook/models"
	"hotelbook/services/guard"
	"hotelbook/services/session"
	"hotelbook/utils"
)

// SessionReader is the part of the session manager the guards need.
type SessionReader interface {
	Authenticated(ctx context.Context, scope string) (*models.Session, error)
}

// RequireRole admits only a live session with the given role; any role when role is RoleNone.
func RequireRole(sessions SessionReader, role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, err := sessions.Authenticated(c.Request.Context(), Scope(c))
		switch {
		case errors.Is(err, session.ErrNotLoggedIn), errors.Is(err, session.ErrSessionExpired):
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse{Message: "Authentication required", Details: err.Error()})
			return
		case err != nil:
			c.AbortWithStatusJSON(http.StatusInternalServerError, utils.ErrorResponse{Message: "Session lookup failed", Details: err.Error()})
			return
		}
		if role != models.RoleNone {
			if err := guard.Authorize(true, sess.Role, role); err != nil {
				c.AbortWithStatusJSON(http.StatusForbidden, utils.ErrorResponse{Message: "Access denied", Details: err.Error()})
				return
			}
		}
		c.Set(utils.ContextSessionKey, sess)
		c.Next()
	}
}

// RequireLogin admits any live session.
func RequireLogin(sessions SessionReader) gin.HandlerFunc {
	return RequireRole(sessions, models.RoleNone)
}

// ViewGuard redirects to "/" unless the session may open the :view route.
func ViewGuard(sessions SessionReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		view := c.Param("view")
		role := models.RoleNone
		sess, err := sessions.Authenticated(c.Request.Context(), Scope(c))
		if err == nil {
			role = sess.Role
			c.Set(utils.ContextSessionKey, sess)
		}
		decision := guard.CanActivate(view, err == nil, role)
		if !decision.Allowed {
			c.Redirect(http.StatusFound, decision.Redirect)
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentSession returns the session a guard admitted, if any.
func CurrentSession(c *gin.Context) *models.Session {
	if v, ok := c.Get(utils.ContextSessionKey); ok {
		if sess, ok := v.(*models.Session); ok {
			return sess
		}
	}
	return nil
}

// OptionalSession attaches a live session when there is one and never rejects.
func OptionalSession(sessions SessionReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		if sess, err := sessions.Authenticated(c.Request.Context(), Scope(c)); err == nil {
			c.Set(utils.ContextSessionKey, sess)
		}
		c.Next()
	}
}
