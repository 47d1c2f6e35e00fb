package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hotelbook/middleware"
	"hotelbook/models"
	"hotelbook/services/booking"
	"hotelbook/services/session"
	"hotelbook/utils"
)

type AuthHandler struct {
	Sessions session.SessionService
	Bookings booking.BookingService
	// CookieTTL bounds the scope cookie; zero leaves it a browser-session cookie.
	CookieTTL time.Duration
}

func NewAuthHandler(sessions session.SessionService, bookings booking.BookingService, cookieTTL time.Duration) *AuthHandler {
	return &AuthHandler{Sessions: sessions, Bookings: bookings, CookieTTL: cookieTTL}
}

type loginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResult struct {
	Navigation *session.Navigation `json:"navigation"`
	Session    models.SessionView  `json:"session"`
}

// respondAuthenticated returns where to navigate and the new session's view,
// pointing the scope header at the scope that now holds the session.
func (h *AuthHandler) respondAuthenticated(c *gin.Context, nav *session.Navigation) {
	sess, err := h.Sessions.Current(c.Request.Context(), nav.Scope)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header(utils.ScopeHeader, nav.Scope)
	if !nav.NewScope {
		c.SetCookie(utils.ScopeCookie, nav.Scope, int(h.CookieTTL.Seconds()), "/", "", false, true)
	}
	c.JSON(http.StatusOK, authResult{Navigation: nav, Session: sess.View(nav.Scope)})
}

func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var in loginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	nav, err := h.Sessions.Login(c.Request.Context(), middleware.Scope(c), in.Email, in.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	h.respondAuthenticated(c, nav)
}

func (h *AuthHandler) RegisterCustomerHandler(c *gin.Context) {
	var reg models.Registration
	if err := c.ShouldBindJSON(&reg); err != nil {
		badRequest(c, err)
		return
	}
	nav, err := h.Sessions.RegisterCustomer(c.Request.Context(), middleware.Scope(c), reg)
	if err != nil {
		respondError(c, err)
		return
	}
	h.respondAuthenticated(c, nav)
}

func (h *AuthHandler) RegisterHotelOwnerHandler(c *gin.Context) {
	var reg models.Registration
	if err := c.ShouldBindJSON(&reg); err != nil {
		badRequest(c, err)
		return
	}
	nav, err := h.Sessions.RegisterHotelOwner(c.Request.Context(), middleware.Scope(c), reg)
	if err != nil {
		respondError(c, err)
		return
	}
	h.respondAuthenticated(c, nav)
}

func (h *AuthHandler) UpdateProfileHandler(c *gin.Context) {
	var upd models.ProfileUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		badRequest(c, err)
		return
	}
	msg, err := h.Sessions.UpdateProfile(c.Request.Context(), middleware.Scope(c), upd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msg})
}

// LogoutHandler ends the scope's session and discards its drafts.
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	scope := middleware.Scope(c)
	if err := h.Sessions.Logout(c.Request.Context(), scope); err != nil {
		respondError(c, err)
		return
	}
	if err := h.Bookings.ClearDrafts(c.Request.Context(), scope); err != nil {
		getLogger(c).Warn("clearing drafts on logout failed", zap.Error(err))
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out", "redirect": "/"})
}
