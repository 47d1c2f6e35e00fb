package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hotelbook/backend"
	"hotelbook/middleware"
	"hotelbook/models"
	"hotelbook/services/availability"
	"hotelbook/services/booking"
	"hotelbook/services/catalog"
	"hotelbook/services/session"
	"hotelbook/utils"
)

// respondError maps service and backend errors onto HTTP responses.
func respondError(c *gin.Context, err error) {
	if inputErr := booking.IsInputError(err); inputErr != nil {
		utils.JSONFieldError(c, "Please fill in all required fields correctly.", inputErr.Fields())
		return
	}
	if availErr := booking.IsAvailabilityError(err); availErr != nil {
		utils.JSONError(c, http.StatusConflict, "Selected dates are not available. Please choose different dates.", availErr.Error())
		return
	}

	var apiErr *backend.APIError
	switch {
	case errors.As(err, &apiErr):
		utils.JSONError(c, apiErr.StatusCode, apiErr.Message, "")
	case errors.Is(err, session.ErrMissingCredentials),
		errors.Is(err, booking.ErrUnknownPaymentType),
		errors.Is(err, booking.ErrCustomerIDMissing):
		utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
	case errors.Is(err, session.ErrNotLoggedIn),
		errors.Is(err, session.ErrSessionExpired),
		errors.Is(err, booking.ErrLoginRequired):
		utils.JSONError(c, http.StatusUnauthorized, "Authentication required", err.Error())
	case errors.Is(err, booking.ErrCustomerRequired),
		errors.Is(err, catalog.ErrNotOwner):
		utils.JSONError(c, http.StatusForbidden, "Access denied", err.Error())
	case errors.Is(err, availability.ErrNoRooms),
		errors.Is(err, catalog.ErrRoomNotFound),
		errors.Is(err, booking.ErrBookingNotFound):
		utils.JSONError(c, http.StatusNotFound, err.Error(), "")
	case errors.Is(err, models.ErrInvalidTransition):
		utils.JSONError(c, http.StatusConflict, "Booking can no longer be changed", err.Error())
	case errors.Is(err, session.ErrUnknownRole),
		errors.Is(err, backend.ErrMissingToken):
		utils.JSONError(c, http.StatusBadGateway, "Unexpected response from the booking service", err.Error())
	default:
		getLogger(c).Error("unhandled error", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", err.Error())
	}
}

func badRequest(c *gin.Context, err error) {
	utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
}

// idParam parses a positive integer path parameter.
func idParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid "+name, c.Param(name))
		return 0, false
	}
	return id, true
}

// token is the bearer token of the guard-admitted session, or "" for anonymous calls.
func token(c *gin.Context) string {
	if sess := middleware.CurrentSession(c); sess != nil {
		return sess.Token
	}
	return ""
}
