package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotelbook/middleware"
	"hotelbook/models"
	"hotelbook/services/booking"
	"hotelbook/utils"
)

type BookingHandler struct {
	Bookings booking.BookingService
}

func NewBookingHandler(bookings booking.BookingService) *BookingHandler {
	return &BookingHandler{Bookings: bookings}
}

func (h *BookingHandler) SubmitBookingHandler(c *gin.Context) {
	form := models.NewBookingForm(0)
	if err := c.ShouldBindJSON(&form); err != nil {
		badRequest(c, err)
		return
	}
	b, err := h.Bookings.Submit(c.Request.Context(), middleware.CurrentSession(c), form)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

func (h *BookingHandler) MyBookingsHandler(c *gin.Context) {
	bookings, err := h.Bookings.MyBookings(c.Request.Context(), middleware.CurrentSession(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (h *BookingHandler) UpdateBookingHandler(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var upd models.BookingUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		badRequest(c, err)
		return
	}
	if err := h.Bookings.Update(c.Request.Context(), middleware.CurrentSession(c), id, upd); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking updated"})
}

func (h *BookingHandler) PayBookingHandler(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var in struct {
		PaymentMethod string `json:"paymentMethod" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	payment, err := h.Bookings.Pay(c.Request.Context(), middleware.CurrentSession(c), id, in.PaymentMethod)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payment)
}

func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.Bookings.Cancel(c.Request.Context(), middleware.CurrentSession(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking cancelled"})
}

func (h *BookingHandler) OwnerBookingsHandler(c *gin.Context) {
	paidOnly := false
	if raw := c.Query("paidOnly"); raw != "" {
		var err error
		if paidOnly, err = strconv.ParseBool(raw); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid paidOnly", raw)
			return
		}
	}
	bookings, err := h.Bookings.OwnerBookings(c.Request.Context(), middleware.CurrentSession(c), paidOnly)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (h *BookingHandler) SaveDraftHandler(c *gin.Context) {
	form := models.NewBookingForm(0)
	if err := c.ShouldBindJSON(&form); err != nil {
		badRequest(c, err)
		return
	}
	draft, err := h.Bookings.SaveDraft(c.Request.Context(), middleware.Scope(c), form)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, draft)
}

func (h *BookingHandler) ListDraftsHandler(c *gin.Context) {
	drafts, err := h.Bookings.Drafts(c.Request.Context(), middleware.Scope(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, drafts)
}

func (h *BookingHandler) ClearDraftsHandler(c *gin.Context) {
	if err := h.Bookings.ClearDrafts(c.Request.Context(), middleware.Scope(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
