package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hotelbook/models"
	"hotelbook/services/booking"
	"hotelbook/services/catalog"
	"hotelbook/utils"
)

type CatalogHandler struct {
	Catalog   *catalog.Service
	Calendars booking.Calendars
}

func NewCatalogHandler(svc *catalog.Service, calendars booking.Calendars) *CatalogHandler {
	return &CatalogHandler{Catalog: svc, Calendars: calendars}
}

func (h *CatalogHandler) ListHotelsHandler(c *gin.Context) {
	hotels, err := h.Catalog.Hotels(c.Request.Context(), token(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, hotels)
}

func (h *CatalogHandler) SearchHotelsHandler(c *gin.Context) {
	var q models.HotelSearch
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}
	hotels, err := h.Catalog.Search(c.Request.Context(), token(c), q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, hotels)
}

func (h *CatalogHandler) CitiesHandler(c *gin.Context) {
	cities, err := h.Catalog.Cities(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cities)
}

func (h *CatalogHandler) HotelDetailsHandler(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	details, err := h.Catalog.Details(c.Request.Context(), token(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, details)
}

func (h *CatalogHandler) RoomsHandler(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	rooms, err := h.Catalog.Rooms(c.Request.Context(), token(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

func (h *CatalogHandler) ReviewsHandler(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	reviews, err := h.Catalog.Reviews(c.Request.Context(), token(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// AvailabilityHandler resolves the calendar for ?roomType=, given as a backend
// code, a name or a short alias such as "Standard".
func (h *CatalogHandler) AvailabilityHandler(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	roomType, err := models.ParseRoomType(c.Query("roomType"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid roomType", err.Error())
		return
	}

	from, to := c.Query("checkInDate"), c.Query("checkOutDate")
	withRange := from != "" || to != ""
	var in, out time.Time
	if withRange {
		if in, out, err = booking.ValidateRange(from, to); err != nil {
			respondError(c, err)
			return
		}
	}

	cal, err := h.Calendars.Resolve(c.Request.Context(), token(c), id, roomType)
	if err != nil {
		respondError(c, err)
		return
	}
	if !withRange {
		c.JSON(http.StatusOK, cal.View())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"calendar":  cal.View(),
		"available": cal.IsRangeAvailable(in, out),
	})
}
