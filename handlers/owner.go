package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"hotelbook/middleware"
	"hotelbook/models"
	"hotelbook/services/catalog"
)

type OwnerHandler struct {
	Catalog *catalog.Service
}

func NewOwnerHandler(svc *catalog.Service) *OwnerHandler {
	return &OwnerHandler{Catalog: svc}
}

func (h *OwnerHandler) MyHotelsHandler(c *gin.Context) {
	hotels, err := h.Catalog.OwnerHotels(c.Request.Context(), token(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, hotels)
}

func (h *OwnerHandler) AddHotelHandler(c *gin.Context) {
	var in models.HotelInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	hotel, err := h.Catalog.AddHotel(c.Request.Context(), token(c), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, hotel)
}

// UpdateHotelHandler accepts any subset of the editable fields.
func (h *OwnerHandler) UpdateHotelHandler(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var changes json.RawMessage
	if err := c.ShouldBindJSON(&changes); err != nil {
		badRequest(c, err)
		return
	}
	patch, err := h.Catalog.UpdateHotel(c.Request.Context(), middleware.CurrentSession(c), id, changes)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"patch": patch, "changed": len(patch) > 0})
}

func (h *OwnerHandler) DeleteHotelHandler(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.Catalog.DeleteHotel(c.Request.Context(), middleware.CurrentSession(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *OwnerHandler) AddRoomHandler(c *gin.Context) {
	hotelID, ok := idParam(c, "id")
	if !ok {
		return
	}
	var in models.RoomInput
	in.HotelID = hotelID
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	room, err := h.Catalog.AddRoom(c.Request.Context(), middleware.CurrentSession(c), hotelID, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, room)
}

func (h *OwnerHandler) UpdateRoomHandler(c *gin.Context) {
	hotelID, ok := idParam(c, "id")
	if !ok {
		return
	}
	roomID, ok := idParam(c, "roomId")
	if !ok {
		return
	}
	var changes json.RawMessage
	if err := c.ShouldBindJSON(&changes); err != nil {
		badRequest(c, err)
		return
	}
	room, err := h.Catalog.UpdateRoom(c.Request.Context(), middleware.CurrentSession(c), hotelID, roomID, changes)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

func (h *OwnerHandler) ToggleRoomHandler(c *gin.Context) {
	hotelID, ok := idParam(c, "id")
	if !ok {
		return
	}
	roomID, ok := idParam(c, "roomId")
	if !ok {
		return
	}
	room, err := h.Catalog.ToggleRoom(c.Request.Context(), middleware.CurrentSession(c), hotelID, roomID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

func (h *OwnerHandler) DeleteRoomHandler(c *gin.Context) {
	hotelID, ok := idParam(c, "id")
	if !ok {
		return
	}
	roomID, ok := idParam(c, "roomId")
	if !ok {
		return
	}
	if err := h.Catalog.DeleteRoom(c.Request.Context(), middleware.CurrentSession(c), hotelID, roomID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
