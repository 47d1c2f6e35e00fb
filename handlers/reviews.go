package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotelbook/models"
	"hotelbook/services/catalog"
)

type ReviewHandler struct {
	Catalog *catalog.Service
}

func NewReviewHandler(svc *catalog.Service) *ReviewHandler {
	return &ReviewHandler{Catalog: svc}
}

func (h *ReviewHandler) AddReviewHandler(c *gin.Context) {
	var req models.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	review, err := h.Catalog.AddReview(c.Request.Context(), token(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, review)
}

func (h *ReviewHandler) UpdateReviewHandler(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req models.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	review, err := h.Catalog.UpdateReview(c.Request.Context(), token(c), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, review)
}

func (h *ReviewHandler) DeleteReviewHandler(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.Catalog.DeleteReview(c.Request.Context(), token(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
