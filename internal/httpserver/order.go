package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"boutique-api/internal/domain"
	ordersvc "boutique-api/internal/service/order"
)

type orderHandler struct {
	svc    *ordersvc.Service
	logger zerolog.Logger
}

type checkoutRequest struct {
	UserID string `json:"userId" binding:"required"`
}

func (h *orderHandler) create(c *gin.Context) {
	var in checkoutRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	ord, err := h.svc.Checkout(c.Request.Context(), in.UserID)
	if err != nil {
		writeError(h.logger, c, err, "order not found")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "order created", "order": ord})
}

func (h *orderHandler) listByUser(c *gin.Context) {
	orders, err := h.svc.ListByUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		writeError(h.logger, c, err, "order not found")
		return
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	c.JSON(http.StatusOK, orders)
}

func (h *orderHandler) validate(c *gin.Context) {
	ord, err := h.svc.Validate(c.Request.Context(), c.Param("orderId"))
	if err != nil {
		writeError(h.logger, c, err, "order not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "order validated", "order": ord})
}
