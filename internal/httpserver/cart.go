package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	cartsvc "boutique-api/internal/service/cart"
)

type cartHandler struct {
	svc    *cartsvc.Service
	logger zerolog.Logger
}

type addItemRequest struct {
	ArticleID string `json:"articleId" binding:"required"`
	Quantity  int    `json:"quantity"`
}

type updateItemRequest struct {
	ArticleID string `json:"articleId" binding:"required"`
	Quantity  int    `json:"quantity"`
}

type removeItemRequest struct {
	ArticleID string `json:"articleId" binding:"required"`
}

func (h *cartHandler) get(c *gin.Context) {
	cart, err := h.svc.GetPending(c.Request.Context(), c.Param("userId"))
	if err != nil {
		writeError(h.logger, c, err, "cart not found")
		return
	}
	c.JSON(http.StatusOK, cart)
}

func (h *cartHandler) add(c *gin.Context) {
	var in addItemRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	item, err := h.svc.AddItem(c.Request.Context(), c.Param("userId"), in.ArticleID, in.Quantity)
	if err != nil {
		writeError(h.logger, c, err, "article not found")
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *cartHandler) update(c *gin.Context) {
	var in updateItemRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	item, err := h.svc.UpdateItem(c.Request.Context(), c.Param("userId"), in.ArticleID, in.Quantity)
	if err != nil {
		writeError(h.logger, c, err, "article not found in cart")
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *cartHandler) remove(c *gin.Context) {
	var in removeItemRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	if err := h.svc.RemoveItem(c.Request.Context(), c.Param("userId"), in.ArticleID); err != nil {
		writeError(h.logger, c, err, "article not found in cart")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "item removed"})
}
