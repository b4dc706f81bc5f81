package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"boutique-api/internal/domain"
	catalogsvc "boutique-api/internal/service/catalog"
)

type articleHandler struct {
	svc    *catalogsvc.Service
	logger zerolog.Logger
}

func (h *articleHandler) list(c *gin.Context) {
	articles, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(h.logger, c, err, "article not found")
		return
	}
	if articles == nil {
		articles = []domain.Article{}
	}
	c.JSON(http.StatusOK, articles)
}

func (h *articleHandler) get(c *gin.Context) {
	article, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(h.logger, c, err, "article not found")
		return
	}
	c.JSON(http.StatusOK, article)
}

func (h *articleHandler) create(c *gin.Context) {
	var in catalogsvc.ArticleInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	article, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		writeError(h.logger, c, err, "article not found")
		return
	}
	c.JSON(http.StatusCreated, article)
}

func (h *articleHandler) update(c *gin.Context) {
	var in catalogsvc.ArticleInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	article, err := h.svc.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		writeError(h.logger, c, err, "article not found")
		return
	}
	c.JSON(http.StatusOK, article)
}

func (h *articleHandler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(h.logger, c, err, "article not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "article deleted"})
}
