package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"boutique-api/internal/domain"
	accountsvc "boutique-api/internal/service/account"
)

type userHandler struct {
	svc    *accountsvc.Service
	logger zerolog.Logger
}

func (h *userHandler) list(c *gin.Context) {
	users, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(h.logger, c, err, "user not found")
		return
	}
	if users == nil {
		users = []domain.User{}
	}
	c.JSON(http.StatusOK, users)
}

func (h *userHandler) get(c *gin.Context) {
	user, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(h.logger, c, err, "user not found")
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *userHandler) create(c *gin.Context) {
	var in accountsvc.CreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	user, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		writeError(h.logger, c, err, "user not found")
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (h *userHandler) update(c *gin.Context) {
	var in accountsvc.UpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	user, err := h.svc.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		writeError(h.logger, c, err, "user not found")
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *userHandler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(h.logger, c, err, "user not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user deleted"})
}
