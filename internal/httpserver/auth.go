package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"boutique-api/internal/domain"
	authsvc "boutique-api/internal/service/auth"
)

type authHandler struct {
	svc    *authsvc.Service
	logger zerolog.Logger
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *authHandler) register(c *gin.Context) {
	var in authsvc.RegisterInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	user, err := h.svc.Register(c.Request.Context(), in)
	if err != nil {
		writeError(h.logger, c, err, "user not found")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "user created", "user": user})
}

func (h *authHandler) login(c *gin.Context) {
	var in loginRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	token, err := h.svc.Login(c.Request.Context(), in.Email, in.Password)
	if err != nil {
		if errors.Is(err, authsvc.ErrInvalidCredentials) {
			badRequest(c, "wrong password")
			return
		}
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		writeError(h.logger, c, err, "user not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "login successful", "token": token})
}
