package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stylecraft/backend/internal/interaction"
)

type Handler struct {
	Svc *interaction.Service
}

func NewHandler(svc *interaction.Service) *Handler {
	return &Handler{Svc: svc}
}

func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Welcome to StyleCraft AI Backend!"})
}

func fail(c *gin.Context, status int, detail string) {
	c.JSON(status, gin.H{"detail": detail})
}
