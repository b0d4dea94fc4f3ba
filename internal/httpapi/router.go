package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stylecraft/backend/internal/httpapi/handlers"
	"github.com/stylecraft/backend/internal/httpapi/middleware"
)

func NewRouter(h *handlers.Handler) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.Recovery())

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"detail": "route not found"})
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"detail": "method not allowed"})
	})

	r.GET("/", h.Root)
	r.POST("/generate/", h.Generate)

	r.GET("/interactions/", h.ListInteractions)
	r.GET("/interactions/user/:user_id", h.ListUserInteractions)
	r.GET("/interactions/:id", h.GetInteraction)
	r.PUT("/interactions/:id", h.UpdateInteraction)
	r.DELETE("/interactions/:id", h.DeleteInteraction)

	// companion single-page UI
	r.StaticFile("/ui", "./web/index.html")

	return r
}
