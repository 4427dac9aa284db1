package routes

import (
	"net/http"

	"arthub_checkout/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func addPingRoutes(r gin.IRouter, cfg config.Config) {
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"role":    cfg.Role,
			"mode":    cfg.Mode,
		})
	})
}
