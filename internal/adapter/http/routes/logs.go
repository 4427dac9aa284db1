package routes

import (
	"arthub_checkout/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

// Paths the checkout backend already exposes; the log viewer polls PathLogs.
const (
	PathLogIngest = "/api/log"
	PathLogs      = "/api/logs"
)

func addLogRoutes(r gin.IRouter, h *handlers.LogHandler) {
	r.POST(PathLogIngest, h.IngestLog)
	r.GET(PathLogs, h.ListLogs)
}
