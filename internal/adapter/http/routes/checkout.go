package routes

import (
	"arthub_checkout/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCheckoutSessions = "/v1/checkout/sessions"
)

func addCheckoutRoutes(r gin.IRouter, h *handlers.CheckoutHandler) {
	sessions := r.Group(PathCheckoutSessions)
	{
		sessions.POST("", h.OpenSession)
		sessions.DELETE("/:session_id", h.CloseSession)

		sessions.POST("/:session_id/card", h.SubmitCard)
		sessions.GET("/:session_id/card", h.CardState)

		sessions.POST("/:session_id/pix", h.GeneratePix)
		sessions.GET("/:session_id/pix", h.PixState)
		sessions.POST("/:session_id/pix/copy", h.CopyPixCode)
	}
}
