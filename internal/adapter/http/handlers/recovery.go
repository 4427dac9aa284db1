package handlers

import (
	"fmt"
	"log"
	"net/http"

	"arthub_checkout/internal/domain/entities"
	"arthub_checkout/internal/usecase/interfaces"
	"arthub_checkout/pkg"

	"github.com/gin-gonic/gin"
)

var errPanicRecovered = pkg.NewDomainErrorSimple("INTERNAL_ERROR", "An internal error occurred", http.StatusInternalServerError)

// Recovery turns a handler panic into a 500 and a CLIENT/E_PANIC_RECOVERED log event.
func Recovery(events interfaces.IEventLogger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}
		log.Printf("[http][recovery] recovered from panic method=%s route=%s panic=%v", c.Request.Method, route, recovered)
		events.Emit(route, "panic", entities.LogStatusFailed, entities.EventDetail{
			ErrorClass: entities.ErrorClassClient,
			ErrorCode:  entities.CodePanicRecovered,
			Message:    fmt.Sprint(recovered),
			Meta: map[string]any{
				"method":     c.Request.Method,
				"session_id": c.Param("session_id"),
			},
		})
		c.AbortWithStatusJSON(errPanicRecovered.HTTPStatus, errPanicRecovered.ToHTTPError())
	})
}
