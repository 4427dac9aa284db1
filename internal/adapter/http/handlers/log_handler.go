package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	request "arthub_checkout/internal/adapter/http/dto/request"
	response "arthub_checkout/internal/adapter/http/dto/response"
	"arthub_checkout/internal/adapter/http/validation"
	"arthub_checkout/internal/usecase"
	"arthub_checkout/pkg"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"
)

var (
	errInvalidLimit = pkg.NewDomainErrorSimple("INVALID_LIMIT", "limit must be a positive integer", http.StatusBadRequest)
)

// LogHandler is the log sink: it stores LogEvents and serves them to the log viewer.

type LogHandler struct {
	usecase  usecase.ILogIngestUseCase
	validate *validatorv10.Validate
}

func NewLogHandler(uc usecase.ILogIngestUseCase, v *validatorv10.Validate) *LogHandler {
	return &LogHandler{usecase: uc, validate: v}
}

// IngestLog godoc
// @Summary      Store one log event
// @Tags         logs
// @Accept       json
// @Produce      json
// @Param        event  body      request.LogEventRequest  true  "log event"
// @Success      201    {object}  response.LogIngestResponse
// @Failure      400    {object}  pkg.HTTPError
// @Router       /api/log [post]
func (h *LogHandler) IngestLog(c *gin.Context) {
	var payload request.LogEventRequest
	if err := validation.BindAndValidate(c, &payload, h.validate); err != nil {
		return
	}

	entry, err := h.usecase.Ingest(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapLogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.LogIngestResponse{OK: true, ID: entry.ID})
}

// ListLogs godoc
// @Summary      List stored log events
// @Description  Newest first; ascending by timestamp when trace_id is given.
// @Tags         logs
// @Produce      json
// @Param        limit     query     int     false  "max entries (default 100, max 500)"
// @Param        trace_id  query     string  false  "only this trace"
// @Success      200       {object}  response.LogsResponse
// @Failure      400       {object}  pkg.HTTPError
// @Failure      503       {object}  pkg.HTTPError
// @Router       /api/logs [get]
func (h *LogHandler) ListLogs(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.JSON(errInvalidLimit.HTTPStatus, errInvalidLimit.ToHTTPError())
			return
		}
		limit = n
	}

	entries, err := h.usecase.List(c.Request.Context(), limit, c.Query("trace_id"))
	if err != nil {
		appErr := mapLogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromLogEntries(entries))
}

func mapLogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidLogEvent):
		return pkg.NewDomainErrorSimple("INVALID_LOG_EVENT", "Invalid log event", http.StatusBadRequest)
	default:
		log.Printf("[logs][handler] storage error err=%v", err)
		return pkg.NewDomainError("LOGS_UNAVAILABLE", "Log storage unavailable", err, http.StatusServiceUnavailable)
	}
}
