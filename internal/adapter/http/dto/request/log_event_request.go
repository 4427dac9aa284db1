package request

import (
	"time"

	"arthub_checkout/internal/domain/entities"
)

// LogEventRequest is one event posted to the log sink.
type LogEventRequest struct {
	Timestamp  time.Time      `json:"timestamp" validate:"required"`
	TraceID    string         `json:"trace_id" validate:"required,max=64"`
	SpanID     string         `json:"span_id" validate:"required,max=128"`
	SessionID  string         `json:"session_id" validate:"max=64"`
	Route      string         `json:"route" validate:"required,max=128"`
	Stage      string         `json:"stage" validate:"required,max=64"`
	Status     string         `json:"status" validate:"required,logstatus"`
	ErrorClass string         `json:"error_class" validate:"omitempty,errorclass"`
	ErrorCode  string         `json:"error_code" validate:"omitempty,max=64"`
	Message    string         `json:"message" validate:"max=2000"`
	Meta       map[string]any `json:"meta"`
}

func (r LogEventRequest) ToEntity() entities.LogEvent {
	return entities.LogEvent{
		Timestamp:  r.Timestamp,
		TraceID:    r.TraceID,
		SpanID:     r.SpanID,
		SessionID:  r.SessionID,
		Route:      r.Route,
		Stage:      r.Stage,
		Status:     entities.LogStatus(r.Status),
		ErrorClass: entities.ErrorClass(r.ErrorClass),
		ErrorCode:  r.ErrorCode,
		Message:    r.Message,
		Meta:       r.Meta,
	}
}
