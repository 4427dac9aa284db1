package entities

import "time"

// LogStatus is the lifecycle marker carried by every LogEvent.
type LogStatus string

const (
	LogStatusPending LogStatus = "pending"
	LogStatusSending LogStatus = "sending"
	LogStatusOK      LogStatus = "ok"
	LogStatusError   LogStatus = "error"
	LogStatusFailed  LogStatus = "failed"
	LogStatusDone    LogStatus = "done"
)

func (s LogStatus) Valid() bool {
	switch s {
	case LogStatusPending, LogStatusSending, LogStatusOK, LogStatusError, LogStatusFailed, LogStatusDone:
		return true
	}
	return false
}

// ErrorClass is attached by the call site, never inferred by the logger.
type ErrorClass string

const (
	ErrorClassClient  ErrorClass = "CLIENT"
	ErrorClassNetwork ErrorClass = "NETWORK"
	ErrorClassGateway ErrorClass = "GATEWAY"
)

// Error codes used in LogEvents and API errors.
const (
	CodeValidation             = "E_VALIDATION"
	CodeConfigInvalid          = "E_CONFIG_INVALID"
	CodeTokenizationFailed     = "E_TOKENIZATION_FAILED"
	CodeTokenExpired           = "E_TOKEN_EXPIRED"
	CodeFetchFailed            = "E_FETCH_FAILED"
	CodeGateway5xx             = "E_GATEWAY_5XX"
	CodeGateway4xx             = "E_GATEWAY_4XX"
	CodeCardVerificationFailed = "E_CARD_VERIFICATION_FAILED"
	CodeGatewayRejected        = "E_GATEWAY_REJECTED"
	CodeProtocol               = "E_PROTOCOL"
	CodePanicRecovered         = "E_PANIC_RECOVERED"
	CodeUnhandledAsync         = "E_UNHANDLED_ASYNC"
	CodeClipboard              = "E_CLIPBOARD"
)

// LogEvent is one append-only, correlated observation. TraceID groups one user
// action, SpanID one request inside it.
type LogEvent struct {
	Timestamp  time.Time      `json:"timestamp"`
	TraceID    string         `json:"trace_id"`
	SpanID     string         `json:"span_id"`
	SessionID  string         `json:"session_id,omitempty"`
	Route      string         `json:"route"`
	Stage      string         `json:"stage"`
	Status     LogStatus      `json:"status"`
	ErrorClass ErrorClass     `json:"error_class,omitempty"`
	ErrorCode  string         `json:"error_code,omitempty"`
	Message    string         `json:"message,omitempty"`
	Meta       map[string]any `json:"meta,omitempty"`
}

// LogEntry is a LogEvent as stored and served by the log sink.
type LogEntry struct {
	ID         string    `json:"id"`
	ReceivedAt time.Time `json:"received_at"`
	LogEvent
}

// Email returns meta.email, the only buyer field the Log Viewer filters on.
func (e LogEntry) Email() string {
	if e.Meta == nil {
		return ""
	}
	s, _ := e.Meta["email"].(string)
	return s
}

// EventDetail is what a call site adds to a step event.
type EventDetail struct {
	ErrorClass ErrorClass
	ErrorCode  string
	Message    string
	Meta       map[string]any
	Exchange   *HTTPExchange
}
