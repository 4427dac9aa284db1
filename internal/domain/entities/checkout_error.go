package entities

import (
	"errors"
	"fmt"
	"net/http"
)

type ErrorKind string

const (
	KindValidation    ErrorKind = "validation"
	KindConfiguration ErrorKind = "configuration"
	KindTokenization  ErrorKind = "tokenization"
	KindGateway       ErrorKind = "gateway"
	KindNetwork       ErrorKind = "network"
	KindProtocol      ErrorKind = "protocol"
)

var (
	ErrValidation    = errors.New("validation error")
	ErrConfiguration = errors.New("configuration error")
	ErrTokenization  = errors.New("tokenization error")
	ErrGateway       = errors.New("gateway error")
	ErrNetwork       = errors.New("network error")
	ErrProtocol      = errors.New("protocol error")
)

var kindSentinels = map[ErrorKind]error{
	KindValidation:    ErrValidation,
	KindConfiguration: ErrConfiguration,
	KindTokenization:  ErrTokenization,
	KindGateway:       ErrGateway,
	KindNetwork:       ErrNetwork,
	KindProtocol:      ErrProtocol,
}

// CheckoutError is the single failure type of a checkout run. Message is the
// concise text shown to the buyer; Err keeps the underlying cause for process logs.
//
// errors.Is matches both the kind sentinel (ErrGateway, ...) and the wrapped cause.

type CheckoutError struct {
	Kind       ErrorKind
	Code       string
	Field      string
	Message    string
	HTTPStatus int
	Exchange   HTTPExchange
	Err        error
}

func (e *CheckoutError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *CheckoutError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if s, ok := kindSentinels[e.Kind]; ok {
		errs = append(errs, s)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// Class maps the kind onto the LogEvent error taxonomy.
func (e *CheckoutError) Class() ErrorClass {
	switch e.Kind {
	case KindNetwork:
		return ErrorClassNetwork
	case KindGateway, KindProtocol:
		return ErrorClassGateway
	case KindTokenization:
		if e.HTTPStatus > 0 {
			return ErrorClassGateway
		}
	}
	return ErrorClassClient
}

// Retryable reports whether the same step may be attempted again as-is.
// Only network failures qualify; everything else needs a user edit or a fresh run.
func (e *CheckoutError) Retryable() bool {
	return e.Kind == KindNetwork
}

// Detail converts the error into the fields of a failure LogEvent.
func (e *CheckoutError) Detail() EventDetail {
	d := EventDetail{ErrorClass: e.Class(), ErrorCode: e.Code, Message: e.Message}
	if e.Exchange.Status > 0 || e.Exchange.Body != "" {
		ex := e.Exchange
		d.Exchange = &ex
	}
	if e.Field != "" {
		d.Meta = map[string]any{"field": e.Field}
	}
	return d
}

func AsCheckoutError(err error) (*CheckoutError, bool) {
	var ce *CheckoutError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

func NewValidationError(field, message string) *CheckoutError {
	return &CheckoutError{Kind: KindValidation, Code: CodeValidation, Field: field, Message: message}
}

func NewConfigurationError(message string) *CheckoutError {
	return &CheckoutError{Kind: KindConfiguration, Code: CodeConfigInvalid, Message: message}
}

func NewTokenizationError(message string, ex HTTPExchange) *CheckoutError {
	return &CheckoutError{Kind: KindTokenization, Code: CodeTokenizationFailed, Message: message, HTTPStatus: ex.Status, Exchange: ex}
}

// NewGatewayError picks the gateway sub-code from the HTTP status class.
// A 2xx status means the body carried ok:false.
func NewGatewayError(message string, ex HTTPExchange) *CheckoutError {
	code := CodeGatewayRejected
	switch {
	case ex.Status == http.StatusPreconditionFailed:
		code = CodeCardVerificationFailed
	case ex.Status >= 500:
		code = CodeGateway5xx
	case ex.Status >= 400:
		code = CodeGateway4xx
	}
	return &CheckoutError{Kind: KindGateway, Code: code, Message: message, HTTPStatus: ex.Status, Exchange: ex}
}

func NewNetworkError(message string, ex HTTPExchange, err error) *CheckoutError {
	return &CheckoutError{Kind: KindNetwork, Code: CodeFetchFailed, Message: message, Exchange: ex, Err: err}
}

func NewProtocolError(message string, ex HTTPExchange, err error) *CheckoutError {
	return &CheckoutError{Kind: KindProtocol, Code: CodeProtocol, Message: message, HTTPStatus: ex.Status, Exchange: ex, Err: err}
}
