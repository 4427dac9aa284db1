package response

import (
	"time"

	"arthub_checkout/internal/domain/entities"
)

type SessionResponse struct {
	SessionID string `json:"session_id"`
}

type CardResponse struct {
	SessionID     string `json:"session_id"`
	State         string `json:"state"`
	Busy          bool   `json:"busy"`
	Message       string `json:"message,omitempty"`
	ErrorKind     string `json:"error_kind,omitempty"`
	ErrorCode     string `json:"error_code,omitempty"`
	Field         string `json:"field,omitempty"`
	PaymentStatus string `json:"payment_status,omitempty"`
	FormReset     bool   `json:"form_reset"`
	TraceID       string `json:"trace_id,omitempty"`
}

func FromCardSnapshot(sessionID string, s entities.CardSnapshot) CardResponse {
	return CardResponse{
		SessionID:     sessionID,
		State:         string(s.State),
		Busy:          s.Busy,
		Message:       s.Message,
		ErrorKind:     string(s.ErrorKind),
		ErrorCode:     s.ErrorCode,
		Field:         s.Field,
		PaymentStatus: s.PaymentStatus,
		FormReset:     s.FormReset,
		TraceID:       s.TraceID,
	}
}

type PixResponse struct {
	SessionID        string     `json:"session_id"`
	State            string     `json:"state"`
	ChargeID         string     `json:"charge_id,omitempty"`
	CopyPasteCode    string     `json:"copy_paste_code,omitempty"`
	QRCodeURL        string     `json:"qr_code_url,omitempty"`
	ExpiresAt        *time.Time `json:"expires_at,omitempty"`
	RemainingSeconds int64      `json:"remaining_seconds"`
	Countdown        string     `json:"countdown"`
	CanCopy          bool       `json:"can_copy"`
	Prompt           string     `json:"prompt,omitempty"`
	Error            string     `json:"error,omitempty"`
	ErrorCode        string     `json:"error_code,omitempty"`
	CopyError        string     `json:"copy_error,omitempty"`
	TraceID          string     `json:"trace_id,omitempty"`
}

func FromPixSnapshot(sessionID string, s entities.PixSnapshot) PixResponse {
	return PixResponse{
		SessionID:        sessionID,
		State:            string(s.State),
		ChargeID:         s.ChargeID,
		CopyPasteCode:    s.CopyPasteCode,
		QRCodeURL:        s.QRCodeURL,
		ExpiresAt:        s.ExpiresAt,
		RemainingSeconds: s.Countdown.Remaining,
		Countdown:        s.Display,
		CanCopy:          s.CanCopy,
		Prompt:           s.Prompt,
		Error:            s.Error,
		ErrorCode:        s.ErrorCode,
		CopyError:        s.CopyError,
		TraceID:          s.TraceID,
	}
}

type CopyResponse struct {
	CopyPasteCode string `json:"copy_paste_code"`
}
