package entities

import "time"

type CardState string

const (
	CardIdle       CardState = "idle"
	CardValidating CardState = "validating"
	CardTokenizing CardState = "tokenizing"
	CardSubmitting CardState = "submitting"
	CardApproved   CardState = "approved"
	CardDeclined   CardState = "declined"
	CardFailed     CardState = "failed"
)

// Busy reports whether a run is in flight and the submit action must stay disabled.
func (s CardState) Busy() bool {
	return s == CardValidating || s == CardTokenizing || s == CardSubmitting
}

func (s CardState) Terminal() bool {
	return s == CardApproved || s == CardDeclined || s == CardFailed
}

// CardSnapshot is what the buyer sees of the card flow.
type CardSnapshot struct {
	State         CardState `json:"state"`
	Busy          bool      `json:"busy"`
	Message       string    `json:"message,omitempty"`
	ErrorKind     ErrorKind `json:"error_kind,omitempty"`
	ErrorCode     string    `json:"error_code,omitempty"`
	Field         string    `json:"field,omitempty"`
	PaymentStatus string    `json:"payment_status,omitempty"`
	FormReset     bool      `json:"form_reset"`
	TraceID       string    `json:"trace_id,omitempty"`
}

type PixState string

const (
	PixIdle       PixState = "idle"
	PixRequesting PixState = "requesting"
	PixReady      PixState = "ready"
	PixExpired    PixState = "expired"
)

// PixExpiredPrompt is shown once a charge can no longer be paid.
const PixExpiredPrompt = "generate a new Pix"

// PixSnapshot is what the buyer sees of the Pix flow. Error holds the last failed
// request and CopyError the last clipboard failure; neither changes State.
type PixSnapshot struct {
	State         PixState   `json:"state"`
	ChargeID      string     `json:"charge_id,omitempty"`
	CopyPasteCode string     `json:"copy_paste_code,omitempty"`
	QRCodeURL     string     `json:"qr_code_url,omitempty"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`
	Countdown     Countdown  `json:"countdown"`
	Display       string     `json:"display"`
	CanCopy       bool       `json:"can_copy"`
	Prompt        string     `json:"prompt,omitempty"`
	Error         string     `json:"error,omitempty"`
	ErrorCode     string     `json:"error_code,omitempty"`
	CopyError     string     `json:"copy_error,omitempty"`
	TraceID       string     `json:"trace_id,omitempty"`
}
