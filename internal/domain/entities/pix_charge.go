package entities

import (
	"fmt"
	"time"
)

// Buyer identifies the payer of a Pix charge.
type Buyer struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Document string `json:"document"`
	Phone    string `json:"phone"`
}

// PixCharge is created once per Pix request and never changed afterwards.
type PixCharge struct {
	ChargeID      string       `json:"charge_id"`
	Status        string       `json:"status"`
	CopyPasteCode string       `json:"copy_paste_code"`
	QRCodeURL     string       `json:"qr_code_url"`
	ExpiresAt     time.Time    `json:"expires_at"`
	Exchange      HTTPExchange `json:"-"`
}

// Countdown is the transient remaining time of a charge, recomputed on every tick.
type Countdown struct {
	Remaining int64 `json:"remaining_seconds"`
	Expired   bool  `json:"expired"`
}

// NewCountdown computes floor((expiresAt - now) / 1s). Remaining never goes below zero.
func NewCountdown(expiresAt, now time.Time) Countdown {
	ms := expiresAt.Sub(now).Milliseconds()
	secs := ms / 1000
	if ms < 0 && ms%1000 != 0 {
		secs--
	}
	if secs <= 0 {
		return Countdown{Remaining: 0, Expired: true}
	}
	return Countdown{Remaining: secs}
}

func (c Countdown) Display() string {
	return FormatHMS(c.Remaining)
}

// FormatHMS renders seconds as HH:MM:SS, clamped at 00:00:00.
func FormatHMS(secs int64) string {
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("%02d:%02d:%02d", secs/3600, (secs%3600)/60, secs%60)
}
