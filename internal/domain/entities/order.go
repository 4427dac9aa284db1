package entities

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Mode selects live or test PSP credentials and amounts. It is threaded through
// the tokenization and order clients.
type Mode string

const (
	ModeLive Mode = "live"
	ModeTest Mode = "test"
)

func ParseMode(v string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(v))) {
	case ModeLive:
		return ModeLive, nil
	case ModeTest, "":
		return ModeTest, nil
	}
	return "", fmt.Errorf("invalid checkout mode %q", v)
}

// TokenTTL is the PSP-side lifetime of a card token. The PSP does not return it.
const TokenTTL = 60 * time.Second

// OpaqueToken references tokenized card data. It is consumed by exactly one submission.
type OpaqueToken struct {
	ID       string    `json:"id"`
	IssuedAt time.Time `json:"issued_at"`
}

func (t OpaqueToken) Expired(now time.Time) bool {
	return !now.Before(t.IssuedAt.Add(TokenTTL))
}

// OrderStatus is the outcome of one order submission.
type OrderStatus string

const (
	OrderStatusApproved OrderStatus = "approved"
	OrderStatusPending  OrderStatus = "pending"
	OrderStatusDeclined OrderStatus = "declined"
	OrderStatusFailed   OrderStatus = "failed"
)

// OrderResult is terminal: a new result needs a new run with a new token.
type OrderResult struct {
	Status        OrderStatus  `json:"status"`
	Reason        string       `json:"reason"`
	PaymentStatus string       `json:"payment_status,omitempty"`
	Exchange      HTTPExchange `json:"-"`
}

// HTTPExchange summarizes one outbound call for event correlation.
type HTTPExchange struct {
	Method  string
	URL     string
	Status  int
	Latency time.Duration
	Body    string
}

// FormatBRL renders an amount in cents as "497.00".
func FormatBRL(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}
