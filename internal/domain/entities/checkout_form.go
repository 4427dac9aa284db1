package entities

import (
	"fmt"
	"strings"
)

// Address is the billing address sent with the order. The PSP never tokenizes it.
type Address struct {
	Line1   string `json:"line_1"`
	Line2   string `json:"line_2"`
	ZipCode string `json:"zip_code"`
	City    string `json:"city"`
	State   string `json:"state"`
}

// CheckoutForm holds the raw buyer input of one checkout session.
//
// It is never persisted and never printed verbatim: String and GoString only expose
// the buyer email and the installment count, so a stray %v in a log line cannot leak
// card data or the document number.

type CheckoutForm struct {
	CardNumber   string  `json:"card_number"`
	HolderName   string  `json:"holder_name"`
	ExpMonth     string  `json:"exp_month"`
	ExpYear      string  `json:"exp_year"`
	CVV          string  `json:"cvv"`
	Document     string  `json:"document"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone"`
	Address      Address `json:"address"`
	Installments int     `json:"installments"`
}

// NewCheckoutForm returns the empty defaults a form is reset to after an approval.
func NewCheckoutForm() CheckoutForm {
	return CheckoutForm{Installments: 1}
}

// IsEmpty reports whether no buyer field was filled.
func (f CheckoutForm) IsEmpty() bool {
	blank := f
	blank.Installments = 0
	return blank == CheckoutForm{}
}

func (f CheckoutForm) String() string {
	return fmt.Sprintf("CheckoutForm{email=%s installments=%d}", strings.TrimSpace(f.Email), f.Installments)
}

func (f CheckoutForm) GoString() string { return f.String() }

// Product is the single item sold by the checkout, parameterized per mode.
type Product struct {
	AmountCents int64
	Description string
	ItemCode    string
}
