package request

import (
	"strings"

	"arthub_checkout/internal/domain/entities"
)

type AddressRequest struct {
	Line1   string `json:"line_1" validate:"max=120"`
	Line2   string `json:"line_2" validate:"max=120"`
	ZipCode string `json:"zip_code" validate:"max=16"`
	City    string `json:"city" validate:"max=80"`
	State   string `json:"state" validate:"max=32"`
}

// CheckoutFormRequest carries raw buyer input. Field rules (Luhn, expiry, CPF, ...)
// are applied by the domain validator so the buyer gets one message per field;
// tags here only bound the payload size.
type CheckoutFormRequest struct {
	CardNumber   string         `json:"card_number" validate:"max=32"`
	HolderName   string         `json:"holder_name" validate:"max=120"`
	ExpMonth     string         `json:"exp_month" validate:"max=4"`
	ExpYear      string         `json:"exp_year" validate:"max=4"`
	CVV          string         `json:"cvv" validate:"max=4"`
	Document     string         `json:"document" validate:"max=20"`
	Email        string         `json:"email" validate:"max=254"`
	Phone        string         `json:"phone" validate:"max=24"`
	Address      AddressRequest `json:"address"`
	Installments int            `json:"installments" validate:"min=0,max=24"`
}

func (r CheckoutFormRequest) ToEntity() *entities.CheckoutForm {
	return &entities.CheckoutForm{
		CardNumber: r.CardNumber,
		HolderName: r.HolderName,
		ExpMonth:   r.ExpMonth,
		ExpYear:    r.ExpYear,
		CVV:        r.CVV,
		Document:   r.Document,
		Email:      r.Email,
		Phone:      r.Phone,
		Address: entities.Address{
			Line1:   r.Address.Line1,
			Line2:   r.Address.Line2,
			ZipCode: r.Address.ZipCode,
			City:    r.Address.City,
			State:   r.Address.State,
		},
		Installments: r.Installments,
	}
}

// BuyerRequest overrides the configured Pix buyer. All fields are optional.
type BuyerRequest struct {
	Name     string `json:"name" validate:"max=120"`
	Email    string `json:"email" validate:"omitempty,email,max=254"`
	Document string `json:"document" validate:"max=20"`
	Phone    string `json:"phone" validate:"max=24"`
}

// ToEntity returns nil when no field is set so the default buyer applies.
func (r BuyerRequest) ToEntity() *entities.Buyer {
	b := entities.Buyer{
		Name:     strings.TrimSpace(r.Name),
		Email:    strings.TrimSpace(r.Email),
		Document: strings.TrimSpace(r.Document),
		Phone:    strings.TrimSpace(r.Phone),
	}
	if b == (entities.Buyer{}) {
		return nil
	}
	return &b
}
