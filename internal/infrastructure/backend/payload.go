package backend

import (
	"strings"

	"arthub_checkout/internal/domain/entities"
	"arthub_checkout/internal/domain/validation"
)

const (
	countryCodeBR   = "55"
	countryBR       = "BR"
	documentTypeCPF = "CPF"
	customerType    = "individual"
)

type phoneDTO struct {
	CountryCode string `json:"country_code"`
	AreaCode    string `json:"area_code"`
	Number      string `json:"number"`
}

type phonesDTO struct {
	MobilePhone phoneDTO `json:"mobile_phone"`
}

type addressDTO struct {
	Line1   string `json:"line_1"`
	Line2   string `json:"line_2"`
	ZipCode string `json:"zip_code"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
}

type customerDTO struct {
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	Type         string      `json:"type"`
	Document     string      `json:"document"`
	DocumentType string      `json:"document_type"`
	Phones       phonesDTO   `json:"phones"`
	Address      *addressDTO `json:"address,omitempty"`
}

// SplitPhone splits a Brazilian phone into country, area and local parts.
// A leading 55 is dropped when the number carries it.
func SplitPhone(raw string) phoneDTO {
	digits := validation.OnlyDigits(raw)
	if len(digits) > 11 && strings.HasPrefix(digits, countryCodeBR) {
		digits = digits[len(countryCodeBR):]
	}
	p := phoneDTO{CountryCode: countryCodeBR, AreaCode: "00", Number: "000000000"}
	if len(digits) >= 2 {
		p.AreaCode = digits[:2]
	}
	if len(digits) > 2 {
		p.Number = digits[2:]
	}
	return p
}

func newCardCustomer(f entities.CheckoutForm) customerDTO {
	return customerDTO{
		Name:         strings.TrimSpace(f.HolderName),
		Email:        strings.TrimSpace(f.Email),
		Type:         customerType,
		Document:     validation.OnlyDigits(f.Document),
		DocumentType: documentTypeCPF,
		Phones:       phonesDTO{MobilePhone: SplitPhone(f.Phone)},
		Address: &addressDTO{
			Line1:   strings.TrimSpace(f.Address.Line1),
			Line2:   strings.TrimSpace(f.Address.Line2),
			ZipCode: validation.OnlyDigits(f.Address.ZipCode),
			City:    strings.TrimSpace(f.Address.City),
			State:   strings.ToUpper(strings.TrimSpace(f.Address.State)),
			Country: countryBR,
		},
	}
}

func newPixCustomer(b entities.Buyer) customerDTO {
	return customerDTO{
		Name:         strings.TrimSpace(b.Name),
		Email:        strings.TrimSpace(b.Email),
		Type:         customerType,
		Document:     validation.OnlyDigits(b.Document),
		DocumentType: documentTypeCPF,
		Phones:       phonesDTO{MobilePhone: SplitPhone(b.Phone)},
	}
}

// ClampInstallments coerces an unset or out-of-range count into 1..max.
func ClampInstallments(n, max int) int {
	if max < 1 {
		max = 1
	}
	if n < 1 {
		return 1
	}
	if n > max {
		return max
	}
	return n
}
