package validation

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"arthub_checkout/internal/domain/entities"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type rule func(f entities.CheckoutForm, now time.Time) *entities.CheckoutError

// rules run in this order and the first violation wins.
var rules = []rule{
	checkCardNumber,
	checkExpiry,
	checkCVV,
	checkDocument,
	checkEmail,
	checkPhone,
	checkPostalCode,
	checkAddress,
}

// Validate checks the form before any network call. It has no side effects and
// returns nil when every rule passes.
func Validate(f entities.CheckoutForm, now time.Time) *entities.CheckoutError {
	for _, r := range rules {
		if err := r(f, now); err != nil {
			return err
		}
	}
	return nil
}

// SanitizePAN drops the separators a buyer usually types.
func SanitizePAN(v string) string {
	return strings.NewReplacer(" ", "", "-", "").Replace(strings.TrimSpace(v))
}

func OnlyDigits(v string) string {
	var b strings.Builder
	for _, r := range v {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Luhn reports whether a digit string passes the mod-10 checksum.
func Luhn(digits string) bool {
	if digits == "" {
		return false
	}
	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		c := digits[i]
		if c < '0' || c > '9' {
			return false
		}
		d := int(c - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}

// ParseExpiry returns the expiry month and the 4-digit year. A 2-digit year is
// taken as 20YY.
func ParseExpiry(month, year string) (int, int, bool) {
	m, err := strconv.Atoi(strings.TrimSpace(month))
	if err != nil || m < 1 || m > 12 {
		return 0, 0, false
	}
	ys := strings.TrimSpace(year)
	if ys == "" || OnlyDigits(ys) != ys {
		return m, 0, false
	}
	y, _ := strconv.Atoi(ys)
	switch len(ys) {
	case 2:
		y += 2000
	case 4:
	default:
		return m, 0, false
	}
	return m, y, true
}

func checkCardNumber(f entities.CheckoutForm, _ time.Time) *entities.CheckoutError {
	pan := SanitizePAN(f.CardNumber)
	if len(pan) < 13 || len(pan) > 19 || OnlyDigits(pan) != pan || !Luhn(pan) {
		return entities.NewValidationError("card_number", "invalid card number")
	}
	return nil
}

func checkExpiry(f entities.CheckoutForm, now time.Time) *entities.CheckoutError {
	if m, err := strconv.Atoi(strings.TrimSpace(f.ExpMonth)); err != nil || m < 1 || m > 12 {
		return entities.NewValidationError("exp_month", "invalid expiry month")
	}
	m, y, ok := ParseExpiry(f.ExpMonth, f.ExpYear)
	if !ok {
		return entities.NewValidationError("exp_year", "invalid expiry year")
	}
	if y < now.Year() || (y == now.Year() && m < int(now.Month())) {
		return entities.NewValidationError("exp_year", "card expired")
	}
	return nil
}

func checkCVV(f entities.CheckoutForm, _ time.Time) *entities.CheckoutError {
	cvv := strings.TrimSpace(f.CVV)
	if len(cvv) < 3 || len(cvv) > 4 || OnlyDigits(cvv) != cvv {
		return entities.NewValidationError("cvv", "invalid CVV")
	}
	return nil
}

func checkDocument(f entities.CheckoutForm, _ time.Time) *entities.CheckoutError {
	if len(OnlyDigits(f.Document)) != 11 {
		return entities.NewValidationError("document", "document must have 11 digits")
	}
	return nil
}

func checkEmail(f entities.CheckoutForm, _ time.Time) *entities.CheckoutError {
	if !emailPattern.MatchString(strings.TrimSpace(f.Email)) {
		return entities.NewValidationError("email", "invalid email")
	}
	return nil
}

func checkPhone(f entities.CheckoutForm, _ time.Time) *entities.CheckoutError {
	if n := len(OnlyDigits(f.Phone)); n < 10 || n > 11 {
		return entities.NewValidationError("phone", "phone must have 10 or 11 digits")
	}
	return nil
}

func checkPostalCode(f entities.CheckoutForm, _ time.Time) *entities.CheckoutError {
	if len(OnlyDigits(f.Address.ZipCode)) != 8 {
		return entities.NewValidationError("zip_code", "postal code must have 8 digits")
	}
	return nil
}

func checkAddress(f entities.CheckoutForm, _ time.Time) *entities.CheckoutError {
	if strings.TrimSpace(f.Address.Line1) == "" {
		return entities.NewValidationError("line_1", "address line 1 is required")
	}
	if strings.TrimSpace(f.Address.City) == "" {
		return entities.NewValidationError("city", "city is required")
	}
	state := strings.TrimSpace(f.Address.State)
	if len(state) != 2 {
		return entities.NewValidationError("state", "state must have 2 letters")
	}
	for _, r := range state {
		if r > unicode.MaxASCII || !unicode.IsLetter(r) {
			return entities.NewValidationError("state", "state must have 2 letters")
		}
	}
	return nil
}
