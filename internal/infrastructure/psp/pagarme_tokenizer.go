package psp

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"regexp"
	"strings"
	"time"

	"arthub_checkout/internal/domain/entities"
	"arthub_checkout/internal/domain/validation"
	"arthub_checkout/internal/infrastructure/restclient"
	"arthub_checkout/internal/usecase/interfaces"

	"github.com/go-resty/resty/v2"
)

const tokensPath = "/tokens"

var publicKeyPattern = regexp.MustCompile(`^pk_(test_)?[A-Za-z0-9]+$`)

type tokenResponse struct {
	ID    string `json:"id"`
	Token string `json:"token"`
	Card  struct {
		ID string `json:"id"`
	} `json:"card"`
}

// tokenRules lists the known places the PSP has returned the token in, most recent first.
var tokenRules = []struct {
	field   string
	extract func(tokenResponse) string
}{
	{"id", func(r tokenResponse) string { return r.ID }},
	{"token", func(r tokenResponse) string { return r.Token }},
	{"card.id", func(r tokenResponse) string { return r.Card.ID }},
}

// PagarmeTokenizer calls the PSP public tokenization endpoint with a publishable key.
type PagarmeTokenizer struct {
	http      *resty.Client
	publicKey string
	mode      entities.Mode
	nowFunc   func() time.Time
}

var _ interfaces.ITokenizer = (*PagarmeTokenizer)(nil)

func NewPagarmeTokenizer(baseURL, publicKey string, mode entities.Mode, timeout time.Duration) *PagarmeTokenizer {
	return &PagarmeTokenizer{
		http:      restclient.New(baseURL, timeout),
		publicKey: strings.TrimSpace(publicKey),
		mode:      mode,
		nowFunc:   time.Now,
	}
}

// CheckPublicKey rejects a missing or malformed key, or one issued for the other mode.
func CheckPublicKey(key string, mode entities.Mode) *entities.CheckoutError {
	if key == "" {
		return entities.NewConfigurationError("PSP publishable key is missing")
	}
	if !publicKeyPattern.MatchString(key) {
		return entities.NewConfigurationError("PSP publishable key is malformed")
	}
	isTest := strings.HasPrefix(key, "pk_test_")
	if mode == entities.ModeLive && isTest {
		return entities.NewConfigurationError("test publishable key used in live mode")
	}
	if mode == entities.ModeTest && !isTest {
		return entities.NewConfigurationError("live publishable key used in test mode")
	}
	return nil
}

func (t *PagarmeTokenizer) Tokenize(ctx context.Context, form entities.CheckoutForm) (entities.OpaqueToken, error) {
	if cerr := CheckPublicKey(t.publicKey, t.mode); cerr != nil {
		log.Printf("[checkout][psp] tokenize aborted mode=%s err=%s", t.mode, cerr.Message)
		return entities.OpaqueToken{}, cerr
	}

	month, year, _ := validation.ParseExpiry(form.ExpMonth, form.ExpYear)
	body := map[string]any{
		"type": "card",
		"card": map[string]any{
			"number":      validation.OnlyDigits(form.CardNumber),
			"holder_name": strings.TrimSpace(form.HolderName),
			"exp_month":   fmt.Sprintf("%02d", month),
			"exp_year":    fmt.Sprintf("%04d", year),
			"cvv":         form.CVV,
		},
	}

	log.Printf("[checkout][psp] tokenize start mode=%s", t.mode)
	resp, err := t.http.R().
		SetContext(ctx).
		SetQueryParam("appId", t.publicKey).
		SetBody(body).
		Post(tokensPath)
	ex := restclient.Exchange(resp, http.MethodPost, tokensPath)
	if err != nil {
		log.Printf("[checkout][psp] tokenize transport failed err=%v", err)
		return entities.OpaqueToken{}, entities.NewNetworkError("could not reach the payment provider", ex, err)
	}

	if !resp.IsSuccess() {
		msg := restclient.ErrorMessage(resp.Body())
		if msg == "" {
			msg = fmt.Sprintf("tokenization failed (status %d)", ex.Status)
		}
		log.Printf("[checkout][psp] tokenize rejected status=%d", ex.Status)
		return entities.OpaqueToken{}, entities.NewTokenizationError(msg, ex)
	}

	var tr tokenResponse
	if err := json.Unmarshal(resp.Body(), &tr); err != nil {
		log.Printf("[checkout][psp] tokenize response not json status=%d", ex.Status)
		return entities.OpaqueToken{}, entities.NewProtocolError("unexpected tokenization response", ex, err)
	}
	for _, rule := range tokenRules {
		if id := strings.TrimSpace(rule.extract(tr)); id != "" {
			log.Printf("[checkout][psp] tokenize success field=%s latency_ms=%d", rule.field, ex.Latency.Milliseconds())
			return entities.OpaqueToken{ID: id, IssuedAt: t.nowFunc()}, nil
		}
	}

	log.Printf("[checkout][psp] tokenize response without token status=%d", ex.Status)
	return entities.OpaqueToken{}, entities.NewProtocolError("card token not returned by the payment provider", ex, nil)
}
