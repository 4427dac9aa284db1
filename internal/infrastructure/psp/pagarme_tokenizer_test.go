package psp

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"arthub_checkout/internal/domain/entities"
)

func cardForm() entities.CheckoutForm {
	return entities.CheckoutForm{
		CardNumber: "4111 1111 1111 1111",
		HolderName: " MARIA SILVA ",
		ExpMonth:   "7",
		ExpYear:    "29",
		CVV:        "123",
		Document:   "12345678909",
		Email:      "maria@example.com",
		Address:    entities.Address{Line1: "Rua A", City: "Sao Paulo", State: "SP", ZipCode: "01310100"},
	}
}

func newTokenizerServer(t *testing.T, hits *int32, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(hits, 1)
		if r.URL.Path != "/core/v5/tokens" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if r.URL.Query().Get("appId") != "pk_test_abc123" {
			t.Errorf("unexpected appId %q", r.URL.Query().Get("appId"))
		}
		var payload map[string]any
		_ = json.NewDecoder(r.Body).Decode(&payload)
		card, _ := payload["card"].(map[string]any)
		if payload["type"] != "card" || card["number"] != "4111111111111111" || card["exp_month"] != "07" || card["exp_year"] != "2029" || card["holder_name"] != "MARIA SILVA" {
			t.Errorf("unexpected payload: %v", payload)
		}
		if _, ok := payload["billing_address"]; ok {
			t.Errorf("billing address must not be tokenized")
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestPagarmeTokenizer_Tokenize(t *testing.T) {
	t.Run("token under id", func(t *testing.T) {
		var hits int32
		srv := newTokenizerServer(t, &hits, http.StatusOK, `{"id":"tok_123","type":"card"}`)
		tk := NewPagarmeTokenizer(srv.URL+"/core/v5", "pk_test_abc123", entities.ModeTest, time.Second)
		fixed := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		tk.nowFunc = func() time.Time { return fixed }

		tok, err := tk.Tokenize(context.Background(), cardForm())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tok.ID != "tok_123" || !tok.IssuedAt.Equal(fixed) {
			t.Fatalf("unexpected token: %+v", tok)
		}
	})

	t.Run("token under legacy fields", func(t *testing.T) {
		for body, want := range map[string]string{
			`{"token":"tok_legacy"}`:          "tok_legacy",
			`{"card":{"id":"card_abc"}}`:      "card_abc",
			`{"id":"","token":"tok_second"}`:  "tok_second",
		} {
			var hits int32
			srv := newTokenizerServer(t, &hits, http.StatusOK, body)
			tk := NewPagarmeTokenizer(srv.URL+"/core/v5", "pk_test_abc123", entities.ModeTest, time.Second)
			tok, err := tk.Tokenize(context.Background(), cardForm())
			if err != nil || tok.ID != want {
				t.Fatalf("body %s: expected %s, got %+v %v", body, want, tok, err)
			}
		}
	})

	t.Run("missing token is a protocol error", func(t *testing.T) {
		var hits int32
		srv := newTokenizerServer(t, &hits, http.StatusOK, `{"type":"card"}`)
		tk := NewPagarmeTokenizer(srv.URL+"/core/v5", "pk_test_abc123", entities.ModeTest, time.Second)
		_, err := tk.Tokenize(context.Background(), cardForm())
		if !errors.Is(err, entities.ErrProtocol) {
			t.Fatalf("expected protocol error, got %v", err)
		}
	})

	t.Run("non-2xx uses PSP message", func(t *testing.T) {
		var hits int32
		srv := newTokenizerServer(t, &hits, http.StatusUnprocessableEntity, `{"message":"The request is invalid.","errors":{"card.number":["invalid"]}}`)
		tk := NewPagarmeTokenizer(srv.URL+"/core/v5", "pk_test_abc123", entities.ModeTest, time.Second)
		_, err := tk.Tokenize(context.Background(), cardForm())
		ce, ok := entities.AsCheckoutError(err)
		if !ok || ce.Kind != entities.KindTokenization || ce.Message != "The request is invalid." || ce.HTTPStatus != 422 {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("non-2xx without message falls back to status", func(t *testing.T) {
		var hits int32
		srv := newTokenizerServer(t, &hits, http.StatusBadGateway, `oops`)
		tk := NewPagarmeTokenizer(srv.URL+"/core/v5", "pk_test_abc123", entities.ModeTest, time.Second)
		_, err := tk.Tokenize(context.Background(), cardForm())
		ce, ok := entities.AsCheckoutError(err)
		if !ok || ce.Message != "tokenization failed (status 502)" {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("key problems fail before any network call", func(t *testing.T) {
		cases := []struct {
			key  string
			mode entities.Mode
		}{
			{"", entities.ModeTest},
			{"sk_test_secret", entities.ModeTest},
			{"pk_test_abc123", entities.ModeLive},
			{"pk_live123", entities.ModeTest},
		}
		for _, tc := range cases {
			var hits int32
			srv := newTokenizerServer(t, &hits, http.StatusOK, `{"id":"tok"}`)
			tk := NewPagarmeTokenizer(srv.URL+"/core/v5", tc.key, tc.mode, time.Second)
			_, err := tk.Tokenize(context.Background(), cardForm())
			if !errors.Is(err, entities.ErrConfiguration) {
				t.Fatalf("key %q mode %s: expected configuration error, got %v", tc.key, tc.mode, err)
			}
			if atomic.LoadInt32(&hits) != 0 {
				t.Fatalf("key %q: network was called", tc.key)
			}
		}
	})

	t.Run("transport failure is a network error", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()
		tk := NewPagarmeTokenizer(url, "pk_test_abc123", entities.ModeTest, time.Second)
		_, err := tk.Tokenize(context.Background(), cardForm())
		if !errors.Is(err, entities.ErrNetwork) {
			t.Fatalf("expected network error, got %v", err)
		}
	})
}
