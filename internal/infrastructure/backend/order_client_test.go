package backend

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"arthub_checkout/internal/domain/entities"
	"arthub_checkout/internal/infrastructure/restclient"
)

var testProduct = entities.Product{AmountCents: 1000, Description: "Custom song", ItemCode: "SONG_001"}

func orderForm() entities.CheckoutForm {
	return entities.CheckoutForm{
		CardNumber:   "4111111111111111",
		HolderName:   "Maria Silva",
		ExpMonth:     "12",
		ExpYear:      "30",
		CVV:          "123",
		Document:     "123.456.789-09",
		Email:        "maria@example.com",
		Phone:        "(11) 98765-4321",
		Address:      entities.Address{Line1: "Rua A, 100", Line2: "apto 1", ZipCode: "01310-100", City: "Sao Paulo", State: "sp"},
		Installments: 5,
	}
}

func newOrderServer(t *testing.T, status int, body string, inspect func(payload map[string]any, raw string)) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != creditCardPath {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		raw, _ := io.ReadAll(r.Body)
		var payload map[string]any
		_ = json.Unmarshal(raw, &payload)
		if inspect != nil {
			inspect(payload, string(raw))
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newOrderClient(url string) *OrderClient {
	return NewOrderClient(restclient.New(url, time.Second), testProduct, entities.ModeTest, 3)
}

func TestOrderClient_Payload(t *testing.T) {
	srv := newOrderServer(t, http.StatusOK, `{"ok":true,"status":"paid"}`, func(p map[string]any, raw string) {
		if p["card_token"] != "tok_123" || p["amount"] != float64(1000) || p["installments"] != float64(3) || p["mode"] != "test" {
			t.Errorf("unexpected order fields: %v", p)
		}
		for _, secret := range []string{"4111111111111111", `"cvv"`, `"exp_month"`} {
			if strings.Contains(raw, secret) {
				t.Errorf("raw card data leaked: %s", secret)
			}
		}
		customer := p["customer"].(map[string]any)
		if customer["document"] != "12345678909" || customer["document_type"] != "CPF" || customer["type"] != "individual" {
			t.Errorf("unexpected customer: %v", customer)
		}
		phone := customer["phones"].(map[string]any)["mobile_phone"].(map[string]any)
		if phone["country_code"] != "55" || phone["area_code"] != "11" || phone["number"] != "987654321" {
			t.Errorf("unexpected phone: %v", phone)
		}
		addr := customer["address"].(map[string]any)
		if addr["state"] != "SP" || addr["country"] != "BR" || addr["zip_code"] != "01310100" {
			t.Errorf("unexpected address: %v", addr)
		}
	})

	res, err := newOrderClient(srv.URL).SubmitCardOrder(context.Background(), entities.OpaqueToken{ID: "tok_123"}, orderForm())
	if err != nil || res.Status != entities.OrderStatusApproved {
		t.Fatalf("expected approved, got %+v %v", res, err)
	}
}

func TestOrderClient_Outcomes(t *testing.T) {
	t.Run("pending is not final", func(t *testing.T) {
		srv := newOrderServer(t, http.StatusOK, `{"ok":true,"status":"pending"}`, nil)
		res, err := newOrderClient(srv.URL).SubmitCardOrder(context.Background(), entities.OpaqueToken{ID: "tok"}, orderForm())
		if err != nil || res.Status != entities.OrderStatusPending || res.Reason != "payment pending issuer confirmation" {
			t.Fatalf("unexpected result: %+v %v", res, err)
		}
	})

	t.Run("bare ok without paid is not approval", func(t *testing.T) {
		srv := newOrderServer(t, http.StatusOK, `{"ok":true}`, nil)
		res, err := newOrderClient(srv.URL).SubmitCardOrder(context.Background(), entities.OpaqueToken{ID: "tok"}, orderForm())
		if err != nil || res.Status == entities.OrderStatusApproved {
			t.Fatalf("unexpected result: %+v %v", res, err)
		}
	})

	t.Run("negative status declines", func(t *testing.T) {
		srv := newOrderServer(t, http.StatusOK, `{"ok":true,"status":"failed","message":"insufficient funds"}`, nil)
		res, err := newOrderClient(srv.URL).SubmitCardOrder(context.Background(), entities.OpaqueToken{ID: "tok"}, orderForm())
		if err != nil || res.Status != entities.OrderStatusDeclined || res.Reason != "insufficient funds" {
			t.Fatalf("unexpected result: %+v %v", res, err)
		}
	})
}

func TestOrderClient_Errors(t *testing.T) {
	cases := []struct {
		name    string
		status  int
		body    string
		kind    error
		code    string
		message string
	}{
		{"ok false nested error", http.StatusOK, `{"ok":false,"error":{"message":"card refused"}}`, entities.ErrGateway, entities.CodeGatewayRejected, "card refused"},
		{"errors list", http.StatusBadRequest, `{"ok":false,"errors":[{"message":"invalid customer"}]}`, entities.ErrGateway, entities.CodeGateway4xx, "invalid customer"},
		{"message priority", http.StatusBadRequest, `{"message":"first","error":{"message":"second"}}`, entities.ErrGateway, entities.CodeGateway4xx, "first"},
		{"verification failure", http.StatusPreconditionFailed, `{"ok":false}`, entities.ErrGateway, entities.CodeCardVerificationFailed, "payment failed: HTTP 412"},
		{"server error", http.StatusBadGateway, `upstream down`, entities.ErrGateway, entities.CodeGateway5xx, "payment failed: HTTP 502"},
		{"malformed 2xx body", http.StatusOK, `{"ok":tru`, entities.ErrProtocol, entities.CodeProtocol, "unexpected payment response"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := newOrderServer(t, tc.status, tc.body, nil)
			_, err := newOrderClient(srv.URL).SubmitCardOrder(context.Background(), entities.OpaqueToken{ID: "tok"}, orderForm())
			if !errors.Is(err, tc.kind) {
				t.Fatalf("expected %v, got %v", tc.kind, err)
			}
			ce, _ := entities.AsCheckoutError(err)
			if ce.Code != tc.code || ce.Message != tc.message {
				t.Fatalf("unexpected error: code=%s message=%q", ce.Code, ce.Message)
			}
		})
	}

	t.Run("transport failure", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()
		_, err := newOrderClient(url).SubmitCardOrder(context.Background(), entities.OpaqueToken{ID: "tok"}, orderForm())
		if !errors.Is(err, entities.ErrNetwork) {
			t.Fatalf("expected network error, got %v", err)
		}
	})
}

func TestSplitPhoneAndClampInstallments(t *testing.T) {
	if p := SplitPhone("+55 (21) 3456-7890"); p.AreaCode != "21" || p.Number != "34567890" {
		t.Fatalf("unexpected phone: %+v", p)
	}
	if p := SplitPhone(""); p.AreaCode != "00" || p.Number != "000000000" {
		t.Fatalf("unexpected empty phone: %+v", p)
	}
	if ClampInstallments(0, 3) != 1 || ClampInstallments(2, 3) != 2 || ClampInstallments(9, 3) != 3 {
		t.Fatalf("unexpected clamp")
	}
}
