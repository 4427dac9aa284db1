package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"arthub_checkout/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func testConfig(t *testing.T, role string) config.Config {
	t.Helper()
	cfg, err := config.LoadFrom(func(k string) string {
		switch k {
		case "SERVICE_ROLE":
			return role
		case "BACKEND_BASE_URL":
			return "http://127.0.0.1:1"
		case "HTTP_TIMEOUT":
			return "1"
		}
		return ""
	})
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	return cfg
}

func routeSet(r *gin.Engine) map[string]bool {
	out := map[string]bool{}
	for _, ri := range r.Routes() {
		out[ri.Method+" "+ri.Path] = true
	}
	return out
}

func TestNewApp_CheckoutRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	app, err := NewApp(context.Background(), testConfig(t, "checkout"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = app.Shutdown(ctx)
	}()

	routes := routeSet(app.Router)
	for _, want := range []string{
		"POST /v1/checkout/sessions",
		"POST /v1/checkout/sessions/:session_id/card",
		"GET /v1/checkout/sessions/:session_id/pix",
		"POST /v1/checkout/sessions/:session_id/pix/copy",
		"DELETE /v1/checkout/sessions/:session_id",
		"GET /ping",
	} {
		if !routes[want] {
			t.Fatalf("missing route %s", want)
		}
	}
	if routes["GET /api/logs"] {
		t.Fatalf("checkout role must not mount the log sink")
	}

	w := httptest.NewRecorder()
	app.Router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/checkout/sessions", nil))
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	var opened map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &opened)

	w = httptest.NewRecorder()
	app.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/checkout/sessions/"+opened["session_id"]+"/pix", nil))
	var pix map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &pix)
	if w.Code != http.StatusOK || pix["state"] != "idle" || pix["can_copy"] != false {
		t.Fatalf("unexpected pix state %d: %s", w.Code, w.Body.String())
	}
}

func TestNewApp_LogSinkRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	app, err := NewApp(context.Background(), testConfig(t, "logsink"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = app.Shutdown(ctx)
	}()

	routes := routeSet(app.Router)
	if !routes["POST /api/log"] || !routes["GET /api/logs"] {
		t.Fatalf("log sink routes missing: %v", routes)
	}
	if routes["POST /v1/checkout/sessions"] {
		t.Fatalf("logsink role must not mount checkout sessions")
	}

	w := httptest.NewRecorder()
	app.Router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/log", nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for an empty event, got %d", w.Code)
	}
}
