package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"arthub_checkout/internal/domain/entities"
)

// Role selects which HTTP surfaces the service mounts.
type Role string

const (
	RoleCheckout Role = "checkout"
	RoleLogSink  Role = "logsink"
	RoleAll      Role = "all"
)

func (r Role) ServesCheckout() bool { return r == RoleCheckout || r == RoleAll }
func (r Role) ServesLogSink() bool  { return r == RoleLogSink || r == RoleAll }

const (
	defaultAmountTest   = 1000
	defaultAmountLive   = 49700
	defaultDescription  = "Música personalizada Studio Art Hub"
	defaultItemCode     = "MUSICA_PERSONALIZADA_001"
	defaultPSPBaseURL   = "https://api.pagar.me/core/v5"
	defaultBackendURL   = "http://localhost:8080"
	defaultLogsTable    = "checkout_logs"
	defaultServiceName  = "arthub-checkout"
	defaultHTTPTimeout  = 15 * time.Second
	defaultSessionIdle  = 30 * time.Minute
	defaultPixExpiresIn = 3600
)

type DynamoConfig struct {
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
	LogsTable string
}

type Config struct {
	Port            string
	Role            Role
	Mode            entities.Mode
	PSPBaseURL      string
	PSPPublicKey    string
	BackendBaseURL  string
	HTTPTimeout     time.Duration
	Product         entities.Product
	MaxInstallments int
	PixExpiresIn    int
	PixBuyer        entities.Buyer
	LogPreviewLimit int
	LogQueueSize    int
	SessionIdleTTL  time.Duration
	OTLPEndpoint    string
	ServiceName     string
	Dynamo          DynamoConfig
}

// Load reads the process environment. Call it after godotenv/autoload ran.
func Load() (Config, error) {
	return LoadFrom(os.Getenv)
}

// LoadFrom reads configuration through getenv. Unknown modes or roles and
// non-numeric values are errors; missing values take their defaults.
func LoadFrom(getenv func(string) string) (Config, error) {
	env := lookup(getenv)

	mode, err := entities.ParseMode(env.str("CHECKOUT_MODE", string(entities.ModeTest)))
	if err != nil {
		return Config{}, err
	}
	role := Role(strings.ToLower(env.str("SERVICE_ROLE", string(RoleAll))))
	switch role {
	case RoleCheckout, RoleLogSink, RoleAll:
	default:
		return Config{}, fmt.Errorf("invalid SERVICE_ROLE %q", role)
	}

	defaultAmount := int64(defaultAmountTest)
	if mode == entities.ModeLive {
		defaultAmount = defaultAmountLive
	}

	cfg := Config{
		Port:           env.str("PORT", "8080"),
		Role:           role,
		Mode:           mode,
		PSPBaseURL:     env.str("PSP_BASE_URL", defaultPSPBaseURL),
		PSPPublicKey:   env.str("PSP_PUBLIC_KEY", ""),
		BackendBaseURL: env.str("BACKEND_BASE_URL", defaultBackendURL),
		Product: entities.Product{
			Description: env.str("PRODUCT_DESCRIPTION", defaultDescription),
			ItemCode:    env.str("PRODUCT_ITEM_CODE", defaultItemCode),
		},
		PixBuyer: entities.Buyer{
			Name:     env.str("PIX_CUSTOMER_NAME", ""),
			Email:    env.str("PIX_CUSTOMER_EMAIL", ""),
			Document: env.str("PIX_CUSTOMER_DOCUMENT", ""),
			Phone:    env.str("PIX_CUSTOMER_PHONE", ""),
		},
		OTLPEndpoint: env.str("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
		ServiceName:  env.str("SERVICE_NAME", defaultServiceName),
		Dynamo: DynamoConfig{
			Region:    env.str("AWS_REGION", "us-east-1"),
			Endpoint:  env.str("DYNAMODB_ENDPOINT", ""),
			AccessKey: env.str("AWS_ACCESS_KEY_ID", "local"),
			SecretKey: env.str("AWS_SECRET_ACCESS_KEY", "local"),
			LogsTable: env.str("LOGS_TABLE", defaultLogsTable),
		},
	}

	if cfg.Product.AmountCents, err = env.number64("PRODUCT_AMOUNT", defaultAmount); err != nil {
		return Config{}, err
	}
	if cfg.Product.AmountCents <= 0 {
		return Config{}, fmt.Errorf("invalid PRODUCT_AMOUNT %d", cfg.Product.AmountCents)
	}
	if cfg.MaxInstallments, err = env.number("MAX_INSTALLMENTS", 3); err != nil {
		return Config{}, err
	}
	if cfg.PixExpiresIn, err = env.number("PIX_EXPIRES_IN", defaultPixExpiresIn); err != nil {
		return Config{}, err
	}
	if cfg.LogPreviewLimit, err = env.number("LOG_PREVIEW_LIMIT", 600); err != nil {
		return Config{}, err
	}
	if cfg.LogQueueSize, err = env.number("LOG_QUEUE_SIZE", 256); err != nil {
		return Config{}, err
	}
	if cfg.HTTPTimeout, err = env.duration("HTTP_TIMEOUT", defaultHTTPTimeout); err != nil {
		return Config{}, err
	}
	if cfg.SessionIdleTTL, err = env.duration("SESSION_IDLE_TTL", defaultSessionIdle); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

type lookup func(string) string

func (l lookup) str(key, def string) string {
	if v := strings.TrimSpace(l(key)); v != "" {
		return v
	}
	return def
}

func (l lookup) number(key string, def int) (int, error) {
	v := l.str(key, "")
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return n, nil
}

func (l lookup) number64(key string, def int64) (int64, error) {
	v := l.str(key, "")
	if v == "" {
		return def, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return n, nil
}

// duration accepts Go durations ("15s") or plain seconds ("15").
func (l lookup) duration(key string, def time.Duration) (time.Duration, error) {
	v := l.str(key, "")
	if v == "" {
		return def, nil
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return d, nil
}
