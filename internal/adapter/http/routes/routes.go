package routes

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "arthub_checkout/docs" // swag generated
	"arthub_checkout/internal/adapter/http/handlers"
	"arthub_checkout/internal/adapter/http/validation"
	"arthub_checkout/internal/adapter/persistence/repository"
	"arthub_checkout/internal/infrastructure/backend"
	"arthub_checkout/internal/infrastructure/config"
	"arthub_checkout/internal/infrastructure/database"
	"arthub_checkout/internal/infrastructure/observability"
	"arthub_checkout/internal/infrastructure/psp"
	"arthub_checkout/internal/infrastructure/restclient"
	"arthub_checkout/internal/usecase"
	"arthub_checkout/internal/usecase/interfaces"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
)

const (
	sweepInterval   = time.Minute
	shutdownTimeout = 10 * time.Second
	flushTimeout    = 2 * time.Second
)

// App is the wired HTTP service. Which surfaces it mounts depends on cfg.Role.
type App struct {
	Router *gin.Engine

	pipeline    *observability.Pipeline
	sessions    *usecase.CheckoutSessionUseCase
	stopSweeper context.CancelFunc
}

// NewApp builds the router and its dependencies. Tracer and meter providers are
// taken from the otel globals.
func NewApp(ctx context.Context, cfg config.Config) (*App, error) {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(otelgin.Middleware(cfg.ServiceName))

	app := &App{Router: router}
	v := validation.New()

	var ingest usecase.ILogIngestUseCase
	if cfg.Role.ServesLogSink() {
		ddb, err := database.ConnectDynamoDB(ctx, cfg.Dynamo)
		if err != nil {
			return nil, err
		}
		if cfg.Dynamo.Endpoint != "" {
			if err := database.EnsureLogsTable(ctx, ddb, cfg.Dynamo.LogsTable); err != nil {
				return nil, err
			}
		}
		ingest = usecase.NewLogIngestUseCase(repository.NewLogEventDynamoRepository(ddb, cfg.Dynamo.LogsTable))
	}

	// With the sink in-process, events skip the HTTP hop.
	var sender interfaces.ILogSender
	if ingest != nil {
		sender = usecase.NewLogIngestSender(ingest)
	} else {
		sender = backend.NewLogClient(restclient.New(cfg.BackendBaseURL, cfg.HTTPTimeout))
	}
	app.pipeline = observability.NewPipeline(sender, observability.WithQueueSize(cfg.LogQueueSize))
	events := observability.NewEventLogger(app.pipeline, otel.GetTracerProvider(), "", cfg.Mode,
		observability.WithPreviewLimit(cfg.LogPreviewLimit))

	router.Use(handlers.Recovery(events))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	addPingRoutes(router, cfg)

	if cfg.Role.ServesCheckout() {
		backendHTTP := restclient.New(cfg.BackendBaseURL, cfg.HTTPTimeout)
		components := usecase.CheckoutComponents{
			Tokenizer: psp.NewPagarmeTokenizer(cfg.PSPBaseURL, cfg.PSPPublicKey, cfg.Mode, cfg.HTTPTimeout),
			Orders:    backend.NewOrderClient(backendHTTP, cfg.Product, cfg.Mode, cfg.MaxInstallments),
			Pix:       backend.NewPixClient(backendHTTP, cfg.Product, cfg.Mode, time.Duration(cfg.PixExpiresIn)*time.Second),
			Product:   cfg.Product,
			Buyer:     cfg.PixBuyer,
			Events: func(sessionID string) interfaces.IEventLogger {
				return events.WithSession(sessionID)
			},
		}
		app.sessions = usecase.NewCheckoutSessionUseCase(components.Build, cfg.SessionIdleTTL)

		sweepCtx, cancel := context.WithCancel(context.Background())
		app.stopSweeper = cancel
		go app.sessions.RunSweeper(sweepCtx, sweepInterval)

		addCheckoutRoutes(router, handlers.NewCheckoutHandler(app.sessions, v))
	}
	if ingest != nil {
		addLogRoutes(router, handlers.NewLogHandler(ingest, v))
	}

	log.Printf("[http][routes] app ready role=%s mode=%s", cfg.Role, cfg.Mode)
	return app, nil
}

// FlushEvents waits for queued LogEvents to be delivered.
func (a *App) FlushEvents(ctx context.Context) error {
	return a.pipeline.Flush(ctx)
}

// Shutdown stops the session sweeper, tears down every session and drains the event pipeline.
func (a *App) Shutdown(ctx context.Context) error {
	if a.stopSweeper != nil {
		a.stopSweeper()
	}
	if a.sessions != nil {
		a.sessions.Shutdown()
	}
	return a.pipeline.Close(ctx)
}

// Run will start the server. On AWS Lambda it serves API Gateway proxy events instead.
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	ctx := context.Background()
	tp, err := observability.InitTracer(ctx, cfg.ServiceName, cfg.OTLPEndpoint)
	if err != nil {
		log.Fatalf("Failed to initialize tracer: %v", err)
	}
	defer func() {
		if err := tp.Shutdown(context.Background()); err != nil {
			log.Printf("Error shutting down tracer: %v", err)
		}
	}()
	mp, err := observability.InitMetrics(ctx, cfg.ServiceName, cfg.OTLPEndpoint)
	if err != nil {
		log.Fatalf("Failed to initialize metrics: %v", err)
	}
	defer func() {
		if err := mp.Shutdown(context.Background()); err != nil {
			log.Printf("Error shutting down meter: %v", err)
		}
	}()

	app, err := NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err)
	}

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		runLambda(app)
		return
	}

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: app.Router}
	go func() {
		log.Printf("[http][server] listening addr=%s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to startup the application: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	log.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error shutting down server: %v", err)
	}
	if err := app.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error draining log events: %v", err)
	}
}

// runLambda proxies API Gateway events to the router. The execution environment
// may freeze between invocations, so queued events are flushed before returning.
func runLambda(app *App) {
	adapter := ginadapter.New(app.Router)
	lambda.Start(func(ctx context.Context, req events.APIGatewayProxyRequest) (interface{}, error) {
		resp, err := adapter.ProxyWithContext(ctx, req)
		flushCtx, cancel := context.WithTimeout(ctx, flushTimeout)
		defer cancel()
		if ferr := app.FlushEvents(flushCtx); ferr != nil {
			log.Printf("[http][lambda] flush incomplete err=%v", ferr)
		}
		return resp, err
	})
}
