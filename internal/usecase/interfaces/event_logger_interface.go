package interfaces

import (
	"context"

	"arthub_checkout/internal/domain/entities"
)

// IEventLogger builds correlated LogEvents. Every method is fire-and-forget and
// never returns delivery errors.
type IEventLogger interface {
	// StartTrace opens one user action. base is merged into the meta of every event.
	StartTrace(ctx context.Context, route string, base map[string]any) ITrace
	// Emit sends a standalone event outside any trace (global hooks, recovery).
	Emit(route, stage string, status entities.LogStatus, detail entities.EventDetail)
}

type ITrace interface {
	TraceID() string
	Emit(stage string, status entities.LogStatus, detail entities.EventDetail)
	StartStep(stage string) IStep
	End()
}

type IStep interface {
	SpanID() string
	Emit(status entities.LogStatus, detail entities.EventDetail)
	End()
}

// ILogSender ships one event to the ingestion endpoint.
type ILogSender interface {
	Send(ctx context.Context, event entities.LogEvent) error
}

// ILogSource reads the aggregated log endpoint.
type ILogSource interface {
	FetchLogs(ctx context.Context, limit int) ([]entities.LogEntry, error)
}
