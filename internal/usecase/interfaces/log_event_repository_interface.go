package interfaces

import (
	"context"
	"errors"

	"arthub_checkout/internal/domain/entities"
)

// ErrLogEntryExists is returned by Create when an entry with the same id is stored.
var ErrLogEntryExists = errors.New("log entry already exists")

// ILogEventRepository abstracts DynamoDB persistence for LogEntry.

type ILogEventRepository interface {
	Create(ctx context.Context, e entities.LogEntry) (entities.LogEntry, error)
	ListRecent(ctx context.Context, limit int) ([]entities.LogEntry, error)
	ListByTraceID(ctx context.Context, traceID string) ([]entities.LogEntry, error)
}
