package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"arthub_checkout/internal/domain/entities"
	"arthub_checkout/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidLogEvent = errors.New("invalid log event")
)

const (
	DefaultLogListLimit = 100
	MaxLogListLimit     = 500
)

// logEntryNamespace scopes the deterministic LogEntry ids.
var logEntryNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("arthub_checkout/log_entry"))

// ILogIngestUseCase stores and serves LogEvents for the log sink.
//
// Requested behavior:
//   - a retried delivery of the same event is stored once.
//   - events of one trace are served in timestamp order regardless of arrival order.

type ILogIngestUseCase interface {
	Ingest(ctx context.Context, ev entities.LogEvent) (entities.LogEntry, error)
	List(ctx context.Context, limit int, traceID string) ([]entities.LogEntry, error)
}

type LogIngestUseCase struct {
	repo    interfaces.ILogEventRepository
	nowFunc func() time.Time
}

var _ ILogIngestUseCase = (*LogIngestUseCase)(nil)

func NewLogIngestUseCase(repo interfaces.ILogEventRepository) *LogIngestUseCase {
	return &LogIngestUseCase{repo: repo, nowFunc: time.Now}
}

func (u *LogIngestUseCase) Ingest(ctx context.Context, ev entities.LogEvent) (entities.LogEntry, error) {
	if err := validateLogEvent(ev); err != nil {
		log.Printf("[logs][usecase] rejected event trace_id=%s stage=%s err=%v", ev.TraceID, ev.Stage, err)
		return entities.LogEntry{}, err
	}
	ev.Timestamp = ev.Timestamp.UTC()
	entry := entities.LogEntry{
		ID:         LogEntryID(ev),
		ReceivedAt: u.nowFunc().UTC(),
		LogEvent:   ev,
	}

	created, err := u.repo.Create(ctx, entry)
	if errors.Is(err, interfaces.ErrLogEntryExists) {
		log.Printf("[logs][usecase] duplicate event ignored id=%s trace_id=%s", entry.ID, ev.TraceID)
		return entry, nil
	}
	if err != nil {
		log.Printf("[logs][usecase] failed storing event trace_id=%s err=%v", ev.TraceID, err)
		return entities.LogEntry{}, err
	}
	return created, nil
}

func (u *LogIngestUseCase) List(ctx context.Context, limit int, traceID string) ([]entities.LogEntry, error) {
	traceID = strings.TrimSpace(traceID)
	if traceID != "" {
		entries, err := u.repo.ListByTraceID(ctx, traceID)
		if err != nil {
			return nil, err
		}
		sort.SliceStable(entries, func(i, j int) bool { return entries[i].Timestamp.Before(entries[j].Timestamp) })
		return entries, nil
	}

	switch {
	case limit <= 0:
		limit = DefaultLogListLimit
	case limit > MaxLogListLimit:
		limit = MaxLogListLimit
	}
	entries, err := u.repo.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Timestamp.After(entries[j].Timestamp) })
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

// LogEntryID derives the same id for every delivery of one event.
func LogEntryID(ev entities.LogEvent) string {
	key := strings.Join([]string{
		ev.TraceID,
		ev.SpanID,
		ev.Route,
		ev.Stage,
		string(ev.Status),
		ev.Timestamp.UTC().Format(time.RFC3339Nano),
	}, "|")
	return uuid.NewSHA1(logEntryNamespace, []byte(key)).String()
}

func validateLogEvent(ev entities.LogEvent) error {
	switch {
	case strings.TrimSpace(ev.TraceID) == "":
		return fmt.Errorf("%w: trace_id is required", ErrInvalidLogEvent)
	case strings.TrimSpace(ev.SpanID) == "":
		return fmt.Errorf("%w: span_id is required", ErrInvalidLogEvent)
	case strings.TrimSpace(ev.Stage) == "":
		return fmt.Errorf("%w: stage is required", ErrInvalidLogEvent)
	case !ev.Status.Valid():
		return fmt.Errorf("%w: unknown status %q", ErrInvalidLogEvent, ev.Status)
	case ev.Timestamp.IsZero():
		return fmt.Errorf("%w: timestamp is required", ErrInvalidLogEvent)
	}
	switch ev.ErrorClass {
	case "", entities.ErrorClassClient, entities.ErrorClassNetwork, entities.ErrorClassGateway:
	default:
		return fmt.Errorf("%w: unknown error_class %q", ErrInvalidLogEvent, ev.ErrorClass)
	}
	return nil
}
