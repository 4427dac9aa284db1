package observability

import (
	"context"
	"time"
	"unicode/utf8"

	"arthub_checkout/internal/domain/entities"
	"arthub_checkout/internal/usecase/interfaces"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	tracerName          = "arthub_checkout/checkout"
	DefaultPreviewLimit = 600
	originServer        = "server"
)

// eventQueue is the part of Pipeline the logger needs.
type eventQueue interface {
	Enqueue(ev entities.LogEvent) bool
}

// EventLogger builds correlated LogEvents for one checkout session and hands them
// to the shared Pipeline. Trace and span ids come from the OpenTelemetry tracer, so
// the same ids show up in exported spans when an OTLP collector is configured.
type EventLogger struct {
	queue        eventQueue
	tracer       trace.Tracer
	sessionID    string
	mode         entities.Mode
	previewLimit int
	nowFunc      func() time.Time
}

var _ interfaces.IEventLogger = (*EventLogger)(nil)

type LoggerOption func(*EventLogger)

func WithPreviewLimit(n int) LoggerOption {
	return func(l *EventLogger) {
		if n > 0 {
			l.previewLimit = n
		}
	}
}

func WithClock(now func() time.Time) LoggerOption {
	return func(l *EventLogger) { l.nowFunc = now }
}

func NewEventLogger(queue *Pipeline, tp trace.TracerProvider, sessionID string, mode entities.Mode, opts ...LoggerOption) *EventLogger {
	l := &EventLogger{
		queue:        queue,
		tracer:       tp.Tracer(tracerName),
		sessionID:    sessionID,
		mode:         mode,
		previewLimit: DefaultPreviewLimit,
		nowFunc:      time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// WithSession returns a copy bound to another session id.
func (l *EventLogger) WithSession(sessionID string) *EventLogger {
	cp := *l
	cp.sessionID = sessionID
	return &cp
}

func (l *EventLogger) SessionID() string { return l.sessionID }

func (l *EventLogger) StartTrace(ctx context.Context, route string, base map[string]any) interfaces.ITrace {
	ctx, span := l.tracer.Start(ctx, route,
		trace.WithNewRoot(),
		trace.WithAttributes(attribute.String("checkout.session_id", l.sessionID)),
	)
	return &traceRun{logger: l, ctx: ctx, span: span, route: route, base: copyMeta(base)}
}

func (l *EventLogger) Emit(route, stage string, status entities.LogStatus, detail entities.EventDetail) {
	_, span := l.tracer.Start(context.Background(), route+"."+stage, trace.WithNewRoot())
	sc := span.SpanContext()
	markSpan(span, status, detail)
	span.End()
	l.queue.Enqueue(l.build(route, stage, status, sc.TraceID().String(), sc.SpanID().String(), nil, detail))
}

func (l *EventLogger) build(route, stage string, status entities.LogStatus, traceID, spanID string, base map[string]any, d entities.EventDetail) entities.LogEvent {
	meta := map[string]any{
		"env":    string(l.mode),
		"origin": originServer,
	}
	for k, v := range base {
		meta[k] = v
	}
	for k, v := range d.Meta {
		meta[k] = v
	}
	if ex := d.Exchange; ex != nil {
		meta["http"] = map[string]any{
			"method":     ex.Method,
			"url":        ex.URL,
			"status":     ex.Status,
			"latency_ms": ex.Latency.Milliseconds(),
		}
		if ex.Body != "" {
			meta["response_preview"] = Truncate(ex.Body, l.previewLimit)
		}
	}

	return entities.LogEvent{
		Timestamp:  l.nowFunc().UTC(),
		TraceID:    traceID,
		SpanID:     spanID,
		SessionID:  l.sessionID,
		Route:      route,
		Stage:      stage,
		Status:     status,
		ErrorClass: d.ErrorClass,
		ErrorCode:  d.ErrorCode,
		Message:    d.Message,
		Meta:       meta,
	}
}

type traceRun struct {
	logger *EventLogger
	ctx    context.Context
	span   trace.Span
	route  string
	base   map[string]any
}

func (t *traceRun) TraceID() string { return t.span.SpanContext().TraceID().String() }

func (t *traceRun) Emit(stage string, status entities.LogStatus, detail entities.EventDetail) {
	sc := t.span.SpanContext()
	markSpan(t.span, status, detail)
	t.logger.queue.Enqueue(t.logger.build(t.route, stage, status, sc.TraceID().String(), sc.SpanID().String(), t.base, detail))
}

func (t *traceRun) StartStep(stage string) interfaces.IStep {
	_, span := t.logger.tracer.Start(t.ctx, t.route+"."+stage)
	return &stepRun{trace: t, stage: stage, span: span}
}

func (t *traceRun) End() { t.span.End() }

type stepRun struct {
	trace *traceRun
	stage string
	span  trace.Span
}

func (s *stepRun) SpanID() string { return s.span.SpanContext().SpanID().String() }

func (s *stepRun) Emit(status entities.LogStatus, detail entities.EventDetail) {
	sc := s.span.SpanContext()
	markSpan(s.span, status, detail)
	l := s.trace.logger
	l.queue.Enqueue(l.build(s.trace.route, s.stage, status, sc.TraceID().String(), sc.SpanID().String(), s.trace.base, detail))
}

func (s *stepRun) End() { s.span.End() }

func markSpan(span trace.Span, status entities.LogStatus, d entities.EventDetail) {
	span.AddEvent(string(status))
	if status == entities.LogStatusError || status == entities.LogStatusFailed {
		span.SetStatus(codes.Error, d.Message)
		if d.ErrorCode != "" {
			span.SetAttributes(attribute.String("checkout.error_code", d.ErrorCode))
		}
	}
}

// Truncate keeps at most n runes of s.
func Truncate(s string, n int) string {
	if n <= 0 || utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

func copyMeta(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
