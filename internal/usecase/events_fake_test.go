package usecase

import (
	"context"
	"fmt"
	"sync"

	"arthub_checkout/internal/domain/entities"
	"arthub_checkout/internal/usecase/interfaces"
)

type recordedEvent struct {
	traceID string
	spanID  string
	route   string
	stage   string
	status  entities.LogStatus
	detail  entities.EventDetail
	base    map[string]any
}

// fakeEvents records events synchronously so tests can assert on order.
type fakeEvents struct {
	mu     sync.Mutex
	traces int
	events []recordedEvent
}

func (f *fakeEvents) StartTrace(_ context.Context, route string, base map[string]any) interfaces.ITrace {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.traces++
	return &fakeTrace{events: f, id: fmt.Sprintf("trace-%d", f.traces), route: route, base: base}
}

func (f *fakeEvents) Emit(route, stage string, status entities.LogStatus, detail entities.EventDetail) {
	f.record(recordedEvent{route: route, stage: stage, status: status, detail: detail})
}

func (f *fakeEvents) record(ev recordedEvent) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, ev)
}

func (f *fakeEvents) all() []recordedEvent {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]recordedEvent(nil), f.events...)
}

func (f *fakeEvents) stages() []string {
	var out []string
	for _, ev := range f.all() {
		out = append(out, ev.stage)
	}
	return out
}

func (f *fakeEvents) find(stage string) []recordedEvent {
	var out []recordedEvent
	for _, ev := range f.all() {
		if ev.stage == stage {
			out = append(out, ev)
		}
	}
	return out
}

// transitions returns the "from>to" pairs of state_change events.
func (f *fakeEvents) transitions() []string {
	var out []string
	for _, ev := range f.find("state_change") {
		out = append(out, fmt.Sprintf("%v>%v", ev.detail.Meta["from"], ev.detail.Meta["to"]))
	}
	return out
}

type fakeTrace struct {
	events *fakeEvents
	id     string
	route  string
	base   map[string]any
}

func (t *fakeTrace) TraceID() string { return t.id }

func (t *fakeTrace) Emit(stage string, status entities.LogStatus, detail entities.EventDetail) {
	t.events.record(recordedEvent{traceID: t.id, spanID: t.id + "-root", route: t.route, stage: stage, status: status, detail: detail, base: t.base})
}

func (t *fakeTrace) StartStep(stage string) interfaces.IStep {
	return &fakeStep{trace: t, stage: stage}
}

func (t *fakeTrace) End() {}

type fakeStep struct {
	trace *fakeTrace
	stage string
}

func (s *fakeStep) SpanID() string { return s.trace.id + "-" + s.stage }

func (s *fakeStep) Emit(status entities.LogStatus, detail entities.EventDetail) {
	t := s.trace
	t.events.record(recordedEvent{traceID: t.id, spanID: s.SpanID(), route: t.route, stage: s.stage, status: status, detail: detail, base: t.base})
}

func (s *fakeStep) End() {}
