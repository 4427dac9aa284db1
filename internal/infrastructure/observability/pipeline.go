package observability

import (
	"context"
	"log"
	"sync"
	"time"

	"arthub_checkout/internal/domain/entities"
	"arthub_checkout/internal/usecase/interfaces"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const (
	meterName          = "arthub_checkout/observability"
	defaultQueueSize   = 256
	defaultSendTimeout = 5 * time.Second
)

type queued struct {
	event   entities.LogEvent
	flushed chan struct{}
}

// Pipeline delivers LogEvents best-effort through one ordered queue drained by a
// single goroutine. Enqueue never blocks: a full queue drops the event.
type Pipeline struct {
	sender      interfaces.ILogSender
	queue       chan queued
	done        chan struct{}
	sendTimeout time.Duration

	mu     sync.RWMutex
	closed bool

	emitted metric.Int64Counter
	dropped metric.Int64Counter
	failed  metric.Int64Counter
}

type PipelineOption func(*pipelineOptions)

type pipelineOptions struct {
	queueSize   int
	sendTimeout time.Duration
	meter       metric.Meter
}

func WithQueueSize(n int) PipelineOption {
	return func(o *pipelineOptions) {
		if n > 0 {
			o.queueSize = n
		}
	}
}

func WithSendTimeout(d time.Duration) PipelineOption {
	return func(o *pipelineOptions) {
		if d > 0 {
			o.sendTimeout = d
		}
	}
}

func WithMeter(m metric.Meter) PipelineOption {
	return func(o *pipelineOptions) { o.meter = m }
}

func NewPipeline(sender interfaces.ILogSender, opts ...PipelineOption) *Pipeline {
	o := pipelineOptions{queueSize: defaultQueueSize, sendTimeout: defaultSendTimeout}
	for _, opt := range opts {
		opt(&o)
	}
	if o.meter == nil {
		o.meter = otel.GetMeterProvider().Meter(meterName)
	}

	p := &Pipeline{
		sender:      sender,
		queue:       make(chan queued, o.queueSize),
		done:        make(chan struct{}),
		sendTimeout: o.sendTimeout,
	}
	p.emitted, _ = o.meter.Int64Counter("checkout.log_events.emitted", metric.WithDescription("LogEvents accepted by the pipeline"))
	p.dropped, _ = o.meter.Int64Counter("checkout.log_events.dropped", metric.WithDescription("LogEvents dropped on a full or closed queue"))
	p.failed, _ = o.meter.Int64Counter("checkout.log_events.delivery_failures", metric.WithDescription("LogEvents the ingestion endpoint did not accept"))

	go p.run()
	return p
}

// Enqueue reports whether the event was accepted. Callers are free to ignore it.
func (p *Pipeline) Enqueue(ev entities.LogEvent) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		p.add(p.dropped)
		return false
	}
	select {
	case p.queue <- queued{event: ev}:
		p.add(p.emitted)
		return true
	default:
		p.add(p.dropped)
		log.Printf("[observability][pipeline] queue full, dropping event trace_id=%s stage=%s", ev.TraceID, ev.Stage)
		return false
	}
}

// Flush waits until every event enqueued before the call was handed to the sender.
func (p *Pipeline) Flush(ctx context.Context) error {
	marker := make(chan struct{})
	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		return nil
	}
	select {
	case p.queue <- queued{flushed: marker}:
		p.mu.RUnlock()
	case <-ctx.Done():
		p.mu.RUnlock()
		return ctx.Err()
	}
	select {
	case <-marker:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops accepting events and drains the queue until ctx is done.
func (p *Pipeline) Close(ctx context.Context) error {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.queue)
	}
	p.mu.Unlock()

	select {
	case <-p.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *Pipeline) run() {
	defer close(p.done)
	for it := range p.queue {
		if it.flushed != nil {
			close(it.flushed)
			continue
		}
		p.deliver(it.event)
	}
}

func (p *Pipeline) deliver(ev entities.LogEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), p.sendTimeout)
	defer cancel()
	defer func() {
		if r := recover(); r != nil {
			p.add(p.failed)
			log.Printf("[observability][pipeline] sender panic trace_id=%s stage=%s recovered=%v", ev.TraceID, ev.Stage, r)
		}
	}()

	if err := p.sender.Send(ctx, ev); err != nil {
		p.add(p.failed)
		log.Printf("[observability][pipeline] delivery failed trace_id=%s stage=%s err=%v", ev.TraceID, ev.Stage, err)
	}
}

func (p *Pipeline) add(c metric.Int64Counter) {
	if c != nil {
		c.Add(context.Background(), 1)
	}
}
