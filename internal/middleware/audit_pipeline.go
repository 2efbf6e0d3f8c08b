package middleware

import (
	"context"
	"sync"
	"time"

	"NeoWatch/internal/domain/models"
	domrepo "NeoWatch/internal/domain/repository"
)

// AuditPipeline sits between the engine and the audit sink. Submits are
// non-blocking so classification latency never depends on the sink; a
// background flusher delivers buffered events with backoff, requeueing
// once on failure and dropping when the buffer is full.
type AuditPipeline struct {
	publisher domrepo.AuditPublisher
	metrics   domrepo.Metrics
	maxEPS    int
	bufSize   int
	bufCh     chan *models.AuditEvent
	stopCh    chan struct{}
	done      chan struct{}
	started   bool
	mu        sync.Mutex
	lastSeen  map[string]time.Time // per-kind last accepted time
}

type PipelineOption func(*AuditPipeline)

// WithMaxEventsPerSec caps accepted events per second per kind.
func WithMaxEventsPerSec(n int) PipelineOption {
	return func(p *AuditPipeline) {
		if n > 0 {
			p.maxEPS = n
		}
	}
}

// WithBufferSize sets the pending-event buffer size.
func WithBufferSize(n int) PipelineOption {
	return func(p *AuditPipeline) {
		if n > 0 {
			p.bufSize = n
		}
	}
}

// NewAuditPipeline creates a pipeline in front of the given publisher.
func NewAuditPipeline(publisher domrepo.AuditPublisher, metrics domrepo.Metrics, opts ...PipelineOption) *AuditPipeline {
	p := &AuditPipeline{
		publisher: publisher,
		metrics:   metrics,
		maxEPS:    200,
		bufSize:   1000,
		stopCh:    make(chan struct{}),
		done:      make(chan struct{}),
		lastSeen:  make(map[string]time.Time),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.bufCh = make(chan *models.AuditEvent, p.bufSize)
	return p
}

// Start launches background flushing of buffered events.
func (p *AuditPipeline) Start(ctx context.Context) {
	p.mu.Lock()
	if p.started {
		p.mu.Unlock()
		return
	}
	p.started = true
	p.mu.Unlock()

	go func() {
		defer close(p.done)
		backoff := 50 * time.Millisecond
		for {
			select {
			case <-p.stopCh:
				p.drain(ctx)
				return
			case e := <-p.bufCh:
				if e == nil {
					continue
				}
				if err := p.publisher.Publish(ctx, e); err != nil {
					if backoff < 2*time.Second {
						backoff *= 2
					}
					p.recordError("audit_flush")
					time.Sleep(backoff)
					// requeue if space; drop otherwise
					select {
					case p.bufCh <- e:
					default:
						p.recordError("audit_buffer_drop")
					}
				} else {
					backoff = 50 * time.Millisecond
				}
			}
		}
	}()
}

// Stop halts the flusher after a best-effort drain of buffered events.
func (p *AuditPipeline) Stop() {
	p.mu.Lock()
	if !p.started {
		p.mu.Unlock()
		return
	}
	p.started = false
	p.mu.Unlock()
	close(p.stopCh)
	<-p.done
}

// Submit enqueues one event without blocking. Throttled or overflowing
// events are counted and dropped.
func (p *AuditPipeline) Submit(e *models.AuditEvent) {
	if e == nil || e.Kind == "" {
		p.recordError("audit_invalid")
		return
	}

	if !p.allow(e.Kind, time.Now()) {
		p.recordError("audit_throttle")
		return
	}

	select {
	case p.bufCh <- e:
		if p.metrics != nil {
			p.metrics.RecordLatency("audit_buffer_depth", float64(len(p.bufCh)))
		}
	default:
		p.recordError("audit_buffer_full")
	}
}

func (p *AuditPipeline) drain(ctx context.Context) {
	deadline := time.After(3 * time.Second)
	for {
		select {
		case e := <-p.bufCh:
			if e == nil {
				continue
			}
			if err := p.publisher.Publish(ctx, e); err != nil {
				p.recordError("audit_drain")
				return
			}
		case <-deadline:
			return
		default:
			return
		}
	}
}

func (p *AuditPipeline) allow(kind string, now time.Time) bool {
	if p.maxEPS <= 0 {
		return true
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	last := p.lastSeen[kind]
	if last.IsZero() {
		p.lastSeen[kind] = now
		return true
	}
	if now.Sub(last) < time.Second/time.Duration(p.maxEPS) {
		return false
	}
	p.lastSeen[kind] = now
	return true
}

func (p *AuditPipeline) recordError(kind string) {
	if p.metrics != nil {
		p.metrics.RecordError(kind)
	}
}
