package middleware

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"NeoWatch/internal/domain/models"
)

type stubPublisher struct {
	mu     sync.Mutex
	events []*models.AuditEvent
	fail   bool
}

func (s *stubPublisher) Publish(ctx context.Context, e *models.AuditEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return errors.New("sink unavailable")
	}
	s.events = append(s.events, e)
	return nil
}

func (s *stubPublisher) PublishBatch(ctx context.Context, events []*models.AuditEvent) error {
	for _, e := range events {
		if err := s.Publish(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

func (s *stubPublisher) Close() error { return nil }

func (s *stubPublisher) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.events)
}

func event(kind string) *models.AuditEvent {
	return &models.AuditEvent{ID: kind + "-1", Kind: kind, At: time.Now()}
}

func TestPipelineDeliversSubmittedEvents(t *testing.T) {
	sink := &stubPublisher{}
	p := NewAuditPipeline(sink, nil, WithBufferSize(16))
	p.Start(context.Background())

	p.Submit(event("classification"))
	p.Submit(event("risk"))

	deadline := time.Now().Add(2 * time.Second)
	for sink.count() < 2 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	p.Stop()

	if sink.count() != 2 {
		t.Fatalf("expected 2 delivered events, got %d", sink.count())
	}
}

func TestPipelineSubmitNeverBlocks(t *testing.T) {
	sink := &stubPublisher{fail: true}
	p := NewAuditPipeline(sink, nil, WithBufferSize(2))
	// not started; buffer fills and further submits drop

	done := make(chan struct{})
	go func() {
		for i := 0; i < 50; i++ {
			p.Submit(event("classification"))
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Submit blocked on a full buffer")
	}
}

func TestPipelineThrottlesPerKind(t *testing.T) {
	sink := &stubPublisher{}
	p := NewAuditPipeline(sink, nil, WithBufferSize(64), WithMaxEventsPerSec(1))

	p.Submit(event("risk"))
	p.Submit(event("risk"))
	p.Submit(event("classification"))

	if got := len(p.bufCh); got != 2 {
		t.Fatalf("expected 1 risk + 1 classification event buffered, got %d", got)
	}
}

func TestPipelineIgnoresInvalidEvents(t *testing.T) {
	p := NewAuditPipeline(&stubPublisher{}, nil)

	p.Submit(nil)
	p.Submit(&models.AuditEvent{})

	if got := len(p.bufCh); got != 0 {
		t.Fatalf("invalid events must not buffer, got %d", got)
	}
}

func TestPipelineStopIsIdempotent(t *testing.T) {
	p := NewAuditPipeline(&stubPublisher{}, nil)
	p.Start(context.Background())
	p.Stop()
	p.Stop()
}
