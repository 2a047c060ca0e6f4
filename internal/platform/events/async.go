package events

import (
	"context"
	"log/slog"
	"sync"

	"github.com/SscSPs/workorder_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/workorder_tracker/internal/core/ports/services"
	"github.com/SscSPs/workorder_tracker/internal/middleware"
	"github.com/SscSPs/workorder_tracker/internal/platform/observability"
)

type queuedEvent struct {
	ctx   context.Context
	event domain.Event
}

// AsyncSink queues events on a bounded channel and hands them to next from
// background workers. A full queue drops the event.
type AsyncSink struct {
	next    portssvc.EventSink
	metrics *observability.Metrics
	queue   chan queuedEvent

	mu      sync.RWMutex
	stopped bool
	wg      sync.WaitGroup
}

var _ portssvc.EventSink = (*AsyncSink)(nil)

// NewAsyncSink creates a sink with the given queue capacity. Call Start before publishing.
func NewAsyncSink(next portssvc.EventSink, queueSize int, metrics *observability.Metrics) *AsyncSink {
	if queueSize <= 0 {
		queueSize = 1
	}
	return &AsyncSink{
		next:    next,
		metrics: metrics,
		queue:   make(chan queuedEvent, queueSize),
	}
}

// Start launches the workers.
func (s *AsyncSink) Start(workers int) {
	if workers <= 0 {
		workers = 1
	}
	for i := 0; i < workers; i++ {
		s.wg.Add(1)
		go s.worker()
	}
}

// Stop stops accepting events and waits until the queue is drained.
func (s *AsyncSink) Stop() {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.stopped = true
	close(s.queue)
	s.mu.Unlock()
	s.wg.Wait()
}

// Publish never blocks the caller.
func (s *AsyncSink) Publish(ctx context.Context, event domain.Event) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	logger := middleware.GetLoggerFromCtx(ctx)
	if s.stopped {
		logger.Warn("Event sink stopped, dropping event", slog.String("event_type", string(event.Type)))
		s.metrics.RecordEventDropped(string(event.Type))
		return
	}

	// detach from request cancellation but keep the request-scoped logger
	select {
	case s.queue <- queuedEvent{ctx: context.WithoutCancel(ctx), event: event}:
	default:
		logger.Warn("Event queue full, dropping event",
			slog.String("event_type", string(event.Type)),
			slog.String("entity_id", event.EntityID))
		s.metrics.RecordEventDropped(string(event.Type))
	}
}

func (s *AsyncSink) worker() {
	defer s.wg.Done()
	for qe := range s.queue {
		s.deliver(qe)
	}
}

func (s *AsyncSink) deliver(qe queuedEvent) {
	defer func() {
		if r := recover(); r != nil {
			middleware.GetLoggerFromCtx(qe.ctx).Error("Event handler panicked",
				slog.String("event_type", string(qe.event.Type)),
				slog.Any("panic", r))
		}
	}()
	s.next.Publish(qe.ctx, qe.event)
	s.metrics.RecordEventPublished(string(qe.event.Type))
}
