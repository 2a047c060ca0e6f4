package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/workorder_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/workorder_tracker/internal/core/ports/services"
	"github.com/SscSPs/workorder_tracker/internal/middleware"
	"github.com/SscSPs/workorder_tracker/internal/platform/observability"
)

// BaseService provides common functionality for all services
type BaseService struct {
	Access  portssvc.CapabilityResolver
	Events  portssvc.EventSink
	Metrics *observability.Metrics
	clock   func() time.Time
}

// ServiceOption is a functional option shared by every service constructor
type ServiceOption func(*BaseService)

// WithEventSink routes the service's domain events to sink
func WithEventSink(sink portssvc.EventSink) ServiceOption {
	return func(s *BaseService) {
		s.Events = sink
	}
}

// WithMetrics attaches the Prometheus collectors
func WithMetrics(m *observability.Metrics) ServiceOption {
	return func(s *BaseService) {
		s.Metrics = m
	}
}

// WithClock overrides the time source, mostly for tests
func WithClock(now func() time.Time) ServiceOption {
	return func(s *BaseService) {
		s.clock = now
	}
}

func newBaseService(access portssvc.CapabilityResolver, options []ServiceOption) BaseService {
	base := BaseService{Access: access}
	for _, option := range options {
		option(&base)
	}
	return base
}

// Now returns the current UTC time from the configured clock
func (s *BaseService) Now() time.Time {
	if s.clock != nil {
		return s.clock().UTC()
	}
	return time.Now().UTC()
}

// Publish hands an event to the sink. Events are best-effort and never fail the caller.
func (s *BaseService) Publish(ctx context.Context, event domain.Event) {
	if s.Events == nil {
		return
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = s.Now()
	}
	s.Events.Publish(ctx, event)
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Debug(msg, keyvals...)
}

// require resolves the actor and checks the capability, logging denials
func (s *BaseService) require(ctx context.Context, userID string, capability domain.Capability) (*domain.Actor, error) {
	actor, err := s.Access.Require(ctx, userID, capability)
	if err != nil {
		s.LogDebug(ctx, "Capability check failed",
			slog.String("user_id", userID),
			slog.String("capability", string(capability)),
			slog.String("error", err.Error()))
		return nil, err
	}
	return actor, nil
}
