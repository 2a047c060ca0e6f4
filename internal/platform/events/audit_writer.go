package events

import (
	"context"
	"log/slog"

	"github.com/SscSPs/workorder_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/workorder_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/workorder_tracker/internal/core/ports/services"
	"github.com/SscSPs/workorder_tracker/internal/middleware"
	"github.com/google/uuid"
)

// AuditWriter appends one audit_log row per event.
type AuditWriter struct {
	repo portsrepo.AuditLogRepository
}

var _ portssvc.EventSink = (*AuditWriter)(nil)

func NewAuditWriter(repo portsrepo.AuditLogRepository) *AuditWriter {
	return &AuditWriter{repo: repo}
}

func (w *AuditWriter) Publish(ctx context.Context, event domain.Event) {
	entry := domain.AuditLogEntry{
		AuditID:     uuid.NewString(),
		ActorUserID: event.ActorID,
		Action:      string(event.Type),
		EntityType:  event.EntityType,
		EntityID:    event.EntityID,
		Before:      event.Before,
		After:       event.After,
		CreatedAt:   event.OccurredAt,
	}
	if err := w.repo.SaveAuditEntry(ctx, entry); err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to write audit entry",
			slog.String("error", err.Error()),
			slog.String("action", entry.Action),
			slog.String("entity_id", entry.EntityID))
	}
}
