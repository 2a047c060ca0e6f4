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

// Notifier turns events into per-user notifications. Events that name
// recipients go to them; a new proposal goes to every user who may approve it.
type Notifier struct {
	notifications portsrepo.NotificationRepository
	users         portsrepo.UserReader
}

var _ portssvc.EventSink = (*Notifier)(nil)

func NewNotifier(notifications portsrepo.NotificationRepository, users portsrepo.UserReader) *Notifier {
	return &Notifier{notifications: notifications, users: users}
}

func (n *Notifier) Publish(ctx context.Context, event domain.Event) {
	logger := middleware.GetLoggerFromCtx(ctx)

	recipients, err := n.recipients(ctx, event)
	if err != nil {
		logger.Error("Failed to resolve notification recipients",
			slog.String("error", err.Error()),
			slog.String("event_type", string(event.Type)))
		return
	}
	if len(recipients) == 0 {
		return
	}

	batch := make([]domain.Notification, 0, len(recipients))
	for _, userID := range recipients {
		batch = append(batch, domain.Notification{
			NotificationID:  uuid.NewString(),
			RecipientUserID: userID,
			Type:            string(event.Type),
			EntityType:      event.EntityType,
			EntityID:        event.EntityID,
			Payload:         event.After,
			CreatedAt:       event.OccurredAt,
		})
	}
	if err := n.notifications.SaveNotifications(ctx, batch); err != nil {
		logger.Error("Failed to save notifications",
			slog.String("error", err.Error()),
			slog.String("event_type", string(event.Type)),
			slog.Int("recipients", len(batch)))
	}
}

func (n *Notifier) recipients(ctx context.Context, event domain.Event) ([]string, error) {
	var ids []string
	switch {
	case len(event.Recipients) > 0:
		ids = event.Recipients
	case event.Type == domain.EventUpdateRequested:
		approvers, err := n.users.ListUserIDsByRoles(ctx, approverRoles())
		if err != nil {
			return nil, err
		}
		ids = approvers
	default:
		return nil, nil
	}

	// nobody is notified about their own action
	out := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id == "" || id == event.ActorID {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out, nil
}

func approverRoles() []domain.Role {
	roles := []domain.Role{}
	for _, role := range []domain.Role{domain.RoleAdmin, domain.RoleManager, domain.RoleMiddleManager, domain.RolePersonnel} {
		if domain.CanApproveUpdates(role) {
			roles = append(roles, role)
		}
	}
	return roles
}
