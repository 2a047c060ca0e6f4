package events

import (
	"context"

	"github.com/SscSPs/workorder_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/workorder_tracker/internal/core/ports/services"
	"github.com/SscSPs/workorder_tracker/internal/utils"
)

// Analytics forwards domain events to PostHog. It is a no-op when PostHog is not configured.
type Analytics struct {
	client *utils.PosthogClientWrapper
}

var _ portssvc.EventSink = (*Analytics)(nil)

func NewAnalytics(client *utils.PosthogClientWrapper) *Analytics {
	return &Analytics{client: client}
}

func (a *Analytics) Publish(_ context.Context, event domain.Event) {
	a.client.Enqueue(event.ActorID, string(event.Type), map[string]any{
		"entity_type": event.EntityType,
		"entity_id":   event.EntityID,
	})
}
