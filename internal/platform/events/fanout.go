package events

import (
	"context"

	"github.com/SscSPs/workorder_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/workorder_tracker/internal/core/ports/services"
)

// FanOut delivers every event to each sink in order.
type FanOut []portssvc.EventSink

var _ portssvc.EventSink = (FanOut)(nil)

func (f FanOut) Publish(ctx context.Context, event domain.Event) {
	for _, sink := range f {
		if sink != nil {
			sink.Publish(ctx, event)
		}
	}
}

// Discard drops every event.
type Discard struct{}

func (Discard) Publish(context.Context, domain.Event) {}
