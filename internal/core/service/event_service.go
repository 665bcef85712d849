package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/washline/laundry-system/internal/core/domain"
	"github.com/washline/laundry-system/internal/core/ports"
)

type eventRecorder struct {
	repo ports.EventRepository
	log  zerolog.Logger
}

// NewEventRecorder returns the EventRecorder the dispatcher workers drain
// into. It only writes the audit trail; order documents are already updated
// synchronously by the time an event reaches it.
func NewEventRecorder(repo ports.EventRepository, log zerolog.Logger) ports.EventRecorder {
	return &eventRecorder{repo: repo, log: log}
}

func (r *eventRecorder) Record(ctx context.Context, event domain.OrderEvent) error {
	if err := r.repo.InsertEvent(ctx, &event); err != nil {
		return fmt.Errorf("record order event: %w", err)
	}

	r.log.Debug().
		Str("order_id", event.OrderID).
		Str("kind", event.Kind).
		Msg("order event recorded")

	return nil
}
