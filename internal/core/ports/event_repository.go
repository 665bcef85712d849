package ports

import (
	"context"

	"github.com/washline/laundry-system/internal/core/domain"
)

// EventRepository persists order lifecycle events to the audit collection.
type EventRepository interface {
	InsertEvent(ctx context.Context, event *domain.OrderEvent) error
}

// EventRecorder consumes audit events dequeued by the dispatcher workers.
type EventRecorder interface {
	Record(ctx context.Context, event domain.OrderEvent) error
}
