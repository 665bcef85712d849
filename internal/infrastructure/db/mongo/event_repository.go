package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/washline/laundry-system/internal/core/domain"
	"github.com/washline/laundry-system/internal/core/ports"
)

const eventsCollection = "order_events"

// EventRepository implements ports.EventRepository using MongoDB.
type EventRepository struct {
	db *mongo.Database
}

// NewEventRepository creates a new EventRepository.
func NewEventRepository(db *mongo.Database) ports.EventRepository {
	return &EventRepository{db: db}
}

// InsertEvent persists an order lifecycle event to the audit collection.
func (r *EventRepository) InsertEvent(ctx context.Context, event *domain.OrderEvent) error {
	doc := bson.M{
		"order_id":     event.OrderID,
		"kind":         event.Kind,
		"timestamp":    event.Timestamp.UTC(),
		"processed_at": time.Now().UTC(),
	}
	if event.Status != "" {
		doc["status"] = string(event.Status)
	}
	if event.Rider != "" {
		doc["rider"] = event.Rider
	}

	_, err := r.db.Collection(eventsCollection).InsertOne(ctx, doc)
	return err
}
