package mongo

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/washline/laundry-system/internal/core/domain"
)

func TestListOptions_NewestFirst(t *testing.T) {
	opts := listOptions()

	sort, ok := opts.Sort.(bson.D)
	if !ok {
		t.Fatalf("expected bson.D sort, got %T", opts.Sort)
	}
	if len(sort) != 1 {
		t.Fatalf("expected a single sort key, got %v", sort)
	}
	if sort[0].Key != "created_at" {
		t.Fatalf("expected sort on created_at, got %q", sort[0].Key)
	}
	// -1 is descending: of two orders created in sequence, the later one
	// appears first in every listing.
	if sort[0].Value != -1 {
		t.Fatalf("expected descending sort, got %v", sort[0].Value)
	}
}

func TestOrderRepository_MalformedID(t *testing.T) {
	r := &OrderRepository{}

	// A non-hex id can match no document, so both updates short-circuit to
	// not-found before touching the collection.
	if _, err := r.UpdateStatus(context.Background(), "not-an-objectid", domain.StatusWashing, time.Now()); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
	if _, err := r.AssignRider(context.Background(), "not-an-objectid", "rider_1"); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}
