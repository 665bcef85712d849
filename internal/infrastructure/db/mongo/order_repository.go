package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/washline/laundry-system/internal/core/domain"
)

const ordersCollection = "orders"

type OrderRepository struct {
	coll *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{coll: db.Collection(ordersCollection)}
}

type mongoHistoryEntry struct {
	Status    string    `bson:"status"`
	Timestamp time.Time `bson:"timestamp"`
}

type mongoOrder struct {
	ID            primitive.ObjectID  `bson:"_id,omitempty"`
	Customer      string              `bson:"customer"`
	CustomerName  string              `bson:"customer_name"`
	Clothes       string              `bson:"clothes"`
	WashType      string              `bson:"wash_type"`
	ReturnTime    string              `bson:"return_time"`
	Status        string              `bson:"status"`
	Rider         *string             `bson:"rider"`
	CreatedAt     time.Time           `bson:"created_at"`
	StatusHistory []mongoHistoryEntry `bson:"status_history,omitempty"`
}

// Create inserts a new order document and fills in the generated id.
func (r *OrderRepository) Create(ctx context.Context, o *domain.Order) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, toDoc(o))
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		o.ID = oid.Hex()
	}
	return nil
}

func (r *OrderRepository) FindByCustomer(ctx context.Context, userID string) ([]*domain.Order, error) {
	return r.find(ctx, bson.M{"customer": userID})
}

func (r *OrderRepository) FindAll(ctx context.Context) ([]*domain.Order, error) {
	return r.find(ctx, bson.M{})
}

func (r *OrderRepository) FindByStatus(ctx context.Context, status string) ([]*domain.Order, error) {
	return r.find(ctx, bson.M{"status": status})
}

// listOptions sorts every listing by created_at descending: of two orders
// created in sequence, the later one comes first.
func listOptions() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
}

func (r *OrderRepository) find(ctx context.Context, filter bson.M) ([]*domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, filter, listOptions())
	if err != nil {
		return nil, fmt.Errorf("find orders: %w", err)
	}
	defer cur.Close(ctx)

	orders := make([]*domain.Order, 0)
	for cur.Next(ctx) {
		var mo mongoOrder
		if err := cur.Decode(&mo); err != nil {
			return nil, fmt.Errorf("decode order: %w", err)
		}
		orders = append(orders, fromDoc(&mo))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate orders: %w", err)
	}
	return orders, nil
}

// UpdateStatus atomically sets the new status and appends a history entry,
// returning the updated document.
func (r *OrderRepository) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus, ts time.Time) (*domain.Order, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrOrderNotFound
	}

	update := bson.M{
		"$set":  bson.M{"status": string(status)},
		"$push": bson.M{"status_history": mongoHistoryEntry{Status: string(status), Timestamp: ts.UTC()}},
	}
	return r.findOneAndUpdate(ctx, oid, update)
}

// AssignRider sets the rider field unconditionally and returns the updated
// document.
func (r *OrderRepository) AssignRider(ctx context.Context, id, riderID string) (*domain.Order, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrOrderNotFound
	}

	update := bson.M{"$set": bson.M{"rider": riderID}}
	return r.findOneAndUpdate(ctx, oid, update)
}

func (r *OrderRepository) findOneAndUpdate(ctx context.Context, oid primitive.ObjectID, update bson.M) (*domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var mo mongoOrder
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&mo)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("update order: %w", err)
	}
	return fromDoc(&mo), nil
}

// EnsureIndexes creates the indexes backing the listing queries.
func (r *OrderRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "customer", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

func toDoc(o *domain.Order) *mongoOrder {
	mo := &mongoOrder{
		Customer:     o.Customer,
		CustomerName: o.CustomerName,
		Clothes:      o.Clothes,
		WashType:     o.WashType,
		ReturnTime:   o.ReturnTime,
		Status:       string(o.Status),
		Rider:        o.Rider,
		CreatedAt:    o.CreatedAt.UTC(),
	}
	for _, h := range o.StatusHistory {
		mo.StatusHistory = append(mo.StatusHistory, mongoHistoryEntry{
			Status:    string(h.Status),
			Timestamp: h.Timestamp.UTC(),
		})
	}
	return mo
}

func fromDoc(mo *mongoOrder) *domain.Order {
	o := &domain.Order{
		ID:           mo.ID.Hex(),
		Customer:     mo.Customer,
		CustomerName: mo.CustomerName,
		Clothes:      mo.Clothes,
		WashType:     mo.WashType,
		ReturnTime:   mo.ReturnTime,
		Status:       domain.OrderStatus(mo.Status),
		Rider:        mo.Rider,
		CreatedAt:    mo.CreatedAt.UTC(),
	}
	for _, h := range mo.StatusHistory {
		o.StatusHistory = append(o.StatusHistory, domain.StatusHistoryEntry{
			Status:    domain.OrderStatus(h.Status),
			Timestamp: h.Timestamp.UTC(),
		})
	}
	return o
}
