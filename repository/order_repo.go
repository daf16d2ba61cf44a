package repository

import (
	"context"
	"errors"
	"time"

	"github.com/booklyhq/support-be/types"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// OrderFilter holds the legal filter combinations for listing orders. Every
// field is optional; the zero value matches everything.
type OrderFilter struct {
	OrderID       string
	CustomerEmail string
	Status        string
	FromDate      time.Time
	ToDate        time.Time
	Limit         int64
	Skip          int64
}

type OrderRepo interface {
	Create(ctx context.Context, order *types.Order) error
	FindByID(ctx context.Context, id string) (*types.Order, error)
	FindByOrderID(ctx context.Context, orderID string) (*types.Order, error)
	FindByCustomerEmail(ctx context.Context, email string, limit int64) ([]*types.Order, error)
	List(ctx context.Context, filter OrderFilter) ([]*types.Order, int64, error)
	Replace(ctx context.Context, id string, order *types.Order) error
	UpdateStatus(ctx context.Context, id string, status string) error
	Recent(ctx context.Context, limit int64) ([]*types.Order, error)
	CountAll(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context) ([]types.StatusCount, error)
	TrendSince(ctx context.Context, since time.Time) ([]types.TrendPoint, error)
	TopCustomers(ctx context.Context, limit int64) ([]types.CustomerStat, error)
}

type orderRepo struct {
	collection *mongo.Collection
}

func NewOrderRepo(collection *mongo.Collection) OrderRepo {
	return &orderRepo{
		collection: collection,
	}
}

func (r *orderRepo) Create(ctx context.Context, order *types.Order) error {
	res, err := r.collection.InsertOne(ctx, order)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(bson.ObjectID); ok {
		order.ID = oid.Hex()
	}
	return nil
}

func (r *orderRepo) FindByID(ctx context.Context, id string) (*types.Order, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	var order types.Order
	err = r.collection.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepo) FindByOrderID(ctx context.Context, orderID string) (*types.Order, error) {
	var order types.Order
	err := r.collection.FindOne(ctx, bson.D{{Key: "order_id", Value: orderID}}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepo) FindByCustomerEmail(ctx context.Context, email string, limit int64) ([]*types.Order, error) {
	cursor, err := r.collection.Find(ctx,
		bson.D{{Key: "customer_email", Value: email}},
		options.Find().
			SetSort(bson.D{{Key: "order_date", Value: -1}}).
			SetLimit(limit),
	)
	if err != nil {
		return nil, err
	}
	return decodeOrders(ctx, cursor)
}

func (r *orderRepo) List(ctx context.Context, filter OrderFilter) ([]*types.Order, int64, error) {
	query := buildOrderQuery(filter)

	findOpts := options.Find().SetSort(bson.D{{Key: "order_date", Value: -1}})
	if filter.Limit > 0 {
		findOpts.SetLimit(filter.Limit)
	}
	if filter.Skip > 0 {
		findOpts.SetSkip(filter.Skip)
	}

	cursor, err := r.collection.Find(ctx, query, findOpts)
	if err != nil {
		return nil, 0, err
	}
	orders, err := decodeOrders(ctx, cursor)
	if err != nil {
		return nil, 0, err
	}

	total, err := r.collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

func buildOrderQuery(filter OrderFilter) bson.D {
	query := bson.D{}
	if filter.OrderID != "" {
		query = append(query, bson.E{Key: "order_id", Value: bson.D{
			{Key: "$regex", Value: filter.OrderID},
			{Key: "$options", Value: "i"},
		}})
	}
	if filter.CustomerEmail != "" {
		query = append(query, bson.E{Key: "customer_email", Value: bson.D{
			{Key: "$regex", Value: filter.CustomerEmail},
			{Key: "$options", Value: "i"},
		}})
	}
	if filter.Status != "" {
		query = append(query, bson.E{Key: "status", Value: filter.Status})
	}
	dateRange := bson.D{}
	if !filter.FromDate.IsZero() {
		dateRange = append(dateRange, bson.E{Key: "$gte", Value: filter.FromDate})
	}
	if !filter.ToDate.IsZero() {
		dateRange = append(dateRange, bson.E{Key: "$lte", Value: filter.ToDate})
	}
	if len(dateRange) > 0 {
		query = append(query, bson.E{Key: "order_date", Value: dateRange})
	}
	return query
}

func (r *orderRepo) Replace(ctx context.Context, id string, order *types.Order) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	order.ID = id
	_, err = r.collection.ReplaceOne(ctx, bson.D{{Key: "_id", Value: oid}}, order)
	return err
}

func (r *orderRepo) UpdateStatus(ctx context.Context, id string, status string) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	_, err = r.collection.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: oid}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "status", Value: status},
			{Key: "updated_at", Value: time.Now()},
		}}},
	)
	return err
}

func (r *orderRepo) Recent(ctx context.Context, limit int64) ([]*types.Order, error) {
	cursor, err := r.collection.Find(ctx, bson.D{},
		options.Find().
			SetSort(bson.D{{Key: "order_date", Value: -1}}).
			SetLimit(limit),
	)
	if err != nil {
		return nil, err
	}
	return decodeOrders(ctx, cursor)
}

func (r *orderRepo) CountAll(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.D{})
}

func (r *orderRepo) CountByStatus(ctx context.Context) ([]types.StatusCount, error) {
	cursor, err := r.collection.Aggregate(ctx, mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$status"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "total_amount", Value: bson.D{{Key: "$sum", Value: "$total_amount"}}},
		}}},
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var counts []types.StatusCount
	if err := cursor.All(ctx, &counts); err != nil {
		return nil, err
	}
	return counts, nil
}

func (r *orderRepo) TrendSince(ctx context.Context, since time.Time) ([]types.TrendPoint, error) {
	cursor, err := r.collection.Aggregate(ctx, mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{
			{Key: "order_date", Value: bson.D{{Key: "$gte", Value: since}}},
		}}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: bson.D{
				{Key: "$dateToString", Value: bson.D{
					{Key: "format", Value: "%Y-%m-%d"},
					{Key: "date", Value: "$order_date"},
				}},
			}},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var points []types.TrendPoint
	if err := cursor.All(ctx, &points); err != nil {
		return nil, err
	}
	return points, nil
}

func (r *orderRepo) TopCustomers(ctx context.Context, limit int64) ([]types.CustomerStat, error) {
	cursor, err := r.collection.Aggregate(ctx, mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$customer_email"},
			{Key: "order_count", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "total_spent", Value: bson.D{{Key: "$sum", Value: "$total_amount"}}},
			{Key: "last_order", Value: bson.D{{Key: "$max", Value: "$order_date"}}},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "order_count", Value: -1}}}},
		bson.D{{Key: "$limit", Value: limit}},
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var stats []types.CustomerStat
	if err := cursor.All(ctx, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}

func decodeOrders(ctx context.Context, cursor *mongo.Cursor) ([]*types.Order, error) {
	defer cursor.Close(ctx)

	var orders []*types.Order
	for cursor.Next(ctx) {
		var order types.Order
		if err := cursor.Decode(&order); err != nil {
			return nil, err
		}
		orders = append(orders, &order)
	}
	return orders, cursor.Err()
}
