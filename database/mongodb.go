package database

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const (
	OrdersCollection    = "orders"
	KnowledgeCollection = "knowledge"
)

func NewMongoClient(uri string) (*mongo.Client, error) {
	return mongo.Connect(options.Client().
		ApplyURI(uri).
		SetBSONOptions(
			&options.BSONOptions{
				ObjectIDAsHexString: true,
			},
		))
}

// EnsureIndexes creates the indexes both the CRUD surface and the query
// pipeline depend on, including the text index used for relevance search.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(OrdersCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "order_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "customer_email", Value: 1}, {Key: "order_date", Value: -1}},
		},
		{
			Keys: bson.D{{Key: "status", Value: 1}, {Key: "order_date", Value: -1}},
		},
	})
	if err != nil {
		return err
	}

	_, err = db.Collection(KnowledgeCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "title", Value: "text"},
				{Key: "content", Value: "text"},
				{Key: "keywords", Value: "text"},
			},
		},
		{
			Keys: bson.D{{Key: "category", Value: 1}},
		},
	})
	return err
}
