package repository

import (
	"context"
	"errors"

	"github.com/booklyhq/support-be/types"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type KnowledgeRepo interface {
	Create(ctx context.Context, article *types.KnowledgeArticle) error
	FindByID(ctx context.Context, id string) (*types.KnowledgeArticle, error)
	List(ctx context.Context, category string) ([]*types.KnowledgeArticle, error)
	// Search runs a relevance-ranked full-text search over title, content and
	// keywords. It fails when no text index is available.
	Search(ctx context.Context, phrase string, category string, limit int64) ([]*types.KnowledgeArticle, error)
	// SearchFallback matches any token as a case-insensitive substring of
	// title or content.
	SearchFallback(ctx context.Context, tokens []string, limit int64) ([]*types.KnowledgeArticle, error)
	Replace(ctx context.Context, id string, article *types.KnowledgeArticle) error
	Delete(ctx context.Context, id string) (*types.KnowledgeArticle, error)
	IncrementViews(ctx context.Context, id string) error
	MarkHelpful(ctx context.Context, id string) error
	CountAll(ctx context.Context) (int64, error)
	CountByCategory(ctx context.Context) ([]types.CategoryCount, error)
	TopViewed(ctx context.Context, limit int64) ([]*types.KnowledgeArticle, error)
}

type knowledgeRepo struct {
	collection *mongo.Collection
}

func NewKnowledgeRepo(collection *mongo.Collection) KnowledgeRepo {
	return &knowledgeRepo{
		collection: collection,
	}
}

func (r *knowledgeRepo) Create(ctx context.Context, article *types.KnowledgeArticle) error {
	res, err := r.collection.InsertOne(ctx, article)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(bson.ObjectID); ok {
		article.ID = oid.Hex()
	}
	return nil
}

func (r *knowledgeRepo) FindByID(ctx context.Context, id string) (*types.KnowledgeArticle, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	var article types.KnowledgeArticle
	err = r.collection.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&article)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *knowledgeRepo) List(ctx context.Context, category string) ([]*types.KnowledgeArticle, error) {
	query := bson.D{}
	if category != "" {
		query = append(query, bson.E{Key: "category", Value: category})
	}
	cursor, err := r.collection.Find(ctx, query,
		options.Find().SetSort(bson.D{
			{Key: "priority", Value: -1},
			{Key: "views", Value: -1},
		}),
	)
	if err != nil {
		return nil, err
	}
	return decodeArticles(ctx, cursor)
}

func (r *knowledgeRepo) Search(ctx context.Context, phrase string, category string, limit int64) ([]*types.KnowledgeArticle, error) {
	query := bson.D{
		{Key: "$text", Value: bson.D{{Key: "$search", Value: phrase}}},
	}
	if category != "" {
		query = append(query, bson.E{Key: "category", Value: category})
	}

	cursor, err := r.collection.Find(ctx, query,
		options.Find().
			SetProjection(bson.D{
				{Key: "score", Value: bson.D{{Key: "$meta", Value: "textScore"}}},
			}).
			SetSort(bson.D{
				{Key: "score", Value: bson.D{{Key: "$meta", Value: "textScore"}}},
				{Key: "priority", Value: -1},
			}).
			SetLimit(limit),
	)
	if err != nil {
		return nil, err
	}
	return decodeArticles(ctx, cursor)
}

func (r *knowledgeRepo) SearchFallback(ctx context.Context, tokens []string, limit int64) ([]*types.KnowledgeArticle, error) {
	conditions := bson.A{}
	for _, token := range tokens {
		conditions = append(conditions, bson.D{{Key: "$or", Value: bson.A{
			bson.D{{Key: "title", Value: bson.D{
				{Key: "$regex", Value: token},
				{Key: "$options", Value: "i"},
			}}},
			bson.D{{Key: "content", Value: bson.D{
				{Key: "$regex", Value: token},
				{Key: "$options", Value: "i"},
			}}},
		}}})
	}

	cursor, err := r.collection.Find(ctx,
		bson.D{{Key: "$or", Value: conditions}},
		options.Find().SetLimit(limit),
	)
	if err != nil {
		return nil, err
	}
	return decodeArticles(ctx, cursor)
}

func (r *knowledgeRepo) Replace(ctx context.Context, id string, article *types.KnowledgeArticle) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	article.ID = id
	_, err = r.collection.ReplaceOne(ctx, bson.D{{Key: "_id", Value: oid}}, article)
	return err
}

func (r *knowledgeRepo) Delete(ctx context.Context, id string) (*types.KnowledgeArticle, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	var article types.KnowledgeArticle
	err = r.collection.FindOneAndDelete(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&article)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *knowledgeRepo) IncrementViews(ctx context.Context, id string) error {
	return r.increment(ctx, id, "views")
}

func (r *knowledgeRepo) MarkHelpful(ctx context.Context, id string) error {
	return r.increment(ctx, id, "helpful_count")
}

func (r *knowledgeRepo) increment(ctx context.Context, id string, field string) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	_, err = r.collection.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: oid}},
		bson.D{{Key: "$inc", Value: bson.D{{Key: field, Value: 1}}}},
	)
	return err
}

func (r *knowledgeRepo) CountAll(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.D{})
}

func (r *knowledgeRepo) CountByCategory(ctx context.Context) ([]types.CategoryCount, error) {
	cursor, err := r.collection.Aggregate(ctx, mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$category"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "total_views", Value: bson.D{{Key: "$sum", Value: "$views"}}},
		}}},
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var counts []types.CategoryCount
	if err := cursor.All(ctx, &counts); err != nil {
		return nil, err
	}
	return counts, nil
}

func (r *knowledgeRepo) TopViewed(ctx context.Context, limit int64) ([]*types.KnowledgeArticle, error) {
	cursor, err := r.collection.Find(ctx, bson.D{},
		options.Find().
			SetSort(bson.D{{Key: "views", Value: -1}}).
			SetLimit(limit),
	)
	if err != nil {
		return nil, err
	}
	return decodeArticles(ctx, cursor)
}

func decodeArticles(ctx context.Context, cursor *mongo.Cursor) ([]*types.KnowledgeArticle, error) {
	defer cursor.Close(ctx)

	var articles []*types.KnowledgeArticle
	for cursor.Next(ctx) {
		var article types.KnowledgeArticle
		if err := cursor.Decode(&article); err != nil {
			return nil, err
		}
		articles = append(articles, &article)
	}
	return articles, cursor.Err()
}
