package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bereketsol/Inkwell/internal/domain/apperr"
	"github.com/bereketsol/Inkwell/internal/domain/contract"
	"github.com/bereketsol/Inkwell/internal/domain/entity"
)

type CategoryRepository struct {
	collection *mongo.Collection
}

var _ contract.ICategoryRepository = (*CategoryRepository)(nil)

func NewCategoryRepository(db *mongo.Database) *CategoryRepository {
	return &CategoryRepository{collection: db.Collection("categories")}
}

func (r *CategoryRepository) Create(ctx context.Context, category *entity.Category) error {
	_, err := r.collection.InsertOne(ctx, category)
	if mongo.IsDuplicateKeyError(err) {
		return apperr.Wrap(apperr.Conflict, "category slug already exists", err)
	}
	return err
}

func (r *CategoryRepository) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *CategoryRepository) GetBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	return r.findOne(ctx, bson.M{"slug": slug})
}

func (r *CategoryRepository) findOne(ctx context.Context, filter bson.M) (*entity.Category, error) {
	var category entity.Category
	err := r.collection.FindOne(ctx, filter).Decode(&category)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.New(apperr.NotFound, "category not found")
		}
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) List(ctx context.Context, onlyActive bool) ([]*entity.Category, error) {
	filter := bson.M{}
	if onlyActive {
		filter["is_active"] = true
	}
	return r.find(ctx, filter)
}

func (r *CategoryRepository) ListChildren(ctx context.Context, parentID string) ([]*entity.Category, error) {
	return r.find(ctx, bson.M{"parent_id": parentID})
}

func (r *CategoryRepository) find(ctx context.Context, filter bson.M) ([]*entity.Category, error) {
	findOpts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var categories []*entity.Category
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *CategoryRepository) Update(ctx context.Context, id string, updates map[string]interface{}) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": updates})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperr.Wrap(apperr.Conflict, "category slug already exists", err)
		}
		return err
	}
	if result.MatchedCount == 0 {
		return apperr.New(apperr.NotFound, "category not found")
	}
	return nil
}

func (r *CategoryRepository) SoftDelete(ctx context.Context, id string) error {
	return r.Update(ctx, id, map[string]interface{}{
		"is_active":  false,
		"updated_at": time.Now(),
	})
}

func (r *CategoryRepository) HardDelete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return apperr.New(apperr.NotFound, "category not found")
	}
	return nil
}

func (r *CategoryRepository) IncrementPostCount(ctx context.Context, id string) error {
	return r.incPostCount(ctx, bson.M{"_id": id}, 1)
}

// DecrementPostCount guards against going negative: the filter only
// matches documents with a positive count.
func (r *CategoryRepository) DecrementPostCount(ctx context.Context, id string) error {
	return r.incPostCount(ctx, bson.M{"_id": id, "post_count": bson.M{"$gt": 0}}, -1)
}

func (r *CategoryRepository) incPostCount(ctx context.Context, filter bson.M, delta int) error {
	_, err := r.collection.UpdateOne(ctx, filter, bson.M{"$inc": bson.M{"post_count": delta}})
	return err
}
