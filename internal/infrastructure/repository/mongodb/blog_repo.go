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

type BlogRepository struct {
	collection *mongo.Collection
}

var _ contract.IBlogRepository = (*BlogRepository)(nil)

func NewBlogRepository(db *mongo.Database) *BlogRepository {
	return &BlogRepository{collection: db.Collection("blogs")}
}

func (r *BlogRepository) CreateBlog(ctx context.Context, blog *entity.Blog) error {
	_, err := r.collection.InsertOne(ctx, blog)
	if mongo.IsDuplicateKeyError(err) {
		return apperr.Wrap(apperr.Conflict, "blog slug already exists", err)
	}
	return err
}

func (r *BlogRepository) GetBlogByID(ctx context.Context, blogID string) (*entity.Blog, error) {
	return r.findOne(ctx, bson.M{"_id": blogID})
}

func (r *BlogRepository) GetBlogBySlug(ctx context.Context, slug string) (*entity.Blog, error) {
	return r.findOne(ctx, bson.M{"slug": slug})
}

func (r *BlogRepository) findOne(ctx context.Context, filter bson.M) (*entity.Blog, error) {
	var blog entity.Blog
	err := r.collection.FindOne(ctx, filter).Decode(&blog)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.New(apperr.NotFound, "blog post not found")
		}
		return nil, err
	}
	return &blog, nil
}

func (r *BlogRepository) GetBlogs(ctx context.Context, opts *contract.BlogFilterOptions) ([]*entity.Blog, int64, error) {
	filter := bson.M{}
	if opts.Status != nil {
		filter["status"] = *opts.Status
	}
	if opts.Visibility != nil {
		filter["visibility"] = *opts.Visibility
	}
	if opts.AuthorID != nil {
		filter["author_id"] = *opts.AuthorID
	}
	if opts.CategoryID != nil {
		filter["category_id"] = *opts.CategoryID
	}
	if opts.DateFrom != nil || opts.DateTo != nil {
		dateRange := bson.M{}
		if opts.DateFrom != nil {
			dateRange["$gte"] = *opts.DateFrom
		}
		if opts.DateTo != nil {
			dateRange["$lte"] = *opts.DateTo
		}
		filter["published_at"] = dateRange
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	sortField := opts.SortBy
	if sortField == "" {
		sortField = "created_at"
	}
	sortDir := -1
	if opts.SortOrder == "asc" {
		sortDir = 1
	}

	findOpts := options.Find().
		SetSort(bson.D{{Key: sortField, Value: sortDir}}).
		SetSkip(int64((opts.Page - 1) * opts.PageSize)).
		SetLimit(int64(opts.PageSize))

	cursor, err := r.collection.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var blogs []*entity.Blog
	if err := cursor.All(ctx, &blogs); err != nil {
		return nil, 0, err
	}
	return blogs, total, nil
}

func (r *BlogRepository) UpdateBlog(ctx context.Context, blogID string, updates map[string]interface{}) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": blogID}, bson.M{"$set": updates})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperr.New(apperr.NotFound, "blog post not found")
	}
	return nil
}

func (r *BlogRepository) DeleteBlog(ctx context.Context, blogID string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": blogID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return apperr.New(apperr.NotFound, "blog post not found")
	}
	return nil
}

// Schedule stores the future publish date and sets the status back to
// draft. Publication happens through an external trigger calling Publish,
// not an internal timer; changing this policy means changing only the
// status value below.
func (r *BlogRepository) Schedule(ctx context.Context, blogID string, publishDate time.Time) error {
	return r.UpdateBlog(ctx, blogID, map[string]interface{}{
		"status":        entity.BlogStatusDraft,
		"scheduled_for": publishDate,
		"updated_at":    time.Now(),
	})
}

// Publish stamps publishedAt and clears any pending schedule.
func (r *BlogRepository) Publish(ctx context.Context, blogID string, publishedAt time.Time) error {
	update := bson.M{
		"$set": bson.M{
			"status":       entity.BlogStatusPublished,
			"published_at": publishedAt,
			"updated_at":   time.Now(),
		},
		"$unset": bson.M{"scheduled_for": ""},
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": blogID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperr.New(apperr.NotFound, "blog post not found")
	}
	return nil
}

func (r *BlogRepository) Archive(ctx context.Context, blogID string) error {
	return r.UpdateBlog(ctx, blogID, map[string]interface{}{
		"status":     entity.BlogStatusArchived,
		"updated_at": time.Now(),
	})
}

func (r *BlogRepository) IncrementViewCount(ctx context.Context, blogID string) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": blogID}, bson.M{"$inc": bson.M{"view_count": 1}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperr.New(apperr.NotFound, "blog post not found")
	}
	return nil
}

// AddLike pushes {userID, likedAt} only when the user is not already in
// the likes set. The filter guard makes a double like a matched no-op on
// the same document, so uniqueness needs no transaction.
func (r *BlogRepository) AddLike(ctx context.Context, blogID, userID string, likedAt time.Time) error {
	filter := bson.M{"_id": blogID, "likes.user_id": bson.M{"$ne": userID}}
	update := bson.M{"$push": bson.M{"likes": entity.BlogLike{UserID: userID, LikedAt: likedAt}}}
	_, err := r.collection.UpdateOne(ctx, filter, update)
	return err
}

func (r *BlogRepository) RemoveLike(ctx context.Context, blogID, userID string) error {
	update := bson.M{"$pull": bson.M{"likes": bson.M{"user_id": userID}}}
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": blogID}, update)
	return err
}
