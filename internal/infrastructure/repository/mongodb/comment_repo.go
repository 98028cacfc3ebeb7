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

type CommentRepository struct {
	collection *mongo.Collection
}

var _ contract.ICommentRepository = (*CommentRepository)(nil)

func NewCommentRepository(db *mongo.Database) *CommentRepository {
	return &CommentRepository{collection: db.Collection("comments")}
}

func (r *CommentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	_, err := r.collection.InsertOne(ctx, comment)
	return err
}

// GetByID returns the comment whether or not it is soft-deleted; the
// usecase decides visibility.
func (r *CommentRepository) GetByID(ctx context.Context, id string) (*entity.Comment, error) {
	var comment entity.Comment
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&comment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.New(apperr.NotFound, "comment not found")
		}
		return nil, err
	}
	return &comment, nil
}

func (r *CommentRepository) Update(ctx context.Context, id string, updates map[string]interface{}) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": updates})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperr.New(apperr.NotFound, "comment not found")
	}
	return nil
}

func (r *CommentRepository) SoftDelete(ctx context.Context, id string) error {
	return r.Update(ctx, id, map[string]interface{}{
		"is_deleted": true,
		"updated_at": time.Now(),
	})
}

func (r *CommentRepository) HardDelete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return apperr.New(apperr.NotFound, "comment not found")
	}
	return nil
}

// ListByPost returns every non-deleted comment on a post, oldest first.
func (r *CommentRepository) ListByPost(ctx context.Context, postID string) ([]*entity.Comment, error) {
	filter := bson.M{"post_id": postID, "is_deleted": false}
	findOpts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var comments []*entity.Comment
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *CommentRepository) CountByPost(ctx context.Context, postID string) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"post_id": postID, "is_deleted": false})
}

// AddLike is an atomic set-add; liking twice leaves one entry.
func (r *CommentRepository) AddLike(ctx context.Context, commentID, userID string) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": commentID}, bson.M{"$addToSet": bson.M{"likes": userID}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperr.New(apperr.NotFound, "comment not found")
	}
	return nil
}

func (r *CommentRepository) RemoveLike(ctx context.Context, commentID, userID string) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": commentID}, bson.M{"$pull": bson.M{"likes": userID}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperr.New(apperr.NotFound, "comment not found")
	}
	return nil
}
