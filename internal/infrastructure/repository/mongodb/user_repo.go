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

type MongoUserRepository struct {
	collection *mongo.Collection
}

var _ contract.IUserRepository = (*MongoUserRepository)(nil)

func NewMongoUserRepository(collection *mongo.Collection) *MongoUserRepository {
	return &MongoUserRepository{collection: collection}
}

func (r *MongoUserRepository) CreateUser(ctx context.Context, user *entity.User) error {
	_, err := r.collection.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return apperr.Wrap(apperr.Conflict, "username or email already taken", err)
	}
	return err
}

func (r *MongoUserRepository) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *MongoUserRepository) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *MongoUserRepository) GetUserByUsername(ctx context.Context, username string) (*entity.User, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *MongoUserRepository) findOne(ctx context.Context, filter bson.M) (*entity.User, error) {
	var user entity.User
	err := r.collection.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.New(apperr.NotFound, "user not found")
		}
		return nil, err
	}
	return &user, nil
}

// GetUsers returns a page of all users sorted by creation time, newest
// first, plus the total count for pagination.
func (r *MongoUserRepository) GetUsers(ctx context.Context, page, pageSize int) ([]*entity.User, int64, error) {
	total, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}

	findOpts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize))
	cursor, err := r.collection.Find(ctx, bson.M{}, findOpts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var users []*entity.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// UpdateUser applies a partial patch and returns the updated user.
func (r *MongoUserRepository) UpdateUser(ctx context.Context, id string, updates map[string]interface{}) (*entity.User, error) {
	filter := bson.M{"_id": id}
	result, err := r.collection.UpdateOne(ctx, filter, bson.M{"$set": updates})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperr.Wrap(apperr.Conflict, "username or email already taken", err)
		}
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, apperr.New(apperr.NotFound, "user not found")
	}
	return r.findOne(ctx, filter)
}

func (r *MongoUserRepository) UpdateUserPassword(ctx context.Context, id string, hashedPassword string) error {
	filter := bson.M{"_id": id}
	update := bson.M{"$set": bson.M{"password_hash": hashedPassword, "updated_at": time.Now()}}
	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperr.New(apperr.NotFound, "user not found")
	}
	return nil
}

func (r *MongoUserRepository) DeleteUser(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return apperr.New(apperr.NotFound, "user not found")
	}
	return nil
}

// AddFollower adds followerID to the target's followers set. $addToSet
// keeps the call idempotent so retries converge.
func (r *MongoUserRepository) AddFollower(ctx context.Context, targetUserID, followerID string) error {
	return r.updateSet(ctx, targetUserID, bson.M{"$addToSet": bson.M{"followers": followerID}})
}

func (r *MongoUserRepository) RemoveFollower(ctx context.Context, targetUserID, followerID string) error {
	return r.updateSet(ctx, targetUserID, bson.M{"$pull": bson.M{"followers": followerID}})
}

func (r *MongoUserRepository) AddFollowing(ctx context.Context, userID, targetUserID string) error {
	return r.updateSet(ctx, userID, bson.M{"$addToSet": bson.M{"following": targetUserID}})
}

func (r *MongoUserRepository) RemoveFollowing(ctx context.Context, userID, targetUserID string) error {
	return r.updateSet(ctx, userID, bson.M{"$pull": bson.M{"following": targetUserID}})
}

func (r *MongoUserRepository) updateSet(ctx context.Context, id string, update bson.M) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperr.New(apperr.NotFound, "user not found")
	}
	return nil
}

func (r *MongoUserRepository) GetUsersByIDs(ctx context.Context, ids []string) ([]*entity.User, error) {
	if len(ids) == 0 {
		return []*entity.User{}, nil
	}
	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []*entity.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}
