package repository

import (
	"context"
	"errors"
	"fmt"

	"herotech/internal/model"
	"herotech/pkg/generic"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrDuplicateEmail is returned when an insert hits the unique email index.
var ErrDuplicateEmail = errors.New("user already exists")

// IUserRepository defines user persistence
type IUserRepository interface {
	Create(ctx context.Context, user *model.User) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	Page(ctx context.Context, filter bson.M, skip, limit int64) (generic.Page[bson.M], error)
	EnsureIndexes(ctx context.Context) error
}

// UserRepository implements user persistence over the users collection
type UserRepository struct {
	*generic.MongoBaseRepository[*model.User]
}

func NewUserRepository(db *mongo.Database) IUserRepository {
	return &UserRepository{generic.NewBaseRepository[*model.User](db.Collection("users"))}
}

// EnsureIndexes creates the unique email index. Uniqueness lives in the
// store, not in a check-then-insert, so concurrent registrations of the
// same email cannot both succeed.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.Collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create users email index: %w", err)
	}
	return nil
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	if err := r.MongoBaseRepository.Create(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user *model.User
	err := r.Collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return user, nil
}

func (r *UserRepository) Page(ctx context.Context, filter bson.M, skip, limit int64) (generic.Page[bson.M], error) {
	return generic.FindPage[bson.M](ctx, r.Collection, filter, skip, limit)
}
