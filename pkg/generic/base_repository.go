package generic

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrInvalidID is returned when a caller-supplied id is not a valid
// ObjectID hex string.
var ErrInvalidID = errors.New("invalid id")

// BaseRepository is the CRUD surface shared by all typed repositories
type BaseRepository[T Entity] interface {
	Create(ctx context.Context, entity T) error
	GetByID(ctx context.Context, id string) (T, error)
	Delete(ctx context.Context, id string) error
}

// MongoBaseRepository implements BaseRepository over one collection
type MongoBaseRepository[T Entity] struct {
	Collection *mongo.Collection
}

func NewBaseRepository[T Entity](collection *mongo.Collection) *MongoBaseRepository[T] {
	return &MongoBaseRepository[T]{Collection: collection}
}

// Create assigns a fresh ObjectID and inserts the entity.
func (r *MongoBaseRepository[T]) Create(ctx context.Context, entity T) error {
	entity.SetID(primitive.NewObjectID())
	if _, err := r.Collection.InsertOne(ctx, entity); err != nil {
		return err
	}
	return nil
}

// GetByID decodes one document by its hex id. A missing document surfaces
// as mongo.ErrNoDocuments for the caller to interpret.
func (r *MongoBaseRepository[T]) GetByID(ctx context.Context, id string) (T, error) {
	var entity T
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return entity, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	if err := r.Collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&entity); err != nil {
		return entity, err
	}
	return entity, nil
}

// Delete removes one document by its hex id. Deleting a missing document
// is not an error.
func (r *MongoBaseRepository[T]) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	if _, err := r.Collection.DeleteOne(ctx, bson.M{"_id": objID}); err != nil {
		return fmt.Errorf("delete %s document: %w", r.Collection.Name(), err)
	}
	return nil
}
