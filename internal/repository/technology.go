package repository

import (
	"context"

	"herotech/pkg/generic"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ITechnologyRepository defines read access to the catalog
type ITechnologyRepository interface {
	Page(ctx context.Context, filter bson.M, skip, limit int64) (generic.Page[bson.M], error)
}

// TechnologyRepository reads the technologies collection. The catalog has
// no write path in this service.
type TechnologyRepository struct {
	collection *mongo.Collection
}

func NewTechnologyRepository(db *mongo.Database) ITechnologyRepository {
	return &TechnologyRepository{collection: db.Collection("technologies")}
}

func (r *TechnologyRepository) Page(ctx context.Context, filter bson.M, skip, limit int64) (generic.Page[bson.M], error) {
	return generic.FindPage[bson.M](ctx, r.collection, filter, skip, limit)
}
