package repository

import (
	"context"
	"fmt"

	"herotech/internal/model"
	"herotech/pkg/generic"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ICartRepository defines cart persistence. One collection backs both the
// in-cart and ordered listings; the status field tells them apart.
type ICartRepository interface {
	Insert(ctx context.Context, item *model.CartItem) (*model.CartItem, error)
	GetByID(ctx context.Context, id string) (*model.CartItem, error)
	Delete(ctx context.Context, id string) error
	Page(ctx context.Context, filter bson.M, skip, limit int64) (generic.Page[bson.M], error)
	MarkOrdered(ctx context.Context, email string) (int64, error)
}

// CartRepository implements cart persistence
type CartRepository struct {
	*generic.MongoBaseRepository[*model.CartItem]
}

func NewCartRepository(db *mongo.Database) ICartRepository {
	return &CartRepository{generic.NewBaseRepository[*model.CartItem](db.Collection("cart"))}
}

func (r *CartRepository) Insert(ctx context.Context, item *model.CartItem) (*model.CartItem, error) {
	if err := r.MongoBaseRepository.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("insert cart item: %w", err)
	}
	return item, nil
}

func (r *CartRepository) Page(ctx context.Context, filter bson.M, skip, limit int64) (generic.Page[bson.M], error) {
	return generic.FindPage[bson.M](ctx, r.Collection, filter, skip, limit)
}

// MarkOrdered flips every in-cart item owned by email to ordered and
// reports how many moved.
func (r *CartRepository) MarkOrdered(ctx context.Context, email string) (int64, error) {
	res, err := r.Collection.UpdateMany(ctx,
		bson.M{"purchasedBy": email, "status": model.StatusInCart},
		bson.M{"$set": bson.M{"status": model.StatusOrdered}},
	)
	if err != nil {
		return 0, fmt.Errorf("mark cart items ordered: %w", err)
	}
	return res.ModifiedCount, nil
}
