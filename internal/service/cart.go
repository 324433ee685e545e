package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"herotech/internal/model"
	"herotech/internal/repository"
	"herotech/pkg/generic"
	"herotech/pkg/util"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// CartService handles cart writes, cart reads and the checkout transition
type CartService struct {
	repo repository.ICartRepository
}

func NewCartService(repo repository.ICartRepository) *CartService {
	return &CartService{repo: repo}
}

// AddItem inserts a product into the caller's cart. The payload must name
// its owner in purchasedBy; everything else is stored as posted. Items start
// in the in_cart status.
func (s *CartService) AddItem(ctx context.Context, payload map[string]any) (*model.CartItem, error) {
	purchasedBy, _ := payload["purchasedBy"].(string)
	purchasedBy = strings.TrimSpace(purchasedBy)
	if purchasedBy == "" {
		return nil, ErrMissingCustomer
	}

	item := &model.CartItem{
		PurchasedBy: purchasedBy,
		Status:      model.StatusInCart,
		AddedAt:     time.Now(),
		Extra:       map[string]any{},
	}
	for k, v := range payload {
		switch k {
		case "purchasedBy", "status":
		default:
			item.Extra[k] = v
		}
	}

	return s.repo.Insert(ctx, item)
}

// MyCart returns one window of the owner's in-cart items.
func (s *CartService) MyCart(ctx context.Context, email string, w util.Window) (generic.Page[bson.M], error) {
	filter := bson.M{"purchasedBy": email, "status": model.StatusInCart}
	return s.repo.Page(ctx, filter, w.Skip, w.Limit)
}

// RemoveItem deletes one of the owner's in-cart items. Removing an id that
// does not exist or already moved to ordered deletes nothing; only a foreign
// owner is an error.
func (s *CartService) RemoveItem(ctx context.Context, email, id string) (int64, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, nil
		}
		return 0, err
	}
	if item.PurchasedBy != email {
		return 0, ErrNotCartOwner
	}
	if item.Status != model.StatusInCart {
		return 0, nil
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return 0, err
	}
	return 1, nil
}

// Checkout moves every in-cart item owned by email to the ordered status
// and returns how many items moved.
func (s *CartService) Checkout(ctx context.Context, email string) (int64, error) {
	return s.repo.MarkOrdered(ctx, email)
}

// Orders returns one window of all ordered items, across every customer.
func (s *CartService) Orders(ctx context.Context, w util.Window) (generic.Page[bson.M], error) {
	return s.repo.Page(ctx, bson.M{"status": model.StatusOrdered}, w.Skip, w.Limit)
}
