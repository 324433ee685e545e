package service

import (
	"context"
	"sync"
	"testing"

	"herotech/internal/model"
	"herotech/pkg/generic"
	"herotech/pkg/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type mockCartRepo struct {
	m          sync.RWMutex
	items      []*model.CartItem
	lastFilter bson.M
}

func (r *mockCartRepo) Insert(_ context.Context, item *model.CartItem) (*model.CartItem, error) {
	r.m.Lock()
	defer r.m.Unlock()
	item.SetID(primitive.NewObjectID())
	r.items = append(r.items, item)
	return item, nil
}

func (r *mockCartRepo) GetByID(_ context.Context, id string) (*model.CartItem, error) {
	r.m.RLock()
	defer r.m.RUnlock()
	for _, item := range r.items {
		if item.ID.Hex() == id {
			return item, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *mockCartRepo) Delete(_ context.Context, id string) error {
	r.m.Lock()
	defer r.m.Unlock()
	for i, item := range r.items {
		if item.ID.Hex() == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *mockCartRepo) Page(_ context.Context, filter bson.M, skip, limit int64) (generic.Page[bson.M], error) {
	r.m.Lock()
	defer r.m.Unlock()
	r.lastFilter = filter

	var matched []bson.M
	for _, item := range r.items {
		if email, ok := filter["purchasedBy"]; ok && email != item.PurchasedBy {
			continue
		}
		if status, ok := filter["status"]; ok && status != item.Status {
			continue
		}
		matched = append(matched, bson.M{"purchasedBy": item.PurchasedBy, "status": item.Status})
	}

	total := int64(len(matched))
	start := min(skip, total)
	end := min(start+limit, total)
	return generic.Page[bson.M]{Documents: matched[start:end], TotalCount: total}, nil
}

func (r *mockCartRepo) MarkOrdered(_ context.Context, email string) (int64, error) {
	r.m.Lock()
	defer r.m.Unlock()
	var moved int64
	for _, item := range r.items {
		if item.PurchasedBy == email && item.Status == model.StatusInCart {
			item.Status = model.StatusOrdered
			moved++
		}
	}
	return moved, nil
}

func TestAddItemRequiresCustomer(t *testing.T) {
	svc := NewCartService(&mockCartRepo{})

	for _, payload := range []map[string]any{
		{"item": "widget"},
		{"purchasedBy": ""},
		{"purchasedBy": "   "},
	} {
		_, err := svc.AddItem(context.Background(), payload)
		assert.ErrorIs(t, err, ErrMissingCustomer)
	}
}

func TestAddItemStartsInCart(t *testing.T) {
	repo := &mockCartRepo{}
	svc := NewCartService(repo)

	item, err := svc.AddItem(context.Background(), map[string]any{
		"purchasedBy": "a@x.com",
		"item":        "widget",
		"status":      "ordered", // client cannot pick its own status
	})
	require.NoError(t, err)

	assert.Equal(t, "a@x.com", item.PurchasedBy)
	assert.Equal(t, model.StatusInCart, item.Status)
	assert.Equal(t, "widget", item.Extra["item"])
	assert.NotContains(t, item.Extra, "status")
	assert.False(t, item.ID.IsZero())
	assert.False(t, item.AddedAt.IsZero())
}

func TestMyCartFiltersByOwnerAndStatus(t *testing.T) {
	repo := &mockCartRepo{}
	svc := NewCartService(repo)

	_, err := svc.MyCart(context.Background(), "a@x.com", util.Window{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, bson.M{"purchasedBy": "a@x.com", "status": model.StatusInCart}, repo.lastFilter)
}

func TestCheckoutMovesOnlyCallersItems(t *testing.T) {
	repo := &mockCartRepo{}
	svc := NewCartService(repo)

	for _, email := range []string{"a@x.com", "a@x.com", "b@x.com"} {
		_, err := svc.AddItem(context.Background(), map[string]any{"purchasedBy": email})
		require.NoError(t, err)
	}

	moved, err := svc.Checkout(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, int64(2), moved)

	// a@x.com's cart is now empty and the orders listing has two items
	cartPage, err := svc.MyCart(context.Background(), "a@x.com", util.Window{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(0), cartPage.TotalCount)

	orders, err := svc.Orders(context.Background(), util.Window{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), orders.TotalCount)

	// Repeat checkout moves nothing
	moved, err = svc.Checkout(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, int64(0), moved)
}

func TestRemoveItemOwnership(t *testing.T) {
	repo := &mockCartRepo{}
	svc := NewCartService(repo)

	item, err := svc.AddItem(context.Background(), map[string]any{"purchasedBy": "a@x.com"})
	require.NoError(t, err)

	// Someone else's token cannot remove it
	_, err = svc.RemoveItem(context.Background(), "b@x.com", item.ID.Hex())
	assert.ErrorIs(t, err, ErrNotCartOwner)

	// The owner can
	deleted, err := svc.RemoveItem(context.Background(), "a@x.com", item.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	// Removing it again deletes nothing and is not an error
	deleted, err = svc.RemoveItem(context.Background(), "a@x.com", item.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, int64(0), deleted)
}

func TestRemoveItemLeavesOrderedAlone(t *testing.T) {
	repo := &mockCartRepo{}
	svc := NewCartService(repo)

	item, err := svc.AddItem(context.Background(), map[string]any{"purchasedBy": "a@x.com"})
	require.NoError(t, err)
	_, err = svc.Checkout(context.Background(), "a@x.com")
	require.NoError(t, err)

	deleted, err := svc.RemoveItem(context.Background(), "a@x.com", item.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, int64(0), deleted)
}

func TestOrdersWindowInvariant(t *testing.T) {
	repo := &mockCartRepo{}
	svc := NewCartService(repo)

	const n = 7
	for i := 0; i < n; i++ {
		_, err := svc.AddItem(context.Background(), map[string]any{"purchasedBy": "a@x.com"})
		require.NoError(t, err)
	}
	_, err := svc.Checkout(context.Background(), "a@x.com")
	require.NoError(t, err)

	// len(documents) == min(L, max(0, N-skip)); totalCount == N regardless
	cases := []struct {
		skip, limit, wantLen int64
	}{
		{0, 10, 7},
		{0, 3, 3},
		{5, 10, 2},
		{7, 10, 0},
		{9, 10, 0},
	}
	for _, tc := range cases {
		page, err := svc.Orders(context.Background(), util.Window{Skip: tc.skip, Limit: tc.limit})
		require.NoError(t, err)
		assert.Len(t, page.Documents, int(tc.wantLen), "skip=%d limit=%d", tc.skip, tc.limit)
		assert.Equal(t, int64(n), page.TotalCount)
	}
}
