package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"sync"
	"testing"

	"herotech/internal/config"
	"herotech/internal/middleware"
	"herotech/internal/model"
	"herotech/internal/repository"
	"herotech/internal/service"
	"herotech/pkg/generic"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// In-memory repositories so the full handler stack runs without Mongo.

type memUserRepo struct {
	m       sync.RWMutex
	byEmail map[string]*model.User
}

func newMemUserRepo() *memUserRepo { return &memUserRepo{byEmail: map[string]*model.User{}} }

func (r *memUserRepo) Create(_ context.Context, user *model.User) (*model.User, error) {
	r.m.Lock()
	defer r.m.Unlock()
	if _, exists := r.byEmail[user.Email]; exists {
		return nil, repository.ErrDuplicateEmail
	}
	user.SetID(primitive.NewObjectID())
	r.byEmail[user.Email] = user
	return user, nil
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	r.m.RLock()
	defer r.m.RUnlock()
	return r.byEmail[email], nil
}

func (r *memUserRepo) Page(_ context.Context, _ bson.M, skip, limit int64) (generic.Page[bson.M], error) {
	r.m.RLock()
	defer r.m.RUnlock()
	docs := []bson.M{}
	for email := range r.byEmail {
		docs = append(docs, bson.M{"email": email})
	}
	total := int64(len(docs))
	start := min(skip, total)
	end := min(start+limit, total)
	return generic.Page[bson.M]{Documents: docs[start:end], TotalCount: total}, nil
}

func (r *memUserRepo) EnsureIndexes(context.Context) error { return nil }

type memCartRepo struct {
	m     sync.RWMutex
	items []*model.CartItem
}

func (r *memCartRepo) Insert(_ context.Context, item *model.CartItem) (*model.CartItem, error) {
	r.m.Lock()
	defer r.m.Unlock()
	item.SetID(primitive.NewObjectID())
	r.items = append(r.items, item)
	return item, nil
}

func (r *memCartRepo) GetByID(_ context.Context, id string) (*model.CartItem, error) {
	r.m.RLock()
	defer r.m.RUnlock()
	for _, item := range r.items {
		if item.ID.Hex() == id {
			return item, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *memCartRepo) Delete(_ context.Context, id string) error {
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

func (r *memCartRepo) Page(_ context.Context, filter bson.M, skip, limit int64) (generic.Page[bson.M], error) {
	r.m.RLock()
	defer r.m.RUnlock()
	docs := []bson.M{}
	for _, item := range r.items {
		if email, ok := filter["purchasedBy"]; ok && email != item.PurchasedBy {
			continue
		}
		if status, ok := filter["status"]; ok && status != item.Status {
			continue
		}
		doc := bson.M{
			"_id":         item.ID.Hex(),
			"purchasedBy": item.PurchasedBy,
			"status":      item.Status,
		}
		for k, v := range item.Extra {
			doc[k] = v
		}
		docs = append(docs, doc)
	}
	total := int64(len(docs))
	start := min(skip, total)
	end := min(start+limit, total)
	return generic.Page[bson.M]{Documents: docs[start:end], TotalCount: total}, nil
}

func (r *memCartRepo) MarkOrdered(_ context.Context, email string) (int64, error) {
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

type memTechRepo struct{ docs []bson.M }

func (r *memTechRepo) Page(_ context.Context, _ bson.M, skip, limit int64) (generic.Page[bson.M], error) {
	total := int64(len(r.docs))
	start := min(skip, total)
	end := min(start+limit, total)
	docs := r.docs[start:end]
	if docs == nil {
		docs = []bson.M{}
	}
	return generic.Page[bson.M]{Documents: docs, TotalCount: total}, nil
}

// newTestRouter wires the real handlers, services and middleware over the
// in-memory repositories, mirroring the production route table.
func newTestRouter(t *testing.T) (*gin.Engine, *service.TokenService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.Auth.Secret = "test-secret"
	cfg.Auth.TokenTTLMins = 60

	tokens := service.NewTokenService(cfg)
	users := NewUserHandler(service.NewUserService(newMemUserRepo()))
	carts := NewCartHandler(service.NewCartService(&memCartRepo{}))
	techs := NewTechnologyHandler(service.NewTechnologyService(
		&memTechRepo{docs: []bson.M{{"name": "go"}, {"name": "mongo"}}}, nil))

	r := gin.New()
	r.GET("/all-technologies", techs.List)
	r.POST("/jwt", NewTokenHandler(tokens).Issue)
	r.POST("/users", users.Register)
	r.GET("/all-users", users.List)

	protected := r.Group("")
	protected.Use(middleware.Auth(tokens))
	{
		protected.POST("/add-to-cart", carts.AddToCart)
		protected.GET("/my-cart", carts.MyCart)
		protected.DELETE("/my-cart/:id", carts.RemoveFromCart)
		protected.POST("/checkout", carts.Checkout)
		protected.GET("/all-orders", carts.Orders)
	}
	return r, tokens
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func tokenFor(t *testing.T, tokens *service.TokenService, email string) string {
	t.Helper()
	signed, err := tokens.Issue(map[string]any{"email": email})
	require.NoError(t, err)
	return signed
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}
