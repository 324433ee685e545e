package cache

import (
	"context"
	"errors"

	"herotech/pkg/generic"

	"go.mongodb.org/mongo-driver/bson"
)

// PageCache caches rendered catalog pages keyed by window.
type PageCache interface {
	Get(ctx context.Context, key string) (generic.Page[bson.M], error)
	Set(ctx context.Context, key string, page generic.Page[bson.M]) error
}

var ErrCacheMiss = errors.New("cache miss")
