package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"herotech/internal/cache"
	"herotech/internal/repository"
	"herotech/pkg/generic"
	"herotech/pkg/util"

	"go.mongodb.org/mongo-driver/bson"
)

// TechnologyService serves catalog pages, read-through cached when a cache
// is configured.
type TechnologyService struct {
	repo  repository.ITechnologyRepository
	cache cache.PageCache // nil when no cache is configured
}

func NewTechnologyService(repo repository.ITechnologyRepository, pageCache cache.PageCache) *TechnologyService {
	return &TechnologyService{repo: repo, cache: pageCache}
}

// List returns one window of the catalog. Cache failures fall back to the
// store; the catalog never becomes unavailable because Redis is.
func (s *TechnologyService) List(ctx context.Context, w util.Window) (generic.Page[bson.M], error) {
	key := fmt.Sprintf("technologies:%d:%d", w.Skip, w.Limit)

	if s.cache != nil {
		page, err := s.cache.Get(ctx, key)
		if err == nil {
			return page, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			slog.Warn("catalog cache read failed", "key", key, "err", err)
		}
	}

	page, err := s.repo.Page(ctx, bson.M{}, w.Skip, w.Limit)
	if err != nil {
		return generic.Page[bson.M]{}, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, page); err != nil {
			slog.Warn("catalog cache write failed", "key", key, "err", err)
		}
	}
	return page, nil
}
