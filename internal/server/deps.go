package server

import (
	"time"

	"herotech/internal/cache"
	"herotech/internal/config"
	"herotech/internal/handler"
	"herotech/internal/repository"
	"herotech/internal/service"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

// Repositories bundles all persistence
type Repositories struct {
	Users        repository.IUserRepository
	Cart         repository.ICartRepository
	Technologies repository.ITechnologyRepository
}

// Services bundles all business logic
type Services struct {
	Token        *service.TokenService
	Users        *service.UserService
	Cart         *service.CartService
	Technologies *service.TechnologyService
}

// Handlers bundles all HTTP glue
type Handlers struct {
	Token        *handler.TokenHandler
	Users        *handler.UserHandler
	Cart         *handler.CartHandler
	Technologies *handler.TechnologyHandler
}

func InitRepositories(db *mongo.Database) *Repositories {
	return &Repositories{
		Users:        repository.NewUserRepository(db),
		Cart:         repository.NewCartRepository(db),
		Technologies: repository.NewTechnologyRepository(db),
	}
}

func InitServices(cfg *config.Config, repos *Repositories) *Services {
	var pageCache cache.PageCache
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
		})
		pageCache = cache.NewRedisCache(client, time.Duration(cfg.Redis.TTLSeconds)*time.Second)
	}

	return &Services{
		Token:        service.NewTokenService(cfg),
		Users:        service.NewUserService(repos.Users),
		Cart:         service.NewCartService(repos.Cart),
		Technologies: service.NewTechnologyService(repos.Technologies, pageCache),
	}
}

func InitHandlers(services *Services) *Handlers {
	return &Handlers{
		Token:        handler.NewTokenHandler(services.Token),
		Users:        handler.NewUserHandler(services.Users),
		Cart:         handler.NewCartHandler(services.Cart),
		Technologies: handler.NewTechnologyHandler(services.Technologies),
	}
}
