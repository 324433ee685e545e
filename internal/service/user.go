package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"herotech/internal/model"
	"herotech/internal/repository"
	"herotech/pkg/generic"
	"herotech/pkg/util"

	"go.mongodb.org/mongo-driver/bson"
)

const maxEmailLength = 254

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// RegisterResult reports a registration outcome. A repeat registration is
// not an error; the caller answers 200 either way.
type RegisterResult struct {
	AlreadyExists bool
	User          *model.User
}

// UserService handles registration and user listing
type UserService struct {
	repo repository.IUserRepository
}

func NewUserService(repo repository.IUserRepository) *UserService {
	return &UserService{repo: repo}
}

// Register inserts a new user from an arbitrary profile payload. The email
// field is required and unique; a password field, when present, is bcrypt
// hashed before it touches the store. Uniqueness is enforced by the store
// index, so the losing side of a concurrent registration also lands on
// AlreadyExists.
func (s *UserService) Register(ctx context.Context, payload map[string]any) (*RegisterResult, error) {
	email, _ := payload["email"].(string)
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || len(email) > maxEmailLength || !emailRegex.MatchString(email) {
		return nil, ErrInvalidEmail
	}

	existing, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &RegisterResult{AlreadyExists: true, User: existing}, nil
	}

	user := &model.User{
		Email:     email,
		CreatedAt: time.Now(),
		Extra:     map[string]any{},
	}
	for k, v := range payload {
		switch k {
		case "email":
		case "name":
			if name, ok := v.(string); ok {
				user.Name = strings.TrimSpace(name)
			}
		case "password":
			plain, ok := v.(string)
			if !ok || plain == "" {
				continue
			}
			hash, err := util.HashPassword(plain)
			if err != nil {
				return nil, fmt.Errorf("hash registration password: %w", err)
			}
			user.Extra["password"] = hash
		default:
			user.Extra[k] = v
		}
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return &RegisterResult{AlreadyExists: true}, nil
		}
		return nil, err
	}
	return &RegisterResult{User: created}, nil
}

// List returns one unfiltered window of the users collection.
func (s *UserService) List(ctx context.Context, w util.Window) (generic.Page[bson.M], error) {
	return s.repo.Page(ctx, bson.M{}, w.Skip, w.Limit)
}
