package usecase

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"lightbnb/src/core/domain"
	"lightbnb/src/core/ports"
)

// UserService handles user lookup and registration.
type UserService struct {
	repo ports.UserRepository
	log  *zerolog.Logger
}

func NewUserService(repo ports.UserRepository, log *zerolog.Logger) *UserService {
	return &UserService{repo: repo, log: log}
}

// Get returns the user with the given id.
func (s *UserService) Get(ctx context.Context, id int64) (*domain.User, error) {
	return s.repo.GetUserWithID(ctx, id)
}

// GetByEmail returns the user registered under email, ignoring case.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, domain.NewValidationError("email", "cannot be empty")
	}
	return s.repo.GetUserWithEmail(ctx, email)
}

// Register inserts a new user. A taken email surfaces as a conflict from the repository.
func (s *UserService) Register(ctx context.Context, user domain.NewUser) (*domain.User, error) {
	created, err := s.repo.AddUser(ctx, user.Normalized())
	if err != nil {
		return nil, err
	}
	loggerFor(ctx, s.log).Info().Int64("user_id", created.ID).Msg("user registered")
	return created, nil
}
