package users

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/quoinhq/quoin/internal/platform/httpx"
)

// RepositoryPort defines data access methods for users.
type RepositoryPort interface {
	Create(ctx context.Context, in CreateUserRequest) (User, error)
	Get(ctx context.Context, id uuid.UUID) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context, skip, limit int) ([]User, error)
	Update(ctx context.Context, user User, in UpdateUserRequest) (User, error)
	Delete(ctx context.Context, user User) error
}

// Service handles user business logic. Its single invariant is email
// uniqueness; everything else delegates to the repository.
type Service struct {
	repo RepositoryPort
}

// NewService builds a Service instance.
func NewService(repo RepositoryPort) *Service {
	return &Service{repo: repo}
}

// Create registers a user, rejecting an already-registered email. The
// pre-check is not atomic with the insert; the repository maps the storage
// constraint violation for the losing side of a race.
func (s *Service) Create(ctx context.Context, in CreateUserRequest) (User, error) {
	existing, err := s.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		return User{}, err
	}
	if existing != nil {
		return User{}, httpx.Conflict(fmt.Sprintf("Email '%s' is already registered", in.Email))
	}
	return s.repo.Create(ctx, in)
}

// Get returns the user with the given id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (User, error) {
	user, err := s.repo.Get(ctx, id)
	if err != nil {
		return User{}, err
	}
	if user == nil {
		return User{}, httpx.NotFound(fmt.Sprintf("User with ID '%s' not found", id))
	}
	return *user, nil
}

// List returns users with the caller's offset and limit passed through.
func (s *Service) List(ctx context.Context, skip, limit int) ([]User, error) {
	return s.repo.List(ctx, skip, limit)
}

// Update re-fetches the user so a missing id reports NotFound consistently,
// then applies the merge-patch.
func (s *Service) Update(ctx context.Context, id uuid.UUID, in UpdateUserRequest) (User, error) {
	user, err := s.Get(ctx, id)
	if err != nil {
		return User{}, err
	}
	return s.repo.Update(ctx, user, in)
}

// Delete removes the user. A second delete of the same id reports NotFound.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	user, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, user)
}
