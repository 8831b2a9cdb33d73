package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/bizcard-service/internal/auth"
	"github.com/spec-kit/bizcard-service/internal/domain"
	"github.com/spec-kit/bizcard-service/internal/repository"
	apperrors "github.com/spec-kit/bizcard-service/pkg/util"
)

// UserService handles account administration. Role gating for the
// admin-only operations happens at the route level; the self-or-admin
// rule for single-profile reads lives here.
type UserService struct {
	users      repository.UserRepository
	bcryptCost int
}

// NewUserService builds the service.
func NewUserService(users repository.UserRepository, bcryptCost int) *UserService {
	return &UserService{users: users, bcryptCost: bcryptCost}
}

// List returns every account. Admin-gated route.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

// Get returns a single account, visible to the account owner and admins.
func (s *UserService) Get(ctx context.Context, actor domain.Identity, id string) (*domain.User, error) {
	if !actor.CanAccess(id) {
		return nil, apperrors.NewForbidden("access denied")
	}
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user")
		}
		return nil, err
	}
	return user, nil
}

// UpdateInput is a full replacement of the mutable account fields.
type UpdateInput struct {
	Name       string
	Email      string
	Password   string
	Phone      string
	Address    string
	IsAdmin    bool
	IsBusiness bool
}

// Update fully replaces an account. Admin-gated route.
func (s *UserService) Update(ctx context.Context, id string, input UpdateInput) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user")
		}
		return nil, err
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user.Name = input.Name
	user.Email = input.Email
	user.PasswordHash = hash
	user.Phone = input.Phone
	user.Address = input.Address
	user.IsAdmin = input.IsAdmin
	user.IsBusiness = input.IsBusiness

	if err := s.users.Update(ctx, user); err != nil {
		if apperrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflict("email already exists", map[string]any{"email": input.Email})
		}
		return nil, err
	}
	return user, nil
}

// SetBusinessStatus toggles only the isBusiness flag. Admin-gated route.
func (s *UserService) SetBusinessStatus(ctx context.Context, id string, isBusiness bool) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user")
		}
		return nil, err
	}

	user.IsBusiness = isBusiness
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes an account. Admin-gated route.
func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("user")
		}
		return err
	}
	return nil
}
