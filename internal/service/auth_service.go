package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/bizcard-service/internal/auth"
	"github.com/spec-kit/bizcard-service/internal/config"
	"github.com/spec-kit/bizcard-service/internal/domain"
	"github.com/spec-kit/bizcard-service/internal/events"
	"github.com/spec-kit/bizcard-service/internal/repository"
	apperrors "github.com/spec-kit/bizcard-service/pkg/util"
)

// AuthService coordinates registration and login flows, including the
// per-account login lockout tracker.
type AuthService struct {
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	dispatcher events.Dispatcher
	bcryptCost int
	maxFailed  int
	lockWindow time.Duration
	now        func() time.Time
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, users repository.UserRepository, dispatcher events.Dispatcher) *AuthService {
	return &AuthService{
		users:      users,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTL()),
		dispatcher: dispatcher,
		bcryptCost: cfg.Auth.BcryptCost,
		maxFailed:  cfg.Auth.MaxFailedLogins,
		lockWindow: cfg.Auth.LockoutWindow(),
		now:        time.Now,
	}
}

// RegisterInput describes a new account.
type RegisterInput struct {
	Name       string
	Email      string
	Password   string
	Phone      string
	Address    string
	IsAdmin    bool
	IsBusiness bool
}

// Register creates a new account. Duplicate emails conflict.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	if _, err := s.users.GetByEmail(ctx, input.Email); err == nil {
		return nil, apperrors.NewConflict("email already exists", map[string]any{"email": input.Email})
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		Phone:        input.Phone,
		Address:      input.Address,
		IsAdmin:      input.IsAdmin,
		IsBusiness:   input.IsBusiness,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if apperrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflict("email already exists", map[string]any{"email": input.Email})
		}
		return nil, err
	}

	s.publish(ctx, events.EventUserRegistered, user.ID, user.ID, events.UserRegisteredPayload{
		Email:      user.Email,
		IsBusiness: user.IsBusiness,
	})
	return user, nil
}

// Login authenticates by email and password. While an account is inside
// its lockout window the password is not checked at all. Each failed
// attempt is persisted immediately; only a successful login clears the
// counter, so a failure right after the window lapses relocks the account.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, time.Time, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", time.Time{}, apperrors.NewNotFound("user")
		}
		return "", time.Time{}, err
	}

	now := s.now()
	if user.Locked(now, s.maxFailed) {
		return "", time.Time{}, apperrors.NewAccountLocked("account locked for 24 hours")
	}

	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		user.RecordLoginFailure(now, s.maxFailed, s.lockWindow)
		if updateErr := s.users.Update(ctx, user); updateErr != nil {
			return "", time.Time{}, updateErr
		}
		if user.LockUntil != nil {
			s.publish(ctx, events.EventAccountLocked, user.ID, user.ID, events.AccountLockedPayload{
				Email:     user.Email,
				LockUntil: *user.LockUntil,
			})
		}
		return "", time.Time{}, apperrors.NewValidationError("invalid credentials", nil)
	}

	user.RecordLoginSuccess()
	if err := s.users.Update(ctx, user); err != nil {
		return "", time.Time{}, err
	}

	return s.tokenMgr.Issue(user.Identity())
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func (s *AuthService) publish(ctx context.Context, eventType events.EventType, subjectID, actorID string, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		SubjectID: subjectID,
		ActorID:   actorID,
		Timestamp: s.now(),
		Payload:   payload,
	})
}
