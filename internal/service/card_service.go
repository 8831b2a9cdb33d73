package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/bizcard-service/internal/domain"
	"github.com/spec-kit/bizcard-service/internal/events"
	"github.com/spec-kit/bizcard-service/internal/repository"
	apperrors "github.com/spec-kit/bizcard-service/pkg/util"
)

// CardService coordinates business card workflows.
type CardService struct {
	cards      repository.CardRepository
	dispatcher events.Dispatcher
	now        func() time.Time
}

// NewCardService constructs the service.
func NewCardService(cards repository.CardRepository, dispatcher events.Dispatcher) *CardService {
	return &CardService{cards: cards, dispatcher: dispatcher, now: time.Now}
}

// CardInput describes card create/update payloads.
type CardInput struct {
	Title       string
	Subtitle    string
	Description string
	Phone       string
	Email       string
	Web         string
	Address     string
	BizNumber   int64
}

// Create stores a new card owned by the caller. When no bizNumber is
// supplied one is derived from the current card count; the derivation is
// a read-modify-write with no transactional guarantee, so concurrent
// creations can collide and the second insert fails on the store's
// unique constraint.
func (s *CardService) Create(ctx context.Context, actor domain.Identity, input CardInput) (*domain.Card, error) {
	bizNumber := input.BizNumber
	if bizNumber == 0 {
		count, err := s.cards.Count(ctx)
		if err != nil {
			return nil, err
		}
		bizNumber = domain.BizNumberBase + count + 1
	}

	card := &domain.Card{
		Title:       input.Title,
		Subtitle:    input.Subtitle,
		Description: input.Description,
		Phone:       input.Phone,
		Email:       input.Email,
		Web:         input.Web,
		Address:     input.Address,
		BizNumber:   bizNumber,
		Likes:       []string{},
		OwnerUserID: actor.UserID,
	}
	if err := s.cards.Create(ctx, card); err != nil {
		if apperrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflict("bizNumber already taken by another business", nil)
		}
		return nil, err
	}

	s.publish(ctx, events.EventCardCreated, card.ID, actor.UserID, events.CardCreatedPayload{
		Title:     card.Title,
		BizNumber: card.BizNumber,
	})
	return card, nil
}

// List applies role-based visibility: admins see every card, business
// users see their own, plain users are denied outright.
func (s *CardService) List(ctx context.Context, actor domain.Identity) ([]domain.Card, error) {
	switch {
	case actor.IsAdmin:
		return s.cards.List(ctx)
	case actor.IsBusiness:
		return s.cards.ListByOwner(ctx, actor.UserID)
	default:
		return nil, apperrors.NewForbidden("access denied")
	}
}

// Get returns a card visible to its owner or an admin. Existence is
// checked before ownership, so a non-owner probing an unknown id gets 404.
func (s *CardService) Get(ctx context.Context, actor domain.Identity, id string) (*domain.Card, error) {
	card, err := s.getCard(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanAccess(card.OwnerUserID) {
		return nil, apperrors.NewForbidden("access denied")
	}
	return card, nil
}

// Update replaces card fields, owner or admin only. bizNumber is not
// touched here; it has its own admin-gated operation.
func (s *CardService) Update(ctx context.Context, actor domain.Identity, id string, input CardInput) (*domain.Card, error) {
	card, err := s.getCard(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanAccess(card.OwnerUserID) {
		return nil, apperrors.NewForbidden("access denied")
	}

	card.Title = input.Title
	card.Subtitle = input.Subtitle
	card.Description = input.Description
	card.Phone = input.Phone
	card.Email = input.Email
	card.Web = input.Web
	card.Address = input.Address

	if err := s.cards.Update(ctx, card); err != nil {
		return nil, err
	}
	return card, nil
}

// Delete removes a card. Admin-gated route.
func (s *CardService) Delete(ctx context.Context, id string) error {
	if err := s.cards.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("card")
		}
		return err
	}
	return nil
}

// SetBizNumber assigns a specific bizNumber to a card. Admin-gated route.
// The taken-check and the write are separate store operations; a race
// between them surfaces as a unique-constraint conflict.
func (s *CardService) SetBizNumber(ctx context.Context, id string, bizNumber int64) (*domain.Card, error) {
	if bizNumber <= 0 {
		return nil, apperrors.NewValidationError("bizNumber is required", nil)
	}

	if existing, err := s.cards.GetByBizNumber(ctx, bizNumber); err == nil && existing.ID != id {
		return nil, apperrors.NewConflict("bizNumber already taken by another business", nil)
	} else if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	card, err := s.getCard(ctx, id)
	if err != nil {
		return nil, err
	}

	card.BizNumber = bizNumber
	if err := s.cards.Update(ctx, card); err != nil {
		if apperrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflict("bizNumber already taken by another business", nil)
		}
		return nil, err
	}
	return card, nil
}

// ToggleLike flips the caller's membership in the card's likes set and
// reports whether the caller likes the card afterwards. Any authenticated
// user may toggle; the read-modify-write is not atomic across concurrent
// togglers.
func (s *CardService) ToggleLike(ctx context.Context, actor domain.Identity, id string) (*domain.Card, bool, error) {
	card, err := s.getCard(ctx, id)
	if err != nil {
		return nil, false, err
	}

	liked := card.ToggleLike(actor.UserID)
	if err := s.cards.Update(ctx, card); err != nil {
		return nil, false, err
	}

	s.publish(ctx, events.EventCardLiked, card.ID, actor.UserID, events.CardLikedPayload{
		Liked:     liked,
		LikeCount: len(card.Likes),
	})
	return card, liked, nil
}

func (s *CardService) getCard(ctx context.Context, id string) (*domain.Card, error) {
	card, err := s.cards.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("card")
		}
		return nil, err
	}
	return card, nil
}

func (s *CardService) publish(ctx context.Context, eventType events.EventType, subjectID, actorID string, payload interface{}) {
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
