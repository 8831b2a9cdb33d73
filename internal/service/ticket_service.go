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

// TicketService coordinates support ticket workflows.
type TicketService struct {
	tickets    repository.TicketRepository
	dispatcher events.Dispatcher
	now        func() time.Time
}

// NewTicketService constructs the service.
func NewTicketService(tickets repository.TicketRepository, dispatcher events.Dispatcher) *TicketService {
	return &TicketService{tickets: tickets, dispatcher: dispatcher, now: time.Now}
}

// TicketInput describes create/update payloads.
type TicketInput struct {
	Title       string
	Description string
	Status      domain.TicketStatus
}

// Create stores a new ticket owned by the caller.
func (s *TicketService) Create(ctx context.Context, actor domain.Identity, input TicketInput) (*domain.Ticket, error) {
	status := input.Status
	if status == "" {
		status = domain.TicketStatusOpen
	}
	if !domain.ValidTicketStatus(status) {
		return nil, apperrors.NewValidationError("invalid status value", nil)
	}

	ticket := &domain.Ticket{
		Title:       input.Title,
		Description: input.Description,
		Status:      status,
		OwnerUserID: actor.UserID,
	}
	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventTicketCreated, ticket.ID, actor.UserID, events.TicketCreatedPayload{
		Title: ticket.Title,
	})
	return ticket, nil
}

// List returns every ticket for admins, otherwise the caller's own.
// An empty result is an empty list, not an error.
func (s *TicketService) List(ctx context.Context, actor domain.Identity) ([]domain.Ticket, error) {
	if actor.IsAdmin {
		return s.tickets.List(ctx)
	}
	return s.tickets.ListByOwner(ctx, actor.UserID)
}

// Get returns a ticket visible to its owner or an admin.
func (s *TicketService) Get(ctx context.Context, actor domain.Identity, id string) (*domain.Ticket, error) {
	return s.getOwned(ctx, actor, id)
}

// Update replaces ticket fields, owner or admin only.
func (s *TicketService) Update(ctx context.Context, actor domain.Identity, id string, input TicketInput) (*domain.Ticket, error) {
	ticket, err := s.getOwned(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if input.Status != "" && !domain.ValidTicketStatus(input.Status) {
		return nil, apperrors.NewValidationError("invalid status value", nil)
	}

	ticket.Title = input.Title
	ticket.Description = input.Description
	if input.Status != "" {
		ticket.Status = input.Status
	}

	if err := s.tickets.Update(ctx, ticket); err != nil {
		return nil, err
	}
	return ticket, nil
}

// SetStatus moves a ticket to any status in the enum, owner or admin only.
func (s *TicketService) SetStatus(ctx context.Context, actor domain.Identity, id string, status domain.TicketStatus) (*domain.Ticket, error) {
	if !domain.ValidTicketStatus(status) {
		return nil, apperrors.NewValidationError("invalid status value", nil)
	}

	ticket, err := s.getOwned(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	oldStatus := ticket.Status
	ticket.Status = status
	if err := s.tickets.Update(ctx, ticket); err != nil {
		return nil, err
	}

	if oldStatus != status {
		s.publish(ctx, events.EventTicketStatusChanged, ticket.ID, actor.UserID, events.TicketStatusChangedPayload{
			OldStatus: oldStatus,
			NewStatus: status,
		})
	}
	return ticket, nil
}

// Delete removes a ticket, owner or admin only.
func (s *TicketService) Delete(ctx context.Context, actor domain.Identity, id string) error {
	if _, err := s.getOwned(ctx, actor, id); err != nil {
		return err
	}
	if err := s.tickets.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("ticket")
		}
		return err
	}
	return nil
}

// getOwned loads a ticket and applies the ownership check. Existence is
// checked before ownership, consistently with cards.
func (s *TicketService) getOwned(ctx context.Context, actor domain.Identity, id string) (*domain.Ticket, error) {
	ticket, err := s.tickets.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("ticket")
		}
		return nil, err
	}
	if !actor.CanAccess(ticket.OwnerUserID) {
		return nil, apperrors.NewForbidden("access denied")
	}
	return ticket, nil
}

func (s *TicketService) publish(ctx context.Context, eventType events.EventType, subjectID, actorID string, payload interface{}) {
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
