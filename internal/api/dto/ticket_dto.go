package dto

import (
	"time"

	"github.com/spec-kit/bizcard-service/internal/domain"
)

// TicketRequest payload for ticket create/update.
type TicketRequest struct {
	Title       string              `json:"title" validate:"required,min=3,max=100"`
	Description string              `json:"description" validate:"required,min=5,max=1000"`
	Status      domain.TicketStatus `json:"status,omitempty"`
}

// TicketStatusRequest payload for the status patch.
type TicketStatusRequest struct {
	Status domain.TicketStatus `json:"status"`
}

// TicketResponse is the serialized ticket.
type TicketResponse struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Status      domain.TicketStatus `json:"status"`
	OwnerUserID string              `json:"userId"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// NewTicketResponse maps a domain ticket to its response shape.
func NewTicketResponse(ticket *domain.Ticket) TicketResponse {
	return TicketResponse{
		ID:          ticket.ID,
		Title:       ticket.Title,
		Description: ticket.Description,
		Status:      ticket.Status,
		OwnerUserID: ticket.OwnerUserID,
		CreatedAt:   ticket.CreatedAt,
		UpdatedAt:   ticket.UpdatedAt,
	}
}
