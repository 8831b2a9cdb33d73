package events

import (
	"time"

	"github.com/spec-kit/bizcard-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered      EventType = "user_registered"
	EventAccountLocked       EventType = "account_locked"
	EventCardCreated         EventType = "card_created"
	EventCardLiked           EventType = "card_liked"
	EventTicketCreated       EventType = "ticket_created"
	EventTicketStatusChanged EventType = "ticket_status_changed"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	SubjectID string      `json:"subject_id"`
	ActorID   string      `json:"actor_id,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// UserRegisteredPayload payload.
type UserRegisteredPayload struct {
	Email      string `json:"email"`
	IsBusiness bool   `json:"is_business"`
}

// AccountLockedPayload payload.
type AccountLockedPayload struct {
	Email     string    `json:"email"`
	LockUntil time.Time `json:"lock_until"`
}

// CardCreatedPayload payload.
type CardCreatedPayload struct {
	Title     string `json:"title"`
	BizNumber int64  `json:"biz_number"`
}

// CardLikedPayload payload.
type CardLikedPayload struct {
	Liked     bool `json:"liked"`
	LikeCount int  `json:"like_count"`
}

// TicketCreatedPayload payload.
type TicketCreatedPayload struct {
	Title string `json:"title"`
}

// TicketStatusChangedPayload payload.
type TicketStatusChangedPayload struct {
	OldStatus domain.TicketStatus `json:"old_status"`
	NewStatus domain.TicketStatus `json:"new_status"`
}
