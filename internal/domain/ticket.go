package domain

import "time"

// TicketStatus enumerates lifecycle states for tickets.
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "OPEN"
	TicketStatusInProgress TicketStatus = "IN_PROGRESS"
	TicketStatusClosed     TicketStatus = "CLOSED"
)

// ValidTicketStatus reports whether s is a member of the status enum.
func ValidTicketStatus(s TicketStatus) bool {
	switch s {
	case TicketStatusOpen, TicketStatusInProgress, TicketStatusClosed:
		return true
	default:
		return false
	}
}

// Ticket is a support request owned by exactly one user.
type Ticket struct {
	ID          string
	Title       string
	Description string
	Status      TicketStatus
	OwnerUserID string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
