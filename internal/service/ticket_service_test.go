package service_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/bizcard-service/internal/domain"
	"github.com/spec-kit/bizcard-service/internal/service"
)

// ---- fakes ----

type fakeTicketRepo struct {
	tickets map[string]*domain.Ticket
	seq     int
}

func newFakeTicketRepo(tickets ...*domain.Ticket) *fakeTicketRepo {
	r := &fakeTicketRepo{tickets: map[string]*domain.Ticket{}}
	for _, tk := range tickets {
		r.tickets[tk.ID] = tk
	}
	return r
}

func (r *fakeTicketRepo) Create(_ context.Context, ticket *domain.Ticket) error {
	r.seq++
	ticket.ID = fmt.Sprintf("ticket-%d", r.seq)
	r.tickets[ticket.ID] = ticket
	return nil
}

func (r *fakeTicketRepo) Update(_ context.Context, ticket *domain.Ticket) error {
	if _, ok := r.tickets[ticket.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.tickets[ticket.ID] = ticket
	return nil
}

func (r *fakeTicketRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.tickets[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.tickets, id)
	return nil
}

func (r *fakeTicketRepo) GetByID(_ context.Context, id string) (*domain.Ticket, error) {
	if ticket, ok := r.tickets[id]; ok {
		return ticket, nil
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeTicketRepo) List(_ context.Context) ([]domain.Ticket, error) {
	tickets := make([]domain.Ticket, 0, len(r.tickets))
	for _, tk := range r.tickets {
		tickets = append(tickets, *tk)
	}
	return tickets, nil
}

func (r *fakeTicketRepo) ListByOwner(_ context.Context, ownerID string) ([]domain.Ticket, error) {
	tickets := make([]domain.Ticket, 0)
	for _, tk := range r.tickets {
		if tk.OwnerUserID == ownerID {
			tickets = append(tickets, *tk)
		}
	}
	return tickets, nil
}

// ---- tests ----

var (
	ownerActor = domain.Identity{UserID: "owner-1"}
	otherActor = domain.Identity{UserID: "other-1"}
)

func TestTicketCreate_DefaultsToOpen(t *testing.T) {
	svc := service.NewTicketService(newFakeTicketRepo(), nil)

	ticket, err := svc.Create(context.Background(), ownerActor, service.TicketInput{
		Title: "Printer on fire", Description: "It is actually on fire",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if ticket.Status != domain.TicketStatusOpen {
		t.Errorf("status = %q, want OPEN", ticket.Status)
	}
	if ticket.OwnerUserID != ownerActor.UserID {
		t.Errorf("owner = %q, want %q", ticket.OwnerUserID, ownerActor.UserID)
	}
}

func TestTicketCreate_RejectsUnknownStatus(t *testing.T) {
	svc := service.NewTicketService(newFakeTicketRepo(), nil)

	_, err := svc.Create(context.Background(), ownerActor, service.TicketInput{
		Title: "Printer on fire", Description: "Still on fire", Status: "BURNING",
	})
	assertCode(t, err, "VALIDATION_FAILED")
}

func TestTicketList_Scoping(t *testing.T) {
	repo := newFakeTicketRepo(
		&domain.Ticket{ID: "t1", OwnerUserID: "owner-1", Status: domain.TicketStatusOpen},
		&domain.Ticket{ID: "t2", OwnerUserID: "other-1", Status: domain.TicketStatusOpen},
	)
	svc := service.NewTicketService(repo, nil)

	all, err := svc.List(context.Background(), adminActor)
	if err != nil {
		t.Fatalf("admin list: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("admin sees %d tickets, want 2", len(all))
	}

	own, err := svc.List(context.Background(), ownerActor)
	if err != nil {
		t.Fatalf("owner list: %v", err)
	}
	if len(own) != 1 || own[0].ID != "t1" {
		t.Errorf("owner list = %v, want only t1", own)
	}

	// Empty result is an empty list, not an error.
	none, err := svc.List(context.Background(), domain.Identity{UserID: "nobody"})
	if err != nil {
		t.Fatalf("empty list: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("expected empty list, got %v", none)
	}
}

func TestTicketOwnership(t *testing.T) {
	repo := newFakeTicketRepo(&domain.Ticket{ID: "t1", OwnerUserID: "owner-1", Status: domain.TicketStatusOpen})
	svc := service.NewTicketService(repo, nil)

	_, err := svc.Get(context.Background(), otherActor, "t1")
	assertCode(t, err, "FORBIDDEN")

	_, err = svc.Update(context.Background(), otherActor, "t1", service.TicketInput{Title: "abc", Description: "defgh"})
	assertCode(t, err, "FORBIDDEN")

	err = svc.Delete(context.Background(), otherActor, "t1")
	assertCode(t, err, "FORBIDDEN")

	if _, err := svc.Get(context.Background(), ownerActor, "t1"); err != nil {
		t.Errorf("owner get: %v", err)
	}
	if _, err := svc.Get(context.Background(), adminActor, "t1"); err != nil {
		t.Errorf("admin get: %v", err)
	}
}

func TestTicketDelete_AdminThenGone(t *testing.T) {
	repo := newFakeTicketRepo(&domain.Ticket{ID: "t1", OwnerUserID: "owner-1", Status: domain.TicketStatusOpen})
	svc := service.NewTicketService(repo, nil)

	if err := svc.Delete(context.Background(), adminActor, "t1"); err != nil {
		t.Fatalf("admin delete: %v", err)
	}

	err := svc.Delete(context.Background(), adminActor, "t1")
	assertCode(t, err, "NOT_FOUND")
}

func TestTicketSetStatus(t *testing.T) {
	repo := newFakeTicketRepo(&domain.Ticket{ID: "t1", OwnerUserID: "owner-1", Status: domain.TicketStatusOpen})
	svc := service.NewTicketService(repo, nil)

	_, err := svc.SetStatus(context.Background(), ownerActor, "t1", "WONTFIX")
	assertCode(t, err, "VALIDATION_FAILED")

	_, err = svc.SetStatus(context.Background(), otherActor, "t1", domain.TicketStatusClosed)
	assertCode(t, err, "FORBIDDEN")

	ticket, err := svc.SetStatus(context.Background(), ownerActor, "t1", domain.TicketStatusInProgress)
	if err != nil {
		t.Fatalf("set status: %v", err)
	}
	if ticket.Status != domain.TicketStatusInProgress {
		t.Errorf("status = %q, want IN_PROGRESS", ticket.Status)
	}

	// Any enum value is reachable from any other.
	if _, err := svc.SetStatus(context.Background(), adminActor, "t1", domain.TicketStatusOpen); err != nil {
		t.Errorf("admin reopen: %v", err)
	}
}
