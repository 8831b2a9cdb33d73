package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/bizcard-service/internal/domain"
	"github.com/spec-kit/bizcard-service/internal/service"
)

// ---- fakes ----

type fakeCardRepo struct {
	cards map[string]*domain.Card
	seq   int
}

func newFakeCardRepo(cards ...*domain.Card) *fakeCardRepo {
	r := &fakeCardRepo{cards: map[string]*domain.Card{}}
	for _, c := range cards {
		r.cards[c.ID] = c
	}
	return r
}

func (r *fakeCardRepo) Create(_ context.Context, card *domain.Card) error {
	for _, existing := range r.cards {
		if existing.BizNumber == card.BizNumber {
			return errors.New("duplicate biz_number")
		}
	}
	r.seq++
	card.ID = fmt.Sprintf("card-%d", r.seq)
	r.cards[card.ID] = card
	return nil
}

func (r *fakeCardRepo) Update(_ context.Context, card *domain.Card) error {
	if _, ok := r.cards[card.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.cards[card.ID] = card
	return nil
}

func (r *fakeCardRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.cards[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.cards, id)
	return nil
}

func (r *fakeCardRepo) GetByID(_ context.Context, id string) (*domain.Card, error) {
	if card, ok := r.cards[id]; ok {
		return card, nil
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeCardRepo) GetByBizNumber(_ context.Context, bizNumber int64) (*domain.Card, error) {
	for _, card := range r.cards {
		if card.BizNumber == bizNumber {
			return card, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeCardRepo) List(_ context.Context) ([]domain.Card, error) {
	cards := make([]domain.Card, 0, len(r.cards))
	for _, c := range r.cards {
		cards = append(cards, *c)
	}
	return cards, nil
}

func (r *fakeCardRepo) ListByOwner(_ context.Context, ownerID string) ([]domain.Card, error) {
	cards := make([]domain.Card, 0)
	for _, c := range r.cards {
		if c.OwnerUserID == ownerID {
			cards = append(cards, *c)
		}
	}
	return cards, nil
}

func (r *fakeCardRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.cards)), nil
}

// ---- helpers ----

var (
	adminActor    = domain.Identity{UserID: "admin-1", IsAdmin: true}
	businessActor = domain.Identity{UserID: "biz-1", IsBusiness: true}
	plainActor    = domain.Identity{UserID: "plain-1"}
)

func sampleCardInput() service.CardInput {
	return service.CardInput{
		Title:       "Acme Corp",
		Description: "All kinds of anvils",
		Phone:       "0501234567",
		Address:     "Street 1, City, Country",
	}
}

// ---- Create ----

func TestCardCreate_AssignsBizNumberFromCount(t *testing.T) {
	repo := newFakeCardRepo()
	svc := service.NewCardService(repo, nil)

	card, err := svc.Create(context.Background(), businessActor, sampleCardInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if card.BizNumber != domain.BizNumberBase+1 {
		t.Errorf("bizNumber = %d, want %d", card.BizNumber, domain.BizNumberBase+1)
	}
	if card.OwnerUserID != businessActor.UserID {
		t.Errorf("owner = %q, want %q", card.OwnerUserID, businessActor.UserID)
	}

	second, err := svc.Create(context.Background(), businessActor, sampleCardInput())
	if err != nil {
		t.Fatalf("create second: %v", err)
	}
	if second.BizNumber != domain.BizNumberBase+2 {
		t.Errorf("second bizNumber = %d, want %d", second.BizNumber, domain.BizNumberBase+2)
	}
}

func TestCardCreate_KeepsExplicitBizNumber(t *testing.T) {
	svc := service.NewCardService(newFakeCardRepo(), nil)

	card, err := svc.Create(context.Background(), businessActor, service.CardInput{
		Title: "Acme", Description: "anvils etc", Phone: "0501234567", Address: "x", BizNumber: 4242424,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if card.BizNumber != 4242424 {
		t.Errorf("bizNumber = %d, want 4242424", card.BizNumber)
	}
}

// ---- List ----

func TestCardList_RoleScoping(t *testing.T) {
	repo := newFakeCardRepo(
		&domain.Card{ID: "c1", BizNumber: 1, OwnerUserID: "biz-1"},
		&domain.Card{ID: "c2", BizNumber: 2, OwnerUserID: "biz-2"},
	)
	svc := service.NewCardService(repo, nil)

	all, err := svc.List(context.Background(), adminActor)
	if err != nil {
		t.Fatalf("admin list: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("admin sees %d cards, want 2", len(all))
	}

	own, err := svc.List(context.Background(), businessActor)
	if err != nil {
		t.Fatalf("business list: %v", err)
	}
	if len(own) != 1 || own[0].OwnerUserID != "biz-1" {
		t.Errorf("business list = %v, want only own cards", own)
	}

	_, err = svc.List(context.Background(), plainActor)
	assertCode(t, err, "FORBIDDEN")
}

// ---- Get / Update ----

func TestCardGet_ExistenceBeforeOwnership(t *testing.T) {
	repo := newFakeCardRepo(&domain.Card{ID: "c1", BizNumber: 1, OwnerUserID: "biz-1"})
	svc := service.NewCardService(repo, nil)

	_, err := svc.Get(context.Background(), plainActor, "missing")
	assertCode(t, err, "NOT_FOUND")

	_, err = svc.Get(context.Background(), plainActor, "c1")
	assertCode(t, err, "FORBIDDEN")

	if _, err := svc.Get(context.Background(), businessActor, "c1"); err != nil {
		t.Errorf("owner get: %v", err)
	}
	if _, err := svc.Get(context.Background(), adminActor, "c1"); err != nil {
		t.Errorf("admin get: %v", err)
	}
}

func TestCardUpdate_DoesNotTouchBizNumber(t *testing.T) {
	repo := newFakeCardRepo(&domain.Card{ID: "c1", BizNumber: 777, OwnerUserID: "biz-1"})
	svc := service.NewCardService(repo, nil)

	input := sampleCardInput()
	input.BizNumber = 999
	card, err := svc.Update(context.Background(), businessActor, "c1", input)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if card.BizNumber != 777 {
		t.Errorf("bizNumber = %d, update must not change it", card.BizNumber)
	}
}

// ---- SetBizNumber ----

func TestSetBizNumber(t *testing.T) {
	repo := newFakeCardRepo(
		&domain.Card{ID: "c1", BizNumber: 1000001, OwnerUserID: "biz-1"},
		&domain.Card{ID: "c2", BizNumber: 1000002, OwnerUserID: "biz-2"},
	)
	svc := service.NewCardService(repo, nil)

	_, err := svc.SetBizNumber(context.Background(), "c1", 0)
	assertCode(t, err, "VALIDATION_FAILED")

	_, err = svc.SetBizNumber(context.Background(), "c1", 1000002)
	assertCode(t, err, "CONFLICT")

	_, err = svc.SetBizNumber(context.Background(), "missing", 5000000)
	assertCode(t, err, "NOT_FOUND")

	card, err := svc.SetBizNumber(context.Background(), "c1", 5000000)
	if err != nil {
		t.Fatalf("set: %v", err)
	}
	if card.BizNumber != 5000000 {
		t.Errorf("bizNumber = %d, want 5000000", card.BizNumber)
	}
}

// ---- ToggleLike ----

func TestToggleLike_ServiceInvolution(t *testing.T) {
	repo := newFakeCardRepo(&domain.Card{ID: "c1", BizNumber: 1, OwnerUserID: "biz-1", Likes: []string{}})
	svc := service.NewCardService(repo, nil)

	card, liked, err := svc.ToggleLike(context.Background(), plainActor, "c1")
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !liked || !card.LikedBy(plainActor.UserID) {
		t.Error("first toggle should add the caller to the likes set")
	}

	card, liked, err = svc.ToggleLike(context.Background(), plainActor, "c1")
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if liked || card.LikedBy(plainActor.UserID) {
		t.Error("second toggle should remove the caller from the likes set")
	}
	if len(card.Likes) != 0 {
		t.Errorf("likes = %v, want empty after involution", card.Likes)
	}
}

func TestToggleLike_UnknownCard(t *testing.T) {
	svc := service.NewCardService(newFakeCardRepo(), nil)
	_, _, err := svc.ToggleLike(context.Background(), plainActor, "missing")
	assertCode(t, err, "NOT_FOUND")
}
