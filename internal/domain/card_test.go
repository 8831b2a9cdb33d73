package domain_test

import (
	"reflect"
	"testing"

	"github.com/spec-kit/bizcard-service/internal/domain"
)

func TestToggleLike_AddsAndRemoves(t *testing.T) {
	card := &domain.Card{Likes: []string{"a"}}

	if liked := card.ToggleLike("b"); !liked {
		t.Error("first toggle should like the card")
	}
	if !card.LikedBy("b") {
		t.Error("likes set should contain b after first toggle")
	}

	if liked := card.ToggleLike("b"); liked {
		t.Error("second toggle should unlike the card")
	}
	if card.LikedBy("b") {
		t.Error("likes set should not contain b after second toggle")
	}
}

func TestToggleLike_Involution(t *testing.T) {
	original := []string{"a", "b", "c"}
	card := &domain.Card{Likes: append([]string{}, original...)}

	card.ToggleLike("b")
	card.ToggleLike("b")

	// Order within the set is not significant; membership must match.
	if len(card.Likes) != len(original) {
		t.Fatalf("likes = %v, want same members as %v", card.Likes, original)
	}
	for _, id := range original {
		if !card.LikedBy(id) {
			t.Errorf("likes %v missing original member %q", card.Likes, id)
		}
	}
}

func TestToggleLike_NoDuplicates(t *testing.T) {
	card := &domain.Card{}
	card.ToggleLike("a")
	card.ToggleLike("b")
	card.ToggleLike("a")
	card.ToggleLike("a")

	if !reflect.DeepEqual(card.Likes, []string{"b", "a"}) {
		t.Errorf("likes = %v, want [b a]", card.Likes)
	}
}

func TestValidTicketStatus(t *testing.T) {
	for _, status := range []domain.TicketStatus{
		domain.TicketStatusOpen, domain.TicketStatusInProgress, domain.TicketStatusClosed,
	} {
		if !domain.ValidTicketStatus(status) {
			t.Errorf("ValidTicketStatus(%q) = false, want true", status)
		}
	}
	if domain.ValidTicketStatus("RESOLVED") {
		t.Error("ValidTicketStatus(RESOLVED) = true, want false")
	}
}
