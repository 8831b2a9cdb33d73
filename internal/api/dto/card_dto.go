package dto

import (
	"time"

	"github.com/spec-kit/bizcard-service/internal/domain"
)

// CardRequest payload for card create/update.
type CardRequest struct {
	Title       string `json:"title" validate:"required,min=3,max=100"`
	Subtitle    string `json:"subtitle" validate:"omitempty,max=100"`
	Description string `json:"description" validate:"required,min=5,max=1000"`
	Phone       string `json:"phone" validate:"required,min=10,max=15"`
	Email       string `json:"email" validate:"omitempty,email"`
	Web         string `json:"web" validate:"omitempty,url"`
	Address     string `json:"address" validate:"required,max=200"`
	BizNumber   int64  `json:"bizNumber,omitempty"`
}

// BizNumberRequest payload for the admin bizNumber edit.
type BizNumberRequest struct {
	BizNumber int64 `json:"bizNumber"`
}

// CardResponse is the serialized card.
type CardResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Subtitle    string    `json:"subtitle,omitempty"`
	Description string    `json:"description"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email,omitempty"`
	Web         string    `json:"web,omitempty"`
	Address     string    `json:"address"`
	BizNumber   int64     `json:"bizNumber"`
	Likes       []string  `json:"likes"`
	OwnerUserID string    `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// LikeResponse reports the like set after a toggle.
type LikeResponse struct {
	CardID string   `json:"cardId"`
	Likes  []string `json:"likes"`
	Liked  bool     `json:"isLikedByCurrentUser"`
}

// NewCardResponse maps a domain card to its response shape.
func NewCardResponse(card *domain.Card) CardResponse {
	likes := card.Likes
	if likes == nil {
		likes = []string{}
	}
	return CardResponse{
		ID:          card.ID,
		Title:       card.Title,
		Subtitle:    card.Subtitle,
		Description: card.Description,
		Phone:       card.Phone,
		Email:       card.Email,
		Web:         card.Web,
		Address:     card.Address,
		BizNumber:   card.BizNumber,
		Likes:       likes,
		OwnerUserID: card.OwnerUserID,
		CreatedAt:   card.CreatedAt,
		UpdatedAt:   card.UpdatedAt,
	}
}
