package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/bizcard-service/internal/api/dto"
	"github.com/spec-kit/bizcard-service/internal/auth"
	"github.com/spec-kit/bizcard-service/internal/service"
	"github.com/spec-kit/bizcard-service/internal/validation"
	apperrors "github.com/spec-kit/bizcard-service/pkg/util"
)

// CardsHandler manages business card endpoints.
type CardsHandler struct {
	service *service.CardService
}

// NewCardsHandler constructs handler.
func NewCardsHandler(cardService *service.CardService) *CardsHandler {
	return &CardsHandler{service: cardService}
}

// Create handles POST /cards (business role).
func (h *CardsHandler) Create(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("not authenticated")
	}
	var req dto.CardRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := validation.Struct(req); err != nil {
		return err
	}

	card, err := h.service.Create(c.Context(), identity, cardInput(req))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewCardResponse(card)})
}

// List handles GET /cards, scoped by role.
func (h *CardsHandler) List(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("not authenticated")
	}
	cards, err := h.service.List(c.Context(), identity)
	if err != nil {
		return err
	}
	items := make([]dto.CardResponse, 0, len(cards))
	for i := range cards {
		items = append(items, dto.NewCardResponse(&cards[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Get handles GET /cards/:id (owner or admin).
func (h *CardsHandler) Get(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("not authenticated")
	}
	card, err := h.service.Get(c.Context(), identity, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewCardResponse(card)})
}

// Update handles PUT /cards/:id (owner or admin).
func (h *CardsHandler) Update(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("not authenticated")
	}
	var req dto.CardRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := validation.Struct(req); err != nil {
		return err
	}

	card, err := h.service.Update(c.Context(), identity, c.Params("id"), cardInput(req))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewCardResponse(card)})
}

// Delete handles DELETE /cards/:id (admin role).
func (h *CardsHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "card deleted successfully"})
}

// SetBizNumber handles PUT /cards/:id/bizNumber (admin role).
func (h *CardsHandler) SetBizNumber(c *fiber.Ctx) error {
	var req dto.BizNumberRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	card, err := h.service.SetBizNumber(c.Context(), c.Params("id"), req.BizNumber)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewCardResponse(card)})
}

// ToggleLike handles PATCH /cards/:id/like.
func (h *CardsHandler) ToggleLike(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("not authenticated")
	}
	card, liked, err := h.service.ToggleLike(c.Context(), identity, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.LikeResponse{
		CardID: card.ID,
		Likes:  card.Likes,
		Liked:  liked,
	}})
}

func cardInput(req dto.CardRequest) service.CardInput {
	return service.CardInput{
		Title:       req.Title,
		Subtitle:    req.Subtitle,
		Description: req.Description,
		Phone:       req.Phone,
		Email:       req.Email,
		Web:         req.Web,
		Address:     req.Address,
		BizNumber:   req.BizNumber,
	}
}
