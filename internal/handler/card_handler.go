package handler

import (
	"context"
	"net/http"

	"inspoboard/internal/service"

	"github.com/gin-gonic/gin"
)

type CardService interface {
	ListCards(ctx context.Context, message string) ([]service.CardResponse, error)
	GetCard(ctx context.Context, rawID string) (service.CardResponse, error)
	UpdateCard(ctx context.Context, rawID string, p service.CardUpdate) error
	DeleteCard(ctx context.Context, rawID string) error
	LikeCard(ctx context.Context, rawID string) (service.CardResponse, error)
}

type CardHandler struct {
	cards CardService
}

func NewCardHandler(cards CardService) *CardHandler {
	return &CardHandler{cards: cards}
}

// GetAll godoc
// @Summary  List cards
// @Tags     Cards
// @Produce  json
// @Param    message  query    string  false  "Case-insensitive message substring"
// @Success  200      {array}  service.CardResponse
// @Router   /cards [get]
func (h *CardHandler) GetAll(c *gin.Context) {
	cards, err := h.cards.ListCards(c.Request.Context(), c.Query("message"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, cards)
}

// GetByID godoc
// @Summary  Get a card
// @Tags     Cards
// @Produce  json
// @Param    id   path      int  true  "Card ID"
// @Success  200  {object}  service.CardResponse
// @Failure  404  {object}  ErrorResponse
// @Router   /cards/{id} [get]
func (h *CardHandler) GetByID(c *gin.Context) {
	card, err := h.cards.GetCard(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, card)
}

// Update godoc
// @Summary  Update a card message
// @Description likes_count in the body is ignored; use the like endpoint.
// @Tags     Cards
// @Accept   json
// @Param    id    path  int                 true  "Card ID"
// @Param    card  body  service.CardUpdate  true  "Fields to change"
// @Success  204
// @Failure  400  {object}  ErrorResponse
// @Failure  404  {object}  ErrorResponse
// @Router   /cards/{id} [put]
func (h *CardHandler) Update(c *gin.Context) {
	var req service.CardUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c)
		return
	}

	if err := h.cards.UpdateCard(c.Request.Context(), c.Param("id"), req); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Delete godoc
// @Summary  Delete a card
// @Tags     Cards
// @Param    id  path  int  true  "Card ID"
// @Success  204
// @Failure  404  {object}  ErrorResponse
// @Router   /cards/{id} [delete]
func (h *CardHandler) Delete(c *gin.Context) {
	if err := h.cards.DeleteCard(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Like godoc
// @Summary  Like a card
// @Tags     Cards
// @Produce  json
// @Param    id   path      int  true  "Card ID"
// @Success  200  {object}  service.CardResponse
// @Failure  404  {object}  ErrorResponse
// @Router   /cards/{id}/like [patch]
func (h *CardHandler) Like(c *gin.Context) {
	card, err := h.cards.LikeCard(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, card)
}
