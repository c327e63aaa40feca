package handler

import (
	"context"
	"net/http"

	"inspoboard/internal/service"

	"github.com/gin-gonic/gin"
)

type BoardService interface {
	CreateBoard(ctx context.Context, p service.BoardCreate) (service.BoardResponse, error)
	GetBoard(ctx context.Context, rawID string) (service.BoardResponse, error)
	ListBoards(ctx context.Context, title string) ([]service.BoardResponse, error)
	UpdateBoard(ctx context.Context, rawID string, p service.BoardUpdate) error
	DeleteBoard(ctx context.Context, rawID string) error
	GetBoardCards(ctx context.Context, rawID string) (service.BoardWithCardsResponse, error)
	CreateCardOnBoard(ctx context.Context, rawBoardID string, p service.CardCreate) (service.CardResponse, error)
	ReassignCards(ctx context.Context, rawBoardID string, p service.ReassignRequest) (service.ReassignResponse, error)
}

type BoardHandler struct {
	boards BoardService
}

func NewBoardHandler(boards BoardService) *BoardHandler {
	return &BoardHandler{boards: boards}
}

// Create godoc
// @Summary  Create a board
// @Tags     Boards
// @Accept   json
// @Produce  json
// @Param    board  body      service.BoardCreate  true  "Board"
// @Success  201    {object}  service.BoardResponse
// @Failure  400    {object}  ErrorResponse
// @Router   /boards [post]
func (h *BoardHandler) Create(c *gin.Context) {
	var req service.BoardCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c)
		return
	}

	board, err := h.boards.CreateBoard(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, board)
}

// GetAll godoc
// @Summary  List boards
// @Tags     Boards
// @Produce  json
// @Param    title  query     string  false  "Case-insensitive title substring"
// @Success  200    {array}   service.BoardResponse
// @Router   /boards [get]
func (h *BoardHandler) GetAll(c *gin.Context) {
	boards, err := h.boards.ListBoards(c.Request.Context(), c.Query("title"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, boards)
}

// GetByID godoc
// @Summary  Get a board
// @Tags     Boards
// @Produce  json
// @Param    id   path      int  true  "Board ID"
// @Success  200  {object}  service.BoardResponse
// @Failure  404  {object}  ErrorResponse
// @Router   /boards/{id} [get]
func (h *BoardHandler) GetByID(c *gin.Context) {
	board, err := h.boards.GetBoard(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, board)
}

// Update godoc
// @Summary  Update a board
// @Description Only the supplied fields change.
// @Tags     Boards
// @Accept   json
// @Param    id     path  int                  true  "Board ID"
// @Param    board  body  service.BoardUpdate  true  "Fields to change"
// @Success  204
// @Failure  400  {object}  ErrorResponse
// @Failure  404  {object}  ErrorResponse
// @Router   /boards/{id} [put]
func (h *BoardHandler) Update(c *gin.Context) {
	var req service.BoardUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c)
		return
	}

	if err := h.boards.UpdateBoard(c.Request.Context(), c.Param("id"), req); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Delete godoc
// @Summary  Delete a board and its cards
// @Tags     Boards
// @Param    id  path  int  true  "Board ID"
// @Success  204
// @Failure  404  {object}  ErrorResponse
// @Router   /boards/{id} [delete]
func (h *BoardHandler) Delete(c *gin.Context) {
	if err := h.boards.DeleteBoard(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetCards godoc
// @Summary  Get a board with its cards
// @Tags     Boards
// @Produce  json
// @Param    id   path      int  true  "Board ID"
// @Success  200  {object}  service.BoardWithCardsResponse
// @Failure  404  {object}  ErrorResponse
// @Router   /boards/{id}/cards [get]
func (h *BoardHandler) GetCards(c *gin.Context) {
	board, err := h.boards.GetBoardCards(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, board)
}

// CreateCard godoc
// @Summary  Create a card on a board
// @Tags     Cards
// @Accept   json
// @Produce  json
// @Param    id    path      int                 true  "Board ID"
// @Param    card  body      service.CardCreate  true  "Card"
// @Success  201   {object}  service.CardResponse
// @Failure  400   {object}  ErrorResponse
// @Failure  404   {object}  ErrorResponse
// @Router   /boards/{id}/cards [post]
func (h *BoardHandler) CreateCard(c *gin.Context) {
	var req service.CardCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c)
		return
	}

	card, err := h.boards.CreateCardOnBoard(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, card)
}

// ReassignCards godoc
// @Summary  Move cards onto a board
// @Description All listed cards move or none do.
// @Tags     Boards
// @Accept   json
// @Produce  json
// @Param    id       path      int                      true  "Target board ID"
// @Param    request  body      service.ReassignRequest  true  "Cards to move"
// @Success  200      {object}  service.ReassignResponse
// @Failure  400      {object}  ErrorResponse
// @Failure  404      {object}  ErrorResponse
// @Router   /boards/{id}/cards/reassign [post]
func (h *BoardHandler) ReassignCards(c *gin.Context) {
	var req service.ReassignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c)
		return
	}

	resp, err := h.boards.ReassignCards(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
