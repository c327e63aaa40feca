package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"inspoboard/internal/handler"
	"inspoboard/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBoardService struct {
	mock.Mock
}

func (m *MockBoardService) CreateBoard(ctx context.Context, p service.BoardCreate) (service.BoardResponse, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(service.BoardResponse), args.Error(1)
}

func (m *MockBoardService) GetBoard(ctx context.Context, rawID string) (service.BoardResponse, error) {
	args := m.Called(ctx, rawID)
	return args.Get(0).(service.BoardResponse), args.Error(1)
}

func (m *MockBoardService) ListBoards(ctx context.Context, title string) ([]service.BoardResponse, error) {
	args := m.Called(ctx, title)
	return args.Get(0).([]service.BoardResponse), args.Error(1)
}

func (m *MockBoardService) UpdateBoard(ctx context.Context, rawID string, p service.BoardUpdate) error {
	return m.Called(ctx, rawID, p).Error(0)
}

func (m *MockBoardService) DeleteBoard(ctx context.Context, rawID string) error {
	return m.Called(ctx, rawID).Error(0)
}

func (m *MockBoardService) GetBoardCards(ctx context.Context, rawID string) (service.BoardWithCardsResponse, error) {
	args := m.Called(ctx, rawID)
	return args.Get(0).(service.BoardWithCardsResponse), args.Error(1)
}

func (m *MockBoardService) CreateCardOnBoard(ctx context.Context, rawBoardID string, p service.CardCreate) (service.CardResponse, error) {
	args := m.Called(ctx, rawBoardID, p)
	return args.Get(0).(service.CardResponse), args.Error(1)
}

func (m *MockBoardService) ReassignCards(ctx context.Context, rawBoardID string, p service.ReassignRequest) (service.ReassignResponse, error) {
	args := m.Called(ctx, rawBoardID, p)
	return args.Get(0).(service.ReassignResponse), args.Error(1)
}

type MockCardService struct {
	mock.Mock
}

func (m *MockCardService) ListCards(ctx context.Context, message string) ([]service.CardResponse, error) {
	args := m.Called(ctx, message)
	return args.Get(0).([]service.CardResponse), args.Error(1)
}

func (m *MockCardService) GetCard(ctx context.Context, rawID string) (service.CardResponse, error) {
	args := m.Called(ctx, rawID)
	return args.Get(0).(service.CardResponse), args.Error(1)
}

func (m *MockCardService) UpdateCard(ctx context.Context, rawID string, p service.CardUpdate) error {
	return m.Called(ctx, rawID, p).Error(0)
}

func (m *MockCardService) DeleteCard(ctx context.Context, rawID string) error {
	return m.Called(ctx, rawID).Error(0)
}

func (m *MockCardService) LikeCard(ctx context.Context, rawID string) (service.CardResponse, error) {
	args := m.Called(ctx, rawID)
	return args.Get(0).(service.CardResponse), args.Error(1)
}

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }

func setupTest() (*gin.Engine, *MockBoardService, *MockCardService) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	boards := new(MockBoardService)
	cards := new(MockCardService)

	bh := handler.NewBoardHandler(boards)
	ch := handler.NewCardHandler(cards)

	r.POST("/boards", bh.Create)
	r.GET("/boards", bh.GetAll)
	r.GET("/boards/:id", bh.GetByID)
	r.PUT("/boards/:id", bh.Update)
	r.DELETE("/boards/:id", bh.Delete)
	r.GET("/boards/:id/cards", bh.GetCards)
	r.POST("/boards/:id/cards", bh.CreateCard)
	r.POST("/boards/:id/cards/reassign", bh.ReassignCards)
	r.GET("/cards", ch.GetAll)
	r.GET("/cards/:id", ch.GetByID)
	r.PUT("/cards/:id", ch.Update)
	r.DELETE("/cards/:id", ch.Delete)
	r.PATCH("/cards/:id/like", ch.Like)

	return r, boards, cards
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req, _ = http.NewRequest(method, path, nil)
	} else {
		req, _ = http.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func decodeError(t *testing.T, resp *httptest.ResponseRecorder) handler.ErrorResponse {
	t.Helper()
	var body handler.ErrorResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	return body
}

func TestCreateBoard_Success(t *testing.T) {
	// Arrange
	router, boards, _ := setupTest()
	req := service.BoardCreate{Title: "Gratitude", Owner: "Mikaela"}
	boards.On("CreateBoard", mock.Anything, req).
		Return(service.BoardResponse{ID: 1, Title: "Gratitude", Owner: "Mikaela"}, nil)

	// Act
	resp := do(router, http.MethodPost, "/boards", `{"title":"Gratitude","owner":"Mikaela"}`)

	// Assert
	assert.Equal(t, http.StatusCreated, resp.Code)
	assert.JSONEq(t, `{"id":1,"title":"Gratitude","owner":"Mikaela"}`, resp.Body.String())
	boards.AssertExpectations(t)
}

func TestCreateBoard_MalformedBody(t *testing.T) {
	router, boards, _ := setupTest()

	resp := do(router, http.MethodPost, "/boards", `{"title":`)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, "Invalid request body", decodeError(t, resp).Error)
	boards.AssertNotCalled(t, "CreateBoard", mock.Anything, mock.Anything)
}

func TestCreateBoard_ValidationError(t *testing.T) {
	router, boards, _ := setupTest()
	boards.On("CreateBoard", mock.Anything, service.BoardCreate{Title: "Gratitude"}).
		Return(service.BoardResponse{}, &service.ValidationError{Field: "owner", Reason: "owner is required"})

	resp := do(router, http.MethodPost, "/boards", `{"title":"Gratitude"}`)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	body := decodeError(t, resp)
	assert.Equal(t, "owner is required", body.Error)
	assert.Equal(t, "owner", body.Field)
}

func TestGetAllBoards_PassesTitleFilter(t *testing.T) {
	router, boards, _ := setupTest()
	boards.On("ListBoards", mock.Anything, "grat").
		Return([]service.BoardResponse{{ID: 1, Title: "Gratitude", Owner: "Mikaela"}}, nil)

	resp := do(router, http.MethodGet, "/boards?title=grat", "")

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `[{"id":1,"title":"Gratitude","owner":"Mikaela"}]`, resp.Body.String())
	boards.AssertExpectations(t)
}

func TestGetBoard_NotFound(t *testing.T) {
	router, boards, _ := setupTest()
	boards.On("GetBoard", mock.Anything, "9999").
		Return(service.BoardResponse{}, &service.NotFoundError{Entity: "board", ID: "9999"})

	resp := do(router, http.MethodGet, "/boards/9999", "")

	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.Equal(t, "board 9999 not found", decodeError(t, resp).Error)
}

func TestGetBoard_InfrastructureError(t *testing.T) {
	router, boards, _ := setupTest()
	boards.On("GetBoard", mock.Anything, "1").
		Return(service.BoardResponse{}, errors.New("connection refused"))

	resp := do(router, http.MethodGet, "/boards/1", "")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Equal(t, "Internal server error", decodeError(t, resp).Error)
}

func TestUpdateBoard_PartialPayload(t *testing.T) {
	router, boards, _ := setupTest()
	boards.On("UpdateBoard", mock.Anything, "3", service.BoardUpdate{Title: service.Some("New Title")}).Return(nil)

	resp := do(router, http.MethodPut, "/boards/3", `{"title":"New Title"}`)

	assert.Equal(t, http.StatusNoContent, resp.Code)
	assert.Empty(t, resp.Body.String())
	boards.AssertExpectations(t)
}

func TestDeleteBoard(t *testing.T) {
	router, boards, _ := setupTest()
	boards.On("DeleteBoard", mock.Anything, "3").Return(nil)

	resp := do(router, http.MethodDelete, "/boards/3", "")

	assert.Equal(t, http.StatusNoContent, resp.Code)
	boards.AssertExpectations(t)
}

func TestGetBoardCards(t *testing.T) {
	router, boards, _ := setupTest()
	boards.On("GetBoardCards", mock.Anything, "1").Return(service.BoardWithCardsResponse{
		ID: 1, Title: "Inspiration", Owner: "Ada",
		Cards: []service.CardResponse{{ID: 2, Message: "Keep going", BoardID: 1}},
	}, nil)

	resp := do(router, http.MethodGet, "/boards/1/cards", "")

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"id":1,"title":"Inspiration","owner":"Ada",
		"cards":[{"id":2,"message":"Keep going","likes_count":0,"board_id":1}]}`, resp.Body.String())
}

func TestCreateCardOnBoard(t *testing.T) {
	router, boards, _ := setupTest()
	boards.On("CreateCardOnBoard", mock.Anything, "1", service.CardCreate{Message: "Be positive!"}).
		Return(service.CardResponse{ID: 5, Message: "Be positive!", BoardID: 1}, nil)

	resp := do(router, http.MethodPost, "/boards/1/cards", `{"message":"Be positive!"}`)

	assert.Equal(t, http.StatusCreated, resp.Code)
	assert.JSONEq(t, `{"id":5,"message":"Be positive!","likes_count":0,"board_id":1}`, resp.Body.String())
}

func TestReassignCards(t *testing.T) {
	router, boards, _ := setupTest()
	boards.On("ReassignCards", mock.Anything, "2", service.ReassignRequest{CardIDs: []int64{5}}).
		Return(service.ReassignResponse{
			BoardID:         2,
			MovedCount:      1,
			ReassignedCards: []service.Reassignment{{CardID: 5, FromBoard: 1, ToBoard: 2}},
		}, nil)

	resp := do(router, http.MethodPost, "/boards/2/cards/reassign", `{"card_ids":[5]}`)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"board_id":2,"moved_count":1,
		"reassigned_cards":[{"card_id":5,"from_board":1,"to_board":2}]}`, resp.Body.String())
}

func TestReassignCards_MalformedIDs(t *testing.T) {
	router, boards, _ := setupTest()

	resp := do(router, http.MethodPost, "/boards/2/cards/reassign", `{"card_ids":["abc"]}`)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	boards.AssertNotCalled(t, "ReassignCards", mock.Anything, mock.Anything, mock.Anything)
}

func TestConstraintViolationIsBadRequest(t *testing.T) {
	router, boards, _ := setupTest()
	boards.On("CreateCardOnBoard", mock.Anything, "1", service.CardCreate{Message: "hi"}).
		Return(service.CardResponse{}, &service.ConstraintViolationError{Reason: "constraint violation: board 1 does not exist"})

	resp := do(router, http.MethodPost, "/boards/1/cards", `{"message":"hi"}`)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestListCards(t *testing.T) {
	router, _, cards := setupTest()
	cards.On("ListCards", mock.Anything, "keep").Return([]service.CardResponse{}, nil)

	resp := do(router, http.MethodGet, "/cards?message=keep", "")

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `[]`, resp.Body.String())
	cards.AssertExpectations(t)
}

func TestGetCard_NotFound(t *testing.T) {
	router, _, cards := setupTest()
	cards.On("GetCard", mock.Anything, "9999").
		Return(service.CardResponse{}, &service.NotFoundError{Entity: "card", ID: "9999"})

	resp := do(router, http.MethodGet, "/cards/9999", "")

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestUpdateCard_IgnoresLikesCount(t *testing.T) {
	router, _, cards := setupTest()
	cards.On("UpdateCard", mock.Anything, "4", service.CardUpdate{Message: service.Some("Updated Message")}).Return(nil)

	resp := do(router, http.MethodPut, "/cards/4", `{"message":"Updated Message","likes_count":5}`)

	assert.Equal(t, http.StatusNoContent, resp.Code)
	cards.AssertExpectations(t)
}

func TestDeleteCard(t *testing.T) {
	router, _, cards := setupTest()
	cards.On("DeleteCard", mock.Anything, "4").Return(nil)

	resp := do(router, http.MethodDelete, "/cards/4", "")

	assert.Equal(t, http.StatusNoContent, resp.Code)
}

func TestLikeCard(t *testing.T) {
	router, _, cards := setupTest()
	cards.On("LikeCard", mock.Anything, "4").
		Return(service.CardResponse{ID: 4, Message: "Like me", LikesCount: 1, BoardID: 1}, nil)

	resp := do(router, http.MethodPatch, "/cards/4/like", "")

	assert.Equal(t, http.StatusOK, resp.Code)
	var card service.CardResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &card))
	assert.Equal(t, 1, card.LikesCount)
}

func TestHealthCheck(t *testing.T) {
	gin.SetMode(gin.TestMode)

	for _, tt := range []struct {
		name string
		err  error
		code int
	}{
		{name: "up", code: http.StatusOK},
		{name: "down", err: errors.New("db down"), code: http.StatusServiceUnavailable},
	} {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/health", handler.NewHealthHandler(fakePinger{err: tt.err}).Check)

			resp := do(r, http.MethodGet, "/health", "")

			assert.Equal(t, tt.code, resp.Code)
		})
	}
}
