package service

import "inspoboard/internal/model"

type BoardResponse struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Owner string `json:"owner"`
}

// BoardWithCardsResponse nests the board's cards in ascending id order. Cards
// never embed their board again.
type BoardWithCardsResponse struct {
	ID    int64          `json:"id"`
	Title string         `json:"title"`
	Owner string         `json:"owner"`
	Cards []CardResponse `json:"cards"`
}

type CardResponse struct {
	ID         int64  `json:"id"`
	Message    string `json:"message"`
	LikesCount int    `json:"likes_count"`
	BoardID    int64  `json:"board_id"`
}

type Reassignment struct {
	CardID    int64 `json:"card_id"`
	FromBoard int64 `json:"from_board"`
	ToBoard   int64 `json:"to_board"`
}

type ReassignResponse struct {
	BoardID         int64          `json:"board_id"`
	MovedCount      int            `json:"moved_count"`
	ReassignedCards []Reassignment `json:"reassigned_cards"`
}

func ToBoardResponse(b *model.Board) BoardResponse {
	return BoardResponse{ID: b.ID, Title: b.Title, Owner: b.Owner}
}

func ToBoardResponses(boards []model.Board) []BoardResponse {
	out := make([]BoardResponse, len(boards))
	for i := range boards {
		out[i] = ToBoardResponse(&boards[i])
	}
	return out
}

func ToBoardWithCardsResponse(b *model.Board, cards []model.Card) BoardWithCardsResponse {
	return BoardWithCardsResponse{
		ID:    b.ID,
		Title: b.Title,
		Owner: b.Owner,
		Cards: ToCardResponses(cards),
	}
}

func ToCardResponse(c *model.Card) CardResponse {
	return CardResponse{
		ID:         c.ID,
		Message:    c.Message,
		LikesCount: c.LikesCount,
		BoardID:    c.BoardID,
	}
}

func ToCardResponses(cards []model.Card) []CardResponse {
	out := make([]CardResponse, len(cards))
	for i := range cards {
		out[i] = ToCardResponse(&cards[i])
	}
	return out
}
