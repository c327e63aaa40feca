package service

import (
	"context"
	"log/slog"
	"strings"

	"inspoboard/internal/model"
	"inspoboard/internal/repository"
)

// BoardService runs the board workflows, each inside one store transaction.
type BoardService struct {
	store    *repository.Store
	validate *Validator
}

func NewBoardService(store *repository.Store, validate *Validator) *BoardService {
	return &BoardService{store: store, validate: validate}
}

func (s *BoardService) CreateBoard(ctx context.Context, p BoardCreate) (BoardResponse, error) {
	if err := s.validate.ValidateBoardCreate(p); err != nil {
		return BoardResponse{}, err
	}

	board := &model.Board{Title: p.Title, Owner: p.Owner}
	err := s.store.Transaction(ctx, func(tx *repository.Tx) error {
		if err := tx.Boards.Create(ctx, board); err != nil {
			return storeError("create board", EntityBoard, 0, err)
		}
		return nil
	})
	if err != nil {
		return BoardResponse{}, err
	}

	slog.Info("board created", "board_id", board.ID)
	return ToBoardResponse(board), nil
}

func (s *BoardService) GetBoard(ctx context.Context, rawID string) (BoardResponse, error) {
	var resp BoardResponse
	err := s.store.Transaction(ctx, func(tx *repository.Tx) error {
		board, err := resolveBoard(ctx, tx, rawID)
		if err != nil {
			return err
		}
		resp = ToBoardResponse(board)
		return nil
	})
	return resp, err
}

// ListBoards returns all boards by ascending id; a non-empty title narrows the
// result to boards whose title contains it, ignoring case.
func (s *BoardService) ListBoards(ctx context.Context, title string) ([]BoardResponse, error) {
	var resp []BoardResponse
	err := s.store.Transaction(ctx, func(tx *repository.Tx) error {
		boards, err := tx.Boards.List(ctx, strings.TrimSpace(title))
		if err != nil {
			return storeError("list boards", EntityBoard, 0, err)
		}
		resp = ToBoardResponses(boards)
		return nil
	})
	return resp, err
}

// UpdateBoard applies the supplied fields only; absent fields keep their value.
func (s *BoardService) UpdateBoard(ctx context.Context, rawID string, p BoardUpdate) error {
	return s.store.Transaction(ctx, func(tx *repository.Tx) error {
		board, err := resolveBoard(ctx, tx, rawID)
		if err != nil {
			return err
		}
		if err := s.validate.ValidateBoardUpdate(p); err != nil {
			return err
		}

		fields := map[string]interface{}{}
		if p.Title.Set {
			fields["title"] = p.Title.Value
		}
		if p.Owner.Set {
			fields["owner"] = p.Owner.Value
		}
		if err := tx.Boards.Update(ctx, board.ID, fields); err != nil {
			return storeError("update board", EntityBoard, board.ID, err)
		}
		return nil
	})
}

// DeleteBoard removes the board's cards and then the board, in one transaction.
func (s *BoardService) DeleteBoard(ctx context.Context, rawID string) error {
	return s.store.Transaction(ctx, func(tx *repository.Tx) error {
		board, err := resolveBoard(ctx, tx, rawID)
		if err != nil {
			return err
		}

		removed, err := tx.Cards.DeleteByBoard(ctx, board.ID)
		if err != nil {
			return storeError("delete board cards", EntityCard, 0, err)
		}
		if err := tx.Boards.Delete(ctx, board.ID); err != nil {
			return storeError("delete board", EntityBoard, board.ID, err)
		}

		slog.Info("board deleted", "board_id", board.ID, "cards_removed", removed)
		return nil
	})
}

func (s *BoardService) GetBoardCards(ctx context.Context, rawID string) (BoardWithCardsResponse, error) {
	var resp BoardWithCardsResponse
	err := s.store.Transaction(ctx, func(tx *repository.Tx) error {
		board, err := resolveBoard(ctx, tx, rawID)
		if err != nil {
			return err
		}
		cards, err := tx.Cards.ListByBoard(ctx, board.ID)
		if err != nil {
			return storeError("list board cards", EntityCard, 0, err)
		}
		resp = ToBoardWithCardsResponse(board, cards)
		return nil
	})
	return resp, err
}

// CreateCardOnBoard adds a card to an existing board. The board comes from the
// route, never from the payload.
func (s *BoardService) CreateCardOnBoard(ctx context.Context, rawBoardID string, p CardCreate) (CardResponse, error) {
	var resp CardResponse
	err := s.store.Transaction(ctx, func(tx *repository.Tx) error {
		board, err := resolveBoard(ctx, tx, rawBoardID)
		if err != nil {
			return err
		}
		if err := s.validate.ValidateCardCreate(p); err != nil {
			return err
		}

		card := &model.Card{Message: p.Message, BoardID: board.ID}
		if err := tx.Cards.Create(ctx, card); err != nil {
			return storeError("create card", EntityCard, 0, err)
		}
		resp = ToCardResponse(card)
		return nil
	})
	if err != nil {
		return CardResponse{}, err
	}

	slog.Info("card created", "card_id", resp.ID, "board_id", resp.BoardID)
	return resp, nil
}

// ReassignCards moves every listed card onto the target board. It is all or
// nothing: the first card that does not resolve aborts the transaction and no
// card changes board. Repeated ids are moved once.
func (s *BoardService) ReassignCards(ctx context.Context, rawBoardID string, p ReassignRequest) (ReassignResponse, error) {
	if err := s.validate.ValidateReassign(p); err != nil {
		return ReassignResponse{}, err
	}

	var resp ReassignResponse
	err := s.store.Transaction(ctx, func(tx *repository.Tx) error {
		target, err := resolveBoard(ctx, tx, rawBoardID)
		if err != nil {
			return err
		}

		moves := make([]Reassignment, 0, len(p.CardIDs))
		seen := make(map[int64]struct{}, len(p.CardIDs))
		for _, id := range p.CardIDs {
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}

			card, err := lookupCard(ctx, tx, id)
			if err != nil {
				return err
			}
			if err := tx.Cards.MoveToBoard(ctx, card.ID, target.ID); err != nil {
				return storeError("reassign card", EntityCard, card.ID, err)
			}
			moves = append(moves, Reassignment{CardID: card.ID, FromBoard: card.BoardID, ToBoard: target.ID})
		}

		resp = ReassignResponse{BoardID: target.ID, MovedCount: len(moves), ReassignedCards: moves}
		return nil
	})
	if err != nil {
		return ReassignResponse{}, err
	}

	slog.Info("cards reassigned", "board_id", resp.BoardID, "moved", resp.MovedCount)
	return resp, nil
}
