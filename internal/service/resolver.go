package service

import (
	"context"
	"strconv"
	"strings"

	"inspoboard/internal/model"
	"inspoboard/internal/repository"
)

// ParseID turns a caller-supplied identifier into a store id. Anything that
// cannot name a record (not an integer, zero, negative) is reported the same
// way as a missing record.
func ParseID(entity, raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, &NotFoundError{Entity: entity, ID: raw}
	}
	return id, nil
}

func resolveBoard(ctx context.Context, tx *repository.Tx, raw string) (*model.Board, error) {
	id, err := ParseID(EntityBoard, raw)
	if err != nil {
		return nil, err
	}
	return lookupBoard(ctx, tx, id)
}

func lookupBoard(ctx context.Context, tx *repository.Tx, id int64) (*model.Board, error) {
	board, err := tx.Boards.GetByID(ctx, id)
	if err != nil {
		return nil, storeError("get board", EntityBoard, id, err)
	}
	return board, nil
}

func resolveCard(ctx context.Context, tx *repository.Tx, raw string) (*model.Card, error) {
	id, err := ParseID(EntityCard, raw)
	if err != nil {
		return nil, err
	}
	return lookupCard(ctx, tx, id)
}

func lookupCard(ctx context.Context, tx *repository.Tx, id int64) (*model.Card, error) {
	if id <= 0 {
		return nil, notFound(EntityCard, id)
	}
	card, err := tx.Cards.GetByID(ctx, id)
	if err != nil {
		return nil, storeError("get card", EntityCard, id, err)
	}
	return card, nil
}
