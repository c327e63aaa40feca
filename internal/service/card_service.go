package service

import (
	"context"
	"strings"

	"inspoboard/internal/repository"
)

// CardService runs the card workflows, each inside one store transaction.
type CardService struct {
	store    *repository.Store
	validate *Validator
}

func NewCardService(store *repository.Store, validate *Validator) *CardService {
	return &CardService{store: store, validate: validate}
}

func (s *CardService) ListCards(ctx context.Context, message string) ([]CardResponse, error) {
	var resp []CardResponse
	err := s.store.Transaction(ctx, func(tx *repository.Tx) error {
		cards, err := tx.Cards.List(ctx, strings.TrimSpace(message))
		if err != nil {
			return storeError("list cards", EntityCard, 0, err)
		}
		resp = ToCardResponses(cards)
		return nil
	})
	return resp, err
}

func (s *CardService) GetCard(ctx context.Context, rawID string) (CardResponse, error) {
	var resp CardResponse
	err := s.store.Transaction(ctx, func(tx *repository.Tx) error {
		card, err := resolveCard(ctx, tx, rawID)
		if err != nil {
			return err
		}
		resp = ToCardResponse(card)
		return nil
	})
	return resp, err
}

// UpdateCard rewrites the message when one is supplied. likes_count is never
// touched here.
func (s *CardService) UpdateCard(ctx context.Context, rawID string, p CardUpdate) error {
	return s.store.Transaction(ctx, func(tx *repository.Tx) error {
		card, err := resolveCard(ctx, tx, rawID)
		if err != nil {
			return err
		}
		if err := s.validate.ValidateCardUpdate(p); err != nil {
			return err
		}
		if !p.Message.Set {
			return nil
		}
		if err := tx.Cards.UpdateMessage(ctx, card.ID, p.Message.Value); err != nil {
			return storeError("update card", EntityCard, card.ID, err)
		}
		return nil
	})
}

func (s *CardService) DeleteCard(ctx context.Context, rawID string) error {
	return s.store.Transaction(ctx, func(tx *repository.Tx) error {
		card, err := resolveCard(ctx, tx, rawID)
		if err != nil {
			return err
		}
		if err := tx.Cards.Delete(ctx, card.ID); err != nil {
			return storeError("delete card", EntityCard, card.ID, err)
		}
		return nil
	})
}

// LikeCard adds exactly one like and returns the card as stored afterwards.
func (s *CardService) LikeCard(ctx context.Context, rawID string) (CardResponse, error) {
	var resp CardResponse
	err := s.store.Transaction(ctx, func(tx *repository.Tx) error {
		card, err := resolveCard(ctx, tx, rawID)
		if err != nil {
			return err
		}
		if err := tx.Cards.IncrementLikes(ctx, card.ID); err != nil {
			return storeError("like card", EntityCard, card.ID, err)
		}
		liked, err := lookupCard(ctx, tx, card.ID)
		if err != nil {
			return err
		}
		resp = ToCardResponse(liked)
		return nil
	})
	return resp, err
}
