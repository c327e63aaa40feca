package repository

import (
	"context"
	"errors"
	"fmt"

	"inspoboard/internal/model"

	"gorm.io/gorm"
)

type CardRepository struct {
	db *gorm.DB
}

func NewCardRepository(db *gorm.DB) *CardRepository {
	return &CardRepository{db: db}
}

// Create inserts the card. A board_id without a matching board yields ErrConstraintViolation.
func (r *CardRepository) Create(ctx context.Context, card *model.Card) error {
	if err := r.db.WithContext(ctx).Create(card).Error; err != nil {
		return translateFK(err, card.BoardID)
	}
	return nil
}

// GetByID retrieves a card by its ID
func (r *CardRepository) GetByID(ctx context.Context, id int64) (*model.Card, error) {
	var card model.Card
	result := r.db.WithContext(ctx).First(&card, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, result.Error
	}
	return &card, nil
}

// List returns cards ordered by id, optionally narrowed by a case-insensitive
// message substring.
func (r *CardRepository) List(ctx context.Context, message string) ([]model.Card, error) {
	var cards []model.Card
	q := containsFold(r.db.WithContext(ctx), "message", message)
	if err := q.Order("id").Find(&cards).Error; err != nil {
		return nil, err
	}
	return cards, nil
}

// ListByBoard retrieves all cards of a board in insertion order
func (r *CardRepository) ListByBoard(ctx context.Context, boardID int64) ([]model.Card, error) {
	var cards []model.Card
	result := r.db.WithContext(ctx).Where("board_id = ?", boardID).Order("id").Find(&cards)
	if result.Error != nil {
		return nil, result.Error
	}
	return cards, nil
}

// UpdateMessage rewrites the message column only; likes_count is never touched here.
func (r *CardRepository) UpdateMessage(ctx context.Context, id int64, message string) error {
	return r.updateColumn(ctx, id, "message", message)
}

// IncrementLikes adds one like in SQL so concurrent likes are never lost.
func (r *CardRepository) IncrementLikes(ctx context.Context, id int64) error {
	return r.updateColumn(ctx, id, "likes_count", gorm.Expr("likes_count + ?", 1))
}

// MoveToBoard points the card at another board.
func (r *CardRepository) MoveToBoard(ctx context.Context, id, boardID int64) error {
	if err := r.updateColumn(ctx, id, "board_id", boardID); err != nil {
		return translateFK(err, boardID)
	}
	return nil
}

// Delete removes a card by its ID
func (r *CardRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&model.Card{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCardNotFound
	}
	return nil
}

// DeleteByBoard removes every card of a board and reports how many went.
func (r *CardRepository) DeleteByBoard(ctx context.Context, boardID int64) (int64, error) {
	result := r.db.WithContext(ctx).Where("board_id = ?", boardID).Delete(&model.Card{})
	return result.RowsAffected, result.Error
}

func (r *CardRepository) updateColumn(ctx context.Context, id int64, column string, value interface{}) error {
	result := r.db.WithContext(ctx).Model(&model.Card{}).
		Where("id = ?", id).
		Update(column, value)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCardNotFound
	}
	return nil
}

func translateFK(err error, boardID int64) error {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return fmt.Errorf("%w: board %d does not exist", ErrConstraintViolation, boardID)
	}
	return err
}
