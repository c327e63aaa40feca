package repository

import (
	"context"

	"gorm.io/gorm"
)

// Store is the transaction boundary over the board and card tables.
type Store struct {
	db *gorm.DB
}

// Tx exposes repositories bound to a single open transaction.
type Tx struct {
	Boards *BoardRepository
	Cards  *CardRepository
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Transaction runs fn in one database transaction. It commits when fn returns
// nil and rolls back when fn returns an error or panics.
func (s *Store) Transaction(ctx context.Context, fn func(tx *Tx) error) error {
	return s.db.WithContext(ctx).Transaction(func(gtx *gorm.DB) error {
		return fn(&Tx{
			Boards: NewBoardRepository(gtx),
			Cards:  NewCardRepository(gtx),
		})
	})
}

func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
