package service

import (
	"bytes"
	"encoding/json"
)

// Optional distinguishes a field left out of a JSON payload from one that was
// supplied. A supplied JSON null is recorded in Null and rejected by validation.
type Optional[T any] struct {
	Value T
	Set   bool
	Null  bool
}

// Some returns a supplied Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Set: true}
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Null = true
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set || o.Null {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

type BoardCreate struct {
	Title string `json:"title" validate:"required,notblank"`
	Owner string `json:"owner" validate:"required,notblank"`
}

// BoardUpdate carries only the board fields the caller supplied.
type BoardUpdate struct {
	Title Optional[string] `json:"title" swaggertype:"string"`
	Owner Optional[string] `json:"owner" swaggertype:"string"`
}

type CardCreate struct {
	Message string `json:"message" validate:"required,notblank,max=40"`
}

// CardUpdate carries only the card fields the caller supplied. likes_count
// changes through LikeCard only, so a likes_count key in an update body is
// ignored.
type CardUpdate struct {
	Message Optional[string] `json:"message" swaggertype:"string"`
}

type ReassignRequest struct {
	CardIDs []int64 `json:"card_ids" validate:"min=1"`
}
