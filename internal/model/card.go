package model

// MaxMessageLength is the longest card message, counted in characters.
const MaxMessageLength = 40

type Card struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	Message    string `gorm:"size:40;not null"`
	LikesCount int    `gorm:"not null;default:0"`
	BoardID    int64  `gorm:"not null;index"`
}
