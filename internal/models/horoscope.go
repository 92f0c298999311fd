package models

import (
	"time"

	"github.com/google/uuid"
)

// Horoscope categories and moods match the fixed sets used by the generator.
const (
	CategoryGeneral = "general"
	CategoryLove    = "love"
	CategoryCareer  = "career"
	CategoryHealth  = "health"
	CategoryFinance = "finance"

	MoodPositive    = "positive"
	MoodNeutral     = "neutral"
	MoodChallenging = "challenging"
)

// MinContentLength is the minimum length of horoscope content.
const MinContentLength = 50

// Horoscope is the shared daily reading for one sign. At most one row
// exists per (zodiac_sign, date); rows are created lazily on first request
// and never mutated.
type Horoscope struct {
	ID         uuid.UUID `json:"id" db:"id"`
	ZodiacSign string    `json:"zodiac_sign" db:"zodiac_sign"`
	Date       time.Time `json:"date" db:"date"` // midnight UTC
	Content    string    `json:"content" db:"content"`
	Category   string    `json:"category" db:"category"`
	Mood       string    `json:"mood" db:"mood"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

// ViewHistory records that a user viewed the horoscope for a given day.
// At most one row exists per (user_id, date); repeat views on the same day
// overwrite the horoscope reference and viewed_at timestamp.
type ViewHistory struct {
	ID          uuid.UUID `json:"id" db:"id"`
	UserID      uuid.UUID `json:"user_id" db:"user_id"`
	HoroscopeID uuid.UUID `json:"horoscope_id" db:"horoscope_id"`
	ZodiacSign  string    `json:"zodiac_sign" db:"zodiac_sign"`
	ViewedAt    time.Time `json:"viewed_at" db:"viewed_at"`
	Date        time.Time `json:"date" db:"date"` // midnight UTC
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}
