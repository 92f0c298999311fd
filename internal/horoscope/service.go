package horoscope

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"horoscope-api/internal/models"
	"horoscope-api/internal/repository"
	"horoscope-api/internal/zodiac"
)

// HistoryWindowDays is the trailing window the history query covers.
const HistoryWindowDays = 7

// DayOf truncates a timestamp to the start of its UTC calendar day. The
// truncated value is the lookup and storage key for horoscopes and view
// history.
func DayOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Metrics receives service-level counters. The metrics package implements
// it; a nil Metrics disables collection.
type Metrics interface {
	RecordHoroscopeGenerated(sign string)
	RecordViewRecorded()
}

// HistoryEntry is one day in the trailing history window.
type HistoryEntry struct {
	Date      time.Time
	Horoscope models.Horoscope
	Viewed    bool
}

// Service orchestrates daily horoscope reads: get-or-create per (sign, day),
// view recording and the trailing history query.
type Service struct {
	horoscopes repository.HoroscopeRepository
	views      repository.ViewHistoryRepository
	generator  *Generator
	metrics    Metrics
}

// NewService creates a Service.
func NewService(horoscopes repository.HoroscopeRepository, views repository.ViewHistoryRepository, generator *Generator, m Metrics) *Service {
	return &Service{
		horoscopes: horoscopes,
		views:      views,
		generator:  generator,
		metrics:    m,
	}
}

// GetOrCreate returns the stored horoscope for (sign, date), generating and
// persisting one when none exists yet. The date is truncated to its
// calendar day first. Repeat calls for the same day return the identical
// stored content.
//
// Two concurrent callers may both find no row and both try to insert; the
// unique constraint lets exactly one insert through and the loser re-fetches
// the winner's row. The retry never surfaces to the caller.
func (s *Service) GetOrCreate(ctx context.Context, sign zodiac.Sign, date time.Time) (*models.Horoscope, error) {
	day := DayOf(date)

	existing, err := s.horoscopes.FindBySignAndDate(ctx, string(sign), day)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	reading := s.generator.Generate(sign)
	now := time.Now().UTC()
	h := &models.Horoscope{
		ID:         uuid.New(),
		ZodiacSign: string(sign),
		Date:       day,
		Content:    reading.Content,
		Category:   reading.Category,
		Mood:       reading.Mood,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	inserted, err := s.horoscopes.Insert(ctx, h)
	if err != nil {
		return nil, err
	}
	if inserted {
		if s.metrics != nil {
			s.metrics.RecordHoroscopeGenerated(string(sign))
		}
		return h, nil
	}

	// Lost the race: another writer created the row first. Its content is
	// the permanent one for this day.
	winner, err := s.horoscopes.FindBySignAndDate(ctx, string(sign), day)
	if err != nil {
		return nil, err
	}
	if winner == nil {
		return nil, fmt.Errorf("horoscope for %s on %s vanished after insert conflict", sign, day.Format("2006-01-02"))
	}
	return winner, nil
}

// RecordView upserts the user's view record for the horoscope's day,
// overwriting any earlier view of the same day.
func (s *Service) RecordView(ctx context.Context, userID uuid.UUID, h *models.Horoscope) error {
	now := time.Now().UTC()
	v := &models.ViewHistory{
		ID:          uuid.New(),
		UserID:      userID,
		HoroscopeID: h.ID,
		ZodiacSign:  h.ZodiacSign,
		ViewedAt:    now,
		Date:        h.Date,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.views.Upsert(ctx, v); err != nil {
		return err
	}
	if s.metrics != nil {
		s.metrics.RecordViewRecorded()
	}
	return nil
}

// History returns the stored horoscopes for the user's sign over the
// trailing window anchored at now, newest first, each flagged with whether
// the user viewed it. Days with no stored horoscope are absent from the
// result.
func (s *Service) History(ctx context.Context, userID uuid.UUID, sign zodiac.Sign, now time.Time) ([]HistoryEntry, error) {
	since := DayOf(now.AddDate(0, 0, -HistoryWindowDays))

	horoscopes, err := s.horoscopes.ListBySignSince(ctx, string(sign), since)
	if err != nil {
		return nil, err
	}

	viewedDates, err := s.views.ListDatesSince(ctx, userID, since)
	if err != nil {
		return nil, err
	}
	viewed := make(map[string]bool, len(viewedDates))
	for _, d := range viewedDates {
		viewed[DayOf(d).Format("2006-01-02")] = true
	}

	entries := make([]HistoryEntry, 0, len(horoscopes))
	for _, h := range horoscopes {
		day := DayOf(h.Date)
		entries = append(entries, HistoryEntry{
			Date:      day,
			Horoscope: h,
			Viewed:    viewed[day.Format("2006-01-02")],
		})
	}
	return entries, nil
}
