package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"horoscope-api/internal/models"
)

// PostgresViewHistoryRepo is the pgx-backed ViewHistoryRepository.
type PostgresViewHistoryRepo struct {
	db DB
}

// NewPostgresViewHistoryRepo creates a PostgresViewHistoryRepo.
func NewPostgresViewHistoryRepo(db DB) *PostgresViewHistoryRepo {
	return &PostgresViewHistoryRepo{db: db}
}

// Upsert keeps a single row per (user_id, date) via the unique constraint:
// a repeat view on the same day overwrites the horoscope reference, sign
// and viewed_at instead of inserting a second row.
func (r *PostgresViewHistoryRepo) Upsert(ctx context.Context, v *models.ViewHistory) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO view_history (id, user_id, horoscope_id, zodiac_sign, viewed_at, date, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (user_id, date) DO UPDATE SET
		     horoscope_id = EXCLUDED.horoscope_id,
		     zodiac_sign = EXCLUDED.zodiac_sign,
		     viewed_at = EXCLUDED.viewed_at,
		     updated_at = EXCLUDED.updated_at`,
		v.ID, v.UserID, v.HoroscopeID, v.ZodiacSign, v.ViewedAt, v.Date, v.CreatedAt, v.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert view history: %w", err)
	}
	return nil
}

func (r *PostgresViewHistoryRepo) ListDatesSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]time.Time, error) {
	rows, err := r.db.Query(ctx,
		`SELECT date FROM view_history WHERE user_id = $1 AND date >= $2`,
		userID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to list view history: %w", err)
	}
	defer rows.Close()

	var dates []time.Time
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("failed to scan view history date: %w", err)
		}
		dates = append(dates, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read view history: %w", err)
	}
	return dates, nil
}
