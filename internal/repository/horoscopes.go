package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"horoscope-api/internal/models"
)

// PostgresHoroscopeRepo is the pgx-backed HoroscopeRepository.
type PostgresHoroscopeRepo struct {
	db DB
}

// NewPostgresHoroscopeRepo creates a PostgresHoroscopeRepo.
func NewPostgresHoroscopeRepo(db DB) *PostgresHoroscopeRepo {
	return &PostgresHoroscopeRepo{db: db}
}

const horoscopeColumns = `id, zodiac_sign, date, content, category, mood, created_at, updated_at`

func (r *PostgresHoroscopeRepo) FindBySignAndDate(ctx context.Context, sign string, date time.Time) (*models.Horoscope, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+horoscopeColumns+` FROM horoscopes WHERE zodiac_sign = $1 AND date = $2`,
		sign, date)

	var h models.Horoscope
	err := row.Scan(&h.ID, &h.ZodiacSign, &h.Date, &h.Content, &h.Category, &h.Mood, &h.CreatedAt, &h.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find horoscope: %w", err)
	}
	return &h, nil
}

// Insert relies on the UNIQUE(zodiac_sign, date) constraint to resolve
// concurrent creates: the loser's insert affects zero rows and the caller
// re-fetches the winner instead of erroring.
func (r *PostgresHoroscopeRepo) Insert(ctx context.Context, h *models.Horoscope) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`INSERT INTO horoscopes (id, zodiac_sign, date, content, category, mood, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (zodiac_sign, date) DO NOTHING`,
		h.ID, h.ZodiacSign, h.Date, h.Content, h.Category, h.Mood, h.CreatedAt, h.UpdatedAt,
	)
	if err != nil {
		return false, fmt.Errorf("failed to insert horoscope: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *PostgresHoroscopeRepo) ListBySignSince(ctx context.Context, sign string, since time.Time) ([]models.Horoscope, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+horoscopeColumns+` FROM horoscopes
		 WHERE zodiac_sign = $1 AND date >= $2
		 ORDER BY date DESC`,
		sign, since)
	if err != nil {
		return nil, fmt.Errorf("failed to list horoscopes: %w", err)
	}
	defer rows.Close()

	var horoscopes []models.Horoscope
	for rows.Next() {
		var h models.Horoscope
		if err := rows.Scan(&h.ID, &h.ZodiacSign, &h.Date, &h.Content, &h.Category, &h.Mood, &h.CreatedAt, &h.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan horoscope: %w", err)
		}
		horoscopes = append(horoscopes, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read horoscopes: %w", err)
	}
	return horoscopes, nil
}

func (r *PostgresHoroscopeRepo) DeleteAll(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM horoscopes`)
	if err != nil {
		return 0, fmt.Errorf("failed to delete horoscopes: %w", err)
	}
	return tag.RowsAffected(), nil
}
