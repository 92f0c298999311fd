// Package repository provides the PostgreSQL persistence layer.
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"horoscope-api/internal/models"
)

// DB is the subset of pgxpool.Pool the repositories use. pgxmock satisfies
// it in tests.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ErrDuplicateEmail is returned when a user insert hits the unique email
// constraint.
var ErrDuplicateEmail = errors.New("email already registered")

// UserRepository persists user accounts.
type UserRepository interface {
	// Create inserts a new user. Returns ErrDuplicateEmail when the email
	// is already taken.
	Create(ctx context.Context, user *models.User) error
	// FindByEmail returns the user with the given email, or nil when none
	// exists.
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	// FindByID returns the user with the given id, or nil when none exists.
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	// UpdateLastLogin stamps the user's last_login.
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}

// HoroscopeRepository persists daily horoscopes, one row per (sign, date).
type HoroscopeRepository interface {
	// FindBySignAndDate returns the stored horoscope for the sign and
	// calendar day, or nil when none exists yet.
	FindBySignAndDate(ctx context.Context, sign string, date time.Time) (*models.Horoscope, error)
	// Insert stores a new horoscope. When another writer already created a
	// row for the same (sign, date) it reports inserted=false and leaves
	// the existing row untouched.
	Insert(ctx context.Context, h *models.Horoscope) (inserted bool, err error)
	// ListBySignSince returns horoscopes for the sign with date >= since,
	// newest first.
	ListBySignSince(ctx context.Context, sign string, since time.Time) ([]models.Horoscope, error)
	// DeleteAll wipes the horoscope table. Only the bulk reseed uses this.
	DeleteAll(ctx context.Context) (int64, error)
}

// ViewHistoryRepository persists view records, one row per (user, date).
type ViewHistoryRepository interface {
	// Upsert inserts the view record or, when one already exists for the
	// same (user, date), overwrites its horoscope reference, sign and
	// viewed_at in place.
	Upsert(ctx context.Context, v *models.ViewHistory) error
	// ListDatesSince returns the distinct calendar days with date >= since
	// on which the user viewed a horoscope.
	ListDatesSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]time.Time, error)
}

// uniqueViolation is the Postgres error code for unique constraint hits.
const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
