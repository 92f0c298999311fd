package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"horoscope-api/internal/models"
	"horoscope-api/internal/repository"
)

var horoscopeCols = []string{"id", "zodiac_sign", "date", "content", "category", "mood", "created_at", "updated_at"}

func testHoroscope() *models.Horoscope {
	now := time.Now().UTC()
	return &models.Horoscope{
		ID:         uuid.New(),
		ZodiacSign: "Taurus",
		Date:       time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC),
		Content:    "Your steady and reliable nature brings stability to those around you today, Taurus.",
		Category:   models.CategoryGeneral,
		Mood:       models.MoodPositive,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func TestHoroscopeRepo_FindBySignAndDate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repository.NewPostgresHoroscopeRepo(mock)
	ctx := context.Background()
	h := testHoroscope()

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM horoscopes WHERE zodiac_sign").
			WithArgs(h.ZodiacSign, h.Date).
			WillReturnRows(pgxmock.NewRows(horoscopeCols).
				AddRow(h.ID, h.ZodiacSign, h.Date, h.Content, h.Category, h.Mood, h.CreatedAt, h.UpdatedAt))

		got, err := r.FindBySignAndDate(ctx, h.ZodiacSign, h.Date)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, h.ID, got.ID)
		assert.Equal(t, h.Content, got.Content)
	})

	t.Run("absent returns nil without error", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM horoscopes WHERE zodiac_sign").
			WithArgs(h.ZodiacSign, h.Date).
			WillReturnError(pgx.ErrNoRows)

		got, err := r.FindBySignAndDate(ctx, h.ZodiacSign, h.Date)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM horoscopes WHERE zodiac_sign").
			WithArgs(h.ZodiacSign, h.Date).
			WillReturnError(errors.New("connection reset"))

		_, err := r.FindBySignAndDate(ctx, h.ZodiacSign, h.Date)
		assert.Error(t, err)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestHoroscopeRepo_Insert(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repository.NewPostgresHoroscopeRepo(mock)
	ctx := context.Background()
	h := testHoroscope()

	t.Run("inserted", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO horoscopes").
			WithArgs(h.ID, h.ZodiacSign, h.Date, h.Content, h.Category, h.Mood, h.CreatedAt, h.UpdatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		inserted, err := r.Insert(ctx, h)
		require.NoError(t, err)
		assert.True(t, inserted)
	})

	t.Run("conflict swallowed by DO NOTHING", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO horoscopes").
			WithArgs(h.ID, h.ZodiacSign, h.Date, h.Content, h.Category, h.Mood, h.CreatedAt, h.UpdatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 0))

		inserted, err := r.Insert(ctx, h)
		require.NoError(t, err)
		assert.False(t, inserted, "duplicate (sign, date) must report not-inserted, not error")
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestHoroscopeRepo_ListBySignSince(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repository.NewPostgresHoroscopeRepo(mock)
	ctx := context.Background()

	a := testHoroscope()
	b := testHoroscope()
	b.Date = a.Date.AddDate(0, 0, -1)
	since := a.Date.AddDate(0, 0, -7)

	mock.ExpectQuery("SELECT (.+) FROM horoscopes(.+)ORDER BY date DESC").
		WithArgs(a.ZodiacSign, since).
		WillReturnRows(pgxmock.NewRows(horoscopeCols).
			AddRow(a.ID, a.ZodiacSign, a.Date, a.Content, a.Category, a.Mood, a.CreatedAt, a.UpdatedAt).
			AddRow(b.ID, b.ZodiacSign, b.Date, b.Content, b.Category, b.Mood, b.CreatedAt, b.UpdatedAt))

	got, err := r.ListBySignSince(ctx, a.ZodiacSign, since)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, a.ID, got[0].ID)
	assert.Equal(t, b.ID, got[1].ID)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestHoroscopeRepo_DeleteAll(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repository.NewPostgresHoroscopeRepo(mock)

	mock.ExpectExec("DELETE FROM horoscopes").
		WillReturnResult(pgxmock.NewResult("DELETE", 84))

	n, err := r.DeleteAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(84), n)

	require.NoError(t, mock.ExpectationsWereMet())
}
