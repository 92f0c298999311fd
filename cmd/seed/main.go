// Seed wipes the horoscope table and regenerates content for every zodiac
// sign over the trailing history window, today included.
package main

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"horoscope-api/internal/config"
	"horoscope-api/internal/database"
	"horoscope-api/internal/horoscope"
	"horoscope-api/internal/models"
	"horoscope-api/internal/repository"
	"horoscope-api/internal/zodiac"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	if err := database.RunMigrations(cfg.GetDSN()); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.GetDSN())
	if err != nil {
		log.Fatalf("connect: %v", err)
	}
	defer pool.Close()

	repo := repository.NewPostgresHoroscopeRepo(pool)
	generator := horoscope.NewGenerator(horoscope.DefaultTemplates(), nil)

	deleted, err := repo.DeleteAll(ctx)
	if err != nil {
		log.Fatalf("wipe horoscopes: %v", err)
	}
	log.Printf("Deleted %d existing horoscopes", deleted)

	today := horoscope.DayOf(time.Now())
	seeded := 0
	for offset := 0; offset < horoscope.HistoryWindowDays; offset++ {
		day := today.AddDate(0, 0, -offset)
		for _, sign := range zodiac.Signs {
			reading := generator.Generate(sign)
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
			inserted, err := repo.Insert(ctx, h)
			if err != nil {
				log.Fatalf("seed %s %s: %v", sign, day.Format("2006-01-02"), err)
			}
			if inserted {
				seeded++
			}
		}
	}

	log.Printf("Seeded %d horoscopes across %d days", seeded, horoscope.HistoryWindowDays)
}
