package handlers

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"horoscope-api/internal/config"
	"horoscope-api/internal/horoscope"
	"horoscope-api/internal/models"
	"horoscope-api/internal/repository"
)

// fakeUserRepo is an in-memory UserRepository for handler tests.
type fakeUserRepo struct {
	mu      sync.Mutex
	byEmail map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*models.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.byEmail[user.Email]; exists {
		return repository.ErrDuplicateEmail
	}
	u := *user
	f.byEmail[user.Email] = &u
	return nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.byEmail[email]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.byEmail {
		if u.ID == id {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.byEmail {
		if u.ID == id {
			stamped := at
			u.LastLogin = &stamped
			return nil
		}
	}
	return fmt.Errorf("user %s not found", id)
}

// fakeHoroscopeRepo is an in-memory HoroscopeRepository.
type fakeHoroscopeRepo struct {
	mu   sync.Mutex
	rows map[string]*models.Horoscope
}

func newFakeHoroscopeRepo() *fakeHoroscopeRepo {
	return &fakeHoroscopeRepo{rows: make(map[string]*models.Horoscope)}
}

func horoscopeKey(sign string, date time.Time) string {
	return sign + "|" + date.Format("2006-01-02")
}

func (f *fakeHoroscopeRepo) FindBySignAndDate(ctx context.Context, sign string, date time.Time) (*models.Horoscope, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if h, ok := f.rows[horoscopeKey(sign, date)]; ok {
		copied := *h
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeHoroscopeRepo) Insert(ctx context.Context, h *models.Horoscope) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := horoscopeKey(h.ZodiacSign, h.Date)
	if _, exists := f.rows[key]; exists {
		return false, nil
	}
	copied := *h
	f.rows[key] = &copied
	return true, nil
}

func (f *fakeHoroscopeRepo) ListBySignSince(ctx context.Context, sign string, since time.Time) ([]models.Horoscope, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Horoscope
	for _, h := range f.rows {
		if h.ZodiacSign == sign && !h.Date.Before(since) {
			out = append(out, *h)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (f *fakeHoroscopeRepo) DeleteAll(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := int64(len(f.rows))
	f.rows = make(map[string]*models.Horoscope)
	return n, nil
}

// fakeViewRepo is an in-memory ViewHistoryRepository.
type fakeViewRepo struct {
	mu   sync.Mutex
	rows map[string]*models.ViewHistory
}

func newFakeViewRepo() *fakeViewRepo {
	return &fakeViewRepo{rows: make(map[string]*models.ViewHistory)}
}

func viewKey(userID uuid.UUID, date time.Time) string {
	return userID.String() + "|" + date.Format("2006-01-02")
}

func (f *fakeViewRepo) Upsert(ctx context.Context, v *models.ViewHistory) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *v
	f.rows[viewKey(v.UserID, v.Date)] = &copied
	return nil
}

func (f *fakeViewRepo) ListDatesSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]time.Time, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []time.Time
	for _, v := range f.rows {
		if v.UserID == userID && !v.Date.Before(since) {
			out = append(out, v.Date)
		}
	}
	return out, nil
}

// testEnv bundles the fakes and handlers for a test.
type testEnv struct {
	cfg        *config.Config
	users      *fakeUserRepo
	horoscopes *fakeHoroscopeRepo
	views      *fakeViewRepo
	auth       *AuthHandler
	horoscope  *HoroscopeHandler
}

func newTestEnv() *testEnv {
	cfg := &config.Config{
		Env: "development",
		JWT: config.JWTConfig{Secret: "test-secret", ExpiresIn: time.Hour},
	}
	users := newFakeUserRepo()
	horoscopes := newFakeHoroscopeRepo()
	views := newFakeViewRepo()
	svc := horoscope.NewService(horoscopes, views, horoscope.NewGenerator(horoscope.DefaultTemplates(), nil), nil)
	return &testEnv{
		cfg:        cfg,
		users:      users,
		horoscopes: horoscopes,
		views:      views,
		auth:       NewAuthHandler(users, cfg),
		horoscope:  NewHoroscopeHandler(svc, users),
	}
}
