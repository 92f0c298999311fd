package horoscope

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"horoscope-api/internal/models"
	"horoscope-api/internal/zodiac"
)

// seqRand replays a fixed sequence of draws.
type seqRand struct {
	values []int
	pos    int
}

func (r *seqRand) Intn(n int) int {
	v := r.values[r.pos%len(r.values)]
	r.pos++
	return v % n
}

func TestGenerate_PositiveMoodHasNoSuffix(t *testing.T) {
	// Draws: category=0 (general), mood=0 (positive), content=0.
	g := NewGenerator(DefaultTemplates(), &seqRand{values: []int{0, 0, 0}})

	reading := g.Generate(zodiac.Leo)

	assert.Equal(t, models.CategoryGeneral, reading.Category)
	assert.Equal(t, models.MoodPositive, reading.Mood)
	assert.Equal(t, DefaultTemplates().Pool(zodiac.Leo, "general")[0], reading.Content)
	assert.False(t, strings.HasSuffix(reading.Content, challengingSuffix))
	assert.False(t, strings.HasSuffix(reading.Content, neutralSuffix))
}

func TestGenerate_MoodSuffixes(t *testing.T) {
	tests := []struct {
		name   string
		mood   int
		suffix string
	}{
		{"neutral appends balancing suffix", 1, neutralSuffix},
		{"challenging appends cautionary suffix", 2, challengingSuffix},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGenerator(DefaultTemplates(), &seqRand{values: []int{0, tt.mood, 0}})
			reading := g.Generate(zodiac.Virgo)
			assert.True(t, strings.HasSuffix(reading.Content, tt.suffix))
		})
	}
}

func TestGenerate_CategoryPoolWhenPresent(t *testing.T) {
	// Draws: category=1 (love), mood=0 (positive), content=0. Aries has a
	// dedicated love pool.
	g := NewGenerator(DefaultTemplates(), &seqRand{values: []int{1, 0, 0}})

	reading := g.Generate(zodiac.Aries)

	assert.Equal(t, models.CategoryLove, reading.Category)
	assert.Equal(t, DefaultTemplates().Pool(zodiac.Aries, "love")[0], reading.Content)
}

func TestGenerate_FallsBackToGeneralPool(t *testing.T) {
	// Pisces has no career pool; content must come from its general pool.
	g := NewGenerator(DefaultTemplates(), &seqRand{values: []int{2, 0, 1}})

	reading := g.Generate(zodiac.Pisces)

	assert.Equal(t, models.CategoryCareer, reading.Category)
	assert.Equal(t, DefaultTemplates().Pool(zodiac.Pisces, "general")[1], reading.Content)
}

func TestGenerate_ContentMeetsMinimumLength(t *testing.T) {
	g := NewGenerator(DefaultTemplates(), nil)

	for _, sign := range zodiac.Signs {
		for i := 0; i < 20; i++ {
			reading := g.Generate(sign)
			assert.GreaterOrEqual(t, len(reading.Content), models.MinContentLength)
			assert.Contains(t, []string{"general", "love", "career", "health", "finance"}, reading.Category)
			assert.Contains(t, []string{"positive", "neutral", "challenging"}, reading.Mood)
		}
	}
}
