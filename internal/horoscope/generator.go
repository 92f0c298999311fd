package horoscope

import (
	"math/rand"

	"horoscope-api/internal/models"
	"horoscope-api/internal/zodiac"
)

// Fixed suffixes appended depending on the drawn mood. A positive mood
// appends nothing.
const (
	challengingSuffix = " However, be prepared to face some obstacles with patience and determination."
	neutralSuffix     = " Maintain balance in all areas of your life today."
)

var categories = []string{
	models.CategoryGeneral,
	models.CategoryLove,
	models.CategoryCareer,
	models.CategoryHealth,
	models.CategoryFinance,
}

var moods = []string{
	models.MoodPositive,
	models.MoodNeutral,
	models.MoodChallenging,
}

// Reading is one generated horoscope before persistence.
type Reading struct {
	Content  string
	Category string
	Mood     string
}

// RandSource supplies the randomness for content selection. Tests inject a
// deterministic sequence.
type RandSource interface {
	// Intn returns a non-negative number in [0, n).
	Intn(n int) int
}

// systemRand delegates to the package-level math/rand source, which is safe
// for concurrent use.
type systemRand struct{}

func (systemRand) Intn(n int) int { return rand.Intn(n) }

// Generator produces random readings from an immutable template table.
// Callers must only invoke Generate when no stored horoscope exists yet for
// the target (sign, date): every generated reading that gets persisted
// becomes permanent content for that day.
type Generator struct {
	templates *TemplateTable
	rand      RandSource
}

// NewGenerator creates a Generator. A nil rand source falls back to the
// global math/rand source.
func NewGenerator(templates *TemplateTable, r RandSource) *Generator {
	if r == nil {
		r = systemRand{}
	}
	return &Generator{templates: templates, rand: r}
}

// Generate draws a category and mood uniformly, selects content from the
// sign's matching pool (general pool when the sign has no pool for the
// drawn category), and appends the mood suffix.
func (g *Generator) Generate(sign zodiac.Sign) Reading {
	category := categories[g.rand.Intn(len(categories))]
	mood := moods[g.rand.Intn(len(moods))]

	pool := g.templates.Pool(sign, category)
	content := pool[g.rand.Intn(len(pool))]

	switch mood {
	case models.MoodChallenging:
		content += challengingSuffix
	case models.MoodNeutral:
		content += neutralSuffix
	}

	return Reading{
		Content:  content,
		Category: category,
		Mood:     mood,
	}
}
