package horoscope

import (
	_ "embed"
	"fmt"

	"github.com/goccy/go-yaml"

	"horoscope-api/internal/zodiac"
)

//go:embed templates.yaml
var templatesYAML []byte

// TemplateTable holds the static horoscope content pools, keyed by sign and
// category. Every sign carries a "general" pool; category-specific pools are
// an optional per-sign enrichment. The table is loaded once at process start
// and treated as immutable.
type TemplateTable struct {
	pools map[zodiac.Sign]map[string][]string
}

// LoadTemplates parses a YAML template table and validates it: all 12 signs
// must be present, each with a non-empty general pool, and every template
// must satisfy the minimum content length.
func LoadTemplates(data []byte) (*TemplateTable, error) {
	var raw map[string]map[string][]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse horoscope templates: %w", err)
	}

	pools := make(map[zodiac.Sign]map[string][]string, len(raw))
	for name, categories := range raw {
		sign, err := zodiac.ParseSign(name)
		if err != nil {
			return nil, fmt.Errorf("horoscope templates: %w", err)
		}
		if len(categories["general"]) == 0 {
			return nil, fmt.Errorf("horoscope templates: %s has no general pool", sign)
		}
		for category, pool := range categories {
			if !validCategory(category) {
				return nil, fmt.Errorf("horoscope templates: %s has unknown category %q", sign, category)
			}
			for _, content := range pool {
				if len(content) < minTemplateLength {
					return nil, fmt.Errorf("horoscope templates: %s/%s template shorter than %d chars", sign, category, minTemplateLength)
				}
			}
		}
		pools[sign] = categories
	}

	for _, sign := range zodiac.Signs {
		if _, ok := pools[sign]; !ok {
			return nil, fmt.Errorf("horoscope templates: missing sign %s", sign)
		}
	}

	return &TemplateTable{pools: pools}, nil
}

// DefaultTemplates loads the embedded template table. It panics on error
// since the embedded data is fixed at build time.
func DefaultTemplates() *TemplateTable {
	table, err := LoadTemplates(templatesYAML)
	if err != nil {
		panic(err)
	}
	return table
}

// Pool returns the template pool for a sign and category, falling back to
// the sign's general pool when no category-specific pool exists.
func (t *TemplateTable) Pool(sign zodiac.Sign, category string) []string {
	categories := t.pools[sign]
	if pool, ok := categories[category]; ok && len(pool) > 0 {
		return pool
	}
	return categories["general"]
}

// minTemplateLength matches the minimum horoscope content length; suffixes
// only ever add to it.
const minTemplateLength = 50

func validCategory(c string) bool {
	switch c {
	case "general", "love", "career", "health", "finance":
		return true
	}
	return false
}
