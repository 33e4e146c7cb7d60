package content

import (
	"fmt"
	"strings"

	"github.com/eduwiki/eduwiki/internal/catalog"
)

// Difficulty is the study level shown alongside a topic.
type Difficulty string

const (
	Beginner     Difficulty = "Beginner"
	Intermediate Difficulty = "Intermediate"
	Advanced     Difficulty = "Advanced"
)

// Difficulties returns every difficulty level in ascending order.
func Difficulties() []Difficulty {
	return []Difficulty{Beginner, Intermediate, Advanced}
}

const (
	minStudyMins = 10
	maxStudyMins = 45
)

// Record is the study material generated for one topic.
type Record struct {
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Body          string     `json:"body"`
	Category      string     `json:"category"`
	Difficulty    Difficulty `json:"difficulty"`
	EstimatedTime string     `json:"estimated_time"`
}

// Rand is the subset of math/rand/v2 the generator draws from.
type Rand interface {
	IntN(n int) int
}

// Generator builds Records. Difficulty and study time are sampled on every
// call, so two records for the same topic may differ; callers that need a
// stable record must keep the one they got.
type Generator struct {
	catalog *catalog.Catalog
	rng     Rand
}

// NewGenerator returns a Generator resolving categories against c.
func NewGenerator(c *catalog.Catalog, rng Rand) *Generator {
	return &Generator{catalog: c, rng: rng}
}

// Generate returns a fresh Record for topic. Topics outside the catalog get
// the General category.
func (g *Generator) Generate(topic string) Record {
	levels := Difficulties()
	mins := minStudyMins + g.rng.IntN(maxStudyMins-minStudyMins+1)

	return Record{
		Title:         topic,
		Description:   fmt.Sprintf("Comprehensive study of %s", topic),
		Body:          Body(topic),
		Category:      g.catalog.CategoryOf(topic),
		Difficulty:    levels[g.rng.IntN(len(levels))],
		EstimatedTime: fmt.Sprintf("%d minutes", mins),
	}
}

// Paragraphs returns the five body paragraphs for topic.
func Paragraphs(topic string) []string {
	out := make([]string, len(paragraphTemplates))
	for i, tmpl := range paragraphTemplates {
		out[i] = fmt.Sprintf(tmpl, topic)
	}
	return out
}

// Body returns the full study text for topic, paragraphs separated by a
// blank line.
func Body(topic string) string {
	return strings.Join(Paragraphs(topic), "\n\n")
}
