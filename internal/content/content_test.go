package content

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/eduwiki/eduwiki/internal/catalog"
)

type fixedRand struct{ v int }

func (r fixedRand) IntN(n int) int {
	if r.v >= n {
		return n - 1
	}
	return r.v
}

func TestGenerate_KnownTopic(t *testing.T) {
	g := NewGenerator(catalog.Default(), fixedRand{v: 0})
	rec := g.Generate("Physics")

	if rec.Title != "Physics" {
		t.Errorf("Title = %q, want Physics", rec.Title)
	}
	if rec.Category != "Science" {
		t.Errorf("Category = %q, want Science", rec.Category)
	}
	if rec.Description != "Comprehensive study of Physics" {
		t.Errorf("Description = %q", rec.Description)
	}
	if rec.Difficulty != Beginner {
		t.Errorf("Difficulty = %q, want Beginner", rec.Difficulty)
	}
	if rec.EstimatedTime != "10 minutes" {
		t.Errorf("EstimatedTime = %q, want 10 minutes", rec.EstimatedTime)
	}
}

func TestGenerate_UpperBounds(t *testing.T) {
	g := NewGenerator(catalog.Default(), fixedRand{v: 1000})
	rec := g.Generate("Physics")
	if rec.Difficulty != Advanced {
		t.Errorf("Difficulty = %q, want Advanced", rec.Difficulty)
	}
	if rec.EstimatedTime != "45 minutes" {
		t.Errorf("EstimatedTime = %q, want 45 minutes", rec.EstimatedTime)
	}
}

func TestGenerate_UnknownTopicFallsBackToGeneral(t *testing.T) {
	g := NewGenerator(catalog.Default(), rand.New(rand.NewPCG(1, 2)))
	rec := g.Generate("Underwater Basket Weaving")
	if rec.Category != catalog.GeneralCategory {
		t.Errorf("Category = %q, want %q", rec.Category, catalog.GeneralCategory)
	}
	if rec.Body == "" {
		t.Error("Body should never be empty")
	}
}

func TestGenerate_RandomFieldsInRange(t *testing.T) {
	g := NewGenerator(catalog.Default(), rand.New(rand.NewPCG(7, 11)))
	valid := map[Difficulty]bool{Beginner: true, Intermediate: true, Advanced: true}

	for range 500 {
		rec := g.Generate("Chemistry")
		if !valid[rec.Difficulty] {
			t.Fatalf("unexpected difficulty %q", rec.Difficulty)
		}
		var mins int
		var unit string
		if _, err := fmt.Sscan(rec.EstimatedTime, &mins, &unit); err != nil {
			t.Fatalf("parse %q: %v", rec.EstimatedTime, err)
		}
		if mins < 10 || mins > 45 || unit != "minutes" {
			t.Fatalf("EstimatedTime %q out of range", rec.EstimatedTime)
		}
	}
}

func TestBody_TopicInEveryParagraph(t *testing.T) {
	for _, topic := range []string{"Physics", "5G Technology", "Arts & Literature", ""} {
		paras := strings.Split(Body(topic), "\n\n")
		if len(paras) != 5 {
			t.Fatalf("%q: got %d paragraphs, want 5", topic, len(paras))
		}
		for i, p := range paras {
			if !strings.Contains(p, topic) {
				t.Errorf("%q: paragraph %d lacks topic", topic, i)
			}
		}
	}
}

func TestBody_Golden(t *testing.T) {
	got := Paragraphs("Logic")
	want := "Current research in Logic focuses on innovative approaches and technological advancements. " +
		"Ongoing studies continue to reveal new insights, challenge existing paradigms, and open pathways " +
		"for innovation and discovery."
	if got[3] != want {
		t.Errorf("paragraph 4 =\n%s\nwant\n%s", got[3], want)
	}
	if !strings.HasPrefix(got[0], "Logic is a fundamental concept") {
		t.Errorf("paragraph 1 = %q", got[0])
	}
}

func TestBody_Pure(t *testing.T) {
	if Body("Ethics") != Body("Ethics") {
		t.Error("Body must be deterministic")
	}
}
