package catalog

import (
	"slices"
)

// GeneralCategory is returned for topics that are not in the catalog.
const GeneralCategory = "General"

// Category is a named, ordered group of topics.
type Category struct {
	Name   string
	Topics []string
}

// Rand is the subset of math/rand/v2 used for sampling topics.
type Rand interface {
	IntN(n int) int
}

// Catalog is an immutable category → topics taxonomy with precomputed indices.
type Catalog struct {
	categories []Category
	byName     map[string]int
	categoryOf map[string]string
	all        []string
	count      int
}

// New builds a Catalog from categories in display order. The input is copied.
// When a topic appears in more than one category, the first one wins for
// CategoryOf and AllTopics.
func New(categories []Category) *Catalog {
	c := &Catalog{
		categories: make([]Category, len(categories)),
		byName:     make(map[string]int, len(categories)),
		categoryOf: make(map[string]string),
	}

	for i, cat := range categories {
		c.categories[i] = Category{Name: cat.Name, Topics: slices.Clone(cat.Topics)}
		if _, exists := c.byName[cat.Name]; !exists {
			c.byName[cat.Name] = i
		}
		c.count += len(cat.Topics)

		for _, topic := range cat.Topics {
			if _, seen := c.categoryOf[topic]; seen {
				continue
			}
			c.categoryOf[topic] = cat.Name
			c.all = append(c.all, topic)
		}
	}

	return c
}

// Categories returns every category in display order.
func (c *Catalog) Categories() []Category {
	out := make([]Category, len(c.categories))
	for i, cat := range c.categories {
		out[i] = Category{Name: cat.Name, Topics: slices.Clone(cat.Topics)}
	}
	return out
}

// CategoryNames returns the category names in display order.
func (c *Catalog) CategoryNames() []string {
	names := make([]string, len(c.categories))
	for i, cat := range c.categories {
		names[i] = cat.Name
	}
	return names
}

// Topics returns the topics of a category, or nil if the category is unknown.
func (c *Catalog) Topics(category string) []string {
	i, ok := c.byName[category]
	if !ok {
		return nil
	}
	return slices.Clone(c.categories[i].Topics)
}

// AllTopics returns every distinct topic in catalog order.
func (c *Catalog) AllTopics() []string {
	return slices.Clone(c.all)
}

// CategoryOf returns the first category that lists topic, or GeneralCategory.
func (c *Catalog) CategoryOf(topic string) string {
	if name, ok := c.categoryOf[topic]; ok {
		return name
	}
	return GeneralCategory
}

// Contains reports whether topic is listed in any category.
func (c *Catalog) Contains(topic string) bool {
	_, ok := c.categoryOf[topic]
	return ok
}

// TopicCount returns the total number of topic entries across categories,
// counting a topic once per category that lists it.
func (c *Catalog) TopicCount() int {
	return c.count
}

// Featured samples up to n distinct topics in random order.
func (c *Catalog) Featured(rng Rand, n int) []string {
	pool := slices.Clone(c.all)
	n = min(n, len(pool))
	if n <= 0 {
		return nil
	}
	// Partial Fisher-Yates: the first n slots end up as the sample.
	for i := range n {
		j := i + rng.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n]
}

// RandomTopic picks one topic uniformly. It returns "" for an empty catalog.
func (c *Catalog) RandomTopic(rng Rand) string {
	if len(c.all) == 0 {
		return ""
	}
	return c.all[rng.IntN(len(c.all))]
}
