package content

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned by Lookup for an unknown article id.
var ErrNotFound = errors.New("article not found")

// Repository holds the full article corpus in insertion order and answers
// queries without mutation. It is safe for concurrent readers.
type Repository struct {
	articles []Article
	byID     map[string]int
}

// NewRepository validates the corpus and indexes it. Duplicate ids and
// incompletely localized articles are rejected outright.
func NewRepository(articles []Article) (*Repository, error) {
	byID := make(map[string]int, len(articles))
	for i, a := range articles {
		if err := a.Validate(); err != nil {
			return nil, fmt.Errorf("invalid article at position %d: %w", i, err)
		}
		if _, dup := byID[a.ID]; dup {
			return nil, fmt.Errorf("duplicate article id %q", a.ID)
		}
		byID[a.ID] = i
	}
	return &Repository{articles: articles, byID: byID}, nil
}

// Len reports the corpus size.
func (r *Repository) Len() int {
	return len(r.articles)
}

// Query returns the articles matching both conditions, in insertion order:
// the search text must appear (case-insensitively) in the active-language
// title or body, the category name, or any tag; and unless category is
// AllCategories the article must belong to exactly that category. An empty
// search matches everything. An empty result is a normal outcome.
func (r *Repository) Query(search string, category Category, lang Language) []Article {
	q := strings.ToLower(search)
	out := make([]Article, 0)
	for _, a := range r.articles {
		if category != AllCategories && a.Category != category {
			continue
		}
		if !matchesSearch(a, q, lang) {
			continue
		}
		out = append(out, a)
	}
	return out
}

// Lookup returns the article with the given id, or ErrNotFound.
func (r *Repository) Lookup(id string) (Article, error) {
	i, ok := r.byID[id]
	if !ok {
		return Article{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return r.articles[i], nil
}

func matchesSearch(a Article, q string, lang Language) bool {
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(a.Title.ForLanguage(lang)), q) {
		return true
	}
	if strings.Contains(strings.ToLower(a.Body.ForLanguage(lang)), q) {
		return true
	}
	if strings.Contains(strings.ToLower(string(a.Category)), q) {
		return true
	}
	for _, tag := range a.Tags {
		if strings.Contains(tag, q) {
			return true
		}
	}
	return false
}
