package content

import (
	"fmt"
	"strings"
)

// Category is one of the closed set of clinical domains articles are
// filed under.
type Category string

const (
	CategoryGeneral        Category = "General Medicine"
	CategoryInternal       Category = "Internal Medicine"
	CategorySurgery        Category = "Surgery"
	CategoryNursing        Category = "Nursing"
	CategoryEmergency      Category = "Emergency Medicine"
	CategoryPediatrics     Category = "Pediatrics"
	CategoryGynecology     Category = "Gynecology"
	CategoryCardiology     Category = "Cardiology"
	CategoryNeurology      Category = "Neurology"
	CategoryOncology       Category = "Oncology"
	CategoryRadiology      Category = "Radiology"
	CategoryAnesthesiology Category = "Anesthesiology"
	CategoryPharmacology   Category = "Pharmacology"
	CategoryLaboratory     Category = "Laboratory Medicine"
	CategoryEquipment      Category = "Medical Equipment"
	CategoryGuidelines     Category = "Clinical Guidelines"
	CategoryEducation      Category = "Medical Education"
	CategoryResearch       Category = "Research"
	CategoryPreventive     Category = "Preventive Medicine"
	CategoryRehab          Category = "Rehabilitation"
)

// AllCategories is the wildcard accepted by Repository.Query; it is not a
// valid article category.
const AllCategories Category = "All"

// Categories lists the clinical domains in their canonical order.
var Categories = []Category{
	CategoryGeneral,
	CategoryInternal,
	CategorySurgery,
	CategoryNursing,
	CategoryEmergency,
	CategoryPediatrics,
	CategoryGynecology,
	CategoryCardiology,
	CategoryNeurology,
	CategoryOncology,
	CategoryRadiology,
	CategoryAnesthesiology,
	CategoryPharmacology,
	CategoryLaboratory,
	CategoryEquipment,
	CategoryGuidelines,
	CategoryEducation,
	CategoryResearch,
	CategoryPreventive,
	CategoryRehab,
}

// ParseCategory resolves a category name case-insensitively. "all" (or an
// empty string) yields the AllCategories wildcard.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, string(AllCategories)) {
		return AllCategories, nil
	}
	for _, c := range Categories {
		if strings.EqualFold(s, string(c)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Tag returns the lowercase keyword form of the category name, as used in
// article tag sets.
func (c Category) Tag() string {
	return strings.ToLower(string(c))
}

// Article is a single localized content item. Articles are built once at
// startup and never mutated afterwards.
type Article struct {
	ID       string        `json:"id"`
	Category Category      `json:"category"`
	Premium  bool          `json:"premium"`
	Author   string        `json:"author"`
	Date     string        `json:"date"`
	Title    LocalizedText `json:"title"`
	Body     LocalizedText `json:"body"`
	Tags     []string      `json:"tags"`
}

// Validate reports construction-time defects: a blank or malformed id, an
// unknown category, or a title/body not populated for every language.
func (a Article) Validate() error {
	if strings.TrimSpace(a.ID) == "" {
		return fmt.Errorf("article has empty id")
	}
	if !a.Category.Valid() {
		return fmt.Errorf("article %s: invalid category %q", a.ID, a.Category)
	}
	if err := a.Title.Validate(); err != nil {
		return fmt.Errorf("article %s: title: %w", a.ID, err)
	}
	if err := a.Body.Validate(); err != nil {
		return fmt.Errorf("article %s: body: %w", a.ID, err)
	}
	for _, tag := range a.Tags {
		if tag != strings.ToLower(tag) {
			return fmt.Errorf("article %s: tag %q is not lowercase", a.ID, tag)
		}
	}
	return nil
}
