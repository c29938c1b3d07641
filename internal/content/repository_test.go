package content_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbarekayadi77-ship-it/MB-MEDICINE/internal/content"
)

func testArticle(id string, category content.Category, titleEN string, tags ...string) content.Article {
	return content.Article{
		ID:       id,
		Category: category,
		Author:   "MB Medicine Institutional Academic Board",
		Date:     "2026-05-20",
		Title: content.LocalizedText{
			EN: titleEN,
			FR: titleEN + " (fr)",
			AR: titleEN + " (ar)",
		},
		Body: content.LocalizedText{
			EN: "Body of " + titleEN,
			FR: "Corps de " + titleEN,
			AR: "نص " + titleEN,
		},
		Tags: tags,
	}
}

func testRepository(t *testing.T, articles ...content.Article) *content.Repository {
	t.Helper()
	repo, err := content.NewRepository(articles)
	require.NoError(t, err)
	return repo
}

func TestNewRepositoryRejectsDuplicateIDs(t *testing.T) {
	_, err := content.NewRepository([]content.Article{
		testArticle("a-1", content.CategoryCardiology, "First"),
		testArticle("a-1", content.CategoryNeurology, "Second"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate article id")
}

func TestNewRepositoryRejectsIncompleteLocalization(t *testing.T) {
	broken := testArticle("a-1", content.CategoryCardiology, "First")
	broken.Body.AR = ""

	_, err := content.NewRepository([]content.Article{broken})
	require.Error(t, err)
}

func TestNewRepositoryRejectsUnknownCategory(t *testing.T) {
	broken := testArticle("a-1", content.CategoryCardiology, "First")
	broken.Category = content.Category("Alchemy")

	_, err := content.NewRepository([]content.Article{broken})
	require.Error(t, err)
}

func TestQueryMatchesAnyField(t *testing.T) {
	repo := testRepository(t,
		testArticle("a-1", content.CategoryCardiology, "Hemodynamic Monitoring", "cardiology"),
	)

	tests := []struct {
		name   string
		search string
		found  bool
	}{
		{"substring of title", "hemodynamic", true},
		{"substring of body", "body of", true},
		{"substring of category name", "cardio", true},
		{"substring of a tag", "diol", true},
		{"case insensitive", "HEMODYNAMIC", true},
		{"no field matches", "neurotransmitter", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := repo.Query(tt.search, content.AllCategories, content.LanguageEN)
			if tt.found {
				require.Len(t, got, 1)
				assert.Equal(t, "a-1", got[0].ID)
			} else {
				assert.Empty(t, got)
			}
		})
	}
}

func TestQueryMatchesActiveLanguageOnly(t *testing.T) {
	article := testArticle("a-1", content.CategoryNeurology, "Synaptic Plasticity")
	article.Title.FR = "Plasticité synaptique"
	repo := testRepository(t, article)

	// The French title matches only when French is the active language.
	assert.Len(t, repo.Query("plasticité", content.AllCategories, content.LanguageFR), 1)
	assert.Empty(t, repo.Query("plasticité", content.AllCategories, content.LanguageEN))
}

func TestQueryCategoryAndSearchAreANDed(t *testing.T) {
	repo := testRepository(t,
		testArticle("a-1", content.CategoryCardiology, "Shared Topic", "cardiology"),
		testArticle("a-2", content.CategoryNeurology, "Shared Topic", "neurology"),
	)

	got := repo.Query("shared", content.CategoryCardiology, content.LanguageEN)
	require.Len(t, got, 1)
	assert.Equal(t, "a-1", got[0].ID)

	// A category filter excludes other categories even when the search
	// text matches them.
	for _, a := range repo.Query("", content.CategoryNeurology, content.LanguageEN) {
		assert.Equal(t, content.CategoryNeurology, a.Category)
	}

	// Both conditions must hold.
	assert.Empty(t, repo.Query("nonexistent", content.CategoryCardiology, content.LanguageEN))
}

func TestQueryEmptySearchReturnsAll(t *testing.T) {
	repo := testRepository(t,
		testArticle("a-1", content.CategoryCardiology, "First"),
		testArticle("a-2", content.CategoryNeurology, "Second"),
	)
	assert.Len(t, repo.Query("", content.AllCategories, content.LanguageEN), 2)
}

func TestQueryIsIdempotentAndOrderStable(t *testing.T) {
	repo := testRepository(t,
		testArticle("a-3", content.CategorySurgery, "Volume Three", "shared"),
		testArticle("a-1", content.CategorySurgery, "Volume One", "shared"),
		testArticle("a-2", content.CategorySurgery, "Volume Two", "shared"),
	)

	first := repo.Query("shared", content.AllCategories, content.LanguageEN)
	second := repo.Query("shared", content.AllCategories, content.LanguageEN)

	assert.Equal(t, first, second)
	require.Len(t, first, 3)
	// Insertion order, not ranking.
	assert.Equal(t, "a-3", first[0].ID)
	assert.Equal(t, "a-1", first[1].ID)
	assert.Equal(t, "a-2", first[2].ID)
}

func TestLookup(t *testing.T) {
	repo := testRepository(t, testArticle("a-1", content.CategoryRadiology, "Imaging"))

	article, err := repo.Lookup("a-1")
	require.NoError(t, err)
	assert.Equal(t, "Imaging", article.Title.EN)

	_, err = repo.Lookup("missing")
	assert.ErrorIs(t, err, content.ErrNotFound)
}

func TestCardiologyEndToEnd(t *testing.T) {
	article := content.Article{
		ID:       "v-7-1",
		Category: content.CategoryCardiology,
		Author:   "MB Medicine Institutional Academic Board",
		Date:     "2026-05-20",
		Title: content.LocalizedText{
			EN: "Cardiology: Exhaustive Clinical Volume - Advanced Pathological Mapping v1.4.2",
			FR: "Cardiology: Volume Clinique Exhaustif - Advanced Pathological Mapping v1.4.2",
			AR: "Cardiology: المجلد السريري الشامل - Advanced Pathological Mapping v1.4.2",
		},
		Body: content.LocalizedText{EN: "en body", FR: "fr body", AR: "ar body"},
		Tags: []string{"cardiology", "2026-academic"},
	}
	repo := testRepository(t, article)

	got := repo.Query("cardio", content.AllCategories, content.LanguageEN)
	require.Len(t, got, 1)
	assert.Equal(t, "v-7-1", got[0].ID)
}
