package content_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbarekayadi77-ship-it/MB-MEDICINE/internal/content"
)

func TestGenerateCorpusInvariants(t *testing.T) {
	articles := content.GenerateCorpus()

	// 20 domains x 16 volumes.
	require.Len(t, articles, len(content.Categories)*16)

	seen := make(map[string]bool, len(articles))
	for _, a := range articles {
		require.NoError(t, a.Validate(), "article %s", a.ID)
		assert.False(t, seen[a.ID], "duplicate id %s", a.ID)
		seen[a.ID] = true
		assert.Contains(t, a.Tags, a.Category.Tag())
	}

	// The whole corpus must load into a repository.
	_, err := content.NewRepository(articles)
	require.NoError(t, err)
}

func TestGenerateCorpusIsDeterministic(t *testing.T) {
	assert.Equal(t, content.GenerateCorpus(), content.GenerateCorpus())
}

func TestGenerateCorpusPremiumSplit(t *testing.T) {
	articles := content.GenerateCorpus()

	free := make(map[content.Category]int)
	for _, a := range articles {
		if !a.Premium {
			free[a.Category]++
		}
	}
	for _, c := range content.Categories {
		assert.Equal(t, 3, free[c], "free volumes for %s", c)
	}
}

func TestGenerateCorpusTitles(t *testing.T) {
	articles := content.GenerateCorpus()

	var cardiology *content.Article
	for i := range articles {
		if articles[i].Category == content.CategoryCardiology {
			cardiology = &articles[i]
			break
		}
	}
	require.NotNil(t, cardiology)
	assert.Equal(t,
		"Cardiology: Exhaustive Clinical Volume - Advanced Pathological Mapping v1.4.2",
		cardiology.Title.EN)
	assert.Contains(t, cardiology.Title.FR, "Volume Clinique Exhaustif")
	assert.Contains(t, cardiology.Body.EN, "### Introduction & Clinical Definition")
	assert.Contains(t, cardiology.Body.FR, "### Introduction et Définition Clinique")
	assert.Contains(t, cardiology.Body.EN, "Hemodynamic monitoring and electrophysiological mapping.")
}
