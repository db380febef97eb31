package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSemanticSimilarity(t *testing.T) {
	t.Run("identical documents are fully similar", func(t *testing.T) {
		terms := []string{"python", "docker", "docker", "api"}
		assert.InDelta(t, 1.0, semanticSimilarity(terms, terms), 1e-9)
	})

	t.Run("disjoint documents have zero similarity", func(t *testing.T) {
		a := []string{"python", "django"}
		b := []string{"java", "spring"}
		assert.Equal(t, 0.0, semanticSimilarity(a, b))
	})

	t.Run("empty documents have zero similarity", func(t *testing.T) {
		assert.Equal(t, 0.0, semanticSimilarity(nil, nil))
		assert.Equal(t, 0.0, semanticSimilarity([]string{"python"}, nil))
	})

	t.Run("partial overlap lies strictly between 0 and 1", func(t *testing.T) {
		a := []string{"python", "api"}
		b := []string{"python", "docker"}
		similarity := semanticSimilarity(a, b)
		assert.Greater(t, similarity, 0.0)
		assert.Less(t, similarity, 1.0)
	})
}

func TestBuildVocabulary(t *testing.T) {
	t.Run("caps vocabulary at the most frequent terms", func(t *testing.T) {
		counts := make(map[string]int)
		for i := 0; i < 150; i++ {
			counts[fmt.Sprintf("term%03d", i)] = 1
		}

		vocabulary := buildVocabulary(counts, nil)
		assert.Len(t, vocabulary, maxVocabularyTerms)
	})

	t.Run("orders by combined frequency with lexicographic tie-break", func(t *testing.T) {
		a := map[string]int{"zebra": 3, "bravo": 1}
		b := map[string]int{"alpha": 1}

		assert.Equal(t, []string{"zebra", "alpha", "bravo"}, buildVocabulary(a, b))
	})
}

func TestTfidfVector(t *testing.T) {
	doc := map[string]int{"shared": 2, "unique": 1}
	other := map[string]int{"shared": 1}
	vocabulary := []string{"shared", "unique", "absent"}

	vector := tfidfVector(doc, other, vocabulary)

	// shared term appears in both documents: idf = ln(3/3) + 1 = 1
	assert.InDelta(t, 2.0, vector[0], 1e-9)
	// unique term: idf = ln(3/2) + 1
	assert.InDelta(t, 1.4054651081, vector[1], 1e-9)
	assert.Equal(t, 0.0, vector[2])
}

func TestCosineSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, cosineSimilarity([]float64{1, 2}, []float64{2, 4}), 1e-9)
	assert.Equal(t, 0.0, cosineSimilarity([]float64{1, 0}, []float64{0, 1}))
	assert.Equal(t, 0.0, cosineSimilarity([]float64{0, 0}, []float64{1, 1}))
}
