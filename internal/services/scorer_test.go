package services

import (
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestScorer() ScorerService {
	return NewScorerService(NewTokenizerService())
}

func TestScore(t *testing.T) {
	scorer := newTestScorer()

	t.Run("identical texts score 100", func(t *testing.T) {
		text := "python developer with docker experience"
		result := scorer.Score(text, text)

		assert.Equal(t, 100.0, result.ATSScore)
		assert.Empty(t, result.MissingKeywords)
	})

	t.Run("empty resume scores 0", func(t *testing.T) {
		result := scorer.Score("", "python docker kubernetes")

		assert.Equal(t, 0.0, result.ATSScore)
		assert.Empty(t, result.MatchedKeywords)
		assert.Equal(t, []string{"docker", "kubernetes", "python"}, result.MissingKeywords)
	})

	t.Run("empty job description scores 0", func(t *testing.T) {
		result := scorer.Score("python docker", "")

		assert.Equal(t, 0.0, result.ATSScore)
		assert.Empty(t, result.MatchedKeywords)
		assert.Empty(t, result.MissingKeywords)
	})

	t.Run("partial overlap blends keyword and semantic scores", func(t *testing.T) {
		result := scorer.Score("python api", "python api docker")

		assert.Equal(t, []string{"api", "python"}, result.MatchedKeywords)
		assert.Equal(t, []string{"docker"}, result.MissingKeywords)
		// keyword component is 2/3 of the weight, similarity refines the rest
		assert.Greater(t, result.ATSScore, 46.0)
		assert.Less(t, result.ATSScore, 100.0)
	})

	t.Run("missing keywords are sorted and capped at 20", func(t *testing.T) {
		var words []string
		for i := 1; i <= 25; i++ {
			words = append(words, fmt.Sprintf("keyword%02d", i))
		}
		result := scorer.Score("unrelated", strings.Join(words, " "))

		assert.Len(t, result.MissingKeywords, 20)
		assert.True(t, sort.StringsAreSorted(result.MissingKeywords))
		assert.Equal(t, "keyword01", result.MissingKeywords[0])
		assert.Equal(t, "keyword20", result.MissingKeywords[19])
	})

	t.Run("score stays within bounds", func(t *testing.T) {
		cases := []struct{ resume, job string }{
			{"", ""},
			{"python", "python"},
			{"completely different words here", "nothing shared whatsoever today"},
			{"python java docker aws terraform", "python"},
		}
		for _, tc := range cases {
			result := scorer.Score(tc.resume, tc.job)
			assert.GreaterOrEqual(t, result.ATSScore, 0.0)
			assert.LessOrEqual(t, result.ATSScore, 100.0)
		}
	})
}
