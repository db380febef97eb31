package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractKeywords(t *testing.T) {
	tokenizer := NewTokenizerService()

	t.Run("removes stopwords and short tokens", func(t *testing.T) {
		keywords := tokenizer.ExtractKeywords("The Python and Go APIs are the best APIs")

		assert.Contains(t, keywords, "python")
		assert.Contains(t, keywords, "apis")
		assert.Contains(t, keywords, "best")
		assert.NotContains(t, keywords, "the")
		assert.NotContains(t, keywords, "and")
		assert.NotContains(t, keywords, "are")
		// "go" has only 2 characters
		assert.NotContains(t, keywords, "go")
		assert.Len(t, keywords, 3)
	})

	t.Run("deletes special characters inside tokens", func(t *testing.T) {
		keywords := tokenizer.ExtractKeywords("Experience with Node.js and CI/CD pipelines")

		assert.Contains(t, keywords, "nodejs")
		assert.Contains(t, keywords, "cicd")
		assert.Contains(t, keywords, "pipelines")
		assert.NotContains(t, keywords, "node.js")
	})

	t.Run("empty text yields empty set", func(t *testing.T) {
		assert.Empty(t, tokenizer.ExtractKeywords(""))
		assert.Empty(t, tokenizer.ExtractKeywords("   \n\t  "))
	})
}

func TestPreprocess(t *testing.T) {
	tokenizer := NewTokenizerService()

	t.Run("replaces punctuation with spaces and collapses whitespace", func(t *testing.T) {
		assert.Equal(t, "hello world", tokenizer.Preprocess("  Hello,   World!  "))
	})

	t.Run("keeps word boundaries across punctuation", func(t *testing.T) {
		assert.Equal(t, "node js", tokenizer.Preprocess("Node.js"))
	})

	t.Run("empty input stays empty", func(t *testing.T) {
		assert.Equal(t, "", tokenizer.Preprocess("!!! ,,, ..."))
	})
}

func TestTerms(t *testing.T) {
	tokenizer := NewTokenizerService()

	t.Run("preserves duplicates for term counting", func(t *testing.T) {
		text := tokenizer.Preprocess("python python docker")
		assert.Equal(t, []string{"python", "python", "docker"}, tokenizer.Terms(text))
	})

	t.Run("drops stopwords and single characters", func(t *testing.T) {
		text := tokenizer.Preprocess("a solid grasp of go")
		assert.Equal(t, []string{"solid", "grasp", "go"}, tokenizer.Terms(text))
	})
}
