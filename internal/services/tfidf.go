package services

import (
	"math"
	"sort"
)

// maxVocabularyTerms caps the TF-IDF vocabulary at the highest-frequency terms.
const maxVocabularyTerms = 100

// semanticSimilarity computes the cosine similarity between the TF-IDF vectors
// of two term sequences. The vector space is built over exactly these two
// documents. Returns a value in [0, 1]; degenerate input (no usable terms in
// either document) yields 0.
func semanticSimilarity(resumeTerms, jobTerms []string) float64 {
	resumeCounts := termCounts(resumeTerms)
	jobCounts := termCounts(jobTerms)

	vocabulary := buildVocabulary(resumeCounts, jobCounts)
	if len(vocabulary) == 0 {
		return 0
	}

	resumeVector := tfidfVector(resumeCounts, jobCounts, vocabulary)
	jobVector := tfidfVector(jobCounts, resumeCounts, vocabulary)

	return cosineSimilarity(resumeVector, jobVector)
}

func termCounts(terms []string) map[string]int {
	counts := make(map[string]int, len(terms))
	for _, term := range terms {
		counts[term]++
	}
	return counts
}

// buildVocabulary returns the union of both documents' terms, keeping only the
// maxVocabularyTerms most frequent. Ties break lexicographically so the vector
// space is deterministic.
func buildVocabulary(a, b map[string]int) []string {
	combined := make(map[string]int, len(a)+len(b))
	for term, count := range a {
		combined[term] += count
	}
	for term, count := range b {
		combined[term] += count
	}

	vocabulary := make([]string, 0, len(combined))
	for term := range combined {
		vocabulary = append(vocabulary, term)
	}

	sort.Slice(vocabulary, func(i, j int) bool {
		if combined[vocabulary[i]] != combined[vocabulary[j]] {
			return combined[vocabulary[i]] > combined[vocabulary[j]]
		}
		return vocabulary[i] < vocabulary[j]
	})

	if len(vocabulary) > maxVocabularyTerms {
		vocabulary = vocabulary[:maxVocabularyTerms]
	}

	return vocabulary
}

// tfidfVector weights each vocabulary term by tf * smoothed idf over the
// two-document corpus: idf = ln((1+n)/(1+df)) + 1 with n = 2.
func tfidfVector(doc, other map[string]int, vocabulary []string) []float64 {
	vector := make([]float64, len(vocabulary))
	for i, term := range vocabulary {
		tf := doc[term]
		if tf == 0 {
			continue
		}

		df := 1
		if other[term] > 0 {
			df = 2
		}

		idf := math.Log(3.0/float64(1+df)) + 1
		vector[i] = float64(tf) * idf
	}

	return vector
}

func cosineSimilarity(a, b []float64) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
