package services

import (
	_ "embed"
	"regexp"
	"strings"
	"sync"
)

//go:embed data/stopwords.txt
var stopwordData string

var (
	stopwordOnce sync.Once
	stopwordSet  map[string]struct{}
)

// englishStopwords parses the embedded stopword list once per process.
func englishStopwords() map[string]struct{} {
	stopwordOnce.Do(func() {
		stopwordSet = make(map[string]struct{})
		for _, line := range strings.Split(stopwordData, "\n") {
			word := strings.TrimSpace(line)
			if word == "" || strings.HasPrefix(word, "#") {
				continue
			}
			stopwordSet[word] = struct{}{}
		}
	})
	return stopwordSet
}

var (
	specialCharsRegex = regexp.MustCompile(`[^a-zA-Z0-9\s]`)
	whitespaceRegex   = regexp.MustCompile(`\s+`)
)

type TokenizerService interface {
	ExtractKeywords(text string) map[string]struct{}
	Preprocess(text string) string
	Terms(text string) []string
}

type tokenizerService struct {
	stopwords map[string]struct{}
}

func NewTokenizerService() TokenizerService {
	return &tokenizerService{
		stopwords: englishStopwords(),
	}
}

// ExtractKeywords implements TokenizerService.
//
// Keywords are lowercase word tokens longer than 2 characters with stopwords
// removed, deduplicated into a set. No frequency information is kept here.
func (t *tokenizerService) ExtractKeywords(text string) map[string]struct{} {
	cleaned := specialCharsRegex.ReplaceAllString(strings.ToLower(text), "")

	keywords := make(map[string]struct{})
	for _, token := range strings.Fields(cleaned) {
		if len(token) <= 2 {
			continue
		}
		if _, isStopword := t.stopwords[token]; isStopword {
			continue
		}
		keywords[token] = struct{}{}
	}

	return keywords
}

// Preprocess implements TokenizerService.
//
// Unlike ExtractKeywords it replaces special characters with a space instead
// of deleting them, so word boundaries across removed punctuation survive for
// the TF-IDF vectorizer.
func (t *tokenizerService) Preprocess(text string) string {
	text = specialCharsRegex.ReplaceAllString(text, " ")
	text = whitespaceRegex.ReplaceAllString(text, " ")
	return strings.ToLower(strings.TrimSpace(text))
}

// Terms implements TokenizerService.
//
// Terms splits preprocessed text into vectorizer terms: tokens of at least 2
// characters with stopwords removed, duplicates preserved for term counting.
func (t *tokenizerService) Terms(text string) []string {
	var terms []string
	for _, token := range strings.Fields(text) {
		if len(token) < 2 {
			continue
		}
		if _, isStopword := t.stopwords[token]; isStopword {
			continue
		}
		terms = append(terms, token)
	}

	return terms
}
