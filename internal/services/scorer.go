package services

import (
	"math"
	"sort"
)

// maxMissingKeywords bounds the missing-keyword preview returned to the caller.
const maxMissingKeywords = 20

// Combined score weights: keyword overlap dominates, TF-IDF similarity refines.
const (
	keywordWeight  = 0.7
	semanticWeight = 0.3
)

type ScoreResult struct {
	ATSScore        float64  `json:"ats_score"`
	MatchedKeywords []string `json:"matched_keywords"`
	MissingKeywords []string `json:"missing_keywords"`
}

type ScorerService interface {
	Score(resumeText, jobText string) ScoreResult
}

type scorerService struct {
	tokenizer TokenizerService
}

func NewScorerService(tokenizer TokenizerService) ScorerService {
	return &scorerService{tokenizer: tokenizer}
}

// Score implements ScorerService.
//
// Pure and total: every failure mode (empty texts, no usable vocabulary after
// stopword removal, empty job keyword set) degrades the affected component
// score to 0 instead of returning an error.
func (s *scorerService) Score(resumeText, jobText string) ScoreResult {
	resumeKeywords := s.tokenizer.ExtractKeywords(resumeText)
	jobKeywords := s.tokenizer.ExtractKeywords(jobText)

	matched := []string{}
	missing := []string{}
	for keyword := range jobKeywords {
		if _, ok := resumeKeywords[keyword]; ok {
			matched = append(matched, keyword)
		} else {
			missing = append(missing, keyword)
		}
	}
	sort.Strings(matched)
	sort.Strings(missing)

	keywordScore := 0.0
	if len(jobKeywords) > 0 {
		keywordScore = float64(len(matched)) / float64(len(jobKeywords)) * 100
	}

	semanticScore := 0.0
	resumeClean := s.tokenizer.Preprocess(resumeText)
	jobClean := s.tokenizer.Preprocess(jobText)
	if resumeClean != "" && jobClean != "" {
		similarity := semanticSimilarity(
			s.tokenizer.Terms(resumeClean),
			s.tokenizer.Terms(jobClean),
		)
		semanticScore = similarity * 100
	}

	atsScore := keywordScore*keywordWeight + semanticScore*semanticWeight
	atsScore = math.Min(100, math.Max(0, atsScore))
	atsScore = math.Round(atsScore*100) / 100

	if len(missing) > maxMissingKeywords {
		missing = missing[:maxMissingKeywords]
	}

	return ScoreResult{
		ATSScore:        atsScore,
		MatchedKeywords: matched,
		MissingKeywords: missing,
	}
}
