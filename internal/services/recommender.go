package services

import (
	"fmt"
	"strings"
)

// Score tiers for the headline recommendation.
const (
	lowScoreThreshold  = 50
	goodScoreThreshold = 70
)

// minHighlightedSkills is the matched-skill count below which the candidate is
// nudged to surface more technical skills.
const minHighlightedSkills = 5

// missingKeywordSuggestions caps how many gap keywords are quoted back.
const missingKeywordSuggestions = 5

type RecommenderService interface {
	Recommend(atsScore float64, missingKeywords []string, matchedSkills []string) string
}

type recommenderService struct{}

func NewRecommenderService() RecommenderService {
	return &recommenderService{}
}

// Recommend implements RecommenderService.
//
// Deterministic rule sequence: exactly one score-tier line, then an optional
// missing-keyword line, then an optional skill-highlight line. Lines are
// joined with newlines, no trailing separator.
func (r *recommenderService) Recommend(atsScore float64, missingKeywords []string, matchedSkills []string) string {
	var recommendations []string

	switch {
	case atsScore < lowScoreThreshold:
		recommendations = append(recommendations, "Your resume has a low ATS score. Consider adding more relevant keywords from the job description.")
	case atsScore < goodScoreThreshold:
		recommendations = append(recommendations, "Your resume has a moderate ATS score. Try to incorporate more missing keywords to improve your chances.")
	default:
		recommendations = append(recommendations, "Great! Your resume has a good ATS score. Keep up the good work!")
	}

	if len(missingKeywords) > 0 {
		preview := missingKeywords
		if len(preview) > missingKeywordSuggestions {
			preview = preview[:missingKeywordSuggestions]
		}
		recommendations = append(recommendations, fmt.Sprintf("Consider adding these keywords: %s", strings.Join(preview, ", ")))
	}

	if len(matchedSkills) < minHighlightedSkills {
		recommendations = append(recommendations, "Try to highlight more technical skills relevant to the job description.")
	}

	return strings.Join(recommendations, "\n")
}
