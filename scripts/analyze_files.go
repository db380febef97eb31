package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"resumatch/resume-analyzer/internal/services"
)

// One-shot local analysis without the API: reads a resume file (pdf/docx) and
// a plain-text job description, runs the full pipeline and prints the result.
func main() {
	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "usage: analyze_files <resume.pdf|resume.docx> <job_description.txt>")
		os.Exit(1)
	}

	resumePath := os.Args[1]
	jobPath := os.Args[2]

	fileType := strings.TrimPrefix(strings.ToLower(filepath.Ext(resumePath)), ".")
	if fileType != "pdf" && fileType != "docx" {
		log.Fatalf("❌ Unsupported resume format: %s", resumePath)
	}

	resumeContent, err := os.ReadFile(resumePath)
	if err != nil {
		log.Fatalf("❌ Failed to read resume: %v", err)
	}

	jobContent, err := os.ReadFile(jobPath)
	if err != nil {
		log.Fatalf("❌ Failed to read job description: %v", err)
	}
	jobText := string(jobContent)

	// Initialize services
	extractor := services.NewExtractorService()
	tokenizer := services.NewTokenizerService()
	scorer := services.NewScorerService(tokenizer)
	recommender := services.NewRecommenderService()

	skillDetector, err := services.NewSkillDetectorService()
	if err != nil {
		log.Fatalf("❌ Failed to load skill vocabulary: %v", err)
	}

	resumeText, err := extractor.ExtractText(resumeContent, fileType)
	if err != nil {
		log.Printf("⚠️  Text extraction failed: %v", err)
	}

	extractedSkills := skillDetector.DetectSkills(resumeText)
	jobSkills := skillDetector.DetectSkills(jobText)

	matchedSkills := []string{}
	jobSkillSet := make(map[string]struct{}, len(jobSkills))
	for _, skill := range jobSkills {
		jobSkillSet[skill] = struct{}{}
	}
	for _, skill := range extractedSkills {
		if _, ok := jobSkillSet[skill]; ok {
			matchedSkills = append(matchedSkills, skill)
		}
	}

	result := scorer.Score(resumeText, jobText)
	recommendations := recommender.Recommend(result.ATSScore, result.MissingKeywords, matchedSkills)

	output := map[string]interface{}{
		"ats_score":        result.ATSScore,
		"extracted_skills": extractedSkills,
		"matched_skills":   matchedSkills,
		"matched_keywords": result.MatchedKeywords,
		"missing_keywords": result.MissingKeywords,
		"recommendations":  recommendations,
	}

	encoded, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		log.Fatalf("❌ Failed to encode result: %v", err)
	}

	fmt.Println(string(encoded))
}
