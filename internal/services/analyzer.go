package services

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"resumatch/resume-analyzer/internal/models"
	"resumatch/resume-analyzer/internal/repositories"
)

type AnalyzerService interface {
	AnalyzeResume(ctx context.Context, analysisID uuid.UUID) error
}

type analyzerService struct {
	analysisRepo  repositories.AnalysisRepository
	resumeRepo    repositories.ResumeRepository
	jobRepo       repositories.JobDescriptionRepository
	skillDetector SkillDetectorService
	scorer        ScorerService
	recommender   RecommenderService
}

func NewAnalyzerService(
	analysisRepo repositories.AnalysisRepository,
	resumeRepo repositories.ResumeRepository,
	jobRepo repositories.JobDescriptionRepository,
	skillDetector SkillDetectorService,
	scorer ScorerService,
	recommender RecommenderService,
) AnalyzerService {
	return &analyzerService{
		analysisRepo:  analysisRepo,
		resumeRepo:    resumeRepo,
		jobRepo:       jobRepo,
		skillDetector: skillDetector,
		scorer:        scorer,
		recommender:   recommender,
	}
}

// AnalyzeResume implements AnalyzerService.
//
// Runs the whole pipeline for one queued analysis: skill detection over both
// texts, keyword/TF-IDF scoring, skill intersection, recommendations, then
// persists the completed record. The pipeline itself is a pure function of
// the two stored texts; only repository access can fail here.
func (a *analyzerService) AnalyzeResume(ctx context.Context, analysisID uuid.UUID) error {
	// Update status to processing
	if err := a.analysisRepo.UpdateStatus(analysisID, models.StatusProcessing); err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}

	log.Printf("🔄 Starting analysis for job ID: %s\n", analysisID)

	// Get analysis details
	analysis, err := a.analysisRepo.FindByID(analysisID)
	if err != nil {
		a.analysisRepo.UpdateError(analysisID, err.Error())
		return fmt.Errorf("failed to get analysis: %w", err)
	}

	// Get resume and job description
	resume, err := a.resumeRepo.FindByID(analysis.ResumeID)
	if err != nil {
		a.analysisRepo.UpdateError(analysisID, fmt.Sprintf("Resume not found: %v", err))
		return fmt.Errorf("failed to get resume: %w", err)
	}

	job, err := a.jobRepo.FindByID(analysis.JobDescriptionID)
	if err != nil {
		a.analysisRepo.UpdateError(analysisID, fmt.Sprintf("Job description not found: %v", err))
		return fmt.Errorf("failed to get job description: %w", err)
	}

	// Step 1: Detect skills in the resume
	log.Println("🔎 Detecting resume skills...")
	extractedSkills := a.skillDetector.DetectSkills(resume.ExtractedText)

	// Step 2: Score the resume against the job description
	log.Println("📊 Computing ATS score...")
	scoreResult := a.scorer.Score(resume.ExtractedText, job.Description)

	// Step 3: Match resume skills with the job description's skills
	jobSkills := a.skillDetector.DetectSkills(job.Description)
	matchedSkills := intersectSkills(extractedSkills, jobSkills)

	// Step 4: Generate recommendations
	log.Println("💡 Generating recommendations...")
	recommendations := a.recommender.Recommend(scoreResult.ATSScore, scoreResult.MissingKeywords, matchedSkills)

	// Step 5: Save results
	log.Println("💾 Saving analysis results...")
	updateData := &repositories.AnalysisUpdateData{
		ATSScore:        &scoreResult.ATSScore,
		ExtractedSkills: extractedSkills,
		MatchedSkills:   matchedSkills,
		MissingKeywords: scoreResult.MissingKeywords,
		Recommendations: &recommendations,
	}

	if err := a.analysisRepo.UpdateResult(analysisID, updateData); err != nil {
		return fmt.Errorf("failed to save results: %w", err)
	}

	log.Printf("✅ Analysis completed successfully for job ID: %s (score %.2f)\n", analysisID, scoreResult.ATSScore)
	return nil
}

// intersectSkills keeps the resume skills that also appear in the job
// description's skill set, preserving the (sorted) resume order.
func intersectSkills(resumeSkills, jobSkills []string) []string {
	jobSet := make(map[string]struct{}, len(jobSkills))
	for _, skill := range jobSkills {
		jobSet[skill] = struct{}{}
	}

	matched := []string{}
	for _, skill := range resumeSkills {
		if _, ok := jobSet[skill]; ok {
			matched = append(matched, skill)
		}
	}

	return matched
}
