package handlers

import (
	"math"

	"github.com/gofiber/fiber/v2"

	"resumatch/resume-analyzer/internal/models"
	"resumatch/resume-analyzer/internal/repositories"
)

type DashboardHandler struct {
	resumeRepo   repositories.ResumeRepository
	jobRepo      repositories.JobDescriptionRepository
	analysisRepo repositories.AnalysisRepository
}

func NewDashboardHandler(
	resumeRepo repositories.ResumeRepository,
	jobRepo repositories.JobDescriptionRepository,
	analysisRepo repositories.AnalysisRepository,
) *DashboardHandler {
	return &DashboardHandler{
		resumeRepo:   resumeRepo,
		jobRepo:      jobRepo,
		analysisRepo: analysisRepo,
	}
}

// HandleStats handles GET /dashboard/stats
func (h *DashboardHandler) HandleStats(c *fiber.Ctx) error {
	totalResumes, err := h.resumeRepo.Count()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to compute dashboard stats",
		})
	}

	totalJobs, err := h.jobRepo.Count()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to compute dashboard stats",
		})
	}

	totalAnalyses, err := h.analysisRepo.Count()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to compute dashboard stats",
		})
	}

	averageScore, err := h.analysisRepo.AverageATSScore()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to compute dashboard stats",
		})
	}

	recentAnalyses, err := h.analysisRepo.FindRecent(5)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to compute dashboard stats",
		})
	}

	return c.JSON(models.DashboardStats{
		TotalResumes:         totalResumes,
		TotalJobDescriptions: totalJobs,
		TotalAnalyses:        totalAnalyses,
		AverageATSScore:      math.Round(averageScore*100) / 100,
		RecentAnalyses:       recentAnalyses,
	})
}
