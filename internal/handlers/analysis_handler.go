package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"resumatch/resume-analyzer/internal/models"
	"resumatch/resume-analyzer/internal/repositories"
	"resumatch/resume-analyzer/internal/services"
)

type AnalysisHandler struct {
	analysisRepo repositories.AnalysisRepository
	resumeRepo   repositories.ResumeRepository
	jobRepo      repositories.JobDescriptionRepository
	worker       services.Worker
}

func NewAnalysisHandler(
	analysisRepo repositories.AnalysisRepository,
	resumeRepo repositories.ResumeRepository,
	jobRepo repositories.JobDescriptionRepository,
	worker services.Worker,
) *AnalysisHandler {
	return &AnalysisHandler{
		analysisRepo: analysisRepo,
		resumeRepo:   resumeRepo,
		jobRepo:      jobRepo,
		worker:       worker,
	}
}

// HandleAnalyze handles POST /analyze
func (h *AnalysisHandler) HandleAnalyze(c *fiber.Ctx) error {
	var req models.AnalyzeRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.ResumeID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "resume_id is required",
		})
	}

	if req.JobDescriptionID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "job_description_id is required",
		})
	}

	// Parse UUIDs
	resumeID, err := uuid.Parse(req.ResumeID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid resume_id format",
		})
	}

	jobID, err := uuid.Parse(req.JobDescriptionID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid job_description_id format",
		})
	}

	// Verify records exist
	if _, err := h.resumeRepo.FindByID(resumeID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Resume not found",
		})
	}

	if _, err := h.jobRepo.FindByID(jobID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Job description not found",
		})
	}

	// Create analysis record
	analysis := &models.Analysis{
		ID:               uuid.New(),
		ResumeID:         resumeID,
		JobDescriptionID: jobID,
		Status:           models.StatusQueued,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}

	if err := h.analysisRepo.Create(analysis); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create analysis job",
		})
	}

	// Enqueue job to worker
	h.worker.EnqueueJob(analysis.ID)

	// Return job ID immediately
	return c.Status(fiber.StatusAccepted).JSON(models.AnalyzeResponse{
		ID:     analysis.ID.String(),
		Status: string(models.StatusQueued),
	})
}

// HandleList handles GET /analyses
func (h *AnalysisHandler) HandleList(c *fiber.Ctx) error {
	analyses, err := h.analysisRepo.FindAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list analyses",
		})
	}

	return c.JSON(analyses)
}

// HandleGet handles GET /analyses/:id
func (h *AnalysisHandler) HandleGet(c *fiber.Ctx) error {
	analysisID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid analysis ID format",
		})
	}

	analysis, err := h.analysisRepo.FindByID(analysisID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Analysis not found",
		})
	}

	return c.JSON(analysis)
}
