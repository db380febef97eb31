package repositories

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"resumatch/resume-analyzer/internal/models"
)

type AnalysisRepository interface {
	Create(analysis *models.Analysis) error
	FindByID(id uuid.UUID) (*models.Analysis, error)
	FindAll() ([]models.Analysis, error)
	FindRecent(limit int) ([]models.Analysis, error)
	UpdateStatus(id uuid.UUID, status models.AnalysisStatus) error
	UpdateResult(id uuid.UUID, result *AnalysisUpdateData) error
	UpdateError(id uuid.UUID, errorMsg string) error
	FindPendingJobs(limit int) ([]models.Analysis, error)
	Count() (int64, error)
	AverageATSScore() (float64, error)
}

type AnalysisUpdateData struct {
	ATSScore        *float64
	ExtractedSkills []string
	MatchedSkills   []string
	MissingKeywords []string
	Recommendations *string
}

type analysisRepository struct {
	db *gorm.DB
}

func NewAnalysisRepository(db *gorm.DB) AnalysisRepository {
	return &analysisRepository{db: db}
}

func (r *analysisRepository) Create(analysis *models.Analysis) error {
	if err := r.db.Create(analysis).Error; err != nil {
		return fmt.Errorf("failed to create analysis: %w", err)
	}
	return nil
}

func (r *analysisRepository) FindByID(id uuid.UUID) (*models.Analysis, error) {
	var analysis models.Analysis
	err := r.db.
		Preload("Resume").
		Preload("JobDescription").
		Where("id = ?", id).
		First(&analysis).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("analysis not found")
		}
		return nil, fmt.Errorf("failed to find analysis: %w", err)
	}
	return &analysis, nil
}

func (r *analysisRepository) FindAll() ([]models.Analysis, error) {
	var analyses []models.Analysis
	err := r.db.
		Preload("Resume").
		Preload("JobDescription").
		Order("created_at DESC").
		Find(&analyses).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	return analyses, nil
}

func (r *analysisRepository) FindRecent(limit int) ([]models.Analysis, error) {
	var analyses []models.Analysis
	err := r.db.
		Preload("Resume").
		Preload("JobDescription").
		Order("created_at DESC").
		Limit(limit).
		Find(&analyses).Error

	if err != nil {
		return nil, fmt.Errorf("failed to find recent analyses: %w", err)
	}
	return analyses, nil
}

func (r *analysisRepository) UpdateStatus(id uuid.UUID, status models.AnalysisStatus) error {
	result := r.db.Model(&models.Analysis{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update status: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("analysis not found")
	}

	return nil
}

func (r *analysisRepository) UpdateResult(id uuid.UUID, data *AnalysisUpdateData) error {
	updates := map[string]interface{}{
		"status":     models.StatusCompleted,
		"updated_at": time.Now(),
	}

	if data.ATSScore != nil {
		updates["ats_score"] = *data.ATSScore
	}
	if data.ExtractedSkills != nil {
		updates["extracted_skills"] = datatypes.NewJSONSlice(data.ExtractedSkills)
	}
	if data.MatchedSkills != nil {
		updates["matched_skills"] = datatypes.NewJSONSlice(data.MatchedSkills)
	}
	if data.MissingKeywords != nil {
		updates["missing_keywords"] = datatypes.NewJSONSlice(data.MissingKeywords)
	}
	if data.Recommendations != nil {
		updates["recommendations"] = *data.Recommendations
	}

	result := r.db.Model(&models.Analysis{}).
		Where("id = ?", id).
		Updates(updates)

	if result.Error != nil {
		return fmt.Errorf("failed to update result: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("analysis not found")
	}

	return nil
}

func (r *analysisRepository) UpdateError(id uuid.UUID, errorMsg string) error {
	result := r.db.Model(&models.Analysis{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":        models.StatusFailed,
			"error_message": errorMsg,
			"updated_at":    time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update error: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("analysis not found")
	}

	return nil
}

func (r *analysisRepository) FindPendingJobs(limit int) ([]models.Analysis, error) {
	var analyses []models.Analysis
	err := r.db.
		Where("status = ?", models.StatusQueued).
		Order("created_at ASC").
		Limit(limit).
		Find(&analyses).Error

	if err != nil {
		return nil, fmt.Errorf("failed to find pending jobs: %w", err)
	}

	return analyses, nil
}

func (r *analysisRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Analysis{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count analyses: %w", err)
	}

	return count, nil
}

func (r *analysisRepository) AverageATSScore() (float64, error) {
	var avg float64
	err := r.db.Model(&models.Analysis{}).
		Where("status = ?", models.StatusCompleted).
		Select("COALESCE(AVG(ats_score), 0)").
		Scan(&avg).Error

	if err != nil {
		return 0, fmt.Errorf("failed to compute average ats score: %w", err)
	}

	return avg, nil
}
