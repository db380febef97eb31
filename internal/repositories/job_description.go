package repositories

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"resumatch/resume-analyzer/internal/models"
)

type JobDescriptionRepository interface {
	Create(job *models.JobDescription) error
	FindByID(id uuid.UUID) (*models.JobDescription, error)
	FindAll() ([]models.JobDescription, error)
	Update(id uuid.UUID, req *models.JobDescriptionRequest) (*models.JobDescription, error)
	Delete(id uuid.UUID) error
	Count() (int64, error)
}

type jobDescriptionRepository struct {
	db *gorm.DB
}

func NewJobDescriptionRepository(db *gorm.DB) JobDescriptionRepository {
	return &jobDescriptionRepository{db: db}
}

func (r *jobDescriptionRepository) Create(job *models.JobDescription) error {
	if err := r.db.Create(job).Error; err != nil {
		return fmt.Errorf("failed to create job description: %w", err)
	}
	return nil
}

func (r *jobDescriptionRepository) FindByID(id uuid.UUID) (*models.JobDescription, error) {
	var job models.JobDescription
	if err := r.db.Where("id = ?", id).First(&job).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("job description not found")
		}
		return nil, fmt.Errorf("failed to find job description: %w", err)
	}
	return &job, nil
}

func (r *jobDescriptionRepository) FindAll() ([]models.JobDescription, error) {
	var jobs []models.JobDescription
	if err := r.db.Order("created_at DESC").Find(&jobs).Error; err != nil {
		return nil, fmt.Errorf("failed to list job descriptions: %w", err)
	}
	return jobs, nil
}

func (r *jobDescriptionRepository) Update(id uuid.UUID, req *models.JobDescriptionRequest) (*models.JobDescription, error) {
	result := r.db.Model(&models.JobDescription{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"title":       req.Title,
			"company":     req.Company,
			"description": req.Description,
			"updated_at":  time.Now(),
		})

	if result.Error != nil {
		return nil, fmt.Errorf("failed to update job description: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return nil, fmt.Errorf("job description not found")
	}

	return r.FindByID(id)
}

func (r *jobDescriptionRepository) Delete(id uuid.UUID) error {
	result := r.db.Where("id = ?", id).Delete(&models.JobDescription{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete job description: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("job description not found")
	}

	return nil
}

func (r *jobDescriptionRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.JobDescription{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count job descriptions: %w", err)
	}

	return count, nil
}
