package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type AnalysisStatus string

const (
	StatusQueued     AnalysisStatus = "queued"
	StatusProcessing AnalysisStatus = "processing"
	StatusCompleted  AnalysisStatus = "completed"
	StatusFailed     AnalysisStatus = "failed"
)

type Analysis struct {
	ID               uuid.UUID                   `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ResumeID         uuid.UUID                   `gorm:"type:uuid;not null" json:"resume_id"`
	JobDescriptionID uuid.UUID                   `gorm:"type:uuid;not null" json:"job_description_id"`
	Status           AnalysisStatus              `gorm:"not null;default:'queued'" json:"status"`
	ATSScore         *float64                    `gorm:"type:decimal(5,2)" json:"ats_score,omitempty"`
	ExtractedSkills  datatypes.JSONSlice[string] `json:"extracted_skills,omitempty"`
	MatchedSkills    datatypes.JSONSlice[string] `json:"matched_skills,omitempty"`
	MissingKeywords  datatypes.JSONSlice[string] `json:"missing_keywords,omitempty"`
	Recommendations  *string                     `gorm:"type:text" json:"recommendations,omitempty"`
	ErrorMessage     *string                     `gorm:"type:text" json:"error_message,omitempty"`
	CreatedAt        time.Time                   `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt        time.Time                   `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`

	// Relations
	Resume         Resume         `gorm:"foreignKey:ResumeID" json:"resume"`
	JobDescription JobDescription `gorm:"foreignKey:JobDescriptionID" json:"job_description"`
}

func (Analysis) TableName() string {
	return "analyses"
}
