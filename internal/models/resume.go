package models

import (
	"time"

	"github.com/google/uuid"
)

type Resume struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Filename         string    `gorm:"type:text" json:"filename"`
	OriginalFileName string    `gorm:"type:text" json:"original_filename"`
	FileType         string    `gorm:"type:text" json:"file_type"`
	FilePath         string    `gorm:"type:text" json:"-"`
	ExtractedText    string    `gorm:"type:text" json:"extracted_text"`
	UploadedAt       time.Time `gorm:"type:timestamp;default:now()" json:"uploaded_at"`
}

func (r *Resume) TableName() string {
	return "resumes"
}
