package models

type UploadResponse struct {
	ID            string `json:"id"`
	Filename      string `json:"filename"`
	OriginalName  string `json:"original_name"`
	FileType      string `json:"file_type"`
	TextExtracted bool   `json:"text_extracted"`
}

type JobDescriptionRequest struct {
	Title       string `json:"title" validate:"required"`
	Company     string `json:"company"`
	Description string `json:"description" validate:"required"`
}

type AnalyzeRequest struct {
	ResumeID         string `json:"resume_id" validate:"required,uuid"`
	JobDescriptionID string `json:"job_description_id" validate:"required,uuid"`
}

type AnalyzeResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type DashboardStats struct {
	TotalResumes         int64      `json:"total_resumes"`
	TotalJobDescriptions int64      `json:"total_jobs"`
	TotalAnalyses        int64      `json:"total_analyses"`
	AverageATSScore      float64    `json:"average_ats_score"`
	RecentAnalyses       []Analysis `json:"recent_analyses"`
}
