package dto

import (
	"time"

	"github.com/aryankuttarmare14/job-board-app/internal/models"
)

// ApplicationDTO represents an application in API responses
type ApplicationDTO struct {
	ID          uint64                   `json:"id"`
	JobID       uint64                   `json:"job_id"`
	ApplicantID uint64                   `json:"applicant_id"`
	CoverLetter string                   `json:"cover_letter"`
	ResumeURL   string                   `json:"resume_url"`
	Status      models.ApplicationStatus `json:"status"`
	Feedback    string                   `json:"feedback"`
	CreatedAt   time.Time                `json:"created_at"`
	UpdatedAt   time.Time                `json:"updated_at"`
	Job         *JobSummaryDTO           `json:"job,omitempty"`
	Applicant   *UserSummaryDTO          `json:"applicant,omitempty"`
}

// ToApplicationDTO converts an Application model to ApplicationDTO
func ToApplicationDTO(app models.Application) ApplicationDTO {
	dto := ApplicationDTO{
		ID:          app.ID,
		JobID:       app.JobID,
		ApplicantID: app.ApplicantID,
		CoverLetter: app.CoverLetter,
		ResumeURL:   app.ResumeURL,
		Status:      app.Status,
		Feedback:    app.Feedback,
		CreatedAt:   app.CreatedAt,
		UpdatedAt:   app.UpdatedAt,
	}

	// Include job if preloaded
	if app.Job.ID != 0 {
		job := ToJobSummaryDTO(app.Job)
		dto.Job = &job
	}

	// Include applicant if preloaded
	if app.Applicant.ID != 0 {
		applicant := ToUserSummaryDTO(app.Applicant)
		dto.Applicant = &applicant
	}

	return dto
}

// ToApplicationDTOs converts a slice of applications
func ToApplicationDTOs(apps []models.Application) []ApplicationDTO {
	dtos := make([]ApplicationDTO, len(apps))
	for i, app := range apps {
		dtos[i] = ToApplicationDTO(app)
	}
	return dtos
}
