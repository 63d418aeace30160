package dto

import (
	"time"

	"github.com/aryankuttarmare14/job-board-app/internal/models"
)

// JobDTO represents a job in API responses
type JobDTO struct {
	ID               uint64           `json:"id"`
	Title            string           `json:"title"`
	Company          string           `json:"company"`
	Location         string           `json:"location"`
	Type             models.JobType   `json:"type"`
	Description      string           `json:"description"`
	Requirements     []string         `json:"requirements"`
	Responsibilities []string         `json:"responsibilities"`
	Salary           models.Salary    `json:"salary"`
	Deadline         time.Time        `json:"deadline"`
	EmployerID       uint64           `json:"employer_id"`
	Status           models.JobStatus `json:"status"`
	Applications     int64            `json:"applications"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
	Employer         *UserSummaryDTO  `json:"employer,omitempty"`
}

// JobSummaryDTO is the minimal job projection joined onto applications.
type JobSummaryDTO struct {
	ID       uint64           `json:"id"`
	Title    string           `json:"title"`
	Company  string           `json:"company"`
	Location string           `json:"location"`
	Type     models.JobType   `json:"type"`
	Status   models.JobStatus `json:"status"`
	Deadline time.Time        `json:"deadline"`
	Employer *UserSummaryDTO  `json:"employer,omitempty"`
}

// ToJobDTO converts a Job model to JobDTO
func ToJobDTO(job models.Job) JobDTO {
	requirements := []string(job.Requirements)
	if requirements == nil {
		requirements = []string{}
	}
	responsibilities := []string(job.Responsibilities)
	if responsibilities == nil {
		responsibilities = []string{}
	}

	dto := JobDTO{
		ID:               job.ID,
		Title:            job.Title,
		Company:          job.Company,
		Location:         job.Location,
		Type:             job.Type,
		Description:      job.Description,
		Requirements:     requirements,
		Responsibilities: responsibilities,
		Salary:           job.Salary,
		Deadline:         job.Deadline,
		EmployerID:       job.EmployerID,
		Status:           job.Status,
		Applications:     job.Applications,
		CreatedAt:        job.CreatedAt,
		UpdatedAt:        job.UpdatedAt,
	}

	// Include employer if preloaded
	if job.Employer.ID != 0 {
		employer := ToUserSummaryDTO(job.Employer)
		dto.Employer = &employer
	}

	return dto
}

// ToJobDTOs converts a slice of jobs
func ToJobDTOs(jobs []models.Job) []JobDTO {
	dtos := make([]JobDTO, len(jobs))
	for i, job := range jobs {
		dtos[i] = ToJobDTO(job)
	}
	return dtos
}

// ToJobSummaryDTO converts a Job model to its minimal projection
func ToJobSummaryDTO(job models.Job) JobSummaryDTO {
	dto := JobSummaryDTO{
		ID:       job.ID,
		Title:    job.Title,
		Company:  job.Company,
		Location: job.Location,
		Type:     job.Type,
		Status:   job.Status,
		Deadline: job.Deadline,
	}

	if job.Employer.ID != 0 {
		employer := ToUserSummaryDTO(job.Employer)
		dto.Employer = &employer
	}

	return dto
}
