package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/aryankuttarmare14/job-board-app/internal/constants"
	"github.com/aryankuttarmare14/job-board-app/internal/models"
	"github.com/aryankuttarmare14/job-board-app/internal/repository"
	"github.com/aryankuttarmare14/job-board-app/internal/storage"
	"gorm.io/gorm"
)

var (
	ErrJobNotFound = errors.New("job not found")
	ErrNotJobOwner = errors.New("not authorized to modify this job")
)

// JobService handles job catalog business logic.
type JobService struct {
	jobRepo repository.JobRepository
	resumes *storage.ResumeStore
}

// NewJobService creates a new JobService.
func NewJobService(jobRepo repository.JobRepository, resumes *storage.ResumeStore) *JobService {
	return &JobService{
		jobRepo: jobRepo,
		resumes: resumes,
	}
}

// CreateJobInput represents input for creating a job.
type CreateJobInput struct {
	Title            string
	Company          string
	Location         string
	Type             models.JobType
	Description      string
	Requirements     []string
	Responsibilities []string
	Salary           models.Salary
	Deadline         time.Time
	Status           models.JobStatus
}

// Create persists a new posting owned by the employer.
func (s *JobService) Create(employerID uint64, input CreateJobInput) (*models.Job, error) {
	if err := validateJobFields(input.Title, input.Company, input.Location, input.Type, input.Description, input.Deadline); err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = models.JobStatusActive
	}
	if !status.Valid() {
		return nil, ValidationError("invalid job status")
	}

	job := &models.Job{
		Title:            input.Title,
		Company:          input.Company,
		Location:         input.Location,
		Type:             input.Type,
		Description:      input.Description,
		Requirements:     models.StringList(input.Requirements),
		Responsibilities: models.StringList(input.Responsibilities),
		Salary:           input.Salary,
		Deadline:         input.Deadline,
		EmployerID:       employerID,
		Status:           status,
	}

	if err := s.jobRepo.Create(job); err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	return job, nil
}

// SearchJobsInput represents the public search filters.
type SearchJobsInput struct {
	Query    string
	Location string
	Type     string
	Status   string
	Sort     string
	Page     int
	PageSize int
}

// Search returns a filtered, sorted page of jobs and the total match count.
func (s *JobService) Search(input SearchJobsInput) ([]models.Job, int64, error) {
	filter := repository.JobFilter{
		Query:    input.Query,
		Location: input.Location,
		Page:     input.Page,
		PageSize: input.PageSize,
	}

	if input.Type != "" && input.Type != "any" {
		jobType := models.JobType(input.Type)
		if !jobType.Valid() {
			return nil, 0, ValidationError("invalid job type")
		}
		filter.Type = &jobType
	}

	status := models.JobStatusActive
	if input.Status != "" {
		status = models.JobStatus(input.Status)
		if !status.Valid() {
			return nil, 0, ValidationError("invalid job status")
		}
	}
	filter.Status = status

	switch input.Sort {
	case "", "newest", "oldest":
		filter.Sort = input.Sort
	case "relevance":
		// Relevance ranking only applies together with a text query.
		if input.Query != "" {
			filter.Sort = "relevance"
		}
	default:
		return nil, 0, ValidationError("invalid sort option")
	}

	jobs, total, err := s.jobRepo.Search(filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search jobs: %w", err)
	}

	return jobs, total, nil
}

// Get returns a job with its employer projection.
func (s *JobService) Get(id uint64) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(id, "Employer")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to find job: %w", err)
	}

	return job, nil
}

// UpdateJobInput carries optional job fields; nil means leave unchanged.
type UpdateJobInput struct {
	Title            *string
	Company          *string
	Location         *string
	Type             *models.JobType
	Description      *string
	Requirements     *[]string
	Responsibilities *[]string
	Salary           *models.Salary
	Deadline         *time.Time
	Status           *models.JobStatus
}

// Update patches a job. Only the owning employer or an admin may mutate it;
// the patched document is re-validated against the create constraints.
func (s *JobService) Update(actor *models.User, id uint64, input UpdateJobInput) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to find job: %w", err)
	}

	if job.EmployerID != actor.ID && actor.Role != models.RoleAdmin {
		return nil, ErrNotJobOwner
	}

	applyJobPatch(job, input)

	if err := validateJobFields(job.Title, job.Company, job.Location, job.Type, job.Description, job.Deadline); err != nil {
		return nil, err
	}
	if !job.Status.Valid() {
		return nil, ValidationError("invalid job status")
	}

	if err := s.jobRepo.Update(job); err != nil {
		return nil, fmt.Errorf("failed to update job: %w", err)
	}

	return job, nil
}

// Delete removes a job and all its applications. Resume files are unlinked
// best-effort after the transaction commits.
func (s *JobService) Delete(actor *models.User, id uint64) error {
	job, err := s.jobRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrJobNotFound
		}
		return fmt.Errorf("failed to find job: %w", err)
	}

	if job.EmployerID != actor.ID && actor.Role != models.RoleAdmin {
		return ErrNotJobOwner
	}

	resumeURLs, err := s.jobRepo.DeleteCascade(id)
	if err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}

	for _, url := range resumeURLs {
		_ = s.resumes.Delete(url)
	}

	return nil
}

// ListByEmployer returns the employer's own jobs, newest first.
func (s *JobService) ListByEmployer(employerID uint64) ([]models.Job, error) {
	jobs, err := s.jobRepo.ListByEmployer(employerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	return jobs, nil
}

// ListFeatured returns the most-applied-to active jobs for the landing page.
func (s *JobService) ListFeatured() ([]models.Job, error) {
	jobs, err := s.jobRepo.ListFeatured(constants.FeaturedJobsLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list featured jobs: %w", err)
	}
	return jobs, nil
}

func applyJobPatch(job *models.Job, input UpdateJobInput) {
	if input.Title != nil {
		job.Title = *input.Title
	}
	if input.Company != nil {
		job.Company = *input.Company
	}
	if input.Location != nil {
		job.Location = *input.Location
	}
	if input.Type != nil {
		job.Type = *input.Type
	}
	if input.Description != nil {
		job.Description = *input.Description
	}
	if input.Requirements != nil {
		job.Requirements = models.StringList(*input.Requirements)
	}
	if input.Responsibilities != nil {
		job.Responsibilities = models.StringList(*input.Responsibilities)
	}
	if input.Salary != nil {
		job.Salary = *input.Salary
	}
	if input.Deadline != nil {
		job.Deadline = *input.Deadline
	}
	if input.Status != nil {
		job.Status = *input.Status
	}
}

func validateJobFields(title, company, location string, jobType models.JobType, description string, deadline time.Time) error {
	if title == "" {
		return ValidationError("job title is required")
	}
	if company == "" {
		return ValidationError("company name is required")
	}
	if location == "" {
		return ValidationError("location is required")
	}
	if !jobType.Valid() {
		return ValidationError("invalid job type")
	}
	if description == "" {
		return ValidationError("job description is required")
	}
	if deadline.IsZero() {
		return ValidationError("application deadline is required")
	}
	return nil
}
