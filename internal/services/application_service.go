package services

import (
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/aryankuttarmare14/job-board-app/internal/constants"
	"github.com/aryankuttarmare14/job-board-app/internal/models"
	"github.com/aryankuttarmare14/job-board-app/internal/repository"
	"github.com/aryankuttarmare14/job-board-app/internal/storage"
	"gorm.io/gorm"
)

var (
	ErrApplicationNotFound  = errors.New("application not found")
	ErrJobNotActive         = errors.New("this job is no longer accepting applications")
	ErrDeadlinePassed       = errors.New("the application deadline for this job has passed")
	ErrAlreadyApplied       = errors.New("you have already applied for this job")
	ErrNotApplicationOwner  = errors.New("not authorized to modify this application")
	ErrNotApplicationViewer = errors.New("not authorized to access these applications")
	ErrResumeFileNotFound   = errors.New("resume file not found")
)

// ApplicationService handles the application lifecycle.
type ApplicationService struct {
	appRepo repository.ApplicationRepository
	jobRepo repository.JobRepository
	resumes *storage.ResumeStore
}

// NewApplicationService creates a new ApplicationService.
func NewApplicationService(appRepo repository.ApplicationRepository, jobRepo repository.JobRepository, resumes *storage.ResumeStore) *ApplicationService {
	return &ApplicationService{
		appRepo: appRepo,
		jobRepo: jobRepo,
		resumes: resumes,
	}
}

// ApplyInput represents a jobseeker's submission to a job.
type ApplyInput struct {
	ApplicantID uint64
	JobID       uint64
	CoverLetter string
	Resume      *multipart.FileHeader
}

// Apply checks every precondition, stores the resume and inserts the
// application together with the job counter increment. The unique
// (job, applicant) index keeps concurrent duplicates out.
func (s *ApplicationService) Apply(input ApplyInput) (*models.Application, error) {
	job, err := s.jobRepo.FindByID(input.JobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to find job: %w", err)
	}

	if job.Status != models.JobStatusActive {
		return nil, ErrJobNotActive
	}
	if job.Expired() {
		return nil, ErrDeadlinePassed
	}

	if strings.TrimSpace(input.CoverLetter) == "" {
		return nil, ValidationError("cover letter is required")
	}
	if err := validateResumeUpload(input.Resume); err != nil {
		return nil, err
	}

	exists, err := s.appRepo.Exists(input.JobID, input.ApplicantID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing application: %w", err)
	}
	if exists {
		return nil, ErrAlreadyApplied
	}

	resumeURL, err := s.resumes.Store(input.ApplicantID, input.Resume)
	if err != nil {
		return nil, fmt.Errorf("failed to store resume: %w", err)
	}

	app := &models.Application{
		JobID:       input.JobID,
		ApplicantID: input.ApplicantID,
		CoverLetter: input.CoverLetter,
		ResumeURL:   resumeURL,
		Status:      models.ApplicationStatusPending,
	}

	if err := s.appRepo.CreateWithCounter(app); err != nil {
		// A concurrent duplicate lost the race against the unique index;
		// the stored file has no record pointing at it anymore.
		_ = s.resumes.Delete(resumeURL)
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyApplied
		}
		return nil, fmt.Errorf("failed to create application: %w", err)
	}

	return app, nil
}

// ListForJob returns a job's applications for its owning employer or an admin.
func (s *ApplicationService) ListForJob(actor *models.User, jobID uint64) ([]models.Application, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to find job: %w", err)
	}

	if job.EmployerID != actor.ID && actor.Role != models.RoleAdmin {
		return nil, ErrNotApplicationViewer
	}

	apps, err := s.appRepo.ListByJob(jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}

	return apps, nil
}

// ListForApplicant returns the caller's own applications with their jobs.
func (s *ApplicationService) ListForApplicant(applicantID uint64) ([]models.Application, error) {
	apps, err := s.appRepo.ListByApplicant(applicantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	return apps, nil
}

// UpdateStatus transitions an application's status. Only the employer owning
// the referenced job, or an admin, may do so.
func (s *ApplicationService) UpdateStatus(actor *models.User, applicationID uint64, status models.ApplicationStatus, feedback string) (*models.Application, error) {
	if !status.Valid() {
		return nil, ValidationError("invalid application status")
	}

	app, err := s.findWithJob(applicationID)
	if err != nil {
		return nil, err
	}

	if app.Job.EmployerID != actor.ID && actor.Role != models.RoleAdmin {
		return nil, ErrNotApplicationOwner
	}

	app.Status = status
	if feedback != "" {
		app.Feedback = feedback
	}

	if err := s.appRepo.Update(app); err != nil {
		return nil, fmt.Errorf("failed to update application: %w", err)
	}

	return app, nil
}

// Withdraw deletes the caller's own application, decrements the job counter
// and unlinks the resume file best-effort.
func (s *ApplicationService) Withdraw(applicantID, applicationID uint64) error {
	app, err := s.findWithJob(applicationID)
	if err != nil {
		return err
	}

	if app.ApplicantID != applicantID {
		return ErrNotApplicationOwner
	}

	if err := s.appRepo.DeleteWithCounter(app); err != nil {
		return fmt.Errorf("failed to delete application: %w", err)
	}

	_ = s.resumes.Delete(app.ResumeURL)

	return nil
}

// ResumePath returns the on-disk path of an application's resume for the
// owning employer or an admin. A record whose file is gone reports not found.
func (s *ApplicationService) ResumePath(actor *models.User, applicationID uint64) (string, error) {
	app, err := s.findWithJob(applicationID)
	if err != nil {
		return "", err
	}

	if app.Job.EmployerID != actor.ID && actor.Role != models.RoleAdmin {
		return "", ErrNotApplicationViewer
	}

	if !s.resumes.Exists(app.ResumeURL) {
		return "", ErrResumeFileNotFound
	}

	return s.resumes.Resolve(app.ResumeURL)
}

func (s *ApplicationService) findWithJob(applicationID uint64) (*models.Application, error) {
	app, err := s.appRepo.FindByID(applicationID, "Job")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, fmt.Errorf("failed to find application: %w", err)
	}
	return app, nil
}

func validateResumeUpload(file *multipart.FileHeader) error {
	if file == nil {
		return ValidationError("please upload your resume")
	}
	if file.Size > constants.MaxResumeSize {
		return ValidationError("resume must be 5MB or smaller")
	}

	contentType := file.Header.Get("Content-Type")
	if contentType != "application/pdf" && !strings.EqualFold(filepath.Ext(file.Filename), ".pdf") {
		return ValidationError("only PDF files are allowed")
	}

	return nil
}
