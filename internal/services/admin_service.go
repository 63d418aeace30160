package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aryankuttarmare14/job-board-app/internal/constants"
	"github.com/aryankuttarmare14/job-board-app/internal/models"
	"github.com/aryankuttarmare14/job-board-app/internal/repository"
	"github.com/aryankuttarmare14/job-board-app/internal/storage"
	"gorm.io/gorm"
)

// AdminService is the moderation surface over users, jobs and applications.
// Role gating happens in the middleware; every operation here bypasses
// ownership checks.
type AdminService struct {
	userRepo repository.UserRepository
	jobRepo  repository.JobRepository
	appRepo  repository.ApplicationRepository
	resumes  *storage.ResumeStore
}

// NewAdminService creates a new AdminService.
func NewAdminService(userRepo repository.UserRepository, jobRepo repository.JobRepository, appRepo repository.ApplicationRepository, resumes *storage.ResumeStore) *AdminService {
	return &AdminService{
		userRepo: userRepo,
		jobRepo:  jobRepo,
		appRepo:  appRepo,
		resumes:  resumes,
	}
}

// ListUsers returns all users.
func (s *AdminService) ListUsers() ([]models.User, error) {
	users, err := s.userRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// GetUser returns any user by id.
func (s *AdminService) GetUser(id uint64) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// UpdateUserInput carries the fields an admin may edit on any user.
type UpdateUserInput struct {
	Name  *string
	Email *string
	Role  *models.Role
}

// UpdateUser edits any user, including role changes.
func (s *AdminService) UpdateUser(id uint64, input UpdateUserInput) (*models.User, error) {
	user, err := s.GetUser(id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil && strings.TrimSpace(*input.Name) != "" {
		user.Name = strings.TrimSpace(*input.Name)
	}
	if input.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*input.Email))
		if email != "" && email != user.Email {
			if _, err := s.userRepo.FindByEmail(email); err == nil {
				return nil, ErrEmailTaken
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("failed to check email: %w", err)
			}
			user.Email = email
		}
	}
	if input.Role != nil {
		if !input.Role.Valid() {
			return nil, ErrInvalidRole
		}
		user.Role = *input.Role
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}

// DeleteUser removes a user and cascades to everything they own: an
// employer's jobs and those jobs' applications, or a jobseeker's own
// applications. Orphaned resume files are unlinked best-effort.
func (s *AdminService) DeleteUser(id uint64) error {
	user, err := s.GetUser(id)
	if err != nil {
		return err
	}

	resumeURLs, err := s.userRepo.DeleteCascade(user)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	for _, url := range resumeURLs {
		_ = s.resumes.Delete(url)
	}

	return nil
}

// ListJobs returns every job regardless of status.
func (s *AdminService) ListJobs() ([]models.Job, error) {
	jobs, err := s.jobRepo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	return jobs, nil
}

// UpdateJob patches any job without an ownership check.
func (s *AdminService) UpdateJob(id uint64, input UpdateJobInput) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to find job: %w", err)
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

// DeleteJob removes any job and its applications.
func (s *AdminService) DeleteJob(id uint64) error {
	if _, err := s.jobRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrJobNotFound
		}
		return fmt.Errorf("failed to find job: %w", err)
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

// ListApplications returns every application with job and applicant joined.
func (s *AdminService) ListApplications() ([]models.Application, error) {
	apps, err := s.appRepo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	return apps, nil
}

// DashboardStats is the aggregated moderation dashboard read.
type DashboardStats struct {
	TotalUsers           int64
	UsersByRole          map[models.Role]int64
	TotalJobs            int64
	JobsByStatus         map[models.JobStatus]int64
	TotalApplications    int64
	ApplicationsByStatus map[models.ApplicationStatus]int64
	RecentJobs           []models.Job
	RecentApplications   []models.Application
}

// Stats computes the dashboard counts and recent activity in one read.
func (s *AdminService) Stats() (*DashboardStats, error) {
	totalUsers, usersByRole, err := s.userRepo.CountByRole()
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}

	totalJobs, jobsByStatus, err := s.jobRepo.CountByStatus()
	if err != nil {
		return nil, fmt.Errorf("failed to count jobs: %w", err)
	}

	totalApps, appsByStatus, err := s.appRepo.CountByStatus()
	if err != nil {
		return nil, fmt.Errorf("failed to count applications: %w", err)
	}

	recentJobs, err := s.jobRepo.ListRecent(constants.RecentActivityLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent jobs: %w", err)
	}

	recentApps, err := s.appRepo.ListRecent(constants.RecentActivityLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent applications: %w", err)
	}

	return &DashboardStats{
		TotalUsers:           totalUsers,
		UsersByRole:          usersByRole,
		TotalJobs:            totalJobs,
		JobsByStatus:         jobsByStatus,
		TotalApplications:    totalApps,
		ApplicationsByStatus: appsByStatus,
		RecentJobs:           recentJobs,
		RecentApplications:   recentApps,
	}, nil
}
