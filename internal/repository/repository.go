package repository

import (
	"github.com/aryankuttarmare14/job-board-app/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)

	// Update persists changes to a user
	Update(user *models.User) error

	// List returns all users
	List() ([]models.User, error)

	// DeleteCascade removes a user together with everything they own:
	// an employer's jobs and those jobs' applications, or a jobseeker's
	// applications (with job counters decremented). Runs in one
	// transaction and returns the resume URLs of removed applications so
	// the caller can unlink the files.
	DeleteCascade(user *models.User) ([]string, error)

	// CountByRole returns the total user count and the count per role
	CountByRole() (int64, map[models.Role]int64, error)
}

// JobFilter holds filtering options for searching jobs
type JobFilter struct {
	Query    string
	Location string
	Type     *models.JobType
	Status   models.JobStatus
	Sort     string // newest | oldest | relevance
	Page     int
	PageSize int
}

// JobRepository defines the interface for job data access
type JobRepository interface {
	// Create creates a new job
	Create(job *models.Job) error

	// FindByID finds a job by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.Job, error)

	// Search retrieves jobs with filtering, sorting and pagination
	Search(filter JobFilter) ([]models.Job, int64, error)

	// Update persists changes to a job
	Update(job *models.Job) error

	// DeleteCascade removes a job and all applications referencing it in
	// one transaction, returning the resume URLs of the removed
	// applications.
	DeleteCascade(id uint64) ([]string, error)

	// ListByEmployer returns an employer's jobs, newest first
	ListByEmployer(employerID uint64) ([]models.Job, error)

	// ListFeatured returns active jobs ranked by application count
	ListFeatured(limit int) ([]models.Job, error)

	// ListAll returns every job regardless of status
	ListAll() ([]models.Job, error)

	// ListRecent returns the most recently created jobs
	ListRecent(limit int) ([]models.Job, error)

	// CountByStatus returns the total job count and the count per status
	CountByStatus() (int64, map[models.JobStatus]int64, error)
}

// ApplicationRepository defines the interface for application data access
type ApplicationRepository interface {
	// CreateWithCounter inserts an application and increments the job's
	// denormalized application counter in the same transaction.
	CreateWithCounter(app *models.Application) error

	// FindByID finds an application by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.Application, error)

	// Exists reports whether an applicant already applied to a job
	Exists(jobID, applicantID uint64) (bool, error)

	// ListByJob returns all applications for a job
	ListByJob(jobID uint64) ([]models.Application, error)

	// ListByApplicant returns an applicant's applications, newest first
	ListByApplicant(applicantID uint64) ([]models.Application, error)

	// Update persists changes to an application
	Update(app *models.Application) error

	// DeleteWithCounter removes an application and decrements the job's
	// application counter in the same transaction.
	DeleteWithCounter(app *models.Application) error

	// ListAll returns every application
	ListAll() ([]models.Application, error)

	// ListRecent returns the most recently created applications
	ListRecent(limit int) ([]models.Application, error)

	// CountByStatus returns the total application count and the count per status
	CountByStatus() (int64, map[models.ApplicationStatus]int64, error)
}
