package repository

import (
	"strings"

	"github.com/aryankuttarmare14/job-board-app/internal/database"
	"github.com/aryankuttarmare14/job-board-app/internal/models"
	"github.com/aryankuttarmare14/job-board-app/internal/utils"
	"gorm.io/gorm"
)

// GormJobRepository is a GORM implementation of JobRepository
type GormJobRepository struct {
	db *gorm.DB
}

// NewJobRepository creates a new JobRepository
func NewJobRepository(db *gorm.DB) JobRepository {
	return &GormJobRepository{db: db}
}

// Create creates a new job
func (r *GormJobRepository) Create(job *models.Job) error {
	return r.db.Create(job).Error
}

// FindByID finds a job by ID with optional preloading
func (r *GormJobRepository) FindByID(id uint64, preload ...string) (*models.Job, error) {
	var job models.Job
	query := r.db

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&job, id).Error; err != nil {
		return nil, err
	}

	return &job, nil
}

// Search retrieves jobs with filtering, sorting and pagination
func (r *GormJobRepository) Search(filter JobFilter) ([]models.Job, int64, error) {
	query := r.db.Model(&models.Job{}).Where("jobs.status = ?", filter.Status)

	if filter.Location != "" {
		query = query.Where("LOWER(jobs.location) LIKE ?", "%"+strings.ToLower(filter.Location)+"%")
	}
	if filter.Type != nil {
		query = query.Where("jobs.type = ?", *filter.Type)
	}

	var pattern string
	if filter.Query != "" {
		pattern = "%" + strings.ToLower(filter.Query) + "%"
		query = query.Where(
			"LOWER(jobs.title) LIKE ? OR LOWER(jobs.description) LIKE ? OR LOWER(jobs.company) LIKE ? OR LOWER(jobs.location) LIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	listQuery := query
	switch {
	case filter.Sort == "oldest":
		listQuery = listQuery.Order("jobs.created_at ASC")
	case filter.Sort == "relevance" && pattern != "":
		// Rank title hits above company hits above the rest.
		listQuery = listQuery.
			Select(
				"jobs.*, CASE WHEN LOWER(jobs.title) LIKE ? THEN 3 WHEN LOWER(jobs.company) LIKE ? THEN 2 ELSE 1 END AS relevance",
				pattern, pattern,
			).
			Order("relevance DESC, jobs.created_at DESC")
	default:
		listQuery = listQuery.Order("jobs.created_at DESC")
	}

	params := utils.PaginationParams{
		Page:   filter.Page,
		Limit:  filter.PageSize,
		Offset: (filter.Page - 1) * filter.PageSize,
	}

	var jobs []models.Job
	if err := listQuery.
		Scopes(database.Paginate(params)).
		Preload("Employer").
		Find(&jobs).Error; err != nil {
		return nil, 0, err
	}

	return jobs, total, nil
}

// Update persists changes to a job
func (r *GormJobRepository) Update(job *models.Job) error {
	return r.db.Save(job).Error
}

// DeleteCascade removes a job and its applications in one transaction.
func (r *GormJobRepository) DeleteCascade(id uint64) ([]string, error) {
	var resumeURLs []string

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Application{}).
			Where("job_id = ?", id).
			Pluck("resume_url", &resumeURLs).Error; err != nil {
			return err
		}

		if err := tx.Where("job_id = ?", id).Delete(&models.Application{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Job{}, id).Error
	})
	if err != nil {
		return nil, err
	}

	return resumeURLs, nil
}

// ListByEmployer returns an employer's jobs, newest first
func (r *GormJobRepository) ListByEmployer(employerID uint64) ([]models.Job, error) {
	var jobs []models.Job
	if err := r.db.Where("employer_id = ?", employerID).
		Order("created_at DESC").
		Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

// ListFeatured returns active jobs ranked by application count
func (r *GormJobRepository) ListFeatured(limit int) ([]models.Job, error) {
	var jobs []models.Job
	if err := r.db.Where("status = ?", models.JobStatusActive).
		Order("applications DESC").
		Limit(limit).
		Preload("Employer").
		Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

// ListAll returns every job regardless of status
func (r *GormJobRepository) ListAll() ([]models.Job, error) {
	var jobs []models.Job
	if err := r.db.Order("created_at DESC").
		Preload("Employer").
		Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

// ListRecent returns the most recently created jobs
func (r *GormJobRepository) ListRecent(limit int) ([]models.Job, error) {
	var jobs []models.Job
	if err := r.db.Order("created_at DESC").
		Limit(limit).
		Preload("Employer").
		Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

// CountByStatus returns the total job count and the count per status
func (r *GormJobRepository) CountByStatus() (int64, map[models.JobStatus]int64, error) {
	var total int64
	if err := r.db.Model(&models.Job{}).Count(&total).Error; err != nil {
		return 0, nil, err
	}

	type statusCount struct {
		Status models.JobStatus
		Count  int64
	}
	var rows []statusCount
	if err := r.db.Model(&models.Job{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return 0, nil, err
	}

	counts := make(map[models.JobStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}

	return total, counts, nil
}
