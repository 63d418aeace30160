package repository

import (
	"errors"

	"github.com/aryankuttarmare14/job-board-app/internal/models"
	"gorm.io/gorm"
)

// GormApplicationRepository is a GORM implementation of ApplicationRepository
type GormApplicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository creates a new ApplicationRepository
func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &GormApplicationRepository{db: db}
}

// CreateWithCounter inserts an application and increments the job's counter
// in the same transaction, so a crash between the two steps cannot leave the
// counter out of sync.
func (r *GormApplicationRepository) CreateWithCounter(app *models.Application) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(app).Error; err != nil {
			return err
		}

		return tx.Model(&models.Job{}).
			Where("id = ?", app.JobID).
			UpdateColumn("applications", gorm.Expr("applications + ?", 1)).Error
	})
}

// FindByID finds an application by ID with optional preloading
func (r *GormApplicationRepository) FindByID(id uint64, preload ...string) (*models.Application, error) {
	var app models.Application
	query := r.db

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&app, id).Error; err != nil {
		return nil, err
	}

	return &app, nil
}

// Exists reports whether an applicant already applied to a job
func (r *GormApplicationRepository) Exists(jobID, applicantID uint64) (bool, error) {
	var app models.Application
	err := r.db.Select("id").
		Where("job_id = ? AND applicant_id = ?", jobID, applicantID).
		First(&app).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// ListByJob returns all applications for a job
func (r *GormApplicationRepository) ListByJob(jobID uint64) ([]models.Application, error) {
	var apps []models.Application
	if err := r.db.Where("job_id = ?", jobID).
		Order("created_at DESC").
		Preload("Applicant").
		Preload("Job").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// ListByApplicant returns an applicant's applications, newest first
func (r *GormApplicationRepository) ListByApplicant(applicantID uint64) ([]models.Application, error) {
	var apps []models.Application
	if err := r.db.Where("applicant_id = ?", applicantID).
		Order("created_at DESC").
		Preload("Job").
		Preload("Job.Employer").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// Update persists changes to an application
func (r *GormApplicationRepository) Update(app *models.Application) error {
	return r.db.Save(app).Error
}

// DeleteWithCounter removes an application and decrements the job's counter
// in the same transaction.
func (r *GormApplicationRepository) DeleteWithCounter(app *models.Application) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Application{}, app.ID).Error; err != nil {
			return err
		}

		return tx.Model(&models.Job{}).
			Where("id = ?", app.JobID).
			UpdateColumn("applications", gorm.Expr("applications - ?", 1)).Error
	})
}

// ListAll returns every application
func (r *GormApplicationRepository) ListAll() ([]models.Application, error) {
	var apps []models.Application
	if err := r.db.Order("created_at DESC").
		Preload("Job").
		Preload("Applicant").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// ListRecent returns the most recently created applications
func (r *GormApplicationRepository) ListRecent(limit int) ([]models.Application, error) {
	var apps []models.Application
	if err := r.db.Order("created_at DESC").
		Limit(limit).
		Preload("Job").
		Preload("Applicant").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// CountByStatus returns the total application count and the count per status
func (r *GormApplicationRepository) CountByStatus() (int64, map[models.ApplicationStatus]int64, error) {
	var total int64
	if err := r.db.Model(&models.Application{}).Count(&total).Error; err != nil {
		return 0, nil, err
	}

	type statusCount struct {
		Status models.ApplicationStatus
		Count  int64
	}
	var rows []statusCount
	if err := r.db.Model(&models.Application{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return 0, nil, err
	}

	counts := make(map[models.ApplicationStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}

	return total, counts, nil
}
