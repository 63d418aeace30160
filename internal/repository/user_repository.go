package repository

import (
	"github.com/aryankuttarmare14/job-board-app/internal/models"
	"gorm.io/gorm"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// Create creates a new user
func (r *GormUserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// FindByID finds a user by ID
func (r *GormUserRepository) FindByID(id uint64) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail finds a user by email
func (r *GormUserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByUsername finds a user by username
func (r *GormUserRepository) FindByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Update persists changes to a user
func (r *GormUserRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

// List returns all users
func (r *GormUserRepository) List() ([]models.User, error) {
	var users []models.User
	if err := r.db.Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// DeleteCascade removes a user and everything they own in one transaction.
func (r *GormUserRepository) DeleteCascade(user *models.User) ([]string, error) {
	var resumeURLs []string

	err := r.db.Transaction(func(tx *gorm.DB) error {
		switch user.Role {
		case models.RoleEmployer:
			var jobIDs []uint64
			if err := tx.Model(&models.Job{}).
				Where("employer_id = ?", user.ID).
				Pluck("id", &jobIDs).Error; err != nil {
				return err
			}

			if len(jobIDs) > 0 {
				if err := tx.Model(&models.Application{}).
					Where("job_id IN ?", jobIDs).
					Pluck("resume_url", &resumeURLs).Error; err != nil {
					return err
				}
				if err := tx.Where("job_id IN ?", jobIDs).
					Delete(&models.Application{}).Error; err != nil {
					return err
				}
				if err := tx.Where("employer_id = ?", user.ID).
					Delete(&models.Job{}).Error; err != nil {
					return err
				}
			}

		case models.RoleJobseeker:
			var jobIDs []uint64
			if err := tx.Model(&models.Application{}).
				Where("applicant_id = ?", user.ID).
				Pluck("job_id", &jobIDs).Error; err != nil {
				return err
			}
			if err := tx.Model(&models.Application{}).
				Where("applicant_id = ?", user.ID).
				Pluck("resume_url", &resumeURLs).Error; err != nil {
				return err
			}

			if len(jobIDs) > 0 {
				if err := tx.Where("applicant_id = ?", user.ID).
					Delete(&models.Application{}).Error; err != nil {
					return err
				}
				// One application per (job, applicant), so each affected
				// job loses exactly one.
				if err := tx.Model(&models.Job{}).
					Where("id IN ?", jobIDs).
					UpdateColumn("applications", gorm.Expr("applications - ?", 1)).Error; err != nil {
					return err
				}
			}

		case models.RoleAdmin:
			// Admins own no jobs or applications.
		}

		return tx.Delete(&models.User{}, user.ID).Error
	})
	if err != nil {
		return nil, err
	}

	return resumeURLs, nil
}

// CountByRole returns the total user count and the count per role
func (r *GormUserRepository) CountByRole() (int64, map[models.Role]int64, error) {
	var total int64
	if err := r.db.Model(&models.User{}).Count(&total).Error; err != nil {
		return 0, nil, err
	}

	type roleCount struct {
		Role  models.Role
		Count int64
	}
	var rows []roleCount
	if err := r.db.Model(&models.User{}).
		Select("role, COUNT(*) AS count").
		Group("role").
		Scan(&rows).Error; err != nil {
		return 0, nil, err
	}

	counts := make(map[models.Role]int64, len(rows))
	for _, row := range rows {
		counts[row.Role] = row.Count
	}

	return total, counts, nil
}
