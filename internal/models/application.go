package models

import (
	"time"
)

type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusReviewed ApplicationStatus = "reviewed"
	ApplicationStatusAccepted ApplicationStatus = "accepted"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusReviewed, ApplicationStatusAccepted, ApplicationStatusRejected:
		return true
	}
	return false
}

// Application records one submission per (job, applicant) pair. The composite
// unique index is what makes concurrent duplicate submissions safe.
type Application struct {
	ID          uint64            `gorm:"primarykey" json:"id"`
	JobID       uint64            `gorm:"not null;uniqueIndex:idx_applications_job_applicant" json:"job_id"`
	ApplicantID uint64            `gorm:"not null;uniqueIndex:idx_applications_job_applicant" json:"applicant_id"`
	CoverLetter string            `gorm:"type:text;not null" json:"cover_letter"`
	ResumeURL   string            `gorm:"type:varchar(512);not null" json:"resume_url"`
	Status      ApplicationStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	Feedback    string            `gorm:"type:text" json:"feedback"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`

	// Relations
	Job       Job  `gorm:"foreignKey:JobID" json:"-"`
	Applicant User `gorm:"foreignKey:ApplicantID" json:"-"`
}
