package models

import (
	"time"
)

type JobType string

const (
	JobTypeFullTime   JobType = "full-time"
	JobTypePartTime   JobType = "part-time"
	JobTypeRemote     JobType = "remote"
	JobTypeContract   JobType = "contract"
	JobTypeInternship JobType = "internship"
)

func (t JobType) Valid() bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeRemote, JobTypeContract, JobTypeInternship:
		return true
	}
	return false
}

type JobStatus string

const (
	JobStatusActive JobStatus = "active"
	JobStatusClosed JobStatus = "closed"
	JobStatusDraft  JobStatus = "draft"
)

func (s JobStatus) Valid() bool {
	switch s {
	case JobStatusActive, JobStatusClosed, JobStatusDraft:
		return true
	}
	return false
}

// Salary is embedded into Job as salary_min / salary_max / salary_currency.
type Salary struct {
	Min      int64  `gorm:"default:0" json:"min"`
	Max      int64  `gorm:"default:0" json:"max"`
	Currency string `gorm:"type:varchar(10);default:'USD'" json:"currency"`
}

type Job struct {
	ID               uint64     `gorm:"primarykey" json:"id"`
	Title            string     `gorm:"type:varchar(255);not null" json:"title"`
	Company          string     `gorm:"type:varchar(100);not null" json:"company"`
	Location         string     `gorm:"type:varchar(100);not null" json:"location"`
	Type             JobType    `gorm:"type:varchar(20);not null" json:"type"`
	Description      string     `gorm:"type:text;not null" json:"description"`
	Requirements     StringList `gorm:"type:text" json:"requirements"`
	Responsibilities StringList `gorm:"type:text" json:"responsibilities"`
	Salary           Salary     `gorm:"embedded;embeddedPrefix:salary_" json:"salary"`
	Deadline         time.Time  `gorm:"not null" json:"deadline"`
	EmployerID       uint64     `gorm:"not null;index" json:"employer_id"`
	Status           JobStatus  `gorm:"type:varchar(20);not null;default:'active';index" json:"status"`
	Applications     int64      `gorm:"not null;default:0" json:"applications"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`

	// Relations
	Employer User `gorm:"foreignKey:EmployerID" json:"-"`
}

// Expired reports whether the application deadline has passed.
func (j *Job) Expired() bool {
	return time.Now().After(j.Deadline)
}
