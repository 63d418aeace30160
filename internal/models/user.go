package models

import (
	"time"
)

type Role string

const (
	RoleJobseeker Role = "jobseeker"
	RoleEmployer  Role = "employer"
	RoleAdmin     Role = "admin"
)

// Valid reports whether the role is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleJobseeker, RoleEmployer, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID           uint64     `gorm:"primarykey" json:"id"`
	Name         string     `gorm:"type:varchar(100);not null" json:"name"`
	Username     string     `gorm:"type:varchar(50);uniqueIndex;not null" json:"username"`
	Email        string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"type:varchar(255);not null" json:"-"`
	Role         Role       `gorm:"type:varchar(20);not null;default:'jobseeker'" json:"role"`
	Company      string     `gorm:"type:varchar(100)" json:"company"`
	Location     string     `gorm:"type:varchar(100)" json:"location"`
	Bio          string     `gorm:"type:text" json:"bio"`
	Skills       StringList `gorm:"type:text" json:"skills"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	// Relations
	Jobs         []Job         `gorm:"foreignKey:EmployerID" json:"-"`
	Applications []Application `gorm:"foreignKey:ApplicantID" json:"-"`
}
