package dto

import (
	"time"

	"github.com/aryankuttarmare14/job-board-app/internal/models"
)

// UserDTO represents a user in API responses. The password hash is never
// part of any projection.
type UserDTO struct {
	ID        uint64      `json:"id"`
	Name      string      `json:"name"`
	Username  string      `json:"username"`
	Email     string      `json:"email"`
	Role      models.Role `json:"role"`
	Company   string      `json:"company,omitempty"`
	Location  string      `json:"location,omitempty"`
	Bio       string      `json:"bio,omitempty"`
	Skills    []string    `json:"skills"`
	CreatedAt time.Time   `json:"created_at"`
}

// UserSummaryDTO is the minimal user projection joined onto jobs and
// applications.
type UserSummaryDTO struct {
	ID       uint64 `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	Company  string `json:"company,omitempty"`
	Location string `json:"location,omitempty"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	skills := []string(user.Skills)
	if skills == nil {
		skills = []string{}
	}

	return UserDTO{
		ID:        user.ID,
		Name:      user.Name,
		Username:  user.Username,
		Email:     user.Email,
		Role:      user.Role,
		Company:   user.Company,
		Location:  user.Location,
		Bio:       user.Bio,
		Skills:    skills,
		CreatedAt: user.CreatedAt,
	}
}

// ToUserDTOs converts a slice of users
func ToUserDTOs(users []models.User) []UserDTO {
	dtos := make([]UserDTO, len(users))
	for i, user := range users {
		dtos[i] = ToUserDTO(user)
	}
	return dtos
}

// ToUserSummaryDTO converts a User model to its minimal projection
func ToUserSummaryDTO(user models.User) UserSummaryDTO {
	return UserSummaryDTO{
		ID:       user.ID,
		Name:     user.Name,
		Email:    user.Email,
		Company:  user.Company,
		Location: user.Location,
	}
}
