package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aryankuttarmare14/job-board-app/internal/constants"
	"github.com/aryankuttarmare14/job-board-app/internal/models"
	"github.com/aryankuttarmare14/job-board-app/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken               = errors.New("email already in use")
	ErrUsernameTaken            = errors.New("username already in use")
	ErrInvalidCredentials       = errors.New("invalid credentials")
	ErrPasswordTooShort         = errors.New("password too short")
	ErrUserNotFound             = errors.New("user not found")
	ErrInvalidRole              = errors.New("invalid role")
	ErrCurrentPasswordIncorrect = errors.New("current password is incorrect")
	ErrFailedToHashPassword     = errors.New("failed to hash password")
)

// AuthService handles registration, login and self-service profile changes.
type AuthService struct {
	userRepo repository.UserRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository) *AuthService {
	return &AuthService{
		userRepo: userRepo,
	}
}

// RegisterInput represents the required information to create a new user.
type RegisterInput struct {
	Name     string
	Username string
	Email    string
	Password string
	Role     models.Role
}

// Register creates a new user with a bcrypt-hashed password.
func (s *AuthService) Register(input RegisterInput) (*models.User, error) {
	name := strings.TrimSpace(input.Name)
	username := strings.TrimSpace(input.Username)
	email := strings.ToLower(strings.TrimSpace(input.Email))

	if name == "" {
		return nil, ValidationError("name is required")
	}
	if username == "" {
		return nil, ValidationError("username is required")
	}
	if email == "" {
		return nil, ValidationError("email is required")
	}
	if len(input.Password) < constants.MinPasswordLength {
		return nil, ErrPasswordTooShort
	}

	role := input.Role
	if role == "" {
		role = models.RoleJobseeker
	}
	// Admin accounts are provisioned out of band, never self-registered.
	if role == models.RoleAdmin || !role.Valid() {
		return nil, ErrInvalidRole
	}

	if err := s.ensureEmailFree(email); err != nil {
		return nil, err
	}
	if err := s.ensureUsernameFree(username); err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	user := &models.User{
		Name:         name,
		Username:     username,
		Email:        email,
		PasswordHash: string(hashedPassword),
		Role:         role,
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Email    string
	Password string
}

// Login verifies credentials and returns the authenticated user. The same
// error is returned for an unknown email and a wrong password.
func (s *AuthService) Login(input LoginInput) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || input.Password == "" {
		return nil, ValidationError("email and password are required")
	}

	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// GetUser retrieves a user by ID.
func (s *AuthService) GetUser(id uint64) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}

// UpdateProfileInput carries the optional profile fields; nil means leave
// unchanged.
type UpdateProfileInput struct {
	Name     *string
	Username *string
	Email    *string
	Company  *string
	Location *string
	Bio      *string
	Skills   *[]string
}

// UpdateProfile applies a self-service profile update, re-checking
// uniqueness when email or username change.
func (s *AuthService) UpdateProfile(userID uint64, input UpdateProfileInput) (*models.User, error) {
	user, err := s.GetUser(userID)
	if err != nil {
		return nil, err
	}

	if input.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*input.Email))
		if email != "" && email != user.Email {
			if err := s.ensureEmailFree(email); err != nil {
				return nil, err
			}
			user.Email = email
		}
	}
	if input.Username != nil {
		username := strings.TrimSpace(*input.Username)
		if username != "" && username != user.Username {
			if err := s.ensureUsernameFree(username); err != nil {
				return nil, err
			}
			user.Username = username
		}
	}
	if input.Name != nil && strings.TrimSpace(*input.Name) != "" {
		user.Name = strings.TrimSpace(*input.Name)
	}
	if input.Company != nil {
		user.Company = *input.Company
	}
	if input.Location != nil {
		user.Location = *input.Location
	}
	if input.Bio != nil {
		user.Bio = *input.Bio
	}
	if input.Skills != nil {
		user.Skills = models.StringList(*input.Skills)
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return user, nil
}

// ChangePassword re-proves the current password before accepting a new one.
func (s *AuthService) ChangePassword(userID uint64, currentPassword, newPassword string) (*models.User, error) {
	if currentPassword == "" || newPassword == "" {
		return nil, ValidationError("current and new password are required")
	}

	user, err := s.GetUser(userID)
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return nil, ErrCurrentPasswordIncorrect
	}

	if len(newPassword) < constants.MinPasswordLength {
		return nil, ErrPasswordTooShort
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}
	user.PasswordHash = string(hashedPassword)

	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to change password: %w", err)
	}

	return user, nil
}

func (s *AuthService) ensureEmailFree(email string) error {
	if _, err := s.userRepo.FindByEmail(email); err == nil {
		return ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check email: %w", err)
	}
	return nil
}

func (s *AuthService) ensureUsernameFree(username string) error {
	if _, err := s.userRepo.FindByUsername(username); err == nil {
		return ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check username: %w", err)
	}
	return nil
}
