package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"recordstore/internal/auth"
	"recordstore/internal/models"
	"recordstore/internal/repository"
	"recordstore/internal/validation"
)

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrUsernameRequired = errors.New("username cannot be empty")
	ErrUsernameTaken    = errors.New("username already exists")
	ErrEmailTaken       = errors.New("email already exists")
	ErrUserConflict     = errors.New("username or email already exists")
)

// UserService handles user business logic. Every operation runs inside a
// single transaction: committed on success, rolled back on any error.
type UserService struct {
	db *gorm.DB
}

// NewUserService creates a new UserService
func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// CreateUserInput represents input for creating a user
type CreateUserInput struct {
	Username        string
	Email           string
	PhnNo           string
	Password        string
	ConfirmPassword string
}

// UpdateUserInput represents input for updating a user. Nil fields were not
// supplied and are left untouched.
type UpdateUserInput struct {
	Username *string
	Email    *string
	PhnNo    *string
}

// CreateUser validates the payload, hashes the password and inserts the user.
func (s *UserService) CreateUser(input CreateUserInput) (*models.User, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return nil, ErrUsernameRequired
	}

	email, err := validation.NormalizeEmail(input.Email)
	if err != nil {
		return nil, err
	}

	phnNo, err := validation.ValidatePhone(input.PhnNo)
	if err != nil {
		return nil, err
	}

	digest, err := auth.ConfirmAndHash(input.Password, input.ConfirmPassword)
	if err != nil {
		return nil, err
	}

	var user *models.User
	err = s.db.Transaction(func(tx *gorm.DB) error {
		users := repository.NewUserRepository(tx)

		if err := ensureUserUnique(users, username, email, 0); err != nil {
			return err
		}

		user = &models.User{
			Username: username,
			Email:    email,
			PhnNo:    phnNo,
			Password: digest,
			IsActive: true,
		}
		if err := users.Create(user); err != nil {
			// A concurrent insert can slip past the pre-check; the unique
			// indexes are the backstop.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrUserConflict
			}
			return fmt.Errorf("failed to create user: %w", err)
		}

		// Read back so the response reflects the stored row, not the payload.
		created, err := users.FindByID(user.ID)
		if err != nil {
			return fmt.Errorf("failed to reload user: %w", err)
		}
		user = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// UpdateUser applies the supplied fields to an existing user.
func (s *UserService) UpdateUser(id uint64, input UpdateUserInput) (*models.User, error) {
	var user *models.User
	err := s.db.Transaction(func(tx *gorm.DB) error {
		users := repository.NewUserRepository(tx)

		found, err := users.FindByID(id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: id %d", ErrUserNotFound, id)
			}
			return fmt.Errorf("failed to find user: %w", err)
		}
		user = found

		newUsername := user.Username
		newEmail := user.Email

		if input.Username != nil {
			newUsername = strings.TrimSpace(*input.Username)
			if newUsername == "" {
				return ErrUsernameRequired
			}
		}
		if input.Email != nil {
			newEmail, err = validation.NormalizeEmail(*input.Email)
			if err != nil {
				return err
			}
		}
		if input.PhnNo != nil {
			phnNo, err := validation.ValidatePhone(*input.PhnNo)
			if err != nil {
				return err
			}
			user.PhnNo = phnNo
		}

		if err := ensureUserUnique(users, newUsername, newEmail, user.ID); err != nil {
			return err
		}
		user.Username = newUsername
		user.Email = newEmail

		if err := users.Save(user); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrUserConflict
			}
			return fmt.Errorf("failed to update user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// ListUsers returns all users.
func (s *UserService) ListUsers() ([]models.User, error) {
	users, err := repository.NewUserRepository(s.db).FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// DeleteUser removes a user. Tasks assigned to the user are removed in the
// same transaction per the declared cascade.
func (s *UserService) DeleteUser(id uint64) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		return repository.NewUserRepository(tx).Delete(id)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: id %d", ErrUserNotFound, id)
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

// ensureUserUnique checks the username and email uniqueness invariants,
// ignoring the row identified by selfID so updates can keep their own values.
func ensureUserUnique(users repository.UserRepository, username, email string, selfID uint64) error {
	existing, err := users.FindByUsername(username)
	if err == nil && existing.ID != selfID {
		return ErrUsernameTaken
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check username: %w", err)
	}

	existing, err = users.FindByEmail(email)
	if err == nil && existing.ID != selfID {
		return ErrEmailTaken
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check email: %w", err)
	}

	return nil
}
