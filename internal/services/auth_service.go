package services

import (
	"errors"
	"fmt"

	"github.com/trackr-dev/trackr/internal/apperrors"
	"github.com/trackr-dev/trackr/internal/auth"
	"github.com/trackr-dev/trackr/internal/models"
	"gorm.io/gorm"
)

// AuthService owns signup and login. New accounts always start as
// MEMBER; elevation happens through the admin role-change endpoint.
type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

func (s *AuthService) Signup(username, password, fullName string) (*models.User, string, error) {
	passwordHash, err := auth.HashPassword(password)

	if err != nil {
		return nil, "", fmt.Errorf("hashing password: %w", err)
	}

	user := models.User{
		Username:     username,
		PasswordHash: passwordHash,
		FullName:     fullName,
		Role:         models.RoleMember,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.User

		err := tx.Where("username = ?", username).First(&existing).Error

		if err == nil {
			return apperrors.Conflict("Username already exists")
		}

		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("checking existing user: %w", err)
		}

		// A concurrent signup can slip past the check above and
		// land on the unique index instead.
		if err := tx.Create(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperrors.Conflict("Username already exists")
			}
			return fmt.Errorf("creating user: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, "", err
	}

	token, err := auth.GenerateJWT(&user)

	if err != nil {
		return nil, "", fmt.Errorf("generating token: %w", err)
	}

	return &user, token, nil
}

func (s *AuthService) Login(username, password string) (*models.User, string, error) {
	var user models.User

	err := s.db.Where("username = ?", username).First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			auth.BurnPassword(password)
			return nil, "", apperrors.Unauthenticated("Invalid username or password")
		}
		return nil, "", fmt.Errorf("fetching user: %w", err)
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, "", apperrors.Unauthenticated("Invalid username or password")
	}

	token, err := auth.GenerateJWT(&user)

	if err != nil {
		return nil, "", fmt.Errorf("generating token: %w", err)
	}

	return &user, token, nil
}
