package services

import (
	"errors"
	"fmt"

	"github.com/trackr-dev/trackr/internal/apperrors"
	"github.com/trackr-dev/trackr/internal/models"
	"github.com/trackr-dev/trackr/internal/policy"
	"github.com/trackr-dev/trackr/internal/types"
	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) List(actor types.Identity) ([]models.User, error) {
	if !policy.Can(actor.Role, policy.OpUserList) {
		return nil, apperrors.Forbidden("Insufficient permissions")
	}

	var users []models.User

	if err := s.db.Order("created_at").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}

	return users, nil
}

func (s *UserService) Get(actor types.Identity, id string) (*models.User, error) {
	if !policy.Can(actor.Role, policy.OpRead) {
		return nil, apperrors.Forbidden("Insufficient permissions")
	}

	var user models.User

	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("User not found")
		}
		return nil, fmt.Errorf("fetching user: %w", err)
	}

	return &user, nil
}

// UpdateRole assigns a new role. Admin users are self-protecting:
// their role can never be changed, regardless of who asks.
func (s *UserService) UpdateRole(actor types.Identity, id, role string) (*models.User, error) {
	if !policy.Can(actor.Role, policy.OpUserChangeRole) {
		return nil, apperrors.Forbidden("Insufficient permissions")
	}

	var user models.User

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("User not found")
			}
			return fmt.Errorf("fetching user: %w", err)
		}

		if user.Role == models.RoleAdmin {
			return apperrors.InvalidOperation("Cannot change the role of an admin user")
		}

		newRole, ok := models.ParseRole(role)

		if !ok {
			return apperrors.InvalidOperation("Invalid role: " + role)
		}

		user.Role = newRole

		if err := tx.Save(&user).Error; err != nil {
			return fmt.Errorf("updating user role: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (s *UserService) Delete(actor types.Identity, id string) error {
	if !policy.Can(actor.Role, policy.OpUserDelete) {
		return apperrors.Forbidden("Insufficient permissions")
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var user models.User

		if err := tx.First(&user, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("User not found")
			}
			return fmt.Errorf("fetching user: %w", err)
		}

		if user.Role == models.RoleAdmin {
			return apperrors.InvalidOperation("Cannot delete an admin user")
		}

		referenced, err := s.countReferences(tx, id)

		if err != nil {
			return err
		}

		if referenced {
			return apperrors.InvalidOperation("Cannot delete a user who is still referenced by projects, milestones or documents")
		}

		if err := tx.Delete(&user).Error; err != nil {
			return fmt.Errorf("deleting user: %w", err)
		}

		return nil
	})
}

// countReferences reports whether any project, milestone or document
// still points at the user. Those records belong to the project tree,
// so the user must stay until they are gone.
func (s *UserService) countReferences(tx *gorm.DB, id string) (bool, error) {
	var count int64

	if err := tx.Model(&models.Project{}).Where("pi_id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("counting projects: %w", err)
	}

	if count > 0 {
		return true, nil
	}

	if err := tx.Model(&models.Milestone{}).Where("created_by = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("counting milestones: %w", err)
	}

	if count > 0 {
		return true, nil
	}

	if err := tx.Model(&models.Document{}).Where("uploaded_by = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("counting documents: %w", err)
	}

	return count > 0, nil
}
