package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/trackr-dev/trackr/internal/apperrors"
	"github.com/trackr-dev/trackr/internal/models"
	"github.com/trackr-dev/trackr/internal/policy"
	"github.com/trackr-dev/trackr/internal/types"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MilestoneInput carries the full milestone record; updates replace
// every field except the project parent, which is immutable.
type MilestoneInput struct {
	Title       string
	Description string
	DueDate     time.Time
	IsCompleted *bool
	CreatedByID string
}

type MilestoneService struct {
	db *gorm.DB
}

func NewMilestoneService(db *gorm.DB) *MilestoneService {
	return &MilestoneService{db: db}
}

func (s *MilestoneService) ListByProject(actor types.Identity, projectID string) ([]models.Milestone, error) {
	if !policy.Can(actor.Role, policy.OpRead) {
		return nil, apperrors.Forbidden("Insufficient permissions")
	}

	if err := findProject(s.db, projectID); err != nil {
		return nil, err
	}

	var milestones []models.Milestone

	if err := s.db.Preload("CreatedBy").Where("project_id = ?", projectID).Order("due_date").Find(&milestones).Error; err != nil {
		return nil, fmt.Errorf("listing milestones: %w", err)
	}

	return milestones, nil
}

func (s *MilestoneService) Create(actor types.Identity, projectID string, input MilestoneInput) (*models.Milestone, error) {
	if !policy.Can(actor.Role, policy.OpMilestoneCreate) {
		return nil, apperrors.Forbidden("Insufficient permissions")
	}

	var milestone models.Milestone

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := findProject(tx, projectID); err != nil {
			return err
		}

		createdBy, err := findUser(tx, input.CreatedByID)

		if err != nil {
			return err
		}

		milestone = models.Milestone{
			ProjectID:   projectID,
			Title:       input.Title,
			Description: input.Description,
			DueDate:     datatypes.Date(input.DueDate),
			IsCompleted: input.IsCompleted != nil && *input.IsCompleted,
			CreatedByID: createdBy.ID,
		}

		if err := tx.Create(&milestone).Error; err != nil {
			return fmt.Errorf("creating milestone: %w", err)
		}

		milestone.CreatedBy = *createdBy
		return nil
	})

	if err != nil {
		return nil, err
	}

	return &milestone, nil
}

func (s *MilestoneService) Update(actor types.Identity, id string, input MilestoneInput) (*models.Milestone, error) {
	if !policy.Can(actor.Role, policy.OpMilestoneUpdate) {
		return nil, apperrors.Forbidden("Insufficient permissions")
	}

	var milestone models.Milestone

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&milestone, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("Milestone not found")
			}
			return fmt.Errorf("fetching milestone: %w", err)
		}

		createdBy, err := findUser(tx, input.CreatedByID)

		if err != nil {
			return err
		}

		milestone.Title = input.Title
		milestone.Description = input.Description
		milestone.DueDate = datatypes.Date(input.DueDate)
		milestone.IsCompleted = input.IsCompleted != nil && *input.IsCompleted
		milestone.CreatedByID = createdBy.ID

		if err := tx.Omit(clause.Associations).Save(&milestone).Error; err != nil {
			return fmt.Errorf("updating milestone: %w", err)
		}

		milestone.CreatedBy = *createdBy
		return nil
	})

	if err != nil {
		return nil, err
	}

	return &milestone, nil
}

func (s *MilestoneService) Delete(actor types.Identity, id string) error {
	if !policy.Can(actor.Role, policy.OpMilestoneDelete) {
		return apperrors.Forbidden("Insufficient permissions")
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var milestone models.Milestone

		if err := tx.First(&milestone, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("Milestone not found")
			}
			return fmt.Errorf("fetching milestone: %w", err)
		}

		if err := tx.Delete(&milestone).Error; err != nil {
			return fmt.Errorf("deleting milestone: %w", err)
		}

		return nil
	})
}

func findProject(tx *gorm.DB, id string) error {
	var project models.Project

	if err := tx.Select("id").First(&project, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("Project not found")
		}
		return fmt.Errorf("fetching project: %w", err)
	}

	return nil
}

func findUser(tx *gorm.DB, id string) (*models.User, error) {
	var user models.User

	if err := tx.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("User not found")
		}
		return nil, fmt.Errorf("fetching user: %w", err)
	}

	return &user, nil
}
