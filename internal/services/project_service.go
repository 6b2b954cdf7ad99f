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

// ProjectInput carries the full project record; updates replace every
// field. An empty PIID on create defaults to the caller.
type ProjectInput struct {
	Title     string
	Summary   string
	Status    models.ProjectStatus
	PIID      string
	Tags      string
	StartDate time.Time
	EndDate   *time.Time
}

type ProjectService struct {
	db            *gorm.DB
	cascadeDelete bool
}

func NewProjectService(db *gorm.DB, cascadeDelete bool) *ProjectService {
	return &ProjectService{db: db, cascadeDelete: cascadeDelete}
}

func (s *ProjectService) List(actor types.Identity) ([]models.Project, error) {
	if !policy.Can(actor.Role, policy.OpRead) {
		return nil, apperrors.Forbidden("Insufficient permissions")
	}

	var projects []models.Project

	if err := s.db.Preload("PI").Order("created_at").Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}

	return projects, nil
}

func (s *ProjectService) Get(actor types.Identity, id string) (*models.Project, error) {
	if !policy.Can(actor.Role, policy.OpRead) {
		return nil, apperrors.Forbidden("Insufficient permissions")
	}

	var project models.Project

	if err := s.db.Preload("PI").First(&project, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Project not found")
		}
		return nil, fmt.Errorf("fetching project: %w", err)
	}

	return &project, nil
}

func (s *ProjectService) Create(actor types.Identity, input ProjectInput) (*models.Project, error) {
	if !policy.Can(actor.Role, policy.OpProjectCreate) {
		return nil, apperrors.Forbidden("Insufficient permissions")
	}

	if err := validateDates(input.StartDate, input.EndDate); err != nil {
		return nil, err
	}

	piID := input.PIID

	if piID == "" {
		piID = actor.UserID
	}

	var project models.Project

	err := s.db.Transaction(func(tx *gorm.DB) error {
		pi, err := findPI(tx, piID)

		if err != nil {
			return err
		}

		project = models.Project{
			Title:     input.Title,
			Summary:   input.Summary,
			Status:    input.Status,
			PIID:      pi.ID,
			Tags:      input.Tags,
			StartDate: datatypes.Date(input.StartDate),
			EndDate:   toDate(input.EndDate),
		}

		if err := tx.Create(&project).Error; err != nil {
			return fmt.Errorf("creating project: %w", err)
		}

		project.PI = *pi
		return nil
	})

	if err != nil {
		return nil, err
	}

	return &project, nil
}

// Update replaces the full project record, including the PI reference.
func (s *ProjectService) Update(actor types.Identity, id string, input ProjectInput) (*models.Project, error) {
	if !policy.Can(actor.Role, policy.OpProjectUpdate) {
		return nil, apperrors.Forbidden("Insufficient permissions")
	}

	if err := validateDates(input.StartDate, input.EndDate); err != nil {
		return nil, err
	}

	var project models.Project

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&project, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("Project not found")
			}
			return fmt.Errorf("fetching project: %w", err)
		}

		pi, err := findPI(tx, input.PIID)

		if err != nil {
			return err
		}

		project.Title = input.Title
		project.Summary = input.Summary
		project.Status = input.Status
		project.PIID = pi.ID
		project.Tags = input.Tags
		project.StartDate = datatypes.Date(input.StartDate)
		project.EndDate = toDate(input.EndDate)

		if err := tx.Omit(clause.Associations).Save(&project).Error; err != nil {
			return fmt.Errorf("updating project: %w", err)
		}

		project.PI = *pi
		return nil
	})

	if err != nil {
		return nil, err
	}

	return &project, nil
}

func (s *ProjectService) UpdateStatus(actor types.Identity, id string, status models.ProjectStatus) (*models.Project, error) {
	if !policy.Can(actor.Role, policy.OpProjectStatus) {
		return nil, apperrors.Forbidden("Insufficient permissions")
	}

	var project models.Project

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("PI").First(&project, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("Project not found")
			}
			return fmt.Errorf("fetching project: %w", err)
		}

		project.Status = status

		if err := tx.Omit(clause.Associations).Save(&project).Error; err != nil {
			return fmt.Errorf("updating project status: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return &project, nil
}

// Delete removes a project. With cascade enabled its milestones and
// documents go with it in the same transaction; with cascade disabled
// the delete is refused while children exist.
func (s *ProjectService) Delete(actor types.Identity, id string) error {
	if !policy.Can(actor.Role, policy.OpProjectDelete) {
		return apperrors.Forbidden("Insufficient permissions")
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var project models.Project

		if err := tx.First(&project, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("Project not found")
			}
			return fmt.Errorf("fetching project: %w", err)
		}

		if !s.cascadeDelete {
			var children int64

			if err := tx.Model(&models.Milestone{}).Where("project_id = ?", id).Count(&children).Error; err != nil {
				return fmt.Errorf("counting milestones: %w", err)
			}

			if children == 0 {
				if err := tx.Model(&models.Document{}).Where("project_id = ?", id).Count(&children).Error; err != nil {
					return fmt.Errorf("counting documents: %w", err)
				}
			}

			if children > 0 {
				return apperrors.InvalidOperation("Project still has milestones or documents")
			}
		}

		if err := tx.Where("project_id = ?", id).Delete(&models.Milestone{}).Error; err != nil {
			return fmt.Errorf("deleting milestones: %w", err)
		}

		if err := tx.Where("project_id = ?", id).Delete(&models.Document{}).Error; err != nil {
			return fmt.Errorf("deleting documents: %w", err)
		}

		if err := tx.Delete(&project).Error; err != nil {
			return fmt.Errorf("deleting project: %w", err)
		}

		return nil
	})
}

func findPI(tx *gorm.DB, id string) (*models.User, error) {
	var pi models.User

	if err := tx.First(&pi, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Principal Investigator not found")
		}
		return nil, fmt.Errorf("fetching principal investigator: %w", err)
	}

	return &pi, nil
}

func validateDates(start time.Time, end *time.Time) error {
	if end != nil && end.Before(start) {
		return apperrors.InvalidOperation("End date must not be before start date")
	}
	return nil
}

func toDate(t *time.Time) *datatypes.Date {
	if t == nil {
		return nil
	}
	d := datatypes.Date(*t)
	return &d
}
