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

type DocumentInput struct {
	Title        string
	Description  string
	URLOrPath    string
	UploadedByID string
}

type DocumentService struct {
	db *gorm.DB
}

func NewDocumentService(db *gorm.DB) *DocumentService {
	return &DocumentService{db: db}
}

func (s *DocumentService) ListByProject(actor types.Identity, projectID string) ([]models.Document, error) {
	if !policy.Can(actor.Role, policy.OpRead) {
		return nil, apperrors.Forbidden("Insufficient permissions")
	}

	if err := findProject(s.db, projectID); err != nil {
		return nil, err
	}

	var documents []models.Document

	if err := s.db.Preload("UploadedBy").Where("project_id = ?", projectID).Order("uploaded_at").Find(&documents).Error; err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}

	return documents, nil
}

func (s *DocumentService) Create(actor types.Identity, projectID string, input DocumentInput) (*models.Document, error) {
	if !policy.Can(actor.Role, policy.OpDocumentCreate) {
		return nil, apperrors.Forbidden("Insufficient permissions")
	}

	var document models.Document

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := findProject(tx, projectID); err != nil {
			return err
		}

		uploadedBy, err := findUser(tx, input.UploadedByID)

		if err != nil {
			return err
		}

		document = models.Document{
			ProjectID:    projectID,
			Title:        input.Title,
			Description:  input.Description,
			URLOrPath:    input.URLOrPath,
			UploadedByID: uploadedBy.ID,
		}

		if err := tx.Create(&document).Error; err != nil {
			return fmt.Errorf("creating document: %w", err)
		}

		document.UploadedBy = *uploadedBy
		return nil
	})

	if err != nil {
		return nil, err
	}

	return &document, nil
}

func (s *DocumentService) Delete(actor types.Identity, id string) error {
	if !policy.Can(actor.Role, policy.OpDocumentDelete) {
		return apperrors.Forbidden("Insufficient permissions")
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var document models.Document

		if err := tx.First(&document, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("Document not found")
			}
			return fmt.Errorf("fetching document: %w", err)
		}

		if err := tx.Delete(&document).Error; err != nil {
			return fmt.Errorf("deleting document: %w", err)
		}

		return nil
	})
}
