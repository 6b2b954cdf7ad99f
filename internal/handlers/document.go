package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/trackr-dev/trackr/internal/services"
	"github.com/trackr-dev/trackr/internal/types"
	"github.com/trackr-dev/trackr/internal/utils"
)

type DocumentRequest struct {
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description"`
	URLOrPath    string `json:"url_or_path" binding:"required"`
	UploadedByID string `json:"uploaded_by_id" binding:"required"`
}

type DocumentHandler struct {
	documents *services.DocumentService
}

func NewDocumentHandler(documents *services.DocumentService) *DocumentHandler {
	return &DocumentHandler{documents: documents}
}

func (h *DocumentHandler) ListByProject(ctx *gin.Context) {
	identity, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, types.Error("User not authenticated"))
		return
	}

	documents, err := h.documents.ListByProject(identity, ctx.Param("id"))

	if err != nil {
		respondError(ctx, err)
		return
	}

	response := make([]types.DocumentResponse, 0, len(documents))

	for _, document := range documents {
		response = append(response, types.NewDocumentResponse(document))
	}

	ctx.JSON(http.StatusOK, types.Success("Documents retrieved successfully", response))
}

func (h *DocumentHandler) Create(ctx *gin.Context) {
	identity, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, types.Error("User not authenticated"))
		return
	}

	var req DocumentRequest

	if err := ctx.BindJSON(&req); err != nil {
		log.Printf("Failed to bind JSON: %v", err)
		ctx.JSON(http.StatusBadRequest, types.Error("Invalid request"))
		return
	}

	document, err := h.documents.Create(identity, ctx.Param("id"), services.DocumentInput{
		Title:        req.Title,
		Description:  req.Description,
		URLOrPath:    req.URLOrPath,
		UploadedByID: req.UploadedByID,
	})

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, types.Success("Document created successfully", types.NewDocumentResponse(*document)))
}

func (h *DocumentHandler) Delete(ctx *gin.Context) {
	identity, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, types.Error("User not authenticated"))
		return
	}

	if err := h.documents.Delete(identity, ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, types.Success("Document deleted successfully", nil))
}
