package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/trackr-dev/trackr/internal/models"
	"github.com/trackr-dev/trackr/internal/services"
	"github.com/trackr-dev/trackr/internal/types"
	"github.com/trackr-dev/trackr/internal/utils"
)

const dateLayout = "2006-01-02"

type ProjectRequest struct {
	Title     string `json:"title" binding:"required"`
	Summary   string `json:"summary"`
	Status    string `json:"status" binding:"required,oneof=PLANNING ACTIVE ON_HOLD COMPLETED ARCHIVED"`
	PIID      string `json:"pi_id"`
	Tags      string `json:"tags"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=PLANNING ACTIVE ON_HOLD COMPLETED ARCHIVED"`
}

type ProjectHandler struct {
	projects *services.ProjectService
}

func NewProjectHandler(projects *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projects: projects}
}

func (r ProjectRequest) toInput() (services.ProjectInput, error) {
	startDate, err := time.Parse(dateLayout, r.StartDate)

	if err != nil {
		return services.ProjectInput{}, err
	}

	var endDate *time.Time

	if r.EndDate != "" {
		parsed, err := time.Parse(dateLayout, r.EndDate)

		if err != nil {
			return services.ProjectInput{}, err
		}

		endDate = &parsed
	}

	// oneof validation already rejected unknown statuses
	status, _ := models.ParseProjectStatus(r.Status)

	return services.ProjectInput{
		Title:     r.Title,
		Summary:   r.Summary,
		Status:    status,
		PIID:      r.PIID,
		Tags:      r.Tags,
		StartDate: startDate,
		EndDate:   endDate,
	}, nil
}

func (h *ProjectHandler) List(ctx *gin.Context) {
	identity, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, types.Error("User not authenticated"))
		return
	}

	projects, err := h.projects.List(identity)

	if err != nil {
		respondError(ctx, err)
		return
	}

	response := make([]types.ProjectResponse, 0, len(projects))

	for _, project := range projects {
		response = append(response, types.NewProjectResponse(project))
	}

	ctx.JSON(http.StatusOK, types.Success("Projects retrieved successfully", response))
}

func (h *ProjectHandler) Get(ctx *gin.Context) {
	identity, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, types.Error("User not authenticated"))
		return
	}

	project, err := h.projects.Get(identity, ctx.Param("id"))

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, types.Success("Project retrieved successfully", types.NewProjectResponse(*project)))
}

func (h *ProjectHandler) Create(ctx *gin.Context) {
	identity, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, types.Error("User not authenticated"))
		return
	}

	var req ProjectRequest

	if err := ctx.BindJSON(&req); err != nil {
		log.Printf("Failed to bind JSON: %v", err)
		ctx.JSON(http.StatusBadRequest, types.Error("Invalid request"))
		return
	}

	input, err := req.toInput()

	if err != nil {
		ctx.JSON(http.StatusBadRequest, types.Error("Dates must use the YYYY-MM-DD format"))
		return
	}

	project, err := h.projects.Create(identity, input)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, types.Success("Project created successfully", types.NewProjectResponse(*project)))
}

func (h *ProjectHandler) Update(ctx *gin.Context) {
	identity, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, types.Error("User not authenticated"))
		return
	}

	var req ProjectRequest

	if err := ctx.BindJSON(&req); err != nil {
		log.Printf("Failed to bind JSON: %v", err)
		ctx.JSON(http.StatusBadRequest, types.Error("Invalid request"))
		return
	}

	input, err := req.toInput()

	if err != nil {
		ctx.JSON(http.StatusBadRequest, types.Error("Dates must use the YYYY-MM-DD format"))
		return
	}

	project, err := h.projects.Update(identity, ctx.Param("id"), input)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, types.Success("Project updated successfully", types.NewProjectResponse(*project)))
}

func (h *ProjectHandler) UpdateStatus(ctx *gin.Context) {
	identity, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, types.Error("User not authenticated"))
		return
	}

	var req UpdateStatusRequest

	if err := ctx.BindJSON(&req); err != nil {
		log.Printf("Failed to bind JSON: %v", err)
		ctx.JSON(http.StatusBadRequest, types.Error("Invalid request"))
		return
	}

	status, _ := models.ParseProjectStatus(req.Status)

	project, err := h.projects.UpdateStatus(identity, ctx.Param("id"), status)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, types.Success("Project status updated successfully", types.NewProjectResponse(*project)))
}

func (h *ProjectHandler) Delete(ctx *gin.Context) {
	identity, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, types.Error("User not authenticated"))
		return
	}

	if err := h.projects.Delete(identity, ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, types.Success("Project deleted successfully", nil))
}
