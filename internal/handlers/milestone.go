package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/trackr-dev/trackr/internal/services"
	"github.com/trackr-dev/trackr/internal/types"
	"github.com/trackr-dev/trackr/internal/utils"
)

type MilestoneRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	DueDate     string `json:"due_date" binding:"required"`
	IsCompleted *bool  `json:"is_completed"`
	CreatedByID string `json:"created_by_id" binding:"required"`
}

type MilestoneHandler struct {
	milestones *services.MilestoneService
}

func NewMilestoneHandler(milestones *services.MilestoneService) *MilestoneHandler {
	return &MilestoneHandler{milestones: milestones}
}

func (r MilestoneRequest) toInput() (services.MilestoneInput, error) {
	dueDate, err := time.Parse(dateLayout, r.DueDate)

	if err != nil {
		return services.MilestoneInput{}, err
	}

	return services.MilestoneInput{
		Title:       r.Title,
		Description: r.Description,
		DueDate:     dueDate,
		IsCompleted: r.IsCompleted,
		CreatedByID: r.CreatedByID,
	}, nil
}

func (h *MilestoneHandler) ListByProject(ctx *gin.Context) {
	identity, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, types.Error("User not authenticated"))
		return
	}

	milestones, err := h.milestones.ListByProject(identity, ctx.Param("id"))

	if err != nil {
		respondError(ctx, err)
		return
	}

	response := make([]types.MilestoneResponse, 0, len(milestones))

	for _, milestone := range milestones {
		response = append(response, types.NewMilestoneResponse(milestone))
	}

	ctx.JSON(http.StatusOK, types.Success("Milestones retrieved successfully", response))
}

func (h *MilestoneHandler) Create(ctx *gin.Context) {
	identity, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, types.Error("User not authenticated"))
		return
	}

	var req MilestoneRequest

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

	milestone, err := h.milestones.Create(identity, ctx.Param("id"), input)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, types.Success("Milestone created successfully", types.NewMilestoneResponse(*milestone)))
}

func (h *MilestoneHandler) Update(ctx *gin.Context) {
	identity, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, types.Error("User not authenticated"))
		return
	}

	var req MilestoneRequest

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

	milestone, err := h.milestones.Update(identity, ctx.Param("id"), input)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, types.Success("Milestone updated successfully", types.NewMilestoneResponse(*milestone)))
}

func (h *MilestoneHandler) Delete(ctx *gin.Context) {
	identity, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, types.Error("User not authenticated"))
		return
	}

	if err := h.milestones.Delete(identity, ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, types.Success("Milestone deleted successfully", nil))
}
