package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/trackr-dev/trackr/internal/services"
	"github.com/trackr-dev/trackr/internal/types"
	"github.com/trackr-dev/trackr/internal/utils"
)

type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

type UserHandler struct {
	users *services.UserService
}

func NewUserHandler(users *services.UserService) *UserHandler {
	return &UserHandler{users: users}
}

func (h *UserHandler) List(ctx *gin.Context) {
	identity, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, types.Error("User not authenticated"))
		return
	}

	users, err := h.users.List(identity)

	if err != nil {
		respondError(ctx, err)
		return
	}

	response := make([]types.UserResponse, 0, len(users))

	for _, user := range users {
		response = append(response, types.NewUserResponse(user))
	}

	ctx.JSON(http.StatusOK, types.Success("Users retrieved successfully", response))
}

func (h *UserHandler) Get(ctx *gin.Context) {
	identity, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, types.Error("User not authenticated"))
		return
	}

	user, err := h.users.Get(identity, ctx.Param("id"))

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, types.Success("User retrieved successfully", types.NewUserResponse(*user)))
}

func (h *UserHandler) UpdateRole(ctx *gin.Context) {
	identity, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, types.Error("User not authenticated"))
		return
	}

	var req UpdateRoleRequest

	if err := ctx.BindJSON(&req); err != nil {
		log.Printf("Failed to bind JSON: %v", err)
		ctx.JSON(http.StatusBadRequest, types.Error("Invalid request"))
		return
	}

	user, err := h.users.UpdateRole(identity, ctx.Param("id"), req.Role)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, types.Success("User role updated successfully", types.NewUserResponse(*user)))
}

func (h *UserHandler) Delete(ctx *gin.Context) {
	identity, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, types.Error("User not authenticated"))
		return
	}

	if err := h.users.Delete(identity, ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, types.Success("User deleted successfully", nil))
}
