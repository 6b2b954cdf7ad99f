package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/trackr-dev/trackr/internal/services"
	"github.com/trackr-dev/trackr/internal/types"
	"github.com/trackr-dev/trackr/internal/utils"
)

type SignupRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	FullName string `json:"full_name" binding:"required"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthHandler struct {
	auth  *services.AuthService
	users *services.UserService
}

func NewAuthHandler(auth *services.AuthService, users *services.UserService) *AuthHandler {
	return &AuthHandler{auth: auth, users: users}
}

func (h *AuthHandler) Signup(ctx *gin.Context) {
	var req SignupRequest

	if err := ctx.BindJSON(&req); err != nil {
		log.Printf("Failed to bind JSON: %v", err)
		ctx.JSON(http.StatusBadRequest, types.Error("Invalid request"))
		return
	}

	req.Username = strings.TrimSpace(req.Username)

	user, token, err := h.auth.Signup(req.Username, req.Password, req.FullName)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, types.Success("User registered successfully", types.AuthResponse{
		Token: token,
		User:  types.NewUserResponse(*user),
	}))
}

func (h *AuthHandler) Login(ctx *gin.Context) {
	var req LoginRequest

	if err := ctx.BindJSON(&req); err != nil {
		log.Printf("Failed to bind JSON: %v", err)
		ctx.JSON(http.StatusBadRequest, types.Error("Invalid request"))
		return
	}

	user, token, err := h.auth.Login(req.Username, req.Password)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, types.Success("Login successful", types.AuthResponse{
		Token: token,
		User:  types.NewUserResponse(*user),
	}))
}

func (h *AuthHandler) Me(ctx *gin.Context) {
	identity, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, types.Error("User not authenticated"))
		return
	}

	user, err := h.users.Get(identity, identity.UserID)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, types.Success("Authenticated user", types.NewUserResponse(*user)))
}
