package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/trackr-dev/trackr/internal/apperrors"
	"github.com/trackr-dev/trackr/internal/types"
)

// respondError maps error kinds to HTTP status codes. The kinds are
// the core's failure vocabulary; anything unrecognized is a 500.
func respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrConflict):
		ctx.JSON(http.StatusConflict, types.Error(err.Error()))
	case errors.Is(err, apperrors.ErrUnauthenticated):
		ctx.JSON(http.StatusUnauthorized, types.Error(err.Error()))
	case errors.Is(err, apperrors.ErrForbidden):
		ctx.JSON(http.StatusForbidden, types.Error(err.Error()))
	case errors.Is(err, apperrors.ErrNotFound):
		ctx.JSON(http.StatusNotFound, types.Error(err.Error()))
	case errors.Is(err, apperrors.ErrInvalidOperation):
		ctx.JSON(http.StatusUnprocessableEntity, types.Error(err.Error()))
	default:
		log.Printf("Unexpected error: %v", err)
		ctx.JSON(http.StatusInternalServerError, types.Error("Internal server error"))
	}
}
