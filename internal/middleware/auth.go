package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/trackr-dev/trackr/db"
	"github.com/trackr-dev/trackr/internal/auth"
	"github.com/trackr-dev/trackr/internal/models"
	"github.com/trackr-dev/trackr/internal/types"
)

// AuthMiddleware validates the Bearer token and resolves the caller
// into the request context. The user row is re-fetched so tokens of
// deleted users stop working immediately.
func AuthMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader("Authorization")

		if authHeader == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, types.Error("Authorization token is required"))
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)

		if len(parts) != 2 || parts[0] != "Bearer" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, types.Error("Authorization header format must be Bearer {token}"))
			return
		}

		claims, err := auth.VerifyJWT(parts[1])

		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, types.Error("Invalid or expired token"))
			return
		}

		var user models.User

		if err := db.DB.Where("id = ?", claims.Subject).First(&user).Error; err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, types.Error("User not found"))
			return
		}

		ctx.Set(types.ContextUserKey, types.Identity{
			UserID:   user.ID,
			Username: user.Username,
			FullName: user.FullName,
			Role:     user.Role,
		})
		ctx.Next()
	}
}
