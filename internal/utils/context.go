package utils

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/trackr-dev/trackr/internal/types"
)

func GetCurrentUser(ctx *gin.Context) (types.Identity, error) {
	user, exists := ctx.Get(types.ContextUserKey)

	if !exists {
		return types.Identity{}, fmt.Errorf("user not authenticated")
	}

	identity, ok := user.(types.Identity)

	if !ok {
		return types.Identity{}, fmt.Errorf("invalid user type in context")
	}

	return identity, nil
}
