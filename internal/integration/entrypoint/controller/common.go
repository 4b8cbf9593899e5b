package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerror "github.com/marcus-savings/backend/internal/domain/error"
	"github.com/marcus-savings/backend/internal/integration/entrypoint/dto"
)

// handleStorageError maps read-path failures to HTTP status codes for
// endpoints that only touch storage.
func handleStorageError(ctx *gin.Context, err error) {
	if errors.Is(err, domainerror.ErrStorageUnavailable) {
		ctx.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{
			Error: "Storage unavailable",
			Code:  string(domainerror.ErrCodeStorageUnavailable),
		})
		return
	}
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "Internal server error",
	})
}
