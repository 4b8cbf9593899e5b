package controller

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/marcus-savings/backend/internal/application/usecase/profile"
	"github.com/marcus-savings/backend/internal/application/usecase/stats"
	"github.com/marcus-savings/backend/internal/integration/entrypoint/dto"
)

// ProfileController handles profile, settings and data management endpoints.
type ProfileController struct {
	getProfileUseCase     *profile.GetProfileUseCase
	profileStatsUseCase   *stats.GetProfileStatsUseCase
	updateSettingsUseCase *profile.UpdateSettingsUseCase
	exportDataUseCase     *profile.ExportDataUseCase
	importDataUseCase     *profile.ImportDataUseCase
	clearDataUseCase      *profile.ClearDataUseCase
}

// NewProfileController creates a new profile controller instance.
func NewProfileController(
	getProfileUseCase *profile.GetProfileUseCase,
	profileStatsUseCase *stats.GetProfileStatsUseCase,
	updateSettingsUseCase *profile.UpdateSettingsUseCase,
	exportDataUseCase *profile.ExportDataUseCase,
	importDataUseCase *profile.ImportDataUseCase,
	clearDataUseCase *profile.ClearDataUseCase,
) *ProfileController {
	return &ProfileController{
		getProfileUseCase:     getProfileUseCase,
		profileStatsUseCase:   profileStatsUseCase,
		updateSettingsUseCase: updateSettingsUseCase,
		exportDataUseCase:     exportDataUseCase,
		importDataUseCase:     importDataUseCase,
		clearDataUseCase:      clearDataUseCase,
	}
}

// GetProfile handles GET /profile requests.
func (c *ProfileController) GetProfile(ctx *gin.Context) {
	output, err := c.getProfileUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleStorageError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToProfileResponse(output.Profile))
}

// GetProfileStats handles GET /profile/stats requests.
func (c *ProfileController) GetProfileStats(ctx *gin.Context) {
	output, err := c.profileStatsUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleStorageError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToProfileStatsResponse(output))
}

// UpdateSettings handles PATCH /profile/settings requests.
func (c *ProfileController) UpdateSettings(ctx *gin.Context) {
	var req dto.UpdateSettingsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := profile.UpdateSettingsInput{
		Theme:         req.Theme,
		Currency:      req.Currency,
		DateFormat:    req.DateFormat,
		Notifications: req.Notifications,
	}

	output, err := c.updateSettingsUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleStorageError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProfileResponse(output.Profile))
}

// ExportData handles GET /profile/export requests. The bundle is served as a
// file download named after the export date.
func (c *ProfileController) ExportData(ctx *gin.Context) {
	output, err := c.exportDataUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleStorageError(ctx, err)
		return
	}

	filename := fmt.Sprintf("marcus-savings-backup-%s.json", output.ExportDate.Format("2006-01-02"))
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	ctx.JSON(http.StatusOK, dto.ToExportDocument(output))
}

// ImportData handles POST /profile/import requests. The uploaded bundle
// replaces all stored data.
func (c *ProfileController) ImportData(ctx *gin.Context) {
	var req dto.ImportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid backup file: " + err.Error(),
		})
		return
	}

	input, err := req.ToImportInput()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid backup file: " + err.Error(),
		})
		return
	}

	if err := c.importDataUseCase.Execute(ctx.Request.Context(), input); err != nil {
		handleStorageError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Data imported successfully"})
}

// ClearData handles DELETE /profile/data requests. All goals, progress,
// settings and profile data are removed.
func (c *ProfileController) ClearData(ctx *gin.Context) {
	if err := c.clearDataUseCase.Execute(ctx.Request.Context()); err != nil {
		handleStorageError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "All data cleared"})
}
