// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/marcus-savings/backend/internal/application/usecase/goal"
	domainerror "github.com/marcus-savings/backend/internal/domain/error"
	"github.com/marcus-savings/backend/internal/integration/entrypoint/dto"
)

// GoalController handles goal endpoints.
type GoalController struct {
	listUseCase        *goal.ListGoalsUseCase
	createUseCase      *goal.CreateGoalUseCase
	getUseCase         *goal.GetGoalUseCase
	updateUseCase      *goal.UpdateGoalUseCase
	deleteUseCase      *goal.DeleteGoalUseCase
	addProgressUseCase *goal.AddProgressUseCase
}

// NewGoalController creates a new goal controller instance.
func NewGoalController(
	listUseCase *goal.ListGoalsUseCase,
	createUseCase *goal.CreateGoalUseCase,
	getUseCase *goal.GetGoalUseCase,
	updateUseCase *goal.UpdateGoalUseCase,
	deleteUseCase *goal.DeleteGoalUseCase,
	addProgressUseCase *goal.AddProgressUseCase,
) *GoalController {
	return &GoalController{
		listUseCase:        listUseCase,
		createUseCase:      createUseCase,
		getUseCase:         getUseCase,
		updateUseCase:      updateUseCase,
		deleteUseCase:      deleteUseCase,
		addProgressUseCase: addProgressUseCase,
	}
}

// List handles GET /goals requests.
func (c *GoalController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToGoalListResponse(output.Goals))
}

// Create handles POST /goals requests.
func (c *GoalController) Create(ctx *gin.Context) {
	var req dto.CreateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := goal.CreateGoalInput{
		Name:         req.Name,
		Category:     req.Category,
		TargetAmount: dto.AmountString(req.TargetAmount),
		EndDate:      req.EndDate,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToGoalResponse(output.Goal))
}

// Get handles GET /goals/:id requests.
func (c *GoalController) Get(ctx *gin.Context) {
	goalID, ok := parseGoalID(ctx)
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), goal.GetGoalInput{GoalID: goalID})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalResponse(output.Goal))
}

// Update handles PATCH /goals/:id requests.
func (c *GoalController) Update(ctx *gin.Context) {
	goalID, ok := parseGoalID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := goal.UpdateGoalInput{
		GoalID:   goalID,
		Name:     req.Name,
		Category: req.Category,
		EndDate:  req.EndDate,
	}
	if req.TargetAmount != nil {
		amount := req.TargetAmount.String()
		input.TargetAmount = &amount
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalResponse(output.Goal))
}

// Delete handles DELETE /goals/:id requests. Deleting an unknown goal is a
// no-op and still returns 204.
func (c *GoalController) Delete(ctx *gin.Context) {
	goalID, ok := parseGoalID(ctx)
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), goal.DeleteGoalInput{GoalID: goalID}); err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// AddProgress handles POST /goals/:id/progress requests.
func (c *GoalController) AddProgress(ctx *gin.Context) {
	goalID, ok := parseGoalID(ctx)
	if !ok {
		return
	}

	var req dto.AddProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := goal.AddProgressInput{
		GoalID: goalID,
		Amount: dto.AmountString(req.Amount),
	}

	output, err := c.addProgressUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalResponse(output.Goal))
}

// handleGoalError maps domain errors to HTTP status codes.
func (c *GoalController) handleGoalError(ctx *gin.Context, err error) {
	var validationErr *domainerror.ValidationError
	if errors.As(err, &validationErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:  validationErr.Message,
			Code:   string(validationErr.Code),
			Fields: validationErr.Fields,
		})
		return
	}

	if errors.Is(err, domainerror.ErrGoalNotFound) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Goal not found",
			Code:  string(domainerror.ErrCodeGoalNotFound),
		})
		return
	}

	if errors.Is(err, domainerror.ErrGoalCompleted) {
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{
			Error: "Cannot add progress to completed goal",
			Code:  string(domainerror.ErrCodeGoalCompleted),
		})
		return
	}

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

func parseGoalID(ctx *gin.Context) (uuid.UUID, bool) {
	goalID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid goal ID format",
		})
		return uuid.Nil, false
	}
	return goalID, true
}
