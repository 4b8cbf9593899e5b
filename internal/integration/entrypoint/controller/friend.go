package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/marcus-savings/backend/internal/application/usecase/friend"
	"github.com/marcus-savings/backend/internal/integration/entrypoint/dto"
)

// FriendController handles friend and invite endpoints.
type FriendController struct {
	listUseCase   *friend.ListFriendsUseCase
	statsUseCase  *friend.GetFriendsStatsUseCase
	inviteUseCase *friend.CreateInviteUseCase
}

// NewFriendController creates a new friend controller instance.
func NewFriendController(
	listUseCase *friend.ListFriendsUseCase,
	statsUseCase *friend.GetFriendsStatsUseCase,
	inviteUseCase *friend.CreateInviteUseCase,
) *FriendController {
	return &FriendController{
		listUseCase:   listUseCase,
		statsUseCase:  statsUseCase,
		inviteUseCase: inviteUseCase,
	}
}

// List handles GET /friends requests.
func (c *FriendController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleStorageError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToFriendListResponse(output.Friends))
}

// GetStats handles GET /friends/stats requests.
func (c *FriendController) GetStats(ctx *gin.Context) {
	output, err := c.statsUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleStorageError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToFriendsStatsResponse(output))
}

// CreateInvite handles POST /friends/invite requests.
func (c *FriendController) CreateInvite(ctx *gin.Context) {
	output, err := c.inviteUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleStorageError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.ToInviteResponse(output))
}
