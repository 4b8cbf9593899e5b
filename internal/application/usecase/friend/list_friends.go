// Package friend contains use cases for the simulated social layer.
package friend

import (
	"context"
	"fmt"

	"github.com/marcus-savings/backend/internal/application/adapter"
	"github.com/marcus-savings/backend/internal/domain/entity"
)

// ListFriendsOutput represents the output of listing friends.
type ListFriendsOutput struct {
	Friends []*entity.Friend
}

// ListFriendsUseCase handles friend listing.
type ListFriendsUseCase struct {
	friendRepo adapter.FriendRepository
}

// NewListFriendsUseCase creates a new ListFriendsUseCase instance.
func NewListFriendsUseCase(friendRepo adapter.FriendRepository) *ListFriendsUseCase {
	return &ListFriendsUseCase{
		friendRepo: friendRepo,
	}
}

// Execute retrieves the friend records.
func (uc *ListFriendsUseCase) Execute(ctx context.Context) (*ListFriendsOutput, error) {
	friends, err := uc.friendRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list friends: %w", err)
	}
	return &ListFriendsOutput{Friends: friends}, nil
}

// FriendsStats holds the aggregate totals over the friend records.
type FriendsStats struct {
	TotalFriends        int
	TotalActiveGoals    int
	TotalCompletedGoals int
	Friends             []*entity.Friend
}

// GetFriendsStatsUseCase derives the friends page totals.
type GetFriendsStatsUseCase struct {
	friendRepo adapter.FriendRepository
}

// NewGetFriendsStatsUseCase creates a new GetFriendsStatsUseCase instance.
func NewGetFriendsStatsUseCase(friendRepo adapter.FriendRepository) *GetFriendsStatsUseCase {
	return &GetFriendsStatsUseCase{
		friendRepo: friendRepo,
	}
}

// Execute sums active and completed goal counts across all friends.
func (uc *GetFriendsStatsUseCase) Execute(ctx context.Context) (*FriendsStats, error) {
	friends, err := uc.friendRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list friends: %w", err)
	}

	result := &FriendsStats{
		TotalFriends: len(friends),
		Friends:      friends,
	}
	for _, f := range friends {
		result.TotalActiveGoals += f.ActiveGoals
		result.TotalCompletedGoals += f.CompletedGoals
	}
	return result, nil
}
