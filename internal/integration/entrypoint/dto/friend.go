package dto

import (
	"github.com/marcus-savings/backend/internal/application/usecase/friend"
	"github.com/marcus-savings/backend/internal/domain/entity"
)

// FriendGoalResponse represents one of a friend's goal summaries.
type FriendGoalResponse struct {
	Name     string  `json:"name"`
	Progress int     `json:"progress"`
	Amount   float64 `json:"amount"`
	Target   float64 `json:"target"`
}

// FriendResponse represents one friend record.
type FriendResponse struct {
	ID             string               `json:"id"`
	Name           string               `json:"name"`
	Avatar         string               `json:"avatar"`
	JoinedDate     string               `json:"joinedDate"`
	TotalSaved     float64              `json:"totalSaved"`
	ActiveGoals    int                  `json:"activeGoals"`
	CompletedGoals int                  `json:"completedGoals"`
	CurrentGoals   []FriendGoalResponse `json:"currentGoals"`
	Achievements   []string             `json:"achievements"`
	LastActive     string               `json:"lastActive"`
}

// FriendListResponse represents the friend collection.
type FriendListResponse struct {
	Friends []FriendResponse `json:"friends"`
}

// FriendsStatsResponse represents the friends page totals.
type FriendsStatsResponse struct {
	TotalFriends        int              `json:"totalFriends"`
	TotalActiveGoals    int              `json:"totalActiveGoals"`
	TotalCompletedGoals int              `json:"totalCompletedGoals"`
	Friends             []FriendResponse `json:"friends"`
}

// InviteResponse represents a generated friend invite.
type InviteResponse struct {
	Code      string `json:"code"`
	ShareURL  string `json:"shareUrl"`
	ShareText string `json:"shareText"`
}

// ToFriendResponse converts a domain Friend to its DTO.
func ToFriendResponse(f *entity.Friend) FriendResponse {
	goals := make([]FriendGoalResponse, len(f.CurrentGoals))
	for i, g := range f.CurrentGoals {
		goals[i] = FriendGoalResponse{
			Name:     g.Name,
			Progress: g.Progress,
			Amount:   g.Amount.InexactFloat64(),
			Target:   g.Target.InexactFloat64(),
		}
	}

	return FriendResponse{
		ID:             f.ID,
		Name:           f.Name,
		Avatar:         f.Avatar,
		JoinedDate:     f.JoinedDate.Format("2006-01-02"),
		TotalSaved:     f.TotalSaved.InexactFloat64(),
		ActiveGoals:    f.ActiveGoals,
		CompletedGoals: f.CompletedGoals,
		CurrentGoals:   goals,
		Achievements:   f.Achievements,
		LastActive:     f.LastActive.Format("2006-01-02"),
	}
}

// ToFriendListResponse converts a friend collection to its DTO.
func ToFriendListResponse(friends []*entity.Friend) FriendListResponse {
	response := FriendListResponse{
		Friends: make([]FriendResponse, len(friends)),
	}
	for i, f := range friends {
		response.Friends[i] = ToFriendResponse(f)
	}
	return response
}

// ToFriendsStatsResponse converts friends stats to their DTO.
func ToFriendsStatsResponse(s *friend.FriendsStats) FriendsStatsResponse {
	response := FriendsStatsResponse{
		TotalFriends:        s.TotalFriends,
		TotalActiveGoals:    s.TotalActiveGoals,
		TotalCompletedGoals: s.TotalCompletedGoals,
		Friends:             make([]FriendResponse, len(s.Friends)),
	}
	for i, f := range s.Friends {
		response.Friends[i] = ToFriendResponse(f)
	}
	return response
}

// ToInviteResponse converts a generated invite to its DTO.
func ToInviteResponse(output *friend.CreateInviteOutput) InviteResponse {
	return InviteResponse{
		Code:      output.Code,
		ShareURL:  output.ShareURL,
		ShareText: output.ShareText,
	}
}
