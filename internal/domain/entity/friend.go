package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// FriendGoal is a summary of one of a friend's current goals.
type FriendGoal struct {
	Name     string
	Progress int
	Amount   decimal.Decimal
	Target   decimal.Decimal
}

// Friend represents an entry in the simulated social layer. Friends are
// seeded demo records, not networked accounts.
type Friend struct {
	ID             string
	Name           string
	Avatar         string
	JoinedDate     time.Time
	TotalSaved     decimal.Decimal
	ActiveGoals    int
	CompletedGoals int
	CurrentGoals   []FriendGoal
	Achievements   []string
	LastActive     time.Time
}

// DemoFriends returns the seeded friend records shown on first run.
func DemoFriends() []*Friend {
	return []*Friend{
		{
			ID:             "friend_1",
			Name:           "Sarah Chen",
			Avatar:         "👩‍💼",
			JoinedDate:     date(2025, 8, 15),
			TotalSaved:     decimal.NewFromInt(8500),
			ActiveGoals:    2,
			CompletedGoals: 3,
			CurrentGoals: []FriendGoal{
				{Name: "Emergency Fund", Progress: 85, Amount: decimal.NewFromInt(8500), Target: decimal.NewFromInt(10000)},
				{Name: "Vacation to Japan", Progress: 45, Amount: decimal.NewFromInt(2250), Target: decimal.NewFromInt(5000)},
			},
			Achievements: []string{"First Goal", "Consistent Saver", "Goal Crusher"},
			LastActive:   date(2025, 9, 20),
		},
		{
			ID:             "friend_2",
			Name:           "Alex Rodriguez",
			Avatar:         "👨‍🎨",
			JoinedDate:     date(2025, 7, 22),
			TotalSaved:     decimal.NewFromInt(12300),
			ActiveGoals:    3,
			CompletedGoals: 2,
			CurrentGoals: []FriendGoal{
				{Name: "New Car Fund", Progress: 67, Amount: decimal.NewFromInt(10050), Target: decimal.NewFromInt(15000)},
				{Name: "Wedding Ring", Progress: 90, Amount: decimal.NewFromInt(2250), Target: decimal.NewFromInt(2500)},
				{Name: "Photography Equipment", Progress: 12, Amount: decimal.NewFromInt(120), Target: decimal.NewFromInt(1000)},
			},
			Achievements: []string{"First Goal", "Big Saver", "Milestone Master"},
			LastActive:   date(2025, 9, 22),
		},
		{
			ID:             "friend_3",
			Name:           "Maya Patel",
			Avatar:         "👩‍🔬",
			JoinedDate:     date(2025, 9, 1),
			TotalSaved:     decimal.NewFromInt(3200),
			ActiveGoals:    1,
			CompletedGoals: 1,
			CurrentGoals: []FriendGoal{
				{Name: "Home Down Payment", Progress: 16, Amount: decimal.NewFromInt(3200), Target: decimal.NewFromInt(20000)},
			},
			Achievements: []string{"First Goal", "Rising Star"},
			LastActive:   date(2025, 9, 23),
		},
		{
			ID:             "friend_4",
			Name:           "Jordan Kim",
			Avatar:         "👨‍💻",
			JoinedDate:     date(2025, 6, 10),
			TotalSaved:     decimal.NewFromInt(15600),
			ActiveGoals:    2,
			CompletedGoals: 5,
			CurrentGoals: []FriendGoal{
				{Name: "Startup Investment", Progress: 78, Amount: decimal.NewFromInt(7800), Target: decimal.NewFromInt(10000)},
				{Name: "Tech Conference Fund", Progress: 100, Amount: decimal.NewFromInt(1500), Target: decimal.NewFromInt(1500)},
			},
			Achievements: []string{"First Goal", "Consistent Saver", "Goal Crusher", "Big Saver", "Milestone Master"},
			LastActive:   date(2025, 9, 23),
		},
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
