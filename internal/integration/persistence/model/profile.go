package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/marcus-savings/backend/internal/domain/entity"
)

// ProfileRecord is the JSON shape of the profile document.
type ProfileRecord struct {
	Name        string            `json:"name"`
	JoinDate    string            `json:"joinDate"`
	Avatar      string            `json:"avatar"`
	Preferences PreferencesRecord `json:"preferences"`
}

// PreferencesRecord is the JSON shape of the user preferences.
type PreferencesRecord struct {
	Theme         string `json:"theme"`
	Currency      string `json:"currency"`
	DateFormat    string `json:"dateFormat"`
	Notifications bool   `json:"notifications"`
}

// SettingsRecord is the JSON shape of the settings document.
type SettingsRecord struct {
	Theme      string `json:"theme"`
	Currency   string `json:"currency"`
	DateFormat string `json:"dateFormat"`
}

// ToEntity converts a ProfileRecord to a domain Profile.
func (r *ProfileRecord) ToEntity() *entity.Profile {
	joinDate, err := time.Parse(dateLayout, r.JoinDate)
	if err != nil {
		joinDate = time.Time{}
	}
	return &entity.Profile{
		Name:     r.Name,
		JoinDate: joinDate,
		Avatar:   r.Avatar,
		Preferences: entity.Preferences{
			Theme:         r.Preferences.Theme,
			Currency:      r.Preferences.Currency,
			DateFormat:    r.Preferences.DateFormat,
			Notifications: r.Preferences.Notifications,
		},
	}
}

// ProfileFromEntity creates a ProfileRecord from a domain Profile.
func ProfileFromEntity(profile *entity.Profile) ProfileRecord {
	return ProfileRecord{
		Name:     profile.Name,
		JoinDate: profile.JoinDate.Format(dateLayout),
		Avatar:   profile.Avatar,
		Preferences: PreferencesRecord{
			Theme:         profile.Preferences.Theme,
			Currency:      profile.Preferences.Currency,
			DateFormat:    profile.Preferences.DateFormat,
			Notifications: profile.Preferences.Notifications,
		},
	}
}

// ToEntity converts a SettingsRecord to domain Settings.
func (r *SettingsRecord) ToEntity() *entity.Settings {
	return &entity.Settings{
		Theme:      r.Theme,
		Currency:   r.Currency,
		DateFormat: r.DateFormat,
	}
}

// SettingsFromEntity creates a SettingsRecord from domain Settings.
func SettingsFromEntity(settings *entity.Settings) SettingsRecord {
	return SettingsRecord{
		Theme:      settings.Theme,
		Currency:   settings.Currency,
		DateFormat: settings.DateFormat,
	}
}

// FriendRecord is the JSON shape of one friend in the friends document.
type FriendRecord struct {
	ID             string             `json:"id"`
	Name           string             `json:"name"`
	Avatar         string             `json:"avatar"`
	JoinedDate     string             `json:"joinedDate"`
	TotalSaved     decimal.Decimal    `json:"totalSaved"`
	ActiveGoals    int                `json:"activeGoals"`
	CompletedGoals int                `json:"completedGoals"`
	CurrentGoals   []FriendGoalRecord `json:"currentGoals"`
	Achievements   []string           `json:"achievements"`
	LastActive     string             `json:"lastActive"`
}

// FriendGoalRecord is the JSON shape of one of a friend's goal summaries.
type FriendGoalRecord struct {
	Name     string          `json:"name"`
	Progress int             `json:"progress"`
	Amount   decimal.Decimal `json:"amount"`
	Target   decimal.Decimal `json:"target"`
}

// ToEntity converts a FriendRecord to a domain Friend.
func (r *FriendRecord) ToEntity() *entity.Friend {
	joined, _ := time.Parse(dateLayout, r.JoinedDate)
	lastActive, _ := time.Parse(dateLayout, r.LastActive)

	goals := make([]entity.FriendGoal, len(r.CurrentGoals))
	for i, g := range r.CurrentGoals {
		goals[i] = entity.FriendGoal{
			Name:     g.Name,
			Progress: g.Progress,
			Amount:   g.Amount,
			Target:   g.Target,
		}
	}

	return &entity.Friend{
		ID:             r.ID,
		Name:           r.Name,
		Avatar:         r.Avatar,
		JoinedDate:     joined,
		TotalSaved:     r.TotalSaved,
		ActiveGoals:    r.ActiveGoals,
		CompletedGoals: r.CompletedGoals,
		CurrentGoals:   goals,
		Achievements:   r.Achievements,
		LastActive:     lastActive,
	}
}

// FriendFromEntity creates a FriendRecord from a domain Friend.
func FriendFromEntity(friend *entity.Friend) FriendRecord {
	goals := make([]FriendGoalRecord, len(friend.CurrentGoals))
	for i, g := range friend.CurrentGoals {
		goals[i] = FriendGoalRecord{
			Name:     g.Name,
			Progress: g.Progress,
			Amount:   g.Amount,
			Target:   g.Target,
		}
	}

	return FriendRecord{
		ID:             friend.ID,
		Name:           friend.Name,
		Avatar:         friend.Avatar,
		JoinedDate:     friend.JoinedDate.Format(dateLayout),
		TotalSaved:     friend.TotalSaved,
		ActiveGoals:    friend.ActiveGoals,
		CompletedGoals: friend.CompletedGoals,
		CurrentGoals:   goals,
		Achievements:   friend.Achievements,
		LastActive:     friend.LastActive.Format(dateLayout),
	}
}
