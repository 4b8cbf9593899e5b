package entity

import "time"

// Preferences holds the user's display and notification preferences.
type Preferences struct {
	Theme         string
	Currency      string
	DateFormat    string
	Notifications bool
}

// Profile represents the single local user of the tracker.
type Profile struct {
	Name        string
	JoinDate    time.Time
	Avatar      string
	Preferences Preferences
}

// DefaultProfile returns the profile used before the user has saved one.
func DefaultProfile() *Profile {
	return &Profile{
		Name:     "Marcus",
		JoinDate: time.Now().UTC(),
		Avatar:   "👤",
		Preferences: Preferences{
			Theme:         "light",
			Currency:      "$",
			DateFormat:    "MM/DD/YYYY",
			Notifications: true,
		},
	}
}

// Settings holds page-level display settings persisted separately from the
// profile for compatibility with the original storage layout.
type Settings struct {
	Theme      string
	Currency   string
	DateFormat string
}

// DefaultSettings returns the settings used before the user has saved any.
func DefaultSettings() *Settings {
	return &Settings{
		Theme:      "light",
		Currency:   "$",
		DateFormat: "MM/DD/YYYY",
	}
}
