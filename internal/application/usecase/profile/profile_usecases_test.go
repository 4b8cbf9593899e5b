package profile

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/marcus-savings/backend/internal/domain/entity"
)

// fakeProfileRepository is an in-memory ProfileRepository for use case tests.
type fakeProfileRepository struct {
	profile  *entity.Profile
	settings *entity.Settings
}

func (r *fakeProfileRepository) GetProfile(ctx context.Context) (*entity.Profile, error) {
	if r.profile == nil {
		return entity.DefaultProfile(), nil
	}
	return r.profile, nil
}

func (r *fakeProfileRepository) SaveProfile(ctx context.Context, profile *entity.Profile) error {
	r.profile = profile
	return nil
}

func (r *fakeProfileRepository) GetSettings(ctx context.Context) (*entity.Settings, error) {
	if r.settings == nil {
		return entity.DefaultSettings(), nil
	}
	return r.settings, nil
}

func (r *fakeProfileRepository) SaveSettings(ctx context.Context, settings *entity.Settings) error {
	r.settings = settings
	return nil
}

func (r *fakeProfileRepository) Clear(ctx context.Context) error {
	r.profile = nil
	r.settings = nil
	return nil
}

// fakeGoalRepository carries just enough state for the data management tests.
type fakeGoalRepository struct {
	goals    []*entity.Goal
	progress []entity.ProgressEntry
}

func (r *fakeGoalRepository) List(ctx context.Context) ([]*entity.Goal, error) {
	return r.goals, nil
}

func (r *fakeGoalRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error) {
	return nil, nil
}

func (r *fakeGoalRepository) Upsert(ctx context.Context, goal *entity.Goal) error {
	r.goals = append(r.goals, goal)
	return nil
}

func (r *fakeGoalRepository) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (r *fakeGoalRepository) ListProgress(ctx context.Context) ([]entity.ProgressEntry, error) {
	return r.progress, nil
}

func (r *fakeGoalRepository) SaveWithProgress(ctx context.Context, goal *entity.Goal, entry entity.ProgressEntry) error {
	r.progress = append(r.progress, entry)
	return nil
}

func (r *fakeGoalRepository) ReplaceAll(ctx context.Context, goals []*entity.Goal, progress []entity.ProgressEntry) error {
	r.goals = goals
	r.progress = progress
	return nil
}

func (r *fakeGoalRepository) Clear(ctx context.Context) error {
	r.goals = nil
	r.progress = nil
	return nil
}

// fakeFriendRepository tracks whether the collection was cleared.
type fakeFriendRepository struct {
	friends []*entity.Friend
}

func (r *fakeFriendRepository) List(ctx context.Context) ([]*entity.Friend, error) {
	return r.friends, nil
}

func (r *fakeFriendRepository) Seed(ctx context.Context, friends []*entity.Friend) error {
	if len(r.friends) == 0 {
		r.friends = friends
	}
	return nil
}

func (r *fakeFriendRepository) Clear(ctx context.Context) error {
	r.friends = nil
	return nil
}

func TestUpdateSettingsUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("merges partial preference edits", func(t *testing.T) {
		repo := &fakeProfileRepository{}
		uc := NewUpdateSettingsUseCase(repo)

		theme := "dark"
		notifications := false
		output, err := uc.Execute(ctx, UpdateSettingsInput{Theme: &theme, Notifications: &notifications})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Profile.Preferences.Theme != "dark" {
			t.Errorf("expected dark theme, got %q", output.Profile.Preferences.Theme)
		}
		if output.Profile.Preferences.Notifications {
			t.Error("expected notifications off")
		}
		// Untouched preferences keep their defaults
		if output.Profile.Preferences.Currency != "$" {
			t.Errorf("expected default currency, got %q", output.Profile.Preferences.Currency)
		}
	})

	t.Run("keeps the settings record in sync", func(t *testing.T) {
		repo := &fakeProfileRepository{}
		uc := NewUpdateSettingsUseCase(repo)

		theme := "dark"
		if _, err := uc.Execute(ctx, UpdateSettingsInput{Theme: &theme}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if repo.settings == nil || repo.settings.Theme != "dark" {
			t.Errorf("expected synced settings record, got %+v", repo.settings)
		}
	})
}

func TestExportImportRoundTrip(t *testing.T) {
	ctx := context.Background()

	goalRepo := &fakeGoalRepository{}
	profileRepo := &fakeProfileRepository{}

	g := entity.NewGoal("Emergency Fund", "emergency", decimal.NewFromInt(4000), time.Now().AddDate(0, 6, 0))
	entry := entity.NewProgressEntry(g.ID, decimal.NewFromInt(250))
	g.ApplyProgress(entry)
	goalRepo.goals = []*entity.Goal{g}
	goalRepo.progress = []entity.ProgressEntry{entry}

	export, err := NewExportDataUseCase(goalRepo, profileRepo).Execute(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if export.Version != ExportVersion {
		t.Errorf("expected version %d, got %d", ExportVersion, export.Version)
	}
	if len(export.Goals) != 1 || len(export.Progress) != 1 {
		t.Fatalf("expected goal and progress in export, got %d/%d", len(export.Goals), len(export.Progress))
	}
	if export.Profile == nil || export.Settings == nil {
		t.Fatal("export must include profile and settings")
	}

	// Restore into a fresh store
	freshGoals := &fakeGoalRepository{}
	freshProfile := &fakeProfileRepository{}
	err = NewImportDataUseCase(freshGoals, freshProfile).Execute(ctx, ImportDataInput{
		Goals:    export.Goals,
		Progress: export.Progress,
		Settings: export.Settings,
		Profile:  export.Profile,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(freshGoals.goals) != 1 || freshGoals.goals[0].Name != "Emergency Fund" {
		t.Errorf("expected imported goal, got %+v", freshGoals.goals)
	}
	if len(freshGoals.progress) != 1 {
		t.Errorf("expected imported progress, got %d entries", len(freshGoals.progress))
	}
	if freshProfile.profile == nil {
		t.Error("expected imported profile")
	}
}

func TestClearDataUseCase(t *testing.T) {
	ctx := context.Background()

	goalRepo := &fakeGoalRepository{goals: []*entity.Goal{
		entity.NewGoal("Doomed", "other", decimal.NewFromInt(100), time.Now().AddDate(0, 1, 0)),
	}}
	profileRepo := &fakeProfileRepository{profile: entity.DefaultProfile()}
	friendRepo := &fakeFriendRepository{friends: entity.DemoFriends()}

	if err := NewClearDataUseCase(goalRepo, profileRepo, friendRepo).Execute(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(goalRepo.goals) != 0 {
		t.Error("expected goals to be cleared")
	}
	if profileRepo.profile != nil {
		t.Error("expected profile to be cleared")
	}
	if len(friendRepo.friends) != 0 {
		t.Error("expected friends to be cleared")
	}
}
