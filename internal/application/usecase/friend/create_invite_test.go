package friend

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/marcus-savings/backend/internal/domain/entity"
)

type fakeGoalRepository struct {
	goals []*entity.Goal
}

func (r *fakeGoalRepository) List(ctx context.Context) ([]*entity.Goal, error) {
	return r.goals, nil
}

func (r *fakeGoalRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error) {
	return nil, errors.New("not implemented")
}

func (r *fakeGoalRepository) Upsert(ctx context.Context, goal *entity.Goal) error { return nil }

func (r *fakeGoalRepository) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (r *fakeGoalRepository) ListProgress(ctx context.Context) ([]entity.ProgressEntry, error) {
	return nil, nil
}

func (r *fakeGoalRepository) SaveWithProgress(ctx context.Context, goal *entity.Goal, entry entity.ProgressEntry) error {
	return nil
}

func (r *fakeGoalRepository) ReplaceAll(ctx context.Context, goals []*entity.Goal, progress []entity.ProgressEntry) error {
	return nil
}

func (r *fakeGoalRepository) Clear(ctx context.Context) error { return nil }

type fakeInviteStore struct {
	saved   map[string]time.Duration
	failure error
}

func (s *fakeInviteStore) Save(ctx context.Context, code string, ttl time.Duration) error {
	if s.failure != nil {
		return s.failure
	}
	if s.saved == nil {
		s.saved = make(map[string]time.Duration)
	}
	s.saved[code] = ttl
	return nil
}

func (s *fakeInviteStore) Exists(ctx context.Context, code string) (bool, error) {
	_, ok := s.saved[code]
	return ok, nil
}

func activeGoal(name string, saved int64) *entity.Goal {
	g := entity.NewGoal(name, "other", decimal.NewFromInt(saved*2), time.Now().AddDate(0, 6, 0))
	g.CurrentAmount = decimal.NewFromInt(saved)
	return g
}

func TestCreateInviteUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("generates a six character alphanumeric code", func(t *testing.T) {
		store := &fakeInviteStore{}
		uc := NewCreateInviteUseCase(&fakeGoalRepository{}, store, "http://localhost:5000", time.Hour)

		output, err := uc.Execute(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(output.Code) != 6 {
			t.Errorf("expected 6 character code, got %q", output.Code)
		}
		for _, r := range output.Code {
			if !strings.ContainsRune("ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789", r) {
				t.Errorf("unexpected character %q in code", r)
			}
		}
		if _, ok := store.saved[output.Code]; !ok {
			t.Error("expected the code to be stored")
		}
		if store.saved[output.Code] != time.Hour {
			t.Error("expected the configured TTL")
		}
	})

	t.Run("share message reflects current stats", func(t *testing.T) {
		repo := &fakeGoalRepository{goals: []*entity.Goal{
			activeGoal("Emergency Fund", 1000),
			activeGoal("Vacation", 250),
		}}
		uc := NewCreateInviteUseCase(repo, &fakeInviteStore{}, "https://savings.example.com", time.Hour)

		output, err := uc.Execute(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !strings.Contains(output.ShareText, "2 savings goals") {
			t.Errorf("expected goal count in share text: %s", output.ShareText)
		}
		if !strings.Contains(output.ShareText, "$1250") {
			t.Errorf("expected total saved in share text: %s", output.ShareText)
		}
		expectedURL := "https://savings.example.com?invite=" + output.Code
		if output.ShareURL != expectedURL {
			t.Errorf("expected share url %q, got %q", expectedURL, output.ShareURL)
		}
		if !strings.Contains(output.ShareText, expectedURL) {
			t.Error("share text must embed the share url")
		}
	})

	t.Run("store failure degrades to an unpersisted code", func(t *testing.T) {
		store := &fakeInviteStore{failure: errors.New("redis down")}
		uc := NewCreateInviteUseCase(&fakeGoalRepository{}, store, "http://localhost:5000", time.Hour)

		output, err := uc.Execute(ctx)
		if err != nil {
			t.Fatalf("expected graceful degradation, got %v", err)
		}
		if output.Code == "" {
			t.Error("expected a code despite the store failure")
		}
	})

	t.Run("nil store is tolerated", func(t *testing.T) {
		uc := NewCreateInviteUseCase(&fakeGoalRepository{}, nil, "http://localhost:5000", time.Hour)

		output, err := uc.Execute(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Code == "" {
			t.Error("expected a code without a store")
		}
	})
}
