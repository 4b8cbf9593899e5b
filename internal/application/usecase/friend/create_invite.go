package friend

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"github.com/marcus-savings/backend/internal/application/adapter"
	"github.com/marcus-savings/backend/internal/application/usecase/stats"
)

const (
	inviteCodeLength  = 6
	inviteCodeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// CreateInviteOutput carries the generated invite code, the share link, and
// the pre-built share text.
type CreateInviteOutput struct {
	Code      string
	ShareURL  string
	ShareText string
}

// CreateInviteUseCase generates friend invite codes. Codes are stored in the
// invite store with a TTL; when the store is unreachable the invite is still
// returned and the degradation is logged, matching the tracker's best-effort
// persistence posture.
type CreateInviteUseCase struct {
	goalRepo    adapter.GoalRepository
	inviteStore adapter.InviteStore
	baseURL     string
	ttl         time.Duration
}

// NewCreateInviteUseCase creates a new CreateInviteUseCase instance.
func NewCreateInviteUseCase(
	goalRepo adapter.GoalRepository,
	inviteStore adapter.InviteStore,
	baseURL string,
	ttl time.Duration,
) *CreateInviteUseCase {
	return &CreateInviteUseCase{
		goalRepo:    goalRepo,
		inviteStore: inviteStore,
		baseURL:     baseURL,
		ttl:         ttl,
	}
}

// Execute generates a fresh invite code and builds the share message from the
// user's current goal statistics.
func (uc *CreateInviteUseCase) Execute(ctx context.Context) (*CreateInviteOutput, error) {
	code, err := generateInviteCode()
	if err != nil {
		return nil, fmt.Errorf("failed to generate invite code: %w", err)
	}

	if uc.inviteStore != nil {
		if err := uc.inviteStore.Save(ctx, code, uc.ttl); err != nil {
			slog.Warn("Invite store unavailable, returning unpersisted invite code",
				"error", err,
			)
		}
	}

	goals, err := uc.goalRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load goals: %w", err)
	}
	goalStats := stats.Compute(goals)

	shareURL := fmt.Sprintf("%s?invite=%s", uc.baseURL, code)
	shareText := fmt.Sprintf(
		"🎯 Join me on Marcus Savings Tracker!\n\n"+
			"I'm working on %d savings goals and have saved $%s so far!\n\n"+
			"Let's motivate each other to reach our financial goals together! 💪\n\n"+
			"%s",
		goalStats.Active,
		goalStats.TotalSaved.String(),
		shareURL,
	)

	return &CreateInviteOutput{
		Code:      code,
		ShareURL:  shareURL,
		ShareText: shareText,
	}, nil
}

func generateInviteCode() (string, error) {
	code := make([]byte, inviteCodeLength)
	charsetLen := big.NewInt(int64(len(inviteCodeCharset)))
	for i := range code {
		n, err := rand.Int(rand.Reader, charsetLen)
		if err != nil {
			return "", err
		}
		code[i] = inviteCodeCharset[n.Int64()]
	}
	return string(code), nil
}
