package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/vibi004/75ChallengeProgramm/pkg/entity"
)

type RegisterRequest struct {
	Name     string `validate:"required,alphanum_underscore,min=3,max=100"`
	Password string `validate:"required,min=8,max=72"`
}

type OnboardRequest struct {
	Titles []string `validate:"required,min=1,dive,required,min=1,max=200"`
}

// ToggleResult is the post-mutation state of one completion toggle, returned
// directly so the caller needs no second round-trip.
type ToggleResult struct {
	Entry             entity.ProgressEntry `json:"entry"`
	Awarded           bool                 `json:"awarded"`
	Points            int                  `json:"points"`
	CompletedToday    int                  `json:"completed_today"`
	PerfectDay        bool                 `json:"perfect_day"`
	PerfectDayAwarded bool                 `json:"perfect_day_awarded"`
}

// TodayStatus is the user's catalog with completion flags for the current
// day. DayAvailable is false when no day row exists for today; the
// completion data is unavailable then, which is not the same as zero.
type TodayStatus struct {
	Challenges     []entity.ChallengeStatus `json:"challenges"`
	DayAvailable   bool                     `json:"day_available"`
	CompletedToday int                      `json:"completed_today"`
	PerfectDay     bool                     `json:"perfect_day"`
}

type UserServiceI interface {
	// Validates user's credentials, creates new row in database. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, name, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByName(ctx context.Context, name string) (*entity.User, error)
}

type CatalogServiceI interface {
	// Creates the user's whole challenge catalog once. Count must match the preference.
	Onboard(ctx context.Context, uid uuid.UUID, req *OnboardRequest) ([]entity.Challenge, error)
	// Lists the user's challenges in pick order
	List(ctx context.Context, uid uuid.UUID) ([]entity.Challenge, error)
}

type LedgerServiceI interface {
	// Marks a challenge completed for a date and applies the points rules
	Complete(ctx context.Context, uid uuid.UUID, challengeID int64, date time.Time) (*ToggleResult, error)
	// Deletes a ledger entry (correction). Awarded points stay.
	Remove(ctx context.Context, uid uuid.UUID, challengeID int64, date time.Time) error
	// Completed count for today; ErrDayNotFound when today has no day row
	CountCompletedToday(ctx context.Context, uid uuid.UUID) (int, error)
	// Perfect-day predicate for today
	IsAllCompletedToday(ctx context.Context, uid uuid.UUID) (bool, error)
	// Catalog with per-challenge completion flags for today
	GetTodayStatus(ctx context.Context, uid uuid.UUID) (*TodayStatus, error)
}

type OverviewServiceI interface {
	// One completed-count per day of the configured period
	DailyCounts(ctx context.Context, uid uuid.UUID) ([]entity.DailyCount, error)
	// Monday-based weekly rollup of the period
	WeeklyOverview(ctx context.Context, uid uuid.UUID) ([]entity.WeekRow, error)
	// All users with point totals, best first
	Leaderboard(ctx context.Context) ([]entity.LeaderboardEntry, error)
}

type PreferenceServiceI interface {
	Get(ctx context.Context) (*entity.Preference, error)
}
