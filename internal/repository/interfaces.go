package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/vibi004/75ChallengeProgramm/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates new user in database
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by name. Can be used for login
	FindByName(ctx context.Context, name string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
}

type PreferencesRepositoryI interface {
	// Returns the single global preference row
	Get(ctx context.Context) (*entity.Preference, error)
}

type ChallengesRepositoryI interface {
	// Inserts the whole catalog for one user in a single transaction
	CreateBatch(ctx context.Context, uid uuid.UUID, titles []string) ([]entity.Challenge, error)
	// Searches challenge with given id
	GetByID(ctx context.Context, id int64) (*entity.Challenge, error)
	// Lists challenges owned by user with uid, ordered by id ascending
	GetByUserID(ctx context.Context, uid uuid.UUID) ([]entity.Challenge, error)
	// Returns how many challenges the user already picked
	CountByUserID(ctx context.Context, uid uuid.UUID) (int, error)
}

type DaysRepositoryI interface {
	// Resolves a calendar date to its surrogate day row
	GetByDate(ctx context.Context, date time.Time) (*entity.Day, error)
	// Provisions one day row per date of [start, start+length). Idempotent.
	SeedPeriod(ctx context.Context, start time.Time, length int) (int64, error)
}

type ProgressRepositoryI interface {
	// Upserts a ledger entry keyed by (user, challenge, day). Reports whether
	// the stored completed flag actually changed.
	Upsert(ctx context.Context, entry *entity.ProgressEntry) (bool, error)
	// Deletes the entry (correction path)
	Delete(ctx context.Context, uid uuid.UUID, challengeID, dayID int64) error
	// Counts completed entries of user for one day
	CountCompleted(ctx context.Context, uid uuid.UUID, dayID int64) (int, error)
	// Lists ids of challenges the user completed on one day
	CompletedChallengeIDs(ctx context.Context, uid uuid.UUID, dayID int64) ([]int64, error)
	// Completed-entry counts per date over [from, to), one row per day row
	DailyCompletedCounts(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]entity.DailyCount, error)
}

type PointsRepositoryI interface {
	// Returns the user's points row, zero-valued when absent
	Get(ctx context.Context, uid uuid.UUID) (*entity.PointsRecord, error)
	// Atomic increment of points
	AddPoints(ctx context.Context, uid uuid.UUID, delta int) error
	// Atomic increment of completed perfect days
	AddCompletedDays(ctx context.Context, uid uuid.UUID, delta int) error
	// Records the perfect day for (user, day). Reports whether this call
	// inserted the record; every later call for the same day gets false.
	MarkPerfectDay(ctx context.Context, uid uuid.UUID, dayID int64) (bool, error)
	// All users with their point totals, best first
	Leaderboard(ctx context.Context) ([]entity.LeaderboardEntry, error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
