package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/vibi004/75ChallengeProgramm/internal/error_values"
	"github.com/vibi004/75ChallengeProgramm/pkg/cleanup"
	"github.com/vibi004/75ChallengeProgramm/pkg/entity"
)

type ProgressRepository struct {
	conn PgConnection
}

func NewProgressRepo(cfg DBConfig) *ProgressRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for progressRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for progressRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &ProgressRepository{
		conn: pool,
	}
}

func NewProgressRepoWithConn(conn PgConnection) *ProgressRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for progressRepo: " + err.Error())
	}
	return &ProgressRepository{
		conn: conn,
	}
}

// Upsert writes a ledger entry keyed by (user, challenge, day). The unique
// index collapses concurrent double-toggles into one row. Returns true only
// when the stored completed flag actually changed, so callers can award
// points exactly once per real completion.
func (pr *ProgressRepository) Upsert(ctx context.Context, entry *entity.ProgressEntry) (bool, error) {
	if entry == nil {
		return false, errors.New("progress entry is nil")
	}
	ct, err := pr.conn.Exec(ctx,
		`INSERT INTO progress (user_id, challenge_id, day_id, completed) VALUES ($1, $2, $3, $4)
		 ON CONFLICT (user_id, challenge_id, day_id) DO UPDATE SET completed = EXCLUDED.completed
		 WHERE progress.completed IS DISTINCT FROM EXCLUDED.completed;`,
		entry.UserID,
		entry.ChallengeID,
		entry.DayID,
		entry.Completed,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return false, errorvalues.ErrChallengeNotFound
			}
		}
		return false, errors.New("upserting progress error: " + err.Error())
	}
	return ct.RowsAffected() > 0, nil
}

func (pr *ProgressRepository) Delete(ctx context.Context, uid uuid.UUID, challengeID, dayID int64) error {
	ct, err := pr.conn.Exec(ctx,
		`DELETE FROM progress WHERE user_id = $1 AND challenge_id = $2 AND day_id = $3;`,
		uid,
		challengeID,
		dayID,
	)
	if err != nil {
		return errors.New("deleting progress error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrEntryNotFound
	}
	return nil
}

func (pr *ProgressRepository) CountCompleted(ctx context.Context, uid uuid.UUID, dayID int64) (int, error) {
	row := pr.conn.QueryRow(ctx,
		`SELECT COUNT(*) FROM progress WHERE user_id = $1 AND day_id = $2 AND completed = true;`,
		uid,
		dayID,
	)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, errors.New("counting completed progress error: " + err.Error())
	}
	return count, nil
}

func (pr *ProgressRepository) CompletedChallengeIDs(ctx context.Context, uid uuid.UUID, dayID int64) ([]int64, error) {
	rows, err := pr.conn.Query(ctx,
		`SELECT challenge_id FROM progress WHERE user_id = $1 AND day_id = $2 AND completed = true;`,
		uid,
		dayID,
	)
	if err != nil {
		return nil, errors.New("getting completed challenge ids error: " + err.Error())
	}
	defer rows.Close()
	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, errors.New("progress row parsing error: " + err.Error())
		}
		ids = append(ids, id)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected progress rows error: " + rows.Err().Error())
	}
	return ids, nil
}

// DailyCompletedCounts returns one row per day of [from, to) with the user's
// completed-entry count, zero for days without progress. Days without a
// surrogate row are absent from the result.
func (pr *ProgressRepository) DailyCompletedCounts(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]entity.DailyCount, error) {
	rows, err := pr.conn.Query(ctx,
		`SELECT d.date, COUNT(p.challenge_id)
		 FROM days d
		 LEFT JOIN progress p ON p.day_id = d.id AND p.user_id = $1 AND p.completed = true
		 WHERE d.date >= $2 AND d.date < $3
		 GROUP BY d.date
		 ORDER BY d.date ASC;`,
		uid,
		from,
		to,
	)
	if err != nil {
		return nil, errors.New("getting daily counts error: " + err.Error())
	}
	defer rows.Close()
	counts := make([]entity.DailyCount, 0)
	for rows.Next() {
		dc := entity.DailyCount{}
		if err := rows.Scan(&dc.Date, &dc.Count); err != nil {
			return nil, errors.New("daily count row parsing error: " + err.Error())
		}
		counts = append(counts, dc)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected daily count rows error: " + rows.Err().Error())
	}
	return counts, nil
}
