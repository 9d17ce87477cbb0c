package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/vibi004/75ChallengeProgramm/internal/error_values"
	"github.com/vibi004/75ChallengeProgramm/pkg/cleanup"
	"github.com/vibi004/75ChallengeProgramm/pkg/entity"
)

type PointsRepository struct {
	conn PgConnection
}

func NewPointsRepo(cfg DBConfig) *PointsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for pointsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for pointsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &PointsRepository{
		conn: pool,
	}
}

func NewPointsRepoWithConn(conn PgConnection) *PointsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for pointsRepo: " + err.Error())
	}
	return &PointsRepository{
		conn: conn,
	}
}

// Get returns a zero-valued record when the user has no points row yet.
func (pr *PointsRepository) Get(ctx context.Context, uid uuid.UUID) (*entity.PointsRecord, error) {
	rec := entity.PointsRecord{UserID: uid}
	row := pr.conn.QueryRow(ctx, `SELECT points, completed_days FROM points WHERE user_id = $1;`, uid)
	if err := row.Scan(&rec.Points, &rec.CompletedDays); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &rec, nil
		}
		return nil, errors.New("getting points error: " + err.Error())
	}
	return &rec, nil
}

// AddPoints is a single-statement increment. Two concurrent completions for
// the same user both land; the naive read-then-write would lose one.
func (pr *PointsRepository) AddPoints(ctx context.Context, uid uuid.UUID, delta int) error {
	_, err := pr.conn.Exec(ctx,
		`INSERT INTO points (user_id, points) VALUES ($1, $2)
		 ON CONFLICT (user_id) DO UPDATE SET points = points.points + EXCLUDED.points;`,
		uid,
		delta,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return errorvalues.ErrUserNotFound
			}
		}
		return errors.New("adding points error: " + err.Error())
	}
	return nil
}

func (pr *PointsRepository) AddCompletedDays(ctx context.Context, uid uuid.UUID, delta int) error {
	_, err := pr.conn.Exec(ctx,
		`INSERT INTO points (user_id, completed_days) VALUES ($1, $2)
		 ON CONFLICT (user_id) DO UPDATE SET completed_days = points.completed_days + EXCLUDED.completed_days;`,
		uid,
		delta,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return errorvalues.ErrUserNotFound
			}
		}
		return errors.New("adding completed days error: " + err.Error())
	}
	return nil
}

// MarkPerfectDay records that the user finished every challenge of one day.
// The (user_id, day_id) key is unique, so of several writers racing on the
// same day exactly one gets true and awards the bonus.
func (pr *PointsRepository) MarkPerfectDay(ctx context.Context, uid uuid.UUID, dayID int64) (bool, error) {
	tag, err := pr.conn.Exec(ctx,
		`INSERT INTO perfect_days (user_id, day_id) VALUES ($1, $2)
		 ON CONFLICT (user_id, day_id) DO NOTHING;`,
		uid,
		dayID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return false, errorvalues.ErrUserNotFound
			}
		}
		return false, errors.New("marking perfect day error: " + err.Error())
	}
	return tag.RowsAffected() > 0, nil
}

func (pr *PointsRepository) Leaderboard(ctx context.Context) ([]entity.LeaderboardEntry, error) {
	rows, err := pr.conn.Query(ctx,
		`SELECT u.id, u.name, COALESCE(p.points, 0), COALESCE(p.completed_days, 0)
		 FROM users u
		 LEFT JOIN points p ON p.user_id = u.id
		 ORDER BY COALESCE(p.points, 0) DESC, u.name ASC;`,
	)
	if err != nil {
		return nil, errors.New("getting leaderboard error: " + err.Error())
	}
	defer rows.Close()
	entries := make([]entity.LeaderboardEntry, 0)
	for rows.Next() {
		e := entity.LeaderboardEntry{}
		if err := rows.Scan(&e.UserID, &e.Name, &e.Points, &e.CompletedDays); err != nil {
			return nil, errors.New("leaderboard row parsing error: " + err.Error())
		}
		entries = append(entries, e)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected leaderboard rows error: " + rows.Err().Error())
	}
	return entries, nil
}
