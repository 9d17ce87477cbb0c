package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/vibi004/75ChallengeProgramm/internal/error_values"
	"github.com/vibi004/75ChallengeProgramm/pkg/cleanup"
	"github.com/vibi004/75ChallengeProgramm/pkg/entity"
)

type DaysRepository struct {
	conn PgConnection
}

func NewDaysRepo(cfg DBConfig) *DaysRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for daysRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for daysRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &DaysRepository{
		conn: pool,
	}
}

func NewDaysRepoWithConn(conn PgConnection) *DaysRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for daysRepo: " + err.Error())
	}
	return &DaysRepository{
		conn: conn,
	}
}

// GetByDate resolves a calendar date to its surrogate day row. A missing row
// means no progress can be shown or recorded for that date; rows are never
// created here.
func (dr *DaysRepository) GetByDate(ctx context.Context, date time.Time) (*entity.Day, error) {
	var day entity.Day
	row := dr.conn.QueryRow(ctx, `SELECT id, date FROM days WHERE date = $1;`, date)
	if err := row.Scan(&day.ID, &day.Date); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrDayNotFound
		}
		return nil, errors.New("getting day by date error: " + err.Error())
	}
	return &day, nil
}

// SeedPeriod provisions the day rows for the whole challenge period. Existing
// dates are skipped, so re-running is safe.
func (dr *DaysRepository) SeedPeriod(ctx context.Context, start time.Time, length int) (int64, error) {
	ct, err := dr.conn.Exec(ctx,
		`INSERT INTO days (date)
		 SELECT generate_series($1::date, $1::date + ($2 - 1), interval '1 day')
		 ON CONFLICT (date) DO NOTHING;`,
		start,
		length,
	)
	if err != nil {
		return 0, errors.New("seeding days error: " + err.Error())
	}
	return ct.RowsAffected(), nil
}
