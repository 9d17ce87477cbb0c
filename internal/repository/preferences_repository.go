package repository

import (
	"context"
	"errors"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/vibi004/75ChallengeProgramm/internal/error_values"
	"github.com/vibi004/75ChallengeProgramm/pkg/cleanup"
	"github.com/vibi004/75ChallengeProgramm/pkg/entity"
)

type PreferencesRepository struct {
	conn PgConnection
}

func NewPreferencesRepo(cfg DBConfig) *PreferencesRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for preferencesRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for preferencesRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &PreferencesRepository{
		conn: pool,
	}
}

func NewPreferencesRepoWithConn(conn PgConnection) *PreferencesRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for preferencesRepo: " + err.Error())
	}
	return &PreferencesRepository{
		conn: conn,
	}
}

// Get returns the single configuration row. The table is maintained by an
// administrator and read-only for the service.
func (pr *PreferencesRepository) Get(ctx context.Context) (*entity.Preference, error) {
	var pref entity.Preference
	row := pr.conn.QueryRow(ctx, `SELECT id, start_date, length, number_challenges FROM preferences LIMIT 1;`)
	if err := row.Scan(&pref.ID, &pref.StartDate, &pref.Length, &pref.NumberChallenges); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrPreferenceNotFound
		}
		return nil, errors.New("getting preference error: " + err.Error())
	}
	return &pref, nil
}
