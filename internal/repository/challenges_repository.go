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

type ChallengesRepository struct {
	conn PgConnection
}

func NewChallengesRepo(cfg DBConfig) *ChallengesRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for challengesRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for challengesRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &ChallengesRepository{
		conn: pool,
	}
}

func NewChallengesRepoWithConn(conn PgConnection) *ChallengesRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for challengesRepo: " + err.Error())
	}
	return &ChallengesRepository{
		conn: conn,
	}
}

// CreateBatch inserts the whole catalog in one transaction so a user ends up
// with either all picked challenges or none.
func (cr *ChallengesRepository) CreateBatch(ctx context.Context, uid uuid.UUID, titles []string) ([]entity.Challenge, error) {
	tx, err := cr.conn.Begin(ctx)
	if err != nil {
		return nil, errors.New("beginning challenges tx error: " + err.Error())
	}
	defer tx.Rollback(ctx)
	challenges := make([]entity.Challenge, 0, len(titles))
	for _, title := range titles {
		c := entity.Challenge{
			UserID: uid,
			Title:  title,
		}
		row := tx.QueryRow(ctx, `INSERT INTO challenges (user_id, title) VALUES ($1, $2) RETURNING id, created_at;`, uid, title)
		if err := row.Scan(&c.ID, &c.CreatedAt); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) {
				switch pgErr.Code {
				// FK violation
				case "23503":
					return nil, errorvalues.ErrUserNotFound
				}
			}
			return nil, errors.New("creating challenge db error: " + err.Error())
		}
		challenges = append(challenges, c)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, errors.New("committing challenges tx error: " + err.Error())
	}
	return challenges, nil
}

func (cr *ChallengesRepository) GetByID(ctx context.Context, id int64) (*entity.Challenge, error) {
	var c entity.Challenge
	c.ID = id
	row := cr.conn.QueryRow(ctx, `SELECT user_id, title, created_at FROM challenges WHERE id = $1;`, id)
	if err := row.Scan(&c.UserID, &c.Title, &c.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrChallengeNotFound
		}
		return nil, errors.New("getting challenge by id error: " + err.Error())
	}
	return &c, nil
}

func (cr *ChallengesRepository) GetByUserID(ctx context.Context, uid uuid.UUID) ([]entity.Challenge, error) {
	challenges := make([]entity.Challenge, 0)
	rows, err := cr.conn.Query(ctx, `SELECT id, user_id, title, created_at FROM challenges WHERE user_id = $1 ORDER BY id ASC;`, uid)
	if err != nil {
		return nil, errors.New("getting challenges by uid error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		c := entity.Challenge{}
		err = rows.Scan(&c.ID, &c.UserID, &c.Title, &c.CreatedAt)
		if err != nil {
			return nil, errors.New("unmarshalling challenge error: " + err.Error())
		}
		challenges = append(challenges, c)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning challenges: " + rows.Err().Error())
	}
	return challenges, nil
}

func (cr *ChallengesRepository) CountByUserID(ctx context.Context, uid uuid.UUID) (int, error) {
	row := cr.conn.QueryRow(ctx, `SELECT COUNT(*) FROM challenges WHERE user_id = $1;`, uid)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, errors.New("counting challenges error: " + err.Error())
	}
	return count, nil
}
