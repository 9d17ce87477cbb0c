package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	errorvalues "github.com/vibi004/75ChallengeProgramm/internal/error_values"
	"github.com/vibi004/75ChallengeProgramm/internal/repository"
	"github.com/vibi004/75ChallengeProgramm/pkg/entity"
)

func TestGetPoints(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	pointsRepo := repository.NewPointsRepoWithConn(mock)
	query := regexp.QuoteMeta(`SELECT points, completed_days FROM points WHERE user_id = $1;`)
	uid := uuid.New()
	ctx := context.Background()
	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(uid).
			WillReturnRows(pgxmock.NewRows([]string{"points", "completed_days"}).AddRow(5, 1))
		rec, err := pointsRepo.Get(ctx, uid)
		assert.NoError(t, err)
		assert.Equal(t, entity.PointsRecord{UserID: uid, Points: 5, CompletedDays: 1}, *rec)
	})
	t.Run("absent row defaults to zero", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(uid).
			WillReturnError(pgx.ErrNoRows)
		rec, err := pointsRepo.Get(ctx, uid)
		assert.NoError(t, err)
		assert.Equal(t, entity.PointsRecord{UserID: uid}, *rec)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(uid).
			WillReturnError(errors.New("db error"))
		_, err := pointsRepo.Get(ctx, uid)
		assert.Error(t, err)
	})
}

func TestAddPoints(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	pointsRepo := repository.NewPointsRepoWithConn(mock)
	query := regexp.QuoteMeta(`INSERT INTO points (user_id, points) VALUES ($1, $2)
		 ON CONFLICT (user_id) DO UPDATE SET points = points.points + EXCLUDED.points;`)
	uid := uuid.New()
	ctx := context.Background()
	testCases := []struct {
		Desc         string
		Error        error
		Delta        int
		MockPrepFunc func()
	}{
		{
			Desc:  "incremented",
			Error: nil,
			Delta: 1,
			MockPrepFunc: func() {
				mock.ExpectExec(query).WithArgs(uid, 1).WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			Desc:  "bonus incremented",
			Error: nil,
			Delta: 2,
			MockPrepFunc: func() {
				mock.ExpectExec(query).WithArgs(uid, 2).WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			Desc:  "fk violation",
			Error: errorvalues.ErrUserNotFound,
			Delta: 1,
			MockPrepFunc: func() {
				mock.ExpectExec(query).WithArgs(uid, 1).WillReturnError(&pgconn.PgError{
					Code: "23503",
				})
			},
		},
		{
			Desc:  "db error",
			Error: errors.New("adding points error: db error"),
			Delta: 1,
			MockPrepFunc: func() {
				mock.ExpectExec(query).WithArgs(uid, 1).WillReturnError(errors.New("db error"))
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			err := pointsRepo.AddPoints(ctx, uid, tc.Delta)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAddCompletedDays(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	pointsRepo := repository.NewPointsRepoWithConn(mock)
	query := regexp.QuoteMeta(`INSERT INTO points (user_id, completed_days) VALUES ($1, $2)
		 ON CONFLICT (user_id) DO UPDATE SET completed_days = points.completed_days + EXCLUDED.completed_days;`)
	uid := uuid.New()
	ctx := context.Background()
	t.Run("incremented", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(uid, 1).WillReturnResult(pgxmock.NewResult("INSERT", 1))
		err := pointsRepo.AddCompletedDays(ctx, uid, 1)
		assert.NoError(t, err)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(uid, 1).WillReturnError(errors.New("db error"))
		err := pointsRepo.AddCompletedDays(ctx, uid, 1)
		assert.Error(t, err)
	})
}

func TestMarkPerfectDay(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	pointsRepo := repository.NewPointsRepoWithConn(mock)
	query := regexp.QuoteMeta(`INSERT INTO perfect_days (user_id, day_id) VALUES ($1, $2)
		 ON CONFLICT (user_id, day_id) DO NOTHING;`)
	uid := uuid.New()
	ctx := context.Background()
	t.Run("inserted", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(uid, int64(3)).WillReturnResult(pgxmock.NewResult("INSERT", 1))
		awarded, err := pointsRepo.MarkPerfectDay(ctx, uid, 3)
		assert.NoError(t, err)
		assert.True(t, awarded)
	})
	t.Run("already recorded", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(uid, int64(3)).WillReturnResult(pgxmock.NewResult("INSERT", 0))
		awarded, err := pointsRepo.MarkPerfectDay(ctx, uid, 3)
		assert.NoError(t, err)
		assert.False(t, awarded)
	})
	t.Run("fk violation", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(uid, int64(3)).WillReturnError(&pgconn.PgError{
			Code: "23503",
		})
		_, err := pointsRepo.MarkPerfectDay(ctx, uid, 3)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(uid, int64(3)).WillReturnError(errors.New("db error"))
		_, err := pointsRepo.MarkPerfectDay(ctx, uid, 3)
		assert.Error(t, err)
	})
}

func TestLeaderboard(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	pointsRepo := repository.NewPointsRepoWithConn(mock)
	query := regexp.QuoteMeta(`SELECT u.id, u.name, COALESCE(p.points, 0), COALESCE(p.completed_days, 0)
		 FROM users u
		 LEFT JOIN points p ON p.user_id = u.id
		 ORDER BY COALESCE(p.points, 0) DESC, u.name ASC;`)
	ctx := context.Background()
	t.Run("listed best first", func(t *testing.T) {
		first := entity.LeaderboardEntry{UserID: uuid.New(), Name: "ana", Points: 5, CompletedDays: 1}
		second := entity.LeaderboardEntry{UserID: uuid.New(), Name: "ben", Points: 0, CompletedDays: 0}
		mock.ExpectQuery(query).
			WillReturnRows(pgxmock.NewRows([]string{"id", "name", "points", "completed_days"}).
				AddRow(first.UserID, first.Name, first.Points, first.CompletedDays).
				AddRow(second.UserID, second.Name, second.Points, second.CompletedDays))
		entries, err := pointsRepo.Leaderboard(ctx)
		assert.NoError(t, err)
		assert.Equal(t, []entity.LeaderboardEntry{first, second}, entries)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).WillReturnError(errors.New("db error"))
		_, err := pointsRepo.Leaderboard(ctx)
		assert.Error(t, err)
	})
}
