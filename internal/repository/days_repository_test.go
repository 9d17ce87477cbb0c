package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	errorvalues "github.com/vibi004/75ChallengeProgramm/internal/error_values"
	"github.com/vibi004/75ChallengeProgramm/internal/repository"
	"github.com/vibi004/75ChallengeProgramm/pkg/entity"
)

func TestGetDayByDate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	daysRepo := repository.NewDaysRepoWithConn(mock)
	query := regexp.QuoteMeta(`SELECT id, date FROM days WHERE date = $1;`)
	ctx := context.Background()
	date := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)
	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(date).
			WillReturnRows(pgxmock.NewRows([]string{"id", "date"}).AddRow(int64(3), date))
		day, err := daysRepo.GetByDate(ctx, date)
		assert.NoError(t, err)
		assert.Equal(t, entity.Day{ID: 3, Date: date}, *day)
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(date).
			WillReturnError(pgx.ErrNoRows)
		_, err := daysRepo.GetByDate(ctx, date)
		assert.ErrorIs(t, err, errorvalues.ErrDayNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(date).
			WillReturnError(errors.New("db error"))
		_, err := daysRepo.GetByDate(ctx, date)
		assert.Error(t, err)
	})
}

func TestSeedPeriod(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	daysRepo := repository.NewDaysRepoWithConn(mock)
	query := regexp.QuoteMeta(`INSERT INTO days (date)
		 SELECT generate_series($1::date, $1::date + ($2 - 1), interval '1 day')
		 ON CONFLICT (date) DO NOTHING;`)
	ctx := context.Background()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	t.Run("seeded", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(start, 75).
			WillReturnResult(pgxmock.NewResult("INSERT", 75))
		inserted, err := daysRepo.SeedPeriod(ctx, start, 75)
		assert.NoError(t, err)
		assert.Equal(t, int64(75), inserted)
	})
	t.Run("rerun skips existing", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(start, 75).
			WillReturnResult(pgxmock.NewResult("INSERT", 0))
		inserted, err := daysRepo.SeedPeriod(ctx, start, 75)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), inserted)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(start, 75).
			WillReturnError(errors.New("db error"))
		_, err := daysRepo.SeedPeriod(ctx, start, 75)
		assert.Error(t, err)
	})
}
