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

func TestGetPreference(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	preferencesRepo := repository.NewPreferencesRepoWithConn(mock)
	query := regexp.QuoteMeta(`SELECT id, start_date, length, number_challenges FROM preferences LIMIT 1;`)
	ctx := context.Background()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery(query).
			WillReturnRows(pgxmock.NewRows([]string{"id", "start_date", "length", "number_challenges"}).
				AddRow(1, start, 75, 3))
		pref, err := preferencesRepo.Get(ctx)
		assert.NoError(t, err)
		assert.Equal(t, entity.Preference{ID: 1, StartDate: start, Length: 75, NumberChallenges: 3}, *pref)
	})
	t.Run("missing row", func(t *testing.T) {
		mock.ExpectQuery(query).
			WillReturnError(pgx.ErrNoRows)
		_, err := preferencesRepo.Get(ctx)
		assert.ErrorIs(t, err, errorvalues.ErrPreferenceNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WillReturnError(errors.New("db error"))
		_, err := preferencesRepo.Get(ctx)
		assert.Error(t, err)
	})
}
