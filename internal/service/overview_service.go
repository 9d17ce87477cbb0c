package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/vibi004/75ChallengeProgramm/internal/cache"
	errorvalues "github.com/vibi004/75ChallengeProgramm/internal/error_values"
	"github.com/vibi004/75ChallengeProgramm/internal/repository"
	"github.com/vibi004/75ChallengeProgramm/pkg/entity"
)

const (
	leaderboardCacheKey = "leaderboard"
	leaderboardCacheTTL = time.Minute
)

// OverviewService builds the reporting read-paths: per-day counts, the
// Monday-based weekly rollup and the leaderboard. It has no invariants of
// its own, everything derives from the ledger and the points fold.
type OverviewService struct {
	preferencesRepo repository.PreferencesRepositoryI
	progressRepo    repository.ProgressRepositoryI
	pointsRepo      repository.PointsRepositoryI
	cache           cache.Cache
}

// NewOverviewService builds the service. cache may be nil, leaderboard
// queries then always hit the store.
func NewOverviewService(
	preferencesRepo repository.PreferencesRepositoryI,
	progressRepo repository.ProgressRepositoryI,
	pointsRepo repository.PointsRepositoryI,
	c cache.Cache,
) *OverviewService {
	if preferencesRepo == nil || progressRepo == nil || pointsRepo == nil {
		log.Fatal("on overview service provided nil repos")
	}
	return &OverviewService{
		preferencesRepo: preferencesRepo,
		progressRepo:    progressRepo,
		pointsRepo:      pointsRepo,
		cache:           c,
	}
}

func (os *OverviewService) period(ctx context.Context) (time.Time, time.Time, error) {
	pref, err := os.preferencesRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, errorvalues.ErrPreferenceNotFound) {
			return time.Time{}, time.Time{}, err
		}
		return time.Time{}, time.Time{}, errors.New("repository error: " + err.Error())
	}
	from := dateOnly(pref.StartDate)
	to := from.AddDate(0, 0, pref.Length)
	return from, to, nil
}

func (os *OverviewService) DailyCounts(ctx context.Context, uid uuid.UUID) ([]entity.DailyCount, error) {
	from, to, err := os.period(ctx)
	if err != nil {
		return nil, err
	}
	counts, err := os.progressRepo.DailyCompletedCounts(ctx, uid, from, to)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return counts, nil
}

// monday returns the Monday of the week date falls in.
func monday(date time.Time) time.Time {
	weekday := int(date.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	return date.AddDate(0, 0, 1-weekday)
}

// WeeklyOverview lays the period's daily counts out over Monday-based weeks.
// Cells outside the period are nil; period days without a day row show as
// zero counts only if the row exists, otherwise the cell stays nil.
func (os *OverviewService) WeeklyOverview(ctx context.Context, uid uuid.UUID) ([]entity.WeekRow, error) {
	from, to, err := os.period(ctx)
	if err != nil {
		return nil, err
	}
	counts, err := os.progressRepo.DailyCompletedCounts(ctx, uid, from, to)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	byDate := make(map[time.Time]entity.DailyCount, len(counts))
	for _, dc := range counts {
		byDate[dateOnly(dc.Date)] = dc
	}
	weeks := make([]entity.WeekRow, 0)
	for weekStart := monday(from); weekStart.Before(to); weekStart = weekStart.AddDate(0, 0, 7) {
		row := entity.WeekRow{
			Monday: weekStart,
			Cells:  make([]*entity.DailyCount, 7),
		}
		for d := 0; d < 7; d++ {
			date := weekStart.AddDate(0, 0, d)
			if date.Before(from) || !date.Before(to) {
				continue
			}
			if dc, ok := byDate[date]; ok {
				cell := dc
				row.Cells[d] = &cell
			}
		}
		weeks = append(weeks, row)
	}
	return weeks, nil
}

// Leaderboard serves from the cache when one is configured. Cache failures
// fall back to the store silently.
func (os *OverviewService) Leaderboard(ctx context.Context) ([]entity.LeaderboardEntry, error) {
	if os.cache != nil {
		var cached []entity.LeaderboardEntry
		if err := os.cache.Get(ctx, leaderboardCacheKey, &cached); err == nil {
			return cached, nil
		}
	}
	entries, err := os.pointsRepo.Leaderboard(ctx)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	if os.cache != nil {
		_ = os.cache.Set(ctx, leaderboardCacheKey, entries, leaderboardCacheTTL)
	}
	return entries, nil
}
