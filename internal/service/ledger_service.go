package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/vibi004/75ChallengeProgramm/internal/error_values"
	"github.com/vibi004/75ChallengeProgramm/internal/repository"
	"github.com/vibi004/75ChallengeProgramm/pkg/entity"
)

const (
	completionPoints = 1
	perfectDayBonus  = 2
)

// LedgerService owns the per-user, per-challenge, per-day completion facts
// and the points fold derived from them. All date math is on calendar days;
// a date resolves to its surrogate day row before anything is written.
type LedgerService struct {
	challengesRepo  repository.ChallengesRepositoryI
	daysRepo        repository.DaysRepositoryI
	progressRepo    repository.ProgressRepositoryI
	pointsRepo      repository.PointsRepositoryI
	preferencesRepo repository.PreferencesRepositoryI
	now             func() time.Time
}

func NewLedgerService(
	challengesRepo repository.ChallengesRepositoryI,
	daysRepo repository.DaysRepositoryI,
	progressRepo repository.ProgressRepositoryI,
	pointsRepo repository.PointsRepositoryI,
	preferencesRepo repository.PreferencesRepositoryI,
) *LedgerService {
	if challengesRepo == nil || daysRepo == nil || progressRepo == nil || pointsRepo == nil || preferencesRepo == nil {
		log.Fatal("on ledger service provided nil repos")
	}
	return &LedgerService{
		challengesRepo:  challengesRepo,
		daysRepo:        daysRepo,
		progressRepo:    progressRepo,
		pointsRepo:      pointsRepo,
		preferencesRepo: preferencesRepo,
		now:             time.Now,
	}
}

func dateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Complete marks one challenge completed for a date and applies the points
// rules in order: mark entry, award the completion point, re-evaluate the
// perfect day and award the bonus. Re-toggling an already completed entry
// changes nothing and awards nothing.
func (serv *LedgerService) Complete(ctx context.Context, uid uuid.UUID, challengeID int64, date time.Time) (*ToggleResult, error) {
	challenge, err := serv.challengesRepo.GetByID(ctx, challengeID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrChallengeNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	if challenge.UserID != uid {
		return nil, errorvalues.ErrWrongOwner
	}
	date = dateOnly(date)
	if date.After(dateOnly(serv.now())) {
		return nil, errorvalues.ErrDateNotAllowed
	}
	day, err := serv.daysRepo.GetByDate(ctx, date)
	if err != nil {
		if errors.Is(err, errorvalues.ErrDayNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	pref, err := serv.preferencesRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, errorvalues.ErrPreferenceNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	entry := entity.ProgressEntry{
		UserID:      uid,
		ChallengeID: challengeID,
		DayID:       day.ID,
		Completed:   true,
	}
	changed, err := serv.progressRepo.Upsert(ctx, &entry)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	result := ToggleResult{
		Entry:   entry,
		Awarded: changed,
	}
	if changed {
		if err := serv.pointsRepo.AddPoints(ctx, uid, completionPoints); err != nil {
			return nil, errors.New("repository error: " + err.Error())
		}
	}
	count, err := serv.progressRepo.CountCompleted(ctx, uid, day.ID)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	result.CompletedToday = count
	result.PerfectDay = count == pref.NumberChallenges
	// The bonus is gated on the unique perfect-day record: two toggles
	// finishing the last open challenges concurrently both observe the full
	// count, but only the one that inserts the record awards it.
	if changed && result.PerfectDay {
		awarded, err := serv.pointsRepo.MarkPerfectDay(ctx, uid, day.ID)
		if err != nil {
			return nil, errors.New("repository error: " + err.Error())
		}
		if awarded {
			if err := serv.pointsRepo.AddPoints(ctx, uid, perfectDayBonus); err != nil {
				return nil, errors.New("repository error: " + err.Error())
			}
			if err := serv.pointsRepo.AddCompletedDays(ctx, uid, 1); err != nil {
				return nil, errors.New("repository error: " + err.Error())
			}
			result.PerfectDayAwarded = true
		}
	}
	rec, err := serv.pointsRepo.Get(ctx, uid)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	result.Points = rec.Points
	return &result, nil
}

// Remove deletes one ledger entry as a correction. Points awarded for the
// entry are kept; reversing them is an open product question.
func (serv *LedgerService) Remove(ctx context.Context, uid uuid.UUID, challengeID int64, date time.Time) error {
	challenge, err := serv.challengesRepo.GetByID(ctx, challengeID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrChallengeNotFound) {
			return err
		}
		return errors.New("repository error: " + err.Error())
	}
	if challenge.UserID != uid {
		return errorvalues.ErrWrongOwner
	}
	day, err := serv.daysRepo.GetByDate(ctx, dateOnly(date))
	if err != nil {
		if errors.Is(err, errorvalues.ErrDayNotFound) {
			return err
		}
		return errors.New("repository error: " + err.Error())
	}
	err = serv.progressRepo.Delete(ctx, uid, challengeID, day.ID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrEntryNotFound) {
			return err
		}
		return errors.New("repository error: " + err.Error())
	}
	return nil
}

// CountCompletedToday returns the user's completed count for the current
// day. ErrDayNotFound means the data is unavailable, not that it is zero.
func (serv *LedgerService) CountCompletedToday(ctx context.Context, uid uuid.UUID) (int, error) {
	day, err := serv.daysRepo.GetByDate(ctx, dateOnly(serv.now()))
	if err != nil {
		if errors.Is(err, errorvalues.ErrDayNotFound) {
			return 0, err
		}
		return 0, errors.New("repository error: " + err.Error())
	}
	count, err := serv.progressRepo.CountCompleted(ctx, uid, day.ID)
	if err != nil {
		return 0, errors.New("repository error: " + err.Error())
	}
	return count, nil
}

func (serv *LedgerService) IsAllCompletedToday(ctx context.Context, uid uuid.UUID) (bool, error) {
	count, err := serv.CountCompletedToday(ctx, uid)
	if err != nil {
		return false, err
	}
	pref, err := serv.preferencesRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, errorvalues.ErrPreferenceNotFound) {
			return false, err
		}
		return false, errors.New("repository error: " + err.Error())
	}
	return count == pref.NumberChallenges, nil
}

// GetTodayStatus pairs the user's catalog with today's completion flags.
// When today has no day row the catalog is still returned, with
// DayAvailable false and every flag unset.
func (serv *LedgerService) GetTodayStatus(ctx context.Context, uid uuid.UUID) (*TodayStatus, error) {
	challenges, err := serv.challengesRepo.GetByUserID(ctx, uid)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	status := TodayStatus{
		Challenges: make([]entity.ChallengeStatus, 0, len(challenges)),
	}
	for _, c := range challenges {
		status.Challenges = append(status.Challenges, entity.ChallengeStatus{Challenge: c})
	}
	day, err := serv.daysRepo.GetByDate(ctx, dateOnly(serv.now()))
	if err != nil {
		if errors.Is(err, errorvalues.ErrDayNotFound) {
			return &status, nil
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	status.DayAvailable = true
	completedIDs, err := serv.progressRepo.CompletedChallengeIDs(ctx, uid, day.ID)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	completed := make(map[int64]struct{}, len(completedIDs))
	for _, id := range completedIDs {
		completed[id] = struct{}{}
	}
	for i := range status.Challenges {
		if _, ok := completed[status.Challenges[i].Challenge.ID]; ok {
			status.Challenges[i].Completed = true
			status.CompletedToday++
		}
	}
	pref, err := serv.preferencesRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, errorvalues.ErrPreferenceNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	status.PerfectDay = status.CompletedToday == pref.NumberChallenges
	return &status, nil
}
