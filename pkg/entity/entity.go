package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Name         string
	PasswordHash string
}

// Preference is the single global configuration row: when the challenge
// period starts, how many days it lasts and how many challenges every
// user has to pick.
type Preference struct {
	ID               int       `json:"id"`
	StartDate        time.Time `json:"start_date"`
	Length           int       `json:"length"`
	NumberChallenges int       `json:"number_challenges"`
}

type Challenge struct {
	ID        int64     `json:"id"`
	UserID    uuid.UUID `json:"uid"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

// Day is the surrogate key for one calendar date. Progress rows join on
// Day.ID instead of comparing raw dates.
type Day struct {
	ID   int64     `json:"id"`
	Date time.Time `json:"date"`
}

type ProgressEntry struct {
	UserID      uuid.UUID `json:"uid"`
	ChallengeID int64     `json:"challenge_id"`
	DayID       int64     `json:"day_id"`
	Completed   bool      `json:"completed"`
}

// PointsRecord is a materialized fold over the progress ledger, one row
// per user. Points only grow during normal operation.
type PointsRecord struct {
	UserID        uuid.UUID `json:"uid"`
	Points        int       `json:"points"`
	CompletedDays int       `json:"completed_days"`
}

// ChallengeStatus pairs a challenge with its completion flag for one day.
type ChallengeStatus struct {
	Challenge Challenge `json:"challenge"`
	Completed bool      `json:"completed"`
}

type DailyCount struct {
	Date  time.Time `json:"date"`
	Count int       `json:"count"`
}

// WeekRow is one Monday-based week of the overview. Cells outside the
// challenge period are nil.
type WeekRow struct {
	Monday time.Time     `json:"monday"`
	Cells  []*DailyCount `json:"cells"`
}

type LeaderboardEntry struct {
	UserID        uuid.UUID `json:"uid"`
	Name          string    `json:"name"`
	Points        int       `json:"points"`
	CompletedDays int       `json:"completed_days"`
}
