package main

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// contextKey is a dedicated type for context values set by middleware.
type contextKey string

// App holds all server configuration and shared state. It is built once
// in main and passed by reference to handlers and middleware.
type App struct {
	Store        *Store // nil when no database is configured
	IsProduction bool
	IsDev        bool
	AdminKey     string

	RateLimitRPS   int
	RateLimitBurst int
	LimiterMap     map[string]*rate.Limiter
	LimiterMutex   sync.Mutex

	StartTime time.Time

	// now is the server clock, swappable in tests for the
	// past-dates-only boundary check.
	now func() time.Time
}

// CheckRequest is the attempt evaluation payload.
type CheckRequest struct {
	Guess         string `json:"guess"`
	Date          string `json:"date"`
	AttemptNumber int    `json:"attemptNumber"`
}

// FeedbackResult is the outcome of one attempt evaluation.
type FeedbackResult struct {
	Feedback     []string `json:"feedback"`
	IsWin        bool     `json:"isWin"`
	RevealedWord *string  `json:"revealedWord"`
}

// RecordResultRequest is the leaderboard submission payload.
type RecordResultRequest struct {
	Date string `json:"date"`
	LeaderboardEntry
}

// DevResetRequest selects what the dev reset endpoint reseeds.
type DevResetRequest struct {
	Date string `json:"date"`
	Game string `json:"game"` // "wordle", "semantic", or empty for both
}

// DevSeedRequest describes a synthetic leaderboard entry.
type DevSeedRequest struct {
	UID      string `json:"uid"`
	Name     string `json:"name"`
	Score    int    `json:"score"`
	Attempts int    `json:"attempts"`
	TimeMs   int64  `json:"timeMs"`
	Date     string `json:"date"`
	Variant  string `json:"variant"`
}

// LeaderboardEntry is one player's completed result for a (variant, date).
// Written at most once per key; later submissions are no-ops.
type LeaderboardEntry struct {
	PlayerID    string `json:"playerId"`
	Name        string `json:"name"`
	Score       int    `json:"score"`
	Attempts    int    `json:"attempts"`
	Solved      bool   `json:"solved"`
	TimeMs      int64  `json:"timeMs"`
	CompletedAt int64  `json:"completedAt"` // Unix milliseconds
}

// CumulativeEntry aggregates a player's score across all dates of a variant.
type CumulativeEntry struct {
	PlayerID string `json:"playerId"`
	Name     string `json:"name"`
	Score    int    `json:"score"`
	Days     int    `json:"days"`
}
