package main

import (
	"crypto/rand"
	"errors"
	"math/big"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

var validVariants = []string{VariantWordle, VariantSemantic}

// checkHandler evaluates one attempt against the daily puzzle. Only the
// wordle variant has server-side feedback.
func (app *App) checkHandler(c *gin.Context) {
	ctx := c.Request.Context()

	if c.Param("variant") != VariantWordle {
		c.JSON(http.StatusNotFound, gin.H{"error": ErrorUnknownVariant})
		return
	}

	var req CheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrorInvalidGuess})
		return
	}

	result, err := app.evaluateAttempt(ctx, req.Guess, req.Date, req.AttemptNumber)
	if err != nil {
		app.respondError(c, err)
		return
	}

	if reqID, _ := ctx.Value(requestIDKey).(string); reqID != "" {
		logInfo("[request_id=%v] Checked guess for %s (attempt %d/%d): win=%v", reqID, req.Date, req.AttemptNumber, MaxAttempts, result.IsWin)
	} else {
		logInfo("Checked guess for %s (attempt %d/%d): win=%v", req.Date, req.AttemptNumber, MaxAttempts, result.IsWin)
	}
	c.JSON(http.StatusOK, result)
}

// dailyWordHandler returns the word for a past date. Today and future
// dates are refused outright: handing out the current word would end
// the game for everyone.
func (app *App) dailyWordHandler(c *gin.Context) {
	ctx := c.Request.Context()

	variant := c.Param("variant")
	if !lo.Contains(validVariants, variant) {
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrorUnknownVariant})
		return
	}

	date := c.Query("date")
	t, err := parseDate(date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrorInvalidDate})
		return
	}

	today := app.now().UTC().Truncate(24 * time.Hour)
	if !t.Before(today) {
		logWarn("Refused word lookup for current/future date %s", date)
		c.JSON(http.StatusForbidden, gin.H{"error": ErrorFutureDate})
		return
	}

	if app.Store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": ErrorStoreNotReady})
		return
	}

	word, found, err := app.Store.GetDailyWord(ctx, variant, date)
	if err != nil {
		logWarn("Word lookup failed for %s/%s: %v", variant, date, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": ErrorStoreFailure})
		return
	}
	if !found {
		if variant != VariantWordle {
			c.JSON(http.StatusNotFound, gin.H{"error": "no word for date"})
			return
		}
		word = fallbackWord(t)
	}

	c.JSON(http.StatusOK, gin.H{"word": word})
}

// recordResultHandler writes a completed game's result. First write per
// (variant, date, player) wins; a repeat is reported, not applied.
func (app *App) recordResultHandler(c *gin.Context) {
	ctx := c.Request.Context()

	variant := c.Param("variant")
	if !lo.Contains(validVariants, variant) {
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrorUnknownVariant})
		return
	}

	var req RecordResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrorInvalidDate})
		return
	}
	if _, err := parseDate(req.Date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrorInvalidDate})
		return
	}
	if req.PlayerID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrorMissingPlayerID})
		return
	}

	if app.Store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": ErrorStoreNotReady})
		return
	}

	entry := req.LeaderboardEntry
	if entry.CompletedAt == 0 {
		entry.CompletedAt = app.now().UnixMilli()
	}

	created, err := app.Store.CreateLeaderboardEntry(ctx, variant, req.Date, entry)
	if err != nil {
		logWarn("Leaderboard write failed for %s/%s/%s: %v", variant, req.Date, entry.PlayerID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": ErrorStoreFailure})
		return
	}
	if !created {
		logInfo("Duplicate result ignored for %s/%s/%s", variant, req.Date, entry.PlayerID)
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "recorded": created, "alreadyRecorded": !created})
}

// leaderboardHandler returns one day's ranked entries.
func (app *App) leaderboardHandler(c *gin.Context) {
	ctx := c.Request.Context()

	variant := c.Param("variant")
	if !lo.Contains(validVariants, variant) {
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrorUnknownVariant})
		return
	}
	date := c.Query("date")
	if _, err := parseDate(date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrorInvalidDate})
		return
	}
	if app.Store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": ErrorStoreNotReady})
		return
	}

	entries, err := app.Store.ListLeaderboard(ctx, variant, date)
	if err != nil {
		logWarn("Leaderboard read failed for %s/%s: %v", variant, date, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": ErrorStoreFailure})
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "entries": entries})
}

// cumulativeLeaderboardHandler returns all-time totals for a variant.
func (app *App) cumulativeLeaderboardHandler(c *gin.Context) {
	ctx := c.Request.Context()

	variant := c.Param("variant")
	if !lo.Contains(validVariants, variant) {
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrorUnknownVariant})
		return
	}
	if app.Store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": ErrorStoreNotReady})
		return
	}

	entries, err := app.Store.CumulativeLeaderboard(ctx, variant)
	if err != nil {
		logWarn("Cumulative leaderboard read failed for %s: %v", variant, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": ErrorStoreFailure})
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

// adminResetHandler bulk-deletes every leaderboard row across all dates
// and variants. Gated by the shared admin key.
func (app *App) adminResetHandler(c *gin.Context) {
	ctx := c.Request.Context()

	if app.AdminKey == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": ErrorAdminDisabled})
		return
	}
	if c.Query("key") != app.AdminKey {
		logWarn("Rejected admin reset with bad key from %s", c.ClientIP())
		c.JSON(http.StatusUnauthorized, gin.H{"error": ErrorUnauthorized})
		return
	}
	if app.Store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": ErrorStoreNotReady})
		return
	}

	deleted, err := app.Store.ResetAllLeaderboards(ctx)
	if err != nil {
		logWarn("Leaderboard reset failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": ErrorStoreFailure})
		return
	}
	logInfo("Admin reset removed %d leaderboard entries", deleted)
	c.JSON(http.StatusOK, gin.H{"ok": true, "deleted": deleted})
}

// devResetDailyHandler forces a day's word from the seed pool and
// clears that day's leaderboard. Development environments only.
func (app *App) devResetDailyHandler(c *gin.Context) {
	ctx := c.Request.Context()

	if !app.IsDev {
		c.JSON(http.StatusForbidden, gin.H{"error": ErrorDevOnly})
		return
	}
	if app.Store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": ErrorStoreNotReady})
		return
	}

	var req DevResetRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrorInvalidDate})
		return
	}
	date := req.Date
	if date == "" {
		date = app.now().UTC().Format(dateLayout)
	} else if _, err := parseDate(date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrorInvalidDate})
		return
	}

	variants := []string{VariantWordle, VariantSemantic}
	if req.Game == VariantWordle || req.Game == VariantSemantic {
		variants = []string{req.Game}
	}

	for _, variant := range variants {
		word := randomSeedWord()
		if err := app.Store.ClearLeaderboard(ctx, variant, date); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": ErrorStoreFailure})
			return
		}
		if err := app.Store.SetDailyWord(ctx, variant, date, word); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": ErrorStoreFailure})
			return
		}
		logInfo("Dev reset %s/%s with new word", variant, date)
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "date": date})
}

// devSeedDailyHandler inserts a synthetic leaderboard entry for local
// testing. Development environments only.
func (app *App) devSeedDailyHandler(c *gin.Context) {
	ctx := c.Request.Context()

	if !app.IsDev {
		c.JSON(http.StatusForbidden, gin.H{"error": ErrorDevOnly})
		return
	}
	if app.Store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": ErrorStoreNotReady})
		return
	}

	req := DevSeedRequest{
		Name:     "Moi",
		Score:    2000,
		Attempts: 3,
		TimeMs:   90000,
		Variant:  VariantWordle,
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrorMissingPlayerID})
		return
	}
	if req.UID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrorMissingPlayerID})
		return
	}
	if !lo.Contains(validVariants, req.Variant) {
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrorUnknownVariant})
		return
	}
	date := req.Date
	if date == "" {
		date = app.now().UTC().Format(dateLayout)
	} else if _, err := parseDate(date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrorInvalidDate})
		return
	}

	entry := LeaderboardEntry{
		PlayerID:    req.UID,
		Name:        req.Name,
		Score:       req.Score,
		Attempts:    req.Attempts,
		Solved:      true,
		TimeMs:      req.TimeMs,
		CompletedAt: app.now().UnixMilli(),
	}
	created, err := app.Store.CreateLeaderboardEntry(ctx, req.Variant, date, entry)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": ErrorStoreFailure})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "recorded": created, "date": date})
}

// healthzHandler returns a JSON health check with server stats.
func (app *App) healthzHandler(c *gin.Context) {
	uptime := time.Since(app.StartTime)
	c.JSON(http.StatusOK, gin.H{
		"status":         "ok",
		"env":            map[bool]string{true: "production", false: "development"}[app.IsProduction],
		"store":          app.Store != nil,
		"fallback_words": len(fallbackWords),
		"seed_words":     len(seedWords),
		"uptime":         formatUptime(uptime),
		"timestamp":      time.Now().UTC().Format(time.RFC3339),
	})
}

// respondError maps evaluation errors onto the HTTP error taxonomy:
// validation 400, unconfigured store 503, anything else 500.
func (app *App) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errInvalidDate), errors.Is(err, errInvalidGuess):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, errStoreNotReady):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	default:
		logWarn("Attempt evaluation failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": ErrorStoreFailure})
	}
}

// randomSeedWord picks a word from the seed pool, falling back to the
// first entry if the system randomness source misbehaves.
func randomSeedWord() string {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(seedWords))))
	if err != nil {
		logWarn("Error generating random number: %v, using fallback", err)
		return seedWords[0]
	}
	return seedWords[n.Int64()]
}
