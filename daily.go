package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

var (
	errInvalidDate   = errors.New(ErrorInvalidDate)
	errInvalidGuess  = errors.New(ErrorInvalidGuess)
	errStoreNotReady = errors.New(ErrorStoreNotReady)
)

// parseDate validates a calendar day identifier. Strict: zero-padded
// YYYY-MM-DD only, and the day must exist ("2024-1-5" and "2024-02-30"
// are both rejected).
func parseDate(date string) (time.Time, error) {
	if len(date) != len(dateLayout) {
		return time.Time{}, errInvalidDate
	}
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return time.Time{}, errInvalidDate
	}
	return t, nil
}

// dayIndex returns the number of whole days between the Unix epoch and
// a parsed date. Same arithmetic for every caller, so the fallback word
// for a date never drifts.
func dayIndex(t time.Time) int64 {
	return t.Unix() / 86400
}

// fallbackWord returns the deterministic pool word for a parsed date.
func fallbackWord(t time.Time) string {
	idx := dayIndex(t) % int64(len(fallbackWords))
	if idx < 0 {
		idx += int64(len(fallbackWords))
	}
	return fallbackWords[idx]
}

// resolveSecretWord returns the secret word for a date: the persisted
// word if one exists (lower-cased, trusted as valid), otherwise the
// deterministic fallback. The word never leaves the server except on a
// terminal loss.
func (app *App) resolveSecretWord(ctx context.Context, date string) (string, error) {
	t, err := parseDate(date)
	if err != nil {
		return "", err
	}

	if app.Store == nil {
		return "", errStoreNotReady
	}

	word, found, err := app.Store.GetDailyWord(ctx, VariantWordle, date)
	if err != nil {
		return "", fmt.Errorf("daily word lookup for %s: %w", date, err)
	}
	if found {
		return strings.ToLower(word), nil
	}
	return fallbackWord(t), nil
}
