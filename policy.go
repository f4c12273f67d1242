package main

import (
	"context"
	"unicode/utf8"
)

// evaluateAttempt runs one guess against the daily puzzle for a date:
// validate, resolve the secret, compute feedback, and decide the
// outcome. attemptNumber is caller-supplied and trusted; the server
// keeps no per-player counter, so loss detection (and the word reveal
// that comes with it) rides entirely on what the client reports.
func (app *App) evaluateAttempt(ctx context.Context, guess, date string, attemptNumber int) (*FeedbackResult, error) {
	if _, err := parseDate(date); err != nil {
		return nil, err
	}

	normalizedGuess := normalizeWord(guess)
	if utf8.RuneCountInString(normalizedGuess) != WordLength {
		return nil, errInvalidGuess
	}

	secret, err := app.resolveSecretWord(ctx, date)
	if err != nil {
		return nil, err
	}
	normalizedSecret := normalizeWord(secret)

	feedback := computeFeedback(normalizedGuess, normalizedSecret)
	isWin := normalizedGuess == normalizedSecret
	isLoss := !isWin && attemptNumber >= MaxAttempts

	result := &FeedbackResult{
		Feedback: feedback,
		IsWin:    isWin,
	}
	if isLoss {
		// Terminal loss is the only path that exposes the secret.
		revealed := secret
		result.RevealedWord = &revealed
	}
	return result, nil
}
