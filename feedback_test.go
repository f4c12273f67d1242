package main

import (
	"strings"
	"testing"
)

func TestComputeFeedback_AllCorrect(t *testing.T) {
	res := computeFeedback("CHIEN", "CHIEN")
	for i, v := range res {
		if v != VerdictCorrect {
			t.Errorf("Position %d: expected correct, got %v", i, v)
		}
	}
}

func TestComputeFeedback_AllAbsent(t *testing.T) {
	res := computeFeedback("ZZZZZ", "CHIEN")
	for i, v := range res {
		if v != VerdictAbsent {
			t.Errorf("Position %d: expected absent, got %v", i, v)
		}
	}
}

func TestComputeFeedback_Mixed(t *testing.T) {
	// BRAVE vs NOIRE: only the R is present elsewhere, the E matches.
	res := computeFeedback("BRAVE", "NOIRE")
	want := []string{VerdictAbsent, VerdictPresent, VerdictAbsent, VerdictAbsent, VerdictCorrect}
	for i := range want {
		if res[i] != want[i] {
			t.Errorf("Position %d: expected %v, got %v", i, want[i], res[i])
		}
	}
}

func TestComputeFeedback_RepeatedLettersNotOvercounted(t *testing.T) {
	// EBBEE vs BOIRE: one B and one E in the target, so at most one
	// non-absent mark each.
	res := computeFeedback("EBBEE", "BOIRE")
	want := []string{VerdictAbsent, VerdictPresent, VerdictAbsent, VerdictAbsent, VerdictCorrect}
	for i := range want {
		if res[i] != want[i] {
			t.Errorf("Position %d: expected %v, got %v", i, want[i], res[i])
		}
	}
}

func TestComputeFeedback_CorrectCountMatchesPositions(t *testing.T) {
	pairs := [][2]string{
		{"POULE", "TABLE"},
		{"FERME", "PERLE"},
		{"NOIRE", "BOIRE"},
		{"MAGIE", "MAGIE"},
	}
	for _, p := range pairs {
		guess, target := p[0], p[1]
		res := computeFeedback(guess, target)

		wantCorrect := 0
		for i := 0; i < WordLength; i++ {
			if guess[i] == target[i] {
				wantCorrect++
			}
		}
		gotCorrect := 0
		for _, v := range res {
			if v == VerdictCorrect {
				gotCorrect++
			}
		}
		if gotCorrect != wantCorrect {
			t.Errorf("%s vs %s: %d correct verdicts, want %d", guess, target, gotCorrect, wantCorrect)
		}
	}
}

func TestComputeFeedback_MarksNeverExceedOccurrences(t *testing.T) {
	pairs := [][2]string{
		{"EBBEE", "BOIRE"},
		{"EEEEE", "FERME"},
		{"LLLLL", "SOLDE"},
		{"PPPAA", "NAPPE"},
	}
	for _, p := range pairs {
		guess, target := p[0], p[1]
		res := computeFeedback(guess, target)
		for _, letter := range "ABCDEFGHIJKLMNOPQRSTUVWXYZ" {
			marks := 0
			for i, v := range res {
				if rune(guess[i]) == letter && v != VerdictAbsent {
					marks++
				}
			}
			if occ := strings.Count(target, string(letter)); marks > occ {
				t.Errorf("%s vs %s: letter %c got %d marks, target has %d occurrences",
					guess, target, letter, marks, occ)
			}
		}
	}
}

func TestComputeFeedback_Length(t *testing.T) {
	res := computeFeedback("FLEUR", "MONDE")
	if len(res) != WordLength {
		t.Errorf("Expected %d verdicts, got %d", WordLength, len(res))
	}
}
