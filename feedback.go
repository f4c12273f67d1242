package main

// computeFeedback compares a guess to the target word and returns the
// per-position verdicts. Both inputs must already be normalized and
// exactly WordLength letters.
//
// Two passes so repeated letters are never over-counted: pass one
// consumes exact position matches, pass two gives each remaining guess
// letter the leftmost unconsumed occurrence in the target, if any. A
// letter therefore collects at most as many correct/present marks as it
// occurs in the target.
func computeFeedback(guess, target string) []string {
	g := []rune(guess)
	t := []rune(target)

	result := make([]string, WordLength)
	consumed := make([]bool, WordLength)

	for i := 0; i < WordLength; i++ {
		if g[i] == t[i] {
			result[i] = VerdictCorrect
			consumed[i] = true
		}
	}

	for i := 0; i < WordLength; i++ {
		if result[i] == VerdictCorrect {
			continue
		}
		result[i] = VerdictAbsent
		for j := 0; j < WordLength; j++ {
			if !consumed[j] && t[j] == g[i] {
				result[i] = VerdictPresent
				consumed[j] = true
				break
			}
		}
	}

	return result
}
