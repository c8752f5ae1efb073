package service

import "math/rand"

// ShuffleChoices produces a uniformly random display order for a question's
// choices via Fisher-Yates, returning the shuffled texts and the permutation
// with choiceOrder[displayIndex] = originalIndex. Callers shuffle once per
// question per attempt; the permutation is what gets persisted, the correct
// index never travels with it.
func ShuffleChoices(rng *rand.Rand, choices []string) ([]string, []int) {
	order := make([]int, len(choices))
	for i := range order {
		order[i] = i
	}
	for i := len(order) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		order[i], order[j] = order[j], order[i]
	}

	display := make([]string, len(order))
	for d, original := range order {
		display[d] = choices[original]
	}
	return display, order
}

// CorrectDisplayIndex finds the display position holding the canonical
// correct index. Returns -1 if choiceOrder is not a full permutation, which
// indicates corrupt stored data.
func CorrectDisplayIndex(choiceOrder []int, correctOriginalIndex int) int {
	for d, original := range choiceOrder {
		if original == correctOriginalIndex {
			return d
		}
	}
	return -1
}

// ApplyChoiceOrder re-derives the display texts from the stored permutation.
// Views always recompute from choiceOrder rather than re-shuffling, so the
// user sees the same order for the whole attempt.
func ApplyChoiceOrder(choices []string, choiceOrder []int) []string {
	display := make([]string, len(choiceOrder))
	for d, original := range choiceOrder {
		display[d] = choices[original]
	}
	return display
}
