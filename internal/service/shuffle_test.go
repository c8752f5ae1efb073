package service

import (
	"math/rand"
	"testing"
)

func TestShuffleChoicesIsPermutation(t *testing.T) {
	choices := []string{"a", "b", "c", "d"}

	for seed := int64(0); seed < 25; seed++ {
		rng := rand.New(rand.NewSource(seed))
		shuffled, order := ShuffleChoices(rng, choices)

		if len(shuffled) != len(choices) || len(order) != len(choices) {
			t.Fatalf("seed %d: got %d shuffled and %d order entries, want %d", seed, len(shuffled), len(order), len(choices))
		}

		seen := map[int]bool{}
		for display, original := range order {
			if original < 0 || original >= len(choices) {
				t.Fatalf("seed %d: order[%d] = %d out of range", seed, display, original)
			}
			if seen[original] {
				t.Fatalf("seed %d: original index %d appears twice", seed, original)
			}
			seen[original] = true

			if shuffled[display] != choices[original] {
				t.Errorf("seed %d: shuffled[%d] = %q, want %q", seed, display, shuffled[display], choices[original])
			}
		}
	}
}

func TestShuffleChoicesDoesNotMutateInput(t *testing.T) {
	choices := []string{"a", "b", "c", "d"}
	rng := rand.New(rand.NewSource(7))

	ShuffleChoices(rng, choices)

	want := []string{"a", "b", "c", "d"}
	for i := range want {
		if choices[i] != want[i] {
			t.Fatalf("input mutated: choices[%d] = %q, want %q", i, choices[i], want[i])
		}
	}
}

func TestCorrectDisplayIndex(t *testing.T) {
	tests := []struct {
		name          string
		choiceOrder   []int
		correctIndex  int
		wantDisplayed int
	}{
		{"identity order", []int{0, 1, 2, 3}, 2, 2},
		{"reversed order", []int{3, 2, 1, 0}, 0, 3},
		{"mixed order", []int{2, 0, 3, 1}, 3, 2},
		{"first position", []int{1, 3, 0, 2}, 1, 0},
		{"missing index", []int{0, 1, 2, 3}, 5, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CorrectDisplayIndex(tt.choiceOrder, tt.correctIndex)
			if got != tt.wantDisplayed {
				t.Errorf("CorrectDisplayIndex(%v, %d) = %d, want %d", tt.choiceOrder, tt.correctIndex, got, tt.wantDisplayed)
			}
		})
	}
}

func TestCorrectDisplayIndexRoundTrip(t *testing.T) {
	choices := []string{"a", "b", "c", "d"}

	for seed := int64(0); seed < 10; seed++ {
		rng := rand.New(rand.NewSource(seed))
		shuffled, order := ShuffleChoices(rng, choices)

		for original := range choices {
			display := CorrectDisplayIndex(order, original)
			if display < 0 {
				t.Fatalf("seed %d: original index %d not found in %v", seed, original, order)
			}
			if shuffled[display] != choices[original] {
				t.Errorf("seed %d: round trip broke, shuffled[%d] = %q, want %q", seed, display, shuffled[display], choices[original])
			}
		}
	}
}

func TestApplyChoiceOrder(t *testing.T) {
	choices := []string{"a", "b", "c", "d"}
	order := []int{2, 0, 3, 1}

	got := ApplyChoiceOrder(choices, order)
	want := []string{"c", "a", "d", "b"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ApplyChoiceOrder[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
