// internal/game/types.go
//
// Core type definitions for the anagram puzzle engine.
// Defines:
//   - Difficulty: which slice of the dictionary a puzzle is drawn from.
//   - Puzzle: an original word and its scrambled form.
//   - Verification: the outcome of checking a guess.
//   - The error values returned by the engine.

package game

import (
	"errors"
	"fmt"
	"strings"
)

// Difficulty selects the word pool for a new puzzle.
// Possible values:
//   - "new":    any dictionary word.
//   - "easier": words shorter than 6 characters.
//   - "harder": words longer than 10 characters.
type Difficulty string

const (
	DifficultyNew    Difficulty = "new"
	DifficultyEasier Difficulty = "easier"
	DifficultyHarder Difficulty = "harder"
)

func (d Difficulty) String() string { return string(d) }

// ParseDifficulty maps user input to a Difficulty. Empty input means new.
func ParseDifficulty(s string) (Difficulty, error) {
	switch d := Difficulty(strings.ToLower(strings.TrimSpace(s))); d {
	case "":
		return DifficultyNew, nil
	case DifficultyNew, DifficultyEasier, DifficultyHarder:
		return d, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownDifficulty, s)
	}
}

// Puzzle is one scrambled word handed to a player.
type Puzzle struct {
	Original  string // dictionary entry the scramble was made from
	Scrambled string // permutation of Original; never equal to it, never a dictionary entry
}

// Verification is the result of checking a guess against a puzzle.
type Verification struct {
	Matched     bool
	MatchedWord string // dictionary casing of the match; empty unless Matched
}

var (
	// ErrNoWordsAvailable is returned when the difficulty pool is empty.
	ErrNoWordsAvailable = errors.New("no words available")

	// ErrUnscramblableWord is returned when no acceptable scramble was found
	// within the attempt limit.
	ErrUnscramblableWord = errors.New("word cannot be scrambled")

	// ErrUnknownDifficulty is returned for difficulty values outside the enum.
	ErrUnknownDifficulty = errors.New("unknown difficulty")
)
