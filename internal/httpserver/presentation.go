package httpserver

import (
	"unicode/utf8"

	"github.com/robalobadob/anagram/internal/game"
)

const (
	handicapLetters  = 3
	handicapMinChars = 6 // handicap and "easier" need a word longer than 5
	harderMaxChars   = 9 // "harder" is offered below 10 characters
)

// options lists the follow-up actions a UI should offer for a puzzle built
// from original.
func options(original string) []string {
	n := runeLen(original)
	out := make([]string, 0, 3)
	if n >= handicapMinChars {
		out = append(out, game.DifficultyEasier.String())
	}
	if n <= harderMaxChars {
		out = append(out, game.DifficultyHarder.String())
	}
	return append(out, game.DifficultyNew.String())
}

// handicap returns the first letters of original, or false for short words.
func handicap(original string) (string, bool) {
	r := []rune(original)
	if len(r) < handicapMinChars {
		return "", false
	}
	return string(r[:handicapLetters]), true
}

func runeLen(s string) int { return utf8.RuneCountInString(s) }
