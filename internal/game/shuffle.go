package game

import "github.com/robalobadob/anagram/internal/random"

// Shuffle permutes the first window elements of s in place using
// Fisher–Yates with values drawn from src. Elements at index >= window are
// left untouched.
//
// A window outside [2, len(s)] means the whole slice. Slices shorter than
// two elements are returned as-is without consuming randomness.
func Shuffle[T any](src random.Source, s []T, window int) {
	n := len(s)
	if n < 2 {
		return
	}
	if window < 2 || window > n {
		window = n
	}
	for i := 0; i < window-1; i++ {
		j := i + src.Intn(window-i)
		if i != j {
			s[i], s[j] = s[j], s[i]
		}
	}
}
