// internal/words/words.go
//
// Dictionary (word bank) for the puzzle engine.
//
// Responsibilities:
//   - Hold the ordered list of dictionary words exactly as loaded.
//   - Provide the difficulty views (all, shorter than n, longer than n).
//   - Answer verbatim membership and anagram-class lookups.
//
// Notes:
//   - A Bank is immutable after construction and safe for concurrent reads.
//   - Duplicates are kept; insertion order decides "first match".
//   - Lengths are counted in runes, not bytes.

package words

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"
)

// Difficulty pool bounds, in runes.
const (
	EasierMaxExclusive = 6
	HarderMinExclusive = 10
)

// Bank is an ordered, read-only collection of dictionary words.
type Bank struct {
	words   []string            // as loaded, duplicates kept
	set     map[string]struct{} // verbatim membership
	classes map[string][]string // signature -> words in insertion order
}

// New builds a Bank from list without validation. The slice is copied.
// Loaders in this package reject empty dictionaries; New does not, so
// callers can exercise the empty-pool paths.
func New(list []string) *Bank {
	b := &Bank{
		words:   append([]string(nil), list...),
		set:     make(map[string]struct{}, len(list)),
		classes: make(map[string][]string, len(list)),
	}
	for _, w := range b.words {
		b.set[w] = struct{}{}
		sig := Signature(w)
		b.classes[sig] = append(b.classes[sig], w)
	}
	return b
}

// Len reports the number of entries, duplicates included.
func (b *Bank) Len() int { return len(b.words) }

// All returns every word in insertion order.
func (b *Bank) All() []string {
	return append([]string(nil), b.words...)
}

// ShorterThan returns the words with fewer than n characters.
func (b *Bank) ShorterThan(n int) []string {
	return lo.Filter(b.words, func(w string, _ int) bool {
		return utf8.RuneCountInString(w) < n
	})
}

// LongerThan returns the words with more than n characters.
func (b *Bank) LongerThan(n int) []string {
	return lo.Filter(b.words, func(w string, _ int) bool {
		return utf8.RuneCountInString(w) > n
	})
}

// Contains reports whether w is in the bank exactly as stored (case-sensitive).
func (b *Bank) Contains(w string) bool {
	_, ok := b.set[w]
	return ok
}

// AnagramClass returns every entry whose signature equals that of w,
// in insertion order. The result is empty when no entry shares it.
func (b *Bank) AnagramClass(w string) []string {
	return append([]string(nil), b.classes[Signature(w)]...)
}

// Stats summarises the bank for diagnostics.
type Stats struct {
	Total    int `json:"total"`
	Distinct int `json:"distinct"`
	Easier   int `json:"easier"`
	Harder   int `json:"harder"`
	Classes  int `json:"anagramClasses"`
	Longest  int `json:"longest"`
}

// Stats reports word counts per difficulty pool.
func (b *Bank) Stats() Stats {
	longest := lo.Reduce(b.words, func(acc int, w string, _ int) int {
		return max(acc, utf8.RuneCountInString(w))
	}, 0)
	return Stats{
		Total:    len(b.words),
		Distinct: len(b.set),
		Easier:   len(b.ShorterThan(EasierMaxExclusive)),
		Harder:   len(b.LongerThan(HarderMinExclusive)),
		Classes:  len(b.classes),
		Longest:  longest,
	}
}

// Signature is the anagram key of w: its lowercased runes in ascending order.
// Two words are anagrams of each other iff their signatures are equal.
func Signature(w string) string {
	r := []rune(strings.ToLower(w))
	sort.Slice(r, func(i, j int) bool { return r[i] < r[j] })
	return string(r)
}
