package game

import (
	"errors"
	"math/rand"
	"strings"
	"sync"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/anagram/internal/words"
)

func seeded(seed int64) Option {
	return WithRand(rand.New(rand.NewSource(seed)))
}

func TestGeneratePuzzleRejectsDictionaryScrambles(t *testing.T) {
	bank := words.New([]string{"cat", "act", "dog"})
	// 0 picks "cat"; (1,0) shuffles to "act" which is a word; (2,0) gives "tac".
	src := newScripted(t, 0, 1, 0, 2, 0)
	e := NewEngine(bank, WithRand(src))

	p, err := e.GeneratePuzzle(DifficultyNew, 3)
	require.NoError(t, err)
	assert.Equal(t, Puzzle{Original: "cat", Scrambled: "tac"}, p)
	assert.True(t, src.done())
}

func TestVerifyGuessScenario(t *testing.T) {
	e := NewEngine(words.New([]string{"cat", "act", "dog"}), seeded(1))

	assert.Equal(t, Verification{Matched: true, MatchedWord: "act"}, e.VerifyGuess("cat", "act"))
	assert.Equal(t, Verification{}, e.VerifyGuess("cat", "dog"))
	assert.Equal(t, Verification{Matched: true, MatchedWord: "cat"}, e.VerifyGuess("cat", "cat"))
}

func TestVerifyGuess(t *testing.T) {
	bank := words.New([]string{"Shovel", "listen", "silent", "Paris", "pairs", "cat", "Cat"})
	e := NewEngine(bank, seeded(1))

	tests := []struct {
		name     string
		original string
		guess    string
		want     Verification
	}{
		{name: "original any case", original: "Shovel", guess: "sHoVeL", want: Verification{true, "Shovel"}},
		{name: "other anagram", original: "listen", guess: "SILENT", want: Verification{true, "silent"}},
		{name: "keeps dictionary casing", original: "pairs", guess: "paris", want: Verification{true, "Paris"}},
		{name: "first in insertion order", original: "cat", guess: "CAT", want: Verification{true, "cat"}},
		{name: "anagram not in dictionary", original: "listen", guess: "tinsel", want: Verification{}},
		{name: "dictionary word not an anagram", original: "listen", guess: "Paris", want: Verification{}},
		{name: "empty guess", original: "cat", guess: "", want: Verification{}},
		{name: "original not in bank", original: "bird", guess: "bird", want: Verification{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.VerifyGuess(tt.original, tt.guess))
		})
	}
}

func TestGeneratePuzzleProperties(t *testing.T) {
	bank, err := words.LoadEmbedded()
	require.NoError(t, err)
	e := NewEngine(bank, seeded(2024))

	for _, d := range []Difficulty{DifficultyNew, DifficultyEasier, DifficultyHarder} {
		for _, window := range []int{0, 2, 3, 5} {
			for i := 0; i < 200; i++ {
				p, err := e.GeneratePuzzle(d, window)
				if errors.Is(err, ErrUnscramblableWord) {
					continue
				}
				require.NoError(t, err)

				assert.NotEqual(t, p.Original, p.Scrambled)
				assert.False(t, bank.Contains(p.Scrambled), "scramble %q is a dictionary word", p.Scrambled)
				assert.Equal(t, sortedRunes(p.Original), sortedRunes(p.Scrambled))
				assert.True(t, bank.Contains(p.Original))

				n := utf8.RuneCountInString(p.Original)
				switch d {
				case DifficultyEasier:
					assert.Less(t, n, words.EasierMaxExclusive, p.Original)
				case DifficultyHarder:
					assert.Greater(t, n, words.HarderMinExclusive, p.Original)
				}
				if window >= 2 && window < n {
					assert.Equal(t, string([]rune(p.Original)[window:]), string([]rune(p.Scrambled)[window:]))
				}

				v := e.VerifyGuess(p.Original, p.Original)
				assert.True(t, v.Matched)
				assert.Equal(t, p.Original, v.MatchedWord)

				v = e.VerifyGuess(p.Original, strings.ToUpper(p.Original))
				assert.True(t, v.Matched)
			}
		}
	}
}

func TestGeneratePuzzleEmptyPools(t *testing.T) {
	e := NewEngine(words.New([]string{"cat", "act", "dog"}), seeded(1))

	_, err := e.GeneratePuzzle(DifficultyHarder, 0)
	assert.ErrorIs(t, err, ErrNoWordsAvailable)

	e = NewEngine(words.New([]string{"encyclopedia"}), seeded(1))
	_, err = e.GeneratePuzzle(DifficultyEasier, 0)
	assert.ErrorIs(t, err, ErrNoWordsAvailable)

	e = NewEngine(words.New(nil), seeded(1))
	for _, d := range []Difficulty{DifficultyNew, DifficultyEasier, DifficultyHarder} {
		_, err = e.GeneratePuzzle(d, 0)
		assert.ErrorIs(t, err, ErrNoWordsAvailable, d.String())
	}
}

func TestGeneratePuzzleUnknownDifficulty(t *testing.T) {
	e := NewEngine(words.New([]string{"cat"}), seeded(1))
	_, err := e.GeneratePuzzle(Difficulty("impossible"), 0)
	assert.ErrorIs(t, err, ErrUnknownDifficulty)
}

func TestScrambleGivesUp(t *testing.T) {
	tests := []struct {
		name string
		bank []string
	}{
		{name: "single letter", bank: []string{"a"}},
		{name: "repeated letters", bank: []string{"aa"}},
		{name: "every permutation is a word", bank: []string{"no", "on"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEngine(words.New(tt.bank), seeded(5), WithMaxAttempts(10))
			_, err := e.GeneratePuzzle(DifficultyNew, 0)
			require.ErrorIs(t, err, ErrUnscramblableWord)
			assert.Contains(t, err.Error(), "after 10 attempts")
		})
	}
}

func TestScrambleWindow(t *testing.T) {
	e := NewEngine(words.New([]string{"abcdefgh"}), seeded(11))
	for i := 0; i < 100; i++ {
		s, err := e.Scramble("abcdefgh", 3)
		require.NoError(t, err)
		assert.Equal(t, "defgh", s[3:])
		assert.NotEqual(t, "abcdefgh", s)
	}
}

func TestScrambleUnicode(t *testing.T) {
	e := NewEngine(words.New([]string{"éclair"}), seeded(3))
	s, err := e.Scramble("éclair", 0)
	require.NoError(t, err)
	assert.True(t, utf8.ValidString(s))
	assert.Equal(t, sortedRunes("éclair"), sortedRunes(s))
}

func TestWithMaxAttemptsIgnoresNonPositive(t *testing.T) {
	e := NewEngine(words.New(nil), WithMaxAttempts(0), WithMaxAttempts(-1))
	assert.Equal(t, DefaultMaxAttempts, e.maxAttempts)
}

func TestEngineConcurrentUse(t *testing.T) {
	bank, err := words.LoadEmbedded()
	require.NoError(t, err)
	e := NewEngine(bank)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				p, err := e.GeneratePuzzle(DifficultyNew, 0)
				if err != nil {
					if !errors.Is(err, ErrUnscramblableWord) {
						t.Errorf("GeneratePuzzle: %v", err)
					}
					continue
				}
				if !e.VerifyGuess(p.Original, p.Original).Matched {
					t.Errorf("round trip failed for %q", p.Original)
				}
			}
		}()
	}
	wg.Wait()
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in      string
		want    Difficulty
		wantErr bool
	}{
		{in: "", want: DifficultyNew},
		{in: "new", want: DifficultyNew},
		{in: " Easier ", want: DifficultyEasier},
		{in: "HARDER", want: DifficultyHarder},
		{in: "medium", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDifficulty(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownDifficulty)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
