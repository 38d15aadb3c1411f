// internal/game/engine.go
//
// Puzzle engine: word selection, scrambling and guess verification.
// Responsibilities:
//   - Pick a source word from the pool implied by a Difficulty.
//   - Scramble it with a bounded shuffle until the result is neither the
//     source word nor any dictionary entry (bounded by maxAttempts).
//   - Verify a guess against the anagram class of the source word.
//
// Notes:
//   - The engine only reads the Bank; the random source is guarded by a
//     mutex, so one Engine may be shared by concurrent callers.
//   - All calls are synchronous and run to completion.
package game

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/anagram/internal/random"
	"github.com/robalobadob/anagram/internal/words"
)

// DefaultMaxAttempts bounds the scramble retry loop.
const DefaultMaxAttempts = 100

// Engine generates and verifies puzzles over a single Bank.
type Engine struct {
	bank        *words.Bank
	rng         random.Source
	maxAttempts int
}

// Option configures an Engine.
type Option func(*Engine)

// WithRand makes the engine draw all randomness from src.
func WithRand(src random.Source) Option {
	return func(e *Engine) { e.rng = random.NewLocked(src) }
}

// WithMaxAttempts overrides DefaultMaxAttempts. Values < 1 are ignored.
func WithMaxAttempts(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxAttempts = n
		}
	}
}

// NewEngine constructs an engine over bank.
// Without WithRand, a math/rand source seeded from crypto/rand is used.
func NewEngine(bank *words.Bank, opts ...Option) *Engine {
	e := &Engine{bank: bank, maxAttempts: DefaultMaxAttempts}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		r, err := random.NewRand()
		if err != nil {
			log.Warn().Err(err).Msg("crypto seed unavailable, seeding from clock")
			r = rand.New(rand.NewSource(time.Now().UnixNano()))
		}
		e.rng = random.NewLocked(r)
	}
	return e
}

// Bank returns the dictionary the engine reads.
func (e *Engine) Bank() *words.Bank { return e.bank }

// GeneratePuzzle picks a word from the pool for d and scrambles it.
// window is the shuffle window; 0 shuffles the whole word.
//
// Errors:
//   - ErrUnknownDifficulty for d outside the enum.
//   - ErrNoWordsAvailable when the pool is empty.
//   - ErrUnscramblableWord (wrapped) when the retry limit is reached.
func (e *Engine) GeneratePuzzle(d Difficulty, window int) (Puzzle, error) {
	pool, err := e.pool(d)
	if err != nil {
		return Puzzle{}, err
	}
	if len(pool) == 0 {
		return Puzzle{}, fmt.Errorf("%w for difficulty %q", ErrNoWordsAvailable, d)
	}
	original := pool[e.rng.Intn(len(pool))]
	scrambled, err := e.Scramble(original, window)
	if err != nil {
		return Puzzle{}, err
	}
	return Puzzle{Original: original, Scrambled: scrambled}, nil
}

// Scramble shuffles word until the result differs from word and is not a
// dictionary entry (case-sensitive). Each attempt starts from word itself.
func (e *Engine) Scramble(word string, window int) (string, error) {
	src := []rune(word)
	buf := make([]rune, len(src))
	for attempt := 0; attempt < e.maxAttempts; attempt++ {
		copy(buf, src)
		Shuffle(e.rng, buf, window)
		candidate := string(buf)
		if candidate != word && !e.bank.Contains(candidate) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w: %q after %d attempts", ErrUnscramblableWord, word, e.maxAttempts)
}

// VerifyGuess reports whether guess names a dictionary word that is an
// anagram of original, ignoring case. The first such entry in dictionary
// order is returned in its stored casing. A guess that is an anagram but
// not in the dictionary does not match.
func (e *Engine) VerifyGuess(original, guess string) Verification {
	g := strings.ToLower(guess)
	for _, w := range e.bank.AnagramClass(original) {
		if strings.ToLower(w) == g {
			return Verification{Matched: true, MatchedWord: w}
		}
	}
	return Verification{}
}

// pool returns the candidate source words for d.
func (e *Engine) pool(d Difficulty) ([]string, error) {
	switch d {
	case DifficultyNew:
		return e.bank.All(), nil
	case DifficultyEasier:
		return e.bank.ShorterThan(words.EasierMaxExclusive), nil
	case DifficultyHarder:
		return e.bank.LongerThan(words.HarderMinExclusive), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDifficulty, d)
	}
}
