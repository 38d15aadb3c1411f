package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/anagram/internal/config"
	"github.com/robalobadob/anagram/internal/dictdb"
	"github.com/robalobadob/anagram/internal/game"
	"github.com/robalobadob/anagram/internal/httpserver"
	"github.com/robalobadob/anagram/internal/store"
	"github.com/robalobadob/anagram/internal/ticket"
	"github.com/robalobadob/anagram/internal/words"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to read config")
	}
	cfg.SetupLogging()

	bank, err := loadBank(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word list")
	}
	st := bank.Stats()
	log.Info().
		Int("words", st.Total).
		Int("easier", st.Easier).
		Int("harder", st.Harder).
		Msg("dictionary loaded")

	engine := game.NewEngine(bank, game.WithMaxAttempts(cfg.MaxScrambleAttempts))
	srv := httpserver.New(
		engine,
		store.NewMemoryStore(cfg.PuzzleTTL),
		ticket.NewSigner(cfg.TicketSecret, cfg.PuzzleTTL),
		httpserver.Options{
			ClientOrigin:        cfg.ClientOrigin,
			DailySalt:           cfg.DailySalt,
			MaxScrambleAttempts: cfg.MaxScrambleAttempts,
			RateLimitRPS:        cfg.RateLimitRPS,
			RateLimitBurst:      cfg.RateLimitBurst,
			RequestTimeout:      cfg.RequestTimeout,
		},
	)

	hs := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	idle := make(chan struct{})
	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		log.Info().Msg("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := hs.Shutdown(ctx); err != nil {
			log.Warn().Err(err).Msg("http shutdown")
		}
		close(idle)
	}()

	log.Info().Str("port", cfg.Port).Msg("starting anagram server")
	if err := hs.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server exited")
	}
	<-idle
}

// loadBank picks the dictionary source: WORDS_DB, then WORDS_FILE, then the
// embedded list.
func loadBank(cfg config.Config) (*words.Bank, error) {
	switch {
	case cfg.WordsDB != "":
		db, err := dictdb.Open(cfg.WordsDB)
		if err != nil {
			return nil, err
		}
		defer db.Close()
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := dictdb.Migrate(ctx, db); err != nil {
			return nil, err
		}
		return dictdb.LoadBank(ctx, db, cfg.WordsDB)
	case cfg.WordsFile != "":
		return words.Load(cfg.WordsFile)
	default:
		return words.LoadEmbedded()
	}
}
