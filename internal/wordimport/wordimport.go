// Package wordimport loads a word list file into the SQLite dictionary.
package wordimport

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/anagram/internal/dictdb"
	"github.com/robalobadob/anagram/internal/words"
)

// DefaultDB is used when neither -db nor WORDS_DB is set.
const DefaultDB = "./data/words.db"

// Config holds the importer flags.
type Config struct {
	DB      string
	In      string
	Replace bool
}

// ParseConfig parses flags into a Config. defaultDB seeds -db.
func ParseConfig(fs *flag.FlagSet, args []string, defaultDB string) (Config, error) {
	if defaultDB == "" {
		defaultDB = DefaultDB
	}
	cfg := Config{DB: defaultDB}
	fs.StringVar(&cfg.DB, "db", cfg.DB, "SQLite dictionary file")
	fs.StringVar(&cfg.In, "in", "", "word list to import (.json, .plist or one word per line)")
	fs.BoolVar(&cfg.Replace, "replace", false, "delete existing words before importing")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run imports cfg.In into cfg.DB and writes a one-line summary to out.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if cfg.In == "" {
		return errors.New("-in is required")
	}
	if cfg.DB == "" {
		return errors.New("-db is required")
	}
	if out == nil {
		return errors.New("output is required")
	}

	data, err := os.ReadFile(cfg.In)
	if err != nil {
		return &words.LoadError{Source: cfg.In, Err: err}
	}
	list, err := words.ParseList(cfg.In, data)
	if err != nil {
		return err
	}

	db, err := dictdb.Open(cfg.DB)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := dictdb.Migrate(ctx, db); err != nil {
		return err
	}

	n, err := dictdb.Import(ctx, db, list, cfg.Replace)
	if err != nil {
		return err
	}
	log.Info().Str("db", cfg.DB).Str("in", cfg.In).Int("words", n).Bool("replace", cfg.Replace).Msg("imported")
	_, err = fmt.Fprintf(out, "imported %d words into %s\n", n, cfg.DB)
	return err
}
