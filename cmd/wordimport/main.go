package main

import (
	"context"
	"flag"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/anagram/internal/config"
	"github.com/robalobadob/anagram/internal/wordimport"
)

func main() {
	env, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("read config")
	}
	env.SetupLogging()

	cfg, err := wordimport.ParseConfig(flag.CommandLine, os.Args[1:], env.WordsDB)
	if err != nil {
		log.Fatal().Err(err).Msg("parse flags")
	}
	if err := wordimport.Run(context.Background(), cfg, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("import words")
	}
}
