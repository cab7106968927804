package main

import (
	"fmt"
	"log/slog"

	"toxicity-coach/infrastructure/storage"
	"toxicity-coach/internal"
	"toxicity-coach/lexicon"
	"toxicity-coach/scoring"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
)

// app holds what every command shares: configuration, logger and the Badger store.
type app struct {
	config   internal.Config
	log      *slog.Logger
	db       *badger.DB
	policies *storage.PolicyRepository
	scores   *storage.ScoreRepository
}

func openApp() (*app, error) {
	config, err := internal.Load()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errConfig, err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return nil, fmt.Errorf("database opening failed: %w", err)
	}
	return &app{
		config:   config,
		log:      log,
		db:       db,
		policies: storage.NewPolicyRepository(db, log),
		scores:   storage.NewScoreRepository(db, log),
	}, nil
}

func (a *app) Close() {
	a.log.Debug("Closing BadgerDB...")
	_ = a.db.Close()
}

// loadScorer loads the lexicon once; any failure aborts the command before a message is scored.
func (a *app) loadScorer() (*lexicon.Lexicon, *scoring.Scorer, error) {
	lex, err := lexicon.Load(a.config.LexiconPath)
	if err != nil {
		return nil, nil, err
	}
	a.log.Info("Lexicon loaded",
		"path", a.config.LexiconPath,
		"terms", lex.Len(),
		"words", lex.WordCount(),
		"phrases", len(lex.Phrases()),
		"max_phrase_length", lex.MaxPhraseLength())
	scorer, err := scoring.NewScorer(lex)
	if err != nil {
		return nil, nil, err
	}
	return lex, scorer, nil
}
