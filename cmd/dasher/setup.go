package main

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dapper-dasher/internal/assets"
	"github.com/vovakirdan/dapper-dasher/internal/config"
	"github.com/vovakirdan/dapper-dasher/internal/games/dasher"
	"github.com/vovakirdan/dapper-dasher/internal/storage"
)

// session is everything a play command needs.
type session struct {
	game     *dasher.Game
	textures *assets.Set
	store    *storage.Store // Nil when the database could not be opened
	watcher  *config.Watcher
	preset   config.DifficultyPreset
}

// newSession loads config and textures, builds the game and opens the run
// database. A database failure is logged and play continues unrecorded.
func newSession(logger *log.Logger) (*session, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	preset := config.ParsePreset(flagDifficulty)
	if flagDifficulty != "" && preset == "" {
		logger.Warn("unknown difficulty, using config values", "difficulty", flagDifficulty)
	}
	config.ApplyPreset(&cfg, preset)
	if flagAssets != "" {
		cfg.Assets.Dir = flagAssets
	}
	logger.Debug("config loaded", "source", source, "preset", preset)

	textures, err := assets.Load(cfg.Assets)
	if err != nil {
		return nil, err
	}
	logger.Debug("textures loaded", "source", textures.Source())

	game, err := dasher.New(cfg, textures)
	if err != nil {
		textures.Close()
		return nil, err
	}

	s := &session{game: game, textures: textures, preset: preset}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("run history disabled", "db", flagDBPath, "err", err)
	} else {
		s.store = store
	}

	if source != config.SourceEmbedded {
		w, err := config.NewWatcher(source)
		if err != nil {
			logger.Warn("config hot reload disabled", "path", source, "err", err)
		} else {
			s.watcher = w
			logger.Debug("watching config", "path", w.Path())
		}
	}
	return s, nil
}

// Close releases the session's resources.
func (s *session) Close() {
	if s.watcher != nil {
		_ = s.watcher.Close()
	}
	if s.store != nil {
		_ = s.store.Close()
	}
	s.textures.Close()
}
