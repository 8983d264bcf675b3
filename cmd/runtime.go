package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kaptenjon/mathquest/internal/config"
	"github.com/kaptenjon/mathquest/internal/engine"
	"github.com/kaptenjon/mathquest/internal/game"
	"github.com/kaptenjon/mathquest/internal/i18n"
	"github.com/kaptenjon/mathquest/internal/logging"
	"github.com/kaptenjon/mathquest/internal/player"
	"github.com/kaptenjon/mathquest/internal/screens"
	"github.com/kaptenjon/mathquest/internal/store"
)

// errNoProfile is returned by commands that need a saved player.
var errNoProfile = errors.New("no profile yet: run `mathquest profile --name <name> --grade <n>` or start the game")

// runtime is everything a command needs, opened from config and flags.
type runtime struct {
	cfg    config.Config
	logger *slog.Logger
	store  *store.Store
	text   *i18n.Localizer
	engine *engine.Engine
	writer *game.Writer

	// hasProfile is false until a profile has been saved.
	hasProfile bool

	closers []io.Closer
}

// openRuntime loads configuration, opens the log and the store, and
// restores the saved player.
func openRuntime(cmd *cobra.Command) (*runtime, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	rt := &runtime{cfg: cfg}

	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}

	level, _ := cfg.Level()
	logPath := cfg.LogFile
	if logPath == "" {
		logPath = filepath.Join(filepath.Dir(dbPath), "mathquest.log")
	}
	logger, logCloser, err := logging.Open(logPath, level)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	rt.logger = logger
	rt.closers = append(rt.closers, logCloser)

	st, err := store.Open(dbPath)
	if err != nil {
		rt.Close()
		return nil, fmt.Errorf("open store: %w", err)
	}
	rt.store = st
	rt.closers = append(rt.closers, st)

	text, err := i18n.NewDefault()
	if err != nil {
		rt.Close()
		return nil, fmt.Errorf("load catalogs: %w", err)
	}
	rt.text = text
	rt.engine = engine.New(&player.Player{}, text)

	found, err := game.Restore(cmd.Context(), rt.engine, st.ProfileRepo(), st.EventRepo())
	if err != nil {
		rt.Close()
		return nil, err
	}
	rt.hasProfile = found

	tag := text.SetLanguage(resolveLanguage(cmd, cfg, rt.engine.Player().Language))
	logger.Info("runtime ready",
		"db", dbPath,
		"profile", found,
		"language", tag.String())

	rt.writer = game.NewWriter(st.ProfileRepo(), st.EventRepo(), logger)
	return rt, nil
}

// deps returns the screen dependencies for this runtime.
func (rt *runtime) deps() *screens.Deps {
	return &screens.Deps{
		Engine:    rt.engine,
		Text:      rt.text,
		Sink:      rt.writer,
		Events:    rt.store.EventRepo(),
		Logger:    rt.logger,
		Questions: rt.cfg.Questions,
	}
}

// Close drains pending writes, then closes the store and the log.
func (rt *runtime) Close() {
	if rt.writer != nil {
		rt.writer.Close()
	}
	for i := len(rt.closers) - 1; i >= 0; i-- {
		if err := rt.closers[i].Close(); err != nil && rt.logger != nil {
			rt.logger.Warn("close failed", "error", err)
		}
	}
	rt.closers = nil
}
