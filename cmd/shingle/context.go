package main

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"shingle/internal/api"
	"shingle/internal/comparison"
	"shingle/internal/config"
	"shingle/internal/history"
	"shingle/internal/logging"
)

type commandContext struct {
	configFlag *string
	verbose    *bool

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
}

func newCommandContext(configFlag *string, verbose *bool) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		verbose:    verbose,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// commandLogger returns the shared logger. Interactive commands log warnings
// only unless --verbose is set; long-running commands pass full to keep the
// configured level.
func (c *commandContext) commandLogger(full bool) *slog.Logger {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		level := cfg.Logging.Level
		if !full && (c.verbose == nil || !*c.verbose) {
			level = "warn"
		}
		logger, err := logging.New(logging.Options{
			Level:       level,
			Format:      cfg.Logging.Format,
			OutputPaths: []string{"stderr"},
			FilePath:    filepath.Join(cfg.Paths.LogDir, logging.LogFileName),
		})
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		c.logger = logger
	})
	return c.logger
}

// openStore opens the history store when history is enabled. The returned
// close function is always safe to call.
func (c *commandContext) openStore(cfg *config.Config) (*history.Store, func(), error) {
	if !cfg.History.Enabled {
		return nil, func() {}, nil
	}
	store, err := history.Open(cfg)
	if err != nil {
		return nil, func() {}, fmt.Errorf("open history: %w", err)
	}
	return store, func() { _ = store.Close() }, nil
}

// newService builds a comparison service for cfg backed by store, which may be nil.
func (c *commandContext) newService(cfg *config.Config, store *history.Store, source history.Source, logger *slog.Logger) (*api.ComparisonService, error) {
	engine, err := comparison.NewFromConfig(cfg, logger)
	if err != nil {
		return nil, err
	}
	opts := api.ServiceOptions{
		Settings: cfg.ComparisonDigest(),
		Reuse:    cfg.History.ReuseResults,
		Source:   source,
		Logger:   logger,
	}
	if store != nil {
		opts.Store = store
	}
	return api.NewComparisonService(engine, opts), nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
