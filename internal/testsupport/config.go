package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"shingle/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.DataDir = filepath.Join(base, "data")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.Paths.APIBind = "127.0.0.1:0"
	cfgVal.Paths.APIToken = ""

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithAPIToken sets the bearer token required by the API server.
func WithAPIToken(token string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Paths.APIToken = token
	}
}

// WithMatching overrides the window and minimum match sizes.
func WithMatching(window, minMatch int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Matching.WindowSize = window
		b.cfg.Matching.MinMatchSize = minMatch
	}
}

// WithMaxTokens overrides the per-document token bound.
func WithMaxTokens(limit int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Matching.MaxTokens = limit
	}
}

// WithHistoryDisabled turns off comparison history.
func WithHistoryDisabled() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.History.Enabled = false
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.DataDir)
}

// WriteText writes text to name inside the config's base directory and
// returns the full path.
func WriteText(t testing.TB, cfg *config.Config, name, text string) string {
	t.Helper()

	path := filepath.Join(BaseDir(cfg), name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
