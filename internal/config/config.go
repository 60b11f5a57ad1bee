package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/zeebo/blake3"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory and bind address configuration.
type Paths struct {
	DataDir  string `toml:"data_dir"`
	LogDir   string `toml:"log_dir"`
	APIBind  string `toml:"api_bind"`
	APIToken string `toml:"api_token"`
}

// Matching contains the fuzzy shingle parameters.
type Matching struct {
	// WindowSize is the shingle length in tokens. Default: 7
	WindowSize int `toml:"window_size"`
	// MinMatchSize is the number of distinct shared words that flags a window
	// pair. Default: 4
	MinMatchSize int `toml:"min_match_size"`
	// MaxTokens bounds each document after normalization. Default: 20000
	MaxTokens int `toml:"max_tokens"`
	// Workers splits matching across goroutines; 0 or 1 runs sequentially.
	Workers int `toml:"workers"`
}

// Normalize contains text cleanup settings.
type Normalize struct {
	Stemmer            string   `toml:"stemmer"`
	ExtraFunctionWords []string `toml:"extra_function_words"`
}

// Render contains highlight output settings.
type Render struct {
	Highlighter string   `toml:"highlighter"`
	Palette     []string `toml:"palette"`
}

// History contains comparison history settings.
type History struct {
	Enabled       bool `toml:"enabled"`
	RetentionDays int  `toml:"retention_days"`
	ReuseResults  bool `toml:"reuse_results"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for shingle.
//
// Configuration sections by subsystem:
//   - Paths: data and log directories, API bind address and token
//   - Matching: window size, minimum match size, token bound, workers
//   - Normalize: stemmer choice and extra function words
//   - Render: highlighter and palette
//   - History: comparison history store and result reuse
//   - Logging: log format and level
type Config struct {
	Paths     Paths     `toml:"paths"`
	Matching  Matching  `toml:"matching"`
	Normalize Normalize `toml:"normalize"`
	Render    Render    `toml:"render"`
	History   History   `toml:"history"`
	Logging   Logging   `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath(defaultConfigPath)
}

// Load locates, parses, and validates a configuration file. The returned config has all
// path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := expandPath(defaultConfigPath)
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("shingle.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the data and log directories.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.DataDir, c.Paths.LogDir} {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// HistoryPath returns the location of the comparison history database.
func (c *Config) HistoryPath() string {
	return filepath.Join(c.Paths.DataDir, "history.db")
}

// LockPath returns the lock file guarding a running API server.
func (c *Config) LockPath() string {
	return filepath.Join(c.Paths.DataDir, "shingle-serve.lock")
}

// ComparisonDigest identifies the settings that shape a comparison result.
// Two runs with equal digests over the same documents render identical output.
func (c *Config) ComparisonDigest() string {
	var b strings.Builder
	fmt.Fprintf(&b, "window=%d;min=%d;stemmer=%s;highlighter=%s;",
		c.Matching.WindowSize, c.Matching.MinMatchSize, c.Normalize.Stemmer, c.Render.Highlighter)
	fmt.Fprintf(&b, "function_words=%s;palette=%s",
		strings.Join(c.Normalize.ExtraFunctionWords, ","), strings.Join(c.Render.Palette, ","))
	sum := blake3.Sum256([]byte(b.String()))
	return fmt.Sprintf("%x", sum[:16])
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
