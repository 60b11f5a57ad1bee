package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"shingle/internal/config"
)

func TestLoadDefaultsWhenMissing(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("SHINGLE_API_TOKEN", "")
	t.Chdir(t.TempDir())

	cfg, path, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatalf("expected exists to be false, got true")
	}
	expectedPath := filepath.Join(tempHome, ".config", "shingle", "config.toml")
	if path != expectedPath {
		t.Fatalf("unexpected config path: got %q want %q", path, expectedPath)
	}
	if cfg.Matching.WindowSize != 7 || cfg.Matching.MinMatchSize != 4 {
		t.Fatalf("unexpected matching defaults: %+v", cfg.Matching)
	}
	if cfg.Matching.MaxTokens != 20000 {
		t.Fatalf("unexpected max_tokens default: %d", cfg.Matching.MaxTokens)
	}
	if cfg.Normalize.Stemmer != "heuristic" {
		t.Fatalf("unexpected stemmer default: %q", cfg.Normalize.Stemmer)
	}
	if cfg.Render.Highlighter != "html" || len(cfg.Render.Palette) != 7 {
		t.Fatalf("unexpected render defaults: %+v", cfg.Render)
	}
	if !cfg.History.Enabled || cfg.History.RetentionDays != 90 {
		t.Fatalf("unexpected history defaults: %+v", cfg.History)
	}
	expectedData := filepath.Join(tempHome, ".local", "share", "shingle")
	if cfg.Paths.DataDir != expectedData {
		t.Fatalf("unexpected data dir: got %q want %q", cfg.Paths.DataDir, expectedData)
	}
	if cfg.HistoryPath() != filepath.Join(expectedData, "history.db") {
		t.Fatalf("unexpected history path: %q", cfg.HistoryPath())
	}
}

func TestLoadCustomPath(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("SHINGLE_API_TOKEN", "")

	configPath := filepath.Join(t.TempDir(), "custom.toml")
	payload := map[string]any{
		"paths": map[string]any{
			"data_dir": "~/data",
		},
		"matching": map[string]any{
			"window_size":    5,
			"min_match_size": 3,
			"workers":        4,
		},
		"normalize": map[string]any{
			"stemmer":              " Snowball ",
			"extra_function_words": []string{"ДА", "да", " ", "ли"},
		},
		"render": map[string]any{
			"highlighter": "brackets",
			"palette":     []string{"#AABBCC", "#112233"},
		},
	}
	data, err := toml.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, path, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected exists to be true")
	}
	if path != configPath {
		t.Fatalf("unexpected path: got %q want %q", path, configPath)
	}
	if cfg.Paths.DataDir != filepath.Join(tempHome, "data") {
		t.Fatalf("expected data dir expansion, got %q", cfg.Paths.DataDir)
	}
	if cfg.Matching.WindowSize != 5 || cfg.Matching.MinMatchSize != 3 || cfg.Matching.Workers != 4 {
		t.Fatalf("unexpected matching: %+v", cfg.Matching)
	}
	if cfg.Normalize.Stemmer != "snowball" {
		t.Fatalf("expected stemmer to be normalized, got %q", cfg.Normalize.Stemmer)
	}
	if got := strings.Join(cfg.Normalize.ExtraFunctionWords, ","); got != "да,ли" {
		t.Fatalf("unexpected extra function words: %q", got)
	}
	if got := strings.Join(cfg.Render.Palette, ","); got != "#aabbcc,#112233" {
		t.Fatalf("unexpected palette: %q", got)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	configPath := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(configPath, []byte("[matching]\nwindow = 3\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(configPath); err == nil {
		t.Fatal("expected unknown key to be rejected")
	}
}

func TestLoadTokenFromEnvironment(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SHINGLE_API_TOKEN", " secret ")
	t.Chdir(t.TempDir())

	cfg, _, _, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Paths.APIToken != "secret" {
		t.Fatalf("expected token from environment, got %q", cfg.Paths.APIToken)
	}
}

func TestLoadProjectFallback(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SHINGLE_API_TOKEN", "")
	project := t.TempDir()
	t.Chdir(project)
	if err := os.WriteFile("shingle.toml", []byte("[matching]\nwindow_size = 9\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, path, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || filepath.Base(path) != "shingle.toml" {
		t.Fatalf("expected project config, got %q exists=%v", path, exists)
	}
	if cfg.Matching.WindowSize != 9 {
		t.Fatalf("expected window_size 9, got %d", cfg.Matching.WindowSize)
	}
}

func TestCreateSample(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("SHINGLE_API_TOKEN", "")

	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample returned error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(data), "window_size = 7") {
		t.Fatalf("sample config missing matching section")
	}

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("sample config should load: %v", err)
	}
	if !exists {
		t.Fatal("expected sample config to exist")
	}
	if cfg.Matching.WindowSize != 7 || cfg.Render.Highlighter != "html" {
		t.Fatalf("sample config disagrees with defaults: %+v %+v", cfg.Matching, cfg.Render)
	}
}

func TestValidateDetectsInvalidValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
		want   string
	}{
		{"window size", func(c *config.Config) { c.Matching.WindowSize = 0 }, "matching.window_size"},
		{"min match", func(c *config.Config) { c.Matching.MinMatchSize = -1 }, "matching.min_match_size"},
		{"max tokens", func(c *config.Config) { c.Matching.MaxTokens = 1 << 30 }, "matching.max_tokens"},
		{"stemmer", func(c *config.Config) { c.Normalize.Stemmer = "porter" }, "normalize.stemmer"},
		{"highlighter", func(c *config.Config) { c.Render.Highlighter = "pdf" }, "render.highlighter"},
		{"palette colour", func(c *config.Config) { c.Render.Palette = []string{"orange"} }, "render.palette"},
		{"empty palette", func(c *config.Config) { c.Render.Palette = nil }, "render.palette"},
		{"log level", func(c *config.Config) { c.Logging.Level = "loud" }, "logging.level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestDefaultValidates(t *testing.T) {
	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestEnsureDirectories(t *testing.T) {
	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.DataDir = filepath.Join(base, "data")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories: %v", err)
	}
	for _, dir := range []string{cfg.Paths.DataDir, cfg.Paths.LogDir} {
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			t.Fatalf("expected directory %q: %v", dir, err)
		}
	}
}

func TestComparisonDigestTracksOutputSettings(t *testing.T) {
	base := config.Default()
	same := config.Default()
	if base.ComparisonDigest() != same.ComparisonDigest() {
		t.Fatal("equal configs should share a digest")
	}

	mutations := map[string]func(*config.Config){
		"window":      func(c *config.Config) { c.Matching.WindowSize = 5 },
		"min match":   func(c *config.Config) { c.Matching.MinMatchSize = 3 },
		"stemmer":     func(c *config.Config) { c.Normalize.Stemmer = "snowball" },
		"highlighter": func(c *config.Config) { c.Render.Highlighter = "ansi" },
		"palette":     func(c *config.Config) { c.Render.Palette = []string{"#000000"} },
		"words":       func(c *config.Config) { c.Normalize.ExtraFunctionWords = []string{"ли"} },
	}
	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			cfg := config.Default()
			mutate(&cfg)
			if cfg.ComparisonDigest() == base.ComparisonDigest() {
				t.Fatalf("digest should change when %s changes", name)
			}
		})
	}

	cfg := config.Default()
	cfg.Matching.Workers = 8
	cfg.Matching.MaxTokens = 10
	if cfg.ComparisonDigest() != base.ComparisonDigest() {
		t.Fatal("workers and max_tokens do not affect output and should not change the digest")
	}
}
