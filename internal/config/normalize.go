package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeMatching()
	c.normalizeText()
	c.normalizeRender()
	c.normalizeHistory()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		c.Paths.DataDir = defaultDataDir
	}
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	c.Paths.APIBind = strings.TrimSpace(c.Paths.APIBind)
	if c.Paths.APIBind == "" {
		c.Paths.APIBind = defaultAPIBind
	}
	c.Paths.APIToken = strings.TrimSpace(c.Paths.APIToken)
	if c.Paths.APIToken == "" {
		if value, ok := os.LookupEnv(apiTokenEnv); ok {
			c.Paths.APIToken = strings.TrimSpace(value)
		}
	}
	return nil
}

func (c *Config) normalizeMatching() {
	if c.Matching.MaxTokens == 0 {
		c.Matching.MaxTokens = defaultMaxTokens
	}
	if c.Matching.Workers < 0 {
		c.Matching.Workers = 0
	}
}

func (c *Config) normalizeText() {
	c.Normalize.Stemmer = strings.ToLower(strings.TrimSpace(c.Normalize.Stemmer))
	if c.Normalize.Stemmer == "" {
		c.Normalize.Stemmer = defaultStemmer
	}
	if len(c.Normalize.ExtraFunctionWords) == 0 {
		return
	}
	words := make([]string, 0, len(c.Normalize.ExtraFunctionWords))
	seen := make(map[string]struct{}, len(c.Normalize.ExtraFunctionWords))
	for _, word := range c.Normalize.ExtraFunctionWords {
		normalized := strings.ToLower(strings.TrimSpace(word))
		if normalized == "" {
			continue
		}
		if _, exists := seen[normalized]; exists {
			continue
		}
		seen[normalized] = struct{}{}
		words = append(words, normalized)
	}
	c.Normalize.ExtraFunctionWords = words
}

func (c *Config) normalizeRender() {
	c.Render.Highlighter = strings.ToLower(strings.TrimSpace(c.Render.Highlighter))
	if c.Render.Highlighter == "" {
		c.Render.Highlighter = defaultHighlighter
	}
	if len(c.Render.Palette) == 0 {
		c.Render.Palette = append([]string(nil), defaultPalette...)
		return
	}
	palette := make([]string, 0, len(c.Render.Palette))
	for _, color := range c.Render.Palette {
		if trimmed := strings.ToLower(strings.TrimSpace(color)); trimmed != "" {
			palette = append(palette, trimmed)
		}
	}
	c.Render.Palette = palette
}

func (c *Config) normalizeHistory() {
	if c.History.RetentionDays < 0 {
		c.History.RetentionDays = 0
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
