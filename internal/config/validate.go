package config

import (
	"errors"
	"fmt"
	"regexp"
)

var paletteColorPattern = regexp.MustCompile(`^#[0-9a-f]{6}$`)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateMatching(); err != nil {
		return err
	}
	if err := c.validateNormalize(); err != nil {
		return err
	}
	if err := c.validateRender(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateMatching() error {
	if err := ensurePositiveMap(map[string]int{
		"matching.window_size":    c.Matching.WindowSize,
		"matching.min_match_size": c.Matching.MinMatchSize,
		"matching.max_tokens":     c.Matching.MaxTokens,
	}); err != nil {
		return err
	}
	if c.Matching.MaxTokens > maxConfigurableMaxTokens {
		return fmt.Errorf("matching.max_tokens must not exceed %d", maxConfigurableMaxTokens)
	}
	if c.Matching.Workers > 256 {
		return errors.New("matching.workers must not exceed 256")
	}
	return nil
}

func (c *Config) validateNormalize() error {
	switch c.Normalize.Stemmer {
	case "heuristic", "snowball":
		return nil
	default:
		return fmt.Errorf("normalize.stemmer: unsupported value %q (want heuristic or snowball)", c.Normalize.Stemmer)
	}
}

func (c *Config) validateRender() error {
	switch c.Render.Highlighter {
	case "html", "ansi", "brackets":
	default:
		return fmt.Errorf("render.highlighter: unsupported value %q (want html, ansi or brackets)", c.Render.Highlighter)
	}
	if len(c.Render.Palette) == 0 {
		return errors.New("render.palette must contain at least one colour")
	}
	for _, color := range c.Render.Palette {
		if !paletteColorPattern.MatchString(color) {
			return fmt.Errorf("render.palette: invalid colour %q (want #rrggbb)", color)
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
}

func ensurePositiveMap(values map[string]int) error {
	for key, value := range values {
		if value <= 0 {
			return fmt.Errorf("%s must be positive", key)
		}
	}
	return nil
}
