// Package config loads, normalizes, and validates shingle configuration.
//
// Configuration lives in a TOML file (by default ~/.config/shingle/config.toml,
// falling back to ./shingle.toml) and is decoded into the Config struct.
// Load applies repository defaults, expands user paths, pulls the API token
// from the environment when the file leaves it empty, and validates the
// matcher sizes, token bound, stemmer, highlighter and palette before any
// comparison runs.
//
// Matching sizes are fixed once an engine is built from a Config; change the
// file and restart long-running processes such as `shingle serve` to apply new
// values.
package config
