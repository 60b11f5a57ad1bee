package config

const (
	defaultConfigPath        = "~/.config/shingle/config.toml"
	defaultDataDir           = "~/.local/share/shingle"
	defaultLogDir            = "~/.local/share/shingle/logs"
	defaultAPIBind           = "127.0.0.1:7489"
	defaultWindowSize        = 7
	defaultMinMatchSize      = 4
	defaultMaxTokens         = 20000
	defaultStemmer           = "heuristic"
	defaultHighlighter       = "html"
	defaultHistoryRetention  = 90
	defaultLogFormat         = "console"
	defaultLogLevel          = "info"
	apiTokenEnv              = "SHINGLE_API_TOKEN"
	maxConfigurableMaxTokens = 200000
)

var defaultPalette = []string{
	"#ffaa33",
	"#ff8800",
	"#ffcc66",
	"#ff7722",
	"#ffbb44",
	"#ff9933",
	"#ff6600",
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	palette := make([]string, len(defaultPalette))
	copy(palette, defaultPalette)
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
			APIBind: defaultAPIBind,
		},
		Matching: Matching{
			WindowSize:   defaultWindowSize,
			MinMatchSize: defaultMinMatchSize,
			MaxTokens:    defaultMaxTokens,
		},
		Normalize: Normalize{
			Stemmer: defaultStemmer,
		},
		Render: Render{
			Highlighter: defaultHighlighter,
			Palette:     palette,
		},
		History: History{
			Enabled:       true,
			RetentionDays: defaultHistoryRetention,
			ReuseResults:  true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
