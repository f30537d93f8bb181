package config

const (
	defaultOutputFormat  = "text"
	defaultColorMode     = "auto"
	defaultTopCandidates = 3
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Output: Output{
			Format:        defaultOutputFormat,
			Color:         defaultColorMode,
			TopCandidates: defaultTopCandidates,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
