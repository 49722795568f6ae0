package config

// DefaultConfig returns a Config with the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Bits: BitsConfig{
			Chunk: 4,
		},
		Convert: ConvertConfig{
			Format: "hex",
		},
		Output: OutputConfig{
			Color:          false,
			Indent:         0,
			HighlightColor: "",
			MutedColor:     "",
		},
		Logging: LoggingConfig{
			Level: "error", // keep stderr quiet unless asked
			File:  "",
		},
	}
}
