package config

// Config represents the complete showmebits configuration
type Config struct {
	Bits    BitsConfig    `mapstructure:"bits"`
	Convert ConvertConfig `mapstructure:"convert"`
	Output  OutputConfig  `mapstructure:"output"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// BitsConfig contains defaults for the bits command
type BitsConfig struct {
	Chunk int `mapstructure:"chunk"`
}

// ConvertConfig contains defaults for the convert command
type ConvertConfig struct {
	Format string `mapstructure:"format"`
}

// OutputConfig contains rendering preferences
type OutputConfig struct {
	Color          bool   `mapstructure:"color"`
	Indent         int    `mapstructure:"indent"`
	HighlightColor string `mapstructure:"highlight_color"` // groups with set bits, empty keeps the theme
	MutedColor     string `mapstructure:"muted_color"`     // borders and all-zero groups
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"` // appended to when set
}
