package config

import (
	"strconv"
	"strings"

	"github.com/bjartek/showmebits/pkg/bittable"
	"github.com/bjartek/showmebits/pkg/radix"
	"github.com/cockroachdb/errors"
)

// ErrInvalidConfig marks every configuration validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// validate validates the configuration
func validate(cfg *Config) error {
	if !bittable.ChunkWidth(cfg.Bits.Chunk).Valid() {
		return invalid("bits.chunk %d: must be one of 1, 2, 4", cfg.Bits.Chunk)
	}

	if _, err := radix.ParseFormat(cfg.Convert.Format); err != nil {
		return invalid("convert.format %q: must be one of: %s", cfg.Convert.Format, strings.Join(radix.FormatNames(), ", "))
	}

	if cfg.Output.Indent < 0 || cfg.Output.Indent > 80 {
		return invalid("output.indent %d: must be between 0 and 80", cfg.Output.Indent)
	}

	if err := validateColor("output.highlight_color", cfg.Output.HighlightColor); err != nil {
		return err
	}
	if err := validateColor("output.muted_color", cfg.Output.MutedColor); err != nil {
		return err
	}

	return validateLogLevel(cfg.Logging.Level)
}

// validateColor accepts "", a #rgb / #rrggbb hex color or an ANSI color
// number between 0 and 255.
func validateColor(key, color string) error {
	if color == "" {
		return nil
	}
	if strings.HasPrefix(color, "#") {
		hex := color[1:]
		if len(hex) == 3 || len(hex) == 6 {
			if _, err := strconv.ParseUint(hex, 16, 32); err == nil {
				return nil
			}
		}
	} else if n, err := strconv.Atoi(color); err == nil && n >= 0 && n <= 255 {
		return nil
	}
	return invalid("%s %q: must be a #rrggbb hex color or an ANSI color number 0-255", key, color)
}

// validateLogLevel validates the log level setting
func validateLogLevel(level string) error {
	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
		"fatal": true,
	}

	if !validLevels[strings.ToLower(level)] {
		return invalid("logging.level %q: must be one of: trace, debug, info, warn, error, fatal", level)
	}
	return nil
}

func invalid(format string, args ...interface{}) error {
	return errors.Mark(errors.Newf(format, args...), ErrInvalidConfig)
}
