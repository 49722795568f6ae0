package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// LoadFs loads configuration from fs with the following priority:
// 1. Explicit path via configPath parameter (must exist)
// 2. ./showmebits.yaml (current directory)
// 3. ~/.showmebits/config.yaml (user home)
// 4. /etc/showmebits/config.yaml (system-wide)
// Falls back to defaults if no config file is found.
// Environment variables override file values.
func LoadFs(fs afero.Fs, configPath string, logger zerolog.Logger) (*Config, error) {
	v := viper.New()
	v.SetFs(fs)
	v.SetConfigType("yaml")

	if configPath != "" {
		if _, err := fs.Stat(configPath); err != nil {
			return nil, errors.Wrap(err, "reading config file")
		}
	} else {
		configPath = findConfigFile(fs)
	}
	if configPath != "" {
		v.SetConfigFile(configPath)
	}

	// Example: SHOWMEBITS_BITS_CHUNK=2, SHOWMEBITS_LOGGING_LEVEL=debug
	v.SetEnvPrefix("SHOWMEBITS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults have to be registered for AutomaticEnv to see the keys
	setDefaults(v, DefaultConfig())

	configFileUsed := ""
	if configPath == "" {
		logger.Debug().
			Strs("searchPaths", searchPaths()).
			Msg("No config file found in search paths, using defaults")
	} else {
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrap(err, "reading config file")
		}
		configFileUsed = v.ConfigFileUsed()
		logger.Debug().Str("configFile", configFileUsed).Msg("Config file loaded")
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	logger.Debug().
		Str("configFile", configFileUsed).
		Interface("bits", cfg.Bits).
		Interface("convert", cfg.Convert).
		Interface("output", cfg.Output).
		Interface("logging", cfg.Logging).
		Msg("Effective configuration")

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// searchPaths lists the config file candidates in priority order. Only these
// exact names are tried, never an extensionless "showmebits".
func searchPaths() []string {
	var paths []string
	if wd, err := os.Getwd(); err == nil {
		paths = append(paths, filepath.Join(wd, "showmebits.yaml"))
	} else {
		paths = append(paths, "showmebits.yaml")
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".showmebits", "config.yaml"))
	}
	return append(paths, "/etc/showmebits/config.yaml")
}

// findConfigFile returns the first search path that exists on fs as a
// regular file, or "" when there is none.
func findConfigFile(fs afero.Fs) string {
	for _, p := range searchPaths() {
		if info, err := fs.Stat(p); err == nil && !info.IsDir() {
			return p
		}
	}
	return ""
}

func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("bits.chunk", cfg.Bits.Chunk)
	v.SetDefault("convert.format", cfg.Convert.Format)
	v.SetDefault("output.color", cfg.Output.Color)
	v.SetDefault("output.indent", cfg.Output.Indent)
	v.SetDefault("output.highlight_color", cfg.Output.HighlightColor)
	v.SetDefault("output.muted_color", cfg.Output.MutedColor)
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.file", cfg.Logging.File)
}
