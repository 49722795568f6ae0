package logs

import (
	"io"
	"os"
	"strings"

	"github.com/bjartek/showmebits/pkg/config"
	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// NewLogger creates a zerolog console logger writing to w at the given level.
func NewLogger(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}

	consoleWriter := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05",
		NoColor:    true,
	}

	logger := zerolog.New(consoleWriter).
		Level(lvl).
		With().
		Timestamp().
		Logger()

	return logger, nil
}

// NewLoggerWithFile creates a logger that writes to w and, when cfg.File is
// set, appends to that file on fs as well. The returned closer releases the
// file and must be called once logging is done.
func NewLoggerWithFile(w io.Writer, cfg config.LoggingConfig, fs afero.Fs) (zerolog.Logger, io.Closer, error) {
	if cfg.File == "" {
		logger, err := NewLogger(w, cfg.Level)
		return logger, io.NopCloser(nil), err
	}

	logFile, err := fs.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return zerolog.Nop(), io.NopCloser(nil), errors.Wrapf(err, "opening log file %s", cfg.File)
	}

	logger, err := NewLogger(io.MultiWriter(logFile, w), cfg.Level)
	if err != nil {
		_ = logFile.Close()
		return zerolog.Nop(), io.NopCloser(nil), err
	}
	return logger, logFile, nil
}

func parseLevel(level string) (zerolog.Level, error) {
	if level == "" {
		return zerolog.ErrorLevel, nil
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.NoLevel, errors.Wrapf(err, "log level %q", level)
	}
	return lvl, nil
}
