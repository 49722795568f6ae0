// Package cli wires the showmebits command tree: it loads configuration,
// sets up logging and output, and turns errors into exit codes.
package cli

import (
	"fmt"
	"io"

	"github.com/bjartek/showmebits/pkg/config"
	"github.com/bjartek/showmebits/pkg/logs"
	"github.com/bjartek/showmebits/pkg/radix"
	"github.com/bjartek/showmebits/pkg/ui"
	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// app carries the per invocation state shared by all commands.
type app struct {
	fs     afero.Fs
	stdout io.Writer
	stderr io.Writer

	// persistent flags
	configPath string
	logLevel   string
	color      bool
	indent     int
	decimal    bool

	cfg     *config.Config
	logger  zerolog.Logger
	printer *ui.Printer
	closer  io.Closer
}

// Execute runs the command line in args and returns the process exit code.
func Execute(args []string, stdout, stderr io.Writer) int {
	return execute(afero.NewOsFs(), args, stdout, stderr)
}

func execute(fs afero.Fs, args []string, stdout, stderr io.Writer) int {
	a := &app{
		fs:     fs,
		stdout: stdout,
		stderr: stderr,
		logger: zerolog.Nop(),
		closer: io.NopCloser(nil),
	}
	defer func() {
		_ = a.closer.Close()
	}()

	root := a.rootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		a.logger.Debug().Err(err).Msg("Command failed")
		fmt.Fprintf(stderr, "Error: %s\n", err)
		if hint := errors.FlattenHints(err); hint != "" {
			fmt.Fprintf(stderr, "Hint: %s\n", hint)
		}
		return 1
	}
	return 0
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "showmebits",
		Short: "Show an integer as bits, signed, hex, decimal or octal",
		Long: `showmebits parses an integer literal and prints it in another representation.

Literals are decimal unless prefixed with 0x (hexadecimal) or 0o (octal),
and must fit in 64 bits.`,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "path to a config file (default: search ./showmebits.yaml, ~/.showmebits, /etc/showmebits)")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: trace, debug, info, warn, error, fatal")
	flags.BoolVar(&a.color, "color", false, "color the bit table")
	flags.IntVar(&a.indent, "indent", 0, "indent output by this many spaces")
	flags.BoolVarP(&a.decimal, "decimal", "d", false, "with bits, also print the value in decimal below the table")

	root.AddCommand(
		a.bitsCommand(),
		a.signedCommand(),
		a.formatCommand("hex", "Print a value as 0x-prefixed hexadecimal", radix.FormatHex),
		a.formatCommand("decimal", "Print a value in base 10", radix.FormatDecimal),
		a.formatCommand("octal", "Print a value in base 8, without prefix", radix.FormatOctal),
		a.convertCommand(),
	)
	return root
}

// setup loads configuration, applies flag overrides and builds the logger
// and printer. It runs before every subcommand except cobra's help and
// completion commands, which must work with a broken config file.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if isBuiltin(cmd) {
		return nil
	}

	bootLogger, err := logs.NewLogger(a.stderr, a.logLevel)
	if err != nil {
		return err
	}

	cfg, err := config.LoadFs(a.fs, a.configPath, bootLogger)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Logging.Level = a.logLevel
	}
	if flags.Changed("color") {
		cfg.Output.Color = a.color
	}
	if flags.Changed("indent") {
		cfg.Output.Indent = a.indent
	}

	logger, closer, err := logs.NewLoggerWithFile(a.stderr, cfg.Logging, a.fs)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger.With().Str("command", cmd.Name()).Logger()
	a.closer = closer
	a.printer = ui.NewPrinter(a.stdout, cfg.Output)
	return nil
}

func isBuiltin(cmd *cobra.Command) bool {
	for c := cmd; c != nil && c.HasParent(); c = c.Parent() {
		switch c.Name() {
		case "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
			return true
		}
	}
	return false
}
