package cli

import (
	"github.com/bjartek/showmebits/pkg/bittable"
	"github.com/bjartek/showmebits/pkg/literal"
	"github.com/bjartek/showmebits/pkg/radix"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

func (a *app) parse(input string) (uint64, error) {
	base, digits := literal.Base(input)
	v, err := literal.Parse(input)
	if err != nil {
		return 0, err
	}
	a.logger.Debug().
		Str("input", input).
		Int("base", base).
		Str("digits", digits).
		Uint64("value", v).
		Msg("Parsed literal")
	return v, nil
}

func (a *app) bitsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "bits <input> [chunk]",
		Short: "Print a value as a table of binary digit groups",
		Long: `Print a value as a table of binary digit groups.

chunk is the number of bits per column: 1, 2 or 4 (default from config, 4).
Values above 0xffffffff are drawn 64 bits wide, everything else 32 bits.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			chunk := bittable.ChunkWidth(a.cfg.Bits.Chunk)
			if len(args) == 2 {
				c, err := bittable.ParseChunkWidth(args[1])
				if err != nil {
					return err
				}
				chunk = c
			}

			v, err := a.parse(args[0])
			if err != nil {
				return err
			}

			table, err := bittable.Render(v, chunk)
			if err != nil {
				return err
			}
			a.logger.Debug().
				Uint64("value", table.Value).
				Int("chunk", int(table.Chunk)).
				Int("width", int(table.Width)).
				Int("columns", table.Columns()).
				Msg("Rendered bit table")

			if err := a.printer.Table(table); err != nil {
				return errors.Wrap(err, "writing output")
			}
			if a.decimal {
				return a.printer.Text("decimal: " + radix.Decimal(table.Value))
			}
			return nil
		},
	}
}

func (a *app) signedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "signed <bits> <input>",
		Short: "Print a value as a two's complement signed integer",
		Long: `Print the low <bits> bits of a value as a two's complement signed integer.

bits must be one of 8, 16, 32 or 64.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			width, err := radix.ParseBitWidth(args[0])
			if err != nil {
				return err
			}

			v, err := a.parse(args[1])
			if err != nil {
				return err
			}

			out, err := radix.FormatSigned(width, v)
			if err != nil {
				return err
			}
			a.logger.Debug().Int("bits", width).Str("signed", out).Msg("Reinterpreted value")
			return a.printer.Text(out)
		},
	}
}

func (a *app) formatCommand(name, short string, f radix.Format) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <input>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.render(args[0], f)
		},
	}
}

func (a *app) convertCommand() *cobra.Command {
	var to string

	cmd := &cobra.Command{
		Use:   "convert <input>",
		Short: "Print a value in the format selected with --to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := a.cfg.Convert.Format
			if cmd.Flags().Changed("to") {
				name = to
			}
			f, err := radix.ParseFormat(name)
			if err != nil {
				return err
			}
			return a.render(args[0], f)
		},
	}

	cmd.Flags().StringVarP(&to, "to", "t", "", "output format: hex, decimal or octal (default from config, hex)")
	return cmd
}

func (a *app) render(input string, f radix.Format) error {
	v, err := a.parse(input)
	if err != nil {
		return err
	}

	out, err := radix.Render(f, v)
	if err != nil {
		return err
	}
	a.logger.Debug().Stringer("format", f).Msg("Formatted value")
	return a.printer.Text(out)
}
