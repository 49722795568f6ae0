package ui

import (
	"fmt"
	"io"

	"github.com/bjartek/showmebits/pkg/bittable"
	"github.com/bjartek/showmebits/pkg/config"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/indent"
)

// Printer writes command results to an output stream.
type Printer struct {
	out    io.Writer
	indent uint
	styles Styles
}

// NewPrinter creates a Printer for out. cfg.Color enables styled bit tables,
// cfg.Indent shifts every output line right by that many spaces and the
// color settings override the theme.
func NewPrinter(out io.Writer, cfg config.OutputConfig) *Printer {
	indentWidth := cfg.Indent
	if indentWidth < 0 {
		indentWidth = 0
	}

	var opts []StyleOption
	if cfg.HighlightColor != "" {
		opts = append(opts, WithHighlightColor(lipgloss.Color(cfg.HighlightColor)))
	}
	if cfg.MutedColor != "" {
		opts = append(opts, WithMutedColor(lipgloss.Color(cfg.MutedColor)))
	}

	r := lipgloss.NewRenderer(out)
	return &Printer{
		out:    out,
		indent: uint(indentWidth),
		styles: NewStyles(r, cfg.Color, opts...),
	}
}

// Table prints a bit table.
func (p *Printer) Table(t bittable.Table) error {
	return p.Text(RenderTable(t, p.styles))
}

// Text prints s followed by a newline.
func (p *Printer) Text(s string) error {
	if p.indent > 0 {
		s = indent.String(s, p.indent)
	}
	_, err := fmt.Fprintln(p.out, s)
	return err
}
