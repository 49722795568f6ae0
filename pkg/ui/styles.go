package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	// Solarized Dark color palette
	base01 = lipgloss.Color("#586e75") // comments / borders
	base1  = lipgloss.Color("#93a1a1") // emphasized content

	solarBlue   = lipgloss.Color("#268bd2")
	solarYellow = lipgloss.Color("#b58900")

	// Semantic color mappings
	primaryColor   = solarBlue
	mutedColor     = base01
	accentColor    = base1
	highlightColor = solarYellow
)

// Styles holds the styling for a rendered bit table
type Styles struct {
	Header lipgloss.Style
	Border lipgloss.Style
	Frame  lipgloss.Style // the '|' around data groups
	Zero   lipgloss.Style // a group with no set bits
	One    lipgloss.Style // a group with at least one set bit
}

// StyleOption is a functional option for configuring Styles
type StyleOption func(*Styles)

// WithHighlightColor sets the color for groups containing set bits
func WithHighlightColor(color lipgloss.Color) StyleOption {
	return func(s *Styles) {
		s.One = s.One.Foreground(color)
	}
}

// WithMutedColor sets the color for borders, frames and all-zero groups
func WithMutedColor(color lipgloss.Color) StyleOption {
	return func(s *Styles) {
		s.Border = s.Border.Foreground(color)
		s.Frame = s.Frame.Foreground(color)
		s.Zero = s.Zero.Foreground(color)
	}
}

// NewStyles creates Styles bound to r. With color disabled the renderer is
// forced to the ASCII profile and every style renders its input unchanged.
func NewStyles(r *lipgloss.Renderer, color bool, opts ...StyleOption) Styles {
	if !color {
		r.SetColorProfile(termenv.Ascii)
	} else if r.ColorProfile() == termenv.Ascii {
		// asked for color on a non-terminal, e.g. piped into less -R
		r.SetColorProfile(termenv.ANSI256)
	}

	s := Styles{
		Header: r.NewStyle().Foreground(primaryColor),
		Border: r.NewStyle().Foreground(mutedColor),
		Frame:  r.NewStyle().Foreground(mutedColor),
		Zero:   r.NewStyle().Foreground(accentColor),
		One:    r.NewStyle().Foreground(highlightColor),
	}

	for _, opt := range opts {
		opt(&s)
	}
	return s
}
