package ui

import (
	"strings"

	"github.com/bjartek/showmebits/pkg/bittable"
)

// RenderTable draws t with styles applied per line and per data group.
// The visible text is identical to t.String().
func RenderTable(t bittable.Table, s Styles) string {
	var row strings.Builder
	for _, g := range t.Groups {
		style := s.Zero
		if strings.ContainsRune(g, '1') {
			style = s.One
		}
		row.WriteString(s.Frame.Render("|"))
		row.WriteString(" ")
		row.WriteString(style.Render(g))
		row.WriteString(" ")
	}
	row.WriteString(s.Frame.Render("|"))

	border := s.Border.Render(t.Border)
	return strings.Join([]string{
		s.Header.Render(t.Header),
		border,
		row.String(),
		border,
	}, "\n")
}
