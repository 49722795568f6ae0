// Package bittable renders a uint64 as a table of binary digit groups.
//
// A table has four lines: a header of bit indices, a border, one row of
// binary groups (most significant first) and a closing border. Values that
// fit in 32 bits are drawn 32 bits wide, everything else 64 bits wide.
//
//	    32|    28|    24|    20|    16|    12|     8|     4|     0|
//	------+------+------+------+------+------+------+------+------+
//	| 0000 | 0000 | 0000 | 0000 | 0000 | 0000 | 1111 | 1111 |
//	------+------+------+------+------+------+------+------+------+
//
// The header labels both edges of every column, so it carries one index more
// than the row has groups. Borders span the header, with corners under the
// header separators.
package bittable

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrInvalidChunkWidth is returned for chunk widths other than 1, 2 and 4.
var ErrInvalidChunkWidth = errors.New("invalid chunk width")

// ChunkWidth is the number of bits shown in one column.
type ChunkWidth int

// DisplayWidth is the number of bits a table covers.
type DisplayWidth int

const (
	Width32 DisplayWidth = 32
	Width64 DisplayWidth = 64
)

// layout holds the per chunk width drawing parameters.
type layout struct {
	field int // header index field width, excluding the trailing '|'
	unit  int // width of one column in border and data row
}

var layouts = map[ChunkWidth]layout{
	1: {field: 3, unit: 4},
	2: {field: 4, unit: 5},
	4: {field: 6, unit: 7},
}

// ChunkWidths lists the supported chunk widths in ascending order.
var ChunkWidths = []ChunkWidth{1, 2, 4}

// Valid reports whether c is a supported chunk width.
func (c ChunkWidth) Valid() bool {
	_, ok := layouts[c]
	return ok
}

// ParseChunkWidth parses the textual form of a chunk width.
func ParseChunkWidth(s string) (ChunkWidth, error) {
	n, err := strconv.Atoi(s)
	if err != nil || !ChunkWidth(n).Valid() {
		return 0, chunkWidthError(s)
	}
	return ChunkWidth(n), nil
}

func chunkWidthError(got string) error {
	return errors.WithHint(
		errors.Mark(errors.Newf("invalid chunk width %q", got), ErrInvalidChunkWidth),
		"chunk width must be one of 1, 2 or 4",
	)
}

// WidthOf classifies v into the width it is drawn at.
func WidthOf(v uint64) DisplayWidth {
	if v > 0xFFFFFFFF {
		return Width64
	}
	return Width32
}

// Table is a rendered bit table. It is immutable once built.
type Table struct {
	Value  uint64
	Chunk  ChunkWidth
	Width  DisplayWidth
	Header string
	Border string
	Row    string
	// Groups holds the binary digits of each data column, most significant
	// first. Row is these groups framed by "| " and " " and closed by "|".
	Groups []string
}

// Render builds the bit table for v, grouping chunk bits per column.
func Render(v uint64, chunk ChunkWidth) (Table, error) {
	l, ok := layouts[chunk]
	if !ok {
		return Table{}, chunkWidthError(strconv.Itoa(int(chunk)))
	}

	width := WidthOf(v)
	step := int(chunk)

	var header strings.Builder
	for idx := int(width); idx >= 0; idx -= step {
		fmt.Fprintf(&header, "%*d|", l.field, idx)
	}

	unit := strings.Repeat("-", l.unit-1) + "+"
	segment := strings.Repeat(unit, 32/step)
	border := strings.Repeat(segment, int(width)/32) + unit

	mask := uint64(1)<<uint(chunk) - 1
	groups := make([]string, 0, int(width)/step)
	var row strings.Builder
	for idx := int(width) - step; idx >= 0; idx -= step {
		g := fmt.Sprintf("%0*b", step, (v>>uint(idx))&mask)
		groups = append(groups, g)
		row.WriteString("| ")
		row.WriteString(g)
		row.WriteString(" ")
	}
	row.WriteString("|")

	return Table{
		Value:  v,
		Chunk:  chunk,
		Width:  width,
		Header: header.String(),
		Border: border,
		Row:    row.String(),
		Groups: groups,
	}, nil
}

// Columns returns the number of data columns.
func (t Table) Columns() int {
	return len(t.Groups)
}

// Lines returns the table's four lines in display order.
func (t Table) Lines() []string {
	return []string{t.Header, t.Border, t.Row, t.Border}
}

func (t Table) String() string {
	return strings.Join(t.Lines(), "\n")
}
