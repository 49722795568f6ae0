// Package radix formats parsed values as signed, hexadecimal, decimal or
// octal text.
package radix

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

var (
	// ErrInvalidBitWidth is returned for signed widths other than 8, 16, 32 and 64.
	ErrInvalidBitWidth = errors.New("invalid bit width")
	// ErrInvalidFormat is returned for unknown output format names.
	ErrInvalidFormat = errors.New("invalid format")
)

// BitWidths lists the widths accepted by Signed.
var BitWidths = []int{8, 16, 32, 64}

// ParseBitWidth parses the textual form of a signed bit width.
func ParseBitWidth(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || !validBitWidth(n) {
		return 0, bitWidthError(s)
	}
	return n, nil
}

func validBitWidth(n int) bool {
	switch n {
	case 8, 16, 32, 64:
		return true
	}
	return false
}

func bitWidthError(got string) error {
	return errors.WithHint(
		errors.Mark(errors.Newf("invalid bit width %q", got), ErrInvalidBitWidth),
		"bit width must be one of 8, 16, 32 or 64",
	)
}

// Signed reinterprets the low width bits of v as a two's complement integer.
// Bits above width are ignored.
//
//	Signed(8, 0xFF)        -> -1
//	Signed(8, 0x7F)        -> 127
//	Signed(32, 0x80000000) -> -2147483648
func Signed(width int, v uint64) (int64, error) {
	if !validBitWidth(width) {
		return 0, bitWidthError(strconv.Itoa(width))
	}
	if width == 64 {
		return int64(v), nil
	}

	v &= 1<<uint(width) - 1
	signBit := uint64(1) << uint(width-1)
	if v&signBit == 0 {
		return int64(v), nil
	}
	return int64(v^signBit) - int64(signBit), nil
}

// FormatSigned returns the decimal text of Signed(width, v).
func FormatSigned(width int, v uint64) (string, error) {
	n, err := Signed(width, v)
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n, 10), nil
}

// Hex returns v as lowercase hexadecimal with a 0x prefix and no padding.
func Hex(v uint64) string {
	if v <= 0xFFFFFFFF {
		return fmt.Sprintf("%#x", uint32(v))
	}
	return fmt.Sprintf("%#x", v)
}

// Decimal returns v in base 10.
func Decimal(v uint64) string {
	return strconv.FormatUint(v, 10)
}

// Octal returns v in base 8 without a prefix.
func Octal(v uint64) string {
	return strconv.FormatUint(v, 8)
}

// Format selects one textual representation.
type Format int

const (
	FormatHex Format = iota
	FormatDecimal
	FormatOctal
)

var formatNames = map[Format]string{
	FormatHex:     "hex",
	FormatDecimal: "decimal",
	FormatOctal:   "octal",
}

// FormatNames lists the accepted format names in declaration order.
func FormatNames() []string {
	return []string{formatNames[FormatHex], formatNames[FormatDecimal], formatNames[FormatOctal]}
}

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat maps a format name (case insensitive) to a Format.
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for f, n := range formatNames {
		if n == name {
			return f, nil
		}
	}
	return 0, errors.WithHintf(
		errors.Mark(errors.Newf("invalid format %q", s), ErrInvalidFormat),
		"format must be one of: %s", strings.Join(FormatNames(), ", "),
	)
}

// Render formats v according to f.
func Render(f Format, v uint64) (string, error) {
	switch f {
	case FormatHex:
		return Hex(v), nil
	case FormatDecimal:
		return Decimal(v), nil
	case FormatOctal:
		return Octal(v), nil
	}
	return "", errors.Mark(errors.Newf("invalid format %s", f), ErrInvalidFormat)
}
