// Package literal turns user supplied integer literals into uint64 values.
//
// A literal is decimal unless it starts with "0x" (hexadecimal) or "0o"
// (octal). Prefixes are case sensitive.
package literal

import (
	"strconv"

	"github.com/cockroachdb/errors"
)

// ErrParse is returned (wrapped) for any literal that is not an unsigned
// 64-bit integer in its detected base.
var ErrParse = errors.New("invalid literal")

// Base reports the base selected by the literal's prefix together with the
// digits that remain once the prefix is removed.
func Base(s string) (int, string) {
	if len(s) >= 2 {
		switch s[:2] {
		case "0x":
			return 16, s[2:]
		case "0o":
			return 8, s[2:]
		}
	}
	return 10, s
}

// Parse converts s to a uint64.
func Parse(s string) (uint64, error) {
	base, digits := Base(s)
	if digits == "" {
		return 0, errors.WithHint(
			errors.Wrapf(ErrParse, "%q has no digits", s),
			"use decimal digits, or prefix with 0x for hex or 0o for octal",
		)
	}

	v, err := strconv.ParseUint(digits, base, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return 0, errors.Wrapf(ErrParse, "%q does not fit in 64 bits", s)
		}
		return 0, errors.Wrapf(ErrParse, "%q is not a base-%d number", s, base)
	}
	return v, nil
}
