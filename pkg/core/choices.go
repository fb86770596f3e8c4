package core

import (
	"strings"

	"github.com/XiaoConstantine/knapsack-go/pkg/errors"
)

// ParseChoices parses a candidate selection written as a bitstring: one '0'
// or '1' per item, in instance order. ASCII whitespace between characters is
// tolerated, so "101" and "1 0 1" parse to the same vector. Any other
// character fails with an InvalidInput error naming the position.
func ParseChoices(s string) ([]bool, error) {
	choices := make([]bool, 0, len(s))
	for i, r := range s {
		switch r {
		case '0':
			choices = append(choices, false)
		case '1':
			choices = append(choices, true)
		case ' ', '\t', '\r', '\n':
			// separators between loci
		default:
			return nil, errors.WithFields(
				errors.New(errors.InvalidInput, "choice vector may contain only '0' and '1'"),
				errors.Fields{
					"position": i,
					"char":     string(r),
				})
		}
	}
	return choices, nil
}

// FormatChoices renders a selection as a compact bitstring, one character
// per item in instance order.
func FormatChoices(choices []bool) string {
	var b strings.Builder
	b.Grow(len(choices))
	for _, c := range choices {
		if c {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}
