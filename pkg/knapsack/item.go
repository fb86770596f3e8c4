// Package knapsack holds the problem-instance model for 0/1 knapsack
// evaluation: items, the instance itself, and the text-format loader used to
// read benchmark instances.
package knapsack

import (
	"strconv"
	"strings"

	"github.com/XiaoConstantine/knapsack-go/pkg/errors"
)

// Item is one thing that can go in the knapsack: an identifier, the value
// gained by including it, and the weight it adds. Items are immutable once
// constructed. The id is informational only and plays no part in scoring.
type Item struct {
	id     uint64
	value  uint64
	weight uint64
}

// NewItem constructs an item. No validation is applied; zero values and
// zero weights are legal.
func NewItem(id, value, weight uint64) Item {
	return Item{id: id, value: value, weight: weight}
}

// ID returns the item's identifier.
func (it Item) ID() uint64 {
	return it.id
}

// Value returns the value gained by including the item.
func (it Item) Value() uint64 {
	return it.value
}

// Weight returns the weight the item adds to the knapsack.
func (it Item) Weight() uint64 {
	return it.weight
}

// ParseItem parses one item specification line: exactly three
// whitespace-separated unsigned integers giving the item's id, value, and
// weight. Any other field count, or a field that is not an unsigned
// integer, fails with an InvalidFormat error carrying the offending line.
func ParseItem(line string) (Item, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return Item{}, errors.WithFields(
			errors.New(errors.InvalidFormat, "an item specification line must have exactly 3 whitespace separated fields"),
			errors.Fields{
				"line":   line,
				"fields": len(fields),
			})
	}

	var values [3]uint64
	for i, field := range fields {
		v, err := strconv.ParseUint(field, 10, 64)
		if err != nil {
			return Item{}, errors.WithFields(
				errors.Wrap(err, errors.InvalidFormat, "an item specification field must be an unsigned integer"),
				errors.Fields{
					"line":  line,
					"field": field,
				})
		}
		values[i] = v
	}

	return NewItem(values[0], values[1], values[2]), nil
}
