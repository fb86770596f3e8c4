package knapsack

import (
	"bufio"
	"io"
	"os"
	"strconv"

	"github.com/XiaoConstantine/knapsack-go/pkg/errors"
)

// Load reads a knapsack instance from a text file.
//
// The format follows https://github.com/JorikJooken/knapsackProblemInstances:
//
//	3
//	1 3 8
//	2 2 8
//	3 9 1
//	10
//
// The first line is the number of items N, the next N lines are the items
// ("<id> <value> <weight>"), and the line after those is the capacity.
// Anything after the capacity line is ignored. Lines are consumed strictly
// in order with no look-ahead.
//
// Failures report as IOFailed (the file cannot be opened or read) or
// InvalidFormat (empty input, a bad count or capacity line, a malformed
// item line, or fewer item lines than declared), with the path attached as
// a field.
func Load(path string) (*Knapsack, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WithFields(
			errors.Wrap(err, errors.IOFailed, "failed to open instance file"),
			errors.Fields{"path": path})
	}
	defer f.Close()

	k, err := Read(f)
	if err != nil {
		return nil, errors.WithFields(err, errors.Fields{"path": path})
	}
	return k, nil
}

// Read parses a knapsack instance from r in the same format as Load.
func Read(r io.Reader) (*Knapsack, error) {
	scanner := bufio.NewScanner(r)

	header, ok, err := scanLine(scanner)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.New(errors.InvalidFormat, "the instance input was empty")
	}
	numItems, err := strconv.ParseUint(header, 10, 64)
	if err != nil {
		return nil, errors.WithFields(
			errors.Wrap(err, errors.InvalidFormat, "the first line must be the number of items"),
			errors.Fields{"line": header})
	}

	// The declared count is raw input, so pre-allocate only a bounded amount.
	items := make([]Item, 0, min(numItems, 1024))
	for n := uint64(0); n < numItems; n++ {
		line, ok, err := scanLine(scanner)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, errors.WithFields(
				errors.New(errors.InvalidFormat, "the input ended before all declared items were read; is the item count on the first line correct?"),
				errors.Fields{
					"expected": numItems,
					"got":      n,
				})
		}
		item, err := ParseItem(line)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	capLine, ok, err := scanLine(scanner)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.New(errors.InvalidFormat, "the input has no capacity line; this might be because the item count on the first line is too large")
	}
	capacity, err := strconv.ParseUint(capLine, 10, 64)
	if err != nil {
		return nil, errors.WithFields(
			errors.Wrap(err, errors.InvalidFormat, "the line after the items must be the knapsack capacity"),
			errors.Fields{"line": capLine})
	}

	return New(items, capacity), nil
}

// scanLine advances the scanner one line. It returns the line and true on
// success, false at end of input, or an IOFailed error when reading fails.
func scanLine(scanner *bufio.Scanner) (string, bool, error) {
	if scanner.Scan() {
		return scanner.Text(), true, nil
	}
	if err := scanner.Err(); err != nil {
		return "", false, errors.Wrap(err, errors.IOFailed, "failed to read instance data")
	}
	return "", false, nil
}
