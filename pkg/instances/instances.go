// Package instances bundles a few small knapsack instances for tests and
// demos, and fetches named instances from the JorikJooken benchmark
// collection on demand.
package instances

import (
	"io"
	"os"
	"sort"
	"strings"

	"github.com/XiaoConstantine/knapsack-go/pkg/errors"
	"github.com/XiaoConstantine/knapsack-go/pkg/knapsack"
)

// Names returns the bundled instance names in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsBuiltin reports whether name is a bundled instance.
func IsBuiltin(name string) bool {
	_, ok := builtin[name]
	return ok
}

// Reader returns a reader over the named bundled instance, or a
// ResourceNotFound error for unknown names.
func Reader(name string) (io.Reader, error) {
	data, ok := builtin[name]
	if !ok {
		return nil, errors.WithFields(
			errors.New(errors.ResourceNotFound, "no bundled instance with that name"),
			errors.Fields{"name": name})
	}
	return strings.NewReader(data), nil
}

// Load parses the named bundled instance.
func Load(name string) (*knapsack.Knapsack, error) {
	r, err := Reader(name)
	if err != nil {
		return nil, err
	}
	return knapsack.Read(r)
}

// WriteFile writes the named bundled instance to path.
func WriteFile(name, path string) error {
	data, ok := builtin[name]
	if !ok {
		return errors.WithFields(
			errors.New(errors.ResourceNotFound, "no bundled instance with that name"),
			errors.Fields{"name": name})
	}
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		return errors.WithFields(
			errors.Wrap(err, errors.IOFailed, "failed to write instance file"),
			errors.Fields{"path": path})
	}
	return nil
}

// Resolve loads an instance given either a file path or a bundled instance
// name. An existing file wins, so a file named like a bundled instance
// loads from disk.
func Resolve(pathOrName string) (*knapsack.Knapsack, error) {
	if _, err := os.Stat(pathOrName); err == nil {
		return knapsack.Load(pathOrName)
	}
	if IsBuiltin(pathOrName) {
		return Load(pathOrName)
	}
	return knapsack.Load(pathOrName)
}
