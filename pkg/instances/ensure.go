package instances

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/XiaoConstantine/knapsack-go/pkg/errors"
	"github.com/XiaoConstantine/knapsack-go/pkg/logging"
)

// RemoteInstanceURL is the raw-file URL pattern for the JorikJooken
// knapsack benchmark collection, keyed by instance name. It is a
// variable so tests can point it at a local server.
var RemoteInstanceURL = "https://raw.githubusercontent.com/JorikJooken/knapsackProblemInstances/master/problemInstances/%s/test.in"

// Ensure returns a local file path for the named instance. Bundled
// instances are materialized into the cache directory
// (~/.knapsack-go/instances); other names are downloaded from the
// JorikJooken collection. A name already present in the cache is reused
// without touching the network.
func Ensure(name string) (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, errors.Unknown, "failed to get user home directory")
	}

	instanceDir := filepath.Join(homeDir, ".knapsack-go", "instances")
	if err := os.MkdirAll(instanceDir, 0755); err != nil {
		return "", errors.WithFields(
			errors.Wrap(err, errors.IOFailed, "failed to create instance directory"),
			errors.Fields{"dir": instanceDir})
	}

	path := filepath.Join(instanceDir, name+".txt")
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	if IsBuiltin(name) {
		if err := WriteFile(name, path); err != nil {
			return "", err
		}
		return path, nil
	}

	logging.GetLogger().Info(context.Background(),
		"instance %s not found locally, downloading from the benchmark collection", name)
	if err := download(name, path); err != nil {
		return "", err
	}
	return path, nil
}

func download(name, path string) error {
	url := fmt.Sprintf(RemoteInstanceURL, name)

	resp, err := http.Get(url)
	if err != nil {
		return errors.WithFields(
			errors.Wrap(err, errors.IOFailed, "failed to download instance"),
			errors.Fields{"url": url})
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.WithFields(
			errors.New(errors.ResourceNotFound, "the benchmark collection has no such instance"),
			errors.Fields{
				"name":   name,
				"status": resp.Status,
			})
	}

	out, err := os.Create(path)
	if err != nil {
		return errors.WithFields(
			errors.Wrap(err, errors.IOFailed, "failed to create instance file"),
			errors.Fields{"path": path})
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return errors.WithFields(
			errors.Wrap(err, errors.IOFailed, "failed to save instance"),
			errors.Fields{"path": path})
	}
	return nil
}
