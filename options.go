package pocketcube

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jeffmartin/pocketcube/internal/table"
)

// Option configures Open and Build.
type Option func(*config)

type config struct {
	tablePath      string
	buildIfMissing bool
	progress       table.ProgressFunc
}

func applyOptions(opts []Option) (*config, error) {
	c := &config{}
	for _, opt := range opts {
		opt(c)
	}
	if c.tablePath == "" {
		path, err := DefaultTablePath()
		if err != nil {
			return nil, err
		}
		c.tablePath = path
	}
	return c, nil
}

// DefaultTablePath returns the default table location in the user's home
// directory.
func DefaultTablePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".pocketcube", "state_table.bin"), nil
}

// WithTablePath overrides the table file location.
func WithTablePath(path string) Option {
	return func(c *config) {
		c.tablePath = path
	}
}

// WithBuildIfMissing makes Open build and persist the table when the file
// does not exist, instead of failing with ErrNoTable.
func WithBuildIfMissing(enabled bool) Option {
	return func(c *config) {
		c.buildIfMissing = enabled
	}
}

// WithProgress installs a callback receiving the number of states
// discovered so far during a table build.
func WithProgress(fn func(discovered int)) Option {
	return func(c *config) {
		c.progress = fn
	}
}
