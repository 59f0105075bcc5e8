// Package filex holds small filesystem helpers for the CLI's local state.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

const appDirName = "todokeeper"

// EnsureParentDir creates the directory that will hold path, owner-only.
// A bare file name needs nothing.
func EnsureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return nil
}

// DefaultDataPath returns name inside the per-user configuration directory,
// falling back to the working directory when none is known.
func DefaultDataPath(name string) string {
	base, err := os.UserConfigDir()
	if err != nil || base == "" {
		return name
	}
	return filepath.Join(base, appDirName, name)
}
