//go:build windows

package cmd

import (
	"errors"
	"fmt"
	"os"
)

// acquireLock creates the lock file exclusively. Windows has no flock;
// the exclusive create plus delete-on-release is the usual substitute.
func acquireLock(path string) (func(), error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_RDWR, 0644)
	if err != nil {
		if os.IsExist(err) {
			return nil, errors.New("another hop instance is already running")
		}
		return nil, fmt.Errorf("failed to create lock file: %w", err)
	}

	return func() {
		f.Close()
		_ = os.Remove(path)
	}, nil
}
