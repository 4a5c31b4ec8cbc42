//go:build !windows

package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcquireLock_Exclusive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hop.lock")

	unlock, err := acquireLock(path)
	require.NoError(t, err)

	_, err = acquireLock(path)
	assert.Error(t, err, "second instance must be rejected")

	unlock()

	unlock2, err := acquireLock(path)
	require.NoError(t, err, "lock must be reusable after release")
	unlock2()
}
