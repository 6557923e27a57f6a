//go:build !windows

package privilege

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecker_Elevated(t *testing.T) {
	// Setup
	checker := NewChecker()

	// Execute
	elevated, err := checker.Elevated()

	// Assert: elevation matches the effective UID of the test process
	require.NoError(t, err)
	assert.Equal(t, os.Geteuid() == 0, elevated)
}
