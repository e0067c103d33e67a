package diffcheck

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare(t *testing.T) {
	t.Parallel()

	t.Run("identical", func(t *testing.T) {
		t.Parallel()
		require.NoError(t, Compare([]byte("a\nb\n"), []byte("a\nb\n"), "Options.swift", "regenerated"))
	})

	t.Run("drift", func(t *testing.T) {
		t.Parallel()

		// --- Act ---
		err := Compare([]byte("a\nb\nc\n"), []byte("a\nB\nc\n"), "Options.swift", "regenerated")

		// --- Assert ---
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrDrift))

		var drift *DriftError
		require.True(t, errors.As(err, &drift))
		assert.Equal(t, "Options.swift", drift.File)
		assert.Contains(t, drift.Diff, "--- Options.swift\n")
		assert.Contains(t, drift.Diff, "+++ regenerated\n")
		assert.Contains(t, drift.Diff, "-b\n")
		assert.Contains(t, drift.Diff, "+B\n")
	})

	t.Run("missing trailing newline is drift", func(t *testing.T) {
		t.Parallel()
		require.ErrorIs(t, Compare([]byte("a\n"), []byte("a"), "x", "y"), ErrDrift)
	})
}
