package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, root string, names ...string) {
	t.Helper()
	for _, name := range names {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("# test\n"), 0o644))
	}
}

func TestFindFilesByExtension(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	root := t.TempDir()
	writeFiles(t, root, "b.hcl", "a.hcl", "nested/c.yaml", "nested/d.txt")

	// --- Act ---
	files, err := FindFilesByExtension(root, ".hcl", ".yaml")

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(root, "a.hcl"),
		filepath.Join(root, "b.hcl"),
		filepath.Join(root, "nested", "c.yaml"),
	}, files)
}

func TestFindFilesByExtensionPanicsWithoutExtension(t *testing.T) {
	t.Parallel()
	require.Panics(t, func() { _, _ = FindFilesByExtension(t.TempDir()) })
}

func TestFindFiles(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFiles(t, root, "dir/one.hcl", "dir/two.hcl", "extra.hcl", "notes.md")

	testCases := []struct {
		name  string
		paths []string
		want  []string
	}{
		{
			name:  "explicit file before directory keeps given order",
			paths: []string{filepath.Join(root, "extra.hcl"), filepath.Join(root, "dir")},
			want: []string{
				filepath.Join(root, "extra.hcl"),
				filepath.Join(root, "dir", "one.hcl"),
				filepath.Join(root, "dir", "two.hcl"),
			},
		},
		{
			name:  "files are returned once",
			paths: []string{filepath.Join(root, "dir", "two.hcl"), filepath.Join(root, "dir")},
			want: []string{
				filepath.Join(root, "dir", "two.hcl"),
				filepath.Join(root, "dir", "one.hcl"),
			},
		},
		{
			name:  "missing paths and foreign extensions are skipped",
			paths: []string{filepath.Join(root, "missing.hcl"), filepath.Join(root, "notes.md")},
			want:  nil,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := FindFiles(tc.paths, ".hcl")

			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}
