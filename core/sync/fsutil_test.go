package sync

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mkfile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestVersions(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"v22", "v9", "v21", "preConfigured"} {
		require.NoError(t, os.MkdirAll(filepath.Join(dir, name), 0o755))
	}
	mkfile(t, dir, "v99", "a file, not a version dir")

	versions, err := Versions(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"v21", "v22", "v9"}, versions)
}

func TestVersions_MissingDir(t *testing.T) {
	versions, err := Versions(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Empty(t, versions)
}

func TestRuntime_SelectVersions(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"v21", "v22"} {
		require.NoError(t, os.MkdirAll(filepath.Join(dir, name), 0o755))
	}

	tests := []struct {
		name string
		opts Options
		want []string
	}{
		{"All", Options{All: true, Version: "v21"}, []string{"v21", "v22"}},
		{"Single", Options{Version: "v22"}, []string{"v22"}},
		{"NoSelector", Options{}, []string{"v21", "v22"}},
		{"UnknownVersion", Options{Version: "v99"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt := &Runtime{Opts: tt.opts}
			got, err := rt.SelectVersions(dir)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestListFiles(t *testing.T) {
	dir := t.TempDir()
	mkfile(t, dir, "b.svg", "b")
	mkfile(t, dir, "nested/a.svg", "a")
	mkfile(t, dir, "nested/deep/c.svg", "c")

	files, err := ListFiles(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"b.svg", filepath.Join("nested", "a.svg"), filepath.Join("nested", "deep", "c.svg")}, files)
}

func TestListFiles_MissingDir(t *testing.T) {
	files, err := ListFiles(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestCopyFile(t *testing.T) {
	dir := t.TempDir()
	mkfile(t, dir, "src.bin", "payload")

	dst := filepath.Join(dir, "out", "deep", "dst.bin")
	require.NoError(t, CopyFile(filepath.Join(dir, "src.bin"), dst))

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))
}

func TestReplaceTree_RemovesStaleFiles(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	dst := filepath.Join(dir, "dst")
	mkfile(t, dir, "src/keep.json", "new")
	mkfile(t, dir, "dst/stale.json", "old")

	require.NoError(t, ReplaceTree(src, dst))

	_, err := os.Stat(filepath.Join(dst, "stale.json"))
	assert.True(t, os.IsNotExist(err))
	data, err := os.ReadFile(filepath.Join(dst, "keep.json"))
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}
