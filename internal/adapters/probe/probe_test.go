package probe_test

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/venvkit/internal/adapters/probe"
	"go.trai.ch/venvkit/internal/core/domain"
)

func TestProbe_MapFS(t *testing.T) {
	root := filepath.FromSlash("/nodes/a")
	p := probe.NewWithFS(probe.NewMapFSAdapter(root, fstest.MapFS{
		"py/bin/python3":        {Data: []byte("elf")},
		"packages/b-1.0.tar.gz": {Data: []byte("b")},
		"packages/a-1.0.tar.gz": {Data: []byte("a")},
		"packages/nested/x.txt": {Data: []byte("x")},
	}))

	assert.True(t, p.IsDir(filepath.Join(root, "py")))
	assert.True(t, p.IsFile(filepath.Join(root, "py", "bin", "python3")))
	assert.False(t, p.IsFile(filepath.Join(root, "py", "bin")))
	assert.False(t, p.IsDir(filepath.Join(root, "missing")))
	assert.False(t, p.IsFile(filepath.FromSlash("/elsewhere/python3")))

	names, err := p.ListFiles(filepath.Join(root, "packages"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a-1.0.tar.gz", "b-1.0.tar.gz"}, names)

	_, err = p.ListFiles(filepath.Join(root, "missing"))
	require.Error(t, err)
}

func TestProbe_OSFS(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "f"), []byte("x"), domain.FilePerm))

	p := probe.New()
	assert.True(t, p.IsDir(dir))
	assert.True(t, p.IsFile(filepath.Join(dir, "f")))
	assert.False(t, p.IsFile(dir))
}

func TestProbe_IsWindows(t *testing.T) {
	p := probe.New()
	assert.True(t, p.IsWindows(domain.Node{OS: domain.OSWindows}))
	assert.False(t, p.IsWindows(domain.Node{OS: domain.OSLinux}))
}
