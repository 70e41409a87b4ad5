// If you are AI: This file tests save discovery across configured, legacy and well-known roots.

package locator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte{0x00, 0xBF}, 0o644))
	return path
}

func TestFindAcrossRoots(t *testing.T) {
	flash := t.TempDir()
	a := touch(t, filepath.Join(flash, "4NET8CUM", "host.com", "JY2.sol"))
	b := touch(t, filepath.Join(flash, "ZZZ", "other.com", "JY2.sol"))
	touch(t, filepath.Join(flash, "4NET8CUM", "host.com", "JY1.sol"))
	touch(t, filepath.Join(flash, "4NET8CUM", "host.com", "notes.txt"))

	l := New(Options{Roots: []string{flash}, INIPath: filepath.Join(t.TempDir(), "none.ini")})

	got, err := l.Find("JY2")
	require.NoError(t, err)
	assert.Equal(t, []string{a, b}, got)

	all, err := l.Find("")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	_, err = l.Find("JY9.sol")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestConfiguredDirComesFirst(t *testing.T) {
	dir := t.TempDir()
	flash := t.TempDir()
	iniDir := t.TempDir()
	iniPath := filepath.Join(t.TempDir(), "soledit.ini")
	require.NoError(t, os.WriteFile(iniPath, []byte("dir = "+iniDir+"\n"), 0o644))

	l := New(Options{Dir: dir, INIPath: iniPath, Roots: []string{flash, dir}})
	assert.Equal(t, []string{filepath.Clean(dir), filepath.Clean(iniDir), filepath.Clean(flash)}, l.Roots())
}

func TestLegacyDir(t *testing.T) {
	got, err := LegacyDir(filepath.Join(t.TempDir(), "absent.ini"))
	require.NoError(t, err)
	assert.Empty(t, got)

	path := filepath.Join(t.TempDir(), "soledit.ini")
	require.NoError(t, os.WriteFile(path, []byte("dir=/games/jy\n[other]\ndir=/nope\n"), 0o644))
	got, err = LegacyDir(path)
	require.NoError(t, err)
	assert.Equal(t, "/games/jy", got)
}

func TestResolve(t *testing.T) {
	flash := t.TempDir()
	save := touch(t, filepath.Join(flash, "x", "JY2.sol"))
	l := New(Options{Roots: []string{flash}, INIPath: filepath.Join(flash, "none.ini")})

	got, err := l.Resolve(save)
	require.NoError(t, err)
	assert.Equal(t, save, got)

	got, err = l.Resolve("JY2.sol")
	require.NoError(t, err)
	assert.Equal(t, save, got)

	_, err = l.Resolve(filepath.Join(flash, "missing", "JY2.sol"))
	require.ErrorIs(t, err, ErrNotFound)
}

func TestWellKnownRootsNamesSharedObjects(t *testing.T) {
	for _, r := range WellKnownRoots() {
		assert.Equal(t, "#SharedObjects", filepath.Base(r))
	}
}

func TestResolvePrefersConfiguredDir(t *testing.T) {
	dir := t.TempDir()
	flash := t.TempDir()
	touch(t, filepath.Join(flash, "a", "JY2.sol"))
	mine := touch(t, filepath.Join(dir, "z", "JY2.sol"))

	l := New(Options{Dir: dir, Roots: []string{flash}, INIPath: filepath.Join(dir, "none.ini")})
	got, err := l.Resolve("JY2")
	require.NoError(t, err)
	assert.Equal(t, mine, got)
}
