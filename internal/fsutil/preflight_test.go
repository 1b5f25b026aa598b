package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yanizio/mabel/internal/mabelerr"
)

func TestEnsureDirExists_CreatesChain(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")

	require.NoError(t, EnsureDirExists(dir))
	fi, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, fi.IsDir())

	// Second call is a no-op.
	require.NoError(t, EnsureDirExists(dir))
}

func TestEnsureDirExists_ParentIsFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "plain")
	require.NoError(t, os.WriteFile(file, nil, 0o600))

	err := EnsureDirExists(filepath.Join(file, "child"))

	var ioErr *mabelerr.IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, filepath.Join(file, "child"), ioErr.Path)
	assert.NotNil(t, ioErr.Err)
}

func TestRequireDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, RequireDir(dir))

	file := filepath.Join(dir, "plain")
	require.NoError(t, os.WriteFile(file, nil, 0o600))
	require.NoError(t, EnsureDirExists(file), "existing path is left alone")

	err := RequireDir(file)
	var ioErr *mabelerr.IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, file, ioErr.Path)

	err = RequireDir(filepath.Join(dir, "missing"))
	assert.Equal(t, mabelerr.KindIO, mabelerr.KindOf(err))
}

func TestEnsureWritable_LeavesNoProbe(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, EnsureWritable(dir))
	_, err := os.Stat(filepath.Join(dir, ProbeName))
	assert.True(t, os.IsNotExist(err), "probe file left behind")
}

func TestEnsureWritable_NotADirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "vault")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))

	for i := 0; i < 2; i++ {
		err := EnsureWritable(file)
		var nw *mabelerr.VaultNotWritableError
		require.ErrorAs(t, err, &nw)
		assert.Equal(t, file, nw.Path)
		assert.Error(t, nw.Unwrap(), "cause must be retained")
	}
}

func TestEnsureWritable_ReadOnlyDir(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root ignores directory permissions")
	}
	dir := t.TempDir()
	require.NoError(t, os.Chmod(dir, 0o500))
	t.Cleanup(func() { _ = os.Chmod(dir, 0o700) })

	for i := 0; i < 2; i++ {
		err := EnsureWritable(dir)
		assert.Equal(t, mabelerr.KindVaultNotWritable, mabelerr.KindOf(err))
	}
	_, err := os.Stat(filepath.Join(dir, ProbeName))
	assert.True(t, os.IsNotExist(err))
}
