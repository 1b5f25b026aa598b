// internal/fsutil/preflight.go
//
// Filesystem preflight for the vault and cache directories.
//
// Context
// -------
// Config assembly calls these before any network or LLM work so an
// unusable path fails the run while it is still cheap.  Both helpers
// return mabelerr types with the offending path attached.
//
// Notes
// -----
//   • EnsureWritable leaves one hidden probe file behind only when the
//     write itself half-succeeds.  That is acceptable; the file is tiny.
//   • Durations are observed in metrics.PreflightSeconds.
package fsutil

import (
	"os"
	"path/filepath"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/yanizio/mabel/internal/mabelerr"
	"github.com/yanizio/mabel/internal/metrics"
)

// ProbeName is the hidden file EnsureWritable creates and removes.
const ProbeName = ".mabel_write_check"

// EnsureDirExists creates dir and its parents unless something already
// exists at that path.
func EnsureDirExists(dir string) error {
	defer observe("ensure_dir", time.Now())

	if _, err := os.Stat(dir); err == nil {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &mabelerr.IOError{Path: dir, Err: err}
	}
	zap.S().Debugw("directory created", "path", dir)
	return nil
}

// RequireDir fails with an IOError when dir exists but is not a
// directory.  EnsureDirExists leaves such a path alone.
func RequireDir(dir string) error {
	fi, err := os.Stat(dir)
	if err != nil {
		return &mabelerr.IOError{Path: dir, Err: err}
	}
	if !fi.IsDir() {
		return &mabelerr.IOError{Path: dir, Err: syscall.ENOTDIR}
	}
	return nil
}

// EnsureWritable writes and removes ProbeName inside dir.
func EnsureWritable(dir string) error {
	defer observe("ensure_writable", time.Now())

	probe := filepath.Join(dir, ProbeName)
	f, err := os.OpenFile(probe, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return notWritable(dir, err)
	}
	_, werr := f.Write([]byte("ok"))
	cerr := f.Close()
	if werr != nil {
		return notWritable(dir, werr)
	}
	if cerr != nil {
		return notWritable(dir, cerr)
	}

	_ = os.Remove(probe)
	return nil
}

func notWritable(dir string, cause error) error {
	zap.S().Warnw("write probe failed", "path", dir, "err", cause)
	return &mabelerr.VaultNotWritableError{Path: dir, Err: cause}
}

func observe(op string, start time.Time) {
	metrics.PreflightSeconds.WithLabelValues(op).Observe(time.Since(start).Seconds())
}
