// internal/paths/paths.go
//
// Home-shorthand expansion and absolute path resolution.
//
// Context
// -------
// Paths arrive from flags, the environment, and YAML with a leading "~"
// more often than not.  Resolver expands that marker and makes the result
// absolute.  Nothing here touches the filesystem; preflight lives in
// internal/fsutil.
//
// Notes
// -----
//   • Only "~" and "~/…" are expanded.  "~user/…" is returned untouched,
//     matching shell tilde rules for the current user only.
//   • If the home directory cannot be determined, "." stands in for it.
package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
)

// Resolver expands and absolutizes paths.  The zero value uses the real
// home directory.
type Resolver struct {
	// Home overrides home-directory discovery.  Tests set it; production
	// code leaves it nil.
	Home func() (string, error)
}

// Default is the Resolver used when callers do not supply one.
var Default = Resolver{}

// HomeDir returns the home directory, or "." when it cannot be found.
func (r Resolver) HomeDir() string {
	home := r.Home
	if home == nil {
		home = homedir.Dir
	}
	dir, err := home()
	if err != nil || dir == "" {
		return "."
	}
	return dir
}

// Expand replaces a leading "~" with the home directory.  Any other input
// is returned unchanged.
func (r Resolver) Expand(raw string) string {
	if raw == "~" {
		return r.HomeDir()
	}
	if strings.HasPrefix(raw, "~/") || strings.HasPrefix(raw, "~"+string(os.PathSeparator)) {
		return filepath.Join(r.HomeDir(), raw[2:])
	}
	return raw
}

// Resolve expands raw and returns it as a clean absolute path.  When the
// working directory is unavailable the expanded path is returned as is.
func (r Resolver) Resolve(raw string) string {
	p := r.Expand(raw)
	abs, err := filepath.Abs(p)
	if err != nil {
		return p
	}
	return abs
}
