// internal/environ/environ.go
//
// Environment probe: one read-only key/value table built at startup.
//
/*
Context
--------
`Load()` is the single explicit initialization call.  It builds the table
from up to three layers (highest precedence last):

  1. Optional `.env` files, copied into the process environment by
     godotenv.  Variables already set in the shell are never overwritten.
  2. Optional YAML file whose top-level keys are environment variable
     names (`OBSIDIAN_VAULT_PATH: ~/Vault`).
  3. The process environment.

The result is a snapshot.  Later changes to the process environment are
not observed, so every lookup during config assembly sees the same values.

Tests skip all of this and call `FromMap`.

Notes
-----
  • Keys are case-sensitive and stored verbatim; no prefix stripping.
  • A missing dotenv file is not an error.  A YAML file that was asked
    for explicitly is.
*/
package environ

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	koanf "github.com/knadh/koanf/v2"
	"go.uber.org/zap"

	"github.com/yanizio/mabel/internal/mabelerr"
)

// ConfigFileKey names the variable that points at the optional YAML layer.
const ConfigFileKey = "MABEL_CONFIG"

// Source answers key lookups.  ok is false when the key is unset.
type Source interface {
	Lookup(key string) (value string, ok bool)
}

// Table is a koanf-backed Source.  The zero value is invalid.
type Table struct {
	k *koanf.Koanf
}

// Lookup implements Source.
func (t *Table) Lookup(key string) (string, bool) {
	if !t.k.Exists(key) {
		return "", false
	}
	return t.k.String(key), true
}

// Options controls Load.  All fields are optional.
type Options struct {
	// DotenvFiles are loaded in order; empty means "./.env".
	DotenvFiles []string

	// ConfigFile is a YAML layer below the environment.  When empty the
	// value of MABEL_CONFIG is used, if any.
	ConfigFile string
}

/*─────────────────────────────── loader ───────────────────────────────────*/

// LoadDotenv copies each readable dotenv file into the process
// environment.  Missing or malformed files are skipped.
func LoadDotenv(files ...string) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			zap.S().Debugw("dotenv skipped", "file", f, "err", err)
			continue
		}
		zap.S().Debugw("dotenv loaded", "file", f)
	}
}

// Load runs the dotenv step and snapshots the merged table.
func Load(opts Options) (*Table, error) {
	LoadDotenv(opts.DotenvFiles...)

	k := koanf.New(".")

	path := opts.ConfigFile
	if path == "" {
		path = os.Getenv(ConfigFileKey)
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			zap.S().Errorw("config yaml load failed", "file", path, "err", err)
			if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
				return nil, &mabelerr.IOError{Path: path, Err: err}
			}
			return nil, &mabelerr.YAMLError{Err: err}
		}
		zap.S().Debugw("config yaml loaded", "file", path)
	}

	// Keys stay verbatim: OBSIDIAN_VAULT_PATH → OBSIDIAN_VAULT_PATH.
	if err := k.Load(env.Provider("", ".", func(s string) string { return s }), nil); err != nil {
		zap.S().Errorw("env overlay failed", "err", err)
		return nil, &mabelerr.ConfigError{Msg: "read environment", Err: err}
	}

	return &Table{k: k}, nil
}

// FromMap builds a Table from fixed values.  Intended for tests and for
// callers that already hold their settings in memory.
func FromMap(m map[string]string) *Table {
	raw := make(map[string]any, len(m))
	for key, v := range m {
		raw[key] = v
	}
	k := koanf.New(".")
	// confmap.Provider cannot fail on a flat map.
	_ = k.Load(confmap.Provider(raw, ""), nil)
	return &Table{k: k}
}
