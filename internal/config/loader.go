// internal/config/loader.go
//
// Configuration assembler.
//
/*
Context
--------
`Load()` builds one immutable `Config` from three sources (highest
precedence first):

  1. CLI flags (`cli.Args`; nil pointers mean "not given").
  2. The environment table (`environ.Source`: process env over the
     optional YAML file over `.env`, snapshotted by `environ.Load`).
  3. Literal defaults in this package.

Steps run in a fixed order and the first failure returns immediately, so
with several bad inputs the same error always surfaces:

  vault path → vault subdir → copy-pdf → cache dir → overwrite →
  LLM backend → GROBID URL → HTTP knobs → template → mode

The vault path is preflighted (exists, writable) before the backend is
looked at; a missing vault therefore never asks for an API key.  The
cache directory is created, or must already be a directory, but is not
write-probed.

Load does no network I/O.  A "vault:" API key reference is only
syntax-checked here and fetched later by ResolveSecrets.

Instrumentation
---------------
  • DEBUG spans - each resolved group.
  • ERROR span  - the failing step, with the error kind.
  • INFO  span  - final "config loaded" with the API key masked.
  • Logs go through `zap.S()`, so boot-time messages reach the bootstrap
    console logger before the file logger exists.

Notes
-----
  • The dotenv load is not done here.  `environ.Load` performs it once,
    at process start, before the Source is handed in.
  • Unparsable numeric settings silently use their default.
*/
package config

import (
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/yanizio/mabel/internal/cli"
	"github.com/yanizio/mabel/internal/environ"
	"github.com/yanizio/mabel/internal/fsutil"
	"github.com/yanizio/mabel/internal/mabelerr"
	"github.com/yanizio/mabel/internal/metrics"
	"github.com/yanizio/mabel/internal/paths"
)

// Defaults and keys for the non-backend groups.
const (
	DefaultSubdir       = "Papers"
	DefaultCacheDirName = ".mabel"
	DefaultTemplate     = "templates/paper_note.md.tera"
	DefaultHTTPTimeout  = 20 // seconds
	DefaultHTTPRetries  = 2
	DefaultRatePerMin   = 30

	KeyVaultPath   = "OBSIDIAN_VAULT_PATH"
	KeyVaultSubdir = "OBSIDIAN_SUBDIR"
	KeyCopyPDF     = "MABEL_COPY_PDF"
	KeyCacheDir    = "MABEL_CACHE_DIR"
	KeyOverwrite   = "MABEL_OVERWRITE_NOTE"
	KeyGrobidURL   = "GROBID_URL"
	KeyHTTPTimeout = "MABEL_HTTP_TIMEOUT_SECS"
	KeyHTTPRetries = "MABEL_HTTP_RETRIES"
	KeyRatePerMin  = "MABEL_RATE_PER_MIN"
)

// Options carries Load's collaborators.
type Options struct {
	// Env is required.  Use environ.Load in production, environ.FromMap
	// in tests.
	Env environ.Source

	// Paths expands "~" and absolutizes.  Zero value uses the real home.
	Paths paths.Resolver
}

/*─────────────────────────────── loader ───────────────────────────────────*/

// Load resolves args against opts.Env and returns the finished Config or
// the first error, always one of the mabelerr types.
func Load(args cli.Args, opts Options) (Config, error) {
	cfg, err := assemble(args, opts)
	if err != nil {
		kind := mabelerr.KindOf(err)
		metrics.ConfigLoadErrorsTotal.WithLabelValues(kind.String()).Inc()
		zap.S().Errorw("config load failed", "kind", kind.String(), "err", err)
		return Config{}, err
	}
	metrics.ConfigLoadTotal.Inc()
	zap.S().Infow("config loaded", cfg.Fields()...)
	return cfg, nil
}

func assemble(args cli.Args, opts Options) (Config, error) {
	src := opts.Env
	if src == nil {
		return Config{}, &mabelerr.ConfigError{Msg: "no environment source"}
	}
	res := opts.Paths
	var cfg Config

	// ---- Obsidian vault ----
	rawVault, ok := lookup(args.VaultPath, src, KeyVaultPath)
	if !ok || rawVault == "" {
		return Config{}, &mabelerr.MissingEnvError{Key: KeyVaultPath}
	}
	cfg.Vault.Path = res.Resolve(rawVault)
	if err := fsutil.EnsureDirExists(cfg.Vault.Path); err != nil {
		return Config{}, err
	}
	if err := fsutil.EnsureWritable(cfg.Vault.Path); err != nil {
		return Config{}, err
	}
	cfg.Vault.Subdir = pick(args.VaultSubdir, src, KeyVaultSubdir, DefaultSubdir)
	cfg.Vault.CopyPDF = args.CopyPDF || environ.Bool(src, KeyCopyPDF, false)
	zap.S().Debugw("vault resolved", "path", cfg.Vault.Path, "subdir", cfg.Vault.Subdir)

	// ---- Cache ----
	rawCache, ok := lookup(args.CacheDir, src, KeyCacheDir)
	if !ok {
		rawCache = filepath.Join(res.HomeDir(), DefaultCacheDirName)
	}
	cfg.Cache.Dir = res.Resolve(rawCache)
	if err := fsutil.EnsureDirExists(cfg.Cache.Dir); err != nil {
		return Config{}, err
	}
	if err := fsutil.RequireDir(cfg.Cache.Dir); err != nil {
		return Config{}, err
	}
	cfg.Cache.OverwriteNote = args.Overwrite || environ.Bool(src, KeyOverwrite, false)
	zap.S().Debugw("cache resolved", "dir", cfg.Cache.Dir)

	// ---- LLM backend ----
	llm, err := selectBackend(args, src)
	if err != nil {
		return Config{}, err
	}
	cfg.LLM = llm
	zap.S().Debugw("llm backend selected", "backend", llm.Name())

	// ---- Extraction (GROBID optional) ----
	if raw, ok := lookup(args.GrobidURL, src, KeyGrobidURL); ok {
		u, err := parseAbsURL(raw)
		if err != nil {
			return Config{}, err
		}
		cfg.Extraction.GrobidURL = u
	}

	// ---- HTTP/runtime ----
	cfg.HTTP.Timeout = time.Duration(environ.Uint64(src, KeyHTTPTimeout, DefaultHTTPTimeout)) * time.Second
	cfg.HTTP.Retries = environ.Uint32(src, KeyHTTPRetries, DefaultHTTPRetries)
	cfg.HTTP.RatePerMin = environ.Uint32(src, KeyRatePerMin, DefaultRatePerMin)

	// ---- Rendering ----
	tmpl := DefaultTemplate
	if args.Template != nil {
		tmpl = *args.Template
	}
	cfg.Rendering.TemplatePath = res.Resolve(tmpl)
	if args.Mode != nil {
		cfg.Rendering.Mode = ParseMode(*args.Mode)
	}

	if err := validateStruct(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

/*──────────────────────────── helpers ─────────────────────────────────────*/

// lookup returns the CLI value when given, else the environment value.
func lookup(flag *string, src environ.Source, key string) (string, bool) {
	if flag != nil {
		return *flag, true
	}
	return src.Lookup(key)
}

// pick is lookup with a default.
func pick(flag *string, src environ.Source, key, def string) string {
	if flag != nil {
		return *flag
	}
	return environ.String(src, key, def)
}
