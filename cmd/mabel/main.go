// cmd/mabel/main.go
//
// mabel – command-line entry point.
//
// Run life-cycle
// --------------
//
//  1. Install the bootstrap console logger (level from MABEL_LOG_LEVEL,
//     or debug with -v).
//
//  2. Parse flags into cli.Args.
//
//  3. Load .env, the optional YAML layer, and the process environment
//     into one environ.Table.
//
//  4. config.Load: preflight the vault and cache, pick the LLM backend,
//     and validate URLs.  No network I/O; nothing below runs unless this
//     succeeds.
//
//  5. When the API key is a "vault:" reference, fetch it through the
//     Vault client built from VAULT_ADDR.
//
//  6. Switch to the rotating file logger under <cache>/logs.
//
//  7. Parse the paper id and print the run plan.
//
//  8. Write metrics to MABEL_METRICS_FILE if set.
//
// Errors print their stable message and exit 1; the wrapped cause goes
// to the log.
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/yanizio/mabel/internal/arxiv"
	"github.com/yanizio/mabel/internal/cli"
	"github.com/yanizio/mabel/internal/config"
	"github.com/yanizio/mabel/internal/environ"
	"github.com/yanizio/mabel/internal/logger"
	"github.com/yanizio/mabel/internal/mabelerr"
	"github.com/yanizio/mabel/internal/metrics"
	"github.com/yanizio/mabel/internal/pipeline"
	"github.com/yanizio/mabel/internal/secrets"
)

var version = "dev"

const metricsFileKey = "MABEL_METRICS_FILE"

// runningInTTY returns true when stderr is a character device.
func runningInTTY() bool {
	fi, err := os.Stderr.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

func main() {
	level := logger.ParseLevel(os.Getenv(logger.LevelKey))
	logger.Bootstrap(level)

	cmd := cli.NewCommand(version, func(cmd *cobra.Command, args cli.Args) error {
		if args.Verbose {
			level = zapcore.DebugLevel
			logger.Bootstrap(level)
		}
		return run(cmd, args, level)
	})

	err := cmd.Execute()
	flushMetrics()
	_ = zap.L().Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, "mabel:", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args cli.Args, level zapcore.Level) error {
	//
	// ── 1.  Environment table ───────────────────────────────────────────
	//
	var envOpts environ.Options
	if args.ConfigFile != nil {
		envOpts.ConfigFile = *args.ConfigFile
	}
	src, err := environ.Load(envOpts)
	if err != nil {
		return err
	}

	//
	// ── 2.  Configuration ───────────────────────────────────────────────
	//
	cfg, err := config.Load(args, config.Options{Env: src})
	if err != nil {
		if cause := errors.Unwrap(err); cause != nil {
			zap.S().Debugw("config cause", "kind", mabelerr.KindOf(err).String(), "cause", cause)
		}
		return err
	}

	//
	// ── 3.  Secret references (optional) ────────────────────────────────
	//
	if cfg.NeedsSecrets() {
		var resolver config.SecretResolver
		vc, ok, err := secrets.FromEnv(src, 10*time.Second)
		if err != nil {
			return &mabelerr.ConfigError{Msg: "vault client", Err: err}
		}
		if ok {
			resolver = vc
		}
		if cfg, err = config.ResolveSecrets(cfg, resolver); err != nil {
			return err
		}
	}

	log, err := logger.New(cfg.Cache.Dir, runningInTTY(), level)
	if err != nil {
		return &mabelerr.IOError{Path: cfg.Cache.Dir, Err: err}
	}
	log.Infow("run configuration", cfg.Fields()...)

	//
	// ── 4.  Paper and plan ──────────────────────────────────────────────
	//
	id, err := arxiv.Parse(args.Input)
	if err != nil {
		return err
	}
	plan := pipeline.NewPlan(cfg, id)
	log.Infow("plan ready",
		"id", plan.ID,
		"pdf_cache", plan.PDFCache,
		"note", plan.NotePath,
		"extractor", plan.Extractor,
		"llm", cfg.LLM.Name(),
		"mode", cfg.Rendering.Mode.String(),
	)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "paper:     %s (%s)\n", plan.ID, plan.ID.AbsURL())
	fmt.Fprintf(out, "pdf cache: %s\n", plan.PDFCache)
	fmt.Fprintf(out, "note:      %s\n", plan.NotePath)
	if plan.VaultPDF != "" {
		fmt.Fprintf(out, "pdf copy:  %s\n", plan.VaultPDF)
	}
	fmt.Fprintf(out, "extractor: %s\n", plan.Extractor)
	fmt.Fprintf(out, "llm:       %s\n", cfg.LLM.Name())
	fmt.Fprintf(out, "mode:      %s\n", cfg.Rendering.Mode)
	return nil
}

// flushMetrics writes the registry when MABEL_METRICS_FILE is set.
func flushMetrics() {
	path := os.Getenv(metricsFileKey)
	if path == "" {
		return
	}
	if err := metrics.WriteTextfile(path); err != nil {
		zap.S().Warnw("metrics textfile write failed", "file", path, "err", err)
	}
}
