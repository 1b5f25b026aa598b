// internal/logger/logger.go
//
// Structured JSON logger (Zap + Lumberjack).
//
// Context
// -------
// mabel logs in two phases.  Bootstrap installs a console logger on
// stderr as soon as main starts, so config assembly can report through
// zap.S() before any directory is known.  Once the cache directory is
// resolved, New switches to one JSON log per day under
// `<cache>/logs/YYYY-MM-DD.log`, teed to the console when stderr is a
// TTY.  Rotation, compression, and retention are handled by Lumberjack.
//
// Usage
// -----
//
//	logger.Bootstrap(logger.ParseLevel(os.Getenv("MABEL_LOG_LEVEL")))
//	cfg, err := config.Load(args, opts)
//	log, err := logger.New(cfg.Cache.Dir, runningInTTY(), level)
//	log.Infow("note written", "path", p)
//
// Notes
// -----
// • Zap core uses ISO-8601 timestamps and lowercase levels.
// • Errors are written to the same sink via `ErrorOutput`.
// • Oxford commas, two spaces after periods.
package logger

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LevelKey selects the log level.
const LevelKey = "MABEL_LOG_LEVEL"

var encCfg = zapcore.EncoderConfig{
	TimeKey:      "ts",
	LevelKey:     "level",
	MessageKey:   "msg",
	CallerKey:    "caller",
	EncodeTime:   zapcore.ISO8601TimeEncoder,
	EncodeLevel:  zapcore.LowercaseLevelEncoder,
	EncodeCaller: zapcore.ShortCallerEncoder,
}

// ParseLevel maps debug, info, warn, and error to zap levels.  Anything
// else is info.
func ParseLevel(s string) zapcore.Level {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(s)))); err != nil {
		return zapcore.InfoLevel
	}
	return lvl
}

// Bootstrap installs a console logger on stderr as the process-wide
// default and returns it.
func Bootstrap(level zapcore.Level) *zap.SugaredLogger {
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.Lock(os.Stderr),
		level,
	)
	z := zap.New(core).Sugar()
	zap.ReplaceGlobals(z.Desugar())
	return z
}

// New returns a *zap.SugaredLogger that writes JSON to <dir>/logs.  When
// tee == true, a console core on stderr is also attached.  The logger is
// installed as the process-wide default via zap.ReplaceGlobals.
func New(dir string, tee bool, level zapcore.Level) (*zap.SugaredLogger, error) {
	logDir := filepath.Join(dir, "logs")
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, err
	}

	fileName := time.Now().Format("2006-01-02") + ".log"
	fileSink := &lumberjack.Logger{
		Filename:   filepath.Join(logDir, fileName),
		MaxSize:    10, // MB
		MaxBackups: 7,  // keep last seven files
		MaxAge:     30, // days
		Compress:   true,
	}

	cores := []zapcore.Core{
		zapcore.NewCore(
			zapcore.NewJSONEncoder(encCfg),
			zapcore.AddSync(fileSink),
			level,
		),
	}
	if tee {
		cores = append(cores, zapcore.NewCore(
			zapcore.NewConsoleEncoder(encCfg),
			zapcore.Lock(os.Stderr),
			level,
		))
	}

	z := zap.New(
		zapcore.NewTee(cores...),
		zap.ErrorOutput(zapcore.AddSync(fileSink)),
	).Sugar()

	zap.ReplaceGlobals(z.Desugar())

	z.Debugw("logger online", "dir", logDir, "tee", tee)
	return z, nil
}
