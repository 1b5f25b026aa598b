// internal/config/validator.go
//
// Thin wrapper around go-playground/validator.
//
// Context
// -------
// `Load` resolves and preflights each field itself, so this is the last
// gate, not the first.  It re-checks the invariants a finished Config
// must satisfy (absolute, existing directories, and a populated backend)
// so a future edit to the loader cannot hand out a half-built value.
//
// Notes
// -----
//   • `abspath` is registered here; the built-in `dir` rule covers
//     existence.
//   • Failures come back as *mabelerr.ConfigError wrapping the
//     validator's error.

package config

import (
	"path/filepath"

	"github.com/go-playground/validator/v10"

	"github.com/yanizio/mabel/internal/mabelerr"
)

//
// validator instance (package-level singleton)
//

var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New()
	_ = val.RegisterValidation("abspath", func(fl validator.FieldLevel) bool {
		return filepath.IsAbs(fl.Field().String())
	})
	return val
}

//
// public API
//

// validateStruct returns the first validation error, or nil on success.
func validateStruct(c *Config) error {
	if err := v.Struct(c); err != nil {
		return &mabelerr.ConfigError{Msg: "assembled config failed validation", Err: err}
	}
	// Interface fields are not traversed reliably; check the variant directly.
	if err := v.Struct(c.LLM); err != nil {
		return &mabelerr.ConfigError{Msg: c.LLM.Name() + " backend failed validation", Err: err}
	}
	return nil
}
