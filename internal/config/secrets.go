package config

import (
	"strings"

	"go.uber.org/zap"

	"github.com/yanizio/mabel/internal/mabelerr"
)

// SecretResolver fetches the value behind a secret reference.
// *secrets.Client implements it.
type SecretResolver interface {
	Resolve(ref string) (string, error)
}

// NeedsSecrets reports whether the LLM backend still holds an unresolved
// secret reference.
func (c Config) NeedsSecrets() bool {
	oa, ok := c.LLM.(OpenAI)
	return ok && oa.KeyRef != ""
}

// ResolveSecrets returns cfg with the OpenAI key reference replaced by its
// value.  Load never calls a resolver; the caller runs this afterwards,
// once the whole configuration is known to be valid.  A cfg without
// references is returned unchanged and r is not consulted.
func ResolveSecrets(cfg Config, r SecretResolver) (Config, error) {
	if !cfg.NeedsSecrets() {
		return cfg, nil
	}
	oa := cfg.LLM.(OpenAI)

	if r == nil {
		return Config{}, &mabelerr.ConfigError{
			Msg: KeyOpenAIKey + " is a secret reference but no secret store is configured (set VAULT_ADDR)",
		}
	}
	val, err := r.Resolve(oa.KeyRef)
	if err != nil {
		return Config{}, &mabelerr.ConfigError{Msg: "resolve " + KeyOpenAIKey + " secret reference", Err: err}
	}
	if strings.TrimSpace(val) == "" {
		return Config{}, &mabelerr.ConfigError{Msg: "secret behind " + KeyOpenAIKey + " is empty"}
	}

	oa.APIKey = val
	cfg.LLM = oa
	zap.S().Debugw("api key resolved from secret store", "ref", oa.KeyRef)
	return cfg, nil
}
