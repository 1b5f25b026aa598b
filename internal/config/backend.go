package config

import (
	"errors"
	"net/url"
	"strings"

	"github.com/yanizio/mabel/internal/cli"
	"github.com/yanizio/mabel/internal/environ"
	"github.com/yanizio/mabel/internal/mabelerr"
	"github.com/yanizio/mabel/internal/secrets"
)

// Backend defaults and keys.
const (
	DefaultOllamaHost  = "http://localhost:11434"
	DefaultOllamaModel = "llama3:8b-instruct"
	DefaultOpenAIModel = "gpt-4o-mini"
	DefaultMaxTokens   = 800
	DefaultTemperature = 0.2

	KeyOllamaHost  = "OLLAMA_HOST"
	KeyOllamaModel = "OLLAMA_MODEL"
	KeyOpenAIKey   = "OPENAI_API_KEY"
	KeyOpenAIModel = "OPENAI_MODEL"
	KeyMaxTokens   = "MABEL_MAX_TOKENS"
	KeyTemperature = "MABEL_TEMPERATURE"
)

// selectBackend builds the variant chosen by args.Ollama.  Each field is
// CLI > environment > default, except the OpenAI key, which has no
// default.  Token and temperature knobs are environment-only and fall
// back silently on bad input.
//
// A key of the form "vault:<mount>/<path>#<key>" is syntax-checked and
// kept in OpenAI.KeyRef; fetching it is ResolveSecrets' job.
func selectBackend(args cli.Args, src environ.Source) (Backend, error) {
	maxTokens := environ.Uint32(src, KeyMaxTokens, DefaultMaxTokens)
	temperature := environ.Float32(src, KeyTemperature, DefaultTemperature)

	if args.Ollama {
		rawHost := pick(args.OllamaHost, src, KeyOllamaHost, DefaultOllamaHost)
		host, err := parseAbsURL(rawHost)
		if err != nil {
			return nil, err
		}
		return Ollama{
			Host:        *host,
			Model:       pick(args.Model, src, KeyOllamaModel, DefaultOllamaModel),
			MaxTokens:   maxTokens,
			Temperature: temperature,
		}, nil
	}

	key, ok := lookup(args.OpenAIKey, src, KeyOpenAIKey)
	if !ok || strings.TrimSpace(key) == "" {
		return nil, &mabelerr.MissingEnvError{Key: KeyOpenAIKey}
	}
	oa := OpenAI{
		APIKey:      key,
		Model:       pick(args.Model, src, KeyOpenAIModel, DefaultOpenAIModel),
		MaxTokens:   maxTokens,
		Temperature: temperature,
	}
	if strings.HasPrefix(key, secrets.RefPrefix) {
		if _, _, err := secrets.ParseRef(key); err != nil {
			return nil, &mabelerr.ConfigError{Msg: KeyOpenAIKey + " is not a valid secret reference", Err: err}
		}
		oa.APIKey, oa.KeyRef = "", key
	}
	return oa, nil
}

var errNotAbsolute = errors.New("URL must have a scheme and host")

// parseAbsURL accepts only absolute URLs with a host.
func parseAbsURL(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, &mabelerr.URLParseError{Input: raw, Err: err}
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, &mabelerr.URLParseError{Input: raw, Err: errNotAbsolute}
	}
	return u, nil
}
