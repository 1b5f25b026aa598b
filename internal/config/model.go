// internal/config/model.go
//
// Typed configuration model for mabel.
//
// Context
// -------
// These structs are what `internal/config/loader.go` builds from CLI
// flags, the environment table, and literal defaults.  A Config is
// produced once per run and handed around by value; nothing downstream
// writes to it.  Values that can be derived from other fields (the notes
// directory, the cached PDF path) are methods, not fields.
//
// Notes
// -----
//   • `validate` tags are checked by validator.go after assembly.
//     `abspath` is a custom rule registered there.
//   • The LLM backend is a closed sum type.  Only OpenAI and Ollama
//     implement Backend, so "both" and "neither" cannot be represented.
//   • Oxford commas, two spaces after periods.  No em-dash.

package config

import (
	"fmt"
	"net/url"
	"path/filepath"
	"time"
)

//
// Vault section
//

// Vault is the Obsidian vault the note is written into.
type Vault struct {
	Path    string `validate:"required,abspath,dir"`
	Subdir  string
	CopyPDF bool
}

//
// Cache section
//

// Cache holds downloaded PDFs and extraction output.
type Cache struct {
	Dir           string `validate:"required,abspath,dir"`
	OverwriteNote bool
}

//
// LLM section
//

// Backend is either OpenAI or Ollama.
type Backend interface {
	// Name is the provider label used in logs and errors.
	Name() string
	isBackend()
}

// OpenAI talks to an OpenAI-compatible API.  Exactly one of APIKey and
// KeyRef is set after Load; ResolveSecrets fills APIKey from KeyRef.
type OpenAI struct {
	APIKey      string `validate:"required_without=KeyRef"`
	KeyRef      string
	Model       string `validate:"required"`
	MaxTokens   uint32
	Temperature float32
}

// Ollama talks to a local inference server.
type Ollama struct {
	Host        url.URL
	Model       string `validate:"required"`
	MaxTokens   uint32
	Temperature float32
}

func (OpenAI) Name() string { return "openai" }
func (Ollama) Name() string { return "ollama" }
func (OpenAI) isBackend()   {}
func (Ollama) isBackend()   {}

//
// Extraction section
//

// Extraction configures the document-structure step.  A nil GrobidURL
// means the caller uses its fallback extractor.
type Extraction struct {
	GrobidURL *url.URL
}

//
// HTTP section
//

// HTTP holds the limits the downstream HTTP client applies.
type HTTP struct {
	Timeout    time.Duration
	Retries    uint32
	RatePerMin uint32
}

//
// Rendering section
//

// Mode selects the note style.
type Mode int

const (
	ModeConcise Mode = iota // short abstract and bullets
	ModeStudy               // longer method, results, and glossary
)

func (m Mode) String() string {
	if m == ModeStudy {
		return "study"
	}
	return "concise"
}

// ParseMode maps "study" to ModeStudy and everything else to ModeConcise.
// Matching is case-sensitive.
func ParseMode(s string) Mode {
	if s == "study" {
		return ModeStudy
	}
	return ModeConcise
}

// Rendering configures the note template.  TemplatePath is resolved but
// its existence is the renderer's concern.
type Rendering struct {
	TemplatePath string `validate:"required,abspath"`
	Mode         Mode
}

//
// Root aggregate
//

// Config is the immutable result of Load.
type Config struct {
	Vault      Vault
	Cache      Cache
	LLM        Backend `validate:"required"`
	Extraction Extraction
	HTTP       HTTP
	Rendering  Rendering
}

// VaultNotesDir is where notes are written: <vault>/<subdir>.
func (c Config) VaultNotesDir() string {
	return filepath.Join(c.Vault.Path, c.Vault.Subdir)
}

// CachedPDFPath is the cache location for one paper's PDF.
func (c Config) CachedPDFPath(arxivID string) string {
	return filepath.Join(c.Cache.Dir, "papers", arxivID+".pdf")
}

// Fields flattens c into key/value pairs for structured logging.  The API
// key is masked.
func (c Config) Fields() []any {
	f := []any{
		"vault", c.Vault.Path,
		"subdir", c.Vault.Subdir,
		"copy_pdf", c.Vault.CopyPDF,
		"cache_dir", c.Cache.Dir,
		"overwrite", c.Cache.OverwriteNote,
		"http_timeout", c.HTTP.Timeout,
		"http_retries", c.HTTP.Retries,
		"rate_per_min", c.HTTP.RatePerMin,
		"template", c.Rendering.TemplatePath,
		"mode", c.Rendering.Mode.String(),
	}
	if c.Extraction.GrobidURL != nil {
		f = append(f, "grobid", c.Extraction.GrobidURL.String())
	} else {
		f = append(f, "grobid", "fallback")
	}
	switch b := c.LLM.(type) {
	case OpenAI:
		f = append(f, "llm", b.Name(), "model", b.Model, "api_key", mask(b.APIKey),
			"max_tokens", b.MaxTokens, "temperature", b.Temperature)
		if b.KeyRef != "" {
			f = append(f, "api_key_ref", b.KeyRef)
		}
	case Ollama:
		f = append(f, "llm", b.Name(), "model", b.Model, "host", b.Host.String(),
			"max_tokens", b.MaxTokens, "temperature", b.Temperature)
	}
	return f
}

// mask keeps the last four characters of long secrets.
func mask(secret string) string {
	if len(secret) <= 8 {
		return "****"
	}
	return fmt.Sprintf("****%s", secret[len(secret)-4:])
}
