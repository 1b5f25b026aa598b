// internal/mabelerr/errors.go
//
// Closed error taxonomy for mabel.
//
// Context
// -------
// Every fallible operation in mabel returns either a value or one of the
// error types below.  Each type carries typed context (path, URL, status
// code, key name) so callers branch with errors.As or KindOf instead of
// parsing strings.  Types that wrap an OS or transport failure keep it in
// Err and expose it through Unwrap; the Error() text stays short and
// stable for the user while the cause remains available to the logger.
//
// Notes
// -----
//   • Grouped by subsystem: config, filesystem, network, formats, domain,
//     and LLM backend.
//   • Oxford commas, two spaces after periods.
package mabelerr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind identifies an error type without a type switch.
type Kind int

const (
	KindUnknown Kind = iota
	KindMissingEnv
	KindConfig
	KindIO
	KindVaultNotWritable
	KindTemplateMissing
	KindHTTP
	KindHTTPStatus
	KindURL
	KindXML
	KindJSON
	KindYAML
	KindTime
	KindTemplate
	KindInvalidArxivID
	KindExtraction
	KindExtractorMalformed
	KindGuardrail
	KindLLMProvider
)

var kindNames = [...]string{
	KindUnknown:            "unknown",
	KindMissingEnv:         "missing_env",
	KindConfig:             "config",
	KindIO:                 "io",
	KindVaultNotWritable:   "vault_not_writable",
	KindTemplateMissing:    "template_missing",
	KindHTTP:               "http",
	KindHTTPStatus:         "http_status",
	KindURL:                "url",
	KindXML:                "xml",
	KindJSON:               "json",
	KindYAML:               "yaml",
	KindTime:               "time",
	KindTemplate:           "template",
	KindInvalidArxivID:     "invalid_arxiv_id",
	KindExtraction:         "extraction",
	KindExtractorMalformed: "extractor_malformed",
	KindGuardrail:          "guardrail",
	KindLLMProvider:        "llm_provider",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return kindNames[KindUnknown]
	}
	return kindNames[k]
}

// Error is implemented by every type in this package.
type Error interface {
	error
	Kind() Kind
}

// KindOf returns the Kind of the first taxonomy error in err's chain, or
// KindUnknown when there is none.
func KindOf(err error) Kind {
	var e Error
	if errors.As(err, &e) {
		return e.Kind()
	}
	return KindUnknown
}

//
// SECTION 1.  Config / CLI
//

// MissingEnvError reports a required value absent from both the CLI and
// the environment.  Key is the environment variable name.
type MissingEnvError struct {
	Key string
}

func (e *MissingEnvError) Error() string {
	return "missing required environment variable: " + e.Key
}
func (e *MissingEnvError) Kind() Kind { return KindMissingEnv }

// ConfigError is the catch-all for configuration that is present but
// unusable.  Err is optional.
type ConfigError struct {
	Msg string
	Err error
}

func (e *ConfigError) Error() string { return "invalid configuration: " + e.Msg }
func (e *ConfigError) Unwrap() error { return e.Err }
func (e *ConfigError) Kind() Kind    { return KindConfig }

//
// SECTION 2.  Filesystem
//

// IOError wraps an OS failure at Path.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string { return fmt.Sprintf("I/O error at %s: %v", e.Path, e.Err) }
func (e *IOError) Unwrap() error { return e.Err }
func (e *IOError) Kind() Kind    { return KindIO }

// VaultNotWritableError is returned by the writability probe.  The OS
// error is kept for logs but left out of the message.
type VaultNotWritableError struct {
	Path string
	Err  error
}

func (e *VaultNotWritableError) Error() string { return "vault path not writable: " + e.Path }
func (e *VaultNotWritableError) Unwrap() error { return e.Err }
func (e *VaultNotWritableError) Kind() Kind    { return KindVaultNotWritable }

// TemplateMissingError reports a note template that cannot be read.
type TemplateMissingError struct {
	Path string
	Err  error
}

func (e *TemplateMissingError) Error() string {
	return "template not found or unreadable: " + e.Path
}
func (e *TemplateMissingError) Unwrap() error { return e.Err }
func (e *TemplateMissingError) Kind() Kind    { return KindTemplateMissing }

//
// SECTION 3.  HTTP / network
//

// MaxBodySnippet bounds the response excerpt kept by HTTPStatusError.
const MaxBodySnippet = 2 << 10

// HTTPError is a transport-level failure talking to URL.
type HTTPError struct {
	URL string
	Err error
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP request failed for %s: %v", e.URL, e.Err)
}
func (e *HTTPError) Unwrap() error { return e.Err }
func (e *HTTPError) Kind() Kind    { return KindHTTP }

// HTTPStatusError is a response with an unexpected status code.  Body
// holds at most MaxBodySnippet bytes of the response.
type HTTPStatusError struct {
	URL    string
	Status int
	Body   string
}

// NewHTTPStatusError truncates body to MaxBodySnippet bytes.
func NewHTTPStatusError(url string, status int, body []byte) *HTTPStatusError {
	if len(body) > MaxBodySnippet {
		body = body[:MaxBodySnippet]
	}
	return &HTTPStatusError{URL: url, Status: status, Body: string(body)}
}

func (e *HTTPStatusError) Error() string {
	msg := fmt.Sprintf("unexpected HTTP status %d %s from %s",
		e.Status, http.StatusText(e.Status), e.URL)
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}
func (e *HTTPStatusError) Kind() Kind { return KindHTTPStatus }

// URLParseError reports Input that is not a valid absolute URL.
type URLParseError struct {
	Input string
	Err   error
}

func (e *URLParseError) Error() string {
	return fmt.Sprintf("URL parse error: %q: %v", e.Input, e.Err)
}
func (e *URLParseError) Unwrap() error { return e.Err }
func (e *URLParseError) Kind() Kind    { return KindURL }

//
// SECTION 4.  Parsing / formats
//

// XMLError is a markup failure.  Context is a fixed label such as
// "TEI header".
type XMLError struct {
	Context string
	Err     error
}

func (e *XMLError) Error() string {
	return fmt.Sprintf("XML parse error while reading %s: %v", e.Context, e.Err)
}
func (e *XMLError) Unwrap() error { return e.Err }
func (e *XMLError) Kind() Kind    { return KindXML }

type JSONError struct{ Err error }

func (e *JSONError) Error() string { return "JSON error: " + e.Err.Error() }
func (e *JSONError) Unwrap() error { return e.Err }
func (e *JSONError) Kind() Kind    { return KindJSON }

type YAMLError struct{ Err error }

func (e *YAMLError) Error() string { return "YAML error: " + e.Err.Error() }
func (e *YAMLError) Unwrap() error { return e.Err }
func (e *YAMLError) Kind() Kind    { return KindYAML }

type TimeParseError struct{ Err error }

func (e *TimeParseError) Error() string { return "date/time parse error: " + e.Err.Error() }
func (e *TimeParseError) Unwrap() error { return e.Err }
func (e *TimeParseError) Kind() Kind    { return KindTime }

type TemplateError struct{ Err error }

func (e *TemplateError) Error() string { return "templating error: " + e.Err.Error() }
func (e *TemplateError) Unwrap() error { return e.Err }
func (e *TemplateError) Kind() Kind    { return KindTemplate }

//
// SECTION 5.  Domain
//

type InvalidArxivIDError struct{ Input string }

func (e *InvalidArxivIDError) Error() string { return "invalid arXiv id or URL: " + e.Input }
func (e *InvalidArxivIDError) Kind() Kind    { return KindInvalidArxivID }

type ExtractionError struct{ Reason string }

func (e *ExtractionError) Error() string { return "extraction failed: " + e.Reason }
func (e *ExtractionError) Kind() Kind    { return KindExtraction }

// ExtractorMalformedError means the extraction service answered, but with
// a document we could not use.
type ExtractorMalformedError struct{ Reason string }

func (e *ExtractorMalformedError) Error() string {
	return "GROBID returned malformed TEI: " + e.Reason
}
func (e *ExtractorMalformedError) Kind() Kind { return KindExtractorMalformed }

// GuardrailError is a policy check failure, not a mechanical one.
type GuardrailError struct{ Reason string }

func (e *GuardrailError) Error() string { return "guardrail violation: " + e.Reason }
func (e *GuardrailError) Kind() Kind    { return KindGuardrail }

//
// SECTION 6.  LLM backends
//

// LLMProviderError passes a provider SDK error through untouched.
type LLMProviderError struct {
	Provider string
	Err      error
}

func (e *LLMProviderError) Error() string {
	return fmt.Sprintf("%s API error: %v", e.Provider, e.Err)
}
func (e *LLMProviderError) Unwrap() error { return e.Err }
func (e *LLMProviderError) Kind() Kind    { return KindLLMProvider }
