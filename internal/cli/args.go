// internal/cli/args.go
//
// Parsed command-line input.
//
// Context
// -------
// Args is the only thing config assembly knows about the command line.
// Pointer fields are nil unless the user passed the flag, so "flag set to
// the default value" and "flag not given" stay distinguishable and CLI
// precedence over the environment is exact.  Boolean switches can only
// turn a setting on; they are ORed with their environment variable.
package cli

// Args holds the optional values collected from flags.
type Args struct {
	Input string // arXiv id or URL (positional)

	VaultPath   *string
	VaultSubdir *string
	CopyPDF     bool
	Overwrite   bool
	CacheDir    *string

	Ollama     bool
	OllamaHost *string
	Model      *string
	OpenAIKey  *string

	GrobidURL *string
	Template  *string
	Mode      *string

	ConfigFile *string
	Verbose    bool
}

// Str is a helper for building Args in code: Str("x") returns &"x".
func Str(s string) *string { return &s }
