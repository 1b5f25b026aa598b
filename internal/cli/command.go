package cli

import (
	"github.com/spf13/cobra"
)

// RunFunc receives the parsed Args.
type RunFunc func(cmd *cobra.Command, args Args) error

// NewCommand returns the root `mabel` command.  Flag values are copied
// into Args only when the user actually set them.
func NewCommand(version string, run RunFunc) *cobra.Command {
	var (
		vaultPath, vaultSubdir, cacheDir string
		ollamaHost, model, openaiKey     string
		grobidURL, template, mode        string
		configFile                       string
		a                                Args
	)

	cmd := &cobra.Command{
		Use:   "mabel <arxiv-id-or-url>",
		Short: "Turn an arXiv paper into a note in your Obsidian vault",
		Long: `mabel downloads an arXiv paper, extracts its text, summarizes it with
an LLM, and writes a structured note into an Obsidian vault.

Settings come from flags, then environment variables (a .env file in the
working directory is read first), then built-in defaults.`,
		Version:       version,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, pos []string) error {
			a.Input = pos[0]
			f := cmd.Flags()
			set := func(name string, v *string) *string {
				if f.Changed(name) {
					return Str(*v)
				}
				return nil
			}
			a.VaultPath = set("vault", &vaultPath)
			a.VaultSubdir = set("subdir", &vaultSubdir)
			a.CacheDir = set("cache-dir", &cacheDir)
			a.OllamaHost = set("ollama-host", &ollamaHost)
			a.Model = set("model", &model)
			a.OpenAIKey = set("openai-key", &openaiKey)
			a.GrobidURL = set("grobid-url", &grobidURL)
			a.Template = set("template", &template)
			a.Mode = set("mode", &mode)
			a.ConfigFile = set("config", &configFile)
			return run(cmd, a)
		},
	}

	f := cmd.Flags()
	f.StringVar(&vaultPath, "vault", "", "Obsidian vault path (env OBSIDIAN_VAULT_PATH)")
	f.StringVar(&vaultSubdir, "subdir", "", `folder inside the vault for notes (env OBSIDIAN_SUBDIR, default "Papers")`)
	f.BoolVar(&a.CopyPDF, "copy-pdf", false, "copy the source PDF into the vault (env MABEL_COPY_PDF)")
	f.BoolVar(&a.Overwrite, "overwrite", false, "overwrite an existing note instead of updating it (env MABEL_OVERWRITE_NOTE)")
	f.StringVar(&cacheDir, "cache-dir", "", "download cache (env MABEL_CACHE_DIR, default ~/.mabel)")
	f.BoolVar(&a.Ollama, "ollama", false, "use a local Ollama server instead of OpenAI")
	f.StringVar(&ollamaHost, "ollama-host", "", "Ollama base URL (env OLLAMA_HOST, default http://localhost:11434)")
	f.StringVar(&model, "model", "", "model name (env OPENAI_MODEL or OLLAMA_MODEL)")
	f.StringVar(&openaiKey, "openai-key", "", "OpenAI API key (env OPENAI_API_KEY)")
	f.StringVar(&grobidURL, "grobid-url", "", "GROBID service URL (env GROBID_URL); unset uses the fallback extractor")
	f.StringVar(&template, "template", "", "note template (default templates/paper_note.md.tera)")
	f.StringVar(&mode, "mode", "concise", `note style: "concise" or "study"`)
	f.StringVar(&configFile, "config", "", "YAML file of environment settings (env MABEL_CONFIG)")
	f.BoolVarP(&a.Verbose, "verbose", "v", false, "debug logging")

	return cmd
}
