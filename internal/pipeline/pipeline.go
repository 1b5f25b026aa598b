// internal/pipeline/pipeline.go
//
// Contracts for the note-generation stages and the per-paper plan.
//
// Context
// -------
// Extraction, summarization, rendering, and vault writing are separate
// collaborators.  This file fixes their interfaces and derives the file
// locations one run touches from the immutable Config, so each stage
// receives paths instead of recomputing them.
//
// Every method reports failures as mabelerr types: extractors use
// ExtractionError, ExtractorMalformedError, HTTPError, or
// HTTPStatusError; summarizers use LLMProviderError or GuardrailError;
// renderers use TemplateMissingError or TemplateError; writers use
// IOError.
package pipeline

import (
	"context"
	"path/filepath"

	"github.com/yanizio/mabel/internal/arxiv"
	"github.com/yanizio/mabel/internal/config"
)

// Document is the text pulled from a paper.
type Document struct {
	Title    string
	Authors  []string
	Abstract string
	Body     string
}

// Summary is the LLM's structured output.
type Summary struct {
	TLDR     string
	Bullets  []string
	Method   string
	Results  string
	Glossary map[string]string
}

// Extractor turns a PDF on disk into a Document.
type Extractor interface {
	Extract(ctx context.Context, pdfPath string) (Document, error)
}

// Summarizer calls the configured LLM backend.
type Summarizer interface {
	Summarize(ctx context.Context, doc Document, mode config.Mode) (Summary, error)
}

// Renderer fills the note template.
type Renderer interface {
	Render(templatePath string, id arxiv.ID, doc Document, sum Summary) ([]byte, error)
}

// NoteWriter stores the rendered note, replacing or updating an existing
// one according to overwrite.
type NoteWriter interface {
	Write(path string, note []byte, overwrite bool) error
}

// Plan lists the files one run reads and writes.
type Plan struct {
	ID        arxiv.ID
	PDFCache  string // downloaded PDF
	NotesDir  string // <vault>/<subdir>
	NotePath  string // <NotesDir>/<id>.md
	VaultPDF  string // copy target; empty unless CopyPDF
	Extractor string // "grobid" or "fallback"
}

// NewPlan derives the Plan for id from cfg.
func NewPlan(cfg config.Config, id arxiv.ID) Plan {
	notes := cfg.VaultNotesDir()
	p := Plan{
		ID:        id,
		PDFCache:  cfg.CachedPDFPath(id.FileStem()),
		NotesDir:  notes,
		NotePath:  filepath.Join(notes, id.FileStem()+".md"),
		Extractor: "fallback",
	}
	if cfg.Vault.CopyPDF {
		p.VaultPDF = filepath.Join(notes, "pdf", id.FileStem()+".pdf")
	}
	if cfg.Extraction.GrobidURL != nil {
		p.Extractor = "grobid"
	}
	return p
}
