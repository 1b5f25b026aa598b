package pipeline

import (
	"net/url"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yanizio/mabel/internal/arxiv"
	"github.com/yanizio/mabel/internal/config"
)

func TestNewPlan(t *testing.T) {
	cfg := config.Config{
		Vault: config.Vault{Path: "/vault", Subdir: "Papers"},
		Cache: config.Cache{Dir: "/cache"},
	}

	p := NewPlan(cfg, arxiv.ID("hep-th/9901001"))

	assert.Equal(t, filepath.Join("/cache", "papers", "hep-th_9901001.pdf"), p.PDFCache)
	assert.Equal(t, filepath.Join("/vault", "Papers"), p.NotesDir)
	assert.Equal(t, filepath.Join("/vault", "Papers", "hep-th_9901001.md"), p.NotePath)
	assert.Empty(t, p.VaultPDF)
	assert.Equal(t, "fallback", p.Extractor)
}

func TestNewPlan_CopyAndGrobid(t *testing.T) {
	u, _ := url.Parse("http://localhost:8070")
	cfg := config.Config{
		Vault:      config.Vault{Path: "/vault", Subdir: "Papers", CopyPDF: true},
		Cache:      config.Cache{Dir: "/cache"},
		Extraction: config.Extraction{GrobidURL: u},
	}

	p := NewPlan(cfg, arxiv.ID("2401.01234"))

	assert.Equal(t, filepath.Join("/vault", "Papers", "pdf", "2401.01234.pdf"), p.VaultPDF)
	assert.Equal(t, "grobid", p.Extractor)
}
