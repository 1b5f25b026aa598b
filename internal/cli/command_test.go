package cli

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, argv ...string) Args {
	t.Helper()
	var got Args
	cmd := NewCommand("test", func(_ *cobra.Command, a Args) error {
		got = a
		return nil
	})
	cmd.SetArgs(argv)
	require.NoError(t, cmd.Execute())
	return got
}

func TestUnsetFlagsStayNil(t *testing.T) {
	a := parse(t, "2401.01234")

	assert.Equal(t, "2401.01234", a.Input)
	assert.Nil(t, a.VaultPath)
	assert.Nil(t, a.VaultSubdir)
	assert.Nil(t, a.CacheDir)
	assert.Nil(t, a.OllamaHost)
	assert.Nil(t, a.Model)
	assert.Nil(t, a.OpenAIKey)
	assert.Nil(t, a.GrobidURL)
	assert.Nil(t, a.Template)
	assert.Nil(t, a.Mode)
	assert.Nil(t, a.ConfigFile)
	assert.False(t, a.Ollama)
	assert.False(t, a.CopyPDF)
	assert.False(t, a.Overwrite)
}

func TestSetFlagsArePopulated(t *testing.T) {
	a := parse(t,
		"--vault", "~/Vault",
		"--subdir", "",
		"--ollama",
		"--model", "qwen2.5",
		"--mode", "study",
		"--copy-pdf",
		"-v",
		"https://arxiv.org/abs/2401.01234",
	)

	require.NotNil(t, a.VaultPath)
	assert.Equal(t, "~/Vault", *a.VaultPath)
	require.NotNil(t, a.VaultSubdir, "explicit empty value still counts as set")
	assert.Equal(t, "", *a.VaultSubdir)
	assert.True(t, a.Ollama)
	assert.Equal(t, "qwen2.5", *a.Model)
	assert.Equal(t, "study", *a.Mode)
	assert.True(t, a.CopyPDF)
	assert.True(t, a.Verbose)
	assert.Equal(t, "https://arxiv.org/abs/2401.01234", a.Input)
}

func TestRequiresInput(t *testing.T) {
	cmd := NewCommand("test", func(*cobra.Command, Args) error { return nil })
	cmd.SetArgs(nil)
	assert.Error(t, cmd.Execute())
}
