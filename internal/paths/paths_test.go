package paths

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedHome(dir string) func() (string, error) {
	return func() (string, error) { return dir, nil }
}

func TestExpand(t *testing.T) {
	r := Resolver{Home: fixedHome("/home/ada")}

	cases := map[string]string{
		"~":                "/home/ada",
		"~/Vault":          "/home/ada/Vault",
		"~/a/b/../c":       "/home/ada/a/c",
		"/abs/path":        "/abs/path",
		"relative/dir":     "relative/dir",
		"~other/Vault":     "~other/Vault",
		"dir/~/not-a-home": "dir/~/not-a-home",
		"":                 "",
	}
	for in, want := range cases {
		assert.Equal(t, want, r.Expand(in), "Expand(%q)", in)
	}
}

func TestExpand_IdentityWithoutMarker(t *testing.T) {
	r := Resolver{Home: fixedHome("/home/ada")}
	for _, p := range []string{"/srv/notes", "notes", "./x", "a~b"} {
		assert.Equal(t, p, r.Expand(p))
	}
}

func TestExpand_HomeUnknownFallsBackToDot(t *testing.T) {
	r := Resolver{Home: func() (string, error) { return "", errors.New("no home") }}

	assert.Equal(t, ".", r.Expand("~"))
	assert.Equal(t, "Vault", r.Expand("~/Vault"))
	assert.Equal(t, ".", r.HomeDir())
}

func TestResolve_AbsoluteAndIdempotent(t *testing.T) {
	r := Resolver{Home: fixedHome("/home/ada")}
	wd, err := os.Getwd()
	require.NoError(t, err)

	for _, in := range []string{"~/Vault", "templates/paper_note.md.tera", "/tmp/x/../y", "."} {
		first := r.Resolve(in)
		assert.True(t, filepath.IsAbs(first), "Resolve(%q) = %q", in, first)
		assert.Equal(t, first, r.Resolve(in), "second call differs for %q", in)
		assert.Equal(t, first, r.Resolve(first), "resolving a resolved path changes it")
	}

	assert.Equal(t, filepath.Join(wd, "templates", "paper_note.md.tera"),
		r.Resolve("templates/paper_note.md.tera"))
}

func TestZeroResolver(t *testing.T) {
	var r Resolver
	assert.NotEmpty(t, r.HomeDir())
	assert.True(t, filepath.IsAbs(r.Resolve("~/x")))
}
