package secrets

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yanizio/mabel/internal/environ"
)

const kvResponse = `{
  "data": {
    "data": {"openai_api_key": "sk-from-vault-1234", "count": 3},
    "metadata": {
      "created_time": "2024-01-02T03:04:05.000000000Z",
      "custom_metadata": null,
      "deletion_time": "",
      "destroyed": false,
      "version": 1
    }
  }
}`

func fakeVault(t *testing.T) (*httptest.Server, *int32) {
	t.Helper()
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		if r.URL.Path != "/v1/secret/data/mabel" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(kvResponse))
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func TestParseRef(t *testing.T) {
	p, k, err := ParseRef("vault:secret/mabel#openai_api_key")
	require.NoError(t, err)
	assert.Equal(t, "secret/mabel", p)
	assert.Equal(t, "openai_api_key", k)

	for _, bad := range []string{
		"secret/mabel#k",
		"vault:secret/mabel",
		"vault:#k",
		"vault:secret#k",
		"vault:secret/mabel#",
	} {
		_, _, err := ParseRef(bad)
		assert.Error(t, err, bad)
	}
}

func TestResolve(t *testing.T) {
	srv, hits := fakeVault(t)
	c, err := New(srv.URL, "test-token", 5*time.Second)
	require.NoError(t, err)

	v, err := c.Resolve("vault:secret/mabel#openai_api_key")
	require.NoError(t, err)
	assert.Equal(t, "sk-from-vault-1234", v)

	// Cached: no second request.
	_, err = c.Resolve("vault:secret/mabel#openai_api_key")
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(hits))
}

func TestResolve_Failures(t *testing.T) {
	srv, _ := fakeVault(t)
	c, err := New(srv.URL, "test-token", 5*time.Second)
	require.NoError(t, err)

	_, err = c.Resolve("vault:secret/mabel#missing")
	assert.ErrorContains(t, err, "not found")

	_, err = c.Resolve("vault:secret/mabel#count")
	assert.ErrorContains(t, err, "not a string")

	_, err = c.Resolve("vault:secret/other#k")
	assert.Error(t, err)

	_, err = c.Resolve("not-a-ref")
	assert.Error(t, err)
}

func TestFromEnv(t *testing.T) {
	c, ok, err := FromEnv(environ.FromMap(nil), time.Second)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, c)

	c, ok, err = FromEnv(environ.FromMap(map[string]string{
		"VAULT_ADDR":  "http://127.0.0.1:8200",
		"VAULT_TOKEN": "t",
	}), time.Second)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NotNil(t, c)
}
