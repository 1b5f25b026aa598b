// internal/secrets/vault.go
//
// HashiCorp Vault lookup for secret references.
//
// Context
// -------
//   - An API key may be given as a reference instead of a literal:
//     `vault:<mount>/<path>#<key>`, e.g. `vault:secret/mabel#openai_api_key`.
//   - Client implements config.SecretResolver.  config.Load only checks
//     the reference syntax; config.ResolveSecrets calls Resolve after Load
//     succeeded, so a broken configuration never costs a network round
//     trip.
//   - Values are cached per reference for the life of the process.
//
// Public workflow
// ---------------
//  1. cli, ok, err := secrets.FromEnv(src, 10*time.Second)  // during boot.
//  2. key, err := cli.Resolve("vault:secret/mabel#openai_api_key")
//
// Environment expectations
// ------------------------
// • VAULT_ADDR   – scheme and host of the Vault server.  Unset disables
//   the resolver.
// • VAULT_TOKEN  – token (the SDK falls back to ~/.vault-token).
package secrets

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	vault "github.com/hashicorp/vault/api"

	"github.com/yanizio/mabel/internal/environ"
)

// RefPrefix marks a secret reference.
const RefPrefix = "vault:"

//
// SECTION 1.  Public façade
//

// Client is safe for concurrent use.  Zero value is invalid.
type Client struct {
	api     *vault.Client
	timeout time.Duration

	cacheMu sync.RWMutex
	cache   map[string]string // full ref → value.
}

// New builds a client for addr.  An empty token leaves the SDK default
// (VAULT_TOKEN or ~/.vault-token) in place.
func New(addr, token string, timeout time.Duration) (*Client, error) {
	cfg := vault.DefaultConfig()
	if cfg.Error != nil {
		return nil, fmt.Errorf("vault env cfg: %w", cfg.Error)
	}
	cfg.Address = addr
	cfg.Timeout = timeout

	apiCli, err := vault.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("vault api: %w", err)
	}
	if token != "" {
		apiCli.SetToken(token)
	}

	return &Client{
		api:     apiCli,
		timeout: timeout,
		cache:   make(map[string]string),
	}, nil
}

// FromEnv builds a client from VAULT_ADDR and VAULT_TOKEN in src.  ok is
// false when VAULT_ADDR is unset.
func FromEnv(src environ.Source, timeout time.Duration) (c *Client, ok bool, err error) {
	addr, set := src.Lookup("VAULT_ADDR")
	if !set || addr == "" {
		return nil, false, nil
	}
	token, _ := src.Lookup("VAULT_TOKEN")
	c, err = New(addr, token, timeout)
	if err != nil {
		return nil, false, err
	}
	return c, true, nil
}

// Resolve fetches the value behind ref.
func (c *Client) Resolve(ref string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()
	return c.GetKV(ctx, ref)
}

// GetKV reads one key from a KV-v2 secret named by ref.
func (c *Client) GetKV(ctx context.Context, ref string) (string, error) {
	c.cacheMu.RLock()
	if v, ok := c.cache[ref]; ok {
		c.cacheMu.RUnlock()
		return v, nil
	}
	c.cacheMu.RUnlock()

	secretPath, key, err := ParseRef(ref)
	if err != nil {
		return "", err
	}

	mount, rel := splitMount(secretPath)
	sec, err := c.api.KVv2(mount).Get(ctx, rel)
	if err != nil {
		return "", fmt.Errorf("vault get %s: %w", secretPath, err)
	}

	raw, ok := sec.Data[key]
	if !ok {
		return "", fmt.Errorf("key %q not found in secret %q", key, secretPath)
	}
	sval, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("value at %s#%s is not a string", secretPath, key)
	}

	c.cacheMu.Lock()
	c.cache[ref] = sval
	c.cacheMu.Unlock()

	return sval, nil
}

//
// SECTION 2.  Helpers
//

// ParseRef splits "vault:<mount>/<path>#<key>" into the secret path and
// key.
func ParseRef(ref string) (secretPath, key string, err error) {
	body, ok := strings.CutPrefix(ref, RefPrefix)
	if !ok {
		return "", "", fmt.Errorf("secret reference %q lacks %q prefix", ref, RefPrefix)
	}
	secretPath, key, ok = strings.Cut(body, "#")
	if !ok || secretPath == "" || key == "" {
		return "", "", fmt.Errorf("secret reference %q must look like vault:<mount>/<path>#<key>", ref)
	}
	if mount, rel := splitMount(secretPath); mount == "" || rel == "" {
		return "", "", fmt.Errorf("secret reference %q has no path below the mount", ref)
	}
	return secretPath, key, nil
}

func splitMount(p string) (mount, rel string) {
	if p == "" {
		return "", ""
	}
	parts := strings.SplitN(p, "/", 2)
	mount = parts[0]
	if len(parts) == 2 {
		rel = parts[1]
	}
	return
}
