package config

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/cleitonmarx/symbiont/config"
	"github.com/hashicorp/vault/api"
)

// VaultProvider reads configuration keys from one KV v2 secret. The secret is fetched once
// and reused for cacheTTL, so resolving many keys at startup costs a single round trip.
type VaultProvider struct {
	client     *api.Client
	mountPath  string
	secretPath string
	cacheTTL   time.Duration
	now        func() time.Time

	mu        sync.Mutex
	cached    map[string]any
	fetchedAt time.Time
}

// NewVaultProvider connects to the Vault server at addr. mountPath is the KV v2 mount
// (e.g. "secret") and secretPath the secret holding the gateway settings.
func NewVaultProvider(addr, token, mountPath, secretPath string, cacheTTL time.Duration) (*VaultProvider, error) {
	var missing []error
	for name, value := range map[string]string{
		"address":     addr,
		"token":       token,
		"mount path":  mountPath,
		"secret path": secretPath,
	} {
		if value == "" {
			missing = append(missing, fmt.Errorf("vault %s is required", name))
		}
	}
	if err := errors.Join(missing...); err != nil {
		return nil, err
	}

	cfg := api.DefaultConfig()
	cfg.Address = addr
	client, err := api.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create vault client: %w", err)
	}
	client.SetToken(token)

	return &VaultProvider{
		client:     client,
		mountPath:  mountPath,
		secretPath: secretPath,
		cacheTTL:   cacheTTL,
		now:        time.Now,
	}, nil
}

// Get returns the value stored under key. Numbers and booleans are rendered as text.
func (vp *VaultProvider) Get(ctx context.Context, key string) (string, error) {
	data, err := vp.secret(ctx)
	if err != nil {
		return "", err
	}
	value, ok := data[key]
	if !ok {
		return "", fmt.Errorf("vault secret %s has no key %s", vp.secretPath, key)
	}
	switch v := value.(type) {
	case string:
		return v, nil
	case nil:
		return "", fmt.Errorf("vault secret %s has an empty key %s", vp.secretPath, key)
	default:
		return fmt.Sprint(v), nil
	}
}

func (vp *VaultProvider) secret(ctx context.Context) (map[string]any, error) {
	vp.mu.Lock()
	defer vp.mu.Unlock()

	if vp.cached != nil && vp.now().Sub(vp.fetchedAt) < vp.cacheTTL {
		return vp.cached, nil
	}

	secret, err := vp.client.KVv2(vp.mountPath).Get(ctx, vp.secretPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read vault secret %s: %w", vp.secretPath, err)
	}
	if secret == nil || secret.Data == nil {
		return nil, fmt.Errorf("vault secret %s not found", vp.secretPath)
	}

	vp.cached = secret.Data
	vp.fetchedAt = vp.now()
	return vp.cached, nil
}

var _ config.Provider = (*VaultProvider)(nil)

// InitVaultProvider layers Vault under the environment as a configuration source.
// With VAULT_ADDR left at "-" only environment variables are used.
type InitVaultProvider struct {
	Addr       string        `config:"VAULT_ADDR" default:"-"`
	Token      string        `config:"VAULT_TOKEN" default:"-"`
	MountPath  string        `config:"VAULT_MOUNT_PATH" default:"secret"`
	SecretPath string        `config:"VAULT_SECRET_PATH" default:"agentgateway"`
	CacheTTL   time.Duration `config:"VAULT_CACHE_TTL" default:"30s"`
}

func (ivp InitVaultProvider) Initialize(ctx context.Context) (context.Context, error) {
	if ivp.Addr == "-" {
		return ctx, nil
	}

	vaultProvider, err := NewVaultProvider(ivp.Addr, ivp.Token, ivp.MountPath, ivp.SecretPath, ivp.CacheTTL)
	if err != nil {
		return ctx, fmt.Errorf("failed to initialize Vault provider: %w", err)
	}

	config.SetGlobalProvider(config.NewCompositeProvider(
		config.EnvVarProvider{},
		vaultProvider,
	))
	return ctx, nil
}
