package vault

import (
	"context"
	"fmt"
	"log"

	"github.com/cleitonmarx/symbiont/config"
	vaultapi "github.com/hashicorp/vault/api"
)

// ConfigProvider is a config.Provider backed by a single Vault KV v2 secret.
// The secret is read once and its keys are served from memory.
type ConfigProvider struct {
	values map[string]string
}

// NewConfigProvider reads the secret at mount/path and returns a provider over its keys.
func NewConfigProvider(ctx context.Context, client *vaultapi.Client, mount, path string) (*ConfigProvider, error) {
	secret, err := client.KVv2(mount).Get(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("vault: reading %s/%s: %w", mount, path, err)
	}

	values := make(map[string]string, len(secret.Data))
	for k, v := range secret.Data {
		values[k] = fmt.Sprint(v)
	}
	return &ConfigProvider{values: values}, nil
}

// Get implements config.Provider.
func (p *ConfigProvider) Get(_ context.Context, name string) (string, error) {
	value, ok := p.values[name]
	if !ok {
		return "", fmt.Errorf("vault: key %q not found", name)
	}
	return value, nil
}

// InitVaultProvider layers Vault secrets behind environment variables.
// Nothing happens when VAULT_ADDR is unset.
type InitVaultProvider struct {
	Logger *log.Logger `resolve:""`
	Mount  string      `config:"VAULT_MOUNT_PATH" default:"secret"`
	Path   string      `config:"VAULT_SECRET_PATH" default:"relaytodo"`
}

// Initialize reads the secret and installs the composite provider as the global one.
func (i InitVaultProvider) Initialize(ctx context.Context) (context.Context, error) {
	addr := config.GetWithDefault(ctx, "VAULT_ADDR", "")
	if addr == "" {
		i.Logger.Println("InitVaultProvider: VAULT_ADDR not set, using environment only")
		return ctx, nil
	}

	token, err := config.Get[string](ctx, "VAULT_TOKEN")
	if err != nil {
		return ctx, err
	}

	cfg := vaultapi.DefaultConfig()
	cfg.Address = addr
	client, err := vaultapi.NewClient(cfg)
	if err != nil {
		return ctx, fmt.Errorf("vault: creating client: %w", err)
	}
	client.SetToken(token)

	provider, err := NewConfigProvider(ctx, client, i.Mount, i.Path)
	if err != nil {
		return ctx, err
	}

	config.SetGlobalProvider(config.NewCompositeProvider(
		config.NewEnvVarProvider(),
		provider,
	))
	i.Logger.Printf("InitVaultProvider: loaded %d keys from %s/%s", len(provider.values), i.Mount, i.Path)
	return ctx, nil
}
