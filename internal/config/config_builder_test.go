package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func validServerConfig() *StructuredConfig {
	cfg := defaults()
	cfg.App.TokenSignKey = "secret"
	cfg.Storage.DB.DSN = "postgres://localhost/viewer"
	return cfg
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_LaterLayersOverride(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Version: "1.0.0"}},
		&StructuredConfig{App: App{TokenIssuer: "issuer"}, Server: Server{HTTPAddress: ":9000"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "issuer", cfg.App.TokenIssuer)
	assert.Equal(t, ":9000", cfg.Server.HTTPAddress)
	// untouched defaults survive
	assert.Equal(t, 168*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, EnvironmentProduction, cfg.App.Environment)
	assert.Equal(t, int64(64<<20), cfg.Storage.Assets.MaxUploadSize)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoPath(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_LastPathWins(t *testing.T) {
	first := writeTempJSONConfig(t, map[string]any{"app": map[string]any{"version": "first"}})
	second := writeTempJSONConfig(t, map[string]any{"app": map[string]any{"version": "second"}})

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: first},
		&StructuredConfig{JSONFilePath: second},
	)

	cfg, err := b.withJSON().build()
	require.NoError(t, err)
	assert.Equal(t, "second", cfg.App.Version)
}

func TestWithJSON_MissingFile(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/definitely/not/here.json"})

	_, err := b.withJSON().build()
	assert.Error(t, err)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_OverridesDefaults(t *testing.T) {
	t.Setenv("APP_TOKEN_ISSUER", "from-env")

	cfg, err := newConfigBuilder().withDefaults().withEnv().build()
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.App.TokenIssuer)
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestStructuredConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{"valid", func(cfg *StructuredConfig) {}, nil},
		{"missing sign key", func(cfg *StructuredConfig) { cfg.App.TokenSignKey = "" }, ErrInvalidAppConfigs},
		{"missing issuer", func(cfg *StructuredConfig) { cfg.App.TokenIssuer = "" }, ErrInvalidAppConfigs},
		{"zero duration", func(cfg *StructuredConfig) { cfg.App.TokenDuration = 0 }, ErrInvalidAppConfigs},
		{"unknown environment", func(cfg *StructuredConfig) { cfg.App.Environment = "staging" }, ErrInvalidAppConfigs},
		{"missing address", func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" }, ErrInvalidServerConfigs},
		{"missing dsn", func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" }, ErrInvalidStorageConfigs},
		{"assets without bucket", func(cfg *StructuredConfig) {
			cfg.Storage.Assets.Endpoint = "localhost:9000"
			cfg.Storage.Assets.Bucket = ""
		}, ErrInvalidStorageConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validServerConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestApp_IsDevelopment(t *testing.T) {
	assert.True(t, App{Environment: EnvironmentDevelopment}.IsDevelopment())
	assert.False(t, App{Environment: EnvironmentProduction}.IsDevelopment())
	assert.False(t, App{}.IsDevelopment())
}

// ── client ────────────────────────────────────────────────────────────────────

func TestClientConfig_FromStructured(t *testing.T) {
	cfg := defaults()
	cfg.App.Version = "2.0.0"

	clientCfg := newClientConfig(cfg)
	require.NoError(t, clientCfg.validate())
	assert.Equal(t, "2.0.0", clientCfg.App.Version)
	assert.Equal(t, "localhost:8080", clientCfg.Adapter.HTTPAddress)
	assert.Equal(t, 10*time.Second, clientCfg.Adapter.RequestTimeout)
	assert.Equal(t, "model-viewer-client.db", clientCfg.Storage.DB.DSN)
}

func TestClientConfig_Validate(t *testing.T) {
	base := newClientConfig(defaults())

	inMemory := *base
	inMemory.Storage.DB.DSN = "file::memory:?cache=shared"
	assert.ErrorIs(t, inMemory.validate(), ErrInvalidStorageConfigs)

	noAddress := *base
	noAddress.Adapter.HTTPAddress = ""
	assert.ErrorIs(t, noAddress.validate(), ErrInvalidAdapterConfigs)

	noTimeout := *base
	noTimeout.Adapter.RequestTimeout = 0
	assert.ErrorIs(t, noTimeout.validate(), ErrInvalidAdapterConfigs)
}
