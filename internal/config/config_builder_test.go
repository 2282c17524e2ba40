package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
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

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_MergesMultipleConfigs verifies that fields from multiple configs
// are merged into a single result, with earlier configs winning.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{TokenSignKey: "first-key"}},
		&StructuredConfig{App: App{TokenSignKey: "second-key", TokenIssuer: "issuer"}},
	)
	b.withDefaults()
	b.configs = append(b.configs, &StructuredConfig{Storage: Storage{DB: DB{DSN: "postgres://localhost/cameras"}}})

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "first-key", cfg.App.TokenSignKey)
	assert.Equal(t, "issuer", cfg.App.TokenIssuer)
	assert.Equal(t, "postgres://localhost/cameras", cfg.Storage.DB.DSN)
}

// TestBuild_EmptyBuilderFailsValidation verifies that building with no
// configs at all fails validation (no DSN, no sign key).
func TestBuild_EmptyBuilderFailsValidation(t *testing.T) {
	_, err := newConfigBuilder().build()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

// ── withDefaults ──────────────────────────────────────────────────────────────

// TestWithDefaults_FillsUnsetFields verifies that defaults apply only where
// no other source provided a value.
func TestWithDefaults_FillsUnsetFields(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		App:     App{TokenSignKey: "secret", AccessTokenTTL: 5 * time.Minute},
		Storage: Storage{DB: DB{DSN: "postgres://localhost/cameras"}},
	})
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)

	// explicitly set values survive
	assert.Equal(t, 5*time.Minute, cfg.App.AccessTokenTTL)
	// unset values come from defaults
	assert.Equal(t, "camera-collector", cfg.App.TokenIssuer)
	assert.Equal(t, 7*24*time.Hour, cfg.App.RefreshTokenTTL)
	assert.Equal(t, bcrypt.DefaultCost, cfg.App.BcryptCost)
	assert.Equal(t, 20, cfg.App.DefaultPageSize)
	assert.Equal(t, 100, cfg.App.MaxPageSize)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_MergesFileValues verifies that a JSON file referenced by an
// earlier source is parsed and merged at lower priority.
func TestWithJSON_MergesFileValues(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{
			"token_sign_key":   "json-secret",
			"access_token_ttl": "10m",
		},
		"storage": map[string]any{
			"db": map[string]any{"dsn": "postgres://json-host/cameras"},
		},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "json-secret", cfg.App.TokenSignKey)
	assert.Equal(t, 10*time.Minute, cfg.App.AccessTokenTTL)
	assert.Equal(t, "postgres://json-host/cameras", cfg.Storage.DB.DSN)
}

// TestWithJSON_MissingFileSetsError verifies that a dangling JSON path is
// surfaced as a build error.
func TestWithJSON_MissingFileSetsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/no/such/file.json"})
	b.withJSON()

	_, err := b.build()
	assert.Error(t, err)
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestValidate(t *testing.T) {
	valid := func() *StructuredConfig {
		return &StructuredConfig{
			App: App{
				TokenSignKey:    "secret",
				TokenIssuer:     "camera-collector",
				AccessTokenTTL:  15 * time.Minute,
				RefreshTokenTTL: 7 * 24 * time.Hour,
				BcryptCost:      bcrypt.DefaultCost,
				DefaultPageSize: 20,
				MaxPageSize:     100,
			},
			Storage: Storage{DB: DB{DSN: "postgres://localhost/cameras"}},
			Server:  Server{HTTPAddress: "localhost:8080", RequestTimeout: 30 * time.Second},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}, wantErr: nil},
		{name: "empty dsn", mutate: func(c *StructuredConfig) { c.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "empty sign key", mutate: func(c *StructuredConfig) { c.App.TokenSignKey = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "refresh ttl not longer than access", mutate: func(c *StructuredConfig) { c.App.RefreshTokenTTL = c.App.AccessTokenTTL }, wantErr: ErrInvalidAppConfigs},
		{name: "bcrypt cost too high", mutate: func(c *StructuredConfig) { c.App.BcryptCost = bcrypt.MaxCost + 1 }, wantErr: ErrInvalidAppConfigs},
		{name: "max page below default", mutate: func(c *StructuredConfig) { c.App.MaxPageSize = 5 }, wantErr: ErrInvalidAppConfigs},
		{name: "empty address", mutate: func(c *StructuredConfig) { c.Server.HTTPAddress = "" }, wantErr: ErrInvalidServerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
