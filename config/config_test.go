package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s3gate/s3gate/config"
)

func TestLoad_Defaults(t *testing.T) {
	// Load with no config files should use defaults
	cfg, err := config.Load(nil, nil)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Empty(t, cfg.Server.URLPrefix)
	assert.Zero(t, cfg.Server.Workers)
	assert.Equal(t, "s3.amazonaws.com", cfg.Store.Endpoint)
	assert.Equal(t, "us-east-1", cfg.Store.Region)
	assert.Empty(t, cfg.Store.Bucket)
	assert.True(t, cfg.Store.UseSSL)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_ConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "s3gate.yaml")

	configContent := `
server:
  host: 127.0.0.1
  port: 9090
  url_prefix: files
  workers: 16
store:
  endpoint: minio.internal:9000
  region: eu-west-1
  bucket: assets
  access_key: AKIAEXAMPLE
  secret_key: secret
  use_ssl: false
metrics:
  enabled: true
log:
  level: debug
`
	err := os.WriteFile(configPath, []byte(configContent), 0o644)
	require.NoError(t, err)

	cfg, err := config.Load([]string{configPath}, nil)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "files", cfg.Server.URLPrefix)
	assert.Equal(t, int64(16), cfg.Server.Workers)
	assert.Equal(t, "minio.internal:9000", cfg.Store.Endpoint)
	assert.Equal(t, "eu-west-1", cfg.Store.Region)
	assert.Equal(t, "assets", cfg.Store.Bucket)
	assert.False(t, cfg.Store.UseSSL)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("S3GATE_SERVER_PORT", "7070")
	t.Setenv("S3GATE_STORE_BUCKET", "env-bucket")

	cfg, err := config.Load(nil, nil)
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "env-bucket", cfg.Store.Bucket)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "port out of range",
			content: `
server:
  port: 70000
`,
		},
		{
			name: "bad log level",
			content: `
log:
  level: loud
`,
		},
		{
			name: "multi-segment url prefix",
			content: `
server:
  url_prefix: a/b
`,
		},
		{
			name: "metrics path without slash",
			content: `
metrics:
  path: metrics
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			configPath := filepath.Join(tmpDir, "s3gate.yaml")
			require.NoError(t, os.WriteFile(configPath, []byte(tt.content), 0o644))

			_, err := config.Load([]string{configPath}, nil)
			assert.Error(t, err)
		})
	}
}

func TestFromContext_Missing(t *testing.T) {
	_, err := config.FromContext(t.Context())
	assert.Error(t, err)
}
