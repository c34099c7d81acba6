package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Server:  ServerConfig{Port: "3000", Env: "development"},
		Model:   ModelConfig{ArtifactPath: "./artifacts/resume_model.json", SuitabilityThreshold: 0.5},
		Storage: StorageConfig{MaxFileSize: 1 << 20},
		Worker:  WorkerConfig{Concurrency: 2},
	}
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENV", "DB_ENABLED", "ARTIFACT_PATH", "SUITABILITY_THRESHOLD", "MAX_FILE_SIZE", "WORKER_CONCURRENCY"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, "3000", cfg.Server.Port)
	assert.False(t, cfg.Database.Enabled)
	assert.Equal(t, "./artifacts/resume_model.json", cfg.Model.ArtifactPath)
	assert.Equal(t, 0.5, cfg.Model.SuitabilityThreshold)
	assert.Equal(t, int64(10485760), cfg.Storage.MaxFileSize)
	assert.Equal(t, 3, cfg.Worker.Concurrency)
	require.NoError(t, cfg.Validate())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("SUITABILITY_THRESHOLD", "0.65")
	t.Setenv("WORKER_CONCURRENCY", "8")
	t.Setenv("LOG_JSON", "true")
	t.Setenv("MAX_FILE_SIZE", "not-a-number")

	cfg := Load()
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 0.65, cfg.Model.SuitabilityThreshold)
	assert.Equal(t, 8, cfg.Worker.Concurrency)
	assert.True(t, cfg.Log.JSON)
	assert.Equal(t, int64(10485760), cfg.Storage.MaxFileSize)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"port not numeric", func(c *Config) { c.Server.Port = "http" }},
		{"unknown env", func(c *Config) { c.Server.Env = "staging" }},
		{"threshold above one", func(c *Config) { c.Model.SuitabilityThreshold = 1.5 }},
		{"negative threshold", func(c *Config) { c.Model.SuitabilityThreshold = -0.1 }},
		{"no artifact", func(c *Config) { c.Model.ArtifactPath = "" }},
		{"zero file size", func(c *Config) { c.Storage.MaxFileSize = 0 }},
		{"zero workers", func(c *Config) { c.Worker.Concurrency = 0 }},
		{"database without host", func(c *Config) { c.Database = DatabaseConfig{Enabled: true, Port: "5432", DBName: "x"} }},
	}

	require.NoError(t, validConfig().Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestConfig_GetDatabaseDSN(t *testing.T) {
	cfg := validConfig()
	cfg.Database = DatabaseConfig{Host: "db", Port: "5432", User: "u", Password: "p", DBName: "screener"}

	assert.Equal(t, "host=db port=5432 user=u password=p dbname=screener sslmode=disable", cfg.GetDatabaseDSN())
}
