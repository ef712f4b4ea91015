package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	// Shield from ambient environment; empty values fall back to defaults.
	for _, key := range []string{
		"PORT", "OLLAMA_BASE_URL", "DEFAULT_MODEL", "DEFAULT_TEMPERATURE",
		"OLLAMA_TIMEOUT_SECONDS", "NEO4J_URI", "NEO4J_DATABASE", "APP_ENV",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, "http://localhost:11434", cfg.Ollama.BaseURL)
	assert.Equal(t, "llama3.2:latest", cfg.Ollama.DefaultModel)
	assert.Equal(t, 0.7, cfg.Ollama.DefaultTemperature)
	assert.Equal(t, 60*time.Second, cfg.Ollama.Timeout)
	assert.Equal(t, "bolt://localhost:7687", cfg.Neo4j.URI)
	assert.Equal(t, "neo4j", cfg.Neo4j.Database)
	assert.Equal(t, "development", cfg.App.Environment)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9100")
	t.Setenv("OLLAMA_BASE_URL", "http://ollama.internal:11434/")
	t.Setenv("DEFAULT_MODEL", "mistral:7b")
	t.Setenv("DEFAULT_TEMPERATURE", "0.2")
	t.Setenv("OLLAMA_TIMEOUT_SECONDS", "30")
	t.Setenv("NEO4J_URI", "bolt://graph:7687")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9100", cfg.Server.Port)
	assert.Equal(t, "http://ollama.internal:11434", cfg.Ollama.BaseURL, "trailing slash should be trimmed")
	assert.Equal(t, "mistral:7b", cfg.Ollama.DefaultModel)
	assert.Equal(t, 0.2, cfg.Ollama.DefaultTemperature)
	assert.Equal(t, 30*time.Second, cfg.Ollama.Timeout)
	assert.Equal(t, "bolt://graph:7687", cfg.Neo4j.URI)
}

func TestLoadInvalidNumbersFallBack(t *testing.T) {
	t.Setenv("DEFAULT_TEMPERATURE", "warm")
	t.Setenv("OLLAMA_TIMEOUT_SECONDS", "soon")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 0.7, cfg.Ollama.DefaultTemperature)
	assert.Equal(t, 60*time.Second, cfg.Ollama.Timeout)
}

func TestValidateNeo4j(t *testing.T) {
	cfg := &Config{}
	assert.Error(t, cfg.ValidateNeo4j())

	cfg.Neo4j.User = "neo4j"
	assert.Error(t, cfg.ValidateNeo4j())

	cfg.Neo4j.Password = "secret"
	assert.NoError(t, cfg.ValidateNeo4j())
}
