package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ATTUNE_DB", "")
	t.Setenv("ATTUNE_ADDR", "")
	t.Setenv("ATTUNE_MODEL_TAG", "")
	t.Setenv("ATTUNE_LOG", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Contains(t, cfg.DBPath, ".attune")
	assert.Equal(t, ":8787", cfg.Addr)
	assert.Empty(t, cfg.ModelTag)
	assert.False(t, cfg.LogJSON)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ATTUNE_DB", "/tmp/custom.db")
	t.Setenv("ATTUNE_ADDR", "127.0.0.1:9000")
	t.Setenv("ATTUNE_MODEL_TAG", "router-canary")
	t.Setenv("ATTUNE_LOG", "json")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/custom.db", cfg.DBPath)
	assert.Equal(t, "127.0.0.1:9000", cfg.Addr)
	assert.Equal(t, "router-canary", cfg.ModelTag)
	assert.True(t, cfg.LogJSON)
}
