package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	cfg := NewConfig()
	require.Equal(t, time.Minute, cfg.Timeout)
	require.False(t, cfg.Verbose)
}

func TestNewConfigFromEnv(t *testing.T) {
	t.Setenv("JFLUX_TIMEOUT", "30s")
	t.Setenv("JFLUX_VERBOSE", "true")

	cfg, err := NewConfigFromEnv()
	require.NoError(t, err)
	require.Equal(t, 30*time.Second, cfg.Timeout)
	require.True(t, cfg.Verbose)
}

func TestNewConfigFromEnv_Defaults(t *testing.T) {
	cfg, err := NewConfigFromEnv()
	require.NoError(t, err)
	require.Equal(t, NewConfig(), cfg)
}
