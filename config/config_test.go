package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetMemoizesLoad(t *testing.T) {
	globalConfig = nil

	cfg := Get()
	require.NotNil(t, cfg)
	require.Equal(t, "ethereum", cfg.DefaultChain)
	require.Same(t, cfg, Get())

	override := &Config{DefaultChain: "bsc", PollPolicy: "mobile"}
	Set(override)
	require.Same(t, override, Get())
}
