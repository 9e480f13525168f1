package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseFlags_Overrides(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"server", "-a", ":7070", "-d", "postgres://x", "-t", "30"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	require.Equal(t, ":7070", cfg.EndpointAddrHTTP)
	require.Equal(t, "postgres://x", cfg.DatabaseDSN)
	require.Equal(t, 30*time.Minute, cfg.AccessTokenValidityDuration)
}

func TestParseFlags_IgnoresUnknown(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"server", "-zz", "junk", "-s", "key"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	require.Equal(t, "key", cfg.SecretKey)
}
