package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseJson_Overlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.json")
	payload := `{
		"endpoint_addr_http": ":9090",
		"secret_key": "from-json",
		"access_token_validity_duration": "15m"
	}`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o600))

	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"server", "-c", path}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	require.Equal(t, ":9090", cfg.EndpointAddrHTTP)
	require.Equal(t, "from-json", cfg.SecretKey)
	require.Equal(t, 15*time.Minute, cfg.AccessTokenValidityDuration)
	// untouched fields keep their defaults
	require.Equal(t, "resumes", cfg.S3Bucket)
}

func TestParseJson_NoFlag(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"server"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	require.Equal(t, ":8080", cfg.EndpointAddrHTTP)
}
