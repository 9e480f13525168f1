package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	require.Equal(t, ":8080", cfg.EndpointAddrHTTP)
	require.NotEmpty(t, cfg.DatabaseDSN)
	require.NotEmpty(t, cfg.SecretKey)
	require.Equal(t, 24*time.Hour, cfg.AccessTokenValidityDuration)
	require.Equal(t, "resumes", cfg.S3Bucket)
}
