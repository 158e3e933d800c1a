package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tkanos/gonfig"
)

func TestConfigurationFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"port": 9090, "hiscoresTimeoutMs": 2500}`), 0o600))

	conf := defaultConfiguration()
	require.NoError(t, gonfig.GetConf(path, &conf))

	assert.Equal(t, 9090, conf.Port)
	assert.Equal(t, 2500, conf.HiscoresTimeout)
	assert.Equal(t, 8081, conf.MetricsPort)
	assert.Equal(t, "https://secure.runescape.com", conf.HiscoresBaseUrl)
}
