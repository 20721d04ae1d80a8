package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "agent.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadAgentConfig(t *testing.T) {
	path := writeConfig(t, `
baseUrl: https://fieldops.ambeservice.in
token: test-token
buffer:
  driver: json
  path: /tmp/buffer.json
site:
  id: site-mumbai-01
  name: Andheri Depot
  latitude: 19.0760
  longitude: 72.8777
  geofenceRadius: 200
supervisor:
  id: sup-1
  name: Asha Patil
deviceId: device-7
geofenceGate: true
syncIntervalSeconds: 120
`)

	cfg, err := loadAgentConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "https://fieldops.ambeservice.in", cfg.BaseURL)
	assert.True(t, cfg.GeofenceGate)
	assert.Equal(t, 120, cfg.SyncIntervalSeconds)

	site := cfg.site()
	assert.Equal(t, "site-mumbai-01", site.ID)
	assert.Equal(t, 200.0, site.GeofenceRadius)
}

func TestLoadAgentConfigDefaults(t *testing.T) {
	path := writeConfig(t, `
baseUrl: https://fieldops.ambeservice.in
site:
  id: site-mumbai-01
`)

	cfg, err := loadAgentConfig(path)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(filepath.Dir(path), "buffer.json"), cfg.Buffer.Path)
	assert.Equal(t, 300, cfg.SyncIntervalSeconds)
	assert.False(t, cfg.GeofenceGate)
}

func TestLoadAgentConfigRejects(t *testing.T) {
	_, err := loadAgentConfig(writeConfig(t, `site: {id: s1}`))
	assert.ErrorContains(t, err, "baseUrl")

	_, err = loadAgentConfig(writeConfig(t, `baseUrl: http://localhost`))
	assert.ErrorContains(t, err, "site.id")

	_, err = loadAgentConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestOpenStoreRejectsUnknownDriver(t *testing.T) {
	path := writeConfig(t, `
baseUrl: http://localhost
site:
  id: s1
buffer:
  driver: leveldb
  path: /tmp/x
`)

	cfg, err := loadAgentConfig(path)
	require.NoError(t, err)

	_, err = cfg.openStore()
	assert.ErrorContains(t, err, "unknown buffer driver")
}
