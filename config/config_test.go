package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
env:
  env: test
  serviceName: spotshare
  log:
    level: debug
firebase:
  projectId: demo-project
  apiKey: from-file
listings:
  maxImages: 3
location:
  timeout: 4s
`

func TestLoadWithEnv_OverlaysEnvironment(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sample.yaml"), []byte(sampleYAML), 0o600))

	t.Chdir(dir)
	t.Setenv("FIREBASE_APIKEY", "from-env")

	cfg, err := LoadWithEnv[Config]("sample")
	require.NoError(t, err)

	assert.Equal(t, "spotshare", cfg.Env.ServiceName)
	assert.Equal(t, "demo-project", cfg.Firebase.ProjectID)
	assert.Equal(t, "from-env", cfg.Firebase.APIKey)
	assert.Equal(t, 3, cfg.Listings.MaxImages)
	assert.Equal(t, 4*time.Second, cfg.Location.Timeout)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("absent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "absent.yaml")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	assert.Equal(t, DefaultMaxImages, cfg.Listings.MaxImages)
	assert.Equal(t, DefaultLocationTimeout, cfg.Location.Timeout)
	assert.Equal(t, "balanced", cfg.Location.Accuracy)
	assert.Equal(t, DefaultGeocoderTimeout, cfg.Location.Geocoder.Timeout)
	assert.InDelta(t, 1.0, cfg.Location.Geocoder.RequestsPerSecond, 0)
	assert.Equal(t, DefaultGeocoderCacheTTL, cfg.Location.Geocoder.CacheTTL)
	assert.InDelta(t, DefaultPriceCeiling, cfg.Search.PriceCeiling, 0)
	assert.InDelta(t, DefaultDistanceCeilingKm, cfg.Search.DistanceCeilingKm, 0)
	assert.Equal(t, "distance", cfg.Search.SortBy)
	assert.Equal(t, 256, cfg.QRCode.Size)
}
