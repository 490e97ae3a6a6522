package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/require"
)

func TestDurationUnmarshalYAML(t *testing.T) {
	cases := map[string]time.Duration{
		`value: 5m`:    5 * time.Minute,
		`value: "90s"`: 90 * time.Second,
		`value: 30`:    30 * time.Second,
		`value: 1.5`:   1500 * time.Millisecond,
	}

	for doc, want := range cases {
		var got struct {
			Value Duration `yaml:"value"`
		}

		require.NoError(t, yaml.Unmarshal([]byte(doc), &got), doc)
		require.Equal(t, want, got.Value.Std(), doc)
	}

	var bad struct {
		Value Duration `yaml:"value"`
	}
	require.Error(t, yaml.Unmarshal([]byte(`value: soon`), &bad))
}

func TestReadSampleConfig(t *testing.T) {
	var cfg Config
	require.NoError(t, readFile(&cfg, filepath.Join("..", "..", "config", "config.yaml")))

	require.Equal(t, ":3000", cfg.Server.Listen)
	require.Equal(t, "temp", cfg.Scratch.Dir)
	require.Equal(t, 5*time.Minute, cfg.Application.UpstreamTimeout.Std())
	require.Equal(t, time.Hour, cfg.Scratch.OrphanTTL.Std())
	require.Equal(t, "https://tikwm.com/api/", cfg.TikTok.APIURL)
	require.Equal(t, int64(50<<20), cfg.Telegram.MaxUploadSize)
	require.Empty(t, cfg.Redis.Address)
	require.NoError(t, cfg.Validate())
}

func TestReadFileErrors(t *testing.T) {
	var cfg Config
	require.Error(t, readFile(&cfg, filepath.Join(t.TempDir(), "missing.yaml")))

	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("Server: ["), 0o600))
	require.Error(t, readFile(&cfg, path))
}

func TestValidate(t *testing.T) {
	valid := Config{Application: Application{UpstreamTimeout: Duration(time.Minute)}}
	require.NoError(t, valid.Validate())

	cfg := valid
	cfg.Application.LogFormat = "xml"
	require.Error(t, cfg.Validate())

	cfg = valid
	cfg.Application.UpstreamTimeout = 0
	require.Error(t, cfg.Validate())

	cfg = valid
	cfg.Scratch.SweepInterval = Duration(time.Minute)
	require.Error(t, cfg.Validate())

	cfg.Scratch.OrphanTTL = Duration(time.Hour)
	require.NoError(t, cfg.Validate())
}
