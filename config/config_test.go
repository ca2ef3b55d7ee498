package config

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg, err := LoadFile()
	require.NoError(t, err)

	assert.Equal(t, defaultConfig, cfg.Conf())

	t.Run("Roundtrip", func(t *testing.T) {
		var buf bytes.Buffer

		err := cfg.Save(&buf)
		require.NoError(t, err)

		other, err := Load(&buf)
		require.NoError(t, err)

		assert.Equal(t, defaultConfig, other.Conf())
	})
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := Load(strings.NewReader(`
[Providers]
Storage = "sqlite"

[Database]
DSN = "file:test.db"
ConnMaxLifetime = "1m30s"

[Website]
Addr = ":9000"
RateLimit = 5
`))
	require.NoError(t, err)

	conf := cfg.Conf()
	assert.Equal(t, "sqlite", conf.Providers.Storage)
	assert.Equal(t, "file:test.db", conf.Database.DSN)
	assert.Equal(t, time.Minute+time.Second*30, conf.Database.ConnMaxLifetime.Duration())
	assert.Equal(t, ":9000", conf.Website.Addr)
	assert.Equal(t, 5, conf.Website.RateLimit)
	// untouched keys keep their defaults
	assert.Equal(t, defaultConfig.Website.RateLimitWindow, conf.Website.RateLimitWindow)
	assert.Equal(t, defaultConfig.Database.MaxOpenConns, conf.Database.MaxOpenConns)
}

func TestLoadUnknownKey(t *testing.T) {
	_, err := Load(strings.NewReader(`
[Website]
Adress = ":9000"
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Website.Adress")
}

func TestLoadInvalidDuration(t *testing.T) {
	_, err := Load(strings.NewReader(`
[Database]
ConnectTimeout = "forever"
`))
	require.Error(t, err)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	require.Error(t, err)
}

func TestStoreConf(t *testing.T) {
	cfg, err := LoadFile()
	require.NoError(t, err)

	conf := cfg.Conf()
	conf.Website.Addr = ":1234"
	cfg.StoreConf(conf)

	assert.Equal(t, ":1234", cfg.Conf().Website.Addr)
}

func TestConnectionBackoff(t *testing.T) {
	cfg, err := LoadFile()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	b := NewConnectionBackoff(ctx, cfg)

	next := b.NextBackOff()
	assert.Greater(t, next, time.Duration(0))
	assert.LessOrEqual(t, next, ConnectionRetryMaxInterval)

	cancel()
	// a cancelled context stops the backoff
	assert.Equal(t, time.Duration(-1), b.NextBackOff())
}

func BenchmarkConfigAccess(b *testing.B) {
	cfg, err := LoadFile()
	require.NoError(b, err)

	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		_ = cfg.Conf().Website.Addr
	}
}
