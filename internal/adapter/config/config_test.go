package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewConfigFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		for _, key := range []string{"DATABASE_URI", "RUN_ADDRESS", "LOG_LEVEL", "APP_MODE"} {
			t.Setenv(key, "")
			os.Unsetenv(key)
		}

		conf, err := NewConfigFromEnv()
		assert.NoError(t, err)
		assert.Equal(t, defaultHost, conf.HTTP.HostString)
		assert.Equal(t, defaultLogLevel, conf.App.LogLevel)
		assert.Equal(t, AppModeDevelop, conf.App.Mode)
	})

	t.Run("env overrides", func(t *testing.T) {
		t.Setenv("DATABASE_URI", "postgres://checkout@db/checkout")
		t.Setenv("RUN_ADDRESS", ":9090")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("APP_MODE", AppModeProduction)

		conf, err := NewConfigFromEnv()
		assert.NoError(t, err)
		assert.Equal(t, "postgres://checkout@db/checkout", conf.Database.DSN)
		assert.Equal(t, ":9090", conf.HTTP.HostString)
		assert.Equal(t, "debug", conf.App.LogLevel)
		assert.Equal(t, AppModeProduction, conf.App.Mode)
	})
}
