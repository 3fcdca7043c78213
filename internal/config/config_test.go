package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/zugferd/internal/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "zugferd.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("loads default values when nothing is set", func(t *testing.T) {
		cfg, err := config.Load("")
		require.NoError(t, err)

		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "console", cfg.Log.Format)
		assert.Equal(t, "stderr", cfg.Log.Output)
		assert.Equal(t, 2, cfg.Output.Indent)
		assert.Equal(t, ":8080", cfg.Server.Address)
		assert.Equal(t, int64(10<<20), cfg.Server.MaxBodySize)
		assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
		assert.False(t, cfg.Server.Debug)
	})

	t.Run("loads values from file", func(t *testing.T) {
		path := writeConfig(t, `
[log]
level = "debug"
format = "json"

[output]
indent = 4

[server]
address = "127.0.0.1:9090"
max_body_size = 1024
write_timeout = "5s"
`)

		cfg, err := config.Load(path)
		require.NoError(t, err)

		assert.Equal(t, "debug", cfg.Log.Level)
		assert.Equal(t, "json", cfg.Log.Format)
		assert.Equal(t, 4, cfg.Output.Indent)
		assert.Equal(t, "127.0.0.1:9090", cfg.Server.Address)
		assert.Equal(t, int64(1024), cfg.Server.MaxBodySize)
		assert.Equal(t, 5*time.Second, cfg.Server.WriteTimeout)
		assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	})

	t.Run("environment overrides file", func(t *testing.T) {
		path := writeConfig(t, "[output]\nindent = 4\n")
		t.Setenv("ZUGFERD_OUTPUT_INDENT", "-1")
		t.Setenv("ZUGFERD_LOG_LEVEL", "WARN")
		t.Setenv("ZUGFERD_SERVER_DEBUG", "true")

		cfg, err := config.Load(path)
		require.NoError(t, err)

		assert.Equal(t, -1, cfg.Output.Indent)
		assert.Equal(t, "warn", cfg.Log.Level)
		assert.True(t, cfg.Server.Debug)
	})

	t.Run("explicit file must exist", func(t *testing.T) {
		_, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "error reading config file")
	})

	t.Run("rejects invalid values", func(t *testing.T) {
		tests := []struct {
			name  string
			env   string
			value string
			field string
		}{
			{"level", "ZUGFERD_LOG_LEVEL", "verbose", "Config.Log.Level"},
			{"format", "ZUGFERD_LOG_FORMAT", "xml", "Config.Log.Format"},
			{"indent", "ZUGFERD_OUTPUT_INDENT", "12", "Config.Output.Indent"},
			{"body size", "ZUGFERD_SERVER_MAX_BODY_SIZE", "0", "Config.Server.MaxBodySize"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				t.Setenv(tt.env, tt.value)

				_, err := config.Load("")
				require.Error(t, err)
				assert.Contains(t, err.Error(), "invalid configuration")
				assert.Contains(t, err.Error(), tt.field)
			})
		}
	})
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 2, cfg.Output.Indent)

	lc := cfg.Log.Logger()
	assert.Equal(t, cfg.Log.Level, lc.Level)
	assert.Equal(t, cfg.Log.Output, lc.Output)
}

func TestValidate_EmptyAddress(t *testing.T) {
	cfg := config.Default()
	cfg.Server.Address = ""

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Config.Server.Address")
}
