package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, 16, cfg.Generator.Length)
	assert.Equal(t, 1, cfg.Generator.Count)
	assert.True(t, cfg.Generator.Uppercase)
	assert.True(t, cfg.Generator.Lowercase)
	assert.True(t, cfg.Generator.Numbers)
	assert.True(t, cfg.Generator.Symbols)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.True(t, cfg.Log.Console.Enabled)
	assert.False(t, cfg.Log.File.Enabled)
	assert.Equal(t, "passforge.log", cfg.Log.File.Name)
}

func TestLoadOnlyKnownKeys(t *testing.T) {
	v := viper.New()
	_, err := Load(v, "")
	require.NoError(t, err)

	for _, key := range v.AllKeys() {
		assert.Contains(t, []string{"generator", "log"}, strings.SplitN(key, ".", 2)[0], "unexpected key %s", key)
	}
	assert.False(t, v.IsSet("env"))
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PASSFORGE_GENERATOR_LENGTH", "24")
	t.Setenv("PASSFORGE_GENERATOR_SYMBOLS", "false")
	t.Setenv("PASSFORGE_LOG_LEVEL", "debug")

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, 24, cfg.Generator.Length)
	assert.False(t, cfg.Generator.Symbols)
	assert.True(t, cfg.Generator.Numbers)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "passforge.yaml")
	content := []byte("generator:\n  length: 32\n  count: 3\nlog:\n  level: error\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, 32, cfg.Generator.Length)
	assert.Equal(t, 3, cfg.Generator.Count)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.True(t, cfg.Generator.Lowercase, "unset keys keep their defaults")
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "passforge.yaml")
	require.NoError(t, os.WriteFile(path, []byte("generator:\n  length: 32\n"), 0o600))
	t.Setenv("PASSFORGE_GENERATOR_LENGTH", "12")

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Generator.Length)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr error
	}{
		{name: "negative length", env: map[string]string{"PASSFORGE_GENERATOR_LENGTH": "-1"}, wantErr: ErrNegativeLength},
		{name: "zero count", env: map[string]string{"PASSFORGE_GENERATOR_COUNT": "0"}, wantErr: ErrCountTooSmall},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load(viper.New(), "")
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateEmptyLogLevel(t *testing.T) {
	cfg := Config{Generator: Generator{Length: 16, Count: 1}}
	assert.ErrorIs(t, validate(cfg), ErrEmptyLogLevel)
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("PASSFORGE_GENERATOR_COUNT=5\n"), 0o600))
	t.Setenv("PASSFORGE_GENERATOR_COUNT", "")
	require.NoError(t, os.Unsetenv("PASSFORGE_GENERATOR_COUNT"))

	require.NoError(t, LoadDotEnv(path))

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Generator.Count)
}

func TestLoadDotEnvMissingFile(t *testing.T) {
	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "absent.env")))
}
