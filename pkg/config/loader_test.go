package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/idcheck/pkg/config"
)

type defaultsConfig struct {
	Env      string   `env:"IDCHECK_TEST_ENV" envDefault:"development"`
	Port     int      `env:"IDCHECK_TEST_PORT" envDefault:"8080"`
	Strict   bool     `env:"IDCHECK_TEST_STRICT" envDefault:"true"`
	Locales  []string `env:"IDCHECK_TEST_LOCALES" envSeparator:"," envDefault:"cs-CZ,sk-SK"`
	Optional string   `env:"IDCHECK_TEST_OPTIONAL"`
}

type requiredConfig struct {
	Path string `env:"IDCHECK_TEST_REQUIRED,required"`
}

type cachedConfig struct {
	Value string `env:"IDCHECK_TEST_CACHED"`
}

type fileConfig struct {
	Path  string `env:"IDCHECK_TEST_FILE_PATH"`
	Level string `env:"IDCHECK_TEST_FILE_LEVEL"`
}

func TestLoad_DefaultValues(t *testing.T) {
	config.ResetCache()

	var cfg defaultsConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, 8080, cfg.Port)
	assert.True(t, cfg.Strict)
	assert.Equal(t, []string{"cs-CZ", "sk-SK"}, cfg.Locales)
	assert.Empty(t, cfg.Optional)
}

func TestLoad_MissingRequired(t *testing.T) {
	config.ResetCache()

	var cfg requiredConfig
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
	assert.Panics(t, func() { config.MustLoad(&cfg) })

	t.Setenv("IDCHECK_TEST_REQUIRED", "/etc/idcheck/rules.yaml")
	require.NoError(t, config.Load(&cfg), "failed loads are not cached")
	assert.Equal(t, "/etc/idcheck/rules.yaml", cfg.Path)
}

func TestLoad_Cached(t *testing.T) {
	config.ResetCache()
	t.Setenv("IDCHECK_TEST_CACHED", "first")

	var first cachedConfig
	require.NoError(t, config.Load(&first))

	t.Setenv("IDCHECK_TEST_CACHED", "second")
	var second cachedConfig
	config.MustLoad(&second)
	assert.Equal(t, "first", second.Value)

	var reloaded cachedConfig
	require.NoError(t, config.Reload(&reloaded))
	assert.Equal(t, "second", reloaded.Value)
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *defaultsConfig
	assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
}

func TestLoadEnv(t *testing.T) {
	config.ResetCache()
	dir := t.TempDir()

	base := filepath.Join(dir, ".env")
	override := filepath.Join(dir, ".env.override")
	require.NoError(t, os.WriteFile(base, []byte("IDCHECK_TEST_FILE_PATH=rules.yaml\nIDCHECK_TEST_FILE_LEVEL=info\n"), 0o600))
	require.NoError(t, os.WriteFile(override, []byte(`IDCHECK_TEST_FILE_LEVEL="debug"`), 0o600))

	t.Setenv("IDCHECK_TEST_FILE_PATH", "")
	t.Setenv("IDCHECK_TEST_FILE_LEVEL", "")
	require.NoError(t, config.LoadEnv(base, override))

	var cfg fileConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "rules.yaml", cfg.Path)
	assert.Equal(t, "debug", cfg.Level)

	err := config.LoadEnv(filepath.Join(dir, "missing.env"))
	assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
	assert.Panics(t, func() { config.MustLoadEnv(filepath.Join(dir, "missing.env")) })
	assert.NotPanics(t, func() { config.MustLoadEnv(base) })
}
