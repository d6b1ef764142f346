package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/intake/pkg/config"
)

type testConfigDefault struct {
	TestString string `env:"TEST_STRING_DEFAULT" envDefault:"default_value"`
	TestInt    int    `env:"TEST_INT_DEFAULT" envDefault:"42"`
	TestBool   bool   `env:"TEST_BOOL_DEFAULT" envDefault:"true"`
}

type testConfigSuccess struct {
	TestString string   `env:"TEST_STRING_SUCCESS" envDefault:"default_value"`
	TestInt    int      `env:"TEST_INT_SUCCESS" envDefault:"42"`
	TestList   []string `env:"TEST_LIST_SUCCESS" envSeparator:","`
}

type testConfigCached struct {
	Value string `env:"TEST_VALUE_CACHED" envDefault:"first"`
}

type testConfigPrefixed struct {
	Value string `env:"VALUE"`
}

type testConfigFile struct {
	Value string `env:"TEST_VALUE_FROM_FILE"`
}

type testConfigFileAfterCache struct {
	Value string `env:"TEST_VALUE_FILE_AFTER_CACHE" envDefault:"default"`
}

type requiredConfig struct {
	Required string `env:"TEST_REQUIRED_VALUE,required"`
}

func TestLoad_Success(t *testing.T) {
	t.Setenv("TEST_STRING_SUCCESS", "test_value")
	t.Setenv("TEST_INT_SUCCESS", "100")
	t.Setenv("TEST_LIST_SUCCESS", "png,jpg")

	var cfg testConfigSuccess
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "test_value", cfg.TestString)
	assert.Equal(t, 100, cfg.TestInt)
	assert.Equal(t, []string{"png", "jpg"}, cfg.TestList)
}

func TestLoad_DefaultValues(t *testing.T) {
	var cfg testConfigDefault
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "default_value", cfg.TestString)
	assert.Equal(t, 42, cfg.TestInt)
	assert.True(t, cfg.TestBool)
}

func TestLoad_Cached(t *testing.T) {
	var first testConfigCached
	require.NoError(t, config.Load(&first))
	assert.Equal(t, "first", first.Value)

	t.Setenv("TEST_VALUE_CACHED", "second")
	var second testConfigCached
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first", second.Value)
}

func TestLoad_Prefix(t *testing.T) {
	t.Setenv("INTAKE_VALUE", "prefixed")
	t.Setenv("VALUE", "plain")

	var cfg testConfigPrefixed
	require.NoError(t, config.Load(&cfg, config.WithPrefix("INTAKE_")))
	assert.Equal(t, "prefixed", cfg.Value)
}

func TestLoad_EnvFiles(t *testing.T) {
	t.Run("loads values from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "test.env")
		require.NoError(t, os.WriteFile(path, []byte("TEST_VALUE_FROM_FILE=from-file\n"), 0o600))
		t.Cleanup(func() { _ = os.Unsetenv("TEST_VALUE_FROM_FILE") })

		var cfg testConfigFile
		require.NoError(t, config.Load(&cfg, config.WithEnvFiles(path)))
		assert.Equal(t, "from-file", cfg.Value)
	})

	t.Run("file applies after a cached load", func(t *testing.T) {
		var first testConfigFileAfterCache
		require.NoError(t, config.Load(&first))
		assert.Equal(t, "default", first.Value)

		path := filepath.Join(t.TempDir(), "late.env")
		require.NoError(t, os.WriteFile(path, []byte("TEST_VALUE_FILE_AFTER_CACHE=from-file\n"), 0o600))
		t.Cleanup(func() { _ = os.Unsetenv("TEST_VALUE_FILE_AFTER_CACHE") })

		var second testConfigFileAfterCache
		require.NoError(t, config.Load(&second, config.WithEnvFiles(path)))
		assert.Equal(t, "from-file", second.Value)
	})

	t.Run("missing file", func(t *testing.T) {
		var cfg testConfigFile
		err := config.Load(&cfg, config.WithEnvFiles(filepath.Join(t.TempDir(), "missing.env")))
		assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
	})
}

func TestLoad_MissingRequired(t *testing.T) {
	var cfg requiredConfig
	err := config.Load(&cfg)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *testConfigDefault
	assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
}

func TestMustLoad(t *testing.T) {
	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg)
	})
}
