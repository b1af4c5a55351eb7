package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/beanscan/binding"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(old) })
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.True(t, cfg.PrivatePropertiesEnabled)
	assert.Equal(t, binding.Names(), cfg.Adapters)
	assert.Equal(t, 256, cfg.CacheSize)
	assert.GreaterOrEqual(t, cfg.Workers, 1)
	assert.Empty(t, cfg.Classpath)
	assert.Equal(t, 0, cfg.Log.Verbosity)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	content := `
private_properties_enabled: false
adapters: [schema, jackson]
cache_size: 0
workers: 3
classpath:
  - build/classes
  - lib/model.jar
log:
  verbosity: 2
  file: beanscan.log
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "beanscan.yaml"), []byte(content), 0o644))

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.False(t, cfg.PrivatePropertiesEnabled)
	assert.Equal(t, []string{"schema", "jackson"}, cfg.Adapters)
	assert.Equal(t, 0, cfg.CacheSize)
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, []string{"build/classes", "lib/model.jar"}, cfg.Classpath)
	assert.Equal(t, 2, cfg.Log.Verbosity)
	assert.Equal(t, "beanscan.log", cfg.Log.File)

	opts, err := cfg.ResolverOptions()
	require.NoError(t, err)
	assert.False(t, opts.PrivatePropertiesEnabled)
	assert.Equal(t, []string{"schema", "jackson"}, opts.Adapters.Names())
}

func TestLoadExplicitPathMustExist(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	assert.Error(t, err)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "beanscan.yaml"), []byte("workers: 3\n"), 0o644))
	t.Setenv("BEANSCAN_WORKERS", "7")
	t.Setenv("BEANSCAN_LOG_VERBOSITY", "1")

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Workers)
	assert.Equal(t, 1, cfg.Log.Verbosity)
}

func TestFlagsOverrideEverything(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "beanscan.yaml"), []byte("cache_size: 10\n"), 0o644))
	t.Setenv("BEANSCAN_CACHE_SIZE", "20")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("cache-size", 256, "")
	flags.Bool("private-properties", true, "")
	require.NoError(t, flags.Parse([]string{"--cache-size=30"}))

	cfg, err := Load("", flags)
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.CacheSize)
	assert.True(t, cfg.PrivatePropertiesEnabled, "unchanged flags keep the default")
}

func TestValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown adapter", "adapters: [schema, gson]\n"},
		{"negative cache", "cache_size: -1\n"},
		{"no workers", "workers: 0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "custom.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))
			_, err := Load(path, nil)
			assert.Error(t, err)
		})
	}
}
