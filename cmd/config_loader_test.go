package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfigLoaderLoadMergedConfigDefaults(t *testing.T) {
	cfg, err := loadMergedConfig("")
	require.NoError(t, err)
	require.Equal(t, "zh-cn", cfg.App.Locale)
	require.Equal(t, "table", cfg.App.Output)
	require.Equal(t, "children", cfg.App.TreeKey)
	require.Equal(t, "rows", cfg.App.RowsKey)
	require.True(t, cfg.AutoOrderEnabled())
	require.Equal(t, "12", cfg.Theme.HeaderFG)
}

func TestConfigLoaderUserOverrideMergesWithDefaults(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	configYAML := `app:
  locale: en-us
  auto-order: false
theme:
  order: "3"
`
	require.NoError(t, os.WriteFile(cfgPath, []byte(configYAML), 0o600))

	cfg, err := loadMergedConfig(cfgPath)
	require.NoError(t, err)
	require.Equal(t, "en-us", cfg.App.Locale)
	require.Equal(t, "table", cfg.App.Output)
	require.False(t, cfg.AutoOrderEnabled())
	require.Equal(t, "3", cfg.Theme.Order)
	require.Equal(t, "12", cfg.Theme.HeaderFG)
}

func TestConfigLoaderErrors(t *testing.T) {
	_, err := loadMergedConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("app: [unclosed"), 0o600))
	_, err = loadMergedConfig(bad)
	require.ErrorContains(t, err, "decode config")

	broken := configLoader{defaultConfig: func() ([]byte, error) { return nil, errors.New("boom") }}
	_, err = broken.loadMergedConfig("")
	require.ErrorContains(t, err, "boom")

	noOutput := configLoader{defaultConfig: func() ([]byte, error) { return []byte("app:\n  locale: en\n"), nil }}
	_, err = noOutput.loadMergedConfig("")
	require.ErrorContains(t, err, "app.output")
}
