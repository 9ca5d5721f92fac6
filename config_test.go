package mini_test

import (
	"mini"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := mini.DefaultConfig()
	assert.False(t, cfg.Trace)
	assert.False(t, cfg.ContinueAfterOutput)
	assert.Equal(t, mini.ColorAuto, cfg.Color)
	assert.NoError(t, cfg.Validate())
}

func TestParsePropertiesConfig(t *testing.T) {
	cfg, err := mini.ParsePropertiesConfig("# diagnostics\ntrace = true\ncolor = never\ncontinue_after_output = yes\n")
	require.NoError(t, err)
	assert.Equal(t, mini.Config{Trace: true, Color: mini.ColorNever, ContinueAfterOutput: true}, cfg)

	cfg, err = mini.ParsePropertiesConfig("")
	require.NoError(t, err)
	assert.Equal(t, mini.DefaultConfig(), cfg)

	_, err = mini.ParsePropertiesConfig("color = rainbow\n")
	assert.Error(t, err)
}

func TestParseYAMLConfig(t *testing.T) {
	cfg, err := mini.ParseYAMLConfig([]byte("trace: true\ncolor: always\n"))
	require.NoError(t, err)
	assert.Equal(t, mini.Config{Trace: true, Color: mini.ColorAlways}, cfg)

	_, err = mini.ParseYAMLConfig([]byte("trace: [\n"))
	assert.Error(t, err)

	_, err = mini.ParseYAMLConfig([]byte("color: sometimes\n"))
	assert.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	props := filepath.Join(dir, "mini.properties")
	require.NoError(t, os.WriteFile(props, []byte("trace=true\n"), 0644))
	yml := filepath.Join(dir, "mini.yaml")
	require.NoError(t, os.WriteFile(yml, []byte("continue_after_output: true\ncolor: never\n"), 0644))
	other := filepath.Join(dir, "mini.json")
	require.NoError(t, os.WriteFile(other, []byte("{}"), 0644))

	cfg, err := mini.LoadConfig(props)
	require.NoError(t, err)
	assert.True(t, cfg.Trace)
	assert.Equal(t, mini.ColorAuto, cfg.Color)

	cfg, err = mini.LoadConfig(yml)
	require.NoError(t, err)
	assert.False(t, cfg.Trace)
	assert.True(t, cfg.ContinueAfterOutput)
	assert.Equal(t, mini.ColorNever, cfg.Color)

	_, err = mini.LoadConfig(other)
	assert.Error(t, err)

	_, err = mini.LoadConfig(filepath.Join(dir, "missing.properties"))
	assert.Error(t, err)
}

func TestConfigUseColor(t *testing.T) {
	cfg := mini.DefaultConfig()
	cfg.Color = mini.ColorAlways
	assert.True(t, cfg.UseColor(os.Stdout))
	cfg.Color = mini.ColorNever
	assert.False(t, cfg.UseColor(os.Stdout))

	t.Setenv("NO_COLOR", "1")
	cfg.Color = mini.ColorAuto
	assert.False(t, cfg.UseColor(os.Stdout))
}
