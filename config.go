package mini

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/magiconair/properties"
	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"
)

type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Config controls the diagnostics and the run loop. The zero value is not
// valid; start from DefaultConfig.
type Config struct {
	// Trace prints the environment after every executed statement.
	Trace bool `yaml:"trace"`
	// Color selects colored trace output.
	Color ColorMode `yaml:"color"`
	// ContinueAfterOutput keeps executing the lines after the first output
	// statement. The returned value is still the first output's.
	ContinueAfterOutput bool `yaml:"continue_after_output"`
}

func DefaultConfig() Config {
	return Config{Color: ColorAuto}
}

// LoadConfig reads a .properties or .yaml/.yml file on top of the defaults.
func LoadConfig(path string) (Config, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, err
		}
		return ParseYAMLConfig(data)
	case ".properties", "":
		p, err := properties.LoadFile(path, properties.UTF8)
		if err != nil {
			return Config{}, err
		}
		return configFromProperties(p)
	}
	return Config{}, fmt.Errorf("%s: unsupported config format", path)
}

func ParsePropertiesConfig(text string) (Config, error) {
	p, err := properties.LoadString(text)
	if err != nil {
		return Config{}, err
	}
	return configFromProperties(p)
}

func configFromProperties(p *properties.Properties) (Config, error) {
	cfg := DefaultConfig()
	cfg.Trace = p.GetBool("trace", cfg.Trace)
	cfg.Color = ColorMode(p.GetString("color", string(cfg.Color)))
	cfg.ContinueAfterOutput = p.GetBool("continue_after_output", cfg.ContinueAfterOutput)
	return cfg, cfg.Validate()
}

func ParseYAMLConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
		return nil
	}
	return fmt.Errorf("invalid color mode %q (want auto, always or never)", c.Color)
}

// UseColor reports whether trace output written to f should be colored.
func (c Config) UseColor(f *os.File) bool {
	switch c.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
