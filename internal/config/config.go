package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"

	"github.com/vvka-141/traceschema/pkg/traceschema"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

const (
	// ConfigFileName is looked up in the working directory.
	ConfigFileName = "traceschema.yaml"
	// HomeConfigFileName is looked up in the user's home directory.
	HomeConfigFileName = ".traceschema.yaml"

	EnvConfigPath = "TRACESCHEMA_CONFIG"
	EnvIndent     = "TRACESCHEMA_INDENT"
	EnvStrict     = "TRACESCHEMA_STRICT"

	MaxIndent = 16
)

type ProjectConfig struct {
	Interfaces        []string `yaml:"interfaces,omitempty"`
	BuiltinInterfaces *bool    `yaml:"builtin_interfaces,omitempty"`
	Indent            *int     `yaml:"indent,omitempty"`
	Strict            bool     `yaml:"strict,omitempty"`
}

// Load reads ConfigFileName from dir.
func Load(dir string) (*ProjectConfig, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads and validates the config file at path.
func LoadFile(path string) (*ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", traceschema.ErrInvalidConfig, path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

// Resolve finds the config file to use. Lookup order: explicit path,
// $TRACESCHEMA_CONFIG, ConfigFileName in workDir, HomeConfigFileName in the
// home directory. An explicit path that does not exist is an error; the
// other locations are optional. Returns ErrConfigNotFound if none exist.
func Resolve(explicit, workDir string) (*ProjectConfig, string, error) {
	if explicit != "" {
		cfg, err := LoadFile(explicit)
		if errors.Is(err, ErrConfigNotFound) {
			return nil, "", fmt.Errorf("%w: %s does not exist", traceschema.ErrInvalidConfig, explicit)
		}
		return cfg, explicit, err
	}

	candidates := []string{}
	if env := os.Getenv(EnvConfigPath); env != "" {
		candidates = append(candidates, env)
	}
	candidates = append(candidates, filepath.Join(workDir, ConfigFileName))
	if home, err := homedir.Dir(); err == nil && home != "" {
		candidates = append(candidates, filepath.Join(home, HomeConfigFileName))
	}

	for _, path := range candidates {
		cfg, err := LoadFile(path)
		if errors.Is(err, ErrConfigNotFound) {
			continue
		}
		return cfg, path, err
	}
	return nil, "", ErrConfigNotFound
}

// LoadEnv loads .env files into the process environment.
// Missing files are ignored; existing variables are not overridden.
func LoadEnv(files ...string) {
	_ = godotenv.Load(files...)
}

// Validate checks field ranges.
func (c *ProjectConfig) Validate() error {
	if c.Indent != nil && (*c.Indent < 0 || *c.Indent > MaxIndent) {
		return fmt.Errorf("%w: indent must be between 0 and %d, got %d", traceschema.ErrInvalidConfig, MaxIndent, *c.Indent)
	}
	for i, name := range c.Interfaces {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("%w: interfaces[%d] cannot be empty", traceschema.ErrInvalidConfig, i)
		}
	}
	return nil
}

// ApplyEnv overrides fields from TRACESCHEMA_INDENT and TRACESCHEMA_STRICT.
func (c *ProjectConfig) ApplyEnv() error {
	if v := os.Getenv(EnvIndent); v != "" {
		indent, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a number", traceschema.ErrInvalidConfig, EnvIndent, v)
		}
		c.Indent = &indent
	}
	if v := os.Getenv(EnvStrict); v != "" {
		strict, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a boolean", traceschema.ErrInvalidConfig, EnvStrict, v)
		}
		c.Strict = strict
	}
	return c.Validate()
}

// EffectiveIndent returns the configured indent or the serializer default.
func (c *ProjectConfig) EffectiveIndent(fallback int) int {
	if c == nil || c.Indent == nil {
		return fallback
	}
	return *c.Indent
}

// UseBuiltinInterfaces reports whether the standard interfaces are known.
func (c *ProjectConfig) UseBuiltinInterfaces() bool {
	if c == nil || c.BuiltinInterfaces == nil {
		return true
	}
	return *c.BuiltinInterfaces
}

// InterfaceTable builds the interface table for decoding.
func (c *ProjectConfig) InterfaceTable() *traceschema.InterfaceTable {
	table := traceschema.NewInterfaceTable()
	if c.UseBuiltinInterfaces() {
		table = traceschema.DefaultInterfaces()
	}
	if c != nil {
		for _, name := range c.Interfaces {
			table.Register(traceschema.NewInterface(strings.TrimSpace(name), nil))
		}
	}
	return table
}
