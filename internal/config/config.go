package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the complete configuration for jtree
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Parsing ParsingConfig `yaml:"parsing"`
	Dev     DevConfig     `yaml:"dev"`
}

// OutputConfig controls how the value tree is printed
type OutputConfig struct {
	// Indent is the number of spaces per nesting level; 0 means compact
	Indent int `yaml:"indent"`
	// KeyCase rewrites object keys: "", "camel", "pascal", "snake", "kebab"
	KeyCase string `yaml:"key_case"`
}

// ParsingConfig controls the parser
type ParsingConfig struct {
	// MaxDepth limits container nesting; 0 means unlimited
	MaxDepth int `yaml:"max_depth"`
}

// DevConfig contains development/debug options
type DevConfig struct {
	Debug bool `yaml:"debug"`
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Indent:  2,
			KeyCase: "",
		},
		Parsing: ParsingConfig{
			MaxDepth: 0,
		},
		Dev: DevConfig{
			Debug: false,
		},
	}
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start with defaults
	cfg := NewConfig()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration for values the tool cannot act on
func (c *Config) Validate() error {
	switch c.Output.KeyCase {
	case "", "camel", "pascal", "snake", "kebab":
	default:
		return fmt.Errorf("invalid key_case %q: must be camel, pascal, snake or kebab", c.Output.KeyCase)
	}
	if c.Output.Indent < 0 {
		return fmt.Errorf("invalid indent %d: must be >= 0", c.Output.Indent)
	}
	if c.Parsing.MaxDepth < 0 {
		return fmt.Errorf("invalid max_depth %d: must be >= 0", c.Parsing.MaxDepth)
	}
	return nil
}

// FindConfigFile searches for a config file in current directory and parents
func FindConfigFile() string {
	configNames := []string{".jtree.yml", ".jtree.yaml", "jtree.yml", "jtree.yaml"}

	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}

	// Search up the directory tree
	for {
		for _, name := range configNames {
			configPath := filepath.Join(currentDir, name)
			if _, err := os.Stat(configPath); err == nil {
				return configPath
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root directory
			break
		}
		currentDir = parentDir
	}

	return ""
}
