package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ConfigFileName = "curados.yaml"

// Environment represents one backend deployment the CLI can talk to
type Environment struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// Config represents the CLI configuration file
type Config struct {
	Environments []Environment `yaml:"environments"`
}

// DefaultConfig returns a default configuration with an example environment
func DefaultConfig() *Config {
	return &Config{
		Environments: []Environment{
			{
				Name: "production",
				URL:  "https://api.curados.example.com",
			},
		},
	}
}

// FindConfigFile searches for curados.yaml in the current directory and its
// parents, falling back to ~/.config/curados/curados.yaml.
func FindConfigFile() (string, error) {
	currentDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}

	dir := currentDir
	for {
		configPath := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root
			break
		}
		dir = parent
	}

	if homeDir, err := os.UserHomeDir(); err == nil {
		configPath := filepath.Join(homeDir, ".config", "curados", ConfigFileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}
	}

	return "", fmt.Errorf("%s not found in %s, any parent directory, or ~/.config/curados", ConfigFileName, currentDir)
}

// Load reads the configuration file. CURADOS_* environment variables are
// loaded from .env files first so they can override credentials and log
// settings in development.
func Load(path string) (*Config, error) {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

// LoadDefault loads config from the current directory, its parents, or the
// user config directory.
func LoadDefault() (*Config, error) {
	configPath, err := FindConfigFile()
	if err != nil {
		return nil, err
	}

	return Load(configPath)
}

// Save writes the configuration to a file
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GetEnvironment returns an environment by name
func (c *Config) GetEnvironment(name string) (*Environment, error) {
	for i := range c.Environments {
		if c.Environments[i].Name == name {
			return &c.Environments[i], nil
		}
	}
	return nil, fmt.Errorf("environment '%s' not found in %s", name, ConfigFileName)
}
