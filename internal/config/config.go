package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	App     AppConfig     `yaml:"app"`
	Mcp     McpConfig     `yaml:"mcp"`
	Logging LoggingConfig `yaml:"logging"`
}

type AppConfig struct {
	Port     int `yaml:"port"`
	DefaultK int `yaml:"default_k"`
	// MaxLines caps the number of lines accepted by a single HTTP request.
	// Zero disables the cap.
	MaxLines int `yaml:"max_lines"`
}

type McpConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type LoggingConfig struct {
	Level       string   `yaml:"level"`
	OutputPaths []string `yaml:"output_paths"`
}

func (m McpConfig) GetAddress() string {
	return fmt.Sprintf("%s:%d", m.Host, m.Port)
}

// DefaultConfig returns the configuration used when no file is given
func DefaultConfig() *Config {
	return &Config{
		App: AppConfig{
			Port:     8080,
			DefaultK: 10,
			MaxLines: 100000,
		},
		Mcp: McpConfig{
			Host: "localhost",
			Port: 8081,
		},
		Logging: LoggingConfig{
			Level:       "info",
			OutputPaths: []string{"stderr"},
		},
	}
}

// LoadConfig reads the YAML file at path on top of DefaultConfig
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.App.Port <= 0 || c.App.Port > 65535 {
		return fmt.Errorf("app.port out of range: %d", c.App.Port)
	}
	if c.Mcp.Port < 0 || c.Mcp.Port > 65535 {
		return fmt.Errorf("mcp.port out of range: %d", c.Mcp.Port)
	}
	if c.App.DefaultK < 0 {
		return fmt.Errorf("app.default_k must not be negative: %d", c.App.DefaultK)
	}
	if c.App.MaxLines < 0 {
		return fmt.Errorf("app.max_lines must not be negative: %d", c.App.MaxLines)
	}
	if len(c.Logging.OutputPaths) == 0 {
		c.Logging.OutputPaths = []string{"stderr"}
	}
	return nil
}
