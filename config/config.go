package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`

	Store struct {
		Driver   string `yaml:"driver"` // "file" or "mongo"
		Path     string `yaml:"path"`
		MongoURI string `yaml:"mongoUri"`
	} `yaml:"store"`

	Redis struct {
		Addr     string `yaml:"addr"` // empty disables rate limiting
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`

	Chain struct {
		ChainID         int    `yaml:"chainId"`
		ContractAddress string `yaml:"contractAddress"`
		ExplorerURL     string `yaml:"explorerUrl"`
	} `yaml:"chain"`

	CORS struct {
		AllowOrigins []string `yaml:"allowOrigins"`
	} `yaml:"cors"`
}

// LoadConfig reads the configuration file and applies environment overrides
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
	}

	cfg.applyDefaults()
	cfg.applyEnvOverrides()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Store.Driver == "" {
		c.Store.Driver = "file"
	}
	if c.Store.Path == "" {
		c.Store.Path = "data/users.json"
	}
}

// applyEnvOverrides lets deploy-sensitive values come from the environment
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Server.Port = port
		}
	}
	if v := os.Getenv("STORE_DRIVER"); v != "" {
		c.Store.Driver = v
	}
	if v := os.Getenv("STORE_PATH"); v != "" {
		c.Store.Path = v
	}
	if v := os.Getenv("MONGO_URI"); v != "" {
		c.Store.MongoURI = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Redis.Addr = v
	}
}
