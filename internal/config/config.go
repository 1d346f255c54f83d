package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDataDir    = "data"
	DefaultCountry    = "Algeria"
	DefaultIntervalMS = 2000
	DefaultTheme      = "ocean"
	DefaultWidth      = 78
)

type Config struct {
	DataDir    string `yaml:"data_dir"`
	BaseURL    string `yaml:"base_url"`
	Country    string `yaml:"country"`
	Theme      string `yaml:"theme"`
	IntervalMS int    `yaml:"interval_ms"`
	Width      int    `yaml:"width"`
}

func DefaultConfig() *Config {
	return &Config{
		DataDir:    DefaultDataDir,
		Country:    DefaultCountry,
		Theme:      DefaultTheme,
		IntervalMS: DefaultIntervalMS,
		Width:      DefaultWidth,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
