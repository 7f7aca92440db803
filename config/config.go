package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`

	Gemini struct {
		ApiKey string `yaml:"apiKey"`
		Model  string `yaml:"model"`
	} `yaml:"gemini"`

	Cors struct {
		AllowOrigins []string `yaml:"allowOrigins"`
	} `yaml:"cors"`

	Static struct {
		Dir string `yaml:"dir"`
	} `yaml:"static"`

	Pose struct {
		// Minimum shoulder width in the pixel space of the upstream
		// keypoint detector. Frames narrower than this are treated as
		// too far away / cropped.
		MinShoulderWidthPx float64 `yaml:"minShoulderWidthPx"`
	} `yaml:"pose"`
}

// LoadConfig reads the configuration file and fills in defaults
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
	}

	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8000
	}
	if cfg.Gemini.ApiKey == "" {
		cfg.Gemini.ApiKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.Static.Dir == "" {
		cfg.Static.Dir = "./static"
	}
	if cfg.Pose.MinShoulderWidthPx == 0 {
		cfg.Pose.MinShoulderWidthPx = 40
	}

	return &cfg, nil
}
