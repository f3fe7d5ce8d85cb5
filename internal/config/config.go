// Package config loads and saves render configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config represents a complete render configuration
type Config struct {
	Image  ImageConfig  `yaml:"image" mapstructure:"image"`
	Render RenderConfig `yaml:"render" mapstructure:"render"`
	Scene  SceneConfig  `yaml:"scene" mapstructure:"scene"`
}

// ImageConfig controls output dimensions and encoding
type ImageConfig struct {
	Width       int    `yaml:"width" mapstructure:"width"`
	AspectRatio string `yaml:"aspect_ratio" mapstructure:"aspect_ratio"`
	Output      string `yaml:"output" mapstructure:"output"`
	Format      string `yaml:"format" mapstructure:"format"`
}

// RenderConfig controls the sampling loop
type RenderConfig struct {
	SamplesPerPixel int   `yaml:"samples_per_pixel" mapstructure:"samples_per_pixel"`
	MaxDepth        int   `yaml:"max_depth" mapstructure:"max_depth"`
	Workers         int   `yaml:"workers" mapstructure:"workers"`
	Seed            int64 `yaml:"seed" mapstructure:"seed"`
}

// SceneConfig selects the scene to render
type SceneConfig struct {
	Name string `yaml:"name" mapstructure:"name"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Image: ImageConfig{
			Width:       600,
			AspectRatio: "3:2",
			Output:      "image.png",
			Format:      "png",
		},
		Render: RenderConfig{
			SamplesPerPixel: 100,
			MaxDepth:        50,
			Workers:         0, // 0 = all cores
			Seed:            42,
		},
		Scene: SceneConfig{
			Name: "weekend",
		},
	}
}

// LoadConfig reads a configuration file, applying defaults for missing keys.
// An empty path returns the defaults unchanged.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("image.width", config.Image.Width)
	v.SetDefault("image.aspect_ratio", config.Image.AspectRatio)
	v.SetDefault("image.output", config.Image.Output)
	v.SetDefault("image.format", config.Image.Format)
	v.SetDefault("render.samples_per_pixel", config.Render.SamplesPerPixel)
	v.SetDefault("render.max_depth", config.Render.MaxDepth)
	v.SetDefault("render.workers", config.Render.Workers)
	v.SetDefault("render.seed", config.Render.Seed)
	v.SetDefault("scene.name", config.Scene.Name)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// SaveConfig writes the configuration as YAML
func SaveConfig(config *Config, path string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate checks the configuration for values the renderer cannot work with
func (c *Config) Validate() error {
	if c.Image.Width <= 0 {
		return fmt.Errorf("image width must be positive, got %d", c.Image.Width)
	}
	if c.Render.SamplesPerPixel <= 0 {
		return fmt.Errorf("samples per pixel must be positive, got %d", c.Render.SamplesPerPixel)
	}
	if c.Render.MaxDepth <= 0 {
		return fmt.Errorf("max depth must be positive, got %d", c.Render.MaxDepth)
	}
	return nil
}
