package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultChartWidth  = 80
	DefaultChartHeight = 12
	DefaultLegendCap   = 5
)

// Config holds chart defaults loaded from an optional sumviz.yaml.
type Config struct {
	ChartWidth  int      `yaml:"chart_width"`
	ChartHeight int      `yaml:"chart_height"`
	LegendCap   int      `yaml:"legend_cap"`
	Palette     []string `yaml:"palette"`
}

func DefaultConfig() *Config {
	return &Config{
		ChartWidth:  DefaultChartWidth,
		ChartHeight: DefaultChartHeight,
		LegendCap:   DefaultLegendCap,
		Palette:     []string{"red", "blue", "green", "orange", "purple", "cyan"},
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

// Discover loads the config file named by the SUMVIZ_CONFIG environment
// variable, falling back to sumviz.yaml in the working directory, then
// to defaults.
func Discover() *Config {
	path := os.Getenv("SUMVIZ_CONFIG")
	if path == "" {
		path = "sumviz.yaml"
	}
	cfg, err := Load(path)
	if err != nil {
		return DefaultConfig()
	}
	return cfg
}
