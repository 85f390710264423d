package config

import (
	"errors"

	"github.com/github/go-config"
)

// Config holds the file locations the map toolkit works with. Defaults
// match the repository layout; environment variables override them.
type Config struct {
	DatasetPath   string `config:"data/mountains_data.txt,env=MENDIMAP_DATASET"`
	ProvincesPath string `config:"data/georef-spain-provincia.json,env=MENDIMAP_PROVINCES"`
	WorldPath     string `config:"data/world.json,env=MENDIMAP_WORLD"`
	OutputPath    string `config:"docs/index.html,env=MENDIMAP_OUTPUT"`
}

// Load parses configuration from the environment and places it in a newly
// allocated Config struct.
func Load() (*Config, error) {
	cfg := &Config{}

	if err := config.Load(cfg); err != nil {
		return nil, err
	}

	if cfg.DatasetPath == "" || cfg.ProvincesPath == "" || cfg.WorldPath == "" || cfg.OutputPath == "" {
		return nil, errors.New("dataset, boundary and output paths must not be empty")
	}

	return cfg, nil
}
