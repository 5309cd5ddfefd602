package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"go.yaml.in/yaml/v3"
)

const (
	CraneMover9000 = "9000"
	CraneMover9001 = "9001"
)

type Config struct {
	Day01 CaloriesConfig `yaml:"day01"`
	Day05 StacksConfig   `yaml:"day05"`
	Day06 MarkerConfig   `yaml:"day06"`
	Day07 DiskConfig     `yaml:"day07"`
}

type CaloriesConfig struct {
	TopElves int `yaml:"top_elves"`
}

type StacksConfig struct {
	// Crane selects which crane answers part 2. Part 1 always uses the 9000.
	Crane string `yaml:"crane"`
}

type MarkerConfig struct {
	WindowSizes []int `yaml:"window_sizes"`
}

type DiskConfig struct {
	SmallDirLimit int `yaml:"small_dir_limit"`
	TotalSpace    int `yaml:"total_space"`
	RequiredSpace int `yaml:"required_space"`
}

// LoadConfig reads the YAML file pointed by AOC_CONFIG_PATH, or
// configs/aoc.yaml. A missing file is not an error: defaults apply.
func LoadConfig() (*Config, error) {
	path := os.Getenv("AOC_CONFIG_PATH")
	if path == "" {
		path = "configs/aoc.yaml"
	}

	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, err
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns the configuration used when no file is provided.
func Default() *Config {
	var cfg Config
	applyDefaults(&cfg)
	return &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Day01.TopElves == 0 {
		cfg.Day01.TopElves = 3
	}
	if cfg.Day05.Crane == "" {
		cfg.Day05.Crane = CraneMover9001
	}
	if len(cfg.Day06.WindowSizes) == 0 {
		cfg.Day06.WindowSizes = []int{4, 14}
	}
	if cfg.Day07.SmallDirLimit == 0 {
		cfg.Day07.SmallDirLimit = 100000
	}
	if cfg.Day07.TotalSpace == 0 {
		cfg.Day07.TotalSpace = 70000000
	}
	if cfg.Day07.RequiredSpace == 0 {
		cfg.Day07.RequiredSpace = 30000000
	}
}

func (c *Config) Validate() error {
	if c.Day01.TopElves < 1 {
		return fmt.Errorf("day01.top_elves must be positive, got %d", c.Day01.TopElves)
	}
	if c.Day05.Crane != CraneMover9000 && c.Day05.Crane != CraneMover9001 {
		return fmt.Errorf("day05.crane must be %q or %q, got %q", CraneMover9000, CraneMover9001, c.Day05.Crane)
	}
	for _, size := range c.Day06.WindowSizes {
		if size <= 1 {
			return fmt.Errorf("day06.window_sizes must be greater than 1, got %d", size)
		}
	}
	if c.Day07.RequiredSpace > c.Day07.TotalSpace {
		return fmt.Errorf("day07.required_space (%d) exceeds day07.total_space (%d)", c.Day07.RequiredSpace, c.Day07.TotalSpace)
	}
	return nil
}
