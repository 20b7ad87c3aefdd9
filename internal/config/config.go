package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the runner settings and the puzzle parameters that differ
// between the worked examples and the real inputs.
type Config struct {
	DataDir string `yaml:"data_dir"`
	Color   bool   `yaml:"color"`
	Days    Days   `yaml:"days"`
}

type Days struct {
	Day7  Filesystem `yaml:"day7"`
	Day11 Monkeys    `yaml:"day11"`
	Day15 Sensors    `yaml:"day15"`
}

type Filesystem struct {
	SmallDirLimit int `yaml:"small_dir_limit"`
	DiskSize      int `yaml:"disk_size"`
	NeededSpace   int `yaml:"needed_space"`
}

type Monkeys struct {
	CalmRounds    int `yaml:"calm_rounds"`
	WorriedRounds int `yaml:"worried_rounds"`
}

type Sensors struct {
	Row        int `yaml:"row"`
	SearchSize int `yaml:"search_size"`
}

// Default returns the configuration used for the real puzzle inputs.
func Default() *Config {
	return &Config{
		DataDir: "data",
		Days: Days{
			Day7:  Filesystem{SmallDirLimit: 100_000, DiskSize: 70_000_000, NeededSpace: 30_000_000},
			Day11: Monkeys{CalmRounds: 20, WorriedRounds: 10_000},
			Day15: Sensors{Row: 2_000_000, SearchSize: 4_000_000},
		},
	}
}

// Load reads a YAML file over the defaults. Values the file leaves out keep their
// default, values it sets are kept as written, zero included.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := Default()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, err
	}
	if c.DataDir == "" {
		c.DataDir = Default().DataDir
	}
	return c, nil
}
