package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// TileRef addresses one tile in a fixture.
type TileRef struct {
	Col int32 `yaml:"col"`
	Row int32 `yaml:"row"`
}

// MapFixture describes a terrain for the pathcheck tool: grid dimensions
// plus tile lists per barrier class. Tiles absent from every list carry no
// barrier.
type MapFixture struct {
	Columns   int32     `yaml:"columns"`
	Rows      int32     `yaml:"rows"`
	Obstacles []TileRef `yaml:"obstacles"`
	Trans     []TileRef `yaml:"trans"`
	CanOver   []TileRef `yaml:"can_over"`
}

// PathQuery is one search to run against the fixture.
type PathQuery struct {
	Name  string  `yaml:"name"`
	Start TileRef `yaml:"start"`
	End   TileRef `yaml:"end"`

	// PathType: one_step, simple_npc, perfect_npc, perfect_player or
	// straight_line.
	PathType string `yaml:"path_type"`

	// DirectionCount restricts move directions (1/2/4/8); 0 means 8.
	DirectionCount int `yaml:"direction_count"`

	// MustReach makes pathcheck exit nonzero when the query yields no
	// complete path to End.
	MustReach bool `yaml:"must_reach"`
}

// PathCheck holds the full pathcheck tool configuration.
type PathCheck struct {
	Map     MapFixture  `yaml:"map"`
	Queries []PathQuery `yaml:"queries"`

	// Workers caps concurrent query execution.
	Workers int `yaml:"workers"`
}

// DefaultPathCheck returns a PathCheck config with an empty 100x100 map and
// one sample query.
func DefaultPathCheck() PathCheck {
	return PathCheck{
		Map: MapFixture{
			Columns: 100,
			Rows:    100,
		},
		Queries: []PathQuery{
			{
				Name:           "diagonal",
				Start:          TileRef{Col: 0, Row: 1},
				End:            TileRef{Col: 10, Row: 10},
				PathType:       "perfect_player",
				DirectionCount: 8,
				MustReach:      true,
			},
		},
		Workers: 4,
	}
}

// LoadPathCheck loads pathcheck config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadPathCheck(path string) (PathCheck, error) {
	cfg := DefaultPathCheck()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	return cfg, nil
}
