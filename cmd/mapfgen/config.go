// cmd/mapfgen/config.go
// Batch-run configuration: YAML file plus command-line overrides.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config describes one batch run.
type Config struct {
	// MapsDir holds the source ASCII maps (*.map).
	MapsDir string `yaml:"maps_dir"`
	// GridsDir receives the converted binary grids (*_binary.map).
	GridsDir string `yaml:"grids_dir"`
	// ScenariosDir receives the generated scenario files.
	ScenariosDir string `yaml:"scenarios_dir"`
	// AgentCounts lists the agent counts to generate per map.
	AgentCounts []int `yaml:"agent_counts"`
	// Seed is the base seed for the run; 0 means seed from the clock.
	// Per-job seeds are derived from it, one independent stream per
	// (map, agent-count) pair.
	Seed int64 `yaml:"seed"`
	// ConvertOnly stops after the map-to-grid conversion phase.
	ConvertOnly bool `yaml:"convert_only"`
}

// DefaultConfig mirrors the historical benchmark layout.
func DefaultConfig() Config {
	return Config{
		MapsDir:      "MAPF_benchmark_maps",
		GridsDir:     "Processed_MAPF_maps",
		ScenariosDir: "Random_agent_scenarios",
		AgentCounts:  []int{10, 20, 30},
	}
}

// LoadConfig reads a YAML config file over the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, cfg.validate()
}

func (c *Config) validate() error {
	if len(c.AgentCounts) == 0 {
		return fmt.Errorf("config: agent_counts must not be empty")
	}
	for _, n := range c.AgentCounts {
		if n < 1 {
			return fmt.Errorf("config: agent count %d is below 1", n)
		}
	}

	return nil
}

// parseAgentCounts parses a comma-separated list like "10,20,30".
func parseAgentCounts(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	counts := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("agent counts: %q is not an integer", p)
		}
		counts = append(counts, n)
	}

	return counts, nil
}
