package worldconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dshills/mcseed/pkg/biome"
)

// Config selects a generation version and carries the seed finder's
// bruteforce thresholds. It supports YAML parsing and includes
// comprehensive validation.
type Config struct {
	// Version names one of the four supported release versions:
	// "1.7", "1.13", "1.14", or "1.15".
	Version string `yaml:"version" json:"version"`

	// Seed fixes the world seed to generate with. Nil means no seed is
	// known yet.
	Seed *uint64 `yaml:"seed,omitempty" json:"seed,omitempty"`

	// SeedFinder holds the river-seed bruteforce thresholds.
	SeedFinder SeedFinderCfg `yaml:"seedFinder" json:"seedFinder"`
}

// SeedFinderCfg holds the seed finder's match thresholds and per-stage
// fragment caps as YAML-loadable, validated settings. pkg/seedfinder does
// not read it: its stages use fixed values equal to DefaultSeedFinderCfg.
type SeedFinderCfg struct {
	// MatchThreshold is the minimum fraction of a target fragment's
	// rivers a candidate must reproduce to survive a stage (0.0-1.0).
	MatchThreshold float64 `yaml:"matchThreshold" json:"matchThreshold"`

	// BadMapBudget is how many target fragments a candidate is allowed
	// to fail before it is rejected at the 26-bit stage (1-10).
	BadMapBudget int `yaml:"badMapBudget" json:"badMapBudget"`

	// FragmentCap26 is the maximum number of fragments kept for the
	// 26-bit stage, sorted by descending river count (1-100).
	FragmentCap26 int `yaml:"fragmentCap26" json:"fragmentCap26"`

	// FragmentCap34 is the maximum number of fragments kept for the
	// 34-bit voronoi stage (1-100).
	FragmentCap34 int `yaml:"fragmentCap34" json:"fragmentCap34"`

	// MinRivers26 is the minimum river count a fragment needs to be
	// considered at the 26-bit stage (1-1000).
	MinRivers26 int `yaml:"minRivers26" json:"minRivers26"`

	// MinRivers34 is the minimum river count a fragment needs to be
	// considered at the 34-bit stage (1-1000).
	MinRivers34 int `yaml:"minRivers34" json:"minRivers34"`
}

// DefaultSeedFinderCfg returns the thresholds the seed finder package uses
// internally.
func DefaultSeedFinderCfg() SeedFinderCfg {
	return SeedFinderCfg{
		MatchThreshold: 0.9,
		BadMapBudget:   2,
		FragmentCap26:  10,
		FragmentCap34:  4,
		MinRivers26:    10,
		MinRivers34:    40,
	}
}

// LoadConfig reads and validates a YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return LoadConfigFromBytes(data)
}

// LoadConfigFromBytes parses YAML configuration from a byte slice.
func LoadConfigFromBytes(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	return &cfg, nil
}

// ToYAML serializes the config to YAML bytes.
func (c *Config) ToYAML() ([]byte, error) {
	return yaml.Marshal(c)
}

// BiomeVersion resolves Version to its biome.Version constant. Callers
// should only call this after Validate has succeeded.
func (c *Config) BiomeVersion() (biome.Version, error) {
	switch c.Version {
	case "1.7":
		return biome.Java1_7, nil
	case "1.13":
		return biome.Java1_13, nil
	case "1.14":
		return biome.Java1_14, nil
	case "1.15":
		return biome.Java1_15, nil
	default:
		return 0, fmt.Errorf("unknown version %q", c.Version)
	}
}

// Validate checks all configuration constraints.
func (c *Config) Validate() error {
	switch c.Version {
	case "1.7", "1.13", "1.14", "1.15":
	default:
		return fmt.Errorf("version must be one of 1.7, 1.13, 1.14, 1.15, got %q", c.Version)
	}
	if err := c.SeedFinder.Validate(); err != nil {
		return fmt.Errorf("seedFinder: %w", err)
	}
	return nil
}

// Validate checks SeedFinderCfg constraints.
func (s *SeedFinderCfg) Validate() error {
	if s.MatchThreshold < 0.0 || s.MatchThreshold > 1.0 {
		return fmt.Errorf("matchThreshold must be in range [0.0, 1.0], got %f", s.MatchThreshold)
	}
	if s.BadMapBudget < 1 || s.BadMapBudget > 10 {
		return fmt.Errorf("badMapBudget must be in range [1, 10], got %d", s.BadMapBudget)
	}
	if s.FragmentCap26 < 1 || s.FragmentCap26 > 100 {
		return fmt.Errorf("fragmentCap26 must be in range [1, 100], got %d", s.FragmentCap26)
	}
	if s.FragmentCap34 < 1 || s.FragmentCap34 > 100 {
		return fmt.Errorf("fragmentCap34 must be in range [1, 100], got %d", s.FragmentCap34)
	}
	if s.MinRivers26 < 1 || s.MinRivers26 > 1000 {
		return fmt.Errorf("minRivers26 must be in range [1, 1000], got %d", s.MinRivers26)
	}
	if s.MinRivers34 < 1 || s.MinRivers34 > 1000 {
		return fmt.Errorf("minRivers34 must be in range [1, 1000], got %d", s.MinRivers34)
	}
	return nil
}
