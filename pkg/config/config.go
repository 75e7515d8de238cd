package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/dd0wney/cluso-overlap/pkg/community"
	"github.com/dd0wney/cluso-overlap/pkg/influence"
	"github.com/dd0wney/cluso-overlap/pkg/logging"
)

// Baseline names the algorithm that produces the non-overlapping partition
const (
	BaselineModularity       = "modularity"
	BaselineLabelPropagation = "label-propagation"
)

// Config holds every tunable of a detection run
type Config struct {
	CliqueK         int     `yaml:"clique_k" validate:"min=2,max=64"`
	Overlap         bool    `yaml:"overlap"`
	Trials          int     `yaml:"trials" validate:"min=1,max=1000000"`
	Frequency       int     `yaml:"frequency" validate:"min=1,ltefield=Trials"`
	Variant         string  `yaml:"variant" validate:"oneof=lt dlt"`
	Weights         string  `yaml:"weights" validate:"oneof=uniform random"`
	SeedPolicy      string  `yaml:"seed_policy" validate:"oneof=members representative"`
	Baseline        string  `yaml:"baseline" validate:"oneof=modularity label-propagation"`
	LabelIterations int     `yaml:"label_iterations" validate:"min=1"`
	Workers         int     `yaml:"workers" validate:"min=0"`
	Seed            uint64  `yaml:"seed"`
	Tolerance       float64 `yaml:"tolerance" validate:"gt=0,lt=1"`
	LogLevel        string  `yaml:"log_level" validate:"oneof=debug info warn error"`
	MetricsFile     string  `yaml:"metrics_file"`
}

// Default returns the configuration used when no file is given
func Default() Config {
	return Config{
		CliqueK:         3,
		Overlap:         true,
		Trials:          influence.DefaultTrials,
		Frequency:       8,
		Variant:         "lt",
		Weights:         "uniform",
		SeedPolicy:      "members",
		Baseline:        BaselineModularity,
		LabelIterations: 100,
		Workers:         0,
		Tolerance:       influence.DefaultTolerance,
		LogLevel:        "info",
	}
}

// Load reads a YAML file on top of Default and validates the result.
// Fields missing from the file keep their default values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML on top of Default and validates the result
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks struct constraints, then the cross-field rules the
// tags cannot express
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}

	cv := newChecker("Config")
	cv.maxInt("Workers", c.Workers, 64*runtime.GOMAXPROCS(0))
	return cv.err()
}

// DiffusionVariant returns the parsed simulator variant
func (c Config) DiffusionVariant() (influence.Variant, error) {
	return influence.ParseVariant(c.Variant)
}

// WeightPolicy returns the parsed weight assignment policy
func (c Config) WeightPolicy() (influence.Policy, error) {
	return influence.ParsePolicy(c.Weights)
}

// SeedingPolicy returns the parsed seed policy
func (c Config) SeedingPolicy() (community.SeedPolicy, error) {
	return community.ParseSeedPolicy(c.SeedPolicy)
}

// Level returns the parsed log level
func (c Config) Level() logging.Level {
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return logging.InfoLevel
	}
	return level
}

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")
