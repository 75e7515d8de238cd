package overlap

import (
	"fmt"

	"github.com/dd0wney/cluso-overlap/pkg/community"
	"github.com/dd0wney/cluso-overlap/pkg/config"
	"github.com/dd0wney/cluso-overlap/pkg/influence"
	"github.com/dd0wney/cluso-overlap/pkg/logging"
	"github.com/dd0wney/cluso-overlap/pkg/metrics"
)

// Options are the parsed tunables of a Detector
type Options struct {
	CliqueK         int
	Baseline        string
	LabelIterations int
	Overlap         bool

	Weights   influence.Policy
	Tolerance float64

	Variant    influence.Variant
	SeedPolicy community.SeedPolicy
	Trials     int
	Threshold  int
	Workers    int
	Seed       uint64 // 0 derives a seed from the clock
}

// DefaultOptions mirrors config.Default
func DefaultOptions() Options {
	opts, _ := OptionsFromConfig(config.Default())
	return opts
}

// OptionsFromConfig parses the string-typed fields of cfg
func OptionsFromConfig(cfg config.Config) (Options, error) {
	variant, err := cfg.DiffusionVariant()
	if err != nil {
		return Options{}, err
	}
	weights, err := cfg.WeightPolicy()
	if err != nil {
		return Options{}, err
	}
	seeding, err := cfg.SeedingPolicy()
	if err != nil {
		return Options{}, err
	}
	return Options{
		CliqueK:         cfg.CliqueK,
		Baseline:        cfg.Baseline,
		LabelIterations: cfg.LabelIterations,
		Overlap:         cfg.Overlap,
		Weights:         weights,
		Tolerance:       cfg.Tolerance,
		Variant:         variant,
		SeedPolicy:      seeding,
		Trials:          cfg.Trials,
		Threshold:       cfg.Frequency,
		Workers:         cfg.Workers,
		Seed:            cfg.Seed,
	}, nil
}

func (o Options) validate() error {
	if o.Trials < 1 {
		return fmt.Errorf("%w: %d", influence.ErrInvalidTrials, o.Trials)
	}
	if o.Threshold < 1 {
		return fmt.Errorf("%w: %d", community.ErrInvalidThreshold, o.Threshold)
	}
	if o.Threshold > o.Trials {
		return fmt.Errorf("%w: %d > %d", ErrThresholdAboveTrials, o.Threshold, o.Trials)
	}
	switch o.Baseline {
	case config.BaselineModularity, config.BaselineLabelPropagation:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBaseline, o.Baseline)
	}
	return nil
}

// Option configures a Detector
type Option func(*Detector)

// WithLogger sets the logger; the default discards output
func WithLogger(l logging.Logger) Option {
	return func(d *Detector) {
		d.logger = l
	}
}

// WithMetrics records simulation and pipeline metrics in r
func WithMetrics(r *metrics.Registry) Option {
	return func(d *Detector) {
		d.metrics = r
	}
}
