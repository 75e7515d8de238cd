package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dd0wney/cluso-overlap/pkg/config"
	"github.com/dd0wney/cluso-overlap/pkg/logging"
	"github.com/dd0wney/cluso-overlap/pkg/metrics"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "overlap",
		Short:         "Overlapping community detection by influence expansion",
		Long:          "overlap grows a non-overlapping partition into an overlapping cover by running Linear Threshold diffusions from every community.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("config", "", "YAML config file (defaults apply when empty)")
	root.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")
	root.PersistentFlags().String("metrics-file", "", "write Prometheus textfile metrics here after the run")
	root.PersistentFlags().Uint64("seed", 0, "random seed (0 derives one from the clock)")
	root.PersistentFlags().Int("workers", 0, "simulation workers (0 = GOMAXPROCS)")

	root.AddCommand(newDetectCmd(), newSimulateCmd(), newWeightsCmd(), newNMICmd())
	return root
}

// runEnv is the per-invocation state shared by subcommands
type runEnv struct {
	cfg     config.Config
	logger  logging.Logger
	metrics *metrics.Registry
}

// overrides maps flag names to the config fields they replace
var overrides = map[string]func(cmd *cobra.Command, cfg *config.Config) error{
	"log-level":    stringFlag("log-level", func(c *config.Config, v string) { c.LogLevel = v }),
	"metrics-file": stringFlag("metrics-file", func(c *config.Config, v string) { c.MetricsFile = v }),
	"variant":      stringFlag("variant", func(c *config.Config, v string) { c.Variant = v }),
	"weights":      stringFlag("weights", func(c *config.Config, v string) { c.Weights = v }),
	"policy":       stringFlag("policy", func(c *config.Config, v string) { c.SeedPolicy = v }),
	"baseline":     stringFlag("baseline", func(c *config.Config, v string) { c.Baseline = v }),
	"k":            intFlag("k", func(c *config.Config, v int) { c.CliqueK = v }),
	"trials":       intFlag("trials", func(c *config.Config, v int) { c.Trials = v }),
	"freq":         intFlag("freq", func(c *config.Config, v int) { c.Frequency = v }),
	"workers":      intFlag("workers", func(c *config.Config, v int) { c.Workers = v }),
	"seed": func(cmd *cobra.Command, cfg *config.Config) error {
		v, err := cmd.Flags().GetUint64("seed")
		cfg.Seed = v
		return err
	},
	"overlap": func(cmd *cobra.Command, cfg *config.Config) error {
		v, err := cmd.Flags().GetBool("overlap")
		cfg.Overlap = v
		return err
	},
	"tolerance": func(cmd *cobra.Command, cfg *config.Config) error {
		v, err := cmd.Flags().GetFloat64("tolerance")
		cfg.Tolerance = v
		return err
	},
}

func stringFlag(name string, set func(*config.Config, string)) func(*cobra.Command, *config.Config) error {
	return func(cmd *cobra.Command, cfg *config.Config) error {
		v, err := cmd.Flags().GetString(name)
		set(cfg, v)
		return err
	}
}

func intFlag(name string, set func(*config.Config, int)) func(*cobra.Command, *config.Config) error {
	return func(cmd *cobra.Command, cfg *config.Config) error {
		v, err := cmd.Flags().GetInt(name)
		set(cfg, v)
		return err
	}
}

// loadEnv reads --config, applies every flag the user set and validates
func loadEnv(cmd *cobra.Command) (*runEnv, error) {
	cfg := config.Default()
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	for name, apply := range overrides {
		if cmd.Flags().Lookup(name) == nil || !cmd.Flags().Changed(name) {
			continue
		}
		if err := apply(cmd, &cfg); err != nil {
			return nil, fmt.Errorf("flag --%s: %w", name, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &runEnv{
		cfg:     cfg,
		logger:  logging.NewJSONLogger(cmd.ErrOrStderr(), cfg.Level()),
		metrics: metrics.NewRegistry(),
	}, nil
}

// seed returns the configured seed, or one derived from the clock when unset
func (e *runEnv) seed() uint64 {
	if e.cfg.Seed != 0 {
		return e.cfg.Seed
	}
	return uint64(time.Now().UnixNano())
}

// flush writes the metrics textfile when one was requested
func (e *runEnv) flush() error {
	if e.cfg.MetricsFile == "" {
		return nil
	}
	if err := e.metrics.WriteTextfile(e.cfg.MetricsFile); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	e.logger.Debug("metrics written", logging.Path(e.cfg.MetricsFile))
	return nil
}
