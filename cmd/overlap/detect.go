package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dd0wney/cluso-overlap/pkg/community"
	"github.com/dd0wney/cluso-overlap/pkg/coverio"
	"github.com/dd0wney/cluso-overlap/pkg/logging"
	"github.com/dd0wney/cluso-overlap/pkg/overlap"
)

func newDetectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "detect",
		Short: "Detect overlapping communities in an edge list",
		Args:  cobra.NoArgs,
		RunE:  runDetect,
	}

	cmd.Flags().String("graph", "", "undirected edge list (.sz for snappy)")
	cmd.Flags().String("partition", "", "baseline partition; built from the graph when empty")
	cmd.Flags().String("out", "", "cover output file (stdout when empty)")
	cmd.Flags().Int("k", 3, "clique size for clique percolation")
	cmd.Flags().Int("trials", 20, "diffusion runs per seed")
	cmd.Flags().Int("freq", 8, "runs a node must be reached in to join a community")
	cmd.Flags().String("variant", "lt", "diffusion model: lt or dlt")
	cmd.Flags().String("weights", "uniform", "weight policy: uniform or random")
	cmd.Flags().String("policy", "members", "seed policy: members or representative")
	cmd.Flags().String("baseline", "modularity", "baseline: modularity or label-propagation")
	cmd.Flags().Bool("overlap", true, "expand the baseline into an overlapping cover")
	_ = cmd.MarkFlagRequired("graph")

	return cmd
}

func runDetect(cmd *cobra.Command, args []string) error {
	env, err := loadEnv(cmd)
	if err != nil {
		return err
	}

	graphPath, _ := cmd.Flags().GetString("graph")
	g, err := coverio.LoadGraph(graphPath)
	if err != nil {
		return err
	}
	stats := g.GetStatistics()
	env.logger.Info("graph loaded",
		logging.Path(graphPath),
		logging.Int("nodes", stats.NodeCount),
		logging.Int("arcs", stats.ArcCount))

	opts, err := overlap.OptionsFromConfig(env.cfg)
	if err != nil {
		return err
	}
	detector, err := overlap.NewDetector(opts, overlap.WithLogger(env.logger), overlap.WithMetrics(env.metrics))
	if err != nil {
		return err
	}

	var res *overlap.Result
	if partitionPath, _ := cmd.Flags().GetString("partition"); partitionPath != "" {
		baseline, err := coverio.LoadPartition(partitionPath)
		if err != nil {
			return err
		}
		res, err = detector.DetectFrom(cmd.Context(), g, baseline)
		if err != nil {
			return err
		}
	} else {
		res, err = detector.Detect(cmd.Context(), g)
		if err != nil {
			return err
		}
	}

	if err := writeCover(cmd, res.Cover); err != nil {
		return err
	}

	fmt.Fprintln(cmd.ErrOrStderr(), renderSummary("Detection "+res.RunID, []stat{
		{"nodes", stats.NodeCount},
		{"baseline communities", len(res.Baseline.Groups())},
		{"baseline modularity", fmt.Sprintf("%.4f", res.BaselineModularity)},
		{"communities", len(res.Cover)},
		{"discarded subsets", res.Discarded},
		{"seed", res.Seed},
		{"elapsed", res.Duration.Round(time.Millisecond)},
	}))
	return env.flush()
}

func writeCover(cmd *cobra.Command, c community.Cover) error {
	out, _ := cmd.Flags().GetString("out")
	if out == "" {
		return coverio.WriteCover(cmd.OutOrStdout(), c)
	}
	return coverio.SaveCover(out, c)
}
