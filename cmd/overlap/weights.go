package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dd0wney/cluso-overlap/pkg/coverio"
	"github.com/dd0wney/cluso-overlap/pkg/influence"
)

func newWeightsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "weights",
		Short: "Assign influence weights and check the in-weight bound",
		Args:  cobra.NoArgs,
		RunE:  runWeights,
	}

	cmd.Flags().String("graph", "", "undirected edge list (.sz for snappy)")
	cmd.Flags().String("weights", "uniform", "weight policy: uniform or random")
	cmd.Flags().Float64("tolerance", influence.DefaultTolerance, "allowed excess of a node's weighted in-sum over 1")
	cmd.Flags().Bool("dump", false, "print every weighted arc as from<TAB>to<TAB>weight")
	_ = cmd.MarkFlagRequired("graph")

	return cmd
}

func runWeights(cmd *cobra.Command, args []string) error {
	env, err := loadEnv(cmd)
	if err != nil {
		return err
	}

	graphPath, _ := cmd.Flags().GetString("graph")
	g, err := coverio.LoadGraph(graphPath)
	if err != nil {
		return err
	}
	policy, err := env.cfg.WeightPolicy()
	if err != nil {
		return err
	}
	weights, err := influence.BuildWeights(g, policy, influence.NewRand(env.seed()))
	if err != nil {
		return err
	}

	if dump, _ := cmd.Flags().GetBool("dump"); dump {
		for _, e := range g.Edges() {
			w, ok := weights.Weight(e.From, e.To)
			if !ok {
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%.6f\n", e.From, e.To, w)
		}
	}

	if err := influence.CheckInvariant(g, weights, env.cfg.Tolerance); err != nil {
		var violation *influence.InvariantViolation
		if errors.As(err, &violation) {
			env.metrics.RecordWeightViolation()
		}
		return err
	}

	fmt.Fprintln(cmd.ErrOrStderr(), successStyle.Render(
		fmt.Sprintf("ok: %d weighted arcs, policy %s", weights.Len(), policy)))
	return env.flush()
}
