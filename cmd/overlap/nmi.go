package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dd0wney/cluso-overlap/pkg/community"
	"github.com/dd0wney/cluso-overlap/pkg/coverio"
)

func newNMICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "nmi COVER_A COVER_B",
		Short: "Normalized mutual information between two cover files",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, _, err := coverio.LoadCover(args[0])
			if err != nil {
				return err
			}
			b, _, err := coverio.LoadCover(args[1])
			if err != nil {
				return err
			}

			score, err := community.NMI(a, b, community.UniverseSize(a, b))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%.6f\n", score)
			return nil
		},
	}
}
