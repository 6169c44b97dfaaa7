package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/xqaoa/ansatz"
	"github.com/katalvlaran/xqaoa/graphio"
)

func newEvalCmd(a *app) *cobra.Command {
	var (
		anglesPath string
		perEdge    bool
	)

	cmd := &cobra.Command{
		Use:   "eval <graph>",
		Short: "Evaluate the expected cut at the given angles",
		Long: `eval prints the expected cut of the graph at the angles read from --angles
(alphas, betas, then gammas in ascending edge order). Without --angles every
angle is zero.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := graphio.LoadGraph(args[0])
			if err != nil {
				return err
			}
			ev, err := ansatz.New(g)
			if err != nil {
				return err
			}

			if anglesPath != "" {
				f, err := os.Open(anglesPath)
				if err != nil {
					return err
				}
				angles, err := graphio.ReadAngles(f)
				f.Close()
				if err != nil {
					return fmt.Errorf("%s: %w", anglesPath, err)
				}
				if err := ev.SetAngles(angles); err != nil {
					return err
				}
			}

			total := ev.TotalCost()
			a.log.Debug().Int("edges", g.NumEdges()).Float64("cost", total).Msg("evaluated")

			out := cmd.OutOrStdout()
			if perEdge {
				for _, k := range g.EdgeKeys() {
					c, _ := ev.EdgeCost(k)
					fmt.Fprintf(out, "%s\t%.10f\n", k, c)
				}
			}
			fmt.Fprintf(out, "cost: %.10f\n", total)

			return nil
		},
	}

	cmd.Flags().StringVar(&anglesPath, "angles", "", "file with 2n+m angles")
	cmd.Flags().BoolVar(&perEdge, "edges", false, "also print the cost of every edge")

	return cmd
}
