package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/xqaoa/graphio"
)

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info <graph>",
		Short: "Print node, edge, triangle and component counts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := graphio.LoadGraph(args[0])
			if err != nil {
				return err
			}

			maxDeg := 0
			for _, id := range g.Nodes() {
				if d, _ := g.Degree(id); d > maxDeg {
					maxDeg = d
				}
			}

			comps := topo.ConnectedComponents(g.Undirected())
			sizes := make([]int, len(comps))
			for i, c := range comps {
				sizes[i] = len(c)
			}
			sort.Sort(sort.Reverse(sort.IntSlice(sizes)))

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "nodes:      %d\n", g.NumNodes())
			fmt.Fprintf(out, "edges:      %d\n", g.NumEdges())
			fmt.Fprintf(out, "angles:     %d\n", 2*g.NumNodes()+g.NumEdges())
			fmt.Fprintf(out, "triangles:  %d\n", g.Triangles())
			fmt.Fprintf(out, "max degree: %d\n", maxDeg)
			fmt.Fprintf(out, "components: %d %v\n", len(comps), sizes)

			a.log.Debug().Str("graph", args[0]).Int("components", len(comps)).Msg("info")
			return nil
		},
	}
}
