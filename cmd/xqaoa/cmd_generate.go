package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/xqaoa/builder"
	"github.com/katalvlaran/xqaoa/graphio"
)

// familyParams are the generate flags a family constructor may read.
type familyParams struct {
	n, m, d int
	p       float64
	center  bool
}

var families = map[string]func(fp familyParams) builder.Constructor{
	"complete":       func(fp familyParams) builder.Constructor { return builder.Complete(fp.n) },
	"cycle":          func(fp familyParams) builder.Constructor { return builder.Cycle(fp.n) },
	"path":           func(fp familyParams) builder.Constructor { return builder.Path(fp.n) },
	"star":           func(fp familyParams) builder.Constructor { return builder.Star(fp.n) },
	"wheel":          func(fp familyParams) builder.Constructor { return builder.Wheel(fp.n) },
	"grid":           func(fp familyParams) builder.Constructor { return builder.Grid(fp.n, fp.m) },
	"bipartite":      func(fp familyParams) builder.Constructor { return builder.CompleteBipartite(fp.n, fp.m) },
	"random-sparse":  func(fp familyParams) builder.Constructor { return builder.RandomSparse(fp.n, fp.p) },
	"random-regular": func(fp familyParams) builder.Constructor { return builder.RandomRegular(fp.n, fp.d) },
	"hexagram":       func(familyParams) builder.Constructor { return builder.Hexagram(builder.HexDefault) },
	"hexagram8":      func(familyParams) builder.Constructor { return builder.Hexagram(builder.HexMedium) },
}

func init() {
	for p := builder.Tetrahedron; p <= builder.Icosahedron; p++ {
		p := p
		families[p.String()] = func(fp familyParams) builder.Constructor { return builder.PlatonicSolid(p, fp.center) }
	}
}

func familyNames() []string {
	names := make([]string, 0, len(families))
	for k := range families {
		names = append(names, k)
	}
	sort.Strings(names)

	return names
}

func newGenerateCmd(a *app) *cobra.Command {
	var (
		fp     familyParams
		seed   int64
		format string
	)

	cmd := &cobra.Command{
		Use:   "generate <family>",
		Short: "Write a generated graph to stdout",
		Long: "generate emits one of: " + strings.Join(familyNames(), ", ") + `.
grid and bipartite use --n and --m as the two dimensions; random-sparse reads
--p, random-regular reads --d and the Platonic solids read --center.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mk, ok := families[args[0]]
			if !ok {
				return fmt.Errorf("unknown family %q (want one of %s)", args[0], strings.Join(familyNames(), ", "))
			}
			f, err := graphio.ParseFormat(format)
			if err != nil {
				return err
			}

			g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(seed)}, mk(fp))
			if err != nil {
				return err
			}
			a.log.Debug().Str("family", args[0]).Int("nodes", g.NumNodes()).Int("edges", g.NumEdges()).Msg("generated")

			return graphio.WriteGraph(cmd.OutOrStdout(), g, f)
		},
	}

	cmd.Flags().IntVar(&fp.n, "n", 4, "node count, or first dimension")
	cmd.Flags().IntVar(&fp.m, "m", 2, "second dimension for grid and bipartite")
	cmd.Flags().IntVar(&fp.d, "d", 3, "degree for random-regular")
	cmd.Flags().Float64Var(&fp.p, "p", 0.5, "edge probability for random-sparse")
	cmd.Flags().BoolVar(&fp.center, "center", false, "add a hub joined to every node of a Platonic solid")
	cmd.Flags().Int64Var(&seed, "seed", 1, "seed for random families")
	cmd.Flags().StringVar(&format, "format", "edgelist", "edgelist or yaml")

	return cmd
}
