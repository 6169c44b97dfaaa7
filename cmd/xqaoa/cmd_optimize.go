package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/xqaoa/graphio"
	"github.com/katalvlaran/xqaoa/optimizer"
)

func newOptimizeCmd(a *app) *cobra.Command {
	var (
		method   string
		restarts int
		workers  int
		maxIter  int
		seed     int64
		outPath  string
	)

	cmd := &cobra.Command{
		Use:   "optimize <graph>",
		Short: "Search angles that maximise the expected cut",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			flags := cmd.Flags()
			if flags.Changed("method") {
				cfg.Method = method
			}
			if flags.Changed("restarts") {
				cfg.Restarts = restarts
			}
			if flags.Changed("workers") {
				cfg.Workers = workers
			}
			if flags.Changed("max-iter") {
				cfg.MaxIterations = maxIter
			}
			if flags.Changed("seed") {
				cfg.Seed = seed
			}

			opts, err := cfg.options(a.log)
			if err != nil {
				return err
			}
			g, err := graphio.LoadGraph(args[0])
			if err != nil {
				return err
			}

			res, err := optimizer.Search(cmd.Context(), g, opts)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "cost: %.10f (restart %d of %d)\n", res.Cost, res.Best, len(res.Runs))

			if outPath == "" {
				return graphio.WriteAngles(cmd.OutOrStdout(), res.Angles)
			}
			f, err := os.Create(outPath)
			if err != nil {
				return err
			}
			if err := graphio.WriteAngles(f, res.Angles); err != nil {
				f.Close()
				return err
			}
			a.log.Info().Str("path", outPath).Int("angles", len(res.Angles)).Msg("angles written")

			return f.Close()
		},
	}

	d := defaultConfig()
	cmd.Flags().StringVar(&method, "method", d.Method, "nelder-mead, bfgs or lbfgs")
	cmd.Flags().IntVar(&restarts, "restarts", d.Restarts, "independent random starts")
	cmd.Flags().IntVar(&workers, "workers", d.Workers, "parallel restarts (0 = GOMAXPROCS)")
	cmd.Flags().IntVar(&maxIter, "max-iter", d.MaxIterations, "iterations per restart (0 = no limit)")
	cmd.Flags().Int64Var(&seed, "seed", d.Seed, "seed of the first restart")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write best angles here instead of stdout")

	return cmd
}
