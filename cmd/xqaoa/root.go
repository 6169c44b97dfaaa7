package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// app carries state shared by every subcommand after PersistentPreRunE.
type app struct {
	configPath string
	logLevel   string

	cfg Config
	log zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: zerolog.Nop()}

	root := &cobra.Command{
		Use:   "xqaoa",
		Short: "Closed-form XQAOA expected-cut evaluator",
		Long: `xqaoa computes the exact expected cut of a depth-one XQAOA ansatz on an
undirected graph without simulating the circuit, and searches angles that
maximise it.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(a.configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = a.logLevel
			}
			a.cfg = cfg
			a.log = newLogger(cfg.LogLevel, cmd.ErrOrStderr())
			a.log.Debug().Str("config", a.configPath).Str("command", cmd.Name()).Msg("configuration loaded")
			return nil
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML file with run settings")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "trace, debug, info, warn, error or disabled")

	root.AddCommand(
		newInfoCmd(a),
		newEvalCmd(a),
		newOptimizeCmd(a),
		newGenerateCmd(a),
	)

	return root
}
