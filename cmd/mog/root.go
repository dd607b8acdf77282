package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app carries the state shared by all subcommands.
type app struct {
	verbose    bool
	configPath string

	cfg    Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: DefaultConfig(), logger: zap.NewNop()}

	root := &cobra.Command{
		Use:          "mog",
		Short:        "Miracle Octad Generator: Golay code and sextet labelling tools",
		SilenceUsage: true,
		Long: `mog works on the 24 points of the Miracle Octad Generator.

Points are given by their canonical index 0..23: column h (0..5) and row r
(0..3) form the index h + 6*r.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if a.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger

			if a.configPath == "" {
				return nil
			}
			cfg, err := LoadConfig(a.configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger.Debug("Config loaded", zap.String("path", a.configPath), zap.String("format", string(cfg.Format)))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to a YAML config file")

	root.AddCommand(
		newCodewordCmd(a),
		newOctadCmd(a),
		newSextetCmd(a),
		newCyclesCmd(a),
		newLabelCmd(a),
	)
	return root
}
