package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/napolitain/armysim/internal/config"
)

// app carries the runtime configuration shared by every subcommand
type app struct {
	cfg config.Config
	log zerolog.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		color.New(color.FgRed, color.Bold).Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: config.Default(), log: zerolog.Nop()}

	rootCmd := &cobra.Command{
		Use:   "armysim",
		Short: "Civilization army battle simulator",
		Long: `Simulates civilization armies of pikemen, archers and knights.
Armies spend gold to train and transform units, fight deterministic battles
and keep a history of every battle they took part in.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfg.LogLevel, "log-level", a.cfg.LogLevel, "Log level (trace, debug, info, warn, error, disabled)")
	flags.BoolVar(&a.cfg.NoColor, "no-color", false, "Disable colored output")
	flags.BoolVarP(&a.cfg.Quiet, "quiet", "q", false, "Only print results, no section titles")

	rootCmd.AddCommand(
		a.unitsCmd(),
		a.rosterCmd(),
		a.battleCmd(),
		a.planCmd(),
		a.demoCmd(),
		a.runCmd(),
	)
	return rootCmd
}

func (a *app) setup(cmd *cobra.Command) error {
	if err := a.cfg.Validate(); err != nil {
		return err
	}
	if a.cfg.NoColor {
		color.NoColor = true
	}

	logger, err := a.cfg.Logger(cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	a.log = logger.With().Str("command", cmd.Name()).Logger()
	return nil
}
