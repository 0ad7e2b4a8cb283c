package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/napolitain/armysim/internal/army"
	"github.com/napolitain/armysim/internal/loader"
	"github.com/napolitain/armysim/internal/models"
	"github.com/napolitain/armysim/internal/simulation"
	"github.com/napolitain/armysim/internal/solver/training"
)

func (a *app) unitsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "units",
		Short: "Show unit definitions and transformation costs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			a.title(w, "📋 Units")
			printUnitCatalog(w)
			a.title(w, "🔁 Transformations")
			printTransformations(w)
			return nil
		},
	}
}

func (a *app) rosterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "roster [civilization]",
		Short: "Show civilization presets, or the full roster of one civilization",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if len(args) == 0 {
				a.title(w, "🏰 Civilizations")
				printPresets(w)
				return nil
			}

			ar, err := a.newArmy(args[0])
			if err != nil {
				return err
			}
			a.title(w, fmt.Sprintf("🏰 Army of %s", ar.Name()))
			printUnits(w, ar)
			fmt.Fprintf(w, "Total strength: %d, gold: %d\n", ar.TotalStrength(), ar.Gold())
			return nil
		},
	}
}

func (a *app) battleCmd() *cobra.Command {
	var trainAll, plan bool
	var budget int

	cmd := &cobra.Command{
		Use:   "battle <attacker> <defender>",
		Short: "Pit two freshly raised civilization armies against each other",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()

			attacker, err := a.newArmy(args[0])
			if err != nil {
				return err
			}
			defender, err := a.newArmy(args[1])
			if err != nil {
				return err
			}

			if trainAll {
				trained := 0
				for i := 0; i < attacker.Len(); i++ {
					if attacker.TrainUnit(i) {
						trained++
					}
				}
				a.log.Info().Int("trained", trained).Msg("attacker trained")
			}
			if plan {
				p := training.NewSolver(training.WithBudget(budget), training.WithLogger(a.log)).Solve(attacker)
				if _, err := p.Apply(attacker); err != nil {
					return fmt.Errorf("failed to apply training plan: %w", err)
				}
			}

			a.title(w, fmt.Sprintf("⚔️  %s attacks %s", attacker.Name(), defender.Name()))
			outcome := attacker.Attack(defender)
			outcomeColor(outcome).Fprintf(w, "Outcome: %s\n", outcome)

			a.title(w, "📜 Battle Reports")
			a.printReport(w, attacker.BattleHistoryReport())
			a.printReport(w, defender.BattleHistoryReport())

			a.title(w, "📊 Armies")
			armies := map[string]*army.Army{"attacker": attacker, "defender": defender}
			printArmies(w, []string{"attacker", "defender"}, armies)
			return nil
		},
	}

	cmd.Flags().BoolVar(&trainAll, "train-all", false, "Train every attacker unit once before the battle")
	cmd.Flags().BoolVar(&plan, "plan", false, "Spend the attacker's gold with the training planner before the battle")
	cmd.Flags().IntVar(&budget, "budget", -1, "Gold the planner may spend (-1 spends the whole treasury)")
	return cmd
}

func (a *app) planCmd() *cobra.Command {
	var budget, maxActions, maxPerUnit, gold int
	var noTransform, apply bool

	cmd := &cobra.Command{
		Use:   "plan <civilization>",
		Short: "Plan how to spend an army's gold for the most strength",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()

			options := []army.Option{army.WithLogger(a.log)}
			if gold >= 0 {
				options = append(options, army.WithGold(gold))
			}
			ar, err := army.New(args[0], options...)
			if err != nil {
				return err
			}

			solver := training.NewSolver(
				training.WithBudget(budget),
				training.WithMaxActions(maxActions),
				training.WithMaxTrainingsPerUnit(maxPerUnit),
				training.WithTransformations(!noTransform),
				training.WithLogger(a.log),
			)
			p := solver.Solve(ar)

			a.title(w, fmt.Sprintf("🔄 Training plan for %s", ar.Name()))
			if len(p.Actions) == 0 {
				mutedColor.Fprintln(w, "Nothing affordable")
			} else {
				printPlan(w, p)
			}
			fmt.Fprintf(w, "Gold spent: %d of %d\n", p.GoldSpent, ar.Gold())
			fmt.Fprintf(w, "Strength: %d -> %d (+%d)\n", ar.TotalStrength(), ar.TotalStrength()+p.StrengthGained, p.StrengthGained)

			if apply {
				applied, err := p.Apply(ar)
				if err != nil {
					return fmt.Errorf("applied %d of %d actions: %w", applied, len(p.Actions), err)
				}
				successColor.Fprintf(w, "✓ Applied %d actions\n", applied)
				printUnits(w, ar)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&budget, "budget", -1, "Gold the plan may spend (-1 spends the whole treasury)")
	cmd.Flags().IntVar(&gold, "gold", -1, "Starting treasury (-1 keeps the default)")
	cmd.Flags().IntVar(&maxActions, "max-actions", 0, "Maximum number of actions (0 is unlimited)")
	cmd.Flags().IntVar(&maxPerUnit, "max-per-unit", 0, "Maximum trainings per unit (0 is unlimited)")
	cmd.Flags().BoolVar(&noTransform, "no-transform", false, "Only consider training")
	cmd.Flags().BoolVar(&apply, "apply", false, "Apply the plan and show the resulting roster")
	return cmd
}

func (a *app) demoCmd() *cobra.Command {
	var dump bool

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the built-in demo campaign",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sc := simulation.DemoScenario()
			if dump {
				data, err := loader.MarshalScenario(sc)
				if err != nil {
					return fmt.Errorf("failed to encode demo scenario: %w", err)
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			return a.runScenario(cmd.OutOrStdout(), sc)
		},
	}

	cmd.Flags().BoolVar(&dump, "yaml", false, "Print the demo as a scenario file instead of running it")
	return cmd
}

func (a *app) runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <scenario.yaml>",
		Short: "Run a scenario file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := loader.LoadScenario(args[0])
			if err != nil {
				return err
			}
			return a.runScenario(cmd.OutOrStdout(), sc)
		},
	}
}

func (a *app) runScenario(w io.Writer, sc *simulation.Scenario) error {
	result, err := simulation.NewRunner(simulation.WithLogger(a.log)).Run(sc)
	if err != nil {
		return err
	}
	a.printResult(w, result)
	return nil
}

func (a *app) newArmy(civilization string) (*army.Army, error) {
	civ, err := models.ParseCivilization(civilization)
	if err != nil {
		return nil, err
	}
	return army.NewFromCivilization(civ, army.WithLogger(a.log)), nil
}
