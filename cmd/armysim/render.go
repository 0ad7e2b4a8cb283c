package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/napolitain/armysim/internal/army"
	"github.com/napolitain/armysim/internal/models"
	"github.com/napolitain/armysim/internal/simulation"
	"github.com/napolitain/armysim/internal/solver/training"
)

var (
	titleColor   = color.New(color.FgCyan, color.Bold)
	successColor = color.New(color.FgGreen, color.Bold)
	failureColor = color.New(color.FgRed, color.Bold)
	drawColor    = color.New(color.FgYellow, color.Bold)
	mutedColor   = color.New(color.FgHiBlack)
)

func (a *app) title(w io.Writer, text string) {
	if a.cfg.Quiet {
		return
	}
	titleColor.Fprintf(w, "\n%s\n", text)
}

func (a *app) reportStyle() lipgloss.Style {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)
	if !a.cfg.NoColor {
		style = style.BorderForeground(lipgloss.Color("6"))
	}
	return style
}

func (a *app) printReport(w io.Writer, report string) {
	fmt.Fprintln(w, a.reportStyle().Render(report))
}

func outcomeColor(o models.Outcome) *color.Color {
	switch o {
	case models.Victory:
		return successColor
	case models.Defeat:
		return failureColor
	case models.Draw:
		return drawColor
	default:
		return mutedColor
	}
}

func printUnitCatalog(w io.Writer) {
	table := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"Unit", "Tier", "Base Strength", "Training Cost", "Training Gain", "Strength/Gold"}),
	)

	for _, def := range models.AllUnitDefinitions() {
		row := []string{
			def.Name,
			fmt.Sprintf("%d", def.Tier),
			fmt.Sprintf("%d", def.BaseStrength),
			fmt.Sprintf("%d", def.TrainingCost),
			fmt.Sprintf("%d", def.TrainingGain),
			fmt.Sprintf("%.2f", def.TrainingROI()),
		}
		table.Append(row)
	}
	table.Render()
}

func printTransformations(w io.Writer) {
	table := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"From", "To", "Cost", "Strength Gain"}),
	)

	for _, t := range models.AllTransformations() {
		row := []string{
			string(t.From),
			string(t.To),
			fmt.Sprintf("%d", t.Cost),
			fmt.Sprintf("+%d", t.StrengthGain()),
		}
		table.Append(row)
	}
	table.Render()
}

func printPresets(w io.Writer) {
	table := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"Civilization", "Pikemen", "Archers", "Knights", "Units", "Strength"}),
	)

	for _, civ := range models.AllCivilizations() {
		preset := civ.Preset()
		row := []string{
			civ.String(),
			fmt.Sprintf("%d", preset.Pikemen),
			fmt.Sprintf("%d", preset.Archers),
			fmt.Sprintf("%d", preset.Knights),
			fmt.Sprintf("%d", preset.TotalUnits()),
			fmt.Sprintf("%d", preset.TotalStrength()),
		}
		table.Append(row)
	}
	table.Render()
}

func printUnits(w io.Writer, a *army.Army) {
	table := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"#", "Unit", "Strength", "Training Bonus", "Age"}),
	)

	for i, u := range a.Units() {
		row := []string{
			fmt.Sprintf("%d", i),
			string(u.Type),
			fmt.Sprintf("%d", u.Strength),
			fmt.Sprintf("+%d", u.TrainingBonus()),
			fmt.Sprintf("%d", u.AgeYears),
		}
		table.Append(row)
	}
	table.Render()
}

// printArmies shows one summary row per army, keyed by the name it was given
func printArmies(w io.Writer, names []string, armies map[string]*army.Army) {
	table := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"Army", "Civilization", "Units", "Strength", "Gold", "Battles"}),
	)

	for _, name := range names {
		a := armies[name]
		row := []string{
			name,
			a.Name(),
			fmt.Sprintf("%d", a.Len()),
			fmt.Sprintf("%d", a.TotalStrength()),
			fmt.Sprintf("%d", a.Gold()),
			fmt.Sprintf("%d", len(a.History())),
		}
		table.Append(row)
	}
	table.Render()
}

func printPlan(w io.Writer, plan *training.Plan) {
	table := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"Step", "Action", "Unit #", "Unit", "Cost", "Gain", "ROI"}),
	)

	for i, action := range plan.Actions {
		unit := string(action.Unit)
		if action.Kind == training.Transform {
			unit = fmt.Sprintf("%s -> %s", action.Unit, action.Target)
		}
		row := []string{
			fmt.Sprintf("%d", i+1),
			string(action.Kind),
			fmt.Sprintf("%d", action.Index),
			unit,
			fmt.Sprintf("%d", action.Cost),
			fmt.Sprintf("+%d", action.Gain),
			fmt.Sprintf("%.3f", action.ROI()),
		}
		table.Append(row)
	}
	table.Render()
}

func printEvents(w io.Writer, events []simulation.Event) {
	table := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"Step", "Action", "Army", "Result", "Detail"}),
	)

	for _, e := range events {
		result := "ok"
		switch {
		case e.Action == simulation.ActionAttack:
			result = string(e.Outcome)
		case !e.OK:
			result = "rejected"
		}
		row := []string{
			fmt.Sprintf("%d", e.Step),
			string(e.Action),
			e.Army,
			result,
			e.Detail,
		}
		table.Append(row)
	}
	table.Render()
}

func (a *app) printResult(w io.Writer, result *simulation.Result) {
	a.title(w, fmt.Sprintf("Scenario: %s", result.Scenario))
	printEvents(w, result.Events)

	reports := result.Reports()
	if len(reports) > 0 {
		a.title(w, "Battle Reports")
		for _, report := range reports {
			a.printReport(w, report)
		}
	}

	a.title(w, "Final Armies")
	printArmies(w, result.Order, result.Armies)
}
