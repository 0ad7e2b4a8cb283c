package simulation

import (
	"fmt"

	"github.com/napolitain/armysim/internal/models"
)

// Action names a scenario step
type Action string

const (
	ActionTrain     Action = "train"
	ActionTrainAll  Action = "train_all"
	ActionTransform Action = "transform"
	ActionAttack    Action = "attack"
	ActionReport    Action = "report"
	ActionPlan      Action = "plan"
)

// AllActions returns every supported step action
func AllActions() []Action {
	return []Action{ActionTrain, ActionTrainAll, ActionTransform, ActionAttack, ActionReport, ActionPlan}
}

// ArmySpec declares an army taking part in a scenario
type ArmySpec struct {
	Name         string // Key used by steps
	Civilization string
	Gold         *int // nil keeps the default treasury
}

// Step is one scripted operation against a named army
type Step struct {
	Action   Action
	Army     string
	Index    int    // train, transform
	Target   string // transform
	Opponent string // attack
	Budget   int    // plan; 0 spends the whole treasury
}

// Scenario is an ordered script of steps over a set of armies
type Scenario struct {
	Name   string
	Armies []ArmySpec
	Steps  []Step
}

// Validate checks army declarations and step references before anything runs
func (sc *Scenario) Validate() error {
	if len(sc.Armies) == 0 {
		return fmt.Errorf("scenario %q declares no armies", sc.Name)
	}

	names := make(map[string]bool)
	for i, spec := range sc.Armies {
		if spec.Name == "" {
			return fmt.Errorf("army %d: missing name", i+1)
		}
		if names[spec.Name] {
			return fmt.Errorf("army %d: duplicate name %q", i+1, spec.Name)
		}
		names[spec.Name] = true

		if _, err := models.ParseCivilization(spec.Civilization); err != nil {
			return fmt.Errorf("army %q: %w", spec.Name, err)
		}
		if spec.Gold != nil && *spec.Gold < 0 {
			return fmt.Errorf("army %q: negative gold %d", spec.Name, *spec.Gold)
		}
	}

	for i, step := range sc.Steps {
		if err := step.validate(names); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return nil
}

func (s Step) validate(names map[string]bool) error {
	if !names[s.Army] {
		return fmt.Errorf("unknown army %q", s.Army)
	}

	switch s.Action {
	case ActionTrain, ActionTrainAll, ActionReport:
	case ActionTransform:
		if _, err := models.ParseUnitType(s.Target); err != nil {
			return err
		}
	case ActionAttack:
		if !names[s.Opponent] {
			return fmt.Errorf("unknown opponent %q", s.Opponent)
		}
	case ActionPlan:
		if s.Budget < 0 {
			return fmt.Errorf("negative budget %d", s.Budget)
		}
	default:
		return fmt.Errorf("unknown action %q", s.Action)
	}
	return nil
}

// DemoScenario trains the whole Chinese army, sends it against the English
// and then the Byzantines, and finally upgrades its two pikemen to knights
func DemoScenario() *Scenario {
	return &Scenario{
		Name: "demo",
		Armies: []ArmySpec{
			{Name: "chinese", Civilization: "chinese"},
			{Name: "english", Civilization: "english"},
			{Name: "byzantine", Civilization: "byzantine"},
		},
		Steps: []Step{
			{Action: ActionTrainAll, Army: "chinese"},
			{Action: ActionAttack, Army: "chinese", Opponent: "english"},
			{Action: ActionReport, Army: "chinese"},
			{Action: ActionReport, Army: "english"},
			{Action: ActionAttack, Army: "chinese", Opponent: "byzantine"},
			{Action: ActionReport, Army: "chinese"},
			{Action: ActionReport, Army: "byzantine"},
			{Action: ActionTransform, Army: "chinese", Index: 0, Target: "archer"},
			{Action: ActionTransform, Army: "chinese", Index: 1, Target: "archer"},
			{Action: ActionTransform, Army: "chinese", Index: 0, Target: "knight"},
			{Action: ActionTransform, Army: "chinese", Index: 1, Target: "knight"},
		},
	}
}
