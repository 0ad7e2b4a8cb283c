package training

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/napolitain/armysim/internal/army"
	"github.com/napolitain/armysim/internal/models"
)

// ActionKind distinguishes training from transformation
type ActionKind string

const (
	Train     ActionKind = "train"
	Transform ActionKind = "transform"
)

// Action is one gold-spending step of a plan
type Action struct {
	Kind   ActionKind
	Index  int // Roster index of the unit
	Unit   models.UnitType
	Target models.UnitType // Only set for transformations
	Cost   int
	Gain   int
}

// ROI returns strength gained per gold for this action
func (a Action) ROI() float64 {
	return ROIMetric{StrengthGain: float64(a.Gain), GoldCost: float64(a.Cost)}.Calculate()
}

func (a Action) String() string {
	if a.Kind == Transform {
		return fmt.Sprintf("transform #%d %s->%s (-%d gold, +%d strength)", a.Index, a.Unit, a.Target, a.Cost, a.Gain)
	}
	return fmt.Sprintf("train #%d %s (-%d gold, +%d strength)", a.Index, a.Unit, a.Cost, a.Gain)
}

// Plan is an ordered list of actions produced by the solver
type Plan struct {
	Actions        []Action
	GoldSpent      int
	StrengthGained int
}

// Apply executes the plan against a. It stops at the first action the army
// rejects and returns how many actions were applied.
func (p *Plan) Apply(a *army.Army) (int, error) {
	for i, action := range p.Actions {
		var ok bool
		switch action.Kind {
		case Train:
			ok = a.TrainUnit(action.Index)
		case Transform:
			ok = a.TransformUnitTo(action.Index, action.Target)
		default:
			return i, fmt.Errorf("action %d: unknown kind %q", i+1, action.Kind)
		}
		if !ok {
			return i, fmt.Errorf("action %d rejected: %s", i+1, action)
		}
	}
	return len(p.Actions), nil
}

// Count returns how many actions of the given kind target each unit type
func (p *Plan) Count(kind ActionKind) map[models.UnitType]int {
	counts := make(map[models.UnitType]int)
	for _, action := range p.Actions {
		if action.Kind == kind {
			counts[action.Unit]++
		}
	}
	return counts
}

type Option func(s *Solver)

// WithBudget caps the gold the plan may spend
func WithBudget(gold int) Option {
	return func(s *Solver) {
		if gold >= 0 {
			s.budget = gold
		}
	}
}

// WithTransformations toggles whether transformations are considered
func WithTransformations(enabled bool) Option {
	return func(s *Solver) {
		s.transformations = enabled
	}
}

// WithMaxActions caps the number of actions in a plan
func WithMaxActions(n int) Option {
	return func(s *Solver) {
		if n > 0 {
			s.maxActions = n
		}
	}
}

// WithMaxTrainingsPerUnit caps how often a single roster slot is trained
func WithMaxTrainingsPerUnit(n int) Option {
	return func(s *Solver) {
		if n > 0 {
			s.maxTrainings = n
		}
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(s *Solver) {
		s.log = logger
	}
}

// Solver greedily spends an army's gold on the action with the best
// strength-per-gold return until nothing more is affordable
type Solver struct {
	budget          int // -1 spends the whole treasury
	transformations bool
	maxActions      int // 0 means unlimited
	maxTrainings    int // 0 means unlimited
	log             zerolog.Logger
}

// NewSolver creates a training solver with default settings
func NewSolver(options ...Option) *Solver {
	s := &Solver{ // Default values
		budget:          -1,
		transformations: true,
		log:             zerolog.Nop(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// Solve builds a plan for a without modifying it
func (s *Solver) Solve(a *army.Army) *Plan {
	sim := a.Clone(army.WithLogger(zerolog.Nop()))

	budget := sim.Gold()
	if s.budget >= 0 && s.budget < budget {
		budget = s.budget
	}

	plan := &Plan{}
	trainings := make(map[int]int)
	for s.maxActions == 0 || len(plan.Actions) < s.maxActions {
		action, ok := s.bestAction(sim, budget-plan.GoldSpent, trainings)
		if !ok {
			break
		}

		var applied bool
		if action.Kind == Train {
			applied = sim.TrainUnit(action.Index)
			trainings[action.Index]++
		} else {
			applied = sim.TransformUnitTo(action.Index, action.Target)
		}
		if !applied {
			s.log.Warn().Str("army", a.Name()).Stringer("action", action).Msg("dropping inapplicable action")
			break
		}

		plan.Actions = append(plan.Actions, action)
		plan.GoldSpent += action.Cost
		plan.StrengthGained += action.Gain
	}

	s.log.Debug().
		Str("army", a.Name()).
		Int("budget", budget).
		Int("actions", len(plan.Actions)).
		Int("gold_spent", plan.GoldSpent).
		Int("strength_gained", plan.StrengthGained).
		Msg("training plan ready")
	return plan
}

func (s *Solver) bestAction(sim *army.Army, remaining int, trainings map[int]int) (Action, bool) {
	var best Action
	found := false
	consider := func(candidate Action) {
		if candidate.Cost > remaining {
			return
		}
		if !found || better(candidate, best) {
			best = candidate
			found = true
		}
	}

	for i, u := range sim.Units() {
		if s.maxTrainings == 0 || trainings[i] < s.maxTrainings {
			consider(Action{Kind: Train, Index: i, Unit: u.Type, Cost: u.TrainingCost, Gain: u.TrainingGain})
		}
		if !s.transformations {
			continue
		}
		for _, tr := range models.AllTransformations() {
			if tr.From != u.Type {
				continue
			}
			consider(Action{
				Kind:   Transform,
				Index:  i,
				Unit:   u.Type,
				Target: tr.To,
				Cost:   tr.Cost,
				Gain:   tr.StrengthGain(),
			})
		}
	}
	return best, found
}
