package simulation

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/napolitain/armysim/internal/army"
	"github.com/napolitain/armysim/internal/models"
	"github.com/napolitain/armysim/internal/solver/training"
)

// Event records what a single step did
type Event struct {
	Step    int // 1-based
	Action  Action
	Army    string
	OK      bool
	Detail  string
	Outcome models.Outcome // attack only
	Report  string         // report only
}

// Result holds the armies after a run and the events produced on the way
type Result struct {
	Scenario string
	Armies   map[string]*army.Army
	Order    []string // Army names in declaration order
	Events   []Event
}

// Army returns the named army, or nil
func (r *Result) Army(name string) *army.Army {
	return r.Armies[name]
}

// Reports returns the text of every report step, in order
func (r *Result) Reports() []string {
	var reports []string
	for _, e := range r.Events {
		if e.Action == ActionReport {
			reports = append(reports, e.Report)
		}
	}
	return reports
}

type Option func(r *Runner)

func WithLogger(logger zerolog.Logger) Option {
	return func(r *Runner) {
		r.log = logger
	}
}

// Runner executes scenarios step by step
type Runner struct {
	log zerolog.Logger
}

func NewRunner(options ...Option) *Runner {
	r := &Runner{log: zerolog.Nop()}
	for _, option := range options {
		option(r)
	}
	return r
}

// Run validates sc and executes its steps in order. Rejected trainings and
// transformations are recorded as failed events; only invalid scenarios
// return an error.
func (r *Runner) Run(sc *Scenario) (*Result, error) {
	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	result := &Result{
		Scenario: sc.Name,
		Armies:   make(map[string]*army.Army, len(sc.Armies)),
	}
	for _, spec := range sc.Armies {
		options := []army.Option{army.WithLogger(r.log)}
		if spec.Gold != nil {
			options = append(options, army.WithGold(*spec.Gold))
		}
		a, err := army.New(spec.Civilization, options...)
		if err != nil {
			return nil, fmt.Errorf("army %q: %w", spec.Name, err)
		}
		result.Armies[spec.Name] = a
		result.Order = append(result.Order, spec.Name)
	}

	r.log.Info().Str("scenario", sc.Name).Int("armies", len(sc.Armies)).Int("steps", len(sc.Steps)).Msg("starting scenario")

	for i, step := range sc.Steps {
		event := r.runStep(result, step)
		event.Step = i + 1
		result.Events = append(result.Events, event)

		r.log.Debug().
			Int("step", event.Step).
			Str("action", string(event.Action)).
			Str("army", event.Army).
			Bool("ok", event.OK).
			Msg(event.Detail)
	}

	r.log.Info().Str("scenario", sc.Name).Msg("scenario finished")
	return result, nil
}

func (r *Runner) runStep(result *Result, step Step) Event {
	a := result.Armies[step.Army]
	event := Event{Action: step.Action, Army: step.Army}

	switch step.Action {
	case ActionTrain:
		event.OK = a.TrainUnit(step.Index)
		event.Detail = fmt.Sprintf("train unit %d", step.Index)

	case ActionTrainAll:
		trained := 0
		for i := 0; i < a.Len(); i++ {
			if a.TrainUnit(i) {
				trained++
			}
		}
		event.OK = trained == a.Len()
		event.Detail = fmt.Sprintf("trained %d of %d units", trained, a.Len())

	case ActionTransform:
		event.OK = a.TransformUnit(step.Index, step.Target)
		event.Detail = fmt.Sprintf("transform unit %d to %s", step.Index, step.Target)

	case ActionAttack:
		event.Outcome = a.Attack(result.Armies[step.Opponent])
		event.OK = event.Outcome.Fought()
		event.Detail = fmt.Sprintf("attack %s: %s", step.Opponent, event.Outcome)

	case ActionReport:
		event.OK = true
		event.Report = a.BattleHistoryReport()
		event.Detail = "battle history report"

	case ActionPlan:
		var options []training.Option
		if step.Budget > 0 {
			options = append(options, training.WithBudget(step.Budget))
		}
		options = append(options, training.WithLogger(r.log))
		plan := training.NewSolver(options...).Solve(a)
		applied, err := plan.Apply(a)
		event.OK = err == nil
		event.Detail = fmt.Sprintf("applied %d of %d planned actions (+%d strength, -%d gold)",
			applied, len(plan.Actions), plan.StrengthGained, plan.GoldSpent)
	}
	return event
}
