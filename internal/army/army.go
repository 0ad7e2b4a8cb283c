package army

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/napolitain/armysim/internal/models"
)

const (
	// StartingGold is the treasury every army begins with
	StartingGold = 1000
	// VictoryReward is the gold paid to the winner of a battle
	VictoryReward = 100
	// LossesOnDefeat is how many of its strongest units the loser gives up
	LossesOnDefeat = 2
	// LossesOnDraw is how many units each side gives up in a draw
	LossesOnDraw = 1
)

type Option func(a *Army)

// WithLogger attaches a logger; armies are silent by default
func WithLogger(logger zerolog.Logger) Option {
	return func(a *Army) {
		a.log = logger
	}
}

// WithGold overrides the starting treasury
func WithGold(gold int) Option {
	return func(a *Army) {
		if gold >= 0 {
			a.gold = gold
		}
	}
}

// Army owns a roster of units, a gold treasury and its battle history.
// It has no internal locking: callers must not use the same armies from
// several goroutines at once, and Attack mutates both participants.
type Army struct {
	civilization models.Civilization
	gold         int
	units        []models.Unit
	history      []models.BattleRecord
	log          zerolog.Logger
}

// New creates an army from a case-insensitive civilization name
func New(civilization string, options ...Option) (*Army, error) {
	civ, err := models.ParseCivilization(civilization)
	if err != nil {
		return nil, err
	}
	return NewFromCivilization(civ, options...), nil
}

// NewFromCivilization creates an army with the civilization's preset roster
func NewFromCivilization(civ models.Civilization, options ...Option) *Army {
	a := &Army{ // Default values
		civilization: civ,
		gold:         StartingGold,
		units:        civ.Preset().Units(),
		log:          zerolog.Nop(),
	}
	for _, option := range options {
		option(a)
	}
	a.log = a.log.With().Str("army", civ.String()).Logger()
	return a
}

func (a *Army) Civilization() models.Civilization {
	return a.civilization
}

// Name is the label opponents record in their battle history
func (a *Army) Name() string {
	return a.civilization.String()
}

func (a *Army) Gold() int {
	return a.gold
}

// Len returns the roster size
func (a *Army) Len() int {
	return len(a.units)
}

// Unit returns a copy of the unit at index i
func (a *Army) Unit(i int) (models.Unit, bool) {
	if !a.inBounds(i) {
		return models.Unit{}, false
	}
	return a.units[i], true
}

// Units returns a copy of the roster
func (a *Army) Units() []models.Unit {
	units := make([]models.Unit, len(a.units))
	copy(units, a.units)
	return units
}

// History returns a copy of the battle history, oldest first
func (a *Army) History() []models.BattleRecord {
	history := make([]models.BattleRecord, len(a.history))
	copy(history, a.history)
	return history
}

// Clone returns an independent copy of the army. Options apply to the copy
// only; without WithLogger it shares the original's logger.
func (a *Army) Clone(options ...Option) *Army {
	c := &Army{
		civilization: a.civilization,
		gold:         a.gold,
		units:        a.Units(),
		history:      a.History(),
		log:          a.log,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// TotalStrength sums the strength of every unit in the roster
func (a *Army) TotalStrength() int {
	total := 0
	for _, u := range a.units {
		total += u.Strength
	}
	return total
}

// TrainUnit pays for one training session of the unit at index i.
// It returns false, leaving the army untouched, if the index is out of
// range or the treasury cannot cover the cost.
func (a *Army) TrainUnit(i int) bool {
	if !a.inBounds(i) {
		return false
	}

	u := &a.units[i]
	if a.gold < u.TrainingCost {
		a.log.Debug().Int("index", i).Int("gold", a.gold).Int("cost", u.TrainingCost).Msg("cannot afford training")
		return false
	}

	a.gold -= u.TrainingCost
	u.Train()
	a.log.Debug().Int("index", i).Str("unit", string(u.Type)).Int("strength", u.Strength).Msg("unit trained")
	return true
}

// TransformUnit upgrades the unit at index i to a case-insensitive target type
func (a *Army) TransformUnit(i int, target string) bool {
	ut, err := models.ParseUnitType(target)
	if err != nil {
		return false
	}
	return a.TransformUnitTo(i, ut)
}

// TransformUnitTo replaces the unit at index i with one of the target type,
// keeping its age and training bonus. Only the pikeman->archer and
// archer->knight edges exist; anything else, an out-of-range index or an
// empty treasury returns false with no change.
func (a *Army) TransformUnitTo(i int, target models.UnitType) bool {
	if !a.inBounds(i) {
		return false
	}

	current := a.units[i]
	tr, ok := models.LookupTransformation(current.Type, target)
	if !ok {
		return false
	}
	if a.gold < tr.Cost {
		a.log.Debug().Int("index", i).Int("gold", a.gold).Int("cost", tr.Cost).Msg("cannot afford transformation")
		return false
	}

	a.gold -= tr.Cost
	a.units[i] = tr.Apply(current)
	a.log.Debug().
		Int("index", i).
		Str("from", string(tr.From)).
		Str("to", string(tr.To)).
		Int("strength", a.units[i].Strength).
		Msg("unit transformed")
	return true
}

// BattleHistoryReport renders the battle history, one line per battle
func (a *Army) BattleHistoryReport() string {
	header := "Army of " + a.Name()
	if len(a.history) == 0 {
		return header + "\nNo battles recorded"
	}

	lines := make([]string, 0, len(a.history)+1)
	lines = append(lines, header)
	for _, record := range a.history {
		lines = append(lines, record.String())
	}
	return strings.Join(lines, "\n")
}

func (a *Army) inBounds(i int) bool {
	return i >= 0 && i < len(a.units)
}
