package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCivilization is returned when a name matches none of the presets
var ErrUnknownCivilization = errors.New("unknown civilization")

// Civilization selects the starting roster of an army
type Civilization string

const (
	Chinese   Civilization = "chinese"
	English   Civilization = "english"
	Byzantine Civilization = "byzantine"
)

// AllCivilizations returns all playable civilizations
func AllCivilizations() []Civilization {
	return []Civilization{Chinese, English, Byzantine}
}

func (c Civilization) String() string {
	return string(c)
}

// ParseCivilization resolves a case-insensitive civilization name
func ParseCivilization(name string) (Civilization, error) {
	civ := Civilization(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := rosterPresets[civ]; ok {
		return civ, nil
	}
	return "", fmt.Errorf("%w: %s. Valid options: chinese, english, byzantine", ErrUnknownCivilization, name)
}

// RosterPreset holds the starting unit counts of a civilization (strict typing, no maps)
type RosterPreset struct {
	Pikemen int
	Archers int
	Knights int
}

var rosterPresets = map[Civilization]RosterPreset{
	Chinese:   {Pikemen: 2, Archers: 25, Knights: 2},
	English:   {Pikemen: 10, Archers: 10, Knights: 10},
	Byzantine: {Pikemen: 5, Archers: 8, Knights: 15},
}

// Preset returns the starting roster of the civilization
func (c Civilization) Preset() RosterPreset {
	return rosterPresets[c]
}

// Get returns count for a unit type
func (r RosterPreset) Get(ut UnitType) int {
	switch ut {
	case Pikeman:
		return r.Pikemen
	case Archer:
		return r.Archers
	case Knight:
		return r.Knights
	}
	return 0
}

// TotalUnits returns total count of all units
func (r RosterPreset) TotalUnits() int {
	return r.Pikemen + r.Archers + r.Knights
}

// TotalStrength returns the combined base strength of the roster
func (r RosterPreset) TotalStrength() int {
	total := 0
	for _, ut := range AllUnitTypes() {
		total += r.Get(ut) * ut.BaseStrength()
	}
	return total
}

// Units builds fresh units: pikemen first, then archers, then knights
func (r RosterPreset) Units() []Unit {
	units := make([]Unit, 0, r.TotalUnits())
	for _, ut := range AllUnitTypes() {
		for i := 0; i < r.Get(ut); i++ {
			units = append(units, NewUnit(ut))
		}
	}
	return units
}
