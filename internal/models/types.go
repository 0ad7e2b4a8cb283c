package models

import (
	"fmt"
	"strings"
)

// UnitType represents the different unit archetypes an army can field
type UnitType string

const (
	Pikeman UnitType = "pikeman"
	Archer  UnitType = "archer"
	Knight  UnitType = "knight"
)

// AllUnitTypes returns all unit types in roster order
func AllUnitTypes() []UnitType {
	return []UnitType{Pikeman, Archer, Knight}
}

// ParseUnitType resolves a case-insensitive unit name
func ParseUnitType(name string) (UnitType, error) {
	ut := UnitType(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range AllUnitTypes() {
		if ut == known {
			return known, nil
		}
	}
	return "", fmt.Errorf("unknown unit type: %q", name)
}

// Outcome is the result of a battle from one army's point of view
type Outcome string

const (
	Victory Outcome = "victory"
	Defeat  Outcome = "defeat"
	Draw    Outcome = "draw"

	// NoUnits and NoTarget are returned when a battle could not take place
	NoUnits  Outcome = "no_units"
	NoTarget Outcome = "no_target"
)

// Invert returns the outcome seen from the opposing side
func (o Outcome) Invert() Outcome {
	switch o {
	case Victory:
		return Defeat
	case Defeat:
		return Victory
	}
	return o
}

// Fought reports whether the outcome comes from a resolved battle
func (o Outcome) Fought() bool {
	return o == Victory || o == Defeat || o == Draw
}
