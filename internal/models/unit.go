package models

// Unit is a single military entity owned by an army
type Unit struct {
	Type         UnitType
	Strength     int
	AgeYears     int
	TrainingCost int
	TrainingGain int
}

// NewUnit creates a fresh unit with the base stats of its type.
// An unknown type yields a zero-strength unit.
func NewUnit(ut UnitType) Unit {
	u := Unit{Type: ut}
	if def, ok := definitionsByType[ut]; ok {
		u.Strength = def.BaseStrength
		u.TrainingCost = def.TrainingCost
		u.TrainingGain = def.TrainingGain
	}
	return u
}

// Train adds one session of training gain to the unit's strength.
// Paying for it is the owner's concern.
func (u *Unit) Train() {
	u.Strength += u.TrainingGain
}

// Age makes the unit one year older
func (u *Unit) Age() {
	u.AgeYears++
}

// TrainingBonus returns strength accumulated on top of the type's base
func (u Unit) TrainingBonus() int {
	return u.Strength - u.Type.BaseStrength()
}
