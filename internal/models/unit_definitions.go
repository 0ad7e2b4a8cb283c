package models

// UnitDefinition contains static unit data
type UnitDefinition struct {
	Type         UnitType
	Name         string
	Tier         int // Transformations only move up one tier
	BaseStrength int
	TrainingCost int // Gold per training session
	TrainingGain int // Strength added per training session
}

// AllUnitDefinitions returns definitions for all unit types
func AllUnitDefinitions() []*UnitDefinition {
	return []*UnitDefinition{
		{
			Type:         Pikeman,
			Name:         "Pikeman",
			Tier:         1,
			BaseStrength: 5,
			TrainingCost: 10,
			TrainingGain: 3,
		},
		{
			Type:         Archer,
			Name:         "Archer",
			Tier:         2,
			BaseStrength: 10,
			TrainingCost: 20,
			TrainingGain: 7,
		},
		{
			Type:         Knight,
			Name:         "Knight",
			Tier:         3,
			BaseStrength: 20,
			TrainingCost: 30,
			TrainingGain: 10,
		},
	}
}

var definitionsByType = func() map[UnitType]*UnitDefinition {
	m := make(map[UnitType]*UnitDefinition)
	for _, def := range AllUnitDefinitions() {
		m[def.Type] = def
	}
	return m
}()

// GetUnitDefinition returns the definition for a unit type
func GetUnitDefinition(ut UnitType) *UnitDefinition {
	def, ok := definitionsByType[ut]
	if !ok {
		return nil
	}
	copied := *def
	return &copied
}

// BaseStrength returns the strength a fresh unit of this type starts with
func (ut UnitType) BaseStrength() int {
	if def, ok := definitionsByType[ut]; ok {
		return def.BaseStrength
	}
	return 0
}

// TrainingROI returns strength gained per gold spent on one training session
func (d *UnitDefinition) TrainingROI() float64 {
	if d.TrainingCost == 0 {
		return 0
	}
	return float64(d.TrainingGain) / float64(d.TrainingCost)
}
