package models

// Transformation is an allowed upgrade from one unit type to another
type Transformation struct {
	From UnitType
	To   UnitType
	Cost int
}

type edge struct {
	from UnitType
	to   UnitType
}

var transformations = map[edge]Transformation{
	{Pikeman, Archer}: {From: Pikeman, To: Archer, Cost: 30},
	{Archer, Knight}:  {From: Archer, To: Knight, Cost: 40},
}

// AllTransformations returns every allowed edge, lowest tier first
func AllTransformations() []Transformation {
	return []Transformation{
		transformations[edge{Pikeman, Archer}],
		transformations[edge{Archer, Knight}],
	}
}

// LookupTransformation returns the edge from one type to another, if allowed
func LookupTransformation(from, to UnitType) (Transformation, bool) {
	t, ok := transformations[edge{from, to}]
	return t, ok
}

// StrengthGain returns the difference between the two base strengths
func (t Transformation) StrengthGain() int {
	return t.To.BaseStrength() - t.From.BaseStrength()
}

// Apply returns the unit u would become, keeping its age and training bonus.
// u itself is left untouched.
func (t Transformation) Apply(u Unit) Unit {
	next := NewUnit(t.To)
	next.Strength = t.To.BaseStrength() + u.Strength - t.From.BaseStrength()
	next.AgeYears = u.AgeYears
	return next
}
