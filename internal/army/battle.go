package army

import (
	"github.com/napolitain/armysim/internal/models"
)

// Attack resolves a battle against other and returns this army's outcome.
//
// The stronger side earns VictoryReward gold and the weaker side loses its
// LossesOnDefeat strongest units; on equal strength each side loses
// LossesOnDraw unit and no gold moves. Survivors on both sides then age one
// year and each army records the battle. If either roster is empty (or other
// is nil or this same army) nothing changes and NoUnits / NoTarget is returned.
func (a *Army) Attack(other *Army) models.Outcome {
	if len(a.units) == 0 {
		return models.NoUnits
	}
	if other == nil || other == a || len(other.units) == 0 {
		return models.NoTarget
	}

	ownStrength := a.TotalStrength()
	enemyStrength := other.TotalStrength()

	var outcome models.Outcome
	switch {
	case ownStrength > enemyStrength:
		outcome = models.Victory
		a.gold += VictoryReward
		other.RemoveStrongest(LossesOnDefeat)
	case enemyStrength > ownStrength:
		outcome = models.Defeat
		other.gold += VictoryReward
		a.RemoveStrongest(LossesOnDefeat)
	default:
		outcome = models.Draw
		a.RemoveStrongest(LossesOnDraw)
		other.RemoveStrongest(LossesOnDraw)
	}

	a.ageUnits()
	other.ageUnits()

	record := models.BattleRecord{
		Opponent:         other.Name(),
		OwnStrength:      ownStrength,
		OpponentStrength: enemyStrength,
		Outcome:          outcome,
	}
	a.history = append(a.history, record)
	other.history = append(other.history, record.Mirror(a.Name()))

	a.log.Info().
		Str("opponent", other.Name()).
		Int("own_strength", ownStrength).
		Int("enemy_strength", enemyStrength).
		Str("outcome", string(outcome)).
		Msg("battle resolved")

	return outcome
}

// RemoveStrongest removes up to n units, one at a time, each time taking the
// first unit with the highest strength. It returns the removed units in
// removal order.
func (a *Army) RemoveStrongest(n int) []models.Unit {
	count := min(n, len(a.units))
	if count <= 0 {
		return nil
	}

	removed := make([]models.Unit, 0, count)
	for n := 0; n < count; n++ {
		strongest := 0
		for i, u := range a.units {
			if u.Strength > a.units[strongest].Strength {
				strongest = i
			}
		}
		removed = append(removed, a.units[strongest])
		a.units = append(a.units[:strongest], a.units[strongest+1:]...)
	}
	return removed
}

func (a *Army) ageUnits() {
	for i := range a.units {
		a.units[i].Age()
	}
}
