package models

import "fmt"

// BattleRecord summarizes one battle from one army's point of view
type BattleRecord struct {
	Opponent         string
	OwnStrength      int
	OpponentStrength int
	Outcome          Outcome
}

// Mirror returns the record the opponent keeps for the same battle
func (r BattleRecord) Mirror(self string) BattleRecord {
	return BattleRecord{
		Opponent:         self,
		OwnStrength:      r.OpponentStrength,
		OpponentStrength: r.OwnStrength,
		Outcome:          r.Outcome.Invert(),
	}
}

func (r BattleRecord) String() string {
	return fmt.Sprintf("Vs %s: %s (%d vs %d)", r.Opponent, r.Outcome, r.OwnStrength, r.OpponentStrength)
}
