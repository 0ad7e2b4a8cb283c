package army

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/napolitain/armysim/internal/models"
)

func TestAttackVictory(t *testing.T) {
	a := mustNew(t, "chinese")                       // 300
	b := newTestArmy(models.English, knights(10)...) // 200

	outcome := a.Attack(b)
	if outcome != models.Victory {
		t.Fatalf("Expected victory, got %s", outcome)
	}

	if a.Gold() != StartingGold+VictoryReward {
		t.Errorf("Winner: expected gold %d, got %d", StartingGold+VictoryReward, a.Gold())
	}
	if b.Gold() != StartingGold {
		t.Errorf("Loser: expected gold %d, got %d", StartingGold, b.Gold())
	}
	if a.Len() != 29 {
		t.Errorf("Winner lost units: %d left", a.Len())
	}
	if b.Len() != 8 {
		t.Errorf("Loser: expected 8 units, got %d", b.Len())
	}

	wantOwn := models.BattleRecord{Opponent: "english", OwnStrength: 300, OpponentStrength: 200, Outcome: models.Victory}
	wantOther := models.BattleRecord{Opponent: "chinese", OwnStrength: 200, OpponentStrength: 300, Outcome: models.Defeat}
	if h := a.History(); len(h) != 1 || h[0] != wantOwn {
		t.Errorf("Winner history: expected [%+v], got %+v", wantOwn, h)
	}
	if h := b.History(); len(h) != 1 || h[0] != wantOther {
		t.Errorf("Loser history: expected [%+v], got %+v", wantOther, h)
	}
}

func TestAttackDefeat(t *testing.T) {
	a := newTestArmy(models.English, knights(10)...) // 200
	b := mustNew(t, "chinese")                       // 300

	outcome := a.Attack(b)
	if outcome != models.Defeat {
		t.Fatalf("Expected defeat, got %s", outcome)
	}

	if b.Gold() != StartingGold+VictoryReward {
		t.Errorf("Defender: expected gold %d, got %d", StartingGold+VictoryReward, b.Gold())
	}
	if a.Gold() != StartingGold {
		t.Errorf("Attacker: expected gold %d, got %d", StartingGold, a.Gold())
	}
	if a.Len() != 8 || b.Len() != 29 {
		t.Errorf("Unexpected roster sizes: attacker=%d defender=%d", a.Len(), b.Len())
	}
	if h := b.History(); len(h) != 1 || h[0].Outcome != models.Victory || h[0].OwnStrength != 300 {
		t.Errorf("Defender history: %+v", h)
	}
	if h := a.History(); len(h) != 1 || h[0].Outcome != models.Defeat || h[0].OpponentStrength != 300 {
		t.Errorf("Attacker history: %+v", h)
	}
}

func TestAttackDraw(t *testing.T) {
	a := mustNew(t, "chinese")
	b := mustNew(t, "chinese")

	outcome := a.Attack(b)
	if outcome != models.Draw {
		t.Fatalf("Expected draw, got %s", outcome)
	}

	for name, army := range map[string]*Army{"attacker": a, "defender": b} {
		if army.Gold() != StartingGold {
			t.Errorf("%s: gold changed to %d", name, army.Gold())
		}
		if army.Len() != 28 {
			t.Errorf("%s: expected 28 units, got %d", name, army.Len())
		}
		// One knight gone
		if army.TotalStrength() != 280 {
			t.Errorf("%s: expected strength 280, got %d", name, army.TotalStrength())
		}
		h := army.History()
		if len(h) != 1 || h[0].Outcome != models.Draw || h[0].OwnStrength != 300 || h[0].OpponentStrength != 300 {
			t.Errorf("%s: unexpected history %+v", name, h)
		}
	}
}

func TestAttackLoserWithSingleUnit(t *testing.T) {
	a := mustNew(t, "english")
	b := newTestArmy(models.Byzantine, models.NewUnit(models.Pikeman))

	if outcome := a.Attack(b); outcome != models.Victory {
		t.Fatalf("Expected victory, got %s", outcome)
	}
	if b.Len() != 0 {
		t.Errorf("Expected loser roster to be empty, got %d", b.Len())
	}

	// An empty army can no longer fight
	if outcome := b.Attack(a); outcome != models.NoUnits {
		t.Errorf("Expected no_units, got %s", outcome)
	}
	if outcome := a.Attack(b); outcome != models.NoTarget {
		t.Errorf("Expected no_target, got %s", outcome)
	}
}

func TestAttackNoUnits(t *testing.T) {
	a := newTestArmy(models.Chinese)
	b := mustNew(t, "english")

	if outcome := a.Attack(b); outcome != models.NoUnits {
		t.Fatalf("Expected no_units, got %s", outcome)
	}
	assertUntouched(t, b, 30, 350)
	if a.Gold() != StartingGold || len(a.History()) != 0 {
		t.Errorf("Empty attacker changed: gold=%d history=%d", a.Gold(), len(a.History()))
	}
}

func TestAttackNoTarget(t *testing.T) {
	a := mustNew(t, "english")
	b := newTestArmy(models.Chinese)

	if outcome := a.Attack(b); outcome != models.NoTarget {
		t.Fatalf("Expected no_target, got %s", outcome)
	}
	assertUntouched(t, a, 30, 350)
	if b.Gold() != StartingGold || len(b.History()) != 0 {
		t.Errorf("Empty defender changed: gold=%d history=%d", b.Gold(), len(b.History()))
	}

	if outcome := a.Attack(nil); outcome != models.NoTarget {
		t.Errorf("Expected no_target against nil, got %s", outcome)
	}
	if outcome := a.Attack(a); outcome != models.NoTarget {
		t.Errorf("Expected no_target against itself, got %s", outcome)
	}
	assertUntouched(t, a, 30, 350)
}

func assertUntouched(t *testing.T, a *Army, units, strength int) {
	t.Helper()
	if a.Len() != units || a.TotalStrength() != strength || a.Gold() != StartingGold || len(a.History()) != 0 {
		t.Errorf("%s changed: len=%d strength=%d gold=%d history=%d",
			a.Name(), a.Len(), a.TotalStrength(), a.Gold(), len(a.History()))
	}
	for i, u := range a.Units() {
		if u.AgeYears != 0 {
			t.Errorf("%s unit %d aged to %d", a.Name(), i, u.AgeYears)
		}
	}
}

func TestAttackAgesSurvivorsOnly(t *testing.T) {
	a := mustNew(t, "byzantine")
	b := mustNew(t, "english")

	a.Attack(b) // 405 vs 350
	a.Attack(b) // 405 vs 310

	for _, army := range []*Army{a, b} {
		for i, u := range army.Units() {
			if u.AgeYears != 2 {
				t.Errorf("%s unit %d: expected age 2, got %d", army.Name(), i, u.AgeYears)
			}
		}
	}
	if b.Len() != 26 {
		t.Errorf("Expected 26 english units after two defeats, got %d", b.Len())
	}
	if a.Gold() != StartingGold+2*VictoryReward {
		t.Errorf("Expected gold %d, got %d", StartingGold+2*VictoryReward, a.Gold())
	}
}

func TestAttackRemovesTrainedUnitFirst(t *testing.T) {
	a := mustNew(t, "chinese")
	b := mustNew(t, "byzantine")

	// A pikeman trained past knight strength: 5 + 6*3 = 23
	for n := 0; n < 6; n++ {
		a.TrainUnit(0)
	}

	if outcome := a.Attack(b); outcome != models.Defeat {
		t.Fatalf("Expected defeat, got %s", outcome)
	}
	for _, u := range a.Units() {
		if u.Strength == 23 {
			t.Error("Trained pikeman should have been removed as the strongest unit")
		}
	}
	if a.TotalStrength() != 318-23-20 {
		t.Errorf("Expected strength %d, got %d", 318-23-20, a.TotalStrength())
	}
}

func TestAttackDeterministic(t *testing.T) {
	run := func() (models.Outcome, int, int, int, int) {
		a := mustNew(t, "chinese")
		b := mustNew(t, "byzantine")
		for i := 0; i < a.Len(); i++ {
			a.TrainUnit(i)
		}
		outcome := a.Attack(b)
		return outcome, a.Gold(), b.Gold(), a.Len(), b.Len()
	}

	o1, ag1, bg1, al1, bl1 := run()
	o2, ag2, bg2, al2, bl2 := run()

	if o1 != o2 || ag1 != ag2 || bg1 != bg2 || al1 != al2 || bl1 != bl2 {
		t.Errorf("Non-deterministic battle: (%s %d %d %d %d) vs (%s %d %d %d %d)",
			o1, ag1, bg1, al1, bl1, o2, ag2, bg2, al2, bl2)
	}
}

func TestBattleHistoryReport(t *testing.T) {
	a := mustNew(t, "chinese")
	b := mustNew(t, "english")
	c := mustNew(t, "byzantine")

	a.Attack(b)
	a.Attack(c)

	want := strings.Join([]string{
		"Army of chinese",
		"Vs english: defeat (300 vs 350)",
		"Vs byzantine: defeat (260 vs 405)",
	}, "\n")
	if got := a.BattleHistoryReport(); got != want {
		t.Errorf("Unexpected report:\n%s\nwant:\n%s", got, want)
	}

	wantB := "Army of english\nVs chinese: victory (350 vs 300)"
	if got := b.BattleHistoryReport(); got != wantB {
		t.Errorf("Unexpected report:\n%s\nwant:\n%s", got, wantB)
	}
}

func TestRemoveStrongest(t *testing.T) {
	roster := func() *Army {
		units := []models.Unit{
			models.NewUnit(models.Pikeman),
			models.NewUnit(models.Knight),
			models.NewUnit(models.Archer),
			models.NewUnit(models.Knight),
		}
		// Tag units so ties can be told apart
		for i := range units {
			units[i].AgeYears = i
		}
		return newTestArmy(models.English, units...)
	}

	a := roster()
	removed := a.RemoveStrongest(1)
	if len(removed) != 1 || removed[0].AgeYears != 1 {
		t.Errorf("Expected first knight removed, got %+v", removed)
	}

	a = roster()
	removed = a.RemoveStrongest(2)
	if len(removed) != 2 || removed[0].AgeYears != 1 || removed[1].AgeYears != 3 {
		t.Errorf("Expected both knights in roster order, got %+v", removed)
	}
	units := a.Units()
	if len(units) != 2 || units[0].Type != models.Pikeman || units[1].Type != models.Archer {
		t.Errorf("Unexpected survivors %+v", units)
	}

	a = roster()
	if removed := a.RemoveStrongest(10); len(removed) != 4 || a.Len() != 0 {
		t.Errorf("Expected all 4 units removed, got %d (left %d)", len(removed), a.Len())
	}

	a = roster()
	if removed := a.RemoveStrongest(0); removed != nil || a.Len() != 4 {
		t.Errorf("Expected nothing removed, got %+v", removed)
	}
}

func TestAttackLogsBattle(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.InfoLevel)

	a := mustNew(t, "english", WithLogger(logger))
	b := mustNew(t, "chinese")
	a.TrainUnit(0)
	a.Attack(b)

	out := buf.String()
	if strings.Contains(out, "unit trained") {
		t.Errorf("Training should log below info, got %q", out)
	}
	if !strings.Contains(out, `"level":"info"`) || !strings.Contains(out, `"message":"battle resolved"`) {
		t.Errorf("Expected battle log line, got %q", out)
	}
	if !strings.Contains(out, `"outcome":"victory"`) || !strings.Contains(out, `"army":"english"`) {
		t.Errorf("Expected outcome and army fields, got %q", out)
	}
}
