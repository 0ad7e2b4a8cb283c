package loader

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/napolitain/armysim/internal/simulation"
)

// ScenarioYAML represents the YAML structure for a scenario file
type ScenarioYAML struct {
	Name   string     `yaml:"name"`
	Armies []ArmyYAML `yaml:"armies"`
	Steps  []StepYAML `yaml:"steps"`
}

// ArmyYAML represents the YAML structure for an army declaration
type ArmyYAML struct {
	Name         string `yaml:"name"`
	Civilization string `yaml:"civilization"`
	Gold         *int   `yaml:"gold,omitempty"`
}

// StepYAML represents the YAML structure for a scenario step
type StepYAML struct {
	Action   string `yaml:"action"`
	Army     string `yaml:"army"`
	Index    int    `yaml:"index,omitempty"`
	Target   string `yaml:"target,omitempty"`
	Opponent string `yaml:"opponent,omitempty"`
	Budget   int    `yaml:"budget,omitempty"`
}

// LoadScenario loads and validates a scenario from a YAML file
func LoadScenario(path string) (*simulation.Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}

	sc, err := ParseScenario(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}

// ParseScenario decodes and validates scenario YAML. Unknown keys are
// rejected so a misspelled field cannot fall back to its default.
func ParseScenario(data []byte) (*simulation.Scenario, error) {
	var raw ScenarioYAML
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}

	sc := &simulation.Scenario{Name: raw.Name}
	for _, a := range raw.Armies {
		name := a.Name
		if name == "" {
			// Armies default to being addressed by their civilization
			name = a.Civilization
		}
		sc.Armies = append(sc.Armies, simulation.ArmySpec{
			Name:         name,
			Civilization: a.Civilization,
			Gold:         a.Gold,
		})
	}
	for _, s := range raw.Steps {
		sc.Steps = append(sc.Steps, simulation.Step{
			Action:   simulation.Action(s.Action),
			Army:     s.Army,
			Index:    s.Index,
			Target:   s.Target,
			Opponent: s.Opponent,
			Budget:   s.Budget,
		})
	}

	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return sc, nil
}

// MarshalScenario encodes a scenario back into YAML
func MarshalScenario(sc *simulation.Scenario) ([]byte, error) {
	raw := ScenarioYAML{Name: sc.Name}
	for _, a := range sc.Armies {
		raw.Armies = append(raw.Armies, ArmyYAML{Name: a.Name, Civilization: a.Civilization, Gold: a.Gold})
	}
	for _, s := range sc.Steps {
		raw.Steps = append(raw.Steps, StepYAML{
			Action:   string(s.Action),
			Army:     s.Army,
			Index:    s.Index,
			Target:   s.Target,
			Opponent: s.Opponent,
			Budget:   s.Budget,
		})
	}
	return yaml.Marshal(raw)
}
