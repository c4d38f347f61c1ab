package domain

import (
	"fmt"
	"strings"
)

// Scenario is a named emissions-policy assumption. The zero value is not a
// valid scenario.
type Scenario int

const (
	BusinessAsUsual Scenario = iota + 1
	ModerateReduction
	AggressiveReduction
)

// Scenarios lists every valid scenario in display order.
func Scenarios() []Scenario {
	return []Scenario{BusinessAsUsual, ModerateReduction, AggressiveReduction}
}

// ImpactLevel is the qualitative severity bucket implied by a scenario.
type ImpactLevel int

const (
	Manageable ImpactLevel = iota + 1
	Moderate
	Severe
)

// ScenarioParams holds the constants that drive a scenario's projection.
type ScenarioParams struct {
	Key         string      `json:"key"`
	Label       string      `json:"label"`
	Description string      `json:"description"`
	Color       string      `json:"color"`
	Impact      ImpactLevel `json:"impact_level"`

	// InitialReduction is the one-off cut applied to the latest value.
	InitialReduction float64 `json:"initial_reduction"`
	// AnnualRate compounds once per five-year step; negative values decay.
	AnnualRate float64 `json:"annual_rate"`
	// TempSensitivity is °C of warming per year ahead.
	TempSensitivity float64 `json:"temp_sensitivity"`
	// SeaSensitivity is mm of sea-level rise per year ahead.
	SeaSensitivity float64 `json:"sea_sensitivity"`
}

// Baseline temperature and sea-level increments shared by all scenarios.
const (
	baseTempIncrease = 0.3
	baseSeaIncrease  = 40.0
)

// Params returns the constants for s. ok is false for an invalid scenario.
func (s Scenario) Params() (ScenarioParams, bool) {
	switch s {
	case BusinessAsUsual:
		return ScenarioParams{
			Key:              "business_as_usual",
			Label:            "Business as usual",
			Description:      "Continuing current emission trends will significantly accelerate climate change.",
			Color:            "red",
			Impact:           Severe,
			InitialReduction: 0,
			AnnualRate:       0.02,
			TempSensitivity:  0.015,
			SeaSensitivity:   3,
		}, true
	case ModerateReduction:
		return ScenarioParams{
			Key:              "moderate_reduction",
			Label:            "Moderate reduction (30% cut)",
			Description:      "A 30% emissions cut would slow climate change but may not prevent significant impacts.",
			Color:            "orange",
			Impact:           Moderate,
			InitialReduction: 0.30,
			AnnualRate:       -0.03,
			TempSensitivity:  0.008,
			SeaSensitivity:   2,
		}, true
	case AggressiveReduction:
		return ScenarioParams{
			Key:              "aggressive_reduction",
			Label:            "Aggressive reduction (60% cut)",
			Description:      "Aggressive 60% cuts could help limit warming to safer levels.",
			Color:            "green",
			Impact:           Manageable,
			InitialReduction: 0.60,
			AnnualRate:       -0.05,
			TempSensitivity:  0.004,
			SeaSensitivity:   1,
		}, true
	default:
		return ScenarioParams{}, false
	}
}

// Valid reports whether s is one of the enumerated scenarios.
func (s Scenario) Valid() bool {
	_, ok := s.Params()
	return ok
}

func (s Scenario) String() string {
	if p, ok := s.Params(); ok {
		return p.Key
	}
	return fmt.Sprintf("Scenario(%d)", int(s))
}

// MarshalText encodes the scenario as its key.
func (s Scenario) MarshalText() ([]byte, error) {
	p, ok := s.Params()
	if !ok {
		return nil, fmt.Errorf("marshal %d: %w", int(s), ErrInvalidScenario)
	}
	return []byte(p.Key), nil
}

// UnmarshalText decodes a scenario key or label.
func (s *Scenario) UnmarshalText(text []byte) error {
	parsed, err := ParseScenario(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseScenario accepts a scenario key ("moderate_reduction"), a short alias
// ("bau", "moderate", "aggressive"), or the dashboard label
// ("Moderate reduction (30% cut)"). Matching is case-insensitive.
func ParseScenario(key string) (Scenario, error) {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "business_as_usual", "bau", "business as usual":
		return BusinessAsUsual, nil
	case "moderate_reduction", "moderate", "moderate reduction (30% cut)":
		return ModerateReduction, nil
	case "aggressive_reduction", "aggressive", "aggressive reduction (60% cut)":
		return AggressiveReduction, nil
	default:
		return 0, fmt.Errorf("%q: %w", key, ErrInvalidScenario)
	}
}

func (l ImpactLevel) String() string {
	switch l {
	case Manageable:
		return "Manageable"
	case Moderate:
		return "Moderate"
	case Severe:
		return "Severe"
	default:
		return fmt.Sprintf("ImpactLevel(%d)", int(l))
	}
}

// MarshalText encodes the impact level by name.
func (l ImpactLevel) MarshalText() ([]byte, error) {
	switch l {
	case Manageable, Moderate, Severe:
		return []byte(l.String()), nil
	default:
		return nil, fmt.Errorf("marshal %d: %w", int(l), ErrInvalidImpactLevel)
	}
}

// UnmarshalText decodes an impact level name.
func (l *ImpactLevel) UnmarshalText(text []byte) error {
	parsed, err := ParseImpactLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// ParseImpactLevel accepts "manageable", "moderate" or "severe" in any case.
func ParseImpactLevel(key string) (ImpactLevel, error) {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "manageable":
		return Manageable, nil
	case "moderate":
		return Moderate, nil
	case "severe":
		return Severe, nil
	default:
		return 0, fmt.Errorf("%q: %w", key, ErrInvalidImpactLevel)
	}
}
