package game

import (
	"math"
	"sort"

	"github.com/pkg/errors"
)

// EvaluationConfig holds the weights of the evaluation function. It is
// passed by value and never mutated by the evaluator.
type EvaluationConfig struct {
	PieceOff        float64
	WinBonus        float64
	ProgressBase    float64
	ZoneMultiplier  float64
	HappinessBonus  float64
	WaterPenalty    float64
	SpecialHouse    float64
	Protection      float64
	Block           float64
	Attack          float64
	Flexibility     float64
	IsolatedPenalty float64
}

func DefaultConfig() EvaluationConfig {
	return EvaluationConfig{
		PieceOff:        1200,
		WinBonus:        20000,
		ProgressBase:    85,
		ZoneMultiplier:  1.8,
		HappinessBonus:  150,
		WaterPenalty:    -300,
		SpecialHouse:    100,
		Protection:      60,
		Block:           80,
		Attack:          60,
		Flexibility:     8,
		IsolatedPenalty: 15,
	}
}

// Weight multipliers applied on top of the base config per phase
var phaseMultipliers = map[Phase]map[string]float64{
	Opening: {
		"progress_base":    0.9,
		"block":            1.5,
		"protection":       1.6,
		"attack":           0.4,
		"isolated_penalty": 0.8,
	},
	Midgame: {
		"progress_base":    1.8,
		"block":            1.0,
		"protection":       1.0,
		"attack":           1.0,
		"isolated_penalty": 1.2,
	},
	Endgame: {
		"progress_base":    2.0,
		"piece_off":        1.5,
		"block":            0.4,
		"protection":       0.5,
		"attack":           0.6,
		"isolated_penalty": 0.5,
	},
}

func (c *EvaluationConfig) weights() map[string]*float64 {
	return map[string]*float64{
		"piece_off":        &c.PieceOff,
		"win_bonus":        &c.WinBonus,
		"progress_base":    &c.ProgressBase,
		"zone_multiplier":  &c.ZoneMultiplier,
		"happiness_bonus":  &c.HappinessBonus,
		"water_penalty":    &c.WaterPenalty,
		"special_house":    &c.SpecialHouse,
		"protection":       &c.Protection,
		"block":            &c.Block,
		"attack":           &c.Attack,
		"flexibility":      &c.Flexibility,
		"isolated_penalty": &c.IsolatedPenalty,
	}
}

// WeightNames lists the snake_case names accepted by ConfigFromMap.
func WeightNames() []string {
	var c EvaluationConfig
	names := make([]string, 0, 12)
	for name := range c.weights() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ForPhase returns a copy of the config scaled by the phase multipliers.
func (c EvaluationConfig) ForPhase(phase Phase) EvaluationConfig {
	weights := c.weights()
	for name, multiplier := range phaseMultipliers[phase] {
		*weights[name] *= multiplier
	}
	return c
}

// ConfigFromMap overrides the default weights with the named values.
func ConfigFromMap(values map[string]float64) (EvaluationConfig, error) {
	c := DefaultConfig()
	err := c.Set(values)
	return c, err
}

// Set overrides the named weights, rejecting unknown names.
func (c *EvaluationConfig) Set(values map[string]float64) error {
	weights := c.weights()
	for name, value := range values {
		w, ok := weights[name]
		if !ok {
			return errors.Errorf("unknown evaluation weight %q", name)
		}
		*w = value
	}
	return c.Validate()
}

func (c EvaluationConfig) Validate() error {
	weights := c.weights()
	for _, name := range WeightNames() {
		if w := *weights[name]; math.IsNaN(w) || math.IsInf(w, 0) {
			return errors.Errorf("%s must be finite, got %v", name, w)
		}
	}
	if c.WinBonus <= 0 {
		return errors.Errorf("win_bonus must be positive, got %v", c.WinBonus)
	}
	if c.ZoneMultiplier < 0 {
		return errors.Errorf("zone_multiplier must not be negative, got %v", c.ZoneMultiplier)
	}
	return nil
}
