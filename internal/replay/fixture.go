package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/UditKarth/Reward-Modeling-Viz/internal/geom"
	"github.com/UditKarth/Reward-Modeling-Viz/internal/reward"
	"github.com/UditKarth/Reward-Modeling-Viz/internal/sim"
)

// #region fixture-types

// Fixture is the top-level JSON structure for a replay fixture: a full
// simulation setup plus the milestones a deterministic rerun must hit.
type Fixture struct {
	Description string          `json:"description"`
	Regime      string          `json:"regime"`
	Config      FixtureConfig   `json:"config"`
	Ticks       int             `json:"ticks"`
	Expected    FixtureExpected `json:"expected"`
}

// FixtureVec is a JSON-serializable 2D point.
type FixtureVec struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// FixtureConfig mirrors sim.Config with JSON tags.
type FixtureConfig struct {
	Spawn            FixtureVec `json:"spawn"`
	Goal             FixtureVec `json:"goal"`
	Bounds           FixtureVec `json:"bounds"`
	Threshold        float64    `json:"threshold"`
	Gamma            float64    `json:"gamma"`
	LearningRate     float64    `json:"learning_rate"`
	BaseReward       float64    `json:"base_reward"`
	SuccessThreshold float64    `json:"success_threshold"`
	SpeedMultiplier  int        `json:"speed_multiplier"`
}

// FixtureExpected captures the milestones of the recorded run.
type FixtureExpected struct {
	SuccessCount  int     `json:"success_count"`
	SuccessTicks  []int   `json:"success_ticks"` // 0-based tick indices of Done ticks
	FinalDistance float64 `json:"final_distance"`
	TotalReward   float64 `json:"total_reward"`
}

// #endregion fixture-types

// #region conversions

// ToConfig converts a Fixture to a domain sim.Config.
func (f *Fixture) ToConfig() sim.Config {
	return sim.Config{
		Regime: reward.Regime(f.Regime),
		Params: reward.Params{
			Threshold:    f.Config.Threshold,
			Gamma:        f.Config.Gamma,
			LearningRate: f.Config.LearningRate,
			BaseReward:   f.Config.BaseReward,
		},
		Bounds:           geom.Vec2{X: f.Config.Bounds.X, Y: f.Config.Bounds.Y},
		Spawn:            geom.Vec2{X: f.Config.Spawn.X, Y: f.Config.Spawn.Y},
		Goal:             geom.Vec2{X: f.Config.Goal.X, Y: f.Config.Goal.Y},
		SuccessThreshold: f.Config.SuccessThreshold,
		SpeedMultiplier:  f.Config.SpeedMultiplier,
	}
}

// FromConfig builds the JSON mirror of a sim.Config.
func FromConfig(cfg sim.Config) FixtureConfig {
	return FixtureConfig{
		Spawn:            FixtureVec{X: cfg.Spawn.X, Y: cfg.Spawn.Y},
		Goal:             FixtureVec{X: cfg.Goal.X, Y: cfg.Goal.Y},
		Bounds:           FixtureVec{X: cfg.Bounds.X, Y: cfg.Bounds.Y},
		Threshold:        cfg.Params.Threshold,
		Gamma:            cfg.Params.Gamma,
		LearningRate:     cfg.Params.LearningRate,
		BaseReward:       cfg.Params.BaseReward,
		SuccessThreshold: cfg.SuccessThreshold,
		SpeedMultiplier:  cfg.SpeedMultiplier,
	}
}

// #endregion conversions

// #region io

// LoadFixture reads and parses a JSON fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return &f, nil
}

// SaveFixture writes a fixture as indented JSON.
func SaveFixture(path string, f *Fixture) error {
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal fixture: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write fixture %s: %w", path, err)
	}
	return nil
}

// #endregion io
