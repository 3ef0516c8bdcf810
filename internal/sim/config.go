package sim

import (
	"fmt"

	"github.com/UditKarth/Reward-Modeling-Viz/internal/episode"
	"github.com/UditKarth/Reward-Modeling-Viz/internal/geom"
	"github.com/UditKarth/Reward-Modeling-Viz/internal/reward"
)

// #region config

// Config is the configuration surface for one regime's simulation.
// The core never self-validates; Clamp is the caller-side normalization
// pass applied before a Simulation is constructed.
type Config struct {
	Regime reward.Regime
	Params reward.Params

	// Bounds is the canvas extent; positions live in
	// [AgentRadius, Bounds−AgentRadius] per axis.
	Bounds geom.Vec2

	Spawn geom.Vec2
	Goal  geom.Vec2

	// SuccessThreshold is regime-independent. Must be > 0.
	SuccessThreshold float64

	// SpeedMultiplier is the number of sequential ticks per frame. ≥ 1.
	SpeedMultiplier int

	// Strict makes an unrecognized regime a step error instead of the
	// lenient zero-reward default.
	Strict bool
}

// DefaultConfig returns the canvas and spawn geometry the visualization
// uses, with documented parameter defaults.
func DefaultConfig(regime reward.Regime) Config {
	return Config{
		Regime:           regime,
		Params:           reward.DefaultParams(),
		Bounds:           geom.Vec2{X: 600, Y: 300},
		Spawn:            geom.Vec2{X: 100, Y: 150},
		Goal:             geom.Vec2{X: 300, Y: 150},
		SuccessThreshold: episode.DefaultSuccessThreshold,
		SpeedMultiplier:  1,
	}
}

// #endregion config

// #region clamp

// Clamp normalizes out-of-range values and reports each adjustment.
// Gamma and LearningRate clamp to [0,1], SpeedMultiplier to ≥1, and a
// non-positive SuccessThreshold falls back to the default.
func (c Config) Clamp() (Config, []string) {
	var adjusted []string

	if c.Params.Gamma < 0 || c.Params.Gamma > 1 {
		old := c.Params.Gamma
		c.Params.Gamma = geom.Clamp(c.Params.Gamma, 0, 1)
		adjusted = append(adjusted, fmt.Sprintf("gamma %v → %v", old, c.Params.Gamma))
	}
	if c.Params.LearningRate < 0 || c.Params.LearningRate > 1 {
		old := c.Params.LearningRate
		c.Params.LearningRate = geom.Clamp(c.Params.LearningRate, 0, 1)
		adjusted = append(adjusted, fmt.Sprintf("learningRate %v → %v", old, c.Params.LearningRate))
	}
	if c.SpeedMultiplier < 1 {
		adjusted = append(adjusted, fmt.Sprintf("speedMultiplier %d → 1", c.SpeedMultiplier))
		c.SpeedMultiplier = 1
	}
	if c.SuccessThreshold <= 0 {
		adjusted = append(adjusted, fmt.Sprintf("successThreshold %v → %v", c.SuccessThreshold, episode.DefaultSuccessThreshold))
		c.SuccessThreshold = episode.DefaultSuccessThreshold
	}

	return c, adjusted
}

// #endregion clamp
