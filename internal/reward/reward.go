// Package reward implements the four interchangeable reward regimes.
// Every function here is pure: a scalar from distances and parameters,
// no state, no side effects.
package reward

import (
	"errors"
	"math"
)

// #region regime

// Regime identifies a reward-computation strategy.
type Regime string

const (
	RegimeSparse   Regime = "sparse"
	RegimeShaping  Regime = "shaping"
	RegimeProgress Regime = "progress"
	RegimeSemantic Regime = "semantic"
)

// Regimes lists every known regime in a fixed order.
func Regimes() []Regime {
	return []Regime{RegimeSparse, RegimeShaping, RegimeProgress, RegimeSemantic}
}

// Known reports whether r is one of the four regimes.
func Known(r Regime) bool {
	switch r {
	case RegimeSparse, RegimeShaping, RegimeProgress, RegimeSemantic:
		return true
	}
	return false
}

// ErrUnknownRegime is returned by Evaluate for an unrecognized regime.
// Lenient callers treat it as reward 0; strict callers propagate it.
var ErrUnknownRegime = errors.New("reward: unknown regime")

// #endregion regime

// #region params

// Sigma is the fixed Gaussian width of the semantic kernel, in pixels.
const Sigma = 100.0

// Params holds the per-regime tunables. Callers clamp ranges before
// handing these to the engine; the engine does not self-validate.
type Params struct {
	Threshold    float64 // sparse boundary, px
	Gamma        float64 // shaping discount, [0,1]
	LearningRate float64 // progress scale, [0,1]
	BaseReward   float64 // shaping additive term
}

// DefaultParams returns the documented defaults.
func DefaultParams() Params {
	return Params{
		Threshold:    30,
		Gamma:        0.9,
		LearningRate: 0.1,
	}
}

// #endregion params

// #region sparse

// Sparse is the step-function regime: 1 inside the threshold, 0 outside.
// The boundary itself (dist == threshold) pays 0.
func Sparse(dist, threshold float64) float64 {
	if dist < threshold {
		return 1.0
	}
	return 0.0
}

// #endregion sparse

// #region shaping

// Shaping is potential-based shaping with Φ(s) = -dist(s, goal), expressed
// directly in distances: base + γ·Φ(next) − Φ(prev) = base + prevDist − γ·nextDist.
// With γ=1 and base=0 the per-tick rewards telescope to the net distance
// closed over the trajectory.
func Shaping(prevDist, nextDist, gamma, base float64) float64 {
	return base + gamma*(-nextDist) - (-prevDist)
}

// #endregion shaping

// #region progress

// Progress is the continuous progress model: learningRate times the
// fraction of the initial distance closed so far, floored at 0.
// A zero (unset) or negative initial distance pays 0.
func Progress(initial, dist, learningRate float64) float64 {
	if initial <= 0 {
		return 0
	}
	p := (initial - dist) / initial
	if p < 0 {
		p = 0
	}
	return learningRate * p
}

// #endregion progress

// #region semantic

// Semantic is a Gaussian similarity kernel over distance with fixed σ.
// Range (0,1], maximal at dist 0, strictly decreasing in distance.
func Semantic(dist float64) float64 {
	return math.Exp(-(dist * dist) / (2 * Sigma * Sigma))
}

// #endregion semantic

// #region evaluate

// Sample bundles the distance inputs a regime evaluation needs.
// Dist is the distance at the evaluated position. PrevDist is the distance
// before the transition (shaping only; pass Dist for a static snapshot).
// Initial is the first-evaluation distance of the episode, 0 when unset.
type Sample struct {
	PrevDist float64
	Dist     float64
	Initial  float64
}

// Evaluate dispatches to the regime's formula. Unknown regimes return
// (0, ErrUnknownRegime); the caller decides whether that is fatal.
func Evaluate(regime Regime, s Sample, p Params) (float64, error) {
	switch regime {
	case RegimeSparse:
		return Sparse(s.Dist, p.Threshold), nil
	case RegimeShaping:
		return Shaping(s.PrevDist, s.Dist, p.Gamma, p.BaseReward), nil
	case RegimeProgress:
		return Progress(s.Initial, s.Dist, p.LearningRate), nil
	case RegimeSemantic:
		return Semantic(s.Dist), nil
	default:
		return 0, ErrUnknownRegime
	}
}

// #endregion evaluate
