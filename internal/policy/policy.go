// Package policy implements the reward-guided movement policy: a
// sampling-based hill climb over the reward surface. It approximates
// gradient ascent without requiring differentiability, which is what
// makes it usable under the sparse regime's flat surface.
package policy

import (
	"math"
	"math/rand"

	"github.com/UditKarth/Reward-Modeling-Viz/internal/episode"
	"github.com/UditKarth/Reward-Modeling-Viz/internal/geom"
	"github.com/UditKarth/Reward-Modeling-Viz/internal/reward"
)

// #region constants

const (
	// SampleRadius is the probe distance for candidate positions, px.
	SampleRadius = 10.0

	// MomentumDecay controls the exponential smoothing of the momentum
	// vector; MomentumWeight blends momentum into the final direction.
	MomentumDecay  = 0.7
	MomentumWeight = 0.3

	// Speed is proportional to distance, bounded both ends.
	speedScale = 0.015
	MinSpeed   = 1.5
	MaxSpeed   = 4.0

	// RewardHistoryCap bounds the recent-reward ring buffer.
	RewardHistoryCap = 10
)

// #endregion constants

// #region offsets

// candidateOffsets are the 8 fixed probe directions: axis-aligned first,
// then diagonals scaled by 1/√2 per axis to preserve magnitude. Ties
// among equally rewarding candidates favor the earliest entry.
var candidateOffsets = func() [8]geom.Vec2 {
	d := SampleRadius / math.Sqrt2
	return [8]geom.Vec2{
		{X: SampleRadius}, {X: -SampleRadius},
		{Y: SampleRadius}, {Y: -SampleRadius},
		{X: d, Y: d}, {X: d, Y: -d},
		{X: -d, Y: d}, {X: -d, Y: -d},
	}
}()

// #endregion offsets

// #region state

// State carries the policy's cross-tick memory.
type State struct {
	// Momentum is the exponentially smoothed direction, always unit
	// length or zero.
	Momentum geom.Vec2

	// RewardHistory holds the most recent live tick rewards.
	RewardHistory *episode.Ring[float64]

	// Noise, when non-nil, perturbs the chosen direction by NoiseScale
	// before the momentum blend. Seed it for deterministic tests.
	Noise      *rand.Rand
	NoiseScale float64
}

// NewState creates an empty policy state with no exploration noise.
func NewState() *State {
	return &State{
		RewardHistory: episode.NewRing[float64](RewardHistoryCap),
	}
}

// Reset clears momentum and reward history. Called on the episode's
// success transition.
func (s *State) Reset() {
	s.Momentum = geom.Vec2{}
	s.RewardHistory.Clear()
}

// RecordReward appends a live tick reward to the bounded history.
func (s *State) RecordReward(r float64) {
	s.RewardHistory.Push(r)
}

// #endregion state

// #region decide

// Decide samples the 8 candidate offsets, picks the strictly best
// predicted reward (goal-seeking fallback when no candidate beats the
// current position), blends with momentum, and returns the velocity
// command. Within the success threshold it emits zero velocity and
// clears momentum; that tick is terminal and handled by the episode.
func (s *State) Decide(ep *episode.Episode, regime reward.Regime, params reward.Params, bounds geom.Vec2) geom.Vec2 {
	dist := ep.Distance()
	if dist < ep.SuccessThreshold {
		s.Momentum = geom.Vec2{}
		return geom.Vec2{}
	}

	initial, _ := ep.InitialDistance()

	// Reward at the current position, as the bar candidates must clear.
	current, err := reward.Evaluate(regime, reward.Sample{
		PrevDist: dist,
		Dist:     dist,
		Initial:  initial,
	}, params)
	unknown := err != nil

	lo := geom.Vec2{X: episode.AgentRadius, Y: episode.AgentRadius}
	hi := geom.Vec2{X: bounds.X - episode.AgentRadius, Y: bounds.Y - episode.AgentRadius}

	best := current
	var bestDir geom.Vec2
	found := false

	if !unknown {
		for _, off := range candidateOffsets {
			probe := ep.Agent.Add(off).ClampRect(lo, hi)
			r, err := reward.Evaluate(regime, reward.Sample{
				PrevDist: dist,
				Dist:     geom.Dist(probe, ep.Goal),
				Initial:  initial,
			}, params)
			if err != nil {
				continue
			}
			if r > best {
				best = r
				bestDir = probe.Sub(ep.Agent)
				found = true
			}
		}
	}

	// No candidate strictly improves (or the regime is unrecognized):
	// head straight for the goal. The agent never idles while outside
	// the threshold.
	dir := bestDir
	if !found {
		dir = ep.Goal.Sub(ep.Agent)
	}
	dir = dir.Normalize()

	if s.Noise != nil && s.NoiseScale > 0 {
		dir = dir.Add(geom.Vec2{
			X: (s.Noise.Float64()*2 - 1) * s.NoiseScale,
			Y: (s.Noise.Float64()*2 - 1) * s.NoiseScale,
		}).Normalize()
	}

	s.Momentum = s.Momentum.Scale(MomentumDecay).Add(dir.Scale(1 - MomentumDecay)).Normalize()
	final := dir.Scale(1 - MomentumWeight).Add(s.Momentum.Scale(MomentumWeight)).Normalize()

	speed := geom.Clamp(dist*speedScale, MinSpeed, MaxSpeed)
	return final.Scale(speed)
}

// #endregion decide
