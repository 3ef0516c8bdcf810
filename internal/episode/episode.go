// Package episode holds the mutable record for one regime's running
// simulation and its success/reset state machine. The Episode object is
// created once and never destroyed; a success transition only reinitializes
// the transient fields.
package episode

import "github.com/UditKarth/Reward-Modeling-Viz/internal/geom"

// #region constants

const (
	// AgentRadius and GoalRadius are the visual body radii, px.
	AgentRadius = 15.0
	GoalRadius  = 20.0

	// DefaultSuccessThreshold is the regime-independent success boundary:
	// the distance at which the agent and goal circles touch.
	DefaultSuccessThreshold = AgentRadius + GoalRadius

	// HistoryCap bounds the recent-position ring buffer.
	HistoryCap = 10
)

// #endregion constants

// #region episode-struct

// Episode is the mutable state for one regime's simulation run.
// Agent is mutated every tick; Goal and Spawn are fixed after creation.
type Episode struct {
	Agent geom.Vec2
	Goal  geom.Vec2
	Spawn geom.Vec2

	// DistanceHistory holds the most recent agent positions, oldest first.
	DistanceHistory *Ring[geom.Vec2]

	// SuccessThreshold is the distance below which a tick triggers the
	// success transition. Always > 0.
	SuccessThreshold float64

	initialDist  float64
	hasInitial   bool
	previousDist float64
	hasPrevious  bool

	successCount int
}

// New creates an Episode with the agent at spawn and the default
// success threshold.
func New(spawn, goal geom.Vec2) *Episode {
	return &Episode{
		Agent:            spawn,
		Goal:             goal,
		Spawn:            spawn,
		DistanceHistory:  NewRing[geom.Vec2](HistoryCap),
		SuccessThreshold: DefaultSuccessThreshold,
	}
}

// #endregion episode-struct

// #region distances

// Distance returns the current agent-to-goal distance.
func (e *Episode) Distance() float64 {
	return geom.Dist(e.Agent, e.Goal)
}

// InitialDistance returns the distance measured at the episode's first
// evaluation. ok is false before the first evaluation and after a reset.
func (e *Episode) InitialDistance() (float64, bool) {
	return e.initialDist, e.hasInitial
}

// PreviousDistance returns the distance recorded at the end of the last
// tick. ok is false before the first completed tick and after a reset.
func (e *Episode) PreviousDistance() (float64, bool) {
	return e.previousDist, e.hasPrevious
}

// NoteEvaluation latches the initial distance on the first evaluation of
// a fresh episode. Later calls are no-ops.
func (e *Episode) NoteEvaluation(dist float64) {
	if !e.hasInitial {
		e.initialDist = dist
		e.hasInitial = true
	}
}

// RecordTick stores the post-move agent position and the distance that
// was measured at this tick's evaluation, before the move. Keeping the
// pre-move distance is what lets the next tick's shaping reward score
// the transition just completed, so per-tick rewards telescope.
func (e *Episode) RecordTick(pos geom.Vec2, preMoveDist float64) {
	e.Agent = pos
	e.DistanceHistory.Push(pos)
	e.previousDist = preMoveDist
	e.hasPrevious = true
}

// #endregion distances

// #region success

// InSuccess reports whether the agent is currently within the success
// threshold. Checked at the start of each tick, before any movement.
func (e *Episode) InSuccess() bool {
	return e.Distance() < e.SuccessThreshold
}

// CompleteSuccess performs the Success transition: increments the
// success counter and restores all transient fields to spawn defaults.
// The counter survives resets; only ResetSuccessCount clears it.
func (e *Episode) CompleteSuccess() {
	e.successCount++
	e.resetTransient()
}

// SuccessCount returns the number of completed episodes since the last
// explicit counter reset.
func (e *Episode) SuccessCount() int {
	return e.successCount
}

// ResetSuccessCount clears the success counter. Episode transient state
// is untouched.
func (e *Episode) ResetSuccessCount() {
	e.successCount = 0
}

func (e *Episode) resetTransient() {
	e.Agent = e.Spawn
	e.DistanceHistory.Clear()
	e.initialDist = 0
	e.hasInitial = false
	e.previousDist = 0
	e.hasPrevious = false
}

// #endregion success
