// Package sim orchestrates the per-tick simulation: reward evaluation,
// the success state machine, policy invocation, and the physics advance.
// One Simulation owns one Episode/PolicyState pair and is written by a
// single cooperative loop; nothing here locks.
package sim

import (
	"errors"
	"fmt"

	"github.com/UditKarth/Reward-Modeling-Viz/internal/episode"
	"github.com/UditKarth/Reward-Modeling-Viz/internal/geom"
	"github.com/UditKarth/Reward-Modeling-Viz/internal/physics"
	"github.com/UditKarth/Reward-Modeling-Viz/internal/policy"
	"github.com/UditKarth/Reward-Modeling-Viz/internal/reward"
)

// #region types

// StepResult is the outcome of one tick.
type StepResult struct {
	// Reward attributed to the tick just completed, R(s) before the
	// transition. The success tick pays a canonical terminal 1.0.
	Reward float64
	// Done marks the success tick; the episode has already reset.
	Done bool
}

// TerminalReward is the canonical reward of the tick that triggers the
// success transition, regardless of regime.
const TerminalReward = 1.0

// #endregion types

// #region simulation

// Simulation binds an episode, a policy state, and a physics body under
// one regime's configuration.
type Simulation struct {
	cfg     Config
	Episode *episode.Episode
	Policy  *policy.State
	body    physics.Body
}

// New creates a Simulation with the default kinematic point body.
func New(cfg Config) *Simulation {
	return NewWithBody(cfg, physics.NewPointBody(cfg.Spawn))
}

// NewWithBody injects a physics collaborator. The body is snapped to the
// spawn point and zero velocity.
func NewWithBody(cfg Config, body physics.Body) *Simulation {
	ep := episode.New(cfg.Spawn, cfg.Goal)
	ep.SuccessThreshold = cfg.SuccessThreshold
	body.SetPosition(cfg.Spawn)
	body.SetVelocity(geom.Vec2{})
	return &Simulation{
		cfg:     cfg,
		Episode: ep,
		Policy:  policy.NewState(),
		body:    body,
	}
}

// #endregion simulation

// #region accessors

// Config returns the active configuration.
func (s *Simulation) Config() Config { return s.cfg }

// AgentPosition returns the agent's current position.
func (s *Simulation) AgentPosition() geom.Vec2 { return s.Episode.Agent }

// GoalPosition returns the static goal position.
func (s *Simulation) GoalPosition() geom.Vec2 { return s.Episode.Goal }

// Distance returns the current agent-to-goal distance.
func (s *Simulation) Distance() float64 { return s.Episode.Distance() }

// SuccessCount returns completed episodes since the last counter reset.
func (s *Simulation) SuccessCount() int { return s.Episode.SuccessCount() }

// ResetSuccessCount clears the external success counter only.
func (s *Simulation) ResetSuccessCount() { s.Episode.ResetSuccessCount() }

// SetParams swaps regime parameters. Safe between ticks only; the
// cooperative driver never calls Step concurrently.
func (s *Simulation) SetParams(p reward.Params) { s.cfg.Params = p }

// #endregion accessors

// #region step

// Step runs one tick: pre-move reward, success check, policy, physics
// advance, history update. The only error path is an unknown regime
// under strict mode; lenient mode absorbs it as reward 0 with the
// policy's goal-seeking fallback.
func (s *Simulation) Step() (StepResult, error) {
	// (a) Evaluate the reward at the pre-move state.
	dist := s.Episode.Distance()
	s.Episode.NoteEvaluation(dist)

	prev, ok := s.Episode.PreviousDistance()
	if !ok {
		prev = dist
	}
	initial, _ := s.Episode.InitialDistance()

	r, err := reward.Evaluate(s.cfg.Regime, reward.Sample{
		PrevDist: prev,
		Dist:     dist,
		Initial:  initial,
	}, s.cfg.Params)
	if err != nil {
		if s.cfg.Strict || !errors.Is(err, reward.ErrUnknownRegime) {
			return StepResult{}, fmt.Errorf("step reward: %w", err)
		}
		r = 0
	}

	// (b) Success check, before any movement.
	if s.Episode.InSuccess() {
		s.Episode.CompleteSuccess()
		s.Policy.Reset()
		s.body.SetPosition(s.Episode.Spawn)
		s.body.SetVelocity(geom.Vec2{})
		return StepResult{Reward: TerminalReward, Done: true}, nil
	}

	// (c) Policy decides the velocity command.
	vel := s.Policy.Decide(s.Episode, s.cfg.Regime, s.cfg.Params, s.cfg.Bounds)
	s.body.SetVelocity(vel)

	// (d) Advance the physics collaborator one fixed timestep.
	s.body.Advance(physics.TickDT)

	// Walls: the canvas is closed, the body cannot leave it.
	pos := s.body.Position().ClampRect(
		geom.Vec2{X: episode.AgentRadius, Y: episode.AgentRadius},
		geom.Vec2{X: s.cfg.Bounds.X - episode.AgentRadius, Y: s.cfg.Bounds.Y - episode.AgentRadius},
	)
	s.body.SetPosition(pos)

	// (e)+(f) Record the post-move position and the pre-move distance.
	s.Episode.RecordTick(pos, dist)
	s.Policy.RecordReward(r)

	return StepResult{Reward: r}, nil
}

// #endregion step
