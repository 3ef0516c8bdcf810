// Package physics is the movement collaborator: a velocity-commanded
// kinematic point with external damping, exposed as a black box behind
// the Body interface. Nothing here knows about rewards or goals.
package physics

import "github.com/UditKarth/Reward-Modeling-Viz/internal/geom"

// #region constants

// TickDT is the fixed timestep of one simulation tick (1/60 s equivalent).
const TickDT = 1.0 / 60.0

// DefaultDamping is the per-tick velocity retention factor.
const DefaultDamping = 0.95

// #endregion constants

// #region body-interface

// Body is the external physics collaborator consumed by the step loop.
type Body interface {
	SetPosition(p geom.Vec2)
	SetVelocity(v geom.Vec2)
	Position() geom.Vec2
	Velocity() geom.Vec2
	// Advance integrates the body forward by dt seconds.
	Advance(dt float64)
}

// #endregion body-interface

// #region point-body

// PointBody is the default Body: a kinematic point whose velocity is
// expressed in pixels per tick and decays by a damping factor each step.
type PointBody struct {
	pos     geom.Vec2
	vel     geom.Vec2
	damping float64
}

// NewPointBody creates a body at rest at pos with default damping.
func NewPointBody(pos geom.Vec2) *PointBody {
	return &PointBody{pos: pos, damping: DefaultDamping}
}

func (b *PointBody) SetPosition(p geom.Vec2) { b.pos = p }
func (b *PointBody) SetVelocity(v geom.Vec2) { b.vel = v }
func (b *PointBody) Position() geom.Vec2     { return b.pos }
func (b *PointBody) Velocity() geom.Vec2     { return b.vel }

// Advance moves the body by its velocity scaled to dt (one full velocity
// step at dt = TickDT) and applies damping.
func (b *PointBody) Advance(dt float64) {
	b.pos = b.pos.Add(b.vel.Scale(dt / TickDT))
	b.vel = b.vel.Scale(b.damping)
}

// #endregion point-body
