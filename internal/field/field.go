// Package field precomputes per-cell reward snapshots for the visual
// overlay. The generator is pure: a color buffer from grid size, goal
// and regime parameters, fully decoupled from any episode state.
package field

import (
	"math"

	"github.com/UditKarth/Reward-Modeling-Viz/internal/geom"
	"github.com/UditKarth/Reward-Modeling-Viz/internal/reward"
)

// #region colors

// FieldAlpha is the constant overlay alpha.
const FieldAlpha = 90

// Two-segment blue → green ramp endpoints.
var (
	rampLow  = [3]byte{30, 60, 220}
	rampMid  = [3]byte{30, 190, 190}
	rampHigh = [3]byte{40, 220, 90}
)

// #endregion colors

// #region generate

// Generate renders a width×height RGBA buffer of the regime's
// static-position reward, row-major, 4 bytes per cell. Deterministic in
// (width, height, goal, regime, params). An unrecognized regime renders
// the zero-reward color everywhere, mirroring the engine's lenient
// fallback.
//
// Shaping is drawn as a potential-only snapshot renormalized by the
// fixed affine map 1 − dist/diagonal; the progress model substitutes
// the grid diagonal for the episode's initial distance.
func Generate(width, height int, goal geom.Vec2, regime reward.Regime, params reward.Params) []byte {
	buf := make([]byte, width*height*4)
	diag := math.Hypot(float64(width), float64(height))

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			dist := geom.Dist(geom.Vec2{X: float64(x), Y: float64(y)}, goal)

			var v float64
			switch regime {
			case reward.RegimeSparse:
				v = reward.Sparse(dist, params.Threshold)
			case reward.RegimeShaping:
				v = 1 - dist/diag
			case reward.RegimeProgress:
				v = reward.Progress(diag, dist, params.LearningRate)
			case reward.RegimeSemantic:
				v = reward.Semantic(dist)
			}
			v = geom.Clamp(v, 0, 1)

			i := (y*width + x) * 4
			r, g, b := ramp(v)
			buf[i] = r
			buf[i+1] = g
			buf[i+2] = b
			buf[i+3] = FieldAlpha
		}
	}
	return buf
}

// ramp maps v ∈ [0,1] through the two-segment blue → green ramp.
func ramp(v float64) (byte, byte, byte) {
	if v < 0.5 {
		return lerp3(rampLow, rampMid, v*2)
	}
	return lerp3(rampMid, rampHigh, (v-0.5)*2)
}

func lerp3(a, b [3]byte, t float64) (byte, byte, byte) {
	l := func(x, y byte) byte {
		return byte(float64(x) + (float64(y)-float64(x))*t)
	}
	return l(a[0], b[0]), l(a[1], b[1]), l(a[2], b[2])
}

// #endregion generate
