package sim

import (
	"context"
	"log"
	"time"

	"github.com/UditKarth/Reward-Modeling-Viz/internal/telemetry"
)

// #region types

// FrameResult summarizes one batch of speedMultiplier sequential ticks.
type FrameResult struct {
	Ticks      int
	Successes  int
	LastReward float64
	Signals    telemetry.Signals
}

// #endregion types

// #region driver

// Driver is the explicit scheduler replacing a platform frame callback:
// each frame it runs speedMultiplier sequential ticks against a single
// Simulation. No tick ever runs concurrently with another; cancellation
// is honored between frames, never mid-batch.
type Driver struct {
	sim      *Simulation
	producer *telemetry.Producer
	frames   int
}

// NewDriver creates a driver over sim.
func NewDriver(sim *Simulation) *Driver {
	return &Driver{
		sim:      sim,
		producer: telemetry.NewProducer(telemetry.DefaultProducerConfig()),
	}
}

// #endregion driver

// #region run-frame

// RunFrame executes one batch of the configured speedMultiplier ticks
// and derives telemetry from the policy's reward window. Parameter
// updates applied before a frame take effect for all its ticks.
func (d *Driver) RunFrame() (FrameResult, error) {
	n := d.sim.Config().SpeedMultiplier
	res := FrameResult{}

	for i := 0; i < n; i++ {
		step, err := d.sim.Step()
		if err != nil {
			return res, err
		}
		res.Ticks++
		res.LastReward = step.Reward
		if step.Done {
			res.Successes++
		}
	}

	res.Signals = d.producer.Produce(d.sim.Policy.RewardHistory.Values())
	d.frames++
	return res, nil
}

// #endregion run-frame

// #region run

// Run drives frames at the given interval until ctx is cancelled. A
// cancellation takes effect after the current batch completes. A zero
// interval runs frames back to back.
func (d *Driver) Run(ctx context.Context, frameInterval time.Duration) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		res, err := d.RunFrame()
		if err != nil {
			return err
		}

		if d.frames%600 == 0 {
			log.Printf("[DRIVER] regime=%s frames=%d successes=%d mean=%.4f trend=%+.4f stalled=%v",
				d.sim.Config().Regime, d.frames, d.sim.SuccessCount(),
				res.Signals.MeanReward, res.Signals.Trend, res.Signals.Stalled)
		}

		if frameInterval > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(frameInterval):
			}
		}
	}
}

// #endregion run
