// Package replay records and reruns deterministic simulation traces.
// A fixture pins a configuration and the milestones its run must hit;
// replay pushes the same configuration through the real step loop and
// diffs the milestones. Operates entirely in memory.
package replay

import (
	"fmt"
	"math"

	"github.com/UditKarth/Reward-Modeling-Viz/internal/sim"
)

// #region result

// Result captures the milestones of one fixed-length run.
type Result struct {
	Ticks         int
	SuccessCount  int
	SuccessTicks  []int
	FinalDistance float64
	TotalReward   float64
}

// #endregion result

// #region run

// Run executes exactly ticks steps of a fresh simulation and collects
// milestones. The policy carries no exploration noise, so identical
// configurations always produce identical results.
func Run(cfg sim.Config, ticks int) (Result, error) {
	s := sim.New(cfg)
	res := Result{Ticks: ticks}

	for i := 0; i < ticks; i++ {
		step, err := s.Step()
		if err != nil {
			return res, fmt.Errorf("tick %d: %w", i, err)
		}
		res.TotalReward += step.Reward
		if step.Done {
			res.SuccessTicks = append(res.SuccessTicks, i)
		}
	}

	res.SuccessCount = s.SuccessCount()
	res.FinalDistance = s.Distance()
	return res, nil
}

// Record runs a configuration and packages the outcome as a fixture.
func Record(description string, cfg sim.Config, ticks int) (*Fixture, error) {
	res, err := Run(cfg, ticks)
	if err != nil {
		return nil, err
	}
	return &Fixture{
		Description: description,
		Regime:      string(cfg.Regime),
		Config:      FromConfig(cfg),
		Ticks:       ticks,
		Expected: FixtureExpected{
			SuccessCount:  res.SuccessCount,
			SuccessTicks:  res.SuccessTicks,
			FinalDistance: res.FinalDistance,
			TotalReward:   res.TotalReward,
		},
	}, nil
}

// #endregion run

// #region replay

// milestoneTolerance absorbs float formatting loss in stored fixtures.
const milestoneTolerance = 1e-6

// Replay reruns a fixture and returns one human-readable line per
// diverging milestone. An empty slice means the run matched.
func Replay(f *Fixture) ([]string, error) {
	res, err := Run(f.ToConfig(), f.Ticks)
	if err != nil {
		return nil, err
	}

	var diffs []string
	if res.SuccessCount != f.Expected.SuccessCount {
		diffs = append(diffs, fmt.Sprintf("success_count: expected %d, got %d",
			f.Expected.SuccessCount, res.SuccessCount))
	}
	if !equalInts(res.SuccessTicks, f.Expected.SuccessTicks) {
		diffs = append(diffs, fmt.Sprintf("success_ticks: expected %v, got %v",
			f.Expected.SuccessTicks, res.SuccessTicks))
	}
	if math.Abs(res.FinalDistance-f.Expected.FinalDistance) > milestoneTolerance {
		diffs = append(diffs, fmt.Sprintf("final_distance: expected %f, got %f",
			f.Expected.FinalDistance, res.FinalDistance))
	}
	if math.Abs(res.TotalReward-f.Expected.TotalReward) > milestoneTolerance {
		diffs = append(diffs, fmt.Sprintf("total_reward: expected %f, got %f",
			f.Expected.TotalReward, res.TotalReward))
	}
	return diffs, nil
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// #endregion replay
