package outcomes

import (
	"time"

	"github.com/UditKarth/Reward-Modeling-Viz/internal/reward"
)

// #region run

// Run identifies one daemon session of a regime's simulation.
type Run struct {
	RunID     string
	Regime    reward.Regime
	StartedAt time.Time
}

// #endregion run

// #region success-event

// SuccessEvent is a single row for success_events: one completed
// episode of one run.
type SuccessEvent struct {
	RunID      string
	Regime     reward.Regime
	SuccessNum int     // episode ordinal within the run, 1-based
	Ticks      int     // ticks from spawn to the success transition
	MeanReward float64 // telemetry window mean at the success tick
	CreatedAt  time.Time
}

// #endregion success-event

// #region summary

// RegimeSummary aggregates success events per regime. MeanReward is
// decay-weighted so stale sessions stop dominating the comparison.
type RegimeSummary struct {
	Regime     reward.Regime
	Successes  int
	AvgTicks   float64
	MeanReward float64
}

// #endregion summary
