// Package telemetry derives per-window signals from the policy's recent
// reward history. Signals are advisory: the driver logs them and the
// server exposes them, but nothing in the control path reads them.
package telemetry

// #region config

// ProducerConfig tunes signal derivation.
type ProducerConfig struct {
	// StallEpsilon is the trend magnitude below which the reward stream
	// counts as flat.
	StallEpsilon float64
	// MinSamples is the window size required before Stalled can fire.
	MinSamples int
}

// DefaultProducerConfig returns sensible defaults for the capacity-10
// reward history.
func DefaultProducerConfig() ProducerConfig {
	return ProducerConfig{
		StallEpsilon: 1e-4,
		MinSamples:   8,
	}
}

// #endregion config

// #region signals

// Signals summarizes a reward window.
type Signals struct {
	// MeanReward is the window average.
	MeanReward float64
	// Trend is mean(second half) − mean(first half): positive while the
	// policy is climbing the reward surface.
	Trend float64
	// Stalled fires when a full window shows no trend. Expected under
	// the sparse regime away from the boundary.
	Stalled bool
	// Samples is the window size the signals were derived from.
	Samples int
}

// #endregion signals

// #region producer

// Producer computes Signals from a reward window.
type Producer struct {
	config ProducerConfig
}

// NewProducer creates a Producer.
func NewProducer(config ProducerConfig) *Producer {
	return &Producer{config: config}
}

// Produce derives signals from rewards, oldest first. An empty window
// yields zero signals.
func (p *Producer) Produce(rewards []float64) Signals {
	n := len(rewards)
	if n == 0 {
		return Signals{}
	}

	s := Signals{Samples: n}
	s.MeanReward = mean(rewards)

	if n >= 2 {
		half := n / 2
		s.Trend = mean(rewards[half:]) - mean(rewards[:half])
	}

	if n >= p.config.MinSamples && abs(s.Trend) < p.config.StallEpsilon {
		s.Stalled = true
	}

	return s
}

// #endregion producer

// #region helpers

func mean(vs []float64) float64 {
	var sum float64
	for _, v := range vs {
		sum += v
	}
	return sum / float64(len(vs))
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// #endregion helpers
