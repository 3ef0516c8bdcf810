package telemetry

import (
	"math"
	"testing"
)

func TestProduceEmptyWindow(t *testing.T) {
	p := NewProducer(DefaultProducerConfig())
	s := p.Produce(nil)
	if s != (Signals{}) {
		t.Fatalf("empty window produced %+v, want zero signals", s)
	}
}

func TestProduceClimbingTrend(t *testing.T) {
	p := NewProducer(DefaultProducerConfig())
	s := p.Produce([]float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8})

	if s.Trend <= 0 {
		t.Fatalf("trend = %f, want > 0 for climbing rewards", s.Trend)
	}
	if s.Stalled {
		t.Fatal("climbing window flagged as stalled")
	}
	if math.Abs(s.MeanReward-0.45) > 1e-12 {
		t.Fatalf("mean = %f, want 0.45", s.MeanReward)
	}
}

func TestProduceFallingTrend(t *testing.T) {
	p := NewProducer(DefaultProducerConfig())
	s := p.Produce([]float64{0.8, 0.6, 0.4, 0.2})
	if s.Trend >= 0 {
		t.Fatalf("trend = %f, want < 0 for falling rewards", s.Trend)
	}
}

func TestStallRequiresFullWindow(t *testing.T) {
	p := NewProducer(DefaultProducerConfig())

	// Flat but short: not enough samples to call it a stall.
	s := p.Produce([]float64{0, 0, 0})
	if s.Stalled {
		t.Fatal("short flat window flagged as stalled")
	}

	// Flat and full: the sparse regime away from the boundary.
	s = p.Produce([]float64{0, 0, 0, 0, 0, 0, 0, 0})
	if !s.Stalled {
		t.Fatal("full flat window not flagged as stalled")
	}
}
