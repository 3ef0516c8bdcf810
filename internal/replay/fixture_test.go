package replay

import (
	"path/filepath"
	"testing"

	"github.com/UditKarth/Reward-Modeling-Viz/internal/geom"
	"github.com/UditKarth/Reward-Modeling-Viz/internal/reward"
	"github.com/UditKarth/Reward-Modeling-Viz/internal/sim"
)

func TestFixtureRoundTrip(t *testing.T) {
	cfg := sim.DefaultConfig(reward.RegimeSemantic)
	cfg.SpeedMultiplier = 3

	f, err := Record("round trip", cfg, 120)
	if err != nil {
		t.Fatalf("Record: %v", err)
	}

	path := filepath.Join(t.TempDir(), "fixture.json")
	if err := SaveFixture(path, f); err != nil {
		t.Fatalf("SaveFixture: %v", err)
	}

	loaded, err := LoadFixture(path)
	if err != nil {
		t.Fatalf("LoadFixture: %v", err)
	}

	if loaded.Regime != string(reward.RegimeSemantic) {
		t.Fatalf("regime = %q, want %q", loaded.Regime, reward.RegimeSemantic)
	}
	if loaded.Ticks != 120 {
		t.Fatalf("ticks = %d, want 120", loaded.Ticks)
	}
	if loaded.Config.SpeedMultiplier != 3 {
		t.Fatalf("speed multiplier = %d, want 3", loaded.Config.SpeedMultiplier)
	}

	// A loaded fixture replays clean: serialization lost nothing.
	diffs, err := Replay(loaded)
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if len(diffs) != 0 {
		t.Fatalf("loaded fixture diverged: %v", diffs)
	}
}

func TestToConfigMapsEveryField(t *testing.T) {
	cfg := sim.Config{
		Regime:           reward.RegimeShaping,
		Params:           reward.Params{Threshold: 25, Gamma: 0.8, LearningRate: 0.3, BaseReward: 0.1},
		Bounds:           geom.Vec2{X: 640, Y: 360},
		Spawn:            geom.Vec2{X: 50, Y: 60},
		Goal:             geom.Vec2{X: 500, Y: 200},
		SuccessThreshold: 40,
		SpeedMultiplier:  7,
	}

	got := (&Fixture{
		Regime: string(cfg.Regime),
		Config: FromConfig(cfg),
	}).ToConfig()

	if got != cfg {
		t.Fatalf("config round trip mismatch:\n got %+v\nwant %+v", got, cfg)
	}
}
