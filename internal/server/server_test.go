package server

import (
	"context"
	"path/filepath"
	"testing"

	pb "github.com/UditKarth/Reward-Modeling-Viz/gen/simpb"
	"github.com/UditKarth/Reward-Modeling-Viz/internal/outcomes"
	"github.com/UditKarth/Reward-Modeling-Viz/internal/reward"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	s, err := New(nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func TestStepUnknownRegime(t *testing.T) {
	s := newTestServer(t)

	_, err := s.Step(context.Background(), &pb.StepRequest{Regime: "bogus"})
	if err == nil {
		t.Fatal("Step accepted an unknown regime")
	}
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("code = %v, want InvalidArgument", status.Code(err))
	}
}

func TestStepAccumulatesTicksAndSuccesses(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	resp, err := s.Step(ctx, &pb.StepRequest{
		Regime: string(reward.RegimeSemantic),
		Frames: 400,
	})
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	if resp.Ticks != 400 {
		t.Fatalf("ticks = %d, want 400", resp.Ticks)
	}
	if resp.Successes < 1 {
		t.Fatal("400 semantic ticks produced no success")
	}

	state, err := s.GetState(ctx, &pb.GetStateRequest{Regime: string(reward.RegimeSemantic)})
	if err != nil {
		t.Fatalf("GetState: %v", err)
	}
	if state.SuccessCount != resp.Successes {
		t.Fatalf("success count = %d, want %d", state.SuccessCount, resp.Successes)
	}
}

func TestStepParameterOverridesApply(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	// Out-of-range overrides clamp rather than error.
	_, err := s.Step(ctx, &pb.StepRequest{
		Regime:       string(reward.RegimeShaping),
		Gamma:        3.5,
		LearningRate: -1,
		Frames:       1,
	})
	if err != nil {
		t.Fatalf("Step: %v", err)
	}

	rs := s.regimes[reward.RegimeShaping]
	p := rs.sim.Config().Params
	if p.Gamma != 1 || p.LearningRate != 0 {
		t.Fatalf("params = %+v, want gamma 1 learningRate 0", p)
	}
}

func TestResetSuccessCount(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()
	regime := string(reward.RegimeSemantic)

	if _, err := s.Step(ctx, &pb.StepRequest{Regime: regime, Frames: 400}); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if _, err := s.ResetSuccessCount(ctx, &pb.ResetSuccessCountRequest{Regime: regime}); err != nil {
		t.Fatalf("ResetSuccessCount: %v", err)
	}

	state, err := s.GetState(ctx, &pb.GetStateRequest{Regime: regime})
	if err != nil {
		t.Fatalf("GetState: %v", err)
	}
	if state.SuccessCount != 0 {
		t.Fatalf("success count = %d after reset, want 0", state.SuccessCount)
	}
}

func TestGradientFieldShape(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	resp, err := s.GradientField(ctx, &pb.GradientFieldRequest{
		Regime: string(reward.RegimeSparse),
		Width:  30,
		Height: 15,
	})
	if err != nil {
		t.Fatalf("GradientField: %v", err)
	}
	if len(resp.Pixels) != 30*15*4 {
		t.Fatalf("pixels = %d bytes, want %d", len(resp.Pixels), 30*15*4)
	}

	if _, err := s.GradientField(ctx, &pb.GradientFieldRequest{
		Regime: string(reward.RegimeSparse),
		Width:  0,
		Height: 10,
	}); status.Code(err) != codes.InvalidArgument {
		t.Fatalf("zero width: code = %v, want InvalidArgument", status.Code(err))
	}
}

func TestSuccessEventsPersist(t *testing.T) {
	store, err := outcomes.NewStore(filepath.Join(t.TempDir(), "outcomes.db"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	s, err := New(store)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	resp, err := s.Step(context.Background(), &pb.StepRequest{
		Regime: string(reward.RegimeSemantic),
		Frames: 400,
	})
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	if resp.Successes < 1 {
		t.Fatal("no successes to persist")
	}

	events, err := store.RecentEvents(10)
	if err != nil {
		t.Fatalf("RecentEvents: %v", err)
	}
	if len(events) != int(resp.Successes) {
		t.Fatalf("persisted %d events, want %d", len(events), resp.Successes)
	}
	if events[0].Regime != reward.RegimeSemantic {
		t.Fatalf("event regime = %q", events[0].Regime)
	}
	if events[0].Ticks <= 0 {
		t.Fatalf("event ticks = %d, want > 0", events[0].Ticks)
	}
}
