// Package server exposes the per-regime simulations over gRPC. Each
// regime owns one Simulation; a mutex serializes RPCs so ticks never
// interleave within a regime or across regimes.
package server

import (
	"context"
	"log"
	"sync"
	"time"

	pb "github.com/UditKarth/Reward-Modeling-Viz/gen/simpb"
	"github.com/UditKarth/Reward-Modeling-Viz/internal/field"
	"github.com/UditKarth/Reward-Modeling-Viz/internal/geom"
	"github.com/UditKarth/Reward-Modeling-Viz/internal/outcomes"
	"github.com/UditKarth/Reward-Modeling-Viz/internal/reward"
	"github.com/UditKarth/Reward-Modeling-Viz/internal/sim"
	"github.com/UditKarth/Reward-Modeling-Viz/internal/telemetry"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// #region types

// regimeState is one regime's live simulation plus its run bookkeeping.
type regimeState struct {
	sim *sim.Simulation

	runID           string
	ticks           int // total ticks this run
	lastSuccessTick int
	successes       int // ordinal source for success_events
}

// Server implements pb.SimServiceServer over one Simulation per known
// regime. The store is optional; with a nil store successes are only
// counted, not persisted.
type Server struct {
	pb.UnimplementedSimServiceServer

	mu       sync.Mutex
	regimes  map[reward.Regime]*regimeState
	producer *telemetry.Producer
	fields   *field.Cache
	store    *outcomes.Store
}

// #endregion types

// #region constructor

// New creates a Server with a default-configured simulation per regime.
// When store is non-nil a run row is opened per regime.
func New(store *outcomes.Store) (*Server, error) {
	s := &Server{
		regimes:  make(map[reward.Regime]*regimeState),
		producer: telemetry.NewProducer(telemetry.DefaultProducerConfig()),
		fields:   field.NewCache(),
		store:    store,
	}

	for _, regime := range reward.Regimes() {
		cfg, adjusted := sim.DefaultConfig(regime).Clamp()
		for _, a := range adjusted {
			log.Printf("[SERVER] regime=%s config adjusted: %s", regime, a)
		}

		rs := &regimeState{sim: sim.New(cfg)}
		if store != nil {
			runID, err := store.BeginRun(regime)
			if err != nil {
				return nil, err
			}
			rs.runID = runID
		}
		s.regimes[regime] = rs
	}

	return s, nil
}

// #endregion constructor

// #region step

// Step runs the requested number of frames for one regime. Gamma and
// learning-rate overrides apply to the whole batch; zero means "keep
// the current value". The response reports the last tick's reward and
// the batch totals.
func (s *Server) Step(ctx context.Context, req *pb.StepRequest) (*pb.StepResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rs, err := s.lookup(req.Regime)
	if err != nil {
		return nil, err
	}

	params := rs.sim.Config().Params
	if req.Gamma != 0 {
		params.Gamma = geom.Clamp(req.Gamma, 0, 1)
	}
	if req.LearningRate != 0 {
		params.LearningRate = geom.Clamp(req.LearningRate, 0, 1)
	}
	rs.sim.SetParams(params)

	frames := int(req.Frames)
	if frames < 1 {
		frames = 1
	}

	resp := &pb.StepResponse{}
	ticksPerFrame := rs.sim.Config().SpeedMultiplier

	for f := 0; f < frames; f++ {
		for i := 0; i < ticksPerFrame; i++ {
			step, err := rs.sim.Step()
			if err != nil {
				return nil, status.Errorf(codes.Internal, "step: %v", err)
			}
			rs.ticks++
			resp.Ticks++
			resp.Reward = step.Reward
			resp.Done = step.Done
			if step.Done {
				resp.Successes++
				s.recordSuccess(rs)
			}
		}
	}

	return resp, nil
}

// recordSuccess persists one completed episode. Persistence failures
// are logged, never surfaced: the simulation outranks the ledger.
func (s *Server) recordSuccess(rs *regimeState) {
	rs.successes++
	episodeTicks := rs.ticks - rs.lastSuccessTick
	rs.lastSuccessTick = rs.ticks

	if s.store == nil {
		return
	}

	signals := s.producer.Produce(rs.sim.Policy.RewardHistory.Values())
	err := s.store.RecordSuccess(outcomes.SuccessEvent{
		RunID:      rs.runID,
		Regime:     rs.sim.Config().Regime,
		SuccessNum: rs.successes,
		Ticks:      episodeTicks,
		MeanReward: signals.MeanReward,
		CreatedAt:  time.Now().UTC(),
	})
	if err != nil {
		log.Printf("[SERVER] record success: %v", err)
	}
}

// #endregion step

// #region get-state

// GetState reports one regime's episode and telemetry snapshot.
func (s *Server) GetState(ctx context.Context, req *pb.GetStateRequest) (*pb.GetStateResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rs, err := s.lookup(req.Regime)
	if err != nil {
		return nil, err
	}

	agent := rs.sim.AgentPosition()
	goal := rs.sim.GoalPosition()
	signals := s.producer.Produce(rs.sim.Policy.RewardHistory.Values())

	return &pb.GetStateResponse{
		Agent:        &pb.Vec2{X: agent.X, Y: agent.Y},
		Goal:         &pb.Vec2{X: goal.X, Y: goal.Y},
		Distance:     rs.sim.Distance(),
		SuccessCount: int32(rs.sim.SuccessCount()),
		MeanReward:   signals.MeanReward,
		Trend:        signals.Trend,
		Stalled:      signals.Stalled,
	}, nil
}

// #endregion get-state

// #region reset

// ResetSuccessCount clears one regime's external success counter. The
// episode itself is untouched; the run's persisted events remain.
func (s *Server) ResetSuccessCount(ctx context.Context, req *pb.ResetSuccessCountRequest) (*pb.ResetSuccessCountResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rs, err := s.lookup(req.Regime)
	if err != nil {
		return nil, err
	}

	rs.sim.ResetSuccessCount()
	return &pb.ResetSuccessCountResponse{}, nil
}

// #endregion reset

// #region gradient-field

// GradientField renders the per-cell reward snapshot for an overlay.
// A nil goal defaults to the regime's live goal; threshold/gamma/
// learning-rate zeros default to the regime's current parameters.
func (s *Server) GradientField(ctx context.Context, req *pb.GradientFieldRequest) (*pb.GradientFieldResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rs, err := s.lookup(req.Regime)
	if err != nil {
		return nil, err
	}
	if req.Width < 1 || req.Height < 1 {
		return nil, status.Errorf(codes.InvalidArgument, "field dimensions %dx%d", req.Width, req.Height)
	}

	goal := rs.sim.GoalPosition()
	if req.Goal != nil {
		goal = geom.Vec2{X: req.Goal.X, Y: req.Goal.Y}
	}

	params := rs.sim.Config().Params
	if req.Threshold != 0 {
		params.Threshold = req.Threshold
	}
	if req.Gamma != 0 {
		params.Gamma = geom.Clamp(req.Gamma, 0, 1)
	}
	if req.LearningRate != 0 {
		params.LearningRate = geom.Clamp(req.LearningRate, 0, 1)
	}

	regime := reward.Regime(req.Regime)
	pixels := s.fields.Get(int(req.Width), int(req.Height), goal, regime, params)

	return &pb.GradientFieldResponse{Pixels: pixels}, nil
}

// #endregion gradient-field

// #region helpers

// lookup resolves a wire regime name. Unknown names are a client error
// here even though the core simulates them leniently: the server only
// ever constructs the four known simulations.
func (s *Server) lookup(name string) (*regimeState, error) {
	rs, ok := s.regimes[reward.Regime(name)]
	if !ok {
		return nil, status.Errorf(codes.InvalidArgument, "unknown regime %q", name)
	}
	return rs, nil
}

// #endregion helpers
