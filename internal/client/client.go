// Package client wraps the SimService gRPC surface in plain Go types
// so callers never touch the generated bindings.
package client

import (
	"context"
	"fmt"

	pb "github.com/UditKarth/Reward-Modeling-Viz/gen/simpb"
	"github.com/UditKarth/Reward-Modeling-Viz/internal/geom"
	"github.com/UditKarth/Reward-Modeling-Viz/internal/reward"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// #region types

// StepResult holds the response from a Step RPC call.
type StepResult struct {
	Reward    float64
	Done      bool
	Ticks     int
	Successes int
}

// State holds the response from a GetState RPC call.
type State struct {
	Agent        geom.Vec2
	Goal         geom.Vec2
	Distance     float64
	SuccessCount int
	MeanReward   float64
	Trend        float64
	Stalled      bool
}

// FieldRequest parameterizes a GradientField RPC call. A nil Goal and
// zero parameters defer to the server-side regime state.
type FieldRequest struct {
	Width, Height int
	Goal          *geom.Vec2
	Regime        reward.Regime
	Threshold     float64
	Gamma         float64
	LearningRate  float64
}

// #endregion types

// #region client-struct

// SimClient wraps the gRPC connection to the simulation daemon.
type SimClient struct {
	conn   *grpc.ClientConn
	client pb.SimServiceClient
}

// #endregion client-struct

// #region constructor

// NewSimClient connects to the simulation daemon.
func NewSimClient(addr string) (*SimClient, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("grpc dial %s: %w", addr, err)
	}
	return &SimClient{
		conn:   conn,
		client: pb.NewSimServiceClient(conn),
	}, nil
}

// NewSimClientWithService creates a SimClient with an injected service
// implementation. Used for testing without a real gRPC connection.
func NewSimClientWithService(svc pb.SimServiceClient) *SimClient {
	return &SimClient{client: svc}
}

// #endregion constructor

// #region close

// Close shuts down the gRPC connection.
func (c *SimClient) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// #endregion close

// #region step

// Step runs frames batches of the regime's simulation. Zero gamma or
// learningRate keeps the server-side value.
func (c *SimClient) Step(ctx context.Context, regime reward.Regime, gamma, learningRate float64, frames int) (StepResult, error) {
	resp, err := c.client.Step(ctx, &pb.StepRequest{
		Regime:       string(regime),
		Gamma:        gamma,
		LearningRate: learningRate,
		Frames:       int32(frames),
	})
	if err != nil {
		return StepResult{}, fmt.Errorf("step rpc: %w", err)
	}

	return StepResult{
		Reward:    resp.Reward,
		Done:      resp.Done,
		Ticks:     int(resp.Ticks),
		Successes: int(resp.Successes),
	}, nil
}

// #endregion step

// #region get-state

// GetState fetches the regime's episode and telemetry snapshot.
func (c *SimClient) GetState(ctx context.Context, regime reward.Regime) (State, error) {
	resp, err := c.client.GetState(ctx, &pb.GetStateRequest{
		Regime: string(regime),
	})
	if err != nil {
		return State{}, fmt.Errorf("get state rpc: %w", err)
	}

	st := State{
		Distance:     resp.Distance,
		SuccessCount: int(resp.SuccessCount),
		MeanReward:   resp.MeanReward,
		Trend:        resp.Trend,
		Stalled:      resp.Stalled,
	}
	if resp.Agent != nil {
		st.Agent = geom.Vec2{X: resp.Agent.X, Y: resp.Agent.Y}
	}
	if resp.Goal != nil {
		st.Goal = geom.Vec2{X: resp.Goal.X, Y: resp.Goal.Y}
	}
	return st, nil
}

// #endregion get-state

// #region reset

// ResetSuccessCount clears the regime's external success counter.
func (c *SimClient) ResetSuccessCount(ctx context.Context, regime reward.Regime) error {
	_, err := c.client.ResetSuccessCount(ctx, &pb.ResetSuccessCountRequest{
		Regime: string(regime),
	})
	if err != nil {
		return fmt.Errorf("reset success count rpc: %w", err)
	}
	return nil
}

// #endregion reset

// #region gradient-field

// GradientField fetches the per-cell reward overlay as RGBA bytes,
// row-major, 4 bytes per cell.
func (c *SimClient) GradientField(ctx context.Context, req FieldRequest) ([]byte, error) {
	wire := &pb.GradientFieldRequest{
		Width:        int32(req.Width),
		Height:       int32(req.Height),
		Regime:       string(req.Regime),
		Threshold:    req.Threshold,
		Gamma:        req.Gamma,
		LearningRate: req.LearningRate,
	}
	if req.Goal != nil {
		wire.Goal = &pb.Vec2{X: req.Goal.X, Y: req.Goal.Y}
	}

	resp, err := c.client.GradientField(ctx, wire)
	if err != nil {
		return nil, fmt.Errorf("gradient field rpc: %w", err)
	}
	return resp.Pixels, nil
}

// #endregion gradient-field
