package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/UditKarth/Reward-Modeling-Viz/internal/client"
	"github.com/UditKarth/Reward-Modeling-Viz/internal/reward"
)

// #region main

func main() {
	addr := flag.String("addr", envOr("SIM_ADDR", "localhost:50061"), "simd address")
	regime := flag.String("regime", string(reward.RegimeSemantic), "reward regime")
	jsonOut := flag.Bool("json", false, "output as JSON instead of text")
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
		os.Exit(2)
	}

	c, err := client.NewSimClient(*addr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "connect %s: %v\n", *addr, err)
		os.Exit(1)
	}
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	r := reward.Regime(*regime)
	switch flag.Arg(0) {
	case "step":
		err = runStep(ctx, c, r, flag.Args()[1:], *jsonOut)
	case "state":
		err = runState(ctx, c, r, *jsonOut)
	case "reset":
		err = c.ResetSuccessCount(ctx, r)
	case "field":
		err = runField(ctx, c, r, flag.Args()[1:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: simctl [--addr host:port] [--regime name] [--json] <command>")
	fmt.Fprintln(os.Stderr, "commands:")
	fmt.Fprintln(os.Stderr, "  step  [--frames N] [--gamma G] [--lr L]   run frames and report the batch")
	fmt.Fprintln(os.Stderr, "  state                                     show the regime's episode snapshot")
	fmt.Fprintln(os.Stderr, "  reset                                     clear the regime's success counter")
	fmt.Fprintln(os.Stderr, "  field [--width W] [--height H] [--out F]  dump the reward overlay as raw RGBA")
}

// #endregion main

// #region step

func runStep(ctx context.Context, c *client.SimClient, regime reward.Regime, args []string, jsonOut bool) error {
	fs := flag.NewFlagSet("step", flag.ExitOnError)
	frames := fs.Int("frames", 1, "frames to run")
	gamma := fs.Float64("gamma", 0, "gamma override (0 keeps current)")
	lr := fs.Float64("lr", 0, "learning rate override (0 keeps current)")
	fs.Parse(args)

	res, err := c.Step(ctx, regime, *gamma, *lr, *frames)
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(res)
	}
	fmt.Printf("regime=%s ticks=%d successes=%d lastReward=%.4f done=%v\n",
		regime, res.Ticks, res.Successes, res.Reward, res.Done)
	return nil
}

// #endregion step

// #region state

func runState(ctx context.Context, c *client.SimClient, regime reward.Regime, jsonOut bool) error {
	st, err := c.GetState(ctx, regime)
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(st)
	}
	fmt.Printf("Regime:    %s\n", regime)
	fmt.Printf("Agent:     (%.1f, %.1f)\n", st.Agent.X, st.Agent.Y)
	fmt.Printf("Goal:      (%.1f, %.1f)\n", st.Goal.X, st.Goal.Y)
	fmt.Printf("Distance:  %.2f\n", st.Distance)
	fmt.Printf("Successes: %d\n", st.SuccessCount)
	fmt.Printf("Mean:      %.4f  Trend: %+.4f  Stalled: %v\n", st.MeanReward, st.Trend, st.Stalled)
	return nil
}

// #endregion state

// #region field

func runField(ctx context.Context, c *client.SimClient, regime reward.Regime, args []string) error {
	fs := flag.NewFlagSet("field", flag.ExitOnError)
	width := fs.Int("width", 60, "field width in cells")
	height := fs.Int("height", 30, "field height in cells")
	out := fs.String("out", "", "write raw RGBA to file instead of summarizing")
	fs.Parse(args)

	pixels, err := c.GradientField(ctx, client.FieldRequest{
		Width:  *width,
		Height: *height,
		Regime: regime,
	})
	if err != nil {
		return err
	}

	if *out != "" {
		if err := os.WriteFile(*out, pixels, 0644); err != nil {
			return fmt.Errorf("write %s: %w", *out, err)
		}
		fmt.Printf("wrote %d bytes (%dx%d RGBA) to %s\n", len(pixels), *width, *height, *out)
		return nil
	}

	fmt.Printf("%dx%d field, %d bytes\n", *width, *height, len(pixels))
	return nil
}

// #endregion field

// #region helpers

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion helpers
