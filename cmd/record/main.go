package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/UditKarth/Reward-Modeling-Viz/internal/replay"
	"github.com/UditKarth/Reward-Modeling-Viz/internal/reward"
	"github.com/UditKarth/Reward-Modeling-Viz/internal/sim"
)

// #region main

func main() {
	regime := flag.String("regime", string(reward.RegimeSemantic), "reward regime to record")
	ticks := flag.Int("ticks", 600, "number of ticks to run")
	outPath := flag.String("out", "", "output fixture JSON path")
	desc := flag.String("desc", "", "fixture description")
	gamma := flag.Float64("gamma", -1, "gamma override (negative keeps default)")
	lr := flag.Float64("lr", -1, "learning rate override (negative keeps default)")
	mult := flag.Int("mult", 1, "speed multiplier")
	flag.Parse()

	if *outPath == "" {
		fmt.Fprintln(os.Stderr, "usage: record --out path/to/fixture.json [--regime name] [--ticks N] [--desc text]")
		os.Exit(2)
	}

	if err := run(reward.Regime(*regime), *ticks, *outPath, *desc, *gamma, *lr, *mult); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region record

func run(regime reward.Regime, ticks int, outPath, desc string, gamma, lr float64, mult int) error {
	if !reward.Known(regime) {
		return fmt.Errorf("unknown regime %q (known: %v)", regime, reward.Regimes())
	}

	cfg := sim.DefaultConfig(regime)
	if gamma >= 0 {
		cfg.Params.Gamma = gamma
	}
	if lr >= 0 {
		cfg.Params.LearningRate = lr
	}
	cfg.SpeedMultiplier = mult

	cfg, adjusted := cfg.Clamp()
	for _, a := range adjusted {
		fmt.Fprintf(os.Stderr, "config adjusted: %s\n", a)
	}

	if desc == "" {
		desc = fmt.Sprintf("%s baseline: %d ticks from default geometry", regime, ticks)
	}

	f, err := replay.Record(desc, cfg, ticks)
	if err != nil {
		return err
	}

	if err := replay.SaveFixture(outPath, f); err != nil {
		return err
	}

	fmt.Printf("Wrote fixture to %s (%d ticks, %d successes, final distance %.2f)\n",
		outPath, f.Ticks, f.Expected.SuccessCount, f.Expected.FinalDistance)
	return nil
}

// #endregion record
