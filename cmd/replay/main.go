package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/UditKarth/Reward-Modeling-Viz/internal/replay"
)

// #region main

func main() {
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: replay fixture.json [fixture.json ...]")
		fmt.Fprintln(os.Stderr, "reruns each fixture and diffs its milestones; exit 1 on divergence")
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	os.Exit(runFixtures(flag.Args()))
}

// #endregion main

// #region fixture-run

func runFixtures(paths []string) int {
	fmt.Printf("%-40s| %-6s| %s\n", "Fixture", "Ticks", "Result")
	fmt.Printf("%-40s+%-7s+%s\n",
		"----------------------------------------", "-------", "---------")

	diverged := 0
	failed := 0

	for _, path := range paths {
		f, err := replay.LoadFixture(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "load fixture: %v\n", err)
			failed++
			continue
		}

		diffs, err := replay.Replay(f)
		if err != nil {
			fmt.Fprintf(os.Stderr, "replay %s: %v\n", path, err)
			failed++
			continue
		}

		result := "OK"
		if len(diffs) > 0 {
			result = "DIFF"
			diverged++
		}
		fmt.Printf("%-40s| %-6d| %s\n", shortPath(path), f.Ticks, result)
		for _, d := range diffs {
			fmt.Printf("    %s\n", d)
		}
	}

	fmt.Printf("\nSummary: %d total, %d match, %d diverge, %d failed\n",
		len(paths), len(paths)-diverged-failed, diverged, failed)

	switch {
	case failed > 0:
		return 2
	case diverged > 0:
		return 1
	default:
		return 0
	}
}

func shortPath(p string) string {
	if len(p) > 40 {
		return "..." + p[len(p)-37:]
	}
	return p
}

// #endregion fixture-run
