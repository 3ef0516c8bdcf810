package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/UditKarth/Reward-Modeling-Viz/internal/outcomes"
	"github.com/UditKarth/Reward-Modeling-Viz/internal/reward"
	_ "modernc.org/sqlite"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to outcomes.db")
	last := flag.Int("last", 20, "show N most recent success events")
	regime := flag.String("regime", "", "filter events to one regime")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/outcomes.db [--last N] [--regime name] [--json]")
		os.Exit(2)
	}

	store, err := outcomes.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := run(store, *last, reward.Regime(*regime), *jsonOut); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region list

type eventRow struct {
	RunID      string  `json:"run_id"`
	Regime     string  `json:"regime"`
	SuccessNum int     `json:"success_num"`
	Ticks      int     `json:"ticks"`
	MeanReward float64 `json:"mean_reward"`
	CreatedAt  string  `json:"created_at"`
}

type output struct {
	Events    []eventRow               `json:"events"`
	Summaries []outcomes.RegimeSummary `json:"summaries"`
}

func run(store *outcomes.Store, last int, regimeFilter reward.Regime, jsonOut bool) error {
	events, err := store.RecentEvents(last)
	if err != nil {
		return err
	}

	var rows []eventRow
	for _, ev := range events {
		if regimeFilter != "" && ev.Regime != regimeFilter {
			continue
		}
		rows = append(rows, eventRow{
			RunID:      shortID(ev.RunID),
			Regime:     string(ev.Regime),
			SuccessNum: ev.SuccessNum,
			Ticks:      ev.Ticks,
			MeanReward: ev.MeanReward,
			CreatedAt:  ev.CreatedAt.Format("2006-01-02T15:04:05Z"),
		})
	}

	summaries, err := store.Summaries()
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(output{Events: rows, Summaries: summaries})
	}
	return printTables(rows, summaries)
}

// #endregion list

// #region output

func printTables(rows []eventRow, summaries []outcomes.RegimeSummary) error {
	if len(rows) == 0 {
		fmt.Fprintln(os.Stderr, "no success events found")
	} else {
		fmt.Printf("%-10s  %-10s  %4s  %6s  %10s  %s\n",
			"Run", "Regime", "#", "Ticks", "Mean", "Time")
		fmt.Printf("%-10s+-%-10s+-%4s+-%6s+-%10s+-%s\n",
			"----------", "----------", "----", "------", "----------", "--------------------")
		for _, r := range rows {
			fmt.Printf("%-10s  %-10s  %4d  %6d  %10.4f  %s\n",
				r.RunID, r.Regime, r.SuccessNum, r.Ticks, r.MeanReward, r.CreatedAt)
		}
	}

	if len(summaries) > 0 {
		fmt.Printf("\nPer-regime summary (decay-weighted mean):\n")
		fmt.Printf("  %-10s  %9s  %9s  %10s\n", "Regime", "Successes", "AvgTicks", "Mean")
		for _, s := range summaries {
			fmt.Printf("  %-10s  %9d  %9.1f  %10.4f\n",
				s.Regime, s.Successes, s.AvgTicks, s.MeanReward)
		}
	}
	return nil
}

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// #endregion output
