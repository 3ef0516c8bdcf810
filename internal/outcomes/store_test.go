package outcomes

import (
	"path/filepath"
	"testing"

	"github.com/UditKarth/Reward-Modeling-Viz/internal/reward"
)

func tempDB(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "outcomes.db"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestBeginRunAndRecord(t *testing.T) {
	s := tempDB(t)

	runID, err := s.BeginRun(reward.RegimeSemantic)
	if err != nil {
		t.Fatalf("BeginRun: %v", err)
	}
	if runID == "" {
		t.Fatal("expected non-empty run ID")
	}

	ev := SuccessEvent{
		RunID:      runID,
		Regime:     reward.RegimeSemantic,
		SuccessNum: 1,
		Ticks:      72,
		MeanReward: 0.61,
	}
	if err := s.RecordSuccess(ev); err != nil {
		t.Fatalf("RecordSuccess: %v", err)
	}

	events, err := s.RecentEvents(10)
	if err != nil {
		t.Fatalf("RecentEvents: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("events = %d, want 1", len(events))
	}
	got := events[0]
	if got.RunID != runID || got.Regime != reward.RegimeSemantic || got.Ticks != 72 {
		t.Fatalf("round-trip mismatch: %+v", got)
	}
	if got.CreatedAt.IsZero() {
		t.Fatal("created_at not filled in")
	}
}

func TestRecentEventsNewestFirst(t *testing.T) {
	s := tempDB(t)
	runID, _ := s.BeginRun(reward.RegimeSparse)

	for i := 1; i <= 5; i++ {
		ev := SuccessEvent{RunID: runID, Regime: reward.RegimeSparse, SuccessNum: i, Ticks: 100 + i}
		if err := s.RecordSuccess(ev); err != nil {
			t.Fatalf("RecordSuccess %d: %v", i, err)
		}
	}

	events, err := s.RecentEvents(3)
	if err != nil {
		t.Fatalf("RecentEvents: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("events = %d, want 3", len(events))
	}
	if events[0].SuccessNum != 5 || events[2].SuccessNum != 3 {
		t.Fatalf("ordering wrong: %d, %d, %d",
			events[0].SuccessNum, events[1].SuccessNum, events[2].SuccessNum)
	}
}

func TestSummariesPerRegime(t *testing.T) {
	s := tempDB(t)

	semRun, _ := s.BeginRun(reward.RegimeSemantic)
	sparseRun, _ := s.BeginRun(reward.RegimeSparse)

	for i, ticks := range []int{60, 80} {
		if err := s.RecordSuccess(SuccessEvent{
			RunID: semRun, Regime: reward.RegimeSemantic,
			SuccessNum: i + 1, Ticks: ticks, MeanReward: 0.5,
		}); err != nil {
			t.Fatalf("RecordSuccess: %v", err)
		}
	}
	if err := s.RecordSuccess(SuccessEvent{
		RunID: sparseRun, Regime: reward.RegimeSparse,
		SuccessNum: 1, Ticks: 120, MeanReward: 0.0,
	}); err != nil {
		t.Fatalf("RecordSuccess: %v", err)
	}

	sums, err := s.Summaries()
	if err != nil {
		t.Fatalf("Summaries: %v", err)
	}
	if len(sums) != 2 {
		t.Fatalf("summaries = %d, want 2", len(sums))
	}

	byRegime := make(map[reward.Regime]RegimeSummary)
	for _, sum := range sums {
		byRegime[sum.Regime] = sum
	}

	sem := byRegime[reward.RegimeSemantic]
	if sem.Successes != 2 || sem.AvgTicks != 70 {
		t.Fatalf("semantic summary = %+v, want 2 successes, avg 70 ticks", sem)
	}
	// Fresh events: decay weight ≈ 1, so the weighted mean is ≈ 0.5.
	if sem.MeanReward < 0.49 || sem.MeanReward > 0.51 {
		t.Fatalf("semantic mean reward = %f, want ≈ 0.5", sem.MeanReward)
	}

	if byRegime[reward.RegimeSparse].Successes != 1 {
		t.Fatalf("sparse summary = %+v, want 1 success", byRegime[reward.RegimeSparse])
	}
}
