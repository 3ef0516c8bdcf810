package episode

import (
	"testing"

	"github.com/UditKarth/Reward-Modeling-Viz/internal/geom"
)

func TestRingEvictsOldest(t *testing.T) {
	r := NewRing[int](3)
	for i := 1; i <= 5; i++ {
		r.Push(i)
	}
	if r.Len() != 3 {
		t.Fatalf("len = %d, want 3", r.Len())
	}
	got := r.Values()
	want := []int{3, 4, 5}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("values = %v, want %v", got, want)
		}
	}

	r.Clear()
	if r.Len() != 0 {
		t.Fatalf("len after clear = %d, want 0", r.Len())
	}
}

func TestInitialDistanceLatchesOnce(t *testing.T) {
	e := New(geom.Vec2{X: 100, Y: 150}, geom.Vec2{X: 300, Y: 150})

	if _, ok := e.InitialDistance(); ok {
		t.Fatal("initial distance set before first evaluation")
	}

	e.NoteEvaluation(200)
	if d, ok := e.InitialDistance(); !ok || d != 200 {
		t.Fatalf("initial = (%f, %v), want (200, true)", d, ok)
	}

	// Second evaluation must not overwrite.
	e.NoteEvaluation(150)
	if d, _ := e.InitialDistance(); d != 200 {
		t.Fatalf("initial overwritten to %f", d)
	}
}

func TestRecordTickUpdatesHistoryAndPrevious(t *testing.T) {
	e := New(geom.Vec2{X: 0, Y: 0}, geom.Vec2{X: 100, Y: 0})

	if _, ok := e.PreviousDistance(); ok {
		t.Fatal("previous distance set before first tick")
	}

	e.RecordTick(geom.Vec2{X: 10, Y: 0}, 100)
	if d, ok := e.PreviousDistance(); !ok || d != 100 {
		t.Fatalf("previous = (%f, %v), want (100, true)", d, ok)
	}
	if e.DistanceHistory.Len() != 1 {
		t.Fatalf("history len = %d, want 1", e.DistanceHistory.Len())
	}

	// History never exceeds capacity.
	for i := 0; i < HistoryCap+5; i++ {
		e.RecordTick(geom.Vec2{X: float64(i), Y: 0}, 100)
	}
	if e.DistanceHistory.Len() != HistoryCap {
		t.Fatalf("history len = %d, want %d", e.DistanceHistory.Len(), HistoryCap)
	}
}

func TestSuccessTransitionResetsTransients(t *testing.T) {
	spawn := geom.Vec2{X: 100, Y: 150}
	e := New(spawn, geom.Vec2{X: 300, Y: 150})

	e.NoteEvaluation(e.Distance())
	e.RecordTick(geom.Vec2{X: 280, Y: 150}, 200)

	if !e.InSuccess() {
		t.Fatal("distance 20 should be within default threshold 35")
	}

	e.CompleteSuccess()

	if e.SuccessCount() != 1 {
		t.Fatalf("success count = %d, want 1", e.SuccessCount())
	}
	if e.Agent != spawn {
		t.Fatalf("agent = %v, want spawn %v", e.Agent, spawn)
	}
	if e.DistanceHistory.Len() != 0 {
		t.Fatal("history not cleared on reset")
	}
	if _, ok := e.InitialDistance(); ok {
		t.Fatal("initial distance not cleared on reset")
	}
	if _, ok := e.PreviousDistance(); ok {
		t.Fatal("previous distance not cleared on reset")
	}
}

func TestSuccessCountSurvivesResets(t *testing.T) {
	e := New(geom.Vec2{}, geom.Vec2{X: 300})

	e.CompleteSuccess()
	e.CompleteSuccess()
	if e.SuccessCount() != 2 {
		t.Fatalf("success count = %d, want 2", e.SuccessCount())
	}

	e.ResetSuccessCount()
	if e.SuccessCount() != 0 {
		t.Fatalf("success count after reset = %d, want 0", e.SuccessCount())
	}
}

func TestDistanceSymmetry(t *testing.T) {
	a := geom.Vec2{X: 3, Y: 4}
	b := geom.Vec2{X: 0, Y: 0}
	if geom.Dist(a, b) != 5 || geom.Dist(b, a) != 5 {
		t.Fatal("distance not symmetric")
	}
	if geom.Dist(a, a) != 0 {
		t.Fatal("distance to self not zero")
	}
}
