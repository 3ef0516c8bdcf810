package reward

import (
	"errors"
	"math"
	"testing"
)

func TestSparseBoundary(t *testing.T) {
	const threshold = 35.0
	cases := []struct {
		name string
		dist float64
		want float64
	}{
		{"well outside", 200, 0},
		{"just outside", threshold + 0.001, 0},
		{"on boundary", threshold, 0},
		{"just inside", threshold - 0.001, 1},
		{"at goal", 0, 1},
	}
	for _, c := range cases {
		if got := Sparse(c.dist, threshold); got != c.want {
			t.Fatalf("%s: Sparse(%f) = %f, want %f", c.name, c.dist, got, c.want)
		}
	}
}

func TestSemanticKernel(t *testing.T) {
	if got := Semantic(0); got != 1.0 {
		t.Fatalf("Semantic(0) = %f, want 1", got)
	}

	// At dist = σ the kernel is exp(-1/2).
	want := math.Exp(-0.5)
	if got := Semantic(Sigma); math.Abs(got-want) > 1e-12 {
		t.Fatalf("Semantic(σ) = %f, want %f", got, want)
	}

	// Strictly decreasing, always positive.
	prev := Semantic(0)
	for d := 10.0; d <= 500; d += 10 {
		cur := Semantic(d)
		if cur <= 0 || cur > 1 {
			t.Fatalf("Semantic(%f) = %f out of (0,1]", d, cur)
		}
		if cur >= prev {
			t.Fatalf("Semantic not strictly decreasing at dist %f", d)
		}
		prev = cur
	}
}

func TestProgressModel(t *testing.T) {
	// Halfway there: initial 200, current 100, lr 0.1 → 0.05.
	if got := Progress(200, 100, 0.1); math.Abs(got-0.05) > 1e-12 {
		t.Fatalf("Progress(200,100,0.1) = %f, want 0.05", got)
	}

	// No progress yet.
	if got := Progress(200, 200, 0.1); got != 0 {
		t.Fatalf("Progress at initial distance = %f, want 0", got)
	}

	// Moving away never goes negative.
	if got := Progress(200, 350, 0.1); got != 0 {
		t.Fatalf("Progress past initial = %f, want 0", got)
	}

	// Full approach converges to learningRate.
	if got := Progress(200, 0, 0.1); math.Abs(got-0.1) > 1e-12 {
		t.Fatalf("Progress at goal = %f, want 0.1", got)
	}

	// Unset or degenerate initial distance pays 0.
	if got := Progress(0, 100, 0.1); got != 0 {
		t.Fatalf("Progress with zero initial = %f, want 0", got)
	}
}

func TestShapingTelescopes(t *testing.T) {
	// With γ=1, base=0 the per-tick sums equal the net distance closed.
	dists := []float64{200, 180, 150, 155, 120, 80, 40, 5}

	var total float64
	for i := 1; i < len(dists); i++ {
		total += Shaping(dists[i-1], dists[i], 1.0, 0)
	}

	want := dists[0] - dists[len(dists)-1]
	if math.Abs(total-want) > 1e-9 {
		t.Fatalf("telescoped sum = %f, want %f", total, want)
	}
}

func TestShapingDirection(t *testing.T) {
	// Closing distance pays positive with γ=1, widening pays negative.
	if got := Shaping(100, 90, 1.0, 0); got <= 0 {
		t.Fatalf("closing distance paid %f, want > 0", got)
	}
	if got := Shaping(90, 100, 1.0, 0); got >= 0 {
		t.Fatalf("widening distance paid %f, want < 0", got)
	}
}

func TestEvaluateDispatch(t *testing.T) {
	p := DefaultParams()
	s := Sample{PrevDist: 120, Dist: 100, Initial: 200}

	for _, r := range Regimes() {
		got, err := Evaluate(r, s, p)
		if err != nil {
			t.Fatalf("Evaluate(%s): %v", r, err)
		}
		var want float64
		switch r {
		case RegimeSparse:
			want = Sparse(s.Dist, p.Threshold)
		case RegimeShaping:
			want = Shaping(s.PrevDist, s.Dist, p.Gamma, p.BaseReward)
		case RegimeProgress:
			want = Progress(s.Initial, s.Dist, p.LearningRate)
		case RegimeSemantic:
			want = Semantic(s.Dist)
		}
		if got != want {
			t.Fatalf("Evaluate(%s) = %f, want %f", r, got, want)
		}
	}
}

func TestEvaluateUnknownRegime(t *testing.T) {
	got, err := Evaluate(Regime("bogus"), Sample{Dist: 10}, DefaultParams())
	if !errors.Is(err, ErrUnknownRegime) {
		t.Fatalf("expected ErrUnknownRegime, got %v", err)
	}
	if got != 0 {
		t.Fatalf("unknown regime paid %f, want 0", got)
	}
	if Known("bogus") {
		t.Fatal("Known(bogus) should be false")
	}
	if !Known(RegimeSemantic) {
		t.Fatal("Known(semantic) should be true")
	}
}
