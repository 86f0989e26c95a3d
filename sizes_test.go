package devour

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"
)

func newTestRng(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func TestBuildSizeSequenceSolvableByConstruction(t *testing.T) {
	cfg := DefaultConfig()
	for n := cfg.MinRedBalls; n <= cfg.MaxRedBalls; n++ {
		for seed := uint64(0); seed < 20; seed++ {
			seq, err := buildSizeSequence(newTestRng(seed), n, cfg)
			if err != nil {
				t.Fatalf("n=%d seed=%d: %v", n, seed, err)
			}
			if len(seq.Targets) != n {
				t.Fatalf("n=%d seed=%d: got %d targets", n, seed, len(seq.Targets))
			}
			if _, err := solveOrder(seq.Initial, seq.Targets, cfg.GrowthFactor); err != nil {
				t.Errorf("n=%d seed=%d: constructed sequence not solvable: %v", n, seed, err)
			}
		}
	}
}

func TestBuildSizeSequenceRespectsBounds(t *testing.T) {
	cfg := DefaultConfig()
	seq, err := buildSizeSequence(newTestRng(7), 5, cfg)
	if err != nil {
		t.Fatal(err)
	}

	if seq.Initial < cfg.MinBallSize {
		t.Errorf("initial radius %g below MinBallSize %g", seq.Initial, cfg.MinBallSize)
	}
	for i, r := range seq.Targets {
		if r < cfg.MinBallSize || r > cfg.MaxBallSize {
			t.Errorf("target %d radius %g outside [%g, %g]", i, r, cfg.MinBallSize, cfg.MaxBallSize)
		}
	}
}

func TestBuildSizeSequenceFinalFollowsGrowthLaw(t *testing.T) {
	cfg := DefaultConfig()
	n := 4
	seq, err := buildSizeSequence(newTestRng(3), n, cfg)
	if err != nil {
		t.Fatal(err)
	}

	want := seq.Initial * math.Pow(cfg.GrowthFactor, float64(n))
	if math.Abs(seq.Final-want) > 1e-9 {
		t.Errorf("Final = %g, want Initial*growth^%d = %g", seq.Final, n, want)
	}
}

func TestBuildSizeSequenceInfeasibleBounds(t *testing.T) {
	// Every ball must be at least 100 but the eater's starting band tops out
	// at half of MaxBallSize (75), so no first consumption is ever legal.
	cfg := DefaultConfig()
	cfg.MinBallSize = 100
	cfg.MaxBallSize = 150

	_, err := buildSizeSequence(newTestRng(1), 4, cfg)
	if !errors.Is(err, ErrSizeInfeasible) {
		t.Fatalf("err = %v, want ErrSizeInfeasible", err)
	}
}

func TestBuildSizeSequenceDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	a, err := buildSizeSequence(newTestRng(99), 4, cfg)
	if err != nil {
		t.Fatal(err)
	}
	b, err := buildSizeSequence(newTestRng(99), 4, cfg)
	if err != nil {
		t.Fatal(err)
	}

	if a.Initial != b.Initial || a.Final != b.Final {
		t.Errorf("eater radii differ across identical seeds: %+v vs %+v", a, b)
	}
	for i := range a.Targets {
		if a.Targets[i] != b.Targets[i] {
			t.Errorf("target %d differs: %g vs %g", i, a.Targets[i], b.Targets[i])
		}
	}
}

func TestFeasible(t *testing.T) {
	// Smallest-first order: 5 (10->14), 8 (14->19.6), 11 (19.6->27.44).
	solvable := sizeSequence{Initial: 10, Targets: []float64{5, 11, 8}}
	if !feasible(solvable, 1.4) {
		t.Error("feasible returned false for a solvable sequence")
	}

	// After eating 5 the eater is 14; 50 stays out of reach.
	unsolvable := sizeSequence{Initial: 10, Targets: []float64{50, 5}}
	if feasible(unsolvable, 1.4) {
		t.Error("feasible returned true for an unsolvable sequence")
	}
}
