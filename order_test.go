package devour

import (
	"errors"
	"math"
	"testing"
)

func TestSolveOrderLargestEligibleFirst(t *testing.T) {
	// Eligible at radius 40: 30 (idx 0), 20 (idx 1), 40 (idx 2). Largest
	// first eats 40, then 30, then 20.
	traj, err := solveOrder(40, []float64{30, 20, 40}, 1.4)
	if err != nil {
		t.Fatal(err)
	}

	want := []int{2, 0, 1}
	for i, e := range traj.Events {
		if e.TargetIndex != want[i] {
			t.Errorf("event %d ate target %d, want %d", i, e.TargetIndex, want[i])
		}
	}
}

func TestSolveOrderDefersOversizedTargets(t *testing.T) {
	// 100 is out of reach until the eater has grown on the small targets.
	traj, err := solveOrder(50, []float64{100, 40, 50}, 1.5)
	if err != nil {
		t.Fatal(err)
	}

	// 50 (idx 2) -> eater 75, 40 (idx 1) -> eater 112.5, 100 (idx 0).
	want := []int{2, 1, 0}
	for i, e := range traj.Events {
		if e.TargetIndex != want[i] {
			t.Errorf("event %d ate target %d, want %d", i, e.TargetIndex, want[i])
		}
	}
}

func TestSolveOrderTieBreaksByIndex(t *testing.T) {
	traj, err := solveOrder(10, []float64{8, 8, 8}, 1.4)
	if err != nil {
		t.Fatal(err)
	}
	for i, e := range traj.Events {
		if e.TargetIndex != i {
			t.Errorf("event %d ate target %d, want ascending index order", i, e.TargetIndex)
		}
	}
}

func TestSolveOrderGrowthLawExact(t *testing.T) {
	traj, err := solveOrder(25, []float64{20, 24, 30}, 1.4)
	if err != nil {
		t.Fatal(err)
	}

	current := 25.0
	for i, e := range traj.Events {
		if e.RadiusBefore != current {
			t.Errorf("event %d RadiusBefore = %g, want %g", i, e.RadiusBefore, current)
		}
		if e.RadiusAfter != e.RadiusBefore*1.4 {
			t.Errorf("event %d RadiusAfter = %g, want %g", i, e.RadiusAfter, e.RadiusBefore*1.4)
		}
		current = e.RadiusAfter
	}
	if math.Abs(traj.Final-25*1.4*1.4*1.4) > 1e-9 {
		t.Errorf("Final = %g, want %g", traj.Final, 25*1.4*1.4*1.4)
	}
}

func TestSolveOrderEligibility(t *testing.T) {
	traj, err := solveOrder(30, []float64{25, 60, 28, 45}, 1.5)
	if err != nil {
		t.Fatal(err)
	}
	for i, e := range traj.Events {
		if e.TargetRadius > e.RadiusBefore+radiusTolerance {
			t.Errorf("event %d: target %g exceeds eater %g", i, e.TargetRadius, e.RadiusBefore)
		}
	}
}

func TestSolveOrderInfeasible(t *testing.T) {
	_, err := solveOrder(5, []float64{10}, 1.4)
	if !errors.Is(err, ErrOrderInfeasible) {
		t.Fatalf("err = %v, want ErrOrderInfeasible", err)
	}
}

func TestVerifyTrajectoryCatchesTampering(t *testing.T) {
	traj, err := solveOrder(40, []float64{30, 20, 40}, 1.4)
	if err != nil {
		t.Fatal(err)
	}
	if err := verifyTrajectory(traj, 1.4); err != nil {
		t.Fatalf("valid trajectory rejected: %v", err)
	}

	broken := traj
	broken.Events = append([]ConsumptionEvent(nil), traj.Events...)
	broken.Events[1].RadiusAfter *= 1.01
	if err := verifyTrajectory(broken, 1.4); !errors.Is(err, ErrOrderInfeasible) {
		t.Errorf("growth-law tampering not caught: %v", err)
	}

	broken = traj
	broken.Events = append([]ConsumptionEvent(nil), traj.Events...)
	broken.Events[0].TargetRadius = broken.Events[0].RadiusBefore * 2
	if err := verifyTrajectory(broken, 1.4); !errors.Is(err, ErrOrderInfeasible) {
		t.Errorf("eligibility tampering not caught: %v", err)
	}
}
