package devour

import (
	"fmt"
	"sort"
)

// ConsumptionEvent records one step of the solved order. Positions are zero
// until the layout planner has placed the balls; the generator joins them in.
type ConsumptionEvent struct {
	TargetIndex  int     // index into the original target radii slice
	TargetRadius float64 // radius of the consumed target
	RadiusBefore float64 // eater radius before this consumption
	RadiusAfter  float64 // RadiusBefore * growth factor
	EaterPos     Vec2    // eater center at the moment of consumption
	TargetPos    Vec2    // target center (equal to EaterPos once joined)
}

// Trajectory is a full solved consumption order with the eater's radius
// progression. Events are time-ordered; Final == Initial * growth^len(Events).
type Trajectory struct {
	Initial float64
	Final   float64
	Events  []ConsumptionEvent
}

// solveOrder computes one valid consumption order over the unordered target
// radii: at each step it eats the largest target whose radius does not
// exceed the current eater radius, breaking ties by lower original index.
// Largest-first maximizes the growth margin for the remaining steps and
// makes the order a deterministic function of the radii.
//
// Sequences from buildSizeSequence are solvable by construction, so a step
// with no eligible target returns ErrOrderInfeasible as a defect signal.
func solveOrder(initial float64, targets []float64, growth float64) (Trajectory, error) {
	// Sort indices descending by radius; ties keep the lower index first.
	byRadius := make([]int, len(targets))
	for i := range byRadius {
		byRadius[i] = i
	}
	sort.SliceStable(byRadius, func(a, b int) bool {
		return targets[byRadius[a]] > targets[byRadius[b]]
	})

	eaten := make([]bool, len(targets))
	events := make([]ConsumptionEvent, 0, len(targets))
	current := initial

	for len(events) < len(targets) {
		// The first un-eaten entry in descending order that fits is the
		// largest eligible target.
		pick := -1
		for _, idx := range byRadius {
			if !eaten[idx] && targets[idx] <= current+radiusTolerance {
				pick = idx
				break
			}
		}
		if pick < 0 {
			return Trajectory{}, fmt.Errorf("step %d of %d, eater radius %g: %w",
				len(events), len(targets), current, ErrOrderInfeasible)
		}

		after := current * growth
		events = append(events, ConsumptionEvent{
			TargetIndex:  pick,
			TargetRadius: targets[pick],
			RadiusBefore: current,
			RadiusAfter:  after,
		})
		eaten[pick] = true
		current = after
	}

	return Trajectory{Initial: initial, Final: current, Events: events}, nil
}

// verifyTrajectory re-checks the eligibility and growth-law invariants over
// a solved trajectory. The generator runs it as an internal assertion.
func verifyTrajectory(t Trajectory, growth float64) error {
	current := t.Initial
	for i, e := range t.Events {
		if e.TargetRadius > e.RadiusBefore+radiusTolerance {
			return fmt.Errorf("event %d: target radius %g exceeds eater radius %g: %w",
				i, e.TargetRadius, e.RadiusBefore, ErrOrderInfeasible)
		}
		if e.RadiusBefore != current {
			return fmt.Errorf("event %d: eater radius %g, trajectory says %g: %w",
				i, current, e.RadiusBefore, ErrOrderInfeasible)
		}
		if e.RadiusAfter != e.RadiusBefore*growth {
			return fmt.Errorf("event %d: growth law violated (%g -> %g at factor %g): %w",
				i, e.RadiusBefore, e.RadiusAfter, growth, ErrOrderInfeasible)
		}
		current = e.RadiusAfter
	}
	return nil
}
