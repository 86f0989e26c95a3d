package devour

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sort"
)

// sizeRetryCap bounds how many fresh backward constructions the builder may
// attempt before giving up with ErrSizeInfeasible.
const sizeRetryCap = 8

// minTargetFraction keeps targets from shrinking into invisibility: each
// target radius is at least this fraction of the eater radius at the moment
// it is eaten.
const minTargetFraction = 0.3

// sizeSequence is the output of backward construction: one initial eater
// radius and target radii listed in construction (forward) order. Final is
// Initial * growth^len(Targets), kept explicitly so downstream stages never
// re-derive it.
type sizeSequence struct {
	Initial float64
	Targets []float64
	Final   float64
}

// buildSizeSequence derives n target radii and an initial eater radius that
// admit a full consumption order by construction.
//
// It works backward from a sampled final eater radius: at each step the
// eater radius before the consumption is current/growth, and the target
// eaten at that step is sampled at or below that pre-eating radius. The
// reverse of the backward walk is therefore always a valid order. Rescaling
// into [MinBallSize, MaxBallSize] can perturb that guarantee at the clamp
// boundaries, so each candidate is checked for feasibility and rejected
// candidates are redrawn, up to sizeRetryCap times.
func buildSizeSequence(rng *rand.Rand, n int, cfg Config) (sizeSequence, error) {
	for attempt := 0; attempt < sizeRetryCap; attempt++ {
		seq := constructBackward(rng, n, cfg)
		if feasible(seq, cfg.GrowthFactor) {
			return seq, nil
		}
	}
	return sizeSequence{}, fmt.Errorf("%d targets in [%g, %g] at growth %g: %w",
		n, cfg.MinBallSize, cfg.MaxBallSize, cfg.GrowthFactor, ErrSizeInfeasible)
}

// constructBackward performs one backward walk plus bounds rescaling. The
// result may violate bounds-vs-eligibility at clamp edges; the caller
// verifies.
func constructBackward(rng *rand.Rand, n int, cfg Config) sizeSequence {
	final := uniform(rng, cfg.MaxBallSize*0.6, cfg.MaxBallSize*0.9)

	// Backward walk: current starts at the final radius; pre is the eater
	// radius before the consumption that produced current.
	current := final
	reversed := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		pre := current / cfg.GrowthFactor
		hi := min(pre, cfg.MaxBallSize)
		lo := max(cfg.MinBallSize, pre*minTargetFraction)
		if lo > hi {
			lo = hi
		}
		reversed = append(reversed, uniform(rng, lo, hi))
		current = pre
	}
	initial := current

	targets := make([]float64, n)
	for i, r := range reversed {
		targets[n-1-i] = r
	}

	// Rescale so the initial eater radius lands inside its working band:
	// at least MinBallSize, at most half of MaxBallSize (room to grow).
	if initial < cfg.MinBallSize {
		scale := cfg.MinBallSize / initial
		initial = cfg.MinBallSize
		final *= scale
		for i := range targets {
			targets[i] *= scale
		}
	}
	if ceiling := cfg.MaxBallSize * 0.5; initial > ceiling {
		scale := ceiling / initial
		initial = ceiling
		final *= scale
		for i := range targets {
			targets[i] *= scale
		}
	}
	for i := range targets {
		targets[i] = clamp(targets[i], cfg.MinBallSize, cfg.MaxBallSize)
	}

	// Rescaling is linear so final tracks initial, but recompute it from the
	// growth law directly to keep Final == Initial * growth^n exact.
	final = initial * math.Pow(cfg.GrowthFactor, float64(n))

	return sizeSequence{Initial: initial, Targets: targets, Final: final}
}

// feasible reports whether some full consumption order exists. Eating the
// smallest remaining target first is optimal, so it suffices to simulate
// that single order over the sorted radii.
func feasible(seq sizeSequence, growth float64) bool {
	sorted := append([]float64(nil), seq.Targets...)
	sort.Float64s(sorted)
	current := seq.Initial
	for _, r := range sorted {
		if r > current+radiusTolerance {
			return false
		}
		current *= growth
	}
	return true
}

// radiusTolerance absorbs float rounding in eligibility comparisons.
const radiusTolerance = 1e-9

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
