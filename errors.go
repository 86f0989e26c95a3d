package devour

import "errors"

// Sentinel errors for the four generation failure kinds. The first and third
// abort only the current instance and are safe to retry with a fresh draw;
// the second signals an internal defect; the fourth is a configuration
// problem that no retry will fix.
var (
	// ErrSizeInfeasible means backward size construction could not satisfy
	// the ball-size bounds within its retry cap.
	ErrSizeInfeasible = errors.New("size sequence infeasible under configured bounds")

	// ErrOrderInfeasible means the greedy solver found no eligible target at
	// some step. Sequences from the builder are solvable by construction, so
	// this indicates a defect, not bad luck.
	ErrOrderInfeasible = errors.New("no eligible target remains: invariant violation")

	// ErrLayoutInfeasible means rejection-sampling placement ran out of
	// attempts before finding a non-overlapping position for every ball.
	ErrLayoutInfeasible = errors.New("layout placement attempts exhausted")

	// ErrFrameBudgetUnsatisfiable means the animation cannot fit the
	// fps*duration frame ceiling even at maximal compression.
	ErrFrameBudgetUnsatisfiable = errors.New("frame budget unsatisfiable for configured fps and duration")
)
