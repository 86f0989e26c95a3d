package devour

import (
	"fmt"
	"math/rand/v2"
	"sort"
)

const (
	// layoutAttemptCap bounds candidate positions tried per ball before the
	// planner gives up with ErrLayoutInfeasible.
	layoutAttemptCap = 200

	// layoutMargin insets every ball from the canvas edge beyond its own
	// radius, in pixels.
	layoutMargin = 10

	// layoutBuffer is extra clearance required between any two balls, in
	// pixels, on top of the sum of their radii.
	layoutBuffer = 5
)

// layout is the placement result: the eater center plus one center per
// target, indexed like the target radii slice.
type layout struct {
	Eater   Vec2
	Targets []Vec2
}

// placeBalls assigns non-overlapping centers to the eater (at its initial
// radius) and every target by rejection sampling. Balls are placed in
// decreasing radius order, which minimizes packing failures: the hardest
// disc claims space while the canvas is still empty.
func placeBalls(rng *rand.Rand, eaterRadius float64, targets []float64, cfg Config) (layout, error) {
	type pending struct {
		radius float64
		target int // -1 for the eater
	}
	balls := make([]pending, 0, len(targets)+1)
	balls = append(balls, pending{radius: eaterRadius, target: -1})
	for i, r := range targets {
		balls = append(balls, pending{radius: r, target: i})
	}
	sort.SliceStable(balls, func(a, b int) bool {
		return balls[a].radius > balls[b].radius
	})

	occupied := make([]placedBall, 0, len(balls))

	out := layout{Targets: make([]Vec2, len(targets))}
	for _, b := range balls {
		center, ok := samplePosition(rng, b.radius, occupied, cfg)
		if !ok {
			return layout{}, fmt.Errorf("radius %g on %dx%d canvas with %d balls placed: %w",
				b.radius, cfg.ImageWidth, cfg.ImageHeight, len(occupied), ErrLayoutInfeasible)
		}
		occupied = append(occupied, placedBall{center: center, radius: b.radius})
		if b.target < 0 {
			out.Eater = center
		} else {
			out.Targets[b.target] = center
		}
	}
	return out, nil
}

// placedBall is an already-committed placement to test candidates against.
type placedBall struct {
	center Vec2
	radius float64
}

// samplePosition draws candidate centers uniformly in the canvas inset by
// radius+layoutMargin and returns the first that clears every placed ball.
func samplePosition(rng *rand.Rand, radius float64, occupied []placedBall, cfg Config) (Vec2, bool) {
	inset := radius + layoutMargin
	loX, hiX := inset, float64(cfg.ImageWidth)-inset
	loY, hiY := inset, float64(cfg.ImageHeight)-inset
	if loX > hiX || loY > hiY {
		return Vec2{}, false // ball cannot fit the canvas at all
	}

	for attempt := 0; attempt < layoutAttemptCap; attempt++ {
		c := Vec2{X: uniform(rng, loX, hiX), Y: uniform(rng, loY, hiY)}
		free := true
		for _, o := range occupied {
			if c.Dist(o.center) < radius+o.radius+layoutBuffer {
				free = false
				break
			}
		}
		if free {
			return c, true
		}
	}
	return Vec2{}, false
}
