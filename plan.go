package devour

import (
	"fmt"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	// growFramesMin and growFramesMax bound the growth phase length. The
	// minimum is never compressed away: below 6 frames growth stops reading
	// as smooth.
	growFramesMin = 6
	growFramesMax = 12

	// moveFramesMin is the floor movement compression may reach.
	moveFramesMin = 1

	// holdFrames is the nominal pause on the initial and final scene.
	holdFrames = 4
)

// Frame is one animation snapshot: the eater's center and radius plus
// per-target visibility. Target positions and radii are static and live on
// the plan, not on every frame.
type Frame struct {
	EaterCenter   Vec2
	EaterRadius   float64
	TargetVisible []bool
}

// AnimationPlan is a bounded, time-ordered frame sequence depicting one
// valid solution: per event the eater translates to the target, the target
// vanishes on contact, and the eater grows monotonically to its post-eating
// radius. This is the sole interface handed to renderers and exporters.
type AnimationPlan struct {
	FPS         int
	TargetRadii []float64
	TargetPos   []Vec2
	Frames      []Frame
}

// Scene materializes the i-th frame as a static scene snapshot.
func (p *AnimationPlan) Scene(i int) Scene {
	f := p.Frames[i]
	s := Scene{
		Eater: Ball{
			Radius:     f.EaterRadius,
			Center:     f.EaterCenter,
			Role:       RoleEater,
			Visible:    true,
			EatenOrder: -1,
		},
		Targets: make([]Ball, len(p.TargetRadii)),
	}
	for t := range s.Targets {
		s.Targets[t] = Ball{
			Radius:     p.TargetRadii[t],
			Center:     p.TargetPos[t],
			Role:       RoleTarget,
			Visible:    f.TargetVisible[t],
			EatenOrder: -1,
		}
	}
	return s
}

// frameAllocation is the per-phase frame budget after compression.
type frameAllocation struct {
	hold int // frames on the initial scene and again on the final scene
	move int // movement frames per event
	grow int // growth frames per event
}

func (a frameAllocation) total(events int) int {
	return 2*a.hold + events*(a.move+a.grow)
}

// allocateFrames splits the fps*duration ceiling across hold, movement, and
// growth phases. When the nominal allocation overflows, compression applies
// in order: movement frames shrink toward moveFramesMin, then holds toward
// one frame, then growth toward growFramesMin. Growth never drops below
// growFramesMin; if the ceiling still cannot be met the configuration is
// unsatisfiable.
func allocateFrames(events, budget int) (frameAllocation, error) {
	a := frameAllocation{hold: holdFrames}
	if events == 0 {
		if budget < 2*a.hold {
			a.hold = max(0, budget/2)
		}
		return a, nil
	}

	// Nominal split: reserve the holds, share the rest over the two phases
	// of every event.
	per := (budget - 2*a.hold) / (2 * events)
	a.move = max(moveFramesMin, per)
	a.grow = min(growFramesMax, max(growFramesMin, per))

	if a.total(events) > budget {
		a.move = max(moveFramesMin, (budget-2*a.hold-events*a.grow)/events)
	}
	if a.total(events) > budget {
		a.hold = 1
		a.move = max(moveFramesMin, (budget-2*a.hold-events*a.grow)/events)
	}
	if a.total(events) > budget {
		a.grow = max(growFramesMin, (budget-2*a.hold-events*a.move)/events)
	}
	if a.total(events) > budget {
		return frameAllocation{}, fmt.Errorf("%d events need %d frames, ceiling is %d: %w",
			events, a.total(events), budget, ErrFrameBudgetUnsatisfiable)
	}
	return a, nil
}

// planAnimation assembles the full frame sequence for a solved and placed
// instance. Interpolation runs on linear tweens stepped at dt = 1/fps;
// the last frame of each phase is written from the exact trajectory value,
// so float32 tween arithmetic can neither overshoot the post-eating radius
// nor stop short of the target position.
func planAnimation(traj Trajectory, lay layout, targetRadii []float64, cfg Config) (*AnimationPlan, error) {
	alloc, err := allocateFrames(len(traj.Events), cfg.frameBudget())
	if err != nil {
		return nil, err
	}

	plan := &AnimationPlan{
		FPS:         cfg.VideoFPS,
		TargetRadii: append([]float64(nil), targetRadii...),
		TargetPos:   append([]Vec2(nil), lay.Targets...),
	}

	dt := float32(1) / float32(cfg.VideoFPS)
	visible := make([]bool, len(targetRadii))
	for i := range visible {
		visible[i] = true
	}

	pos := lay.Eater
	radius := traj.Initial

	emit := func(center Vec2, r float64) {
		plan.Frames = append(plan.Frames, Frame{
			EaterCenter:   center,
			EaterRadius:   r,
			TargetVisible: append([]bool(nil), visible...),
		})
	}

	for i := 0; i < alloc.hold; i++ {
		emit(pos, radius)
	}

	for _, e := range traj.Events {
		dest := lay.Targets[e.TargetIndex]

		// Movement phase: translate at constant radius.
		moveDur := float32(alloc.move) * dt
		tx := gween.New(float32(pos.X), float32(dest.X), moveDur, ease.Linear)
		ty := gween.New(float32(pos.Y), float32(dest.Y), moveDur, ease.Linear)
		for k := 1; k <= alloc.move; k++ {
			x, _ := tx.Update(dt)
			y, _ := ty.Update(dt)
			c := Vec2{X: float64(x), Y: float64(y)}
			if k == alloc.move {
				c = dest
			}
			emit(c, radius)
		}
		pos = dest

		// Growth phase: the target vanishes on contact, then the eater
		// grows monotonically to the post-eating radius.
		visible[e.TargetIndex] = false
		growDur := float32(alloc.grow) * dt
		tr := gween.New(float32(e.RadiusBefore), float32(e.RadiusAfter), growDur, ease.Linear)
		prev := e.RadiusBefore
		for k := 1; k <= alloc.grow; k++ {
			r, _ := tr.Update(dt)
			next := min(float64(r), e.RadiusAfter)
			if next < prev {
				next = prev // monotonicity guard against float32 jitter
			}
			if k == alloc.grow {
				next = e.RadiusAfter
			}
			emit(pos, next)
			prev = next
		}
		radius = e.RadiusAfter
	}

	for i := 0; i < alloc.hold; i++ {
		emit(pos, radius)
	}

	// total() is exact, so this is an assertion, not a truncation point.
	if len(plan.Frames) > cfg.frameBudget() {
		return nil, fmt.Errorf("emitted %d frames over ceiling %d: %w",
			len(plan.Frames), cfg.frameBudget(), ErrFrameBudgetUnsatisfiable)
	}
	return plan, nil
}
