package devour

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"
)

// generateRetryCap bounds how many times a layout failure may regenerate the
// size sequence before the instance is abandoned.
const generateRetryCap = 4

// Generator produces task instances. It owns the seeded random source; all
// stages draw from it in a fixed sequence, so a given Config (with Seed set)
// yields bit-identical instances across runs and machines.
//
// A Generator is not safe for concurrent use; batch drivers run one per
// worker.
type Generator struct {
	cfg Config
	rng *rand.Rand
}

// NewGenerator validates cfg and returns a Generator seeded from cfg.Seed,
// or from the wall clock when no seed is configured.
func NewGenerator(cfg Config) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	seed := uint64(time.Now().UnixNano())
	if cfg.Seed != nil {
		seed = *cfg.Seed
	}
	return &Generator{cfg: cfg, rng: rand.New(rand.NewPCG(seed, seed))}, nil
}

// Instance is one fully generated task: solvable sizes, a solved trajectory,
// a non-overlapping layout, the animation plan (when videos are enabled),
// and the instruction prompt. Instances are immutable once returned.
type Instance struct {
	TaskID        string
	Config        Config
	InitialRadius float64
	FinalRadius   float64
	TargetRadii   []float64
	EaterPos      Vec2
	TargetPos     []Vec2
	Trajectory    Trajectory
	Plan          *AnimationPlan
	Prompt        string
}

// Generate produces one task instance. Layout failures regenerate the size
// sequence (bigger draws may simply not pack) up to generateRetryCap times;
// size and frame-budget failures propagate to the caller, which may skip the
// instance or adjust the configuration. A returned Instance is always
// internally consistent; no partial instances escape.
func (g *Generator) Generate(taskID string) (*Instance, error) {
	n := g.cfg.MinRedBalls + g.rng.IntN(g.cfg.MaxRedBalls-g.cfg.MinRedBalls+1)

	var (
		seq  sizeSequence
		traj Trajectory
		lay  layout
	)
	placed := false
	for attempt := 0; attempt < generateRetryCap && !placed; attempt++ {
		var err error
		seq, err = buildSizeSequence(g.rng, n, g.cfg)
		if err != nil {
			return nil, fmt.Errorf("task %s: %w", taskID, err)
		}
		traj, err = solveOrder(seq.Initial, seq.Targets, g.cfg.GrowthFactor)
		if err != nil {
			return nil, fmt.Errorf("task %s: %w", taskID, err)
		}
		lay, err = placeBalls(g.rng, seq.Initial, seq.Targets, g.cfg)
		if err != nil {
			if errors.Is(err, ErrLayoutInfeasible) {
				continue
			}
			return nil, fmt.Errorf("task %s: %w", taskID, err)
		}
		placed = true
	}
	if !placed {
		return nil, fmt.Errorf("task %s: %d size/layout attempts: %w",
			taskID, generateRetryCap, ErrLayoutInfeasible)
	}

	// Join positions into the trajectory: the eater consumes each target at
	// the target's own center.
	for i := range traj.Events {
		p := lay.Targets[traj.Events[i].TargetIndex]
		traj.Events[i].EaterPos = p
		traj.Events[i].TargetPos = p
	}
	if err := verifyTrajectory(traj, g.cfg.GrowthFactor); err != nil {
		return nil, fmt.Errorf("task %s: %w", taskID, err)
	}

	inst := &Instance{
		TaskID:        taskID,
		Config:        g.cfg,
		InitialRadius: seq.Initial,
		FinalRadius:   seq.Final,
		TargetRadii:   seq.Targets,
		EaterPos:      lay.Eater,
		TargetPos:     lay.Targets,
		Trajectory:    traj,
	}

	if g.cfg.GenerateVideos {
		plan, err := planAnimation(traj, lay, seq.Targets, g.cfg)
		if err != nil {
			return nil, fmt.Errorf("task %s: %w", taskID, err)
		}
		inst.Plan = plan
	}

	inst.Prompt = buildPrompt(g.rng)
	return inst, nil
}

// InitialScene is the scene before any consumption: every target visible and
// the eater at its initial radius and placed position.
func (inst *Instance) InitialScene() Scene {
	s := Scene{
		Eater: Ball{
			Radius:     inst.InitialRadius,
			Center:     inst.EaterPos,
			Role:       RoleEater,
			Visible:    true,
			EatenOrder: -1,
		},
		Targets: make([]Ball, len(inst.TargetRadii)),
	}
	for i := range s.Targets {
		s.Targets[i] = Ball{
			Radius:     inst.TargetRadii[i],
			Center:     inst.TargetPos[i],
			Role:       RoleTarget,
			Visible:    true,
			EatenOrder: -1,
		}
	}
	return s
}

// FinalScene is the scene after the full solution: only the eater remains,
// at its final radius, centered on the canvas. Consumed targets keep their
// positions and carry their zero-based consumption order.
func (inst *Instance) FinalScene() Scene {
	s := Scene{
		Eater: Ball{
			Radius: inst.FinalRadius,
			Center: Vec2{
				X: float64(inst.Config.ImageWidth) / 2,
				Y: float64(inst.Config.ImageHeight) / 2,
			},
			Role:       RoleEater,
			Visible:    true,
			EatenOrder: -1,
		},
		Targets: make([]Ball, len(inst.TargetRadii)),
	}
	for i := range s.Targets {
		s.Targets[i] = Ball{
			Radius:     inst.TargetRadii[i],
			Center:     inst.TargetPos[i],
			Role:       RoleTarget,
			Visible:    false,
			EatenOrder: -1,
		}
	}
	for order, e := range inst.Trajectory.Events {
		s.Targets[e.TargetIndex].EatenOrder = order
	}
	return s
}
