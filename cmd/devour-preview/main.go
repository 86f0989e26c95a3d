// Command devour-preview generates one task instance and plays its solution
// animation in a window. Space pauses, R restarts, Escape or Q quits.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/devour"
)

var (
	bgColor     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	targetColor = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	eaterColor  = color.RGBA{R: 0, G: 0, B: 0, A: 255}
)

// player steps through an animation plan at its own fps while ebiten ticks
// at 60; the accumulator converts between the two rates.
type player struct {
	plan   *devour.AnimationPlan
	width  int
	height int
	frame  int
	accum  float64
	paused bool
}

func (p *player) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		p.paused = !p.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		p.frame = 0
		p.accum = 0
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if p.paused {
		return nil
	}

	p.accum += 1.0 / 60.0
	step := 1.0 / float64(p.plan.FPS)
	for p.accum >= step {
		p.accum -= step
		if p.frame < len(p.plan.Frames)-1 {
			p.frame++
		}
	}
	return nil
}

func (p *player) Draw(screen *ebiten.Image) {
	screen.Fill(bgColor)

	scene := p.plan.Scene(p.frame)
	for _, t := range scene.Targets {
		if !t.Visible {
			continue
		}
		vector.DrawFilledCircle(screen,
			float32(t.Center.X), float32(t.Center.Y), float32(t.Radius), targetColor, true)
	}
	vector.DrawFilledCircle(screen,
		float32(scene.Eater.Center.X), float32(scene.Eater.Center.Y),
		float32(scene.Eater.Radius), eaterColor, true)

	status := fmt.Sprintf("frame %d/%d  space: pause  r: restart  esc: quit",
		p.frame+1, len(p.plan.Frames))
	if p.paused {
		status = "paused | " + status
	}
	ebitenutil.DebugPrintAt(screen, status, 8, 8)
}

func (p *player) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.width, p.height
}

func main() {
	var (
		seed      = flag.Int64("seed", 42, "random seed")
		ballsMin  = flag.Int("balls-min", 2, "minimum number of target balls")
		ballsMax  = flag.Int("balls-max", 6, "maximum number of target balls")
		growth    = flag.Float64("growth", 1.4, "eater growth factor per consumption")
		imageSize = flag.Int("image", 512, "canvas width and height in pixels")
	)
	flag.Parse()

	cfg := devour.DefaultConfig()
	cfg.MinRedBalls = *ballsMin
	cfg.MaxRedBalls = *ballsMax
	cfg.GrowthFactor = *growth
	cfg.ImageWidth = *imageSize
	cfg.ImageHeight = *imageSize
	cfg.GenerateVideos = true // preview needs the animation plan
	s := uint64(*seed)
	cfg.Seed = &s

	gen, err := devour.NewGenerator(cfg)
	if err != nil {
		log.Fatal(err)
	}
	inst, err := gen.Generate("preview")
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(cfg.ImageWidth, cfg.ImageHeight)
	ebiten.SetWindowTitle("devour preview — " + inst.TaskID)

	p := &player{plan: inst.Plan, width: cfg.ImageWidth, height: cfg.ImageHeight}
	if err := ebiten.RunGame(p); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
