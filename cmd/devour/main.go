// Command devour generates a batch of solvable eater-vs-targets task
// instances and writes their images, prompts, and solution videos to disk.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"github.com/phanxgames/devour"
)

func main() {
	var (
		count       = flag.Int("n", 10, "number of task instances to generate")
		out         = flag.String("out", "out", "output directory")
		seed        = flag.Int64("seed", -1, "random seed; -1 seeds from the clock")
		ballsMin    = flag.Int("balls-min", 2, "minimum number of target balls")
		ballsMax    = flag.Int("balls-max", 6, "maximum number of target balls")
		growth      = flag.Float64("growth", 1.4, "eater growth factor per consumption")
		sizeMin     = flag.Float64("size-min", 20, "minimum ball radius in pixels")
		sizeMax     = flag.Float64("size-max", 150, "maximum ball radius in pixels")
		imageSize   = flag.Int("image", 512, "canvas width and height in pixels")
		fps         = flag.Int("fps", 10, "solution video frame rate")
		maxDuration = flag.Float64("max-duration", 10, "solution video duration ceiling in seconds")
		videos      = flag.Bool("videos", true, "generate solution videos")
	)
	flag.Parse()

	cfg := devour.DefaultConfig()
	cfg.MinRedBalls = *ballsMin
	cfg.MaxRedBalls = *ballsMax
	cfg.GrowthFactor = *growth
	cfg.MinBallSize = *sizeMin
	cfg.MaxBallSize = *sizeMax
	cfg.ImageWidth = *imageSize
	cfg.ImageHeight = *imageSize
	cfg.VideoFPS = *fps
	cfg.MaxVideoDuration = *maxDuration
	cfg.GenerateVideos = *videos
	if *seed >= 0 {
		s := uint64(*seed)
		cfg.Seed = &s
	}

	gen, err := devour.NewGenerator(cfg)
	if err != nil {
		log.Fatal(err)
	}
	renderer := devour.NewRenderer(cfg.ImageWidth, cfg.ImageHeight)
	exporter := devour.NewExporter(*out)
	if exporter.FFmpeg == "" && cfg.GenerateVideos {
		log.Print("ffmpeg not found on PATH; writing GIF solutions only")
	}

	generated, skipped := 0, 0
	for i := 0; i < *count; i++ {
		id := fmt.Sprintf("task_%04d", i)
		inst, err := gen.Generate(id)
		switch {
		case err == nil:
		case errors.Is(err, devour.ErrSizeInfeasible),
			errors.Is(err, devour.ErrLayoutInfeasible):
			// Bad draw for this instance; the batch continues.
			log.Printf("skip %s: %v", id, err)
			skipped++
			continue
		default:
			// ErrOrderInfeasible is a defect, ErrFrameBudgetUnsatisfiable a
			// configuration problem; neither will improve on retry.
			log.Fatalf("generate %s: %v", id, err)
		}

		if err := exporter.Export(inst, renderer); err != nil {
			log.Fatalf("export %s: %v", id, err)
		}
		generated++
	}

	log.Printf("done: %d generated, %d skipped, output in %s", generated, skipped, *out)
}
