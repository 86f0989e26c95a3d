// Package devour generates labeled visual reasoning tasks: a black "eater"
// disc must consume every red "target" disc, may only consume targets no
// larger than itself, and grows by a fixed factor after each consumption.
//
// Every generated instance is solvable by construction. Sizes are built
// backward from a sampled final eater radius, so reversing the construction
// always yields a valid consumption order; the greedy solver then derives
// the canonical order forward (largest eligible target first). Layout is
// bounded rejection sampling, and the animation planner turns the solved
// trajectory into a frame sequence that fits the fps*duration ceiling.
//
// # Quick start
//
//	cfg := devour.DefaultConfig()
//	seed := uint64(42)
//	cfg.Seed = &seed
//
//	gen, err := devour.NewGenerator(cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	inst, err := gen.Generate("task_0001")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	r := devour.NewRenderer(cfg.ImageWidth, cfg.ImageHeight)
//	if err := devour.NewExporter("out").Export(inst, r); err != nil {
//		log.Fatal(err)
//	}
//
// With a seed set, every output — sizes, order, layout, frames, prompt — is
// bit-identical across runs.
//
// Generation failures are reported through sentinel errors
// ([ErrSizeInfeasible], [ErrLayoutInfeasible], [ErrOrderInfeasible],
// [ErrFrameBudgetUnsatisfiable]); batch drivers discriminate with
// [errors.Is] to decide between skipping an instance and aborting a run.
package devour
