package devour

import "math/rand/v2"

// promptVariants are the instruction texts an instance may carry. All state
// the same rule; wording varies so downstream consumers see phrasing
// diversity.
var promptVariants = []string{
	"Animate the black ball moving to eat all red balls. The black ball can only eat red balls that are smaller than or equal to its current size. After eating each red ball, the black ball grows larger. Show smooth movement as the black ball approaches each target, the red ball disappearing when eaten, and the black ball growing after each consumption. Continue until all red balls are eaten and only the large black ball remains.",
	"Show the black ball systematically eating all red balls. The black ball must only attempt to eat red balls that are no larger than itself. Each time a red ball is eaten, it disappears and the black ball grows. Animate the black ball moving smoothly to each target, consuming it, and growing. The sequence continues until all red balls are gone.",
	"Demonstrate the black ball eating all red balls in a valid sequence. The black ball can only eat red balls that are smaller than or equal to its current size. Animate the black ball moving to each target, the red ball vanishing when eaten, and the black ball increasing in size. Continue until all red balls are consumed.",
}

// buildPrompt picks one instruction variant using the generator's rng, so
// prompt selection is covered by the same determinism as everything else.
func buildPrompt(rng *rand.Rand) string {
	return promptVariants[rng.IntN(len(promptVariants))]
}

// PromptData is the plain-data view of an instance handed to external text
// generators.
type PromptData struct {
	TargetCount   int
	GrowthFactor  float64
	InitialRadius float64
	FinalRadius   float64
}

// PromptData returns the templating parameters for this instance.
func (inst *Instance) PromptData() PromptData {
	return PromptData{
		TargetCount:   len(inst.TargetRadii),
		GrowthFactor:  inst.Config.GrowthFactor,
		InitialRadius: inst.InitialRadius,
		FinalRadius:   inst.FinalRadius,
	}
}
