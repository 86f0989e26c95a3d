package devour

import "fmt"

// Config holds every parameter the generator consumes. All fields are read
// by the core and mutated by none of it; callers fill a Config once (usually
// starting from DefaultConfig) and pass it by value.
type Config struct {
	// MinRedBalls and MaxRedBalls bound the number of targets per instance.
	MinRedBalls int
	MaxRedBalls int

	// GrowthFactor is the multiplicative eater growth applied after each
	// consumption. Must be > 1.
	GrowthFactor float64

	// MinBallSize and MaxBallSize bound every ball radius, in pixels.
	MinBallSize float64
	MaxBallSize float64

	// ImageWidth and ImageHeight are the canvas dimensions in pixels.
	ImageWidth  int
	ImageHeight int

	// VideoFPS is the frame rate of the solution video.
	VideoFPS int

	// MaxVideoDuration is the hard ceiling on video length in seconds.
	// The animation planner never emits more than VideoFPS*MaxVideoDuration
	// frames.
	MaxVideoDuration float64

	// GenerateVideos enables animation planning and video export.
	GenerateVideos bool

	// Seed, when non-nil, makes every draw deterministic: the same seed and
	// config yield bit-identical sizes, order, layout, and frames.
	Seed *uint64
}

// DefaultConfig returns the standard task parameters.
func DefaultConfig() Config {
	return Config{
		MinRedBalls:      2,
		MaxRedBalls:      6,
		GrowthFactor:     1.4,
		MinBallSize:      20,
		MaxBallSize:      150,
		ImageWidth:       512,
		ImageHeight:      512,
		VideoFPS:         10,
		MaxVideoDuration: 10,
		GenerateVideos:   true,
	}
}

// Validate reports the first configuration problem found, or nil.
func (c Config) Validate() error {
	switch {
	case c.MinRedBalls < 1:
		return fmt.Errorf("config: MinRedBalls = %d, must be >= 1", c.MinRedBalls)
	case c.MaxRedBalls < c.MinRedBalls:
		return fmt.Errorf("config: MaxRedBalls = %d, must be >= MinRedBalls (%d)", c.MaxRedBalls, c.MinRedBalls)
	case c.GrowthFactor <= 1:
		return fmt.Errorf("config: GrowthFactor = %g, must be > 1", c.GrowthFactor)
	case c.MinBallSize <= 0:
		return fmt.Errorf("config: MinBallSize = %g, must be > 0", c.MinBallSize)
	case c.MaxBallSize <= c.MinBallSize:
		return fmt.Errorf("config: MaxBallSize = %g, must be > MinBallSize (%g)", c.MaxBallSize, c.MinBallSize)
	case c.ImageWidth < 1 || c.ImageHeight < 1:
		return fmt.Errorf("config: image size %dx%d, both dimensions must be >= 1", c.ImageWidth, c.ImageHeight)
	case c.VideoFPS < 1:
		return fmt.Errorf("config: VideoFPS = %d, must be >= 1", c.VideoFPS)
	case c.MaxVideoDuration <= 0:
		return fmt.Errorf("config: MaxVideoDuration = %g, must be > 0", c.MaxVideoDuration)
	}
	return nil
}

// frameBudget is the hard ceiling on animation frames.
func (c Config) frameBudget() int {
	return int(float64(c.VideoFPS) * c.MaxVideoDuration)
}
