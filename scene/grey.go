package scene

// DefaultGreyStep is the per-frame increment of the background grey.
const DefaultGreyStep float32 = 0.01

// Grey is the slowly cycling background level. It starts at 0, grows by
// Step every frame and wraps back to 0 once it reaches 1, so the level is
// always in [0, 1).
type Grey struct {
	Step  float32
	level float32
}

// Next advances the level by one frame and returns it.
func (g *Grey) Next() float32 {
	g.level += g.Step
	if g.level >= 1.0 {
		g.level = 0
	}
	return g.level
}

// Level returns the current level without advancing it.
func (g *Grey) Level() float32 {
	return g.level
}
