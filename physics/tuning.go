package physics

const (
	StringSegments = 10   // links per string; a chain holds StringSegments+1 particles
	Gravity        = 0.4  // per-tick downward acceleration (+Y is down on the canvas)
	Damping        = 0.98 // multiplier on the implied velocity each tick
	SlackFactor    = 1.1  // inflates the target segment length so the string sags
	RelaxPasses    = 5    // constraint sweeps per tick; more = stiffer string
)
