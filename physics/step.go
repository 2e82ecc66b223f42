package physics

import "math"

// Step advances a chain by one tick. The order is load-bearing for visual
// stability: pin the ends to the live note centers first, then integrate the
// free particles, then relax segment lengths toward the target.
func Step(c *Chain, start, end Point) {
	n := len(c.Nodes)
	if n < 2 {
		return
	}

	head := c.Nodes[0]
	tail := c.Nodes[n-1]
	head.X, head.Y = start.X, start.Y
	tail.X, tail.Y = end.X, end.Y

	for _, p := range c.Nodes {
		if p.Pinned {
			p.PX, p.PY = p.X, p.Y
			continue
		}
		vx := (p.X - p.PX) * Damping
		vy := (p.Y-p.PY)*Damping + Gravity
		p.PX, p.PY = p.X, p.Y
		p.X += vx
		p.Y += vy
	}

	// Target length tracks the current endpoint distance, inflated so the
	// relaxed string hangs loose instead of pulling taut.
	target := math.Hypot(end.X-start.X, end.Y-start.Y) / float64(n-1) * SlackFactor
	for pass := 0; pass < RelaxPasses; pass++ {
		relax(c.Nodes, target)
	}
}

// relax runs one sweep over adjacent pairs, moving each free member half the
// corrective offset toward the target segment length. Pinned particles never
// move here.
func relax(nodes []*Particle, target float64) {
	for i := 0; i < len(nodes)-1; i++ {
		a, b := nodes[i], nodes[i+1]
		dx := b.X - a.X
		dy := b.Y - a.Y
		dist := math.Hypot(dx, dy)
		if dist == 0 {
			continue // coincident pair, nothing to correct this pass
		}
		diff := (dist - target) / dist
		ox := dx * diff * 0.5
		oy := dy * diff * 0.5
		if !a.Pinned {
			a.X += ox
			a.Y += oy
		}
		if !b.Pinned {
			b.X -= ox
			b.Y -= oy
		}
	}
}
