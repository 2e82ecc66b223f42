package physics

// Point is a 2D canvas coordinate.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Particle is one point mass in a string chain. Integration is Verlet style:
// velocity is implied by the offset from the previous-tick position and is
// never stored explicitly.
type Particle struct {
	X, Y   float64
	PX, PY float64 // position at the previous tick
	Pinned bool
}

// Chain is the ordered particle run for one connection's string. The first
// and last particles are pinned and follow the live note centers; everything
// between them is free.
type Chain struct {
	Nodes []*Particle
}

// NewChain seeds segments+1 particles on the straight line from start to end,
// at rest (previous position equal to current). The ends are pinned. A chain
// must be created at most once per connection lifetime; re-seeding a live
// chain snaps its sag back to a straight line, so callers guard creation by
// connection identity.
func NewChain(start, end Point, segments int) *Chain {
	nodes := make([]*Particle, segments+1)
	for i := range nodes {
		t := float64(i) / float64(segments)
		x := start.X + (end.X-start.X)*t
		y := start.Y + (end.Y-start.Y)*t
		nodes[i] = &Particle{
			X: x, Y: y,
			PX: x, PY: y,
			Pinned: i == 0 || i == segments,
		}
	}
	return &Chain{Nodes: nodes}
}

// Points returns the chain's current geometry in order, ready for the
// rendering layer.
func (c *Chain) Points() []Point {
	pts := make([]Point, len(c.Nodes))
	for i, p := range c.Nodes {
		pts[i] = Point{X: p.X, Y: p.Y}
	}
	return pts
}

// NoteCenter is where a string attaches to a note.
func NoteCenter(x, y, w, h float64) Point {
	return Point{X: x + w/2, Y: y + h/2}
}
