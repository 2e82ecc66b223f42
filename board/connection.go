package board

import "github.com/muhzinmohammed/infinite-canvas-notes/physics"

// Connection is a string hung between two notes. The chain is nil until both
// notes resolve for the first time and is seeded exactly once after that;
// keeping the guard on the connection itself means a live string is never
// snapped back to a straight line by a later tick.
type Connection struct {
	ID   string
	From string // note ID
	To   string // note ID

	chain *physics.Chain
}

// Renderable reports whether the string has geometry to show yet.
func (c *Connection) Renderable() bool {
	return c.chain != nil
}

// Points returns the string's current geometry, or nil before the chain has
// been seeded.
func (c *Connection) Points() []physics.Point {
	if c.chain == nil {
		return nil
	}
	return c.chain.Points()
}
